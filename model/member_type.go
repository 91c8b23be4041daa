package model

import "github.com/jinzhu/copier"

// MemberType is one of a fixed, small set of membership tiers referenced by
// profiles. Member types are seeded at store creation and can be updated but
// never created or deleted through the API.
type MemberType struct {
	Id              string `json:"id"`
	Discount        int    `json:"discount"`
	MonthPostsLimit int    `json:"monthPostsLimit"`
}

// MemberTypePatch is a partial update. At least one field must be set for an
// update to be accepted.
type MemberTypePatch struct {
	Discount        *int `json:"discount"`
	MonthPostsLimit *int `json:"monthPostsLimit"`
}

func (m *MemberTypePatch) Empty() bool {
	return m.Discount == nil && m.MonthPostsLimit == nil
}

func (m *MemberType) EntityID() string      { return m.Id }
func (m *MemberType) SetEntityID(id string) { m.Id = id }

func (m *MemberType) Merge(patch MemberTypePatch) {
	if patch.Discount != nil {
		m.Discount = *patch.Discount
	}
	if patch.MonthPostsLimit != nil {
		m.MonthPostsLimit = *patch.MonthPostsLimit
	}
}

func (m *MemberType) Clone() *MemberType {
	out := &MemberType{}
	_ = copier.CopyWithOption(out, m, copier.Option{DeepCopy: true})
	return out
}
