package model

import "github.com/jinzhu/copier"

// Profile holds the personal details of exactly one user. A user has at most
// one profile, and every profile references one of the fixed member types.
// Birthday is epoch seconds.
type Profile struct {
	Id           string `json:"id"`
	Avatar       string `json:"avatar"`
	Sex          string `json:"sex"`
	Birthday     int64  `json:"birthday"`
	Country      string `json:"country"`
	Street       string `json:"street"`
	City         string `json:"city"`
	MemberTypeId string `json:"memberTypeId"`
	UserId       string `json:"userId"`
}

// NewProfile is the creation payload for a profile.
type NewProfile struct {
	Avatar       string `json:"avatar" binding:"required"`
	Sex          string `json:"sex" binding:"required"`
	Birthday     int64  `json:"birthday" binding:"required"`
	Country      string `json:"country" binding:"required"`
	Street       string `json:"street" binding:"required"`
	City         string `json:"city" binding:"required"`
	MemberTypeId string `json:"memberTypeId" binding:"required"`
	UserId       string `json:"userId" binding:"required"`
}

// ProfilePatch is a partial update. Nil fields are left untouched.
// UserId is not patchable; a profile never moves between users.
type ProfilePatch struct {
	Avatar       *string `json:"avatar"`
	Sex          *string `json:"sex"`
	Birthday     *int64  `json:"birthday"`
	Country      *string `json:"country"`
	Street       *string `json:"street"`
	City         *string `json:"city"`
	MemberTypeId *string `json:"memberTypeId"`
}

func (p *Profile) EntityID() string      { return p.Id }
func (p *Profile) SetEntityID(id string) { p.Id = id }

func (p *Profile) Merge(patch ProfilePatch) {
	if patch.Avatar != nil {
		p.Avatar = *patch.Avatar
	}
	if patch.Sex != nil {
		p.Sex = *patch.Sex
	}
	if patch.Birthday != nil {
		p.Birthday = *patch.Birthday
	}
	if patch.Country != nil {
		p.Country = *patch.Country
	}
	if patch.Street != nil {
		p.Street = *patch.Street
	}
	if patch.City != nil {
		p.City = *patch.City
	}
	if patch.MemberTypeId != nil {
		p.MemberTypeId = *patch.MemberTypeId
	}
}

func (p *Profile) Clone() *Profile {
	out := &Profile{}
	_ = copier.CopyWithOption(out, p, copier.Option{DeepCopy: true})
	return out
}
