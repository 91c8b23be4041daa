package model

import "github.com/jinzhu/copier"

// User is an account holder.
//
// SubscribedToUserIds lists the ids of the users this user is subscribed to,
// in subscription order. The reverse direction ("who subscribes to me") is
// never materialized; it is always derived by scanning other users' lists.
type User struct {
	Id                  string   `json:"id"`
	FirstName           string   `json:"firstName"`
	LastName            string   `json:"lastName"`
	Email               string   `json:"email"`
	SubscribedToUserIds []string `json:"subscribedToUserIds"`
}

// NewUser is the creation payload for a user.
type NewUser struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
}

// UserPatch is a partial update. Nil fields are left untouched.
type UserPatch struct {
	FirstName           *string   `json:"firstName"`
	LastName            *string   `json:"lastName"`
	Email               *string   `json:"email"`
	SubscribedToUserIds *[]string `json:"subscribedToUserIds"`
}

func (u *User) EntityID() string      { return u.Id }
func (u *User) SetEntityID(id string) { u.Id = id }

func (u *User) Merge(p UserPatch) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.SubscribedToUserIds != nil {
		u.SubscribedToUserIds = append([]string(nil), (*p.SubscribedToUserIds)...)
	}
}

func (u *User) Clone() *User {
	out := &User{}
	// same-shape copy, cannot fail
	_ = copier.CopyWithOption(out, u, copier.Option{DeepCopy: true})
	return out
}
