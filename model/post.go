package model

import "github.com/jinzhu/copier"

/*

Post is a piece of content authored by a user.

Id: primary key
Title: post's title in plain text
Content: post's body in plain text
UserId: id of the owning user. May be empty for an orphan draft; ownership is
        only hard-checked when the post is deleted.

*/

type Post struct {
	Id      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	UserId  string `json:"userId"`
}

// NewPost is the creation payload for a post.
type NewPost struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	UserId  string `json:"userId"`
}

// PostPatch is a partial update. Nil fields are left untouched.
type PostPatch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	UserId  *string `json:"userId"`
}

func (p *Post) EntityID() string      { return p.Id }
func (p *Post) SetEntityID(id string) { p.Id = id }

func (p *Post) Merge(patch PostPatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.UserId != nil {
		p.UserId = *patch.UserId
	}
}

func (p *Post) Clone() *Post {
	out := &Post{}
	_ = copier.CopyWithOption(out, p, copier.Option{DeepCopy: true})
	return out
}
