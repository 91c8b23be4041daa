package store

import (
	"github.com/katusha-2010/socialgraph/model"
	"github.com/pkg/errors"
)

// CreatePost requires a non-empty title and content. The owning user id is
// recorded as supplied and not re-validated here; ownership is only
// hard-checked when the post is deleted.
func (s *Store) CreatePost(input model.NewPost) (*model.Post, error) {
	if input.Title == "" || input.Content == "" {
		return nil, errors.Wrap(ErrBadRequest, "post requires a title and content")
	}
	return s.Posts.Create(&model.Post{
		Title:   input.Title,
		Content: input.Content,
		UserId:  input.UserId,
	}), nil
}

// UpdatePost merges the patch over an existing post.
func (s *Store) UpdatePost(id string, patch model.PostPatch) (*model.Post, error) {
	if _, err := s.Posts.Get(id); err != nil {
		return nil, errors.Wrapf(ErrBadRequest, "cannot update unknown post %q", id)
	}
	return s.Posts.Change(id, patch)
}

// DeletePost requires the post to exist and its owning user to still
// resolve. A dangling owner is reported as ErrNotFound rather than silently
// accepted.
func (s *Store) DeletePost(id string) (*model.Post, error) {
	post, err := s.Posts.Get(id)
	if err != nil {
		return nil, errors.Wrapf(ErrBadRequest, "cannot delete unknown post %q", id)
	}
	if _, err := s.Users.Get(post.UserId); err != nil {
		return nil, errors.Wrapf(ErrNotFound, "post %q has no owning user %q", id, post.UserId)
	}
	return s.Posts.Delete(id)
}
