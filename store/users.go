package store

import (
	"github.com/katusha-2010/socialgraph/model"
	"github.com/katusha-2010/socialgraph/utils"
	"github.com/pkg/errors"
)

// CreateUser stores a new user with an empty subscription list.
func (s *Store) CreateUser(input model.NewUser) *model.User {
	return s.Users.Create(&model.User{
		FirstName:           input.FirstName,
		LastName:            input.LastName,
		Email:               input.Email,
		SubscribedToUserIds: []string{},
	})
}

// UpdateUser merges the patch over an existing user. Patching an unknown id
// is a caller mistake, not a lookup miss, hence ErrBadRequest.
func (s *Store) UpdateUser(id string, patch model.UserPatch) (*model.User, error) {
	if _, err := s.Users.Get(id); err != nil {
		return nil, errors.Wrapf(ErrBadRequest, "cannot update unknown user %q", id)
	}
	return s.Users.Change(id, patch)
}

// DeleteUser removes a user together with everything referencing it: the
// subscription edges pointing at it from every other user, the posts it
// owns, and its profile. The steps are independent and each one is a no-op
// once its target is gone, so a partially applied delete can simply be
// re-run.
func (s *Store) DeleteUser(id string) (*model.User, error) {
	if _, err := s.Users.Get(id); err != nil {
		return nil, errors.Wrapf(ErrBadRequest, "cannot delete unknown user %q", id)
	}

	for _, subscriber := range s.SubscribersOf(id) {
		trimmed := utils.RemoveString(subscriber.SubscribedToUserIds, id)
		patch := model.UserPatch{SubscribedToUserIds: &trimmed}
		if _, err := s.Users.Change(subscriber.Id, patch); err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}

	owned := s.Posts.FindMany(func(p *model.Post) bool { return p.UserId == id })
	for _, post := range owned {
		if _, err := s.Posts.Delete(post.Id); err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}

	if profile, ok := s.Profiles.FindOne(func(p *model.Profile) bool { return p.UserId == id }); ok {
		if _, err := s.Profiles.Delete(profile.Id); err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}

	return s.Users.Delete(id)
}
