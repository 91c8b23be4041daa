package store

import (
	"github.com/katusha-2010/socialgraph/model"
	"github.com/pkg/errors"
)

// CreateProfile validates, in order: the referenced user exists, the user
// does not already have a profile, and the referenced member type exists.
// Only then is the profile stored.
func (s *Store) CreateProfile(input model.NewProfile) (*model.Profile, error) {
	if _, err := s.Users.Get(input.UserId); err != nil {
		return nil, errors.Wrapf(ErrBadRequest, "profile references unknown user %q", input.UserId)
	}
	if _, ok := s.Profiles.FindOne(func(p *model.Profile) bool { return p.UserId == input.UserId }); ok {
		return nil, errors.Wrapf(ErrBadRequest, "user %q already has a profile", input.UserId)
	}
	if _, err := s.MemberTypes.Get(input.MemberTypeId); err != nil {
		return nil, errors.Wrapf(ErrBadRequest, "profile references unknown member type %q", input.MemberTypeId)
	}

	return s.Profiles.Create(&model.Profile{
		Avatar:       input.Avatar,
		Sex:          input.Sex,
		Birthday:     input.Birthday,
		Country:      input.Country,
		Street:       input.Street,
		City:         input.City,
		MemberTypeId: input.MemberTypeId,
		UserId:       input.UserId,
	}), nil
}

// UpdateProfile merges the patch over an existing profile. A patched member
// type id must still reference an existing member type.
func (s *Store) UpdateProfile(id string, patch model.ProfilePatch) (*model.Profile, error) {
	if _, err := s.Profiles.Get(id); err != nil {
		return nil, errors.Wrapf(ErrBadRequest, "cannot update unknown profile %q", id)
	}
	if patch.MemberTypeId != nil {
		if _, err := s.MemberTypes.Get(*patch.MemberTypeId); err != nil {
			return nil, errors.Wrapf(ErrBadRequest, "profile references unknown member type %q", *patch.MemberTypeId)
		}
	}
	return s.Profiles.Change(id, patch)
}

// DeleteProfile removes a profile. No further referential checks are needed;
// nothing references a profile by id.
func (s *Store) DeleteProfile(id string) (*model.Profile, error) {
	if _, err := s.Profiles.Get(id); err != nil {
		return nil, errors.Wrapf(ErrBadRequest, "cannot delete unknown profile %q", id)
	}
	return s.Profiles.Delete(id)
}
