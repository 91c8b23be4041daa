package store

import (
	"github.com/katusha-2010/socialgraph/model"
	"github.com/pkg/errors"
)

// UpdateMemberType merges the patch over an existing member type. An empty
// patch is rejected; at least one of discount or monthPostsLimit must be
// supplied.
func (s *Store) UpdateMemberType(id string, patch model.MemberTypePatch) (*model.MemberType, error) {
	if patch.Empty() {
		return nil, errors.Wrap(ErrBadRequest, "member type update requires discount or monthPostsLimit")
	}
	return s.MemberTypes.Change(id, patch)
}
