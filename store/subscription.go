package store

import (
	"github.com/katusha-2010/socialgraph/model"
	"github.com/katusha-2010/socialgraph/utils"
	"github.com/pkg/errors"
)

// The subscription graph is stored redundantly: an edge "a subscribed to b"
// lives only in a's SubscribedToUserIds list. There is no separate edge
// table, and the reverse direction is always a derived scan.

// Subscribe records that subscriber follows target and returns the updated
// subscriber. Both ids must resolve to existing users. The edge is
// idempotent: the target id is filtered out of the list before being
// appended, so repeated calls keep it at the tail exactly once.
func (s *Store) Subscribe(subscriberID, targetID string) (*model.User, error) {
	subscriber, err := s.Users.Get(subscriberID)
	if err != nil {
		return nil, errors.Wrapf(ErrNotFound, "subscriber %q does not exist", subscriberID)
	}
	if _, err := s.Users.Get(targetID); err != nil {
		return nil, errors.Wrapf(ErrNotFound, "subscription target %q does not exist", targetID)
	}

	next := append(utils.RemoveString(subscriber.SubscribedToUserIds, targetID), targetID)
	return s.Users.Change(subscriberID, model.UserPatch{SubscribedToUserIds: &next})
}

// Unsubscribe removes the subscriber→target edge and returns the updated
// subscriber. Both ids must resolve to existing users, and the edge must
// currently exist.
func (s *Store) Unsubscribe(subscriberID, targetID string) (*model.User, error) {
	subscriber, err := s.Users.Get(subscriberID)
	if err != nil {
		return nil, errors.Wrapf(ErrNotFound, "subscriber %q does not exist", subscriberID)
	}
	if _, err := s.Users.Get(targetID); err != nil {
		return nil, errors.Wrapf(ErrNotFound, "subscription target %q does not exist", targetID)
	}
	if !utils.ContainsString(subscriber.SubscribedToUserIds, targetID) {
		return nil, errors.Wrapf(ErrBadRequest, "user %q is not subscribed to %q", subscriberID, targetID)
	}

	next := utils.RemoveString(subscriber.SubscribedToUserIds, targetID)
	return s.Users.Change(subscriberID, model.UserPatch{SubscribedToUserIds: &next})
}

// SubscribersOf returns every user whose subscription list contains id, in
// table insertion order. Used both for relation resolution and for the
// cascading user delete.
func (s *Store) SubscribersOf(id string) []*model.User {
	return s.Users.FindMany(func(u *model.User) bool {
		return utils.ContainsString(u.SubscribedToUserIds, id)
	})
}
