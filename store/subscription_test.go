package store

import (
	"testing"

	"github.com/katusha-2010/socialgraph/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createUser(t *testing.T, s *Store, name string) *model.User {
	t.Helper()
	return s.CreateUser(model.NewUser{FirstName: name, LastName: "Test", Email: name + "@mail.ru"})
}

func TestSubscribeAndUnsubscribeRoundTrip(t *testing.T) {
	s := NewStore()
	u1 := createUser(t, s, "u1")
	u2 := createUser(t, s, "u2")

	updated, err := s.Subscribe(u1.Id, u2.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{u2.Id}, updated.SubscribedToUserIds)

	// subscribing again keeps the edge exactly once
	updated, err = s.Subscribe(u1.Id, u2.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{u2.Id}, updated.SubscribedToUserIds)

	updated, err = s.Unsubscribe(u1.Id, u2.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{}, updated.SubscribedToUserIds)

	// removing a non-existent edge is a caller mistake
	_, err = s.Unsubscribe(u1.Id, u2.Id)
	assert.True(t, errors.Is(err, ErrBadRequest))
}

func TestSubscribeMovesExistingEdgeToTail(t *testing.T) {
	s := NewStore()
	u1 := createUser(t, s, "u1")
	u2 := createUser(t, s, "u2")
	u3 := createUser(t, s, "u3")

	_, err := s.Subscribe(u1.Id, u2.Id)
	require.NoError(t, err)
	_, err = s.Subscribe(u1.Id, u3.Id)
	require.NoError(t, err)

	updated, err := s.Subscribe(u1.Id, u2.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{u3.Id, u2.Id}, updated.SubscribedToUserIds)
}

func TestSubscribeUnknownUsers(t *testing.T) {
	s := NewStore()
	u1 := createUser(t, s, "u1")

	_, err := s.Subscribe("missing", u1.Id)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = s.Subscribe(u1.Id, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = s.Unsubscribe(u1.Id, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSelfSubscriptionIsAllowed(t *testing.T) {
	s := NewStore()
	u1 := createUser(t, s, "u1")

	updated, err := s.Subscribe(u1.Id, u1.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{u1.Id}, updated.SubscribedToUserIds)

	subscribers := s.SubscribersOf(u1.Id)
	require.Len(t, subscribers, 1)
	assert.Equal(t, u1.Id, subscribers[0].Id)
}

func TestSubscribersOfInsertionOrder(t *testing.T) {
	s := NewStore()
	u1 := createUser(t, s, "u1")
	u2 := createUser(t, s, "u2")
	u3 := createUser(t, s, "u3")

	// u3 subscribes first, but u2 sits earlier in the table
	_, err := s.Subscribe(u3.Id, u1.Id)
	require.NoError(t, err)
	_, err = s.Subscribe(u2.Id, u1.Id)
	require.NoError(t, err)

	subscribers := s.SubscribersOf(u1.Id)
	require.Len(t, subscribers, 2)
	assert.Equal(t, u2.Id, subscribers[0].Id)
	assert.Equal(t, u3.Id, subscribers[1].Id)
}
