package store

import "github.com/katusha-2010/socialgraph/model"

// Relation resolution: read-only templates that assemble the nested views
// the query surface asks for. Each template is a fixed composition over the
// table primitives, not a general traversal. Missing optional relations are
// omitted rather than reported as errors.

// ResolveUserRelations returns one user with its posts, profile and member
// type attached. ErrNotFound if the user id is unknown.
func (s *Store) ResolveUserRelations(id string) (*model.UserRelations, error) {
	user, err := s.Users.Get(id)
	if err != nil {
		return nil, err
	}
	return s.relationsOf(user), nil
}

// ResolveAllUserRelations returns every user with its posts, profile and
// member type attached, in insertion order.
func (s *Store) ResolveAllUserRelations() []*model.UserRelations {
	users := s.Users.All()
	out := make([]*model.UserRelations, 0, len(users))
	for _, user := range users {
		out = append(out, s.relationsOf(user))
	}
	return out
}

func (s *Store) relationsOf(user *model.User) *model.UserRelations {
	rel := &model.UserRelations{
		User:  user,
		Posts: s.Posts.FindMany(func(p *model.Post) bool { return p.UserId == user.Id }),
	}

	profile, ok := s.Profiles.FindOne(func(p *model.Profile) bool { return p.UserId == user.Id })
	if !ok {
		// no profile, and therefore no member type either
		return rel
	}
	rel.Profile = profile
	if memberType, err := s.MemberTypes.Get(profile.MemberTypeId); err == nil {
		rel.MemberType = memberType
	}
	return rel
}

// ResolveUserSubscribers returns one user with its profile and the users
// subscribed to it. ErrNotFound if the user id is unknown.
func (s *Store) ResolveUserSubscribers(id string) (*model.UserSubscribers, error) {
	user, err := s.Users.Get(id)
	if err != nil {
		return nil, err
	}
	return s.subscribersOf(user), nil
}

// ResolveAllUserSubscribers returns every user with its profile and reverse
// subscribers, in insertion order.
func (s *Store) ResolveAllUserSubscribers() []*model.UserSubscribers {
	users := s.Users.All()
	out := make([]*model.UserSubscribers, 0, len(users))
	for _, user := range users {
		out = append(out, s.subscribersOf(user))
	}
	return out
}

func (s *Store) subscribersOf(user *model.User) *model.UserSubscribers {
	view := &model.UserSubscribers{
		User:        user,
		Subscribers: s.SubscribersOf(user.Id),
	}
	if profile, ok := s.Profiles.FindOne(func(p *model.Profile) bool { return p.UserId == user.Id }); ok {
		view.Profile = profile
	}
	return view
}

// ResolveSubscriptionGraph returns, for every user, its two-hop subscription
// neighborhood: each subscription target expanded with that target's own
// targets and subscribers, and each reverse subscriber expanded with its own
// subscribers. The expansion is exactly one hop per neighbor. There is no
// cycle detection and no transitive closure; mutual subscriptions simply
// appear on both sides. Dangling ids in a subscription list are skipped.
func (s *Store) ResolveSubscriptionGraph() []*model.UserSubscriptionGraph {
	users := s.Users.All()
	out := make([]*model.UserSubscriptionGraph, 0, len(users))

	for _, user := range users {
		node := &model.UserSubscriptionGraph{
			User:         user,
			SubscribedTo: []*model.SubscriptionNode{},
			Subscribers:  []*model.SubscriptionNode{},
		}

		for _, targetID := range user.SubscribedToUserIds {
			target, err := s.Users.Get(targetID)
			if err != nil {
				continue
			}
			node.SubscribedTo = append(node.SubscribedTo, &model.SubscriptionNode{
				User:         target,
				SubscribedTo: s.targetsOf(target),
				Subscribers:  s.SubscribersOf(target.Id),
			})
		}

		for _, subscriber := range s.SubscribersOf(user.Id) {
			node.Subscribers = append(node.Subscribers, &model.SubscriptionNode{
				User:        subscriber,
				Subscribers: s.SubscribersOf(subscriber.Id),
			})
		}

		out = append(out, node)
	}
	return out
}

// targetsOf resolves a user's subscription list to user records, skipping
// ids that no longer resolve.
func (s *Store) targetsOf(user *model.User) []*model.User {
	out := []*model.User{}
	for _, id := range user.SubscribedToUserIds {
		if target, err := s.Users.Get(id); err == nil {
			out = append(out, target)
		}
	}
	return out
}
