package model

// Nested views assembled by the relation resolver. Each view embeds the flat
// user record and attaches the related records a caller asked for. Missing
// optional relations are omitted (nil), never null-filled placeholders.

// UserRelations is a user together with everything hanging off of it:
// owned posts, the profile (if any), and - only when a profile exists -
// the member type the profile references.
type UserRelations struct {
	*User
	Posts      []*Post     `json:"posts"`
	Profile    *Profile    `json:"profile,omitempty"`
	MemberType *MemberType `json:"memberType,omitempty"`
}

// UserSubscribers is a user together with its profile (if any) and the
// users subscribed to it, derived by reverse lookup.
type UserSubscribers struct {
	*User
	Profile     *Profile `json:"profile,omitempty"`
	Subscribers []*User  `json:"subscribers"`
}

// SubscriptionNode is a one-hop expansion around a neighbor in the
// subscription graph: the neighbor itself, the users it subscribes to, and
// the users subscribing to it.
type SubscriptionNode struct {
	*User
	SubscribedTo []*User `json:"subscribedTo,omitempty"`
	Subscribers  []*User `json:"subscribers"`
}

// UserSubscriptionGraph is the fixed two-hop neighborhood of a user:
// every subscription target expanded one hop in both directions, and every
// reverse subscriber expanded one hop toward its own subscribers. This is a
// bounded template, not a transitive traversal; mutual subscriptions simply
// show up on both sides.
type UserSubscriptionGraph struct {
	*User
	SubscribedTo []*SubscriptionNode `json:"subscribedTo"`
	Subscribers  []*SubscriptionNode `json:"subscribers"`
}
