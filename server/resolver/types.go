package resolver

import (
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/katusha-2010/socialgraph/model"
)

// Wrappers exposing the flat entity records to graphql-go. The composed
// views embed UserResolver so the shared user fields resolve through the
// same methods everywhere.

type UserResolver struct {
	user *model.User
}

func (r *UserResolver) ID() graphql.ID    { return graphql.ID(r.user.Id) }
func (r *UserResolver) FirstName() string { return r.user.FirstName }
func (r *UserResolver) LastName() string  { return r.user.LastName }
func (r *UserResolver) Email() string     { return r.user.Email }

func (r *UserResolver) SubscribedToUserIds() []graphql.ID {
	out := make([]graphql.ID, 0, len(r.user.SubscribedToUserIds))
	for _, id := range r.user.SubscribedToUserIds {
		out = append(out, graphql.ID(id))
	}
	return out
}

type PostResolver struct {
	post *model.Post
}

func (r *PostResolver) ID() graphql.ID     { return graphql.ID(r.post.Id) }
func (r *PostResolver) Title() string      { return r.post.Title }
func (r *PostResolver) Content() string    { return r.post.Content }
func (r *PostResolver) UserId() graphql.ID { return graphql.ID(r.post.UserId) }

type ProfileResolver struct {
	profile *model.Profile
}

func (r *ProfileResolver) ID() graphql.ID           { return graphql.ID(r.profile.Id) }
func (r *ProfileResolver) Avatar() string           { return r.profile.Avatar }
func (r *ProfileResolver) Sex() string              { return r.profile.Sex }
func (r *ProfileResolver) Birthday() float64        { return float64(r.profile.Birthday) }
func (r *ProfileResolver) Country() string          { return r.profile.Country }
func (r *ProfileResolver) Street() string           { return r.profile.Street }
func (r *ProfileResolver) City() string             { return r.profile.City }
func (r *ProfileResolver) MemberTypeId() graphql.ID { return graphql.ID(r.profile.MemberTypeId) }
func (r *ProfileResolver) UserId() graphql.ID       { return graphql.ID(r.profile.UserId) }

type MemberTypeResolver struct {
	memberType *model.MemberType
}

func (r *MemberTypeResolver) ID() graphql.ID         { return graphql.ID(r.memberType.Id) }
func (r *MemberTypeResolver) Discount() int32        { return int32(r.memberType.Discount) }
func (r *MemberTypeResolver) MonthPostsLimit() int32 { return int32(r.memberType.MonthPostsLimit) }

type UserAllFieldsResolver struct {
	*UserResolver
	rel *model.UserRelations
}

func newUserAllFieldsResolver(rel *model.UserRelations) *UserAllFieldsResolver {
	return &UserAllFieldsResolver{UserResolver: &UserResolver{user: rel.User}, rel: rel}
}

func (r *UserAllFieldsResolver) Posts() []*PostResolver {
	out := make([]*PostResolver, 0, len(r.rel.Posts))
	for _, post := range r.rel.Posts {
		out = append(out, &PostResolver{post: post})
	}
	return out
}

func (r *UserAllFieldsResolver) Profile() *ProfileResolver {
	if r.rel.Profile == nil {
		return nil
	}
	return &ProfileResolver{profile: r.rel.Profile}
}

func (r *UserAllFieldsResolver) MemberType() *MemberTypeResolver {
	if r.rel.MemberType == nil {
		return nil
	}
	return &MemberTypeResolver{memberType: r.rel.MemberType}
}

type UserWithSubscribersResolver struct {
	*UserResolver
	view *model.UserSubscribers
}

func newUserWithSubscribersResolver(view *model.UserSubscribers) *UserWithSubscribersResolver {
	return &UserWithSubscribersResolver{UserResolver: &UserResolver{user: view.User}, view: view}
}

func (r *UserWithSubscribersResolver) Profile() *ProfileResolver {
	if r.view.Profile == nil {
		return nil
	}
	return &ProfileResolver{profile: r.view.Profile}
}

func (r *UserWithSubscribersResolver) Subscribers() []*UserResolver {
	return wrapUsers(r.view.Subscribers)
}

type SubscriptionNodeResolver struct {
	*UserResolver
	node *model.SubscriptionNode
}

func (r *SubscriptionNodeResolver) SubscribedTo() *[]*UserResolver {
	if r.node.SubscribedTo == nil {
		return nil
	}
	wrapped := wrapUsers(r.node.SubscribedTo)
	return &wrapped
}

func (r *SubscriptionNodeResolver) Subscribers() []*UserResolver {
	return wrapUsers(r.node.Subscribers)
}

type UserSubscriptionGraphResolver struct {
	*UserResolver
	node *model.UserSubscriptionGraph
}

func newUserSubscriptionGraphResolver(node *model.UserSubscriptionGraph) *UserSubscriptionGraphResolver {
	return &UserSubscriptionGraphResolver{UserResolver: &UserResolver{user: node.User}, node: node}
}

func (r *UserSubscriptionGraphResolver) SubscribedTo() []*SubscriptionNodeResolver {
	return wrapNodes(r.node.SubscribedTo)
}

func (r *UserSubscriptionGraphResolver) Subscribers() []*SubscriptionNodeResolver {
	return wrapNodes(r.node.Subscribers)
}

func wrapUsers(users []*model.User) []*UserResolver {
	out := make([]*UserResolver, 0, len(users))
	for _, user := range users {
		out = append(out, &UserResolver{user: user})
	}
	return out
}

func wrapNodes(nodes []*model.SubscriptionNode) []*SubscriptionNodeResolver {
	out := make([]*SubscriptionNodeResolver, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, &SubscriptionNodeResolver{UserResolver: &UserResolver{user: node.User}, node: node})
	}
	return out
}
