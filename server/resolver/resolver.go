// Package resolver binds the GraphQL schema to the store. Every query is a
// thin wrapper: simple lookups go straight to the entity tables, the
// composed views delegate to the store's relation resolver, and the one
// mutation goes through the store like every other write.
package resolver

import (
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/katusha-2010/socialgraph/model"
	"github.com/katusha-2010/socialgraph/store"
)

type RootResolver struct {
	Store *store.Store
}

type idArgs struct {
	ID graphql.ID
}

func (r *RootResolver) Users() []*UserResolver {
	return wrapUsers(r.Store.Users.All())
}

func (r *RootResolver) User(args idArgs) (*UserResolver, error) {
	user, err := r.Store.Users.Get(string(args.ID))
	if err != nil {
		return nil, err
	}
	return &UserResolver{user: user}, nil
}

func (r *RootResolver) Posts() []*PostResolver {
	posts := r.Store.Posts.All()
	out := make([]*PostResolver, 0, len(posts))
	for _, post := range posts {
		out = append(out, &PostResolver{post: post})
	}
	return out
}

func (r *RootResolver) Post(args idArgs) (*PostResolver, error) {
	post, err := r.Store.Posts.Get(string(args.ID))
	if err != nil {
		return nil, err
	}
	return &PostResolver{post: post}, nil
}

func (r *RootResolver) Profiles() []*ProfileResolver {
	profiles := r.Store.Profiles.All()
	out := make([]*ProfileResolver, 0, len(profiles))
	for _, profile := range profiles {
		out = append(out, &ProfileResolver{profile: profile})
	}
	return out
}

func (r *RootResolver) Profile(args idArgs) (*ProfileResolver, error) {
	profile, err := r.Store.Profiles.Get(string(args.ID))
	if err != nil {
		return nil, err
	}
	return &ProfileResolver{profile: profile}, nil
}

func (r *RootResolver) MemberTypes() []*MemberTypeResolver {
	memberTypes := r.Store.MemberTypes.All()
	out := make([]*MemberTypeResolver, 0, len(memberTypes))
	for _, memberType := range memberTypes {
		out = append(out, &MemberTypeResolver{memberType: memberType})
	}
	return out
}

func (r *RootResolver) MemberType(args idArgs) (*MemberTypeResolver, error) {
	memberType, err := r.Store.MemberTypes.Get(string(args.ID))
	if err != nil {
		return nil, err
	}
	return &MemberTypeResolver{memberType: memberType}, nil
}

func (r *RootResolver) UsersAllFields() []*UserAllFieldsResolver {
	rels := r.Store.ResolveAllUserRelations()
	out := make([]*UserAllFieldsResolver, 0, len(rels))
	for _, rel := range rels {
		out = append(out, newUserAllFieldsResolver(rel))
	}
	return out
}

func (r *RootResolver) UserAllFieldsByID(args idArgs) (*UserAllFieldsResolver, error) {
	rel, err := r.Store.ResolveUserRelations(string(args.ID))
	if err != nil {
		return nil, err
	}
	return newUserAllFieldsResolver(rel), nil
}

func (r *RootResolver) UsersWithSubscribers() []*UserWithSubscribersResolver {
	views := r.Store.ResolveAllUserSubscribers()
	out := make([]*UserWithSubscribersResolver, 0, len(views))
	for _, view := range views {
		out = append(out, newUserWithSubscribersResolver(view))
	}
	return out
}

func (r *RootResolver) UserWithSubscribersByID(args idArgs) (*UserWithSubscribersResolver, error) {
	view, err := r.Store.ResolveUserSubscribers(string(args.ID))
	if err != nil {
		return nil, err
	}
	return newUserWithSubscribersResolver(view), nil
}

func (r *RootResolver) SubscriptionGraph() []*UserSubscriptionGraphResolver {
	graph := r.Store.ResolveSubscriptionGraph()
	out := make([]*UserSubscriptionGraphResolver, 0, len(graph))
	for _, node := range graph {
		out = append(out, newUserSubscriptionGraphResolver(node))
	}
	return out
}

type newUserArgs struct {
	Input struct {
		FirstName string
		LastName  string
		Email     string
	}
}

func (r *RootResolver) CreateUser(args newUserArgs) *UserResolver {
	user := r.Store.CreateUser(model.NewUser{
		FirstName: args.Input.FirstName,
		LastName:  args.Input.LastName,
		Email:     args.Input.Email,
	})
	return &UserResolver{user: user}
}
