// Package store implements the in-memory relational store backing every
// route: four entity tables with CRUD primitives, the referential-integrity
// layer guarding cross-table mutations, the directed subscription graph
// between users, and the relation resolver assembling nested views.
//
// The store is plain process state: created empty at startup (apart from the
// seeded member types), shared by reference between all request handlers,
// and torn down with the process. Individual table operations serialize
// through a per-table RWMutex; composite operations are applied stepwise and
// are safe to re-run after partial completion.
package store

import "github.com/katusha-2010/socialgraph/model"

// The fixed membership tiers. Profiles may only reference these.
const (
	MemberTypeBasic    = "basic"
	MemberTypeBusiness = "business"
)

// Store owns the four entity tables. Simple reads go straight to the tables;
// every mutation that spans more than one table must go through the Store
// methods so no caller can bypass the integrity checks.
type Store struct {
	Users       *Table[*model.User, model.UserPatch]
	Posts       *Table[*model.Post, model.PostPatch]
	Profiles    *Table[*model.Profile, model.ProfilePatch]
	MemberTypes *Table[*model.MemberType, model.MemberTypePatch]
}

func NewStore() *Store {
	s := &Store{
		Users:       NewTable[*model.User, model.UserPatch](),
		Posts:       NewTable[*model.Post, model.PostPatch](),
		Profiles:    NewTable[*model.Profile, model.ProfilePatch](),
		MemberTypes: NewTable[*model.MemberType, model.MemberTypePatch](),
	}

	s.MemberTypes.Create(&model.MemberType{Id: MemberTypeBasic, Discount: 0, MonthPostsLimit: 20})
	s.MemberTypes.Create(&model.MemberType{Id: MemberTypeBusiness, Discount: 5, MonthPostsLimit: 100})

	return s
}
