package graphql

// GetGQLSchema returns the schema served at /graphql. The singular lookups
// resolve to an error when the id is unknown; the composed views follow the
// relation resolver templates in the store: a user without a profile has
// neither profile nor memberType attached, and subscriptionGraph is a fixed
// two-hop expansion, not a transitive traversal.
func GetGQLSchema() string {
	return `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		users: [User!]!
		user(id: ID!): User
		posts: [Post!]!
		post(id: ID!): Post
		profiles: [Profile!]!
		profile(id: ID!): Profile
		memberTypes: [MemberType!]!
		memberType(id: ID!): MemberType

		usersAllFields: [UserAllFields!]!
		userAllFieldsByID(id: ID!): UserAllFields
		usersWithSubscribers: [UserWithSubscribers!]!
		userWithSubscribersByID(id: ID!): UserWithSubscribers
		subscriptionGraph: [UserSubscriptionGraph!]!
	}

	type Mutation {
		createUser(input: NewUser!): User!
	}

	type User {
		id: ID!
		firstName: String!
		lastName: String!
		email: String!
		subscribedToUserIds: [ID!]!
	}

	type Post {
		id: ID!
		title: String!
		content: String!
		userId: ID!
	}

	type Profile {
		id: ID!
		avatar: String!
		sex: String!
		birthday: Float!
		country: String!
		street: String!
		city: String!
		memberTypeId: ID!
		userId: ID!
	}

	type MemberType {
		id: ID!
		discount: Int!
		monthPostsLimit: Int!
	}

	type UserAllFields {
		id: ID!
		firstName: String!
		lastName: String!
		email: String!
		subscribedToUserIds: [ID!]!
		posts: [Post!]!
		profile: Profile
		memberType: MemberType
	}

	type UserWithSubscribers {
		id: ID!
		firstName: String!
		lastName: String!
		email: String!
		subscribedToUserIds: [ID!]!
		profile: Profile
		subscribers: [User!]!
	}

	type SubscriptionNode {
		id: ID!
		firstName: String!
		lastName: String!
		email: String!
		subscribedToUserIds: [ID!]!
		subscribedTo: [User!]
		subscribers: [User!]!
	}

	type UserSubscriptionGraph {
		id: ID!
		firstName: String!
		lastName: String!
		email: String!
		subscribedToUserIds: [ID!]!
		subscribedTo: [SubscriptionNode!]!
		subscribers: [SubscriptionNode!]!
	}

	input NewUser {
		firstName: String!
		lastName: String!
		email: String!
	}
	`
}
