package utils

import (
	graphql "github.com/graph-gophers/graphql-go"
)

// ParseGraphQLSchema parses and validates the schema string against the root
// resolver. A malformed schema or a resolver that does not satisfy it is a
// programming error, so this panics at startup rather than returning it.
func ParseGraphQLSchema(schemaString string, resolver interface{}) *graphql.Schema {
	return graphql.MustParseSchema(schemaString, resolver)
}
