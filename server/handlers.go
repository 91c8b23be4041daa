package server

import (
	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/katusha-2010/socialgraph/server/graphql"
	"github.com/katusha-2010/socialgraph/server/resolver"
	"github.com/katusha-2010/socialgraph/store"
	"github.com/katusha-2010/socialgraph/utils"
)

// GraphqlHandler is the universal handler for all GraphQL queries issued from
// client, by default it binds to a POST method.
func GraphqlHandler(s *store.Store) gin.HandlerFunc {
	schemaString := graphql.GetGQLSchema()
	h := &relay.Handler{
		Schema: utils.ParseGraphQLSchema(schemaString, &resolver.RootResolver{Store: s}),
	}

	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
