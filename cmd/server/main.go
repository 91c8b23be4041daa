package main

import (
	"net/http"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/katusha-2010/socialgraph/server"
	"github.com/katusha-2010/socialgraph/store"
	"github.com/katusha-2010/socialgraph/utils"
	"github.com/katusha-2010/socialgraph/utils/dotenv"
	. "github.com/katusha-2010/socialgraph/utils/flag"
	. "github.com/katusha-2010/socialgraph/utils/log"
	gintrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/gin-gonic/gin"
)

func cleanup() {
	utils.CloseProfiler()
	utils.CloseTracer()
	Log.Info("api server shutdown")
}

func main() {
	defer cleanup()

	Parse()
	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}
	InitLogger()

	if dotenv.IsProdEnv() {
		utils.InitTracer()
		utils.InitProfiler()
	}

	// the whole data store lives and dies with the process
	db := store.NewStore()

	// Default With the Logger and Recovery middleware already attached
	router := gin.Default()

	router.Use(cors.Default())
	router.Use(gintrace.Middleware(ServiceName))

	server.RegisterRoutes(router, db)
	router.POST("/graphql", server.GraphqlHandler(db))

	// Setup graphql playground for debugging
	router.GET("/", func(c *gin.Context) {
		playground.Handler("GraphQL", "/graphql").ServeHTTP(c.Writer, c.Request)
	})

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	Log.Info("api server starts up")
	router.Run(":8080")
}
