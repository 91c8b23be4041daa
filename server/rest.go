package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/katusha-2010/socialgraph/model"
	"github.com/katusha-2010/socialgraph/store"
)

// RegisterRoutes mounts the REST CRUD surface on the router. The handlers
// are deliberately thin: they bind the payload, call into the store, and
// translate the store's error kinds to status codes. Every domain rule lives
// in the store.
func RegisterRoutes(router *gin.Engine, s *store.Store) {
	users := router.Group("/users")
	{
		users.GET("", listUsers(s))
		users.POST("", createUser(s))
		users.GET("/:id", getUser(s))
		users.PATCH("/:id", updateUser(s))
		users.DELETE("/:id", deleteUser(s))
		users.POST("/:id/subscribeTo", subscribeTo(s))
		users.POST("/:id/unsubscribeFrom", unsubscribeFrom(s))
	}

	posts := router.Group("/posts")
	{
		posts.GET("", listPosts(s))
		posts.POST("", createPost(s))
		posts.GET("/:id", getPost(s))
		posts.PATCH("/:id", updatePost(s))
		posts.DELETE("/:id", deletePost(s))
	}

	profiles := router.Group("/profiles")
	{
		profiles.GET("", listProfiles(s))
		profiles.POST("", createProfile(s))
		profiles.GET("/:id", getProfile(s))
		profiles.PATCH("/:id", updateProfile(s))
		profiles.DELETE("/:id", deleteProfile(s))
	}

	memberTypes := router.Group("/member-types")
	{
		memberTypes.GET("", listMemberTypes(s))
		memberTypes.GET("/:id", getMemberType(s))
		memberTypes.PATCH("/:id", updateMemberType(s))
	}
}

// abortWithStoreError maps the store's error kinds to transport responses.
func abortWithStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, store.ErrBadRequest):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}

func abortWithBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
}

func listUsers(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Users.All())
	}
}

func getUser(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := s.Users.Get(c.Param("id"))
		if err != nil {
			abortWithStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func createUser(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input model.NewUser
		if err := c.ShouldBindJSON(&input); err != nil {
			abortWithBindError(c, err)
			return
		}
		c.JSON(http.StatusOK, s.CreateUser(input))
	}
}

func updateUser(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch model.UserPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			abortWithBindError(c, err)
			return
		}
		user, err := s.UpdateUser(c.Param("id"), patch)
		if err != nil {
			abortWithStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func deleteUser(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := s.DeleteUser(c.Param("id"))
		if err != nil {
			abortWithStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// subscriptionBody names the acting subscriber; the route parameter is the
// subscription target, mirroring POST /users/:id/subscribeTo.
type subscriptionBody struct {
	UserId string `json:"userId" binding:"required"`
}

func subscribeTo(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body subscriptionBody
		if err := c.ShouldBindJSON(&body); err != nil {
			abortWithBindError(c, err)
			return
		}
		user, err := s.Subscribe(body.UserId, c.Param("id"))
		if err != nil {
			abortWithStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func unsubscribeFrom(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body subscriptionBody
		if err := c.ShouldBindJSON(&body); err != nil {
			abortWithBindError(c, err)
			return
		}
		user, err := s.Unsubscribe(body.UserId, c.Param("id"))
		if err != nil {
			abortWithStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func listPosts(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Posts.All())
	}
}

func getPost(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := s.Posts.Get(c.Param("id"))
		if err != nil {
			abortWithStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

func createPost(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input model.NewPost
		if err := c.ShouldBindJSON(&input); err != nil {
			abortWithBindError(c, err)
			return
		}
		post, err := s.CreatePost(input)
		if err != nil {
			abortWithStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

func updatePost(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch model.PostPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			abortWithBindError(c, err)
			return
		}
		post, err := s.UpdatePost(c.Param("id"), patch)
		if err != nil {
			abortWithStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

func deletePost(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := s.DeletePost(c.Param("id"))
		if err != nil {
			abortWithStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

func listProfiles(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Profiles.All())
	}
}

func getProfile(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := s.Profiles.Get(c.Param("id"))
		if err != nil {
			abortWithStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

func createProfile(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input model.NewProfile
		if err := c.ShouldBindJSON(&input); err != nil {
			abortWithBindError(c, err)
			return
		}
		profile, err := s.CreateProfile(input)
		if err != nil {
			abortWithStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

func updateProfile(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch model.ProfilePatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			abortWithBindError(c, err)
			return
		}
		profile, err := s.UpdateProfile(c.Param("id"), patch)
		if err != nil {
			abortWithStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

func deleteProfile(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := s.DeleteProfile(c.Param("id"))
		if err != nil {
			abortWithStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

func listMemberTypes(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.MemberTypes.All())
	}
}

func getMemberType(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		memberType, err := s.MemberTypes.Get(c.Param("id"))
		if err != nil {
			abortWithStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, memberType)
	}
}

func updateMemberType(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch model.MemberTypePatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			abortWithBindError(c, err)
			return
		}
		memberType, err := s.UpdateMemberType(c.Param("id"), patch)
		if err != nil {
			abortWithStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, memberType)
	}
}
