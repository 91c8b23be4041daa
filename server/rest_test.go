package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/katusha-2010/socialgraph/model"
	"github.com/katusha-2010/socialgraph/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(s *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router, s)
	router.POST("/graphql", GraphqlHandler(s))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeInto(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestUserRoutes(t *testing.T) {
	s := store.NewStore()
	router := newTestRouter(s)

	w := doJSON(t, router, http.MethodPost, "/users", gin.H{
		"firstName": "Vasia", "lastName": "Pupkin", "email": "p@mail.ru",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var created model.User
	decodeInto(t, w, &created)
	require.NotEmpty(t, created.Id)
	assert.Equal(t, []string{}, created.SubscribedToUserIds)

	w = doJSON(t, router, http.MethodGet, "/users/"+created.Id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched model.User
	decodeInto(t, w, &fetched)
	assert.Equal(t, created, fetched)

	w = doJSON(t, router, http.MethodPatch, "/users/"+created.Id, gin.H{"email": "v@mail.ru"})
	require.Equal(t, http.StatusOK, w.Code)
	var patched model.User
	decodeInto(t, w, &patched)
	assert.Equal(t, "v@mail.ru", patched.Email)
	assert.Equal(t, "Vasia", patched.FirstName)

	w = doJSON(t, router, http.MethodGet, "/users/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPatch, "/users/missing", gin.H{"email": "v@mail.ru"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/users/"+created.Id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, s.Users.Len())

	w = doJSON(t, router, http.MethodDelete, "/users/"+created.Id, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubscriptionRoutes(t *testing.T) {
	s := store.NewStore()
	router := newTestRouter(s)

	u1 := s.CreateUser(model.NewUser{FirstName: "u1", LastName: "t", Email: "u1@mail.ru"})
	u2 := s.CreateUser(model.NewUser{FirstName: "u2", LastName: "t", Email: "u2@mail.ru"})

	// u1 subscribes to u2: the body names the subscriber, the path the target
	w := doJSON(t, router, http.MethodPost, "/users/"+u2.Id+"/subscribeTo", gin.H{"userId": u1.Id})
	require.Equal(t, http.StatusOK, w.Code)
	var subscriber model.User
	decodeInto(t, w, &subscriber)
	assert.Equal(t, u1.Id, subscriber.Id)
	assert.Equal(t, []string{u2.Id}, subscriber.SubscribedToUserIds)

	w = doJSON(t, router, http.MethodPost, "/users/"+u2.Id+"/subscribeTo", gin.H{"userId": u1.Id})
	require.Equal(t, http.StatusOK, w.Code)
	decodeInto(t, w, &subscriber)
	assert.Equal(t, []string{u2.Id}, subscriber.SubscribedToUserIds)

	w = doJSON(t, router, http.MethodPost, "/users/"+u2.Id+"/unsubscribeFrom", gin.H{"userId": u1.Id})
	require.Equal(t, http.StatusOK, w.Code)
	decodeInto(t, w, &subscriber)
	assert.Equal(t, []string{}, subscriber.SubscribedToUserIds)

	w = doJSON(t, router, http.MethodPost, "/users/"+u2.Id+"/unsubscribeFrom", gin.H{"userId": u1.Id})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/users/missing/subscribeTo", gin.H{"userId": u1.Id})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileRoutes(t *testing.T) {
	s := store.NewStore()
	router := newTestRouter(s)

	u1 := s.CreateUser(model.NewUser{FirstName: "u1", LastName: "t", Email: "u1@mail.ru"})

	input := gin.H{
		"avatar": "avatar.png", "sex": "female", "birthday": 595296000,
		"country": "Belarus", "street": "Lenina", "city": "Minsk",
		"memberTypeId": store.MemberTypeBasic, "userId": u1.Id,
	}

	w := doJSON(t, router, http.MethodPost, "/profiles", input)
	require.Equal(t, http.StatusOK, w.Code)
	var profile model.Profile
	decodeInto(t, w, &profile)
	assert.Equal(t, u1.Id, profile.UserId)

	// second profile for the same user
	w = doJSON(t, router, http.MethodPost, "/profiles", input)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 1, s.Profiles.Len())

	w = doJSON(t, router, http.MethodPatch, "/profiles/"+profile.Id, gin.H{"city": "Brest"})
	require.Equal(t, http.StatusOK, w.Code)
	decodeInto(t, w, &profile)
	assert.Equal(t, "Brest", profile.City)

	w = doJSON(t, router, http.MethodDelete, "/profiles/"+profile.Id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/profiles/"+profile.Id, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostRoutes(t *testing.T) {
	s := store.NewStore()
	router := newTestRouter(s)

	u1 := s.CreateUser(model.NewUser{FirstName: "u1", LastName: "t", Email: "u1@mail.ru"})

	w := doJSON(t, router, http.MethodPost, "/posts", gin.H{"title": "t", "content": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/posts", gin.H{"title": "t", "content": "c", "userId": u1.Id})
	require.Equal(t, http.StatusOK, w.Code)
	var post model.Post
	decodeInto(t, w, &post)

	w = doJSON(t, router, http.MethodDelete, "/posts/"+post.Id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, s.Posts.Len())
}

func TestMemberTypeRoutes(t *testing.T) {
	s := store.NewStore()
	router := newTestRouter(s)

	w := doJSON(t, router, http.MethodGet, "/member-types", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var memberTypes []model.MemberType
	decodeInto(t, w, &memberTypes)
	require.Len(t, memberTypes, 2)
	assert.Equal(t, store.MemberTypeBasic, memberTypes[0].Id)
	assert.Equal(t, store.MemberTypeBusiness, memberTypes[1].Id)

	w = doJSON(t, router, http.MethodPatch, "/member-types/"+store.MemberTypeBasic, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPatch, "/member-types/"+store.MemberTypeBasic, gin.H{"discount": 7})
	require.Equal(t, http.StatusOK, w.Code)
	var patched model.MemberType
	decodeInto(t, w, &patched)
	assert.Equal(t, 7, patched.Discount)
	assert.Equal(t, 20, patched.MonthPostsLimit)
}
