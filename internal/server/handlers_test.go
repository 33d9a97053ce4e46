package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openletters/community/internal/auth"
	"github.com/openletters/community/internal/content"
	"github.com/openletters/community/internal/domain"
	"github.com/openletters/community/internal/localstore"
)

const (
	testAdminEmail    = "owner@openletters.example"
	testAdminPassword = "topsecret"
)

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	store := localstore.Open("", nil)
	authSvc := auth.NewService(auth.Config{
		PrimaryAdminEmail:    testAdminEmail,
		PrimaryAdminPassword: testAdminPassword,
	}, store, nil)
	srv := New(authSvc, content.NewRegistry(store), nil)
	return srv, srv.Routes()
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func signInUser(t *testing.T, srv *Server) *domain.Session {
	t.Helper()
	return srv.auth.SignInWithProvider(context.Background(), auth.ProviderGoogle)
}

func signInAdmin(t *testing.T, srv *Server) {
	t.Helper()
	require.True(t, srv.auth.SignInAsPrimaryAdmin(context.Background(), testAdminEmail, testAdminPassword))
}

func TestAnonymousReadsArePublic(t *testing.T) {
	_, h := newTestServer(t)

	for _, path := range []string{
		"/api/articles/", "/api/books/", "/api/gallery/", "/api/games/",
		"/api/courses/", "/api/conferences/", "/api/carousel/",
		"/api/forum/posts/", "/api/settings",
	} {
		rec := doJSON(t, h, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code, "GET %s", path)
	}
}

func TestForumPostRequiresSession(t *testing.T) {
	srv, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/forum/posts/", `{"title":"t","content":"c"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	sess := signInUser(t, srv)
	rec = doJSON(t, h, http.MethodPost, "/api/forum/posts/", `{"title":"A new poem","content":"Lines about rain."}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var post domain.ForumPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, sess.UID, post.Author.ID)
	assert.Equal(t, sess.DisplayName, post.Author.Name)
	assert.NotEmpty(t, post.ID)
}

func TestCurationRequiresAdmin(t *testing.T) {
	srv, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/articles/", `{"title":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	signInUser(t, srv)
	rec = doJSON(t, h, http.MethodPost, "/api/articles/", `{"title":"x"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	signInAdmin(t, srv)
	rec = doJSON(t, h, http.MethodPost, "/api/articles/", `{"title":"Editorial","slug":"editorial","excerpt":"...","author":"Staff"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAdminPatchAndDeleteResource(t *testing.T) {
	srv, h := newTestServer(t)
	signInAdmin(t, srv)

	rec := doJSON(t, h, http.MethodPatch, "/api/books/1", `{"title":"Retitled"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var book domain.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &book))
	assert.Equal(t, "Retitled", book.Title)

	rec = doJSON(t, h, http.MethodPatch, "/api/books/no-such-id", `{"title":"ghost"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodDelete, "/api/books/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(t, h, http.MethodGet, "/api/books/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCommentFlow(t *testing.T) {
	srv, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/forum/posts/post1/comments", `{"content":"hi"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	signInUser(t, srv)

	rec = doJSON(t, h, http.MethodPost, "/api/forum/posts/no-such-post/comments", `{"content":"lost"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/forum/posts/post1/comments", `{"content":"Lovely verses."}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/forum/posts/post1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var post domain.ForumPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, 4, post.CommentCount)

	rec = doJSON(t, h, http.MethodGet, "/api/forum/posts/post1/comments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var comments []domain.Comment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comments))
	require.Len(t, comments, 4)
	assert.Equal(t, "Lovely verses.", comments[0].Content)
}

func TestReactionFlow(t *testing.T) {
	srv, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/forum/posts/post1/reactions", `{"kind":"like"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	signInUser(t, srv)

	rec = doJSON(t, h, http.MethodPost, "/api/forum/posts/post1/reactions", `{"kind":"love"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/forum/posts/no-such-post/reactions", `{"kind":"like"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	before, ok := srv.registry.Posts.Get("post1")
	require.True(t, ok)

	rec = doJSON(t, h, http.MethodPost, "/api/forum/posts/post1/reactions", `{"kind":"like"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var post domain.ForumPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, before.Likes+1, post.Likes)

	rec = doJSON(t, h, http.MethodGet, "/api/forum/posts/post1/reactions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var state map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, "like", state["reaction"])

	// Second press withdraws the like.
	rec = doJSON(t, h, http.MethodPost, "/api/forum/posts/post1/reactions", `{"kind":"like"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, before.Likes, post.Likes)
}

func TestForumSortParam(t *testing.T) {
	_, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/forum/posts/?sort=top", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var posts []domain.ForumPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	require.NotEmpty(t, posts)
	for i := 1; i < len(posts); i++ {
		assert.GreaterOrEqual(t, posts[i-1].Likes, posts[i].Likes)
	}
}

func TestAuthEndpoints(t *testing.T) {
	_, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/auth/session", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/auth/provider", `{"provider":"myspace"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/auth/provider", `{"provider":"google"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var sess domain.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	assert.False(t, sess.IsAdmin)

	rec = doJSON(t, h, http.MethodPatch, "/api/auth/profile", `{"displayName":"Pen Name"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	assert.Equal(t, "Pen Name", sess.DisplayName)

	rec = doJSON(t, h, http.MethodDelete, "/api/auth/session", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(t, h, http.MethodGet, "/api/auth/session", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminSignInAndManagement(t *testing.T) {
	_, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/auth/admin", `{"email":"owner@openletters.example","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/auth/admin", `{"email":"owner@openletters.example","password":"topsecret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var sess domain.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	assert.True(t, sess.IsAdmin)

	rec = doJSON(t, h, http.MethodPost, "/api/admins/", `{"email":"helper@example.com","password":"pw123456"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Duplicate registration is rejected.
	rec = doJSON(t, h, http.MethodPost, "/api/admins/", `{"email":"helper@example.com","password":"other"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/admins/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var emails []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &emails))
	assert.Equal(t, []string{"helper@example.com"}, emails)

	// The new secondary admin can sign in and gains the admin flag.
	rec = doJSON(t, h, http.MethodPost, "/api/auth/admin", `{"email":"helper@example.com","password":"pw123456"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	assert.True(t, sess.IsAdmin)
	assert.Equal(t, "Admin: helper", sess.DisplayName)
}

func TestSettingsUpdateRequiresAdmin(t *testing.T) {
	srv, h := newTestServer(t)

	body := `{"siteTitle":"Renamed","siteDescription":"","contactEmail":"","facebookUrl":"","twitterUrl":"","instagramUrl":"","linkedinUrl":"","youtubeUrl":"","primaryColor":"","accentColor":"","backgroundColor":""}`
	rec := doJSON(t, h, http.MethodPut, "/api/settings", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	signInAdmin(t, srv)
	rec = doJSON(t, h, http.MethodPut, "/api/settings", body)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var settings domain.SiteSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
	assert.Equal(t, "Renamed", settings.SiteTitle)
}

func TestMalformedBodyIsRejected(t *testing.T) {
	srv, h := newTestServer(t)
	signInUser(t, srv)

	rec := doJSON(t, h, http.MethodPost, "/api/forum/posts/", `{"title": "unterminated`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/forum/posts/", `{"title":"t","content":"c","bogus":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
