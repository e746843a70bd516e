package site_test

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Sprachey/Blogspot/database"
	"github.com/Sprachey/Blogspot/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("DATABASE_URL", "file::memory:?cache=shared")
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db := database.GetDB()
	require.NoError(t, db.Exec("DELETE FROM comments").Error)
	require.NoError(t, db.Exec("DELETE FROM posts").Error)
	require.NoError(t, db.Exec("DELETE FROM users").Error)

	srv := httptest.NewServer(site.NewRouter())
	t.Cleanup(srv.Close)
	return srv
}

// newBrowser returns a redirect-following client with its own cookie jar,
// standing in for one visitor's browser session.
func newBrowser(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func postForm(t *testing.T, client *http.Client, url string, form url.Values) *http.Response {
	t.Helper()

	resp, err := client.PostForm(url, form)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func registerVia(t *testing.T, client *http.Client, baseURL, email, name string) {
	t.Helper()

	resp := postForm(t, client, baseURL+"/register", url.Values{
		"name":     {name},
		"email":    {email},
		"password": {"hunter22"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "/", resp.Request.URL.Path, "registration should land on the post list")
}

func createPostVia(t *testing.T, client *http.Client, baseURL, title string) *database.Post {
	t.Helper()

	resp := postForm(t, client, baseURL+"/new-post", url.Values{
		"title":    {title},
		"subtitle": {"a subtitle"},
		"body":     {"some **markdown** body"},
		"img_url":  {"https://example.com/cover.png"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	posts, err := database.ListPosts()
	require.NoError(t, err)
	for i := range posts {
		if posts[i].Title == title {
			return &posts[i]
		}
	}
	t.Fatalf("post %q was not created", title)
	return nil
}

func TestRegisterAutoLogin(t *testing.T) {
	srv := newTestServer(t)
	alice := newBrowser(t)

	registerVia(t, alice, srv.URL, "alice@example.com", "Alice")

	resp, err := alice.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Contains(t, readBody(t, resp), "Logged in as Alice")
}

func TestRegisterDuplicateEmailRedirectsToLogin(t *testing.T) {
	srv := newTestServer(t)
	alice := newBrowser(t)
	imposter := newBrowser(t)

	registerVia(t, alice, srv.URL, "alice@example.com", "Alice")

	resp := postForm(t, imposter, srv.URL+"/register", url.Values{
		"name":     {"Imposter"},
		"email":    {"alice@example.com"},
		"password": {"hunter22"},
	})
	assert.Equal(t, "/login", resp.Request.URL.Path)
	assert.Contains(t, readBody(t, resp), "User already exists")

	var count int64
	require.NoError(t, database.GetDB().Model(&database.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLoginMessages(t *testing.T) {
	srv := newTestServer(t)
	alice := newBrowser(t)
	registerVia(t, alice, srv.URL, "alice@example.com", "Alice")

	visitor := newBrowser(t)

	resp := postForm(t, visitor, srv.URL+"/login", url.Values{
		"email":    {"nobody@example.com"},
		"password": {"hunter22"},
	})
	assert.Equal(t, "/login", resp.Request.URL.Path)
	assert.Contains(t, readBody(t, resp), "That email does not exist")

	resp = postForm(t, visitor, srv.URL+"/login", url.Values{
		"email":    {"alice@example.com"},
		"password": {"wrong"},
	})
	assert.Contains(t, readBody(t, resp), "Password incorrect")

	resp = postForm(t, visitor, srv.URL+"/login", url.Values{
		"email":    {"alice@example.com"},
		"password": {"hunter22"},
	})
	assert.Equal(t, "/", resp.Request.URL.Path)
	assert.Contains(t, readBody(t, resp), "Logged in as Alice")
}

func TestLogoutIsIdempotent(t *testing.T) {
	srv := newTestServer(t)
	alice := newBrowser(t)
	registerVia(t, alice, srv.URL, "alice@example.com", "Alice")

	for i := 0; i < 2; i++ {
		resp, err := alice.Get(srv.URL + "/logout")
		require.NoError(t, err)
		body := readBody(t, resp)
		resp.Body.Close()
		assert.Equal(t, "/", resp.Request.URL.Path)
		assert.NotContains(t, body, "Logged in as")
	}
}

func TestAdminRoutesForbiddenForOthers(t *testing.T) {
	srv := newTestServer(t)
	admin := newBrowser(t)
	registerVia(t, admin, srv.URL, "alice@example.com", "Alice")
	post := createPostVia(t, admin, srv.URL, "Hello")

	bob := newBrowser(t)
	registerVia(t, bob, srv.URL, "bob@example.com", "Bob")
	anonymous := newBrowser(t)

	adminOnly := []string{
		"/new-post",
		"/edit-post/" + strconv.Itoa(int(post.ID)),
		"/delete/" + strconv.Itoa(int(post.ID)),
		"/deletec/1",
	}

	for _, path := range adminOnly {
		for _, client := range []*http.Client{bob, anonymous} {
			resp, err := client.Get(srv.URL + path)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equalf(t, http.StatusForbidden, resp.StatusCode, "GET %s", path)
		}
	}

	// the gate must run before the store mutation
	_, err := database.GetPost(post.ID)
	assert.NoError(t, err, "post must survive a forbidden delete attempt")
}

func TestAnonymousCommentRedirectsToLogin(t *testing.T) {
	srv := newTestServer(t)
	admin := newBrowser(t)
	registerVia(t, admin, srv.URL, "alice@example.com", "Alice")
	post := createPostVia(t, admin, srv.URL, "Hello")

	anonymous := newBrowser(t)
	resp := postForm(t, anonymous, srv.URL+"/post/"+strconv.Itoa(int(post.ID)), url.Values{
		"comment": {"drive-by comment"},
	})
	assert.Equal(t, "/login", resp.Request.URL.Path)
	assert.Contains(t, readBody(t, resp), "You need to login or register to comment.")

	var count int64
	require.NoError(t, database.GetDB().Model(&database.Comment{}).Count(&count).Error)
	assert.Zero(t, count, "no comment may be persisted for an anonymous visitor")
}

func TestShowPostNotFound(t *testing.T) {
	srv := newTestServer(t)
	visitor := newBrowser(t)

	resp, err := visitor.Get(srv.URL + "/post/12345")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStaticPages(t *testing.T) {
	srv := newTestServer(t)
	visitor := newBrowser(t)

	for path, want := range map[string]string{
		"/about":   "About Me",
		"/contact": "Contact Me",
	} {
		resp, err := visitor.Get(srv.URL + path)
		require.NoError(t, err)
		body := readBody(t, resp)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, want)
	}
}

func TestEditPostKeepsDate(t *testing.T) {
	srv := newTestServer(t)
	admin := newBrowser(t)
	registerVia(t, admin, srv.URL, "alice@example.com", "Alice")
	post := createPostVia(t, admin, srv.URL, "Hello")

	resp := postForm(t, admin, srv.URL+"/edit-post/"+strconv.Itoa(int(post.ID)), url.Values{
		"title":    {"Hello, Edited"},
		"subtitle": {"new subtitle"},
		"body":     {"new body"},
		"img_url":  {"https://example.com/new.png"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/post/"+strconv.Itoa(int(post.ID)), resp.Request.URL.Path)

	updated, err := database.GetPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello, Edited", updated.Title)
	assert.Equal(t,
		time.Time(post.Date).Format("2006-01-02"),
		time.Time(updated.Date).Format("2006-01-02"))
	assert.Equal(t, post.AuthorID, updated.AuthorID)
}

// The walkthrough: Alice registers first and becomes admin, posts "Hello";
// Bob registers, is refused the delete route, comments instead; Alice then
// deletes the whole post and Bob's comment disappears with it.
func TestAdminAndCommenterScenario(t *testing.T) {
	srv := newTestServer(t)

	alice := newBrowser(t)
	registerVia(t, alice, srv.URL, "alice@example.com", "Alice")
	post := createPostVia(t, alice, srv.URL, "Hello")

	bob := newBrowser(t)
	registerVia(t, bob, srv.URL, "bob@example.com", "Bob")

	resp, err := bob.Get(srv.URL + "/delete/" + strconv.Itoa(int(post.ID)))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	_, err = database.GetPost(post.ID)
	require.NoError(t, err, `post "Hello" must still be present`)

	resp = postForm(t, bob, srv.URL+"/post/"+strconv.Itoa(int(post.ID)), url.Values{
		"comment": {"Nice!"},
	})
	assert.Contains(t, readBody(t, resp), "Nice!")

	loaded, err := database.GetPost(post.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Comments, 1)
	assert.Equal(t, "Bob", loaded.Comments[0].Author.Name)
	assert.Equal(t, post.ID, loaded.Comments[0].PostID)

	resp, err = alice.Get(srv.URL + "/delete/" + strconv.Itoa(int(post.ID)))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, err = database.GetPost(post.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)

	var count int64
	require.NoError(t, database.GetDB().Unscoped().Model(&database.Comment{}).
		Where("post_id = ?", post.ID).Count(&count).Error)
	assert.Zero(t, count, "the comment must go with the post")
}

func TestDuplicateTitleFlash(t *testing.T) {
	srv := newTestServer(t)
	admin := newBrowser(t)
	registerVia(t, admin, srv.URL, "alice@example.com", "Alice")
	createPostVia(t, admin, srv.URL, "Hello")

	resp := postForm(t, admin, srv.URL+"/new-post", url.Values{
		"title":    {"Hello"},
		"subtitle": {"another take"},
		"body":     {"different body"},
		"img_url":  {"https://example.com/other.png"},
	})
	assert.Equal(t, "/new-post", resp.Request.URL.Path)
	assert.Contains(t, readBody(t, resp), "A post with that title already exists.")

	posts, err := database.ListPosts()
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestStaleSessionCookieFallsBackToAnonymous(t *testing.T) {
	srv := newTestServer(t)
	visitor := newBrowser(t)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	visitor.Jar.SetCookies(u, []*http.Cookie{{
		Name:  "authenticated_user_token",
		Value: "stale-token",
	}})

	resp, err := visitor.Get(srv.URL + "/")
	require.NoError(t, err)
	body := readBody(t, resp)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, body, "Logged in as")
	assert.True(t, strings.Contains(body, "Login"), "anonymous navbar should offer login")
}
