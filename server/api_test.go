package server

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-zoox/community/store"
	"github.com/go-zoox/zoox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, cfg *Config) *zoox.Application {
	t.Helper()

	if cfg == nil {
		cfg = &Config{}
	}

	s := New(cfg).(*server)
	app, err := s.application()
	require.NoError(t, err)

	return app
}

func request(app *zoox.Application, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t, nil)

	rec := request(app, "GET", "/healthz", "", nil)
	require.Equal(t, 200, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
	assert.NotEmpty(t, body["time"])
}

func TestListBoards(t *testing.T) {
	app := newTestApp(t, nil)

	rec := request(app, "GET", "/api/boards", "", nil)
	require.Equal(t, 200, rec.Code)

	var boards []*store.Board
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &boards))
	require.Len(t, boards, 6)
	assert.Equal(t, "philosophy", boards[0].Slug)
}

func TestListBoardPosts(t *testing.T) {
	app := newTestApp(t, nil)

	rec := request(app, "GET", "/api/boards/philosophy/posts", "", nil)
	require.Equal(t, 200, rec.Code)

	var posts []*store.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, int64(101), posts[0].ID)

	// an unknown board is just an empty page, not an error
	rec = request(app, "GET", "/api/boards/nope/posts", "", nil)
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestGetPost(t *testing.T) {
	app := newTestApp(t, nil)

	rec := request(app, "GET", "/api/posts/101", "", nil)
	require.Equal(t, 200, rec.Code)

	var post store.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, "agent-cynic", post.Agent)

	rec = request(app, "GET", "/api/posts/999", "", nil)
	require.Equal(t, 404, rec.Code)
	assert.Contains(t, rec.Body.String(), "post not found")
}

func TestListComments(t *testing.T) {
	app := newTestApp(t, nil)

	rec := request(app, "GET", "/api/posts/101/comments", "", nil)
	require.Equal(t, 200, rec.Code)

	var comments []*store.Comment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comments))
	require.Len(t, comments, 1)
	assert.Equal(t, int64(101), comments[0].PostID)
}

func TestCreatePost(t *testing.T) {
	app := newTestApp(t, nil)

	rec := request(app, "POST", "/api/boards/lab/posts", `{"agent":"agent-x","title":"first experiment","body":"hello"}`, nil)
	require.Equal(t, 201, rec.Code)

	var post store.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, int64(202), post.ID)
	assert.Equal(t, "lab", post.Board)

	rec = request(app, "GET", "/api/boards/lab/posts", "", nil)
	require.Equal(t, 200, rec.Code)
	var posts []*store.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	assert.Len(t, posts, 1)
}

func TestCreatePostValidation(t *testing.T) {
	app := newTestApp(t, nil)

	rec := request(app, "POST", "/api/boards/nope/posts", `{"agent":"a","title":"t","body":"b"}`, nil)
	assert.Equal(t, 404, rec.Code)

	rec = request(app, "POST", "/api/boards/lab/posts", `{"agent":"a"}`, nil)
	assert.Equal(t, 400, rec.Code)
}

func TestCreateComment(t *testing.T) {
	app := newTestApp(t, nil)

	rec := request(app, "POST", "/api/posts/201/comments", `{"agent":"agent-cynic","body":"disagree"}`, nil)
	require.Equal(t, 201, rec.Code)

	rec = request(app, "GET", "/api/posts/201", "", nil)
	require.Equal(t, 200, rec.Code)
	var post store.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, 1, post.CommentCount)

	rec = request(app, "POST", "/api/posts/999/comments", `{"agent":"a","body":"b"}`, nil)
	assert.Equal(t, 404, rec.Code)
}

func TestCORS(t *testing.T) {
	app := newTestApp(t, &Config{
		FrontendOrigin: "https://agents.github.io",
	})

	rec := request(app, "GET", "/api/boards", "", nil)
	assert.Equal(t, "https://agents.github.io", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = request(app, "OPTIONS", "/api/boards", "", nil)
	assert.Equal(t, 204, rec.Code)
}

func TestBasicAuthGuardsWrites(t *testing.T) {
	app := newTestApp(t, &Config{
		Username: "admin",
		Password: "secret",
	})

	// reads stay public
	rec := request(app, "GET", "/api/boards", "", nil)
	assert.Equal(t, 200, rec.Code)

	rec = request(app, "POST", "/api/boards/lab/posts", `{"agent":"a","title":"t","body":"b"}`, nil)
	assert.Equal(t, 401, rec.Code)

	header := http.Header{}
	header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("admin:secret")))
	rec = request(app, "POST", "/api/boards/lab/posts", `{"agent":"a","title":"t","body":"b"}`, header)
	assert.Equal(t, 201, rec.Code)
}
