package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/starford/ansuz/internal/fingerprint"
	"github.com/starford/ansuz/internal/testutil"
)

func testRouter(t *testing.T, files map[string]string, authToken string) http.Handler {
	t.Helper()
	h := NewHandler(testutil.Dispatcher(t, files), fingerprint.DefaultRuleset())
	return NewRouter(h, authToken != "", authToken)
}

func postInspect(t *testing.T, router http.Handler, token string, targets ...string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(InspectRequest{Targets: targets})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/inspect", bytes.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestInspect_MixedBatch(t *testing.T) {
	router := testRouter(t, map[string]string{
		"a.md": "---\ntitle: A\n---\nbody a\n",
		"b.md": "body b\n",
	}, "")

	w := postInspect(t, router, "", "a.md", "missing.md", "b.md", "image.png")
	require.Equal(t, http.StatusOK, w.Code)

	var resp InspectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Results, 2)
	require.Equal(t, "a.md", resp.Results[0].Target)
	require.Equal(t, "b.md", resp.Results[1].Target)
	require.True(t, resp.Results[0].Document.HasFrontmatter)

	require.Len(t, resp.Failures, 1)
	require.Equal(t, "missing.md", resp.Failures[0].Target)
	require.NotEmpty(t, resp.Failures[0].Error)

	require.Equal(t, []string{"image.png"}, resp.Unknown)
}

func TestInspect_EmptyTargets(t *testing.T) {
	router := testRouter(t, nil, "")
	w := postInspect(t, router, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInspect_BadBody(t *testing.T) {
	router := testRouter(t, nil, "")
	req := httptest.NewRequest(http.MethodPost, "/inspect", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClassify(t *testing.T) {
	router := testRouter(t, nil, "")

	cases := map[string]fingerprint.Kind{
		"notes.md":  fingerprint.KindMarkdown,
		"page.html": fingerprint.KindHTML,
		"image.png": fingerprint.KindUnknown,
	}
	for target, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/classify?target="+target, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp ClassifyResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, want, resp.Kind, "target %q", target)
	}
}

func TestClassify_MissingTarget(t *testing.T) {
	router := testRouter(t, nil, "")
	req := httptest.NewRequest(http.MethodGet, "/classify", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuth_TokenRequired(t *testing.T) {
	router := testRouter(t, map[string]string{"a.md": "x\n"}, "sekrit")

	w := postInspect(t, router, "", "a.md")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = postInspect(t, router, "wrong", "a.md")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = postInspect(t, router, "sekrit", "a.md")
	require.Equal(t, http.StatusOK, w.Code)
}
