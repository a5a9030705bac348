package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textops/recontext/internal/core"
	"github.com/textops/recontext/internal/search"
)

type stubLLM struct {
	response string
	err      error
	calls    int
}

func (s *stubLLM) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

type stubSearcher struct {
	results []search.Result
	err     error
	calls   int
}

func (s *stubSearcher) Search(ctx context.Context, query string, num int) ([]search.Result, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func newTestRouter(l *stubLLM, se *stubSearcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return New(core.NewPipeline(l, se, nil)).SetupRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return w, payload
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&stubLLM{}, &stubSearcher{})

	w, payload := doJSON(t, r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", payload["status"])
	assert.Equal(t, "API is running", payload["message"])
}

func TestReconstruct_MissingText(t *testing.T) {
	l := &stubLLM{}
	se := &stubSearcher{}
	r := newTestRouter(l, se)

	w, payload := doJSON(t, r, http.MethodPost, "/api/reconstruct", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "No text provided", payload["error"])
	assert.Equal(t, 0, l.calls)
	assert.Equal(t, 0, se.calls)
}

func TestReconstruct_MalformedBody(t *testing.T) {
	l := &stubLLM{}
	r := newTestRouter(l, &stubSearcher{})

	w, payload := doJSON(t, r, http.MethodPost, "/api/reconstruct", `{"text": 42`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No text provided", payload["error"])
	assert.Equal(t, 0, l.calls)
}

func TestReconstruct_EmptyText(t *testing.T) {
	l := &stubLLM{}
	se := &stubSearcher{}
	r := newTestRouter(l, se)

	w, payload := doJSON(t, r, http.MethodPost, "/api/reconstruct", `{"text": "   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "Text cannot be empty", payload["error"])
	assert.Equal(t, 0, l.calls)
	assert.Equal(t, 0, se.calls)
}

func TestReconstruct_BackendFailure(t *testing.T) {
	l := &stubLLM{err: errors.New("generative backend unreachable")}
	se := &stubSearcher{}
	r := newTestRouter(l, se)

	w, payload := doJSON(t, r, http.MethodPost, "/api/reconstruct", `{"text": "lol brb"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, payload["success"])
	assert.Contains(t, payload["error"], "generative backend unreachable")
	assert.Equal(t, 0, se.calls)
}

func TestReconstruct_SearchFailure(t *testing.T) {
	l := &stubLLM{response: "Be right back."}
	se := &stubSearcher{err: errors.New("quota exceeded")}
	r := newTestRouter(l, se)

	w, payload := doJSON(t, r, http.MethodPost, "/api/reconstruct", `{"text": "brb"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, payload["error"], "quota exceeded")
}

func TestReconstruct_Success(t *testing.T) {
	l := &stubLLM{response: "Laughing out loud, be right back."}
	se := &stubSearcher{results: []search.Result{
		{Title: "Internet slang", Link: "https://example.com/slang", Snippet: "A glossary."},
	}}
	r := newTestRouter(l, se)

	w, payload := doJSON(t, r, http.MethodPost, "/api/reconstruct", `{"text": " lol brb "}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "lol brb", payload["original_text"])
	assert.Equal(t, "Laughing out loud, be right back.", payload["reconstructed_text"])

	sources, ok := payload["sources"].([]any)
	require.True(t, ok)
	require.Len(t, sources, 1)
	first := sources[0].(map[string]any)
	assert.Equal(t, "Internet slang", first["title"])
	assert.Equal(t, "https://example.com/slang", first["link"])
	assert.Equal(t, "A glossary.", first["snippet"])
}

func TestReconstruct_EmptySourcesStillSucceeds(t *testing.T) {
	l := &stubLLM{response: "Be right back."}
	se := &stubSearcher{results: []search.Result{}}
	r := newTestRouter(l, se)

	w, payload := doJSON(t, r, http.MethodPost, "/api/reconstruct", `{"text": "brb"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, payload["success"])
	assert.Empty(t, payload["sources"])
}
