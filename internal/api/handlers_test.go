package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"site_clone_server/internal/pipeline"
)

type fakeCloner struct {
	gotReq pipeline.Request
	result pipeline.Result
	err    error
}

func (f *fakeCloner) Clone(ctx context.Context, req pipeline.Request) (pipeline.Result, error) {
	f.gotReq = req
	return f.result, f.err
}

func newTestRouter(cloner Cloner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router, NewAPIHandler(cloner))
	return router
}

func postClone(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/clone", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCloneWebsiteSuccess(t *testing.T) {
	cloner := &fakeCloner{result: pipeline.Result{
		Status:          "success",
		SimilarityScore: 0.82,
		GenerationTime:  12.5,
	}}
	router := newTestRouter(cloner)

	w := postClone(t, router, `{"url": "https://example.com"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp pipeline.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.InDelta(t, 0.82, resp.SimilarityScore, 0.001)

	// Omitted framework defaults to react before the pipeline runs.
	assert.Equal(t, "react", cloner.gotReq.Framework)
	assert.Equal(t, "https://example.com", cloner.gotReq.URL)
}

func TestCloneWebsitePassesOptions(t *testing.T) {
	cloner := &fakeCloner{result: pipeline.Result{Status: "success"}}
	router := newTestRouter(cloner)

	w := postClone(t, router, `{
		"url": "https://example.com",
		"framework": "vue",
		"options": {"generated_url": "https://clone.example.com", "run_lighthouse": true}
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "vue", cloner.gotReq.Framework)
	assert.Equal(t, "https://clone.example.com", cloner.gotReq.Options.GeneratedURL)
	assert.True(t, cloner.gotReq.Options.RunLighthouse)
}

func TestCloneWebsiteRejectsMissingURL(t *testing.T) {
	router := newTestRouter(&fakeCloner{})

	w := postClone(t, router, `{"framework": "react"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCloneWebsiteRejectsInvalidURL(t *testing.T) {
	router := newTestRouter(&fakeCloner{})

	w := postClone(t, router, `{"url": "not a url"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCloneWebsiteValidationErrorIs400(t *testing.T) {
	cloner := &fakeCloner{err: &pipeline.ValidationError{Issues: []string{"missing required file: package.json"}}}
	router := newTestRouter(cloner)

	w := postClone(t, router, `{"url": "https://example.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing required file")
}

func TestCloneWebsiteInternalErrorIs500(t *testing.T) {
	cloner := &fakeCloner{err: errors.New("browser crashed")}
	router := newTestRouter(cloner)

	w := postClone(t, router, `{"url": "https://example.com"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// The failure reason rides along so callers can report it.
	assert.Contains(t, w.Body.String(), "Failed to clone website")
	assert.Contains(t, w.Body.String(), "browser crashed")
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(&fakeCloner{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
	assert.Contains(t, w.Body.String(), "timestamp")
}

func TestRootEndpointListsRoutes(t *testing.T) {
	router := newTestRouter(&fakeCloner{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "POST /clone")
}
