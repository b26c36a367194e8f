package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fastapply/fastapply/internal/aggregator"
	"github.com/fastapply/fastapply/internal/jobs"
	"github.com/fastapply/fastapply/internal/match"
	"github.com/fastapply/fastapply/internal/profile"
	"github.com/fastapply/fastapply/internal/sources"
)

type stubSource struct {
	postings []*jobs.Posting
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Search(context.Context, string) ([]*jobs.Posting, error) {
	return s.postings, nil
}

func newTestServer(srcs ...sources.Source) *Server {
	logger := zap.NewNop()
	agg := aggregator.New(srcs, match.Coverage{}, logger)
	return New("127.0.0.1:0", agg, profile.NewExtractor(nil), logger)
}

func uploadRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/extract", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestExtractEndpoint(t *testing.T) {
	srv := newTestServer()
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, uploadRequest(t, "resume.txt",
		"Jane Smith\njane.smith@example.com\nSkilled in React and SQL"))

	require.Equal(t, http.StatusOK, rec.Code)

	var got profile.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Jane Smith", got.Name)
	assert.Equal(t, "jane.smith@example.com", got.Email)
	assert.Contains(t, got.Skills, "react")
	assert.Contains(t, got.Skills, "sql")
}

func TestExtractEndpointUnsupportedExtension(t *testing.T) {
	srv := newTestServer()
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, uploadRequest(t, "resume.odt", "text"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported file type")
}

func TestExtractEndpointCorruptDocument(t *testing.T) {
	srv := newTestServer()
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, uploadRequest(t, "resume.pdf", "not a pdf"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestExtractEndpointMissingFile(t *testing.T) {
	srv := newTestServer()
	rec := httptest.NewRecorder()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("note", "no file here"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/extract", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchEndpoint(t *testing.T) {
	src := &stubSource{postings: []*jobs.Posting{
		{Title: "Dev A", Company: "Acme", Description: "React and Node.js role", Location: "Remote"},
	}}
	srv := newTestServer(src)
	rec := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodPost, "/api/search",
		strings.NewReader(`{"skills": ["React", "Node.js"], "country": "", "minSalary": 0}`))
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result jobs.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.Jobs, 1)
	assert.Equal(t, 100, result.Jobs[0].MatchPercent)
	assert.Equal(t, 1, result.TotalPages)
}

func TestSearchEndpointBadBody(t *testing.T) {
	srv := newTestServer()
	rec := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader("{"))
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}
