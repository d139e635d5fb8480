// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/assignment-engine/internal/draft"
	"github.com/pdiddy/assignment-engine/internal/linktext"
	"github.com/pdiddy/assignment-engine/internal/store"
	"github.com/pdiddy/assignment-engine/pkg/types"
)

type fakeFetcher struct {
	pages map[string]linktext.Page
}

func (f fakeFetcher) Fetch(_ context.Context, url string) (linktext.Page, error) {
	p, ok := f.pages[url]
	if !ok {
		return linktext.Page{}, errors.New("HTTP 404")
	}
	return p, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	st, err := store.New(types.StoreConfig{DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	links := fakeFetcher{pages: map[string]linktext.Page{
		"https://course.example.edu/brief": {URL: "https://course.example.edu/brief", Title: "Brief", Text: "Use peer-reviewed sources."},
	}}
	return New(types.ServerConfig{}, NewLogger("error", io.Discard), st, links)
}

// do sends a request with an optional JSON body and returns the recorder.
func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAnalyzeAssignment(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/ai/analyze-assignment",
		`{"assignmentDetails":"Build a python program that sorts numbers."}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decode[types.AnalysisResult](t, rec)
	assert.Equal(t, types.TypeProgramming, got.AssignmentType)
	assert.Equal(t, []string{"Python"}, got.Topics)
	assert.Equal(t, []string{}, got.ExternalLinks)
	assert.NotEmpty(t, got.CustomPrompt)
	assert.Contains(t, rec.Body.String(), `"suggestedApproach"`)
}

func TestAnalyzeAssignmentExternalContent(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name     string
		body     string
		wantNote bool
	}{
		{"absent", `{"assignmentDetails":"Write an essay."}`, false},
		{"null", `{"assignmentDetails":"Write an essay.","externalContent":null}`, false},
		{"empty string counts as supplied", `{"assignmentDetails":"Write an essay.","externalContent":""}`, true},
		{"text", `{"assignmentDetails":"Write an essay.","externalContent":"More rules."}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/api/ai/analyze-assignment", tt.body)
			require.Equal(t, http.StatusOK, rec.Code)
			got := decode[types.AnalysisResult](t, rec)
			require.NotEmpty(t, got.Requirements)
			last := got.Requirements[len(got.Requirements)-1]
			assert.Equal(t, tt.wantNote, last == "Additional requirements from external resources have been incorporated.")
		})
	}
}

func TestAnalyzeAssignmentEmptyDescription(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/api/ai/analyze-assignment", `{"assignmentDetails":""}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[types.AnalysisResult](t, rec)
	assert.Equal(t, types.TypeGeneral, got.AssignmentType)
	assert.Equal(t, []string{"General Assignment"}, got.Topics)
}

func TestValidationErrors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name       string
		path       string
		body       string
		wantFields []string
	}{
		{"analyze missing details", "/api/ai/analyze-assignment", `{}`, []string{"assignmentDetails"}},
		{"analyze null details", "/api/ai/analyze-assignment", `{"assignmentDetails":null}`, []string{"assignmentDetails"}},
		{"enhance missing both", "/api/ai/enhance-content", `{}`, []string{"content", "instruction"}},
		{"draft missing analysis", "/api/ai/generate-draft", `{"assignmentDetails":"x"}`, []string{"analysisResult"}},
		{
			"draft incomplete analysis", "/api/ai/generate-draft",
			`{"assignmentDetails":"x","analysisResult":{"assignmentType":"Writing Assignment","topics":[]}}`,
			[]string{"analysisResult.requirements", "analysisResult.suggestedApproach", "analysisResult.externalLinks", "analysisResult.customPrompt"},
		},
		{"link not a url", "/api/links/extract", `{"url":"not a url"}`, []string{"url"}},
		{"draft ids must be positive", "/api/drafts", `{"courseId":0,"assignmentId":-1,"content":"x"}`, []string{"courseId", "assignmentId"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			body := decode[struct {
				Message string            `json:"message"`
				Errors  map[string]string `json:"errors"`
			}](t, rec)
			assert.Equal(t, "validation failed", body.Message)
			assert.Len(t, body.Errors, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, body.Errors, f)
			}
		})
	}
}

func TestMalformedJSON(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/api/ai/enhance-content", `{"content":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateDraft(t *testing.T) {
	s := newTestServer(t)

	analysisRec := do(t, s, http.MethodPost, "/api/ai/analyze-assignment",
		`{"assignmentDetails":"Prepare a presentation on music history."}`)
	require.Equal(t, http.StatusOK, analysisRec.Code)

	body := `{"assignmentDetails":"Prepare a presentation on music history.","analysisResult":` +
		analysisRec.Body.String() + `,"externalContent":"Use primary sources."}`
	rec := do(t, s, http.MethodPost, "/api/ai/generate-draft", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decode[types.DraftResult](t, rec)
	assert.True(t, strings.HasPrefix(got.Content, "# History\n"), "title should be the first topic")
	assert.Contains(t, got.Content, "### Slide 1: Title Slide")
	assert.Contains(t, got.Content, "Additional Context:\nUse primary sources.")
	assert.Equal(t, []string{draft.ExternalCitation}, got.Citations)
	assert.Equal(t, draft.Notes, got.Notes)
}

func TestGenerateDraftWithoutExternalContentOmitsCitations(t *testing.T) {
	s := newTestServer(t)
	body := `{"assignmentDetails":"Summarize the reading.","analysisResult":{"assignmentType":"Quiz/Test",` +
		`"topics":[],"requirements":[],"suggestedApproach":"1. Review","externalLinks":[],"customPrompt":""}}`
	rec := do(t, s, http.MethodPost, "/api/ai/generate-draft", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.NotContains(t, rec.Body.String(), `"citations"`)
	got := decode[types.DraftResult](t, rec)
	assert.Contains(t, got.Content, "## Introduction")
	assert.Contains(t, got.Content, "## 1. Review")
}

func TestEnhanceContent(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name        string
		instruction string
		content     string
		want        string
	}{
		{"grammar", "Fix Grammar and Spelling", "i dont know", "I don't know"},
		{"concise", "make more concise", "in order to pass", "to pass"},
		{"unknown", "Make it rhyme", "Body", "Body\n\n*This content has been enhanced based on the instruction: \"Make it rhyme\"*"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reqBody, err := json.Marshal(map[string]string{"content": tt.content, "instruction": tt.instruction})
			require.NoError(t, err)
			rec := do(t, s, http.MethodPost, "/api/ai/enhance-content", string(reqBody))
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, decode[enhanceResponse](t, rec).Content)
		})
	}
}

func TestExtractLink(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/links/extract", `{"url":"https://course.example.edu/brief"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[linktext.Page](t, rec)
	assert.Equal(t, "Use peer-reviewed sources.", got.Text)

	rec = do(t, s, http.MethodPost, "/api/links/extract", `{"url":"https://course.example.edu/missing"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestExtractLinkWithholdsLMSToken(t *testing.T) {
	var gotAuth string
	foreign := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "text/plain")
		io.WriteString(w, "public page")
	}))
	defer foreign.Close()

	links := linktext.New(types.FetchConfig{LMSToken: "lms-secret", LMSHost: "canvas.example.edu"})
	s := New(types.ServerConfig{}, NewLogger("error", io.Discard), nil, links)

	rec := do(t, s, http.MethodPost, "/api/links/extract", `{"url":"`+foreign.URL+`/x"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "public page", decode[linktext.Page](t, rec).Text)
	assert.Empty(t, gotAuth)
}

func TestUnconfiguredDependencies(t *testing.T) {
	s := New(types.ServerConfig{}, NewLogger("error", io.Discard), nil, nil)

	rec := do(t, s, http.MethodGet, "/api/drafts", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/links/extract", `{"url":"https://example.edu"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/ai/enhance-content", `{"content":"x","instruction":"y"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDraftLifecycle(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/drafts",
		`{"courseId":42,"assignmentId":7,"assignmentType":"Writing Assignment","content":"v1"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	saved := decode[types.StoredDraft](t, rec)
	assert.Equal(t, "v1", saved.Content)
	assert.False(t, saved.Submitted)

	rec = do(t, s, http.MethodPost, "/api/drafts", `{"courseId":42,"assignmentId":7,"content":"v2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resaved := decode[types.StoredDraft](t, rec)
	assert.Equal(t, saved.ID, resaved.ID, "saving the same assignment updates in place")
	assert.Equal(t, "v2", resaved.Content)

	rec = do(t, s, http.MethodGet, "/api/drafts/"+saved.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v2", decode[types.StoredDraft](t, rec).Content)

	rec = do(t, s, http.MethodPost, "/api/drafts/"+saved.ID+"/submit", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[types.StoredDraft](t, rec).Submitted)

	rec = do(t, s, http.MethodGet, "/api/drafts?courseId=42&submitted=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]types.StoredDraft](t, rec), 1)

	rec = do(t, s, http.MethodGet, "/api/drafts?submitted=false", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do(t, s, http.MethodDelete, "/api/drafts/"+saved.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, s, http.MethodGet, "/api/drafts/"+saved.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDraftNotFound(t *testing.T) {
	s := newTestServer(t)
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/drafts/nope"},
		{http.MethodPost, "/api/drafts/nope/submit"},
		{http.MethodDelete, "/api/drafts/nope"},
	} {
		rec := do(t, s, tc.method, tc.path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestListDraftsBadQuery(t *testing.T) {
	s := newTestServer(t)
	for _, q := range []string{"courseId=abc", "submitted=maybe", "limit=-1"} {
		rec := do(t, s, http.MethodGet, "/api/drafts?"+q, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	do(t, s, http.MethodPost, "/api/ai/analyze-assignment", `{"assignmentDetails":"Take the quiz."}`)
	do(t, s, http.MethodPost, "/api/ai/enhance-content", `{"content":"x","instruction":"something new"}`)

	rec := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `assignment_engine_analyses_total{assignment_type="Quiz/Test"}`)
	assert.Contains(t, body, `assignment_engine_enhancements_total{instruction="other"}`)
	assert.Contains(t, body, `assignment_engine_http_requests_total{method="POST",route="/api/ai/analyze-assignment",status="200"}`)
}

func TestNewLoggerLevel(t *testing.T) {
	assert.Equal(t, "debug", NewLogger("debug", io.Discard).GetLevel().String())
	assert.Equal(t, "info", NewLogger("verbose", io.Discard).GetLevel().String())
}
