// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/assignment-engine/internal/analyze"
	"github.com/pdiddy/assignment-engine/internal/linktext"
	"github.com/pdiddy/assignment-engine/pkg/types"
)

type stubBatcher struct {
	pages []linktext.Page
	got   []string
}

func (b *stubBatcher) FetchAll(_ context.Context, urls []string, _ io.Writer) linktext.BatchResult {
	b.got = urls
	return linktext.BatchResult{Fetched: len(b.pages), Failed: len(urls) - len(b.pages), Pages: b.pages}
}

const linkedDescription = `Write an essay on the reading at <a href="https://lms.example.edu/reading">this page</a>.`

func TestDraftInputsFetchesBeforeAnalysis(t *testing.T) {
	b := &stubBatcher{pages: []linktext.Page{{URL: "https://lms.example.edu/reading", Text: "Chapter 3 notes"}}}
	var progress bytes.Buffer

	analysis, external, err := draftInputs(context.Background(), linkedDescription, nil, "", b, &progress)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://lms.example.edu/reading"}, b.got)
	require.NotNil(t, external)
	assert.Contains(t, *external, "Chapter 3 notes")
	assert.Contains(t, analysis.Requirements, analyze.ExternalRequirementNote)
	assert.Contains(t, progress.String(), "links: 1 fetched, 0 failed")
}

func TestDraftInputs(t *testing.T) {
	given := "Rubric"
	dir := t.TempDir()
	savedPath := filepath.Join(dir, "analysis.json")
	require.NoError(t, os.WriteFile(savedPath,
		[]byte(`{"assignmentType":"Research Assignment","externalLinks":["https://lms.example.edu/saved"]}`), 0o644))

	tests := []struct {
		name         string
		external     *string
		analysisPath string
		pages        []linktext.Page
		noFetcher    bool
		wantFetched  []string
		wantExternal *string
		wantNote     bool
	}{
		{name: "no fetching", noFetcher: true},
		{
			name:         "given external content skips fetching",
			external:     &given,
			pages:        []linktext.Page{{Text: "unused"}},
			wantExternal: &given,
			wantNote:     true,
		},
		{
			name:        "all links fail",
			wantFetched: []string{"https://lms.example.edu/reading"},
		},
		{
			name:         "saved analysis links",
			analysisPath: savedPath,
			pages:        []linktext.Page{{URL: "https://lms.example.edu/saved", Text: "saved text"}},
			wantFetched:  []string{"https://lms.example.edu/saved"},
			wantExternal: ptr("Source: https://lms.example.edu/saved\n\nsaved text"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &stubBatcher{pages: tt.pages}
			var fetcher linkBatcher = b
			if tt.noFetcher {
				fetcher = nil
			}

			analysis, external, err := draftInputs(context.Background(), linkedDescription, tt.external, tt.analysisPath, fetcher, io.Discard)
			require.NoError(t, err)

			assert.Equal(t, tt.wantFetched, b.got)
			assert.Equal(t, tt.wantExternal, external)
			if tt.analysisPath != "" {
				assert.Equal(t, types.TypeResearch, analysis.AssignmentType)
				return
			}
			assert.Equal(t, tt.wantNote, slices.Contains(analysis.Requirements, analyze.ExternalRequirementNote))
		})
	}
}

