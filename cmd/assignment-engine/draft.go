// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/assignment-engine/internal/analyze"
	"github.com/pdiddy/assignment-engine/internal/draft"
	"github.com/pdiddy/assignment-engine/internal/linktext"
	"github.com/pdiddy/assignment-engine/internal/store"
	"github.com/pdiddy/assignment-engine/pkg/types"
)

var draftCmd = &cobra.Command{
	Use:   "draft [description]",
	Short: "Generate a Markdown draft for an assignment",
	Long: `Draft analyzes the description (or loads a saved analysis with
--analysis) and renders the draft template for its assignment type.

With --fetch-links the readable text of every link in the description is
downloaded and supplied as external content. With --course and --assignment
the draft is also saved to the drafts database.`,
	RunE: runDraft,
}

func runDraft(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	description, err := descriptionInput(cmd, args)
	if err != nil {
		return err
	}
	external, err := externalInput(cmd)
	if err != nil {
		return err
	}

	analysisPath, _ := cmd.Flags().GetString("analysis")
	var fetcher linkBatcher
	if fetchLinks, _ := cmd.Flags().GetBool("fetch-links"); fetchLinks {
		fetcher = linktext.New(fetchConfig())
	}
	analysis, external, err := draftInputs(ctx, description, external, analysisPath, fetcher, os.Stderr)
	if err != nil {
		return err
	}

	result := draft.Generate(description, analysis, external)

	courseID, _ := cmd.Flags().GetInt64("course")
	assignmentID, _ := cmd.Flags().GetInt64("assignment")
	if courseID != 0 || assignmentID != 0 {
		if courseID <= 0 || assignmentID <= 0 {
			return fmt.Errorf("--course and --assignment must both be positive to save a draft")
		}
		st, err := store.New(storeConfig())
		if err != nil {
			return err
		}
		defer st.Close()
		saved, err := st.Save(ctx, courseID, assignmentID, analysis.AssignmentType, result.Content)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "saved draft %s\n", saved.ID)
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "markdown" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), result.Content)
		return err
	}
	return writeStructured(cmd.OutOrStdout(), result, format)
}

type linkBatcher interface {
	FetchAll(ctx context.Context, urls []string, w io.Writer) linktext.BatchResult
}

// draftInputs resolves the analysis and external content for a draft. When
// fetcher is non-nil and no external content was given, the description's
// links are fetched first so that the analysis sees the fetched text as
// external content. A saved analysis at analysisPath is used as-is.
func draftInputs(ctx context.Context, description string, external *string, analysisPath string, fetcher linkBatcher, progress io.Writer) (types.AnalysisResult, *string, error) {
	var saved *types.AnalysisResult
	if analysisPath != "" {
		a, err := loadAnalysis(analysisPath)
		if err != nil {
			return types.AnalysisResult{}, nil, err
		}
		saved = &a
	}

	if fetcher != nil && external == nil {
		links := analyze.ExtractLinks(description)
		if saved != nil {
			links = saved.ExternalLinks
		}
		if len(links) > 0 {
			result := fetcher.FetchAll(ctx, links, progress)
			fmt.Fprintf(progress, "links: %d fetched, %d failed\n", result.Fetched, result.Failed)
			if len(result.Pages) > 0 {
				text := linktext.Combine(result.Pages)
				external = &text
			}
		}
	}

	if saved != nil {
		return *saved, external, nil
	}
	return analyze.Analyze(description, external), external, nil
}

// loadAnalysis reads an analysis previously written by the analyze command.
// JSON is tried first, then YAML.
func loadAnalysis(path string) (types.AnalysisResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.AnalysisResult{}, fmt.Errorf("reading analysis %s: %w", path, err)
	}
	var a types.AnalysisResult
	if err := json.Unmarshal(data, &a); err == nil {
		return a, nil
	}
	if err := yaml.Unmarshal(data, &a); err != nil {
		return types.AnalysisResult{}, fmt.Errorf("parsing analysis %s: %w", path, err)
	}
	return a, nil
}

func init() {
	addDescriptionFlags(draftCmd)
	draftCmd.Flags().String("analysis", "", "use a saved analysis (JSON or YAML) instead of analyzing")
	draftCmd.Flags().Bool("fetch-links", false, "fetch linked pages and use their text as external content")
	draftCmd.Flags().Int64("course", 0, "course ID to save the draft under")
	draftCmd.Flags().Int64("assignment", 0, "assignment ID to save the draft under")
	draftCmd.Flags().String("format", "markdown", "output format: markdown, json, or yaml")

	rootCmd.AddCommand(draftCmd)
}
