// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/assignment-engine/internal/analyze"
	"github.com/pdiddy/assignment-engine/internal/linktext"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [url...]",
	Short: "Download linked pages and extract their readable text",
	Long: `Fetch downloads each URL and extracts its readable text. With --from
the links are taken from an assignment description file instead. The
combined text can be passed to draft with --external-file.

If .secrets/lms-token exists it is sent as a bearer token to https links
on fetch.lms_host (ASSIGNMENT_ENGINE_FETCH_LMS_HOST) so that pages hosted on
the learning management system can be read. Other hosts never receive it.`,
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	urls := args
	if from, _ := cmd.Flags().GetString("from"); from != "" {
		description, err := readText(from, cmd.InOrStdin())
		if err != nil {
			return err
		}
		urls = append(urls, analyze.ExtractLinks(description)...)
	}
	if len(urls) == 0 {
		return fmt.Errorf("no links: pass URLs as arguments or use --from")
	}

	result := linktext.New(fetchConfig()).FetchAll(context.Background(), urls, os.Stderr)
	fmt.Fprintf(os.Stderr, "\nFetch complete: %d fetched, %d failed (total %d)\n",
		result.Fetched, result.Failed, result.Total())

	format, _ := cmd.Flags().GetString("format")
	if format == "text" {
		fmt.Fprintln(cmd.OutOrStdout(), linktext.Combine(result.Pages))
	} else if err := writeStructured(cmd.OutOrStdout(), result.Pages, format); err != nil {
		return err
	}

	if result.Fetched == 0 {
		return fmt.Errorf("no links could be read")
	}
	return nil
}

func init() {
	fetchCmd.Flags().String("from", "", "extract links from an assignment description file (- for stdin)")
	fetchCmd.Flags().String("format", "text", "output format: text, json, or yaml")

	rootCmd.AddCommand(fetchCmd)
}
