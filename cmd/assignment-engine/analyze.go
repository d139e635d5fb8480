// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/assignment-engine/internal/analyze"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [description]",
	Short: "Classify an assignment and extract topics, requirements, and links",
	Long: `Analyze reads an assignment description (arguments, --file, or --file -
for stdin) and prints its analysis: assignment type, topics, requirements,
suggested approach, external links, and a drafting prompt.

When external content is supplied with --external or --external-file, a note
that it was incorporated is appended to the requirements.`,
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	description, err := descriptionInput(cmd, args)
	if err != nil {
		return err
	}
	external, err := externalInput(cmd)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	return writeStructured(cmd.OutOrStdout(), analyze.Analyze(description, external), format)
}

func init() {
	addDescriptionFlags(analyzeCmd)
	analyzeCmd.Flags().String("format", "json", "output format: json or yaml")

	rootCmd.AddCommand(analyzeCmd)
}
