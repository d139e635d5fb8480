// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/assignment-engine/internal/enhance"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance <instruction>",
	Short: "Rewrite draft content according to an instruction",
	Long: `Enhance applies an instruction to draft content read from --file (default
stdin) and prints the result. Known instructions (case-insensitive):

  improve writing quality
  fix grammar and spelling
  make more concise
  expand with more details
  add academic citations

Any other instruction leaves the content unchanged and appends a note
naming the instruction.`,
	RunE: runEnhance,
}

func runEnhance(cmd *cobra.Command, args []string) error {
	if list, _ := cmd.Flags().GetBool("list"); list {
		for _, instr := range enhance.Instructions() {
			fmt.Fprintln(cmd.OutOrStdout(), instr)
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("instruction required")
	}

	file, _ := cmd.Flags().GetString("file")
	content, err := readText(file, cmd.InOrStdin())
	if err != nil {
		return err
	}

	instruction := strings.Join(args, " ")
	if _, ok := enhance.Lookup(instruction); !ok {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: unrecognized instruction %q, content left unchanged\n", instruction)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), enhance.Enhance(content, instruction))
	return err
}

func init() {
	enhanceCmd.Flags().String("file", stdinPath, "read content from a file (- for stdin)")
	enhanceCmd.Flags().Bool("list", false, "list known instructions")

	rootCmd.AddCommand(enhanceCmd)
}
