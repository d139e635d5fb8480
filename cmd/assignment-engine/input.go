// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

// stdinPath selects standard input wherever a file path is accepted.
const stdinPath = "-"

// readText returns the contents of path, or of stdin when path is "-".
func readText(path string, stdin io.Reader) (string, error) {
	if path == stdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// descriptionInput resolves the assignment description from --file or the
// positional arguments.
func descriptionInput(cmd *cobra.Command, args []string) (string, error) {
	file, _ := cmd.Flags().GetString("file")
	switch {
	case file != "" && len(args) > 0:
		return "", fmt.Errorf("provide the description as arguments or --file, not both")
	case file != "":
		return readText(file, cmd.InOrStdin())
	case len(args) > 0:
		return strings.Join(args, " "), nil
	default:
		return "", fmt.Errorf("description required: pass it as arguments or with --file")
	}
}

// externalInput returns external content when --external or
// --external-file was given. An explicitly empty --external still counts as
// supplied.
func externalInput(cmd *cobra.Command) (*string, error) {
	if cmd.Flags().Changed("external-file") {
		path, _ := cmd.Flags().GetString("external-file")
		text, err := readText(path, cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		return &text, nil
	}
	if cmd.Flags().Changed("external") {
		text, _ := cmd.Flags().GetString("external")
		return &text, nil
	}
	return nil, nil
}

func addDescriptionFlags(cmd *cobra.Command) {
	cmd.Flags().String("file", "", "read the description from a file (- for stdin)")
	cmd.Flags().String("external", "", "external content supplied with the description")
	cmd.Flags().String("external-file", "", "read external content from a file (- for stdin)")
	cmd.MarkFlagsMutuallyExclusive("external", "external-file")
}

// writeStructured encodes v to w as indented JSON or YAML.
func writeStructured(w io.Writer, v any, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
}
