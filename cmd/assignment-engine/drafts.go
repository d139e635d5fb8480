// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/assignment-engine/internal/store"
	"github.com/pdiddy/assignment-engine/pkg/types"
)

var draftsCmd = &cobra.Command{
	Use:   "drafts",
	Short: "Manage saved drafts (save, list, show, submit, delete, export)",
	Long: `Drafts manages the local SQLite drafts database. There is one draft per
course and assignment; saving again replaces its content.`,
}

// --- save subcommand ---

var draftsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save draft content for a course assignment",
	RunE:  runDraftsSave,
}

func runDraftsSave(cmd *cobra.Command, args []string) error {
	courseID, _ := cmd.Flags().GetInt64("course")
	assignmentID, _ := cmd.Flags().GetInt64("assignment")
	if courseID <= 0 || assignmentID <= 0 {
		return fmt.Errorf("--course and --assignment must be positive")
	}
	file, _ := cmd.Flags().GetString("file")
	content, err := readText(file, cmd.InOrStdin())
	if err != nil {
		return err
	}
	var label types.AssignmentType
	if v, _ := cmd.Flags().GetString("type"); v != "" {
		label = types.ParseAssignmentType(v)
	}

	return withStore(func(st *store.Store) error {
		d, err := st.Save(context.Background(), courseID, assignmentID, label, content)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved draft %s (course %d, assignment %d)\n", d.ID, d.CourseID, d.AssignmentID)
		return nil
	})
}

// --- list subcommand ---

var draftsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved drafts, most recently updated first",
	RunE:  runDraftsList,
}

func runDraftsList(cmd *cobra.Command, args []string) error {
	opts, err := listOptsFromFlags(cmd)
	if err != nil {
		return err
	}
	return withStore(func(st *store.Store) error {
		drafts, err := st.List(context.Background(), opts)
		if err != nil {
			return err
		}
		if format, _ := cmd.Flags().GetString("format"); format != "table" {
			return writeStructured(cmd.OutOrStdout(), drafts, format)
		}
		formatDraftTable(cmd.OutOrStdout(), drafts)
		return nil
	})
}

func formatDraftTable(w io.Writer, drafts []types.StoredDraft) {
	if len(drafts) == 0 {
		fmt.Fprintln(w, "No drafts found.")
		return
	}

	fmt.Fprintf(w, "%-36s  %-8s  %-10s  %-22s  %-9s  %s\n",
		"ID", "Course", "Assignment", "Type", "Submitted", "Updated")
	fmt.Fprintln(w, strings.Repeat("-", 110))
	for _, d := range drafts {
		label := string(d.AssignmentType)
		if len(label) > 22 {
			label = label[:19] + "..."
		}
		fmt.Fprintf(w, "%-36s  %-8d  %-10d  %-22s  %-9t  %s\n",
			d.ID, d.CourseID, d.AssignmentID, label, d.Submitted, d.UpdatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(w, "\n%d drafts\n", len(drafts))
}

// --- show subcommand ---

var draftsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a saved draft's content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			d, err := st.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			if format, _ := cmd.Flags().GetString("format"); format != "markdown" {
				return writeStructured(cmd.OutOrStdout(), d, format)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), d.Content)
			return err
		})
	},
}

// --- submit subcommand ---

var draftsSubmitCmd = &cobra.Command{
	Use:   "submit <id>",
	Short: "Mark a saved draft as submitted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			d, err := st.MarkSubmitted(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "submitted draft %s\n", d.ID)
			return nil
		})
	},
}

// --- delete subcommand ---

var draftsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := st.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted draft %s\n", args[0])
			return nil
		})
	},
}

// --- export subcommand ---

var draftsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved drafts to YAML or JSON",
	Long: `Export writes the saved drafts (or a filtered subset) to export.yaml or
export.json in the data directory.`,
	RunE: runDraftsExport,
}

func runDraftsExport(cmd *cobra.Command, args []string) error {
	opts, err := listOptsFromFlags(cmd)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")

	return withStore(func(st *store.Store) error {
		var path string
		var err error
		switch format {
		case "yaml", "":
			path, err = st.ExportYAML(context.Background(), opts)
		case "json":
			path, err = st.ExportJSON(context.Background(), opts)
		default:
			return fmt.Errorf("unsupported format %q: use yaml or json", format)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
		return nil
	})
}

// --- shared helpers ---

func withStore(fn func(*store.Store) error) error {
	st, err := store.New(storeConfig())
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(st)
}

func listOptsFromFlags(cmd *cobra.Command) (store.ListOptions, error) {
	courseID, _ := cmd.Flags().GetInt64("course")
	limit, _ := cmd.Flags().GetInt("limit")
	opts := store.ListOptions{CourseID: courseID, MaxResults: limit}

	switch state, _ := cmd.Flags().GetString("state"); state {
	case "", "all":
	case "submitted":
		yes := true
		opts.Submitted = &yes
	case "open":
		no := false
		opts.Submitted = &no
	default:
		return opts, fmt.Errorf("unsupported state %q: use all, open, or submitted", state)
	}
	return opts, nil
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().Int64("course", 0, "filter by course ID")
	cmd.Flags().String("state", "all", "filter by state: all, open, or submitted")
	cmd.Flags().Int("limit", 0, "maximum drafts (0 = use default)")
}

func init() {
	draftsSaveCmd.Flags().Int64("course", 0, "course ID")
	draftsSaveCmd.Flags().Int64("assignment", 0, "assignment ID")
	draftsSaveCmd.Flags().String("type", "", "assignment type label")
	draftsSaveCmd.Flags().String("file", stdinPath, "read content from a file (- for stdin)")

	addFilterFlags(draftsListCmd)
	draftsListCmd.Flags().String("format", "table", "output format: table, json, or yaml")

	draftsShowCmd.Flags().String("format", "markdown", "output format: markdown, json, or yaml")

	addFilterFlags(draftsExportCmd)
	draftsExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	draftsCmd.AddCommand(draftsSaveCmd)
	draftsCmd.AddCommand(draftsListCmd)
	draftsCmd.AddCommand(draftsShowCmd)
	draftsCmd.AddCommand(draftsSubmitCmd)
	draftsCmd.AddCommand(draftsDeleteCmd)
	draftsCmd.AddCommand(draftsExportCmd)

	rootCmd.AddCommand(draftsCmd)
}
