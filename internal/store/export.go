// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/assignment-engine/pkg/types"
)

const exportLimit = 100000

// ExportYAML writes the drafts matching opts to DataDir/export.yaml and
// returns the file path. Unlike List, a zero MaxResults exports everything.
func (s *Store) ExportYAML(ctx context.Context, opts ListOptions) (string, error) {
	drafts, err := s.exportDrafts(ctx, opts)
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(drafts)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	return s.writeExport("export.yaml", data)
}

// ExportJSON writes the drafts matching opts to DataDir/export.json and
// returns the file path.
func (s *Store) ExportJSON(ctx context.Context, opts ListOptions) (string, error) {
	drafts, err := s.exportDrafts(ctx, opts)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(drafts, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	return s.writeExport("export.json", data)
}

func (s *Store) exportDrafts(ctx context.Context, opts ListOptions) ([]types.StoredDraft, error) {
	if opts.MaxResults <= 0 {
		opts.MaxResults = exportLimit
	}
	drafts, err := s.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	return drafts, nil
}

func (s *Store) writeExport(name string, data []byte) (string, error) {
	path := filepath.Join(s.dataDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
