// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

const exportLimit = 100000

// ExportYAML writes the catalog (or a filtered subset) to
// catalogDir/export.yaml.
func (s *Store) ExportYAML(ctx context.Context, opts QueryOptions) error {
	records, err := s.exportRecords(ctx, opts)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(filepath.Join(s.catalogDir, "export.yaml"), data, 0o644)
}

// ExportJSON writes the catalog (or a filtered subset) to
// catalogDir/export.json.
func (s *Store) ExportJSON(ctx context.Context, opts QueryOptions) error {
	records, err := s.exportRecords(ctx, opts)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(filepath.Join(s.catalogDir, "export.json"), data, 0o644)
}

func (s *Store) exportRecords(ctx context.Context, opts QueryOptions) ([]Record, error) {
	opts.MaxResults = exportLimit
	records, err := s.Search(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	return records, nil
}
