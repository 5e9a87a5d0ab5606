// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"strings"
)

// QueryOptions holds parameters for catalog searches.
type QueryOptions struct {
	// Query is the FTS5 full-text search string over titles and bodies.
	// Empty means list by creation date, newest first.
	Query string

	// Since filters to conversations created on or after this ISO-8601
	// date (string comparison; the catalog stores timestamps verbatim).
	Since string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// Search queries the catalog. Full-text queries are ranked by relevance;
// listings are ordered newest first.
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]Record, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT c.uuid, c.name, c.summary, c.created_at, c.updated_at, c.path
			FROM conversations_fts
			JOIN conversations c ON c.rowid = conversations_fts.rowid
			WHERE conversations_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT c.uuid, c.name, c.summary, c.created_at, c.updated_at, c.path
			FROM conversations c
			WHERE 1=1`)
	}

	if opts.Since != "" {
		qb.WriteString(` AND c.created_at >= ?`)
		args = append(args, opts.Since)
	}

	if useFTS {
		qb.WriteString(` ORDER BY conversations_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY c.created_at DESC`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var results []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.UUID, &r.Name, &r.Summary, &r.CreatedAt, &r.UpdatedAt, &r.Path); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
