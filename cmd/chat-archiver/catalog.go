// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/chat-archiver/internal/archive"
	"github.com/pdiddy/chat-archiver/internal/catalog"
	"github.com/pdiddy/chat-archiver/internal/export"
	"github.com/pdiddy/chat-archiver/internal/render"
	"github.com/pdiddy/chat-archiver/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the conversation catalog (index, search, export)",
	Long: `Catalog maintains a local SQLite index of archived conversations with
full-text search over titles and rendered bodies. Use subcommands to index
an export, search the catalog, or export it.`,
}

// --- index subcommand ---

var catalogIndexCmd = &cobra.Command{
	Use:   "index <export.json>",
	Short: "Index a conversations export into the catalog",
	Long: `Index renders each conversation in an export and upserts it into the
catalog database. Conversations that render empty are left out. Re-indexing
an export updates existing entries in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogIndex,
}

func runCatalogIndex(cmd *cobra.Command, args []string) error {
	convs, err := export.Load(args[0])
	if err != nil {
		return err
	}

	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	slugLen := viper.GetInt("archive.slug_max_len")
	outputDir := viper.GetString("archive.output_dir")

	var records []catalog.Record
	skipped := 0
	for _, c := range convs {
		doc, ok := render.Conversation(c)
		if !ok {
			skipped++
			continue
		}
		records = append(records, catalog.Record{
			UUID:      c.UUID,
			Name:      c.Name,
			Summary:   c.Summary,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
			Path:      filepath.Join(outputDir, archive.Filename(c, slugLen)),
			Body:      doc,
		})
	}

	summary, err := store.Ingest(context.Background(), records)
	if err != nil {
		return err
	}

	fmt.Printf("Catalog: %d indexed, %d updated, %d skipped (total: %d)\n",
		summary.Indexed, summary.Updated, skipped, summary.Total()+skipped)
	return nil
}

// --- search subcommand ---

var catalogSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog with full-text search",
	Long: `Search runs an FTS5 full-text query over conversation titles and rendered
bodies. Without a query it lists cataloged conversations, newest first.`,
	RunE: runCatalogSearch,
}

func runCatalogSearch(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Search(context.Background(), queryOptsFromFlags(cmd, args))
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(results, jsonOutput)
}

func formatSearchOutput(results []catalog.Record, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-10s  %-40s  %s\n", "Created", "Name", "Path")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))

	for _, r := range results {
		created := r.CreatedAt
		if len(created) > 10 {
			created = created[:10]
		}
		name := r.Name
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-10s  %-40s  %s\n", created, name, r.Path)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to YAML or JSON",
	Long: `Export writes the catalog (or a filtered subset) to export.yaml or
export.json in the catalog directory. Supports the same filter flags as
search for partial exports.`,
	RunE: runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to export.yaml")
	case "json":
		if err := store.ExportJSON(context.Background(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to export.json")
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

// --- shared helpers ---

func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	catalogDir, _ := cmd.Flags().GetString("catalog-dir")
	if catalogDir == "" {
		catalogDir = viper.GetString("catalog.dir")
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults <= 0 {
		maxResults = viper.GetInt("catalog.max_results")
	}

	return types.CatalogConfig{
		CatalogDir: catalogDir,
		MaxResults: maxResults,
	}
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) catalog.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	since, _ := cmd.Flags().GetString("since")
	limit, _ := cmd.Flags().GetInt("limit")

	return catalog.QueryOptions{
		Query:      queryText,
		Since:      since,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	catalogCmd.PersistentFlags().String("catalog-dir", "", "catalog directory (default: catalog)")
	catalogCmd.PersistentFlags().Int("max-results", 0, "maximum number of search results (default: 20)")

	// Search flags.
	catalogSearchCmd.Flags().String("query", "", "full-text search query")
	catalogSearchCmd.Flags().String("since", "", "only conversations created on or after this date (YYYY-MM-DD)")
	catalogSearchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	catalogSearchCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	catalogExportCmd.Flags().String("query", "", "full-text search filter for partial export")
	catalogExportCmd.Flags().String("since", "", "only conversations created on or after this date")
	catalogExportCmd.Flags().Int("limit", 0, "maximum records to export (0 = all)")

	// Wire subcommands.
	catalogCmd.AddCommand(catalogIndexCmd)
	catalogCmd.AddCommand(catalogSearchCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	rootCmd.AddCommand(catalogCmd)
}
