package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/chat-archiver/internal/archive"
	"github.com/pdiddy/chat-archiver/internal/export"
	"github.com/pdiddy/chat-archiver/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <export.json>",
	Short: "Convert an export file to per-conversation Markdown files",
	Long: `Convert reads a conversations JSON export and writes one Markdown file
per conversation into the output directory. Conversations that render empty
(for example, nothing but internal reasoning) are skipped; a malformed
record is counted as failed and the batch continues.

Output files are named {created-date}-{slug}.md. Two conversations deriving
the same name overwrite each other; the last one wins.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := archiveConfig(cmd)

	convs, err := export.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Found %d conversations\n", len(convs))

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	result := archive.Run(archive.MarkdownRenderer{}, convs, cfg, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d conversation(s) failed", result.Failed)
	}
	return nil
}

// archiveConfig resolves archive settings from flags, falling back to viper
// (config file or environment) where a flag was not given.
func archiveConfig(cmd *cobra.Command) types.ArchiveConfig {
	outputDir, _ := cmd.Flags().GetString("output-dir")
	if outputDir == "" {
		outputDir = viper.GetString("archive.output_dir")
	}
	slugLen, _ := cmd.Flags().GetInt("slug-length")
	if slugLen <= 0 {
		slugLen = viper.GetInt("archive.slug_max_len")
	}
	limit, _ := cmd.Flags().GetInt("limit")

	return types.ArchiveConfig{
		OutputDir:  outputDir,
		Limit:      limit,
		SlugMaxLen: slugLen,
	}
}

func init() {
	convertCmd.Flags().String("output-dir", "", "output directory for Markdown files (default: archive)")
	convertCmd.Flags().Int("limit", 0, "maximum conversations to convert (0 = all)")
	convertCmd.Flags().Int("slug-length", 0, "maximum slug length in filenames (default: 50)")

	rootCmd.AddCommand(convertCmd)
}
