// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive implements the batch driver that turns a parsed export
// into one Markdown file per conversation.
package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/chat-archiver/internal/render"
	"github.com/pdiddy/chat-archiver/pkg/types"
)

// unknownDate is the filename date literal for conversations without a
// usable creation timestamp.
const unknownDate = "unknown-date"

// Renderer produces a Markdown document for one conversation. ok is false
// when the conversation renders empty and should be skipped.
type Renderer interface {
	Render(c types.Conversation) (doc string, ok bool, err error)
}

// MarkdownRenderer is the default Renderer, backed by the render package.
type MarkdownRenderer struct{}

func (MarkdownRenderer) Render(c types.Conversation) (string, bool, error) {
	doc, ok := render.Conversation(c)
	return doc, ok, nil
}

// BatchResult holds the outcome of a batch archive run.
type BatchResult struct {
	Archived int
	Skipped  int
	Failed   int
}

// Total returns the total number of conversations processed.
func (r BatchResult) Total() int {
	return r.Archived + r.Skipped + r.Failed
}

// HasFailures reports whether any conversations failed to archive.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Run archives conversations sequentially, up to cfg.Limit when positive,
// writing per-conversation status to w and returning a summary. A failure
// in one conversation (error or panic in the renderer, or a write error)
// is counted and the batch continues. Two conversations deriving the same
// filename overwrite each other; the last writer wins.
func Run(r Renderer, convs []types.Conversation, cfg types.ArchiveConfig, w io.Writer) BatchResult {
	if cfg.Limit > 0 && cfg.Limit < len(convs) {
		convs = convs[:cfg.Limit]
	}

	var result BatchResult
	for _, c := range convs {
		name := Filename(c, cfg.SlugMaxLen)
		switch archiveOne(r, c, filepath.Join(cfg.OutputDir, name), w) {
		case types.ArchiveDone:
			fmt.Fprintf(w, "archived: %s\n", name)
			result.Archived++
		case types.ArchiveSkipped:
			fmt.Fprintf(w, "skipped:  %s (empty after rendering)\n", name)
			result.Skipped++
		case types.ArchiveFailed:
			result.Failed++
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d archived, %d skipped, %d failed (total: %d)\n",
		result.Archived, result.Skipped, result.Failed, result.Total())
	return result
}

// archiveOne renders and writes a single conversation. A panic inside the
// renderer is absorbed and reported as a failure so one malformed record
// cannot abort the batch.
func archiveOne(r Renderer, c types.Conversation, path string, w io.Writer) (status types.ArchiveStatus) {
	defer func() {
		if rec := recover(); rec != nil {
			fmt.Fprintf(w, "failed:   %s (panic: %v)\n", c.UUID, rec)
			status = types.ArchiveFailed
		}
	}()

	doc, ok, err := r.Render(c)
	if err != nil {
		fmt.Fprintf(w, "failed:   %s (%v)\n", c.UUID, err)
		return types.ArchiveFailed
	}
	if !ok {
		return types.ArchiveSkipped
	}

	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		fmt.Fprintf(w, "failed:   %s (%v)\n", c.UUID, err)
		return types.ArchiveFailed
	}
	return types.ArchiveDone
}

// Filename derives the output name for a conversation:
// {created-date}-{slug}.md, with "unknown-date" when the creation
// timestamp is missing or unparsable.
func Filename(c types.Conversation, slugMaxLen int) string {
	return fmt.Sprintf("%s-%s.md", datePart(c.CreatedAt), render.Slugify(c.Name, slugMaxLen))
}

func datePart(createdAt string) string {
	if len(createdAt) < 10 {
		return unknownDate
	}
	date := createdAt[:10]
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return unknownDate
	}
	return date
}
