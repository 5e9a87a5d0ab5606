// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Sender values as they appear in the export. Anything else is rendered
// under its raw name.
const (
	SenderHuman     = "human"
	SenderAssistant = "assistant"
)

// BlockType discriminates the content-block variants in a message.
type BlockType string

const (
	BlockText     BlockType = "text"
	BlockThinking BlockType = "thinking"
	BlockArtifact BlockType = "artifact"
)

// ArtifactType is the declared media kind of a structured artifact.
type ArtifactType string

const (
	ArtifactCode      ArtifactType = "application/vnd.ant.code"
	ArtifactReact     ArtifactType = "application/vnd.ant.react"
	ArtifactHTML      ArtifactType = "application/vnd.ant.html"
	ArtifactPlainHTML ArtifactType = "text/html"
	ArtifactMarkdown  ArtifactType = "text/markdown"
	ArtifactMermaid   ArtifactType = "application/vnd.ant.mermaid"
	ArtifactSVG       ArtifactType = "image/svg+xml"
)

// ArchiveStatus indicates the outcome of archiving one conversation.
type ArchiveStatus string

const (
	ArchiveDone    ArchiveStatus = "archived"
	ArchiveSkipped ArchiveStatus = "skipped"
	ArchiveFailed  ArchiveStatus = "failed"
)

// Conversation is one exported chat session. Timestamps are kept as the
// ISO-8601 strings from the export; nothing downstream does time arithmetic
// on them, which keeps rendering byte-deterministic.
type Conversation struct {
	// UUID is the opaque export identifier.
	UUID string `json:"uuid" yaml:"uuid"`

	// Name is the conversation title. May be empty.
	Name string `json:"name" yaml:"name"`

	// Summary is an optional export-provided summary.
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// CreatedAt and UpdatedAt are ISO-8601 timestamps, possibly empty.
	CreatedAt string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`

	// Messages is the ordered message list.
	Messages []Message `json:"chat_messages" yaml:"chat_messages"`
}

// Message is one turn in a conversation.
type Message struct {
	// Sender is the author role: "human", "assistant", or an arbitrary
	// value from older exports.
	Sender string `json:"sender" yaml:"sender"`

	// Text is the legacy direct-text form used by exports that predate
	// content blocks. When Content is non-empty it takes precedence.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// Content is the ordered content-block list.
	Content []ContentBlock `json:"content,omitempty" yaml:"content,omitempty"`
}

// ContentBlock is a tagged variant: plain text, internal reasoning, or a
// structured artifact. Fields not belonging to the active variant are empty.
type ContentBlock struct {
	Type BlockType `json:"type" yaml:"type"`

	// Text carries the payload of a text block.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// Thinking carries internal reasoning. Never rendered.
	Thinking string `json:"thinking,omitempty" yaml:"thinking,omitempty"`

	// MediaType, Language, Title, and Content describe an artifact block.
	// Language and Title are optional attributes; Content is the payload.
	MediaType ArtifactType `json:"media_type,omitempty" yaml:"media_type,omitempty"`
	Language  string       `json:"language,omitempty" yaml:"language,omitempty"`
	Title     string       `json:"title,omitempty" yaml:"title,omitempty"`
	Content   string       `json:"content,omitempty" yaml:"content,omitempty"`
}
