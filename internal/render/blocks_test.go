// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"
	"testing"

	"github.com/pdiddy/chat-archiver/pkg/types"
)

func TestBlock(t *testing.T) {
	tests := []struct {
		name  string
		block types.ContentBlock
		want  string
	}{
		{
			name:  "plain text passes through",
			block: types.ContentBlock{Type: types.BlockText, Text: "Hello there."},
			want:  "Hello there.",
		},
		{
			name:  "thinking is dropped",
			block: types.ContentBlock{Type: types.BlockThinking, Thinking: "internal reasoning"},
			want:  "",
		},
		{
			name: "mermaid artifact",
			block: types.ContentBlock{
				Type:      types.BlockArtifact,
				MediaType: types.ArtifactMermaid,
				Content:   "graph TD;A-->B;",
			},
			want: "```mermaid\ngraph TD;A-->B;\n```",
		},
		{
			name: "code artifact with language attribute",
			block: types.ContentBlock{
				Type:      types.BlockArtifact,
				MediaType: types.ArtifactCode,
				Language:  "python",
				Content:   "print(1)",
			},
			want: "```python\nprint(1)\n```",
		},
		{
			name: "code artifact without language uses generic tag",
			block: types.ContentBlock{
				Type:      types.BlockArtifact,
				MediaType: types.ArtifactCode,
				Content:   "x = 1",
			},
			want: "```code\nx = 1\n```",
		},
		{
			name: "react artifact",
			block: types.ContentBlock{
				Type:      types.BlockArtifact,
				MediaType: types.ArtifactReact,
				Content:   "export default () => <div/>;",
			},
			want: "```jsx\nexport default () => <div/>;\n```",
		},
		{
			name: "html artifact",
			block: types.ContentBlock{
				Type:      types.BlockArtifact,
				MediaType: types.ArtifactPlainHTML,
				Content:   "<p>hi</p>",
			},
			want: "```html\n<p>hi</p>\n```",
		},
		{
			name: "svg artifact",
			block: types.ContentBlock{
				Type:      types.BlockArtifact,
				MediaType: types.ArtifactSVG,
				Content:   "<svg></svg>",
			},
			want: "```svg\n<svg></svg>\n```",
		},
		{
			name: "markdown artifact renders inline",
			block: types.ContentBlock{
				Type:      types.BlockArtifact,
				MediaType: types.ArtifactMarkdown,
				Title:     "Notes",
				Content:   "Some **bold** text.",
			},
			want: "---\n\n# Notes\n\nSome **bold** text.\n\n---",
		},
		{
			name: "unknown kind falls back to raw label",
			block: types.ContentBlock{
				Type:      types.BlockArtifact,
				MediaType: "application/x-custom",
				Content:   "payload bytes",
			},
			want: "```application/x-custom\npayload bytes\n```",
		},
		{
			name:  "empty block renders nothing",
			block: types.ContentBlock{},
			want:  "",
		},
		{
			name:  "unrecognized type with text treated as text",
			block: types.ContentBlock{Type: "tool_result", Text: "output"},
			want:  "output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Block(tt.block); got != tt.want {
				t.Errorf("Block() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextEmbeddedArtifact(t *testing.T) {
	in := `Here is the diagram:
<antArtifact identifier="d1" type="application/vnd.ant.mermaid" title="Flow">graph TD;A-->B;</antArtifact>
Done.`

	got := Text(in)
	if !strings.Contains(got, "```mermaid\ngraph TD;A-->B;\n```") {
		t.Errorf("embedded artifact not fenced: %q", got)
	}
	if strings.Contains(got, "antArtifact") {
		t.Errorf("artifact tag survived normalization: %q", got)
	}
}

func TestTextEmbeddedCodeLanguage(t *testing.T) {
	in := `<antArtifact identifier="c1" type="application/vnd.ant.code" language="go" title="Main">package main</antArtifact>`

	got := Text(in)
	if !strings.Contains(got, "```go\npackage main\n```") {
		t.Errorf("language attribute not used as fence tag: %q", got)
	}
}

func TestTextStripsThinking(t *testing.T) {
	in := "Before.<antThinking>secret\nreasoning</antThinking>After."

	got := Text(in)
	if got != "Before.After." {
		t.Errorf("Text() = %q, want %q", got, "Before.After.")
	}
}
