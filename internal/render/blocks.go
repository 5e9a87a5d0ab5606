// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/chat-archiver/pkg/types"
)

// fenceTags maps declared artifact media kinds to Markdown fence language
// tags. ArtifactMarkdown is absent on purpose: it renders inline, unfenced.
// Kinds not in the table fall back to a fence labeled with the raw kind
// string, so no artifact is ever dropped.
var fenceTags = map[types.ArtifactType]string{
	types.ArtifactCode:      "code",
	types.ArtifactReact:     "jsx",
	types.ArtifactHTML:      "html",
	types.ArtifactPlainHTML: "html",
	types.ArtifactMermaid:   "mermaid",
	types.ArtifactSVG:       "svg",
}

var (
	artifactTagRe = regexp.MustCompile(`(?s)<antArtifact\s+([^>]*?)>(.*?)</antArtifact>`)
	thinkingTagRe = regexp.MustCompile(`(?s)<antThinking>.*?</antThinking>`)

	typeAttrRe     = regexp.MustCompile(`type="([^"]+)"`)
	languageAttrRe = regexp.MustCompile(`language="([^"]+)"`)
	titleAttrRe    = regexp.MustCompile(`title="([^"]+)"`)
)

// Block renders one content block to a text fragment. Thinking blocks and
// blocks with no recognizable payload yield the empty string. This function
// never fails: unknown block types with text are treated as text, and
// unknown artifact kinds use the fallback fence.
func Block(b types.ContentBlock) string {
	switch b.Type {
	case types.BlockThinking:
		return ""
	case types.BlockText:
		return Text(b.Text)
	case types.BlockArtifact:
		return artifact(b.MediaType, b.Language, b.Title, b.Content)
	default:
		if b.Text != "" {
			return Text(b.Text)
		}
		if b.Content != "" {
			return artifact(b.MediaType, b.Language, b.Title, b.Content)
		}
		return ""
	}
}

// Text normalizes embedded content in a plain-text fragment: inline
// <antArtifact> spans become fenced blocks via the same lookup as structured
// artifact blocks, and <antThinking> spans are removed outright.
func Text(s string) string {
	s = artifactTagRe.ReplaceAllStringFunc(s, func(m string) string {
		sub := artifactTagRe.FindStringSubmatch(m)
		attrs, payload := sub[1], sub[2]
		kind := types.ArtifactType(attrGet(typeAttrRe, attrs))
		lang := attrGet(languageAttrRe, attrs)
		title := attrGet(titleAttrRe, attrs)
		return "\n" + artifact(kind, lang, title, payload) + "\n"
	})
	return thinkingTagRe.ReplaceAllString(s, "")
}

func attrGet(re *regexp.Regexp, attrs string) string {
	if m := re.FindStringSubmatch(attrs); m != nil {
		return m[1]
	}
	return ""
}

// artifact renders a structured artifact payload. Markdown artifacts are
// emitted inline between horizontal rules, with the title as a heading when
// present. Everything else is wrapped in a fence whose tag comes from
// fenceTags, a declared language attribute, or the raw kind string.
func artifact(kind types.ArtifactType, language, title, payload string) string {
	if payload == "" {
		return ""
	}

	if kind == types.ArtifactMarkdown {
		titleLine := ""
		if title != "" {
			titleLine = "# " + title + "\n\n"
		}
		return fmt.Sprintf("---\n\n%s%s\n\n---", titleLine, payload)
	}

	tag, known := fenceTags[kind]
	switch {
	case kind == types.ArtifactCode && language != "":
		tag = language
	case !known && language != "":
		tag = language
	case !known:
		tag = string(kind)
	}

	return fmt.Sprintf("```%s\n%s\n```", tag, strings.Trim(payload, "\n"))
}
