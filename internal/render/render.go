// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pdiddy/chat-archiver/pkg/types"
)

// untitledName substitutes for a missing conversation name in the header
// and title heading.
const untitledName = "Untitled"

// section is one rendered message: a role heading plus joined fragments.
type section struct {
	role string
	body string
}

// Conversation renders one conversation to a complete Markdown document.
// The second return value is false when no message produced any content
// (the caller should skip the conversation rather than write an empty
// file). Rendering the same conversation twice yields identical bytes.
func Conversation(c types.Conversation) (string, bool) {
	sections := renderMessages(c.Messages)
	if len(sections) == 0 {
		return "", false
	}

	name := strings.TrimSpace(c.Name)
	if name == "" {
		name = untitledName
	}

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "uuid: %s\n", c.UUID)
	fmt.Fprintf(&b, "name: %s\n", name)
	if c.Summary != "" {
		fmt.Fprintf(&b, "summary: %s\n", c.Summary)
	}
	if c.CreatedAt != "" {
		fmt.Fprintf(&b, "created_at: %s\n", c.CreatedAt)
	}
	if c.UpdatedAt != "" {
		fmt.Fprintf(&b, "updated_at: %s\n", c.UpdatedAt)
	}
	b.WriteString("---\n\n")

	fmt.Fprintf(&b, "# %s\n", name)
	for _, s := range sections {
		fmt.Fprintf(&b, "\n## %s\n\n%s\n", s.role, s.body)
	}

	return b.String(), true
}

// renderMessages applies the block-level filter (Block) then the
// message-level filter: messages whose every block renders empty are
// dropped, so a conversation of nothing but thinking yields no sections.
func renderMessages(msgs []types.Message) []section {
	var sections []section
	for _, m := range msgs {
		body := Message(m)
		if body == "" {
			continue
		}
		sections = append(sections, section{role: roleHeading(m.Sender), body: body})
	}
	return sections
}

// Message joins a message's non-empty rendered fragments with blank lines.
// Exports that predate content blocks put the text directly on the message;
// that form is handled as a single text fragment.
func Message(m types.Message) string {
	if len(m.Content) == 0 {
		return strings.TrimSpace(Text(m.Text))
	}

	var fragments []string
	for _, b := range m.Content {
		if f := strings.TrimSpace(Block(b)); f != "" {
			fragments = append(fragments, f)
		}
	}
	return strings.Join(fragments, "\n\n")
}

// roleHeading maps a sender value to its section heading. Unknown senders
// keep their raw name, title-cased.
func roleHeading(sender string) string {
	switch strings.ToLower(sender) {
	case types.SenderHuman:
		return "User"
	case types.SenderAssistant, "claude":
		return "Assistant"
	case "":
		return "Unknown"
	default:
		r := []rune(sender)
		r[0] = unicode.ToUpper(r[0])
		return string(r)
	}
}
