// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/chat-archiver/pkg/types"
)

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conversations.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeExport(t, `[
		{
			"uuid": "abc-1",
			"name": "Hello World!!",
			"summary": "A greeting",
			"created_at": "2024-03-15T12:30:00Z",
			"updated_at": "2024-03-15T12:45:00Z",
			"chat_messages": [
				{
					"sender": "human",
					"content": [{"type": "text", "text": "Hi"}]
				},
				{
					"sender": "assistant",
					"content": [
						{"type": "thinking", "thinking": "hmm"},
						{"type": "text", "text": "Hello!"},
						{
							"type": "artifact",
							"media_type": "application/vnd.ant.mermaid",
							"content": "graph TD;A-->B;"
						}
					]
				}
			]
		}
	]`)

	convs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, convs, 1)

	c := convs[0]
	assert.Equal(t, "abc-1", c.UUID)
	assert.Equal(t, "Hello World!!", c.Name)
	assert.Equal(t, "A greeting", c.Summary)
	assert.Equal(t, "2024-03-15T12:30:00Z", c.CreatedAt)
	require.Len(t, c.Messages, 2)

	assert.Equal(t, types.SenderHuman, c.Messages[0].Sender)
	require.Len(t, c.Messages[1].Content, 3)
	assert.Equal(t, types.BlockThinking, c.Messages[1].Content[0].Type)
	assert.Equal(t, types.ArtifactMermaid, c.Messages[1].Content[2].MediaType)
	assert.Equal(t, "graph TD;A-->B;", c.Messages[1].Content[2].Content)
}

func TestLoadLegacyMessageText(t *testing.T) {
	path := writeExport(t, `[
		{"uuid": "old-1", "name": "Legacy", "chat_messages": [
			{"sender": "human", "text": "direct text"}
		]}
	]`)

	convs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, "direct text", convs[0].Messages[0].Text)
	assert.Empty(t, convs[0].Messages[0].Content)
}

func TestLoadEmptyArray(t *testing.T) {
	path := writeExport(t, `[]`)

	convs, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, convs)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading export")
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeExport(t, `[{"uuid": "broken"`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing export")
}

func TestLoadRejectsNonArray(t *testing.T) {
	path := writeExport(t, `{"uuid": "not-a-list"}`)

	_, err := Load(path)
	require.Error(t, err)
}
