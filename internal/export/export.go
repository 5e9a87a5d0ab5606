// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export reads the bulk conversations JSON document.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pdiddy/chat-archiver/pkg/types"
)

// Load reads and decodes an export file. The document must be a JSON array
// of conversation records; anything else is a fatal input error. Load never
// partially succeeds: the caller gets every conversation or an error.
func Load(path string) ([]types.Conversation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading export %s: %w", path, err)
	}

	var convs []types.Conversation
	if err := json.Unmarshal(data, &convs); err != nil {
		return nil, fmt.Errorf("parsing export %s: %w", path, err)
	}

	return convs, nil
}
