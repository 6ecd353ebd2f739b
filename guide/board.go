package guide

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"
)

// Board is the generated vibe board for one destination.
type Board struct {
	Destination string     `json:"destination"`
	Content     string     `json:"content"`
	Usage       UsageStats `json:"usage"`
	GeneratedAt time.Time  `json:"generated_at"`
}

// UsageStats tracks token consumption for the generation call.
type UsageStats struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// JSON returns the board as pretty-printed JSON bytes.
func (b *Board) JSON() ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}

// WriteFile writes the board to path. A ".json" path gets the full JSON
// document; anything else gets the raw markdown content.
func (b *Board) WriteFile(path string) error {
	var data []byte
	if strings.HasSuffix(path, ".json") {
		var err error
		data, err = b.JSON()
		if err != nil {
			return fmt.Errorf("marshalling vibe board: %w", err)
		}
	} else {
		data = []byte(b.Content)
	}
	return os.WriteFile(path, data, 0o644)
}

// Slug derives a filesystem-friendly name from a destination: lowercased,
// runs of non-alphanumerics collapsed to single hyphens. Non-ASCII letters
// and digits pass through unchanged.
func Slug(destination string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(destination)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			hyphen = false
			continue
		}
		if !hyphen && b.Len() > 0 {
			b.WriteByte('-')
			hyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
