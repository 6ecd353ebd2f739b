// Package guide generates travel vibe boards: formatted travel primers with
// local phrases, music, food, and a first-day plan for a destination. It
// renders a fixed prompt template and issues a single chat-completion call
// per destination.
package guide

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrEmptyDestination is returned when the destination is empty after
// trimming whitespace.
var ErrEmptyDestination = errors.New("destination must not be empty")

// ErrEmptyBoard is returned when the model responds without any content, so
// callers can tell "nothing came back" from a transport failure.
var ErrEmptyBoard = errors.New("model could not generate a vibe board")

// Curator turns destinations into vibe boards. Each Generate call performs
// exactly one provider round trip; failures are reported, never retried.
type Curator struct {
	provider Provider
}

// NewCurator creates a Curator backed by the given provider.
func NewCurator(provider Provider) *Curator {
	return &Curator{provider: provider}
}

// Generate builds the prompt for a destination, performs one completion call,
// and returns the resulting Board. The destination is trimmed; an empty
// result is ErrEmptyDestination. An empty model reply is ErrEmptyBoard. Any
// provider error is returned wrapped with its original text intact.
func (c *Curator) Generate(ctx context.Context, destination string) (*Board, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return nil, ErrEmptyDestination
	}

	resp, err := c.provider.Complete(ctx, BuildMessages(destination))
	if err != nil {
		return nil, fmt.Errorf("creating vibe board for %s: %w", destination, err)
	}

	if strings.TrimSpace(resp.Content) == "" {
		return nil, ErrEmptyBoard
	}

	return &Board{
		Destination: destination,
		Content:     resp.Content,
		Usage: UsageStats{
			PromptTokens:     resp.PromptTokens,
			CompletionTokens: resp.CompletionTokens,
			TotalTokens:      resp.PromptTokens + resp.CompletionTokens,
		},
		GeneratedAt: time.Now().UTC(),
	}, nil
}
