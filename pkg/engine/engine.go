package engine

import (
	"context"
)

const (
	// DefaultTemperature is the sampling temperature applied when no
	// override is configured.
	DefaultTemperature = 0.7
	// DefaultMaxTokens is the completion token limit applied when no
	// override is configured.
	DefaultMaxTokens = 256
)

// ProgressFunc receives model load progress. fraction is in [0, 1] and
// status is a short human-readable description of the current step.
type ProgressFunc func(fraction float64, status string)

// Message is a single chat message.
type Message struct {
	// Role is the message role ("system", "user", or "assistant").
	Role string `json:"role"`
	// Content is the message text.
	Content string `json:"content"`
}

// Options are the sampling parameters applied to chat completions.
type Options struct {
	// Temperature is the sampling temperature.
	Temperature float32
	// MaxTokens is the completion token limit.
	MaxTokens int
	// TopP is the nucleus sampling parameter, 0 meaning unset.
	TopP float32
}

// DefaultOptions returns the built-in sampling parameters.
func DefaultOptions() Options {
	return Options{
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
}

// Engine is the boundary to an inference runtime hosting the selected
// model.
type Engine interface {
	// Load makes the given model available for chat, reporting progress
	// through the callback. A nil progress callback is allowed.
	Load(ctx context.Context, modelID string, progress ProgressFunc) error
	// Chat streams a completion for the given messages, invoking onToken
	// for each content fragment as it arrives, and returns the full
	// response text. The stream is single-pass: a failure mid-stream
	// returns an error along with the partial text, and the caller must
	// issue a new Chat call to retry.
	Chat(ctx context.Context, messages []Message, onToken func(token string)) (string, error)
}
