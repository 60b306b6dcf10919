package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// Client abstracts text generation providers.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("generation client not configured")

// PlaceholderClient stands in when no provider is configured in dev.
type PlaceholderClient struct{}

// Generate returns ErrNotConfigured.
func (PlaceholderClient) Generate(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}

// ClientFunc adapts a function to Client.
type ClientFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f.
func (f ClientFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// HashPrompt returns a stable fingerprint for logging prompts without their text.
func HashPrompt(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}

var (
	_ Client = PlaceholderClient{}
	_ Client = ClientFunc(nil)
)
