// Package sommelier wraps the generative-text providers behind the chat
// assistant. The capability is a one-shot prompt-in, text-out call; every
// provider is external and fallible, and callers substitute FallbackReply
// when a request fails.
package sommelier

import "time"

// Config holds configuration for a sommelier client.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// FallbackReply is the fixed assistant message substituted when a request
// fails. The underlying cause is logged, never shown to the user.
const FallbackReply = "I'm sorry, an error occurred with the API request. Please ensure your API key is valid and has no restrictions."

const defaultTimeout = 30 * time.Second
