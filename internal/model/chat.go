package model

// ChatRole identifies the author of a transcript entry.
type ChatRole string

const (
	// RoleUser is the visitor asking questions.
	RoleUser ChatRole = "user"
	// RoleAssistant is the sommelier.
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of the sommelier conversation.
type ChatMessage struct {
	Role    ChatRole
	Content string
}
