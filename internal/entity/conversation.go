package entity

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleHuman     Role = "Human"
	RoleAssistant Role = "Assistant"
)

// Turn is a single utterance in a conversation. Content is immutable
// after creation.
type Turn struct {
	Role    Role
	Content string
}
