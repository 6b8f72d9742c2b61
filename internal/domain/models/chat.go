package models

// Chat message roles. "system" is reserved for the server-built portfolio
// prompt; callers only send "user" and "assistant" turns.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn in a conversation. The server holds no session
// state; the caller resends the entire history on every request and the
// list is forwarded to the provider verbatim.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
