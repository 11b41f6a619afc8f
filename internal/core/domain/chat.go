package domain

// MessageType tells who authored a chat message.
type MessageType string

const (
	MessageFromUser      MessageType = "user"
	MessageFromAssistant MessageType = "assistant"
)

type ChatSession struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	SessionType string `json:"session_type"`
	Subject     string `json:"subject,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type ChatMessage struct {
	ID          string         `json:"id"`
	SessionID   string         `json:"session_id"`
	UserID      string         `json:"user_id"`
	MessageType MessageType    `json:"message_type"`
	Content     string         `json:"content"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   string         `json:"created_at"`
}

// ChatTranscript is a session together with its messages.
type ChatTranscript struct {
	Session  ChatSession   `json:"session"`
	Messages []ChatMessage `json:"messages"`
}

// ChatReply is the payload of POST /chat/message.
type ChatReply struct {
	Response string      `json:"response"`
	Message  ChatMessage `json:"message"`
}
