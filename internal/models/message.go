// internal/models/message.go
package models

// LogMessage is one entry of a game's in-match chat/event feed. System
// entries use the reserved SystemUsername sender.
type LogMessage struct {
	Username string `json:"username"`
	Text     string `json:"text"`
}

// SystemUsername is the sender name attached to engine-generated log entries.
const SystemUsername = "⚙️ Sistema ⚙️"

// NewSystemLog wraps an engine-generated message as a log entry.
func NewSystemLog(text string) LogMessage {
	return LogMessage{Username: SystemUsername, Text: text}
}
