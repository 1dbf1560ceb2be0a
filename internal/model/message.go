// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a chat message.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns the label shown for this role in the Saved Chats view.
func (r Role) DisplayName() string {
	if r == RoleUser {
		return "🧑 You"
	}
	return "🤖 Chef-GPT"
}

// =============================================================================
// CHAT MESSAGE TYPE
// =============================================================================

// ChatMessage is a single entry in the chat transcript.
//
// Messages are immutable once created; the transcript is append-only except
// for the bulk clear-all operation.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleUser, Content: content}
}

// NewBotMessage creates a bot message.
func NewBotMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleBot, Content: content}
}

// IsEmpty returns true if the message has no content.
func (m ChatMessage) IsEmpty() bool {
	return len(m.Content) == 0
}

// DisplayName returns the transcript label for the message's sender.
func (m ChatMessage) DisplayName() string {
	return m.Role.DisplayName()
}
