package chat

import (
	"time"

	"github.com/google/uuid"
)

// AIChatHistory is an append-only record of one exchange.
type AIChatHistory struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	UserMessage string    `gorm:"type:text;not null" json:"user_message"`
	AIResponse  string    `gorm:"type:text" json:"ai_response"`
	CreatedAt   time.Time `json:"created_at"`
}

// --- DTOs ---

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
	Mock  bool   `json:"mock,omitempty"`
}
