package samples

import "time"

// Sample is a writing sample used as a style reference during generation.
type Sample struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	FileKey   string    `json:"fileKey,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
