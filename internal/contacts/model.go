package contacts

import "time"

// Contact is a networking contact tied to the job search.
type Contact struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Company         string     `json:"company"`
	Role            string     `json:"role"`
	Email           string     `json:"email"`
	LinkedIn        string     `json:"linkedin"`
	Notes           string     `json:"notes"`
	LastContactedAt *time.Time `json:"lastContactedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
