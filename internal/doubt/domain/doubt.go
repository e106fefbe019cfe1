package domain

import "time"

// Doubt is a knowledge-base note: free text plus an ordered list of embedded
// image payloads (data URLs). It has no relationship to tasks.
type Doubt struct {
	ID        string    `json:"id" firestore:"-"`
	Name      string    `json:"name" firestore:"name"`
	Content   string    `json:"content" firestore:"content"`
	Images    []string  `json:"images" firestore:"images"`
	CreatedAt time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updated_at"`
}
