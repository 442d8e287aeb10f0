package db

import "time"

// Recommendation is a record of one completed recommendation task.
type Recommendation struct {
	ID        string
	TaskID    string
	ContextID string
	Mood      string
	Intensity int
	HasMusic  bool
	HasMovie  bool
	HasBook   bool
	CreatedAt time.Time
}

// Conversation is a stored conversation history. History holds the
// serialized messages.
type Conversation struct {
	ContextID string
	History   []byte
	UpdatedAt time.Time
}
