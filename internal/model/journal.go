package model

import "time"

// JournalEntry is one private mood-journal record, owned by a single account.
type JournalEntry struct {
	ID        int64
	Username  string
	Content   string
	Mood      string // emotion label, classifier-derived when not supplied
	Timestamp time.Time
}
