package model

import "time"

// Letter is a single anonymous community post. Content and Username are
// immutable after creation; Likes only ever increments; Replies is
// append-only.
type Letter struct {
	ID        int64
	Content   string
	Username  string
	Likes     int
	Replies   []Reply
	Timestamp time.Time
}

// Reply is a comment attached to a Letter. Replies carry no identifier of
// their own, so they can never be individually edited or removed.
type Reply struct {
	Content   string
	Username  string
	Timestamp time.Time
}
