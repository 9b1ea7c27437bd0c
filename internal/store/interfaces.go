package store

import (
	"context"
	"errors"

	"mindhaven.app/server/internal/model"
)

// ErrNotFound is returned when a requested document does not exist
var ErrNotFound = errors.New("not found")

// SortMode selects the ordering for board listings.
type SortMode string

const (
	SortLatest  SortMode = "latest"  // timestamp descending
	SortPopular SortMode = "popular" // likes descending
)

// ListOptions is offset pagination: page is 1-based; listings skip
// (page-1)*pageSize documents. No cursor stability is guaranteed across
// pages - concurrent writes can surface duplicates or omissions.
type ListOptions struct {
	Sort     SortMode
	Page     int
	PageSize int
}

// Offset returns the number of documents to skip.
func (o ListOptions) Offset() int {
	page := o.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * o.PageSize
}

// LetterStore defines the contract for letter document access
type LetterStore interface {
	Create(ctx context.Context, letter *model.Letter) error
	Get(ctx context.Context, id int64) (*model.Letter, error)
	List(ctx context.Context, opts ListOptions) ([]model.Letter, error)
	// Like reads the current count and writes count+1. Concurrent calls on
	// the same letter can collapse into a single increment; the board
	// tolerates that. Returns the count as written.
	Like(ctx context.Context, id int64) (int, error)
	// AppendReply preserves all prior replies in insertion order.
	AppendReply(ctx context.Context, id int64, reply model.Reply) error
	Delete(ctx context.Context, id int64) error
}

// JournalStore defines the contract for journal entry access
type JournalStore interface {
	Create(ctx context.Context, entry *model.JournalEntry) error
	Get(ctx context.Context, id int64) (*model.JournalEntry, error)
	ListByUsername(ctx context.Context, username string, page, pageSize int) ([]model.JournalEntry, error)
	MoodCounts(ctx context.Context, username string) (map[string]int, error)
	Delete(ctx context.Context, id int64) error
}

// UserStore defines the contract for account document access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpsertByWorkOSID(ctx context.Context, user *model.User) error
}

// SessionStore defines the contract for session document access
type SessionStore interface {
	Create(ctx context.Context, session *model.Session) error
	GetValid(ctx context.Context, id int64) (*model.Session, error) // checks expiry
	Delete(ctx context.Context, id int64) error
}
