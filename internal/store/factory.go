package store

import (
	"github.com/arangodb/go-driver/v2/arangodb"
)

type Stores struct {
	db arangodb.Database
}

func NewStores(db arangodb.Database) *Stores {
	return &Stores{db: db}
}

func (s *Stores) Letters() LetterStore {
	return newLetterStore(s.db)
}

func (s *Stores) Journals() JournalStore {
	return newJournalStore(s.db)
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.db)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.db)
}
