package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/arangodb/go-driver/v2/arangodb"
	"github.com/arangodb/go-driver/v2/arangodb/shared"

	"mindhaven.app/server/core/db"
	"mindhaven.app/server/internal/model"
)

type sessionStore struct {
	db arangodb.Database
}

func newSessionStore(database arangodb.Database) SessionStore {
	return &sessionStore{db: database}
}

type sessionDoc struct {
	Key       string    `json:"_key"`
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *sessionStore) Create(ctx context.Context, session *model.Session) error {
	col, err := s.db.GetCollection(ctx, db.CollectionSessions, nil)
	if err != nil {
		return fmt.Errorf("get sessions collection: %w", err)
	}

	session.CreatedAt = time.Now().UTC()

	doc := sessionDoc{
		Key:       strconv.FormatInt(session.ID, 10),
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	}

	if _, err := col.CreateDocument(ctx, doc); err != nil {
		return fmt.Errorf("create session document: %w", err)
	}
	return nil
}

func (s *sessionStore) GetValid(ctx context.Context, id int64) (*model.Session, error) {
	col, err := s.db.GetCollection(ctx, db.CollectionSessions, nil)
	if err != nil {
		return nil, fmt.Errorf("get sessions collection: %w", err)
	}

	var doc sessionDoc
	if _, err := col.ReadDocument(ctx, strconv.FormatInt(id, 10), &doc); err != nil {
		if shared.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read session document: %w", err)
	}

	if time.Now().After(doc.ExpiresAt) {
		return nil, ErrNotFound
	}

	id64, err := strconv.ParseInt(doc.Key, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse session key %q: %w", doc.Key, err)
	}
	return &model.Session{
		ID:        id64,
		UserID:    doc.UserID,
		ExpiresAt: doc.ExpiresAt,
		CreatedAt: doc.CreatedAt,
	}, nil
}

func (s *sessionStore) Delete(ctx context.Context, id int64) error {
	col, err := s.db.GetCollection(ctx, db.CollectionSessions, nil)
	if err != nil {
		return fmt.Errorf("get sessions collection: %w", err)
	}

	if _, err := col.DeleteDocument(ctx, strconv.FormatInt(id, 10)); err != nil {
		if shared.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete session document: %w", err)
	}
	return nil
}
