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

type journalStore struct {
	db arangodb.Database
}

func newJournalStore(database arangodb.Database) JournalStore {
	return &journalStore{db: database}
}

type journalDoc struct {
	Key       string    `json:"_key"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *journalStore) Create(ctx context.Context, entry *model.JournalEntry) error {
	col, err := s.db.GetCollection(ctx, db.CollectionJournals, nil)
	if err != nil {
		return fmt.Errorf("get journals collection: %w", err)
	}

	entry.Timestamp = time.Now().UTC()

	doc := journalDoc{
		Key:       strconv.FormatInt(entry.ID, 10),
		Username:  entry.Username,
		Content:   entry.Content,
		Mood:      entry.Mood,
		Timestamp: entry.Timestamp,
	}

	if _, err := col.CreateDocument(ctx, doc); err != nil {
		return fmt.Errorf("create journal document: %w", err)
	}
	return nil
}

func (s *journalStore) Get(ctx context.Context, id int64) (*model.JournalEntry, error) {
	col, err := s.db.GetCollection(ctx, db.CollectionJournals, nil)
	if err != nil {
		return nil, fmt.Errorf("get journals collection: %w", err)
	}

	var doc journalDoc
	if _, err := col.ReadDocument(ctx, strconv.FormatInt(id, 10), &doc); err != nil {
		if shared.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read journal document: %w", err)
	}
	return toJournalModel(doc)
}

func (s *journalStore) ListByUsername(ctx context.Context, username string, page, pageSize int) ([]model.JournalEntry, error) {
	opts := ListOptions{Page: page, PageSize: pageSize}

	query := `
		FOR j IN journals
			FILTER j.username == @username
			SORT j.timestamp DESC
			LIMIT @offset, @count
			RETURN j
	`

	cursor, err := s.db.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]any{
			"username": username,
			"offset":   opts.Offset(),
			"count":    pageSize,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	defer cursor.Close()

	entries := make([]model.JournalEntry, 0, pageSize)
	for cursor.HasMore() {
		var doc journalDoc
		if _, err := cursor.ReadDocument(ctx, &doc); err != nil {
			return nil, fmt.Errorf("read journal document: %w", err)
		}
		entry, err := toJournalModel(doc)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

func (s *journalStore) MoodCounts(ctx context.Context, username string) (map[string]int, error) {
	query := `
		FOR j IN journals
			FILTER j.username == @username
			COLLECT mood = j.mood WITH COUNT INTO n
			RETURN { mood: mood, count: n }
	`

	cursor, err := s.db.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]any{"username": username},
	})
	if err != nil {
		return nil, fmt.Errorf("aggregate mood counts: %w", err)
	}
	defer cursor.Close()

	counts := make(map[string]int)
	for cursor.HasMore() {
		var row struct {
			Mood  string `json:"mood"`
			Count int    `json:"count"`
		}
		if _, err := cursor.ReadDocument(ctx, &row); err != nil {
			return nil, fmt.Errorf("read mood count row: %w", err)
		}
		counts[row.Mood] = row.Count
	}
	return counts, nil
}

func (s *journalStore) Delete(ctx context.Context, id int64) error {
	col, err := s.db.GetCollection(ctx, db.CollectionJournals, nil)
	if err != nil {
		return fmt.Errorf("get journals collection: %w", err)
	}

	if _, err := col.DeleteDocument(ctx, strconv.FormatInt(id, 10)); err != nil {
		if shared.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete journal document: %w", err)
	}
	return nil
}

func toJournalModel(doc journalDoc) (*model.JournalEntry, error) {
	id, err := strconv.ParseInt(doc.Key, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse journal key %q: %w", doc.Key, err)
	}
	return &model.JournalEntry{
		ID:        id,
		Username:  doc.Username,
		Content:   doc.Content,
		Mood:      doc.Mood,
		Timestamp: doc.Timestamp,
	}, nil
}
