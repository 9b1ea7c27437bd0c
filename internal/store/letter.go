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

type letterStore struct {
	db arangodb.Database
}

func newLetterStore(database arangodb.Database) LetterStore {
	return &letterStore{db: database}
}

type letterDoc struct {
	Key       string     `json:"_key"`
	Content   string     `json:"content"`
	Username  string     `json:"username"`
	Likes     int        `json:"likes"`
	Replies   []replyDoc `json:"replies"`
	Timestamp time.Time  `json:"timestamp"`
}

type replyDoc struct {
	Content   string    `json:"content"`
	Username  string    `json:"username"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *letterStore) Create(ctx context.Context, letter *model.Letter) error {
	col, err := s.db.GetCollection(ctx, db.CollectionLetters, nil)
	if err != nil {
		return fmt.Errorf("get letters collection: %w", err)
	}

	letter.Likes = 0
	letter.Replies = []model.Reply{}
	letter.Timestamp = time.Now().UTC()

	doc := letterDoc{
		Key:       strconv.FormatInt(letter.ID, 10),
		Content:   letter.Content,
		Username:  letter.Username,
		Likes:     letter.Likes,
		Replies:   []replyDoc{},
		Timestamp: letter.Timestamp,
	}

	if _, err := col.CreateDocument(ctx, doc); err != nil {
		return fmt.Errorf("create letter document: %w", err)
	}
	return nil
}

func (s *letterStore) Get(ctx context.Context, id int64) (*model.Letter, error) {
	col, err := s.db.GetCollection(ctx, db.CollectionLetters, nil)
	if err != nil {
		return nil, fmt.Errorf("get letters collection: %w", err)
	}

	var doc letterDoc
	if _, err := col.ReadDocument(ctx, strconv.FormatInt(id, 10), &doc); err != nil {
		if shared.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read letter document: %w", err)
	}
	return toLetterModel(doc)
}

func (s *letterStore) List(ctx context.Context, opts ListOptions) ([]model.Letter, error) {
	sortField := "timestamp"
	if opts.Sort == SortPopular {
		sortField = "likes"
	}

	// Sort field is interpolated from a fixed two-value switch, never from
	// request input. Offset pagination only; no cursor stability across pages.
	query := fmt.Sprintf(`
		FOR l IN letters
			SORT l.%s DESC
			LIMIT @offset, @count
			RETURN l
	`, sortField)

	cursor, err := s.db.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]any{
			"offset": opts.Offset(),
			"count":  opts.PageSize,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("list letters: %w", err)
	}
	defer cursor.Close()

	letters := make([]model.Letter, 0, opts.PageSize)
	for cursor.HasMore() {
		var doc letterDoc
		if _, err := cursor.ReadDocument(ctx, &doc); err != nil {
			return nil, fmt.Errorf("read letter document: %w", err)
		}
		letter, err := toLetterModel(doc)
		if err != nil {
			return nil, err
		}
		letters = append(letters, *letter)
	}
	return letters, nil
}

// Like is a read-modify-write: two concurrent calls on the same letter can
// both read the same count and collapse into one increment. Accepted
// limitation of the board, documented rather than serialized away.
func (s *letterStore) Like(ctx context.Context, id int64) (int, error) {
	col, err := s.db.GetCollection(ctx, db.CollectionLetters, nil)
	if err != nil {
		return 0, fmt.Errorf("get letters collection: %w", err)
	}

	key := strconv.FormatInt(id, 10)

	var doc letterDoc
	if _, err := col.ReadDocument(ctx, key, &doc); err != nil {
		if shared.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("read letter document: %w", err)
	}

	newLikes := doc.Likes + 1
	patch := map[string]any{"likes": newLikes}
	if _, err := col.UpdateDocument(ctx, key, patch); err != nil {
		if shared.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("update letter likes: %w", err)
	}
	return newLikes, nil
}

// AppendReply shares Like's read-modify-write shape and its lost-update
// window. Prior replies are always carried forward in insertion order.
func (s *letterStore) AppendReply(ctx context.Context, id int64, reply model.Reply) error {
	col, err := s.db.GetCollection(ctx, db.CollectionLetters, nil)
	if err != nil {
		return fmt.Errorf("get letters collection: %w", err)
	}

	key := strconv.FormatInt(id, 10)

	var doc letterDoc
	if _, err := col.ReadDocument(ctx, key, &doc); err != nil {
		if shared.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("read letter document: %w", err)
	}

	replies := append(doc.Replies, replyDoc{
		Content:   reply.Content,
		Username:  reply.Username,
		Timestamp: reply.Timestamp,
	})

	patch := map[string]any{"replies": replies}
	if _, err := col.UpdateDocument(ctx, key, patch); err != nil {
		if shared.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("update letter replies: %w", err)
	}
	return nil
}

func (s *letterStore) Delete(ctx context.Context, id int64) error {
	col, err := s.db.GetCollection(ctx, db.CollectionLetters, nil)
	if err != nil {
		return fmt.Errorf("get letters collection: %w", err)
	}

	if _, err := col.DeleteDocument(ctx, strconv.FormatInt(id, 10)); err != nil {
		if shared.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete letter document: %w", err)
	}
	return nil
}

func toLetterModel(doc letterDoc) (*model.Letter, error) {
	id, err := strconv.ParseInt(doc.Key, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse letter key %q: %w", doc.Key, err)
	}

	replies := make([]model.Reply, len(doc.Replies))
	for i, r := range doc.Replies {
		replies[i] = model.Reply{
			Content:   r.Content,
			Username:  r.Username,
			Timestamp: r.Timestamp,
		}
	}

	return &model.Letter{
		ID:        id,
		Content:   doc.Content,
		Username:  doc.Username,
		Likes:     doc.Likes,
		Replies:   replies,
		Timestamp: doc.Timestamp,
	}, nil
}
