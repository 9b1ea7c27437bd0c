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

type userStore struct {
	db arangodb.Database
}

func newUserStore(database arangodb.Database) UserStore {
	return &userStore{db: database}
}

type userDoc struct {
	Key       string    `json:"_key"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	WorkOSID  *string   `json:"workos_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	col, err := s.db.GetCollection(ctx, db.CollectionUsers, nil)
	if err != nil {
		return nil, fmt.Errorf("get users collection: %w", err)
	}

	var doc userDoc
	if _, err := col.ReadDocument(ctx, strconv.FormatInt(id, 10), &doc); err != nil {
		if shared.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read user document: %w", err)
	}
	return toUserModel(doc)
}

// UpsertByWorkOSID matches on the identity provider's stable user ID so
// repeated logins reuse the existing account document. On a hit, the caller's
// user is rewritten with the stored identity (ID included).
func (s *userStore) UpsertByWorkOSID(ctx context.Context, user *model.User) error {
	if user.WorkOSID == nil {
		return fmt.Errorf("workos id is required for upsert")
	}

	query := `
		FOR u IN users
			FILTER u.workos_id == @workosID
			LIMIT 1
			RETURN u
	`
	cursor, err := s.db.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]any{"workosID": *user.WorkOSID},
	})
	if err != nil {
		return fmt.Errorf("lookup user by workos id: %w", err)
	}
	defer cursor.Close()

	col, err := s.db.GetCollection(ctx, db.CollectionUsers, nil)
	if err != nil {
		return fmt.Errorf("get users collection: %w", err)
	}

	if cursor.HasMore() {
		var existing userDoc
		if _, err := cursor.ReadDocument(ctx, &existing); err != nil {
			return fmt.Errorf("read user document: %w", err)
		}

		patch := map[string]any{
			"name":       user.Name,
			"email":      user.Email,
			"avatar_url": user.AvatarURL,
		}
		if _, err := col.UpdateDocument(ctx, existing.Key, patch); err != nil {
			return fmt.Errorf("update user document: %w", err)
		}

		existing.Name = user.Name
		existing.Email = user.Email
		existing.AvatarURL = user.AvatarURL
		stored, err := toUserModel(existing)
		if err != nil {
			return err
		}
		*user = *stored
		return nil
	}

	user.CreatedAt = time.Now().UTC()
	doc := userDoc{
		Key:       strconv.FormatInt(user.ID, 10),
		Name:      user.Name,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		WorkOSID:  user.WorkOSID,
		CreatedAt: user.CreatedAt,
	}
	if _, err := col.CreateDocument(ctx, doc); err != nil {
		return fmt.Errorf("create user document: %w", err)
	}
	return nil
}

func toUserModel(doc userDoc) (*model.User, error) {
	id, err := strconv.ParseInt(doc.Key, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse user key %q: %w", doc.Key, err)
	}
	return &model.User{
		ID:        id,
		Name:      doc.Name,
		Email:     doc.Email,
		AvatarURL: doc.AvatarURL,
		WorkOSID:  doc.WorkOSID,
		CreatedAt: doc.CreatedAt,
	}, nil
}
