package service_test

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"mindhaven.app/server/common/llm"
	"mindhaven.app/server/internal/model"
	"mindhaven.app/server/internal/store"
)

// mockLLM lets each spec script the provider response.
type mockLLM struct {
	completeFn func(ctx context.Context, req llm.Request) (string, error)
}

func (m *mockLLM) Complete(ctx context.Context, req llm.Request) (string, error) {
	return m.completeFn(ctx, req)
}

func (m *mockLLM) Model() string { return "mock" }

func fixedLLM(resp string) *mockLLM {
	return &mockLLM{completeFn: func(context.Context, llm.Request) (string, error) {
		return resp, nil
	}}
}

// memLetterStore is an in-memory LetterStore for service specs.
type memLetterStore struct {
	mu      sync.Mutex
	letters map[int64]*model.Letter
}

func newMemLetterStore() *memLetterStore {
	return &memLetterStore{letters: make(map[int64]*model.Letter)}
}

func (s *memLetterStore) Create(_ context.Context, letter *model.Letter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *letter
	clone.Replies = append([]model.Reply(nil), letter.Replies...)
	s.letters[letter.ID] = &clone
	return nil
}

func (s *memLetterStore) Get(_ context.Context, id int64) (*model.Letter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	letter, ok := s.letters[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *letter
	clone.Replies = append([]model.Reply(nil), letter.Replies...)
	return &clone, nil
}

func (s *memLetterStore) List(_ context.Context, opts store.ListOptions) ([]model.Letter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]model.Letter, 0, len(s.letters))
	for _, l := range s.letters {
		all = append(all, *l)
	}
	sort.Slice(all, func(i, j int) bool {
		if opts.Sort == store.SortPopular {
			if all[i].Likes != all[j].Likes {
				return all[i].Likes > all[j].Likes
			}
		}
		return all[i].Timestamp.After(all[j].Timestamp)
	})

	offset := opts.Offset()
	if offset >= len(all) {
		return []model.Letter{}, nil
	}
	end := offset + opts.PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (s *memLetterStore) Like(_ context.Context, id int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	letter, ok := s.letters[id]
	if !ok {
		return 0, store.ErrNotFound
	}
	letter.Likes++
	return letter.Likes, nil
}

func (s *memLetterStore) AppendReply(_ context.Context, id int64, reply model.Reply) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	letter, ok := s.letters[id]
	if !ok {
		return store.ErrNotFound
	}
	letter.Replies = append(letter.Replies, reply)
	return nil
}

func (s *memLetterStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.letters[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.letters, id)
	return nil
}

// rmwLetterStore overrides Like with an unserialized read-modify-write, the
// same shape the document-store adapter uses. Concurrent likes can read the
// same count and collapse into one increment.
type rmwLetterStore struct {
	*memLetterStore
}

func (s *rmwLetterStore) Like(ctx context.Context, id int64) (int, error) {
	letter, err := s.memLetterStore.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	newLikes := letter.Likes + 1
	runtime.Gosched()

	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.letters[id]
	if !ok {
		return 0, store.ErrNotFound
	}
	stored.Likes = newLikes
	return newLikes, nil
}

// memJournalStore is an in-memory JournalStore for service specs.
type memJournalStore struct {
	mu      sync.Mutex
	entries map[int64]*model.JournalEntry
}

func newMemJournalStore() *memJournalStore {
	return &memJournalStore{entries: make(map[int64]*model.JournalEntry)}
}

func (s *memJournalStore) Create(_ context.Context, entry *model.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *entry
	s.entries[entry.ID] = &clone
	return nil
}

func (s *memJournalStore) Get(_ context.Context, id int64) (*model.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *entry
	return &clone, nil
}

func (s *memJournalStore) ListByUsername(_ context.Context, username string, page, pageSize int) ([]model.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]model.JournalEntry, 0)
	for _, e := range s.entries {
		if e.Username == username {
			matched = append(matched, *e)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})

	offset := (page - 1) * pageSize
	if offset >= len(matched) {
		return []model.JournalEntry{}, nil
	}
	end := offset + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (s *memJournalStore) MoodCounts(_ context.Context, username string) (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int)
	for _, e := range s.entries {
		if e.Username == username {
			counts[e.Mood]++
		}
	}
	return counts, nil
}

func (s *memJournalStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.entries, id)
	return nil
}
