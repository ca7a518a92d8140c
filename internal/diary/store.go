package diary

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/haeun-dev/maumdiary/internal/logging"
	"github.com/haeun-dev/maumdiary/internal/storage"
)

// blobKey names the snapshot holding the whole entry collection.
const blobKey = "diaries"

// Store keeps the entry collection in memory and re-persists the full
// snapshot after every mutation. It is driven from a single goroutine;
// reads issued after a mutation always observe it.
//
// The store trusts its inputs: content length and emotion validity are the
// caller's responsibility (see cli.ValidateContent). Re-validating here
// would silently change the tolerant semantics callers rely on.
type Store struct {
	kv      storage.KV
	log     logging.Logger
	entries []Entry
	lastID  int64

	// nowFn is a test seam for the clock.
	nowFn func() time.Time
}

// NewStore loads the persisted snapshot. An absent or unreadable snapshot
// starts the store empty rather than failing; corruption is logged.
func NewStore(ctx context.Context, kv storage.KV, log logging.Logger) (*Store, error) {
	s := &Store{kv: kv, log: log, nowFn: time.Now}

	entries, err := storage.Load[[]Entry](ctx, kv, blobKey)
	if err != nil {
		if !errors.Is(err, storage.ErrCorruptSnapshot) {
			return nil, err
		}
		log.Warn(ctx, "diary snapshot unreadable, starting empty", "key", blobKey, "error", err)
	}
	s.entries = entries
	for _, e := range entries {
		if e.ID > s.lastID {
			s.lastID = e.ID
		}
	}
	return s, nil
}

// nextID derives an id from the wall clock in milliseconds, bumping past
// the last issued id so same-millisecond creations stay unique.
func (s *Store) nextID() int64 {
	id := s.nowFn().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) persist(ctx context.Context) error {
	return storage.Save(ctx, s.kv, blobKey, s.entries)
}

// Add creates an entry for ownerID and persists the collection. The entry
// is returned even when persistence fails; in that case the error reports
// lost durability while the in-memory state stays correct.
func (s *Store) Add(ctx context.Context, ownerID int64, content string, emotion Emotion) (Entry, error) {
	now := s.nowFn()
	e := Entry{
		ID:        s.nextID(),
		OwnerID:   ownerID,
		Date:      now.Format("2006-01-02"),
		Content:   content,
		Emotion:   emotion,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.entries = append(s.entries, e)
	return e, s.persist(ctx)
}

// Update overwrites content and emotion of the entry with the given id and
// bumps UpdatedAt. An unknown id is a no-op, not an error: the collection
// is left untouched and nothing is re-persisted.
func (s *Store) Update(ctx context.Context, id int64, content string, emotion Emotion) error {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].Content = content
			s.entries[i].Emotion = emotion
			s.entries[i].UpdatedAt = s.nowFn()
			return s.persist(ctx)
		}
	}
	return nil
}

// Delete removes the entry with the given id if present; no-op otherwise.
// Ownership is not checked here; confirming the entry belongs to the
// acting user is the caller's job.
func (s *Store) Delete(ctx context.Context, id int64) error {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// Get returns the entry with the given id.
func (s *Store) Get(id int64) (Entry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// ForOwner returns ownerID's entries in insertion order. Display ordering
// (e.g. newest first) is up to the caller.
func (s *Store) ForOwner(ownerID int64) []Entry {
	var result []Entry
	for _, e := range s.entries {
		if e.OwnerID == ownerID {
			result = append(result, e)
		}
	}
	return result
}

// Search returns ownerID's entries whose content contains keyword,
// compared case-insensitively. An empty keyword matches everything the
// owner has.
func (s *Store) Search(ownerID int64, keyword string) []Entry {
	needle := strings.ToLower(keyword)

	var result []Entry
	for _, e := range s.entries {
		if e.OwnerID == ownerID && strings.Contains(strings.ToLower(e.Content), needle) {
			result = append(result, e)
		}
	}
	return result
}

// ByEmotion returns ownerID's entries with an exact emotion match.
func (s *Store) ByEmotion(ownerID int64, emotion Emotion) []Entry {
	var result []Entry
	for _, e := range s.entries {
		if e.OwnerID == ownerID && e.Emotion == emotion {
			result = append(result, e)
		}
	}
	return result
}

// DeleteAllForOwner removes every entry owned by ownerID. The account
// store calls this when an account is deleted.
func (s *Store) DeleteAllForOwner(ctx context.Context, ownerID int64) error {
	// non-nil so an emptied collection persists as [] rather than null
	kept := []Entry{}
	for _, e := range s.entries {
		if e.OwnerID != ownerID {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(s.entries) {
		return nil
	}

	s.log.Info(ctx, "cascade-deleting diary entries", "owner_id", ownerID, "removed", len(s.entries)-len(kept))
	s.entries = kept
	return s.persist(ctx)
}
