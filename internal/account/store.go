package account

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/haeun-dev/maumdiary/internal/common"
	"github.com/haeun-dev/maumdiary/internal/dbx"
	"github.com/haeun-dev/maumdiary/internal/logging"
	"github.com/haeun-dev/maumdiary/internal/storage"
)

// Blob keys for the two snapshots this store owns.
const (
	usersKey   = "users"
	sessionKey = "currentUser"
)

// EntryPurger removes every diary entry owned by an account. The diary
// store satisfies this; it is the only cross-store dependency, kept as an
// explicit capability instead of shared state.
type EntryPurger interface {
	DeleteAllForOwner(ctx context.Context, ownerID int64) error
}

// Store keeps the account collection and the current session in memory,
// re-persisting full snapshots after every mutation. It holds the
// database handle (not just a KV view) so multi-blob mutations like
// UpdateUser and DeleteUser commit in one transaction.
type Store struct {
	db     *sql.DB
	log    logging.Logger
	purger EntryPurger

	accounts []Account
	session  *Session
	lastID   int64

	// nowFn is a test seam for the clock.
	nowFn func() time.Time
}

// NewStore loads the persisted accounts and session. Unreadable snapshots
// degrade to an empty collection / logged-out state rather than failing
// startup.
func NewStore(ctx context.Context, db *sql.DB, purger EntryPurger, log logging.Logger) (*Store, error) {
	s := &Store{db: db, purger: purger, log: log, nowFn: time.Now}
	kv := storage.NewSQLiteKV(db)

	accounts, err := storage.Load[[]Account](ctx, kv, usersKey)
	if err != nil {
		if !errors.Is(err, storage.ErrCorruptSnapshot) {
			return nil, err
		}
		log.Warn(ctx, "account snapshot unreadable, starting empty", "key", usersKey, "error", err)
	}
	s.accounts = accounts
	for _, a := range accounts {
		if a.ID > s.lastID {
			s.lastID = a.ID
		}
	}

	session, err := storage.Load[*Session](ctx, kv, sessionKey)
	if err != nil {
		if !errors.Is(err, storage.ErrCorruptSnapshot) {
			return nil, err
		}
		log.Warn(ctx, "session snapshot unreadable, starting logged out", "key", sessionKey, "error", err)
	}
	s.session = session

	return s, nil
}

func (s *Store) kv() storage.KV {
	return storage.NewSQLiteKV(s.db)
}

func (s *Store) nextID() int64 {
	id := s.nowFn().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// SignUp registers a new account. Usernames are unique (exact,
// case-sensitive match); a duplicate attempt returns ErrDuplicateUsername
// and leaves the collection unchanged. Signing up does not log in.
func (s *Store) SignUp(ctx context.Context, username, password, nickname string) error {
	for _, a := range s.accounts {
		if a.Username == username {
			return common.ErrDuplicateUsername
		}
	}

	s.accounts = append(s.accounts, Account{
		ID:        s.nextID(),
		Username:  username,
		Password:  password,
		Nickname:  nickname,
		CreatedAt: s.nowFn(),
	})
	return storage.Save(ctx, s.kv(), usersKey, s.accounts)
}

// Login starts a session for the account matching both username and
// password exactly, persisting the reduced session view. Repeating an
// identical login is harmless.
func (s *Store) Login(ctx context.Context, username, password string) error {
	for _, a := range s.accounts {
		if a.Username == username && a.Password == password {
			s.session = &Session{ID: a.ID, Username: a.Username, Nickname: a.Nickname}
			return storage.Save(ctx, s.kv(), sessionKey, s.session)
		}
	}
	return common.ErrInvalidCredentials
}

// Logout clears the session, removing the persisted blob entirely. No-op
// when already logged out.
func (s *Store) Logout(ctx context.Context) error {
	if s.session == nil {
		return nil
	}
	s.session = nil
	return storage.Clear(ctx, s.kv(), sessionKey)
}

// IsLoggedIn reports whether a session exists.
func (s *Store) IsLoggedIn() bool {
	return s.session != nil
}

// Current returns a copy of the session, or nil when logged out.
func (s *Store) Current() *Session {
	if s.session == nil {
		return nil
	}
	c := *s.session
	return &c
}

// CurrentPassword returns the stored password of the session holder, for
// pre-filling the profile form. ok is false when logged out.
func (s *Store) CurrentPassword() (password string, ok bool) {
	if s.session == nil {
		return "", false
	}
	for _, a := range s.accounts {
		if a.ID == s.session.ID {
			return a.Password, true
		}
	}
	return "", false
}

// UpdateUser overwrites username, password, and nickname of the session
// holder and refreshes the session's cached fields, persisting both blobs
// in one transaction. Uniqueness is deliberately NOT re-checked against
// other accounts when the username changes; that matches the persisted
// format's historical behavior and is pinned by a regression test.
func (s *Store) UpdateUser(ctx context.Context, username, password, nickname string) error {
	if s.session == nil {
		return common.ErrNotAuthenticated
	}

	for i := range s.accounts {
		if s.accounts[i].ID == s.session.ID {
			s.accounts[i].Username = username
			s.accounts[i].Password = password
			s.accounts[i].Nickname = nickname
			break
		}
	}
	s.session.Username = username
	s.session.Nickname = nickname

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		kv := storage.NewSQLiteKV(tx)
		if err := storage.Save(ctx, kv, usersKey, s.accounts); err != nil {
			return err
		}
		return storage.Save(ctx, kv, sessionKey, s.session)
	})
}

// DeleteUser removes the session holder's account, clears the session,
// and cascades into the diary store, deleting everything the account
// owned. The account and session blobs are persisted in one transaction;
// the purge runs after it commits.
func (s *Store) DeleteUser(ctx context.Context) error {
	if s.session == nil {
		return common.ErrNotAuthenticated
	}
	ownerID := s.session.ID

	// non-nil so an emptied collection persists as [] rather than null
	kept := []Account{}
	for _, a := range s.accounts {
		if a.ID != ownerID {
			kept = append(kept, a)
		}
	}
	s.accounts = kept
	s.session = nil

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		kv := storage.NewSQLiteKV(tx)
		if err := storage.Save(ctx, kv, usersKey, s.accounts); err != nil {
			return err
		}
		return storage.Clear(ctx, kv, sessionKey)
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "account deleted", "account_id", ownerID)
	if s.purger != nil {
		return s.purger.DeleteAllForOwner(ctx, ownerID)
	}
	return nil
}
