package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/vodclient/pkg/localstorage"
	"github.com/dmitrymomot/vodclient/pkg/logger"
)

// Store is the process-wide session state. It is safe for concurrent use.
type Store struct {
	storage localstorage.Storage
	log     *slog.Logger

	mu              sync.RWMutex
	token           string
	userInfo        UserInfo
	showLoginPrompt bool
	historyList     []HistoryEntry

	subMu   sync.Mutex
	subs    map[uint64]func(State)
	nextSub uint64

	// pending holds snapshots not yet delivered, in mutation order. Guarded by mu.
	pending    []State
	delivering bool
}

// New builds a Store and rehydrates it from storage. A read error aborts
// construction; undecodable JSON values are logged and replaced with empty ones.
func New(ctx context.Context, storage localstorage.Storage, opts ...Option) (*Store, error) {
	if storage == nil {
		return nil, ErrNilStorage
	}

	s := &Store{
		storage:  storage,
		log:      slog.Default(),
		userInfo: UserInfo{},
		subs:     make(map[uint64]func(State)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("session"))

	token, _, err := storage.Get(ctx, KeyToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRehydrate, KeyToken, err)
	}
	s.token = token

	if raw, ok, err := storage.Get(ctx, KeyUserInfo); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRehydrate, KeyUserInfo, err)
	} else if ok {
		var info UserInfo
		if err := json.Unmarshal([]byte(raw), &info); err != nil || info == nil {
			s.log.WarnContext(ctx, "discarding undecodable user info", logger.Key(KeyUserInfo), logger.Error(err))
		} else {
			s.userInfo = info
		}
	}

	if raw, ok, err := storage.Get(ctx, KeyHistoryList); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRehydrate, KeyHistoryList, err)
	} else if ok {
		var list []HistoryEntry
		if err := json.Unmarshal([]byte(raw), &list); err != nil {
			s.log.WarnContext(ctx, "discarding undecodable history list", logger.Key(KeyHistoryList), logger.Error(err))
		} else {
			s.historyList = list
		}
	}

	return s, nil
}

// Token returns the current session token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsLogin reports whether a session token is present.
func (s *Store) IsLogin() bool {
	return s.Token() != ""
}

// UserInfo returns a copy of the cached profile; never nil.
func (s *Store) UserInfo() UserInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userInfo.Clone()
}

// ShowLoginPrompt reports whether the UI should ask the user to log in.
func (s *Store) ShowLoginPrompt() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showLoginPrompt
}

// HistoryList returns a copy of the play history.
func (s *Store) HistoryList() []HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneHistory(s.historyList)
}

// Snapshot returns a consistent copy of every field.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// SetToken stores a new session token. Profile and prompt flag are untouched.
func (s *Store) SetToken(ctx context.Context, token string) {
	s.mutate(ctx, func(ctx context.Context) {
		s.token = token
		s.persist(ctx, KeyToken, token)
	})
}

// ClearToken drops the session token and its storage entry.
func (s *Store) ClearToken(ctx context.Context) {
	s.mutate(ctx, s.clearTokenLocked)
}

// SetUserInfo replaces the cached profile wholesale.
func (s *Store) SetUserInfo(ctx context.Context, info UserInfo) {
	s.mutate(ctx, func(ctx context.Context) {
		s.setUserInfoLocked(ctx, info)
	})
}

// SetLoginState(false) clears the token and resets the profile in one step.
// SetLoginState(true) does nothing: logging in means calling SetToken.
func (s *Store) SetLoginState(ctx context.Context, loggedIn bool) {
	if loggedIn {
		return
	}
	s.mutate(ctx, s.logoutLocked)
}

// SetShowLoginPrompt sets the in-memory UI flag. It is never persisted.
func (s *Store) SetShowLoginPrompt(ctx context.Context, show bool) {
	s.mutate(ctx, func(context.Context) {
		s.showLoginPrompt = show
	})
}

// SetHistoryList replaces the play history.
func (s *Store) SetHistoryList(ctx context.Context, list []HistoryEntry) {
	s.mutate(ctx, func(ctx context.Context) {
		s.historyList = cloneHistory(list)
		s.persistJSON(ctx, KeyHistoryList, s.historyList)
	})
}

// Invalidate clears the token, resets the profile and raises the login
// prompt as a single transition with a single notification.
func (s *Store) Invalidate(ctx context.Context) {
	s.mutate(ctx, func(ctx context.Context) {
		s.clearTokenLocked(ctx)
		s.logoutLocked(ctx)
		s.showLoginPrompt = true
	})
}

// Subscribe registers fn to receive a snapshot after every mutation.
// Snapshots arrive in mutation order, outside the store lock. Delivery is
// done by one goroutine at a time: a mutation made while another goroutine
// is delivering is handed to that goroutine, and the same holds for a
// mutation made from inside a callback.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

// mutate runs fn under the write lock, queues the resulting snapshot and
// delivers the queue unless another goroutine already is. Storage writes
// ignore cancellation of ctx so a dropped request cannot leave storage
// behind memory.
func (s *Store) mutate(ctx context.Context, fn func(ctx context.Context)) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithoutCancel(ctx)

	s.mu.Lock()
	fn(ctx)
	s.pending = append(s.pending, s.snapshotLocked())
	if s.delivering {
		s.mu.Unlock()
		return
	}
	s.delivering = true
	s.mu.Unlock()

	s.deliver()
}

// deliver drains pending until it is empty. A panicking subscriber drops
// the undelivered snapshots and releases delivery to the next mutation.
func (s *Store) deliver() {
	defer func() {
		if r := recover(); r != nil {
			s.mu.Lock()
			s.pending = nil
			s.delivering = false
			s.mu.Unlock()
			panic(r)
		}
	}()

	for {
		s.mu.Lock()
		batch := s.pending
		s.pending = nil
		if len(batch) == 0 {
			s.delivering = false
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		for _, state := range batch {
			s.notify(state)
		}
	}
}

func (s *Store) clearTokenLocked(ctx context.Context) {
	s.token = ""
	if err := s.storage.Delete(ctx, KeyToken); err != nil {
		s.log.ErrorContext(ctx, "failed to remove persisted value", logger.Key(KeyToken), logger.Error(err))
	}
}

func (s *Store) setUserInfoLocked(ctx context.Context, info UserInfo) {
	s.userInfo = info.Clone()
	s.persistJSON(ctx, KeyUserInfo, s.userInfo)
}

func (s *Store) logoutLocked(ctx context.Context) {
	s.clearTokenLocked(ctx)
	s.setUserInfoLocked(ctx, UserInfo{})
}

func (s *Store) persist(ctx context.Context, key, value string) {
	if err := s.storage.Set(ctx, key, value); err != nil {
		s.log.ErrorContext(ctx, "failed to persist value", logger.Key(key), logger.Error(err))
	}
}

func (s *Store) persistJSON(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to encode value", logger.Key(key), logger.Error(err))
		return
	}
	s.persist(ctx, key, string(data))
}

func (s *Store) snapshotLocked() State {
	return State{
		Token:           s.token,
		IsLogin:         s.token != "",
		UserInfo:        s.userInfo.Clone(),
		ShowLoginPrompt: s.showLoginPrompt,
		HistoryList:     cloneHistory(s.historyList),
	}
}

func (s *Store) notify(state State) {
	s.subMu.Lock()
	fns := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}

func cloneHistory(list []HistoryEntry) []HistoryEntry {
	if list == nil {
		return nil
	}
	out := make([]HistoryEntry, len(list))
	copy(out, list)
	return out
}
