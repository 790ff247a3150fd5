package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store owns all chat sessions. It is safe for concurrent use: the mutex is
// held only for the read-modify-write of one session, never across classifier
// or LLM calls.
type Store struct {
	mu          sync.Mutex
	sessions    map[string]*session
	maxHistory  int
	maxSessions int
	ttl         time.Duration

	now func() time.Time // overridable in tests
}

type session struct {
	history    []Message
	lastActive time.Time
}

// NewStore creates a session store. maxHistory bounds each session's retained
// messages; maxSessions bounds the session count (least recently used wins
// eviction); ttl is how long an idle session survives Sweep, 0 disables
// expiry.
func NewStore(maxHistory, maxSessions int, ttl time.Duration) *Store {
	return &Store{
		sessions:    make(map[string]*session),
		maxHistory:  maxHistory,
		maxSessions: maxSessions,
		ttl:         ttl,
		now:         time.Now,
	}
}

// GetOrCreate returns the session id and a snapshot of its history. An empty
// id registers a new session under a freshly generated identifier, which the
// caller must hand back to the client for the next turn.
func (s *Store) GetOrCreate(id string) (string, []Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		id = uuid.New().String()
	}

	sess, ok := s.sessions[id]
	if !ok {
		s.evictLocked()
		sess = &session{}
		s.sessions[id] = sess
	}
	sess.lastActive = s.now()

	history := make([]Message, len(sess.history))
	copy(history, sess.history)
	return id, history
}

// AppendTurn records one completed turn: the user message followed by the
// assistant message, then trims the oldest messages to keep the history
// within its bound.
func (s *Store) AppendTurn(id string, user, assistant Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{}
		s.sessions[id] = sess
	}

	sess.history = append(sess.history, user, assistant)
	if overflow := len(sess.history) - s.maxHistory; overflow > 0 {
		sess.history = append(sess.history[:0:0], sess.history[overflow:]...)
	}
	sess.lastActive = s.now()
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes sessions idle longer than the TTL and reports how many were
// dropped. A zero TTL makes Sweep a no-op.
func (s *Store) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastActive.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// evictLocked drops the least recently used session once the store is at
// capacity. Caller holds the mutex.
func (s *Store) evictLocked() {
	if s.maxSessions <= 0 || len(s.sessions) < s.maxSessions {
		return
	}

	var oldestID string
	var oldest time.Time
	for id, sess := range s.sessions {
		if oldestID == "" || sess.lastActive.Before(oldest) {
			oldestID = id
			oldest = sess.lastActive
		}
	}
	if oldestID != "" {
		delete(s.sessions, oldestID)
	}
}
