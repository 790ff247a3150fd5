package chat

import (
	"fmt"
	"testing"
	"time"
)

func TestGetOrCreateGeneratesID(t *testing.T) {
	store := NewStore(20, 100, 0)

	id, history := store.GetOrCreate("")
	if id == "" {
		t.Fatal("expected a generated session id")
	}
	if len(history) != 0 {
		t.Errorf("new session should have empty history, got %d messages", len(history))
	}

	// Reusing the id must land on the same session.
	again, _ := store.GetOrCreate(id)
	if again != id {
		t.Errorf("expected same id back, got %q", again)
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 session, got %d", store.Len())
	}
}

func TestAppendTurnOrder(t *testing.T) {
	store := NewStore(20, 100, 0)
	id, _ := store.GetOrCreate("")

	store.AppendTurn(id,
		Message{Role: RoleUser, Content: "first question"},
		Message{Role: RoleAssistant, Content: "first answer"},
	)

	_, history := store.GetOrCreate(id)
	if len(history) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(history))
	}
	if history[0].Role != RoleUser || history[0].Content != "first question" {
		t.Errorf("unexpected first message: %+v", history[0])
	}
	if history[1].Role != RoleAssistant || history[1].Content != "first answer" {
		t.Errorf("unexpected second message: %+v", history[1])
	}
}

func TestHistoryBound(t *testing.T) {
	const maxHistory = 6
	store := NewStore(maxHistory, 100, 0)
	id, _ := store.GetOrCreate("")

	for i := 0; i < 10; i++ {
		store.AppendTurn(id,
			Message{Role: RoleUser, Content: fmt.Sprintf("q%d", i)},
			Message{Role: RoleAssistant, Content: fmt.Sprintf("a%d", i)},
		)
	}

	_, history := store.GetOrCreate(id)
	if len(history) != maxHistory {
		t.Fatalf("expected %d messages, got %d", maxHistory, len(history))
	}
	// The newest messages survive, in original order.
	if history[0].Content != "q7" {
		t.Errorf("expected oldest retained message q7, got %q", history[0].Content)
	}
	if history[maxHistory-1].Content != "a9" {
		t.Errorf("expected newest message a9, got %q", history[maxHistory-1].Content)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	store := NewStore(20, 100, 0)
	id, _ := store.GetOrCreate("")
	store.AppendTurn(id, Message{Role: RoleUser, Content: "q"}, Message{Role: RoleAssistant, Content: "a"})

	_, snapshot := store.GetOrCreate(id)
	snapshot[0].Content = "mutated"

	_, fresh := store.GetOrCreate(id)
	if fresh[0].Content != "q" {
		t.Error("mutating a snapshot must not affect the stored history")
	}
}

func TestLRUEviction(t *testing.T) {
	store := NewStore(20, 3, 0)
	base := time.Unix(1700000000, 0)
	tick := 0
	store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	a, _ := store.GetOrCreate("")
	b, _ := store.GetOrCreate("")
	c, _ := store.GetOrCreate("")

	// Touch a so b becomes least recently used.
	store.GetOrCreate(a)

	d, _ := store.GetOrCreate("")
	if store.Len() != 3 {
		t.Fatalf("expected 3 sessions after eviction, got %d", store.Len())
	}

	// b was least recently used and must be the one evicted.
	if b == a || b == c || b == d {
		t.Fatal("uuid collision in test setup")
	}
	store.mu.Lock()
	_, bAlive := store.sessions[b]
	_, aAlive := store.sessions[a]
	_, cAlive := store.sessions[c]
	_, dAlive := store.sessions[d]
	store.mu.Unlock()

	if bAlive {
		t.Error("expected least recently used session to be evicted")
	}
	if !aAlive || !cAlive || !dAlive {
		t.Error("recently used sessions must survive eviction")
	}
}

func TestSweep(t *testing.T) {
	store := NewStore(20, 100, 10*time.Minute)
	current := time.Unix(1700000000, 0)
	store.now = func() time.Time { return current }

	stale, _ := store.GetOrCreate("")
	current = current.Add(15 * time.Minute)
	fresh, _ := store.GetOrCreate("")

	if removed := store.Sweep(); removed != 1 {
		t.Fatalf("expected 1 swept session, got %d", removed)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 session left, got %d", store.Len())
	}

	// The stale id now resolves to a brand-new session.
	_, history := store.GetOrCreate(stale)
	if len(history) != 0 {
		t.Error("swept session should not retain history")
	}
	_ = fresh
}

func TestSweepDisabled(t *testing.T) {
	store := NewStore(20, 100, 0)
	store.GetOrCreate("")
	if removed := store.Sweep(); removed != 0 {
		t.Errorf("sweep with zero TTL should be a no-op, removed %d", removed)
	}
}
