package session

import (
	"testing"
	"time"

	"health_check_project/internal/llm"
)

func TestCreateAndGet(t *testing.T) {
	store := NewStore(time.Minute)

	memory := llm.NewMemory()
	sess := store.Create("A123456789", memory)
	if sess.Token == "" {
		t.Fatal("expected a non-empty session token")
	}

	got, found := store.Get(sess.Token)
	if !found {
		t.Fatal("session not found by its token")
	}
	if got.IDNumber != "A123456789" || got.Memory != memory {
		t.Errorf("unexpected session contents: %+v", got)
	}
}

func TestGetEmptyOrUnknownToken(t *testing.T) {
	store := NewStore(time.Minute)

	if _, found := store.Get(""); found {
		t.Error("empty token must not resolve")
	}
	if _, found := store.Get("nope"); found {
		t.Error("unknown token must not resolve")
	}
}

func TestSessionExpires(t *testing.T) {
	store := NewStore(20 * time.Millisecond)

	sess := store.Create("A123456789", llm.NewMemory())
	time.Sleep(50 * time.Millisecond)

	if _, found := store.Get(sess.Token); found {
		t.Error("session must expire after the TTL")
	}
}

func TestDelete(t *testing.T) {
	store := NewStore(time.Minute)
	sess := store.Create("A123456789", llm.NewMemory())

	store.Delete(sess.Token)
	if _, found := store.Get(sess.Token); found {
		t.Error("deleted session must not resolve")
	}
}

func TestTokensAreUnique(t *testing.T) {
	store := NewStore(time.Minute)
	a := store.Create("A123456789", llm.NewMemory())
	b := store.Create("A123456789", llm.NewMemory())
	if a.Token == b.Token {
		t.Error("two sessions must not share a token")
	}
}
