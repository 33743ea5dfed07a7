package session

import (
	"time"

	"health_check_project/internal/llm"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
)

// Session is the interactive analysis context created by a non-owner
// retrieval and consumed by follow-up interact calls. It lives in the store
// under a server-issued token until the TTL expires.
type Session struct {
	Token    string
	IDNumber string
	Memory   *llm.Memory
}

type Store struct {
	cache *cache.Cache
}

func NewStore(ttl time.Duration) *Store {
	return &Store{cache: cache.New(ttl, ttl/2)}
}

// Create registers a new session and returns it with a fresh token.
func (s *Store) Create(idNumber string, memory *llm.Memory) *Session {
	sess := &Session{
		Token:    uuid.New().String(),
		IDNumber: idNumber,
		Memory:   memory,
	}
	s.cache.SetDefault(sess.Token, sess)
	return sess
}

func (s *Store) Get(token string) (*Session, bool) {
	if token == "" {
		return nil, false
	}
	value, found := s.cache.Get(token)
	if !found {
		return nil, false
	}
	return value.(*Session), true
}

func (s *Store) Delete(token string) {
	s.cache.Delete(token)
}
