package redis

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"quiz-presenter/internal/app"
)

// SessionStore tracks connected canvas sessions in-process and publishes a
// liveness key per session so operators can count players across instances:
//
//	SET quiz:session:{id} {quizID} EX <ttl>
//
// Sessions themselves never leave the process.
type SessionStore struct {
	client   *redis.Client
	ttl      time.Duration
	mu       sync.RWMutex
	sessions map[string]*app.Session
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client:   client,
		ttl:      ttl,
		sessions: make(map[string]*app.Session),
	}
}

func (s *SessionStore) Add(id string, session *app.Session) {
	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()
	// best-effort liveness marker
	if err := s.client.Set(context.Background(), s.key(id), session.QuizID(), s.ttl).Err(); err != nil {
		log.Printf("redis: mark session %s: %v", id, err)
	}
}

// Touch extends the liveness marker of a session. Without a TTL the marker
// never expires and there is nothing to extend.
func (s *SessionStore) Touch(ctx context.Context, id string) error {
	if s.ttl <= 0 {
		return nil
	}
	return s.client.Expire(ctx, s.key(id), s.ttl).Err()
}

func (s *SessionStore) Remove(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	if err := s.client.Del(context.Background(), s.key(id)).Err(); err != nil {
		log.Printf("redis: clear session %s: %v", id, err)
	}
}

// Len reports how many sessions are live in this process.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionStore) key(id string) string {
	return "quiz:session:" + id
}
