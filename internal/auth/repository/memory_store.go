package repository

import (
	"strings"
	"sync"
	"time"

	"github.com/burcum/burcum-api/internal/auth/models"
)

// MemoryStore keeps users and sessions in process memory. Data is lost
// on restart; meant for development and tests, selected with
// DB_TYPE=memory.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[string]*models.User // keyed by lowercased email
	sessions map[string]*models.Session
	tokens   map[string]*models.VerificationToken
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]*models.User),
		sessions: make(map[string]*models.Session),
		tokens:   make(map[string]*models.VerificationToken),
	}
}

func (s *MemoryStore) CreateUser(user *models.User) error {
	key := strings.ToLower(user.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[key]; exists {
		return ErrEmailExists
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	clone := *user
	s.users[key] = &clone
	return nil
}

func (s *MemoryStore) GetUserByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[strings.ToLower(email)]
	if !exists {
		return nil, ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (s *MemoryStore) GetUserByID(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.ID == id {
			clone := *user
			return &clone, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryStore) UpdateUser(user *models.User) error {
	key := strings.ToLower(user.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[key]; !exists {
		return ErrUserNotFound
	}

	user.UpdatedAt = time.Now()
	clone := *user
	s.users[key] = &clone
	return nil
}

func (s *MemoryStore) CreateSession(session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session.CreatedAt = time.Now()
	clone := *session
	s.sessions[session.ID] = &clone
	return nil
}

func (s *MemoryStore) GetSession(id string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, exists := s.sessions[id]
	if !exists {
		return nil, ErrSessionNotFound
	}
	clone := *session
	return &clone, nil
}

func (s *MemoryStore) DeleteSession(id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) DeleteExpiredSessions() (int64, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for id, session := range s.sessions {
		if session.ExpiresAt.Before(now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (s *MemoryStore) CreateVerificationToken(token *models.VerificationToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	token.CreatedAt = time.Now()
	clone := *token
	s.tokens[token.Token] = &clone
	return nil
}

func (s *MemoryStore) GetVerificationToken(token string) (*models.VerificationToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.tokens[token]
	if !exists {
		return nil, ErrTokenNotFound
	}
	clone := *record
	return &clone, nil
}

func (s *MemoryStore) DeleteVerificationToken(token string) error {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
	return nil
}
