package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/quizdeck/accounts-service/internal/core/domain"
)

// memStore is the in-memory UserStore shared by the service tests. It
// mirrors the store contract, including the duplicate-email rejection on
// Create that a unique index provides in production.
type memStore struct {
	mu      sync.Mutex
	seq     int
	users   map[string]*domain.User // by id
	creates int
}

func newMemStore() *memStore {
	return &memStore{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (s *memStore) Create(_ context.Context, user *domain.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creates++
	for _, u := range s.users {
		if u.Email == user.Email {
			return "", domain.DuplicateField("email")
		}
	}
	s.seq++
	id := "u" + strconv.Itoa(s.seq)
	stored := cloneUser(user)
	stored.ID = id
	s.users[id] = stored
	return id, nil
}

func (s *memStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *memStore) FindByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (s *memStore) UpdatePassword(_ context.Context, id, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (s *memStore) UpdateProfile(_ context.Context, id string, fields domain.ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Name = fields.Name
	u.Email = fields.Email
	u.Phone = fields.Phone
	u.Birthdate = fields.Birthdate
	return nil
}

func (s *memStore) List(context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

// memThrottle is an in-memory LoginThrottle for auth service tests.
type memThrottle struct {
	mu       sync.Mutex
	failures map[string]int
	limit    int
	err      error // when set, every call fails with it
}

func newMemThrottle(limit int) *memThrottle {
	return &memThrottle{failures: make(map[string]int), limit: limit}
}

func (m *memThrottle) Blocked(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	return m.failures[email] >= m.limit, nil
}

func (m *memThrottle) RecordFailure(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.failures[email]++
	return nil
}

func (m *memThrottle) Reset(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	delete(m.failures, email)
	return nil
}
