package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-story-nook/internal/config"
	"github.com/MKhiriev/go-story-nook/internal/metrics"
	"github.com/MKhiriev/go-story-nook/internal/store"
	"github.com/MKhiriev/go-story-nook/models"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// mutableClock is a utils.Clock that tests can move forward.
type mutableClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *mutableClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *mutableClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-story-nook-test",
		TokenDuration: time.Hour,
		BcryptCost:    bcrypt.MinCost,
		ResetTokenTTL: time.Hour,
		FrontendURL:   "https://storynook.test/",
		Version:       "1.2.3",
	}
}

// sequenceTokens hands out tokens in order.
type sequenceTokens struct {
	tokens []string
	next   int
}

func (s *sequenceTokens) NewResetToken() string {
	t := s.tokens[s.next]
	s.next++
	return t
}

// memUserRepository is an in-memory store.UserRepository with the same
// matching rules as the SQL one.
type memUserRepository struct {
	mu     sync.Mutex
	users  map[int64]models.User
	nextID int64
	writes int
}

func newMemUserRepository() *memUserRepository {
	return &memUserRepository{users: make(map[int64]models.User), nextID: 1}
}

func (m *memUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == user.Email {
			return models.User{}, store.ErrEmailAlreadyExists
		}
	}

	user.UserID = m.nextID
	user.CreatedAt = testNow
	m.nextID++
	m.users[user.UserID] = user
	m.writes++
	return user, nil
}

func (m *memUserRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *memUserRepository) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return u, nil
}

func (m *memUserRepository) SetPasswordHash(_ context.Context, userID int64, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return store.ErrNoUserWasFound
	}
	u.PasswordHash = hash
	m.users[userID] = u
	m.writes++
	return nil
}

func (m *memUserRepository) SetResetToken(_ context.Context, userID int64, token string, expires time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return store.ErrNoUserWasFound
	}
	u.ResetToken = &token
	u.ResetTokenExpires = &expires
	m.users[userID] = u
	m.writes++
	return nil
}

func (m *memUserRepository) ClearResetToken(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return store.ErrNoUserWasFound
	}
	u.ResetToken, u.ResetTokenExpires = nil, nil
	m.users[userID] = u
	m.writes++
	return nil
}

func (m *memUserRepository) findByToken(token string, now time.Time) (models.User, bool) {
	for _, u := range m.users {
		if u.ResetToken != nil && *u.ResetToken == token && u.ResetTokenExpires.After(now) {
			return u, true
		}
	}
	return models.User{}, false
}

func (m *memUserRepository) FindUserByValidResetToken(_ context.Context, token string, now time.Time) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.findByToken(token, now)
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return u, nil
}

func (m *memUserRepository) ConsumeResetToken(_ context.Context, token, hash string, now time.Time) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.findByToken(token, now)
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	u.PasswordHash = hash
	u.ResetToken, u.ResetTokenExpires = nil, nil
	m.users[u.UserID] = u
	m.writes++
	return u, nil
}

func (m *memUserRepository) ClearExpiredResetTokens(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var cleared int64
	for id, u := range m.users {
		if u.ResetTokenExpires != nil && !u.ResetTokenExpires.After(now) {
			u.ResetToken, u.ResetTokenExpires = nil, nil
			m.users[id] = u
			cleared++
		}
	}
	m.writes++
	return cleared, nil
}

func (m *memUserRepository) writeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// countingRecorder counts metric calls.
type countingRecorder struct {
	registrations  int
	loginSuccess   int
	loginFailure   int
	resetRequested int
	resetCompleted int
	swept          int64
}

func (c *countingRecorder) RecordRegistration() { c.registrations++ }
func (c *countingRecorder) RecordLogin(outcome string) {
	if outcome == metrics.LoginSuccess {
		c.loginSuccess++
		return
	}
	c.loginFailure++
}
func (c *countingRecorder) RecordResetRequested()       { c.resetRequested++ }
func (c *countingRecorder) RecordResetCompleted()       { c.resetCompleted++ }
func (c *countingRecorder) RecordTokensSwept(n int64)   { c.swept += n }
func (c *countingRecorder) RecordHTTPStatus(status int) {}
