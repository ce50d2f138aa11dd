package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gearstore/gearstore-api/internal/models"
)

var (
	ErrUserNotFound       = errors.New("store: user not found")
	ErrEmailTaken         = errors.New("store: email already in use")
	ErrInvalidCredentials = errors.New("store: invalid credentials")
)

// Users holds registered accounts in memory.
type Users struct {
	mu      sync.RWMutex
	byID    map[string]*models.User
	byEmail map[string]string
}

func NewUsers() *Users {
	return &Users{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]string),
	}
}

// SeedUsers returns a user store with the demo account.
func SeedUsers() *Users {
	u := NewUsers()
	// Ignore the impossible error: the demo seed is a fixed valid input.
	_, _ = u.Register(context.Background(), "John Doe", "john@example.com", "password123")
	return u
}

// Register creates a new account. Email matching is case-insensitive.
func (u *Users) Register(_ context.Context, name, email, password string) (models.User, error) {
	key := normalizeEmail(email)

	u.mu.Lock()
	defer u.mu.Unlock()

	if _, exists := u.byEmail[key]; exists {
		return models.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	u.byID[user.ID] = user
	u.byEmail[key] = user.ID
	return *user, nil
}

// Authenticate checks the credentials and returns the matching account.
func (u *Users) Authenticate(_ context.Context, email, password string) (models.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	id, ok := u.byEmail[normalizeEmail(email)]
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}
	user := u.byID[id]
	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return *user, nil
}

// Get returns the account with the given id.
func (u *Users) Get(_ context.Context, id string) (models.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	user, ok := u.byID[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return *user, nil
}

// Exists reports whether an account is registered under the given email.
func (u *Users) Exists(_ context.Context, email string) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	_, ok := u.byEmail[normalizeEmail(email)]
	return ok
}

// ProfileUpdate carries the editable profile fields. Nil pointers leave the
// current value untouched.
type ProfileUpdate struct {
	Name    *string
	Phone   *string
	Address *string
}

// UpdateProfile applies the given changes and returns the updated account.
func (u *Users) UpdateProfile(_ context.Context, id string, update ProfileUpdate) (models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	user, ok := u.byID[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.Address != nil {
		user.Address = *update.Address
	}
	return *user, nil
}

// ChangePassword verifies the current password before storing the new hash.
func (u *Users) ChangePassword(_ context.Context, id, current, next string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	user, ok := u.byID[id]
	if !ok {
		return ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(current)) != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
