package registry

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/linesmerrill/vehicle-registry-api/databases"
	"github.com/linesmerrill/vehicle-registry-api/models"
)

// AccountRegistry owns the user collection and the credential flow
type AccountRegistry struct {
	DB     databases.UserDatabase
	Hasher PasswordHasher
	NewID  func() string
	Now    func() time.Time
}

// NewAccountRegistry returns a registry backed by db that hashes with hasher
func NewAccountRegistry(db databases.UserDatabase, hasher PasswordHasher) *AccountRegistry {
	return &AccountRegistry{
		DB:     db,
		Hasher: hasher,
		NewID:  uuid.NewString,
		Now:    time.Now,
	}
}

// Register creates an account. The email is checked before hashing so the
// common duplicate case skips the bcrypt work, and checked again by the store
// at insert time so concurrent registrations for one email cannot both win.
func (r *AccountRegistry) Register(ctx context.Context, details models.UserDetails) (*models.User, error) {
	if details.Name == "" || details.Email == "" || details.Password == "" {
		return nil, newError(ErrValidation, "name, email and password are required")
	}

	_, err := r.DB.FindOne(ctx, details.Email)
	switch {
	case err == nil:
		return nil, newError(ErrConflict, "user already exists")
	case !errors.Is(err, databases.ErrNoDocuments):
		return nil, wrapError(ErrInternal, "failed to register user", err)
	}

	hash, err := r.Hasher.Hash(details.Password)
	if err != nil {
		return nil, wrapError(ErrInternal, "failed to register user", err)
	}

	user := models.User{
		ID:           r.NewID(),
		Name:         details.Name,
		Email:        details.Email,
		PasswordHash: hash,
		CreatedAt:    r.Now().UTC(),
	}
	err = r.DB.InsertOne(ctx, user)
	if errors.Is(err, databases.ErrDuplicateEmail) {
		return nil, newError(ErrConflict, "user already exists")
	}
	if err != nil {
		return nil, wrapError(ErrInternal, "failed to register user", err)
	}

	zap.S().Infow("user registered", "id", user.ID)
	return &user, nil
}

// Login verifies credentials against the stored hash. It issues no token.
func (r *AccountRegistry) Login(ctx context.Context, creds models.Credentials) error {
	if creds.Email == "" || creds.Password == "" {
		return newError(ErrValidation, "email and password are required")
	}

	user, err := r.DB.FindOne(ctx, creds.Email)
	if errors.Is(err, databases.ErrNoDocuments) {
		return newError(ErrNotFound, "user not found")
	}
	if err != nil {
		return wrapError(ErrInternal, "failed to log in", err)
	}

	err = r.Hasher.Compare(user.PasswordHash, creds.Password)
	if isMismatch(err) {
		return newError(ErrInvalidCredentials, "invalid credentials")
	}
	if err != nil {
		return wrapError(ErrInternal, "failed to log in", err)
	}
	return nil
}
