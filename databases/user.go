package databases

// go generate: mockery --name UserDatabase

import (
	"context"
	"sync"

	"github.com/linesmerrill/vehicle-registry-api/models"
)

// UserDatabase contains the methods to use with the user collection
type UserDatabase interface {
	FindOne(ctx context.Context, email string) (*models.User, error)
	InsertOne(ctx context.Context, user models.User) error
	CountDocuments(ctx context.Context) (int64, error)
}

type userDatabase struct {
	mu    sync.RWMutex
	users []models.User
}

// NewUserDatabase initializes an empty in-memory user collection
func NewUserDatabase() UserDatabase {
	return &userDatabase{}
}

// FindOne looks a user up by exact email match
func (u *userDatabase) FindOne(ctx context.Context, email string) (*models.User, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	u.mu.RLock()
	defer u.mu.RUnlock()

	i := u.indexOfEmail(email)
	if i < 0 {
		return nil, ErrNoDocuments
	}
	user := u.users[i]
	return &user, nil
}

// InsertOne appends the user unless the email or id is already taken. The
// uniqueness check and the append happen under the same lock, so two
// concurrent inserts for one email cannot both succeed.
func (u *userDatabase) InsertOne(ctx context.Context, user models.User) error {
	if err := alive(ctx); err != nil {
		return err
	}
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.indexOfEmail(user.Email) >= 0 {
		return ErrDuplicateEmail
	}
	for i := range u.users {
		if u.users[i].ID == user.ID {
			return ErrDuplicateID
		}
	}
	u.users = append(u.users, user)
	return nil
}

func (u *userDatabase) CountDocuments(ctx context.Context) (int64, error) {
	if err := alive(ctx); err != nil {
		return 0, err
	}
	u.mu.RLock()
	defer u.mu.RUnlock()
	return int64(len(u.users)), nil
}

func (u *userDatabase) indexOfEmail(email string) int {
	for i := range u.users {
		if u.users[i].Email == email {
			return i
		}
	}
	return -1
}
