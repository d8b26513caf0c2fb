package databases

import (
	"context"
	"errors"
)

var (
	// ErrNoDocuments is returned when a lookup matches no record
	ErrNoDocuments = errors.New("no documents in result")
	// ErrDuplicateID is returned when a record is inserted with an id that is already stored
	ErrDuplicateID = errors.New("duplicate id")
	// ErrDuplicateEmail is returned when a user is inserted with an email that is already stored
	ErrDuplicateEmail = errors.New("duplicate email")
)

// alive reports the context error, if any, before a store operation runs
func alive(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	return ctx.Err()
}
