// File: database/repository/user/interface.go
package userRepo

import (
	"context"
	"errors"

	"paintbook/models"
)

// ErrUserNotFound is returned when no account matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the persistence surface for platform accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	PushNotification(ctx context.Context, userID string, notification models.Notification) error
	Delete(ctx context.Context, id string) error
}
