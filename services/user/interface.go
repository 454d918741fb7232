package user

import (
	"context"

	"paintbook/models"
)

// UserService manages platform accounts and token issuance. The booking engine
// consumes it only to resolve an account's identity and role.
type UserService interface {
	Register(ctx context.Context, req models.UserRegistrationRequest) (*models.AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	RevokeAuthToken(ctx context.Context, userID string) error
}
