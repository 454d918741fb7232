package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userRepo "paintbook/database/repository/user"
	"paintbook/models"
	"paintbook/services/booking"
	"paintbook/utils"
)

const authTokenTTL = 72 * time.Hour

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultUserService) Register(ctx context.Context, req models.UserRegistrationRequest) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	if existing, err := s.Repo.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, booking.NewConflict("email %s is already registered", req.Email)
	} else if err != nil && !errors.Is(err, userRepo.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	account := &models.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		PhoneNumber:  req.PhoneNumber,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.issueToken(ctx, account)
	if err != nil {
		return nil, err
	}

	logger.Info("user: registered",
		zap.String("userID", account.ID),
		zap.String("role", account.Role))
	return &models.AuthResponse{Token: token, User: *account}, nil
}

func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	account, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, booking.NewNotFound("invalid credentials")
		}
		return nil, fmt.Errorf("failed to load user by email: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, booking.NewNotFound("invalid credentials")
	}

	token, err := s.issueToken(ctx, account)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: *account}, nil
}

func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	account, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, booking.NewNotFound("user %s not found", id)
		}
		return nil, fmt.Errorf("failed to load user %s: %w", id, err)
	}
	return account, nil
}

// RevokeAuthToken drops the cached token hash, invalidating every outstanding
// token for the account.
func (s *DefaultUserService) RevokeAuthToken(ctx context.Context, userID string) error {
	cache := utils.GetAuthCacheClient()
	if err := cache.Del(ctx, utils.AuthTokenKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to revoke token for user %s: %w", userID, err)
	}
	return nil
}

// issueToken signs a JWT carrying the account's ID and role and caches its hash
// so the auth middleware can check revocation.
func (s *DefaultUserService) issueToken(ctx context.Context, account *models.User) (string, error) {
	token, err := utils.GenerateToken(account.ID, account.Role, authTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	cache := utils.GetAuthCacheClient()
	if err := cache.Set(ctx, utils.AuthTokenKey(account.ID), utils.HashToken(token), authTokenTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to cache token hash: %w", err)
	}
	return token, nil
}
