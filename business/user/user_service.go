package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"shopMate/domain"
	"shopMate/pkg/logger"
	"shopMate/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pobyzaarif/goshortcute"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

// TokenRepository contract interface, backed by Redis
type TokenRepository interface {
	StoreToken(ctx context.Context, userID, token string, ttl time.Duration) error
	ValidateToken(ctx context.Context, token string) (string, error)
	InvalidateToken(ctx context.Context, userID, token string) error
}

type userService struct {
	userRepo        UserRepository
	tokenRepo       TokenRepository
	validate        *validator.Validate
	guestSessionKey string
}

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"

	tokenTTL          = 24 * time.Hour
	guestSessionTTLhr = 72
)

func NewUserService(
	userRepo UserRepository,
	tokenRepo TokenRepository,
	validate *validator.Validate,
	guestSessionKey string,
) *userService {
	return &userService{
		userRepo:        userRepo,
		tokenRepo:       tokenRepo,
		validate:        validate,
		guestSessionKey: guestSessionKey,
	}
}

func (s *userService) Register(ctx context.Context, user *domain.User) (domain.User, error) {
	if err := s.validate.Var(user.Email, "required,email"); err != nil {
		logger.Error("Invalid email format", err)
		return domain.User{}, errors.New("invalid email format")
	}

	if err := s.validate.Var(user.Password, "required,min=6"); err != nil {
		logger.Error("Invalid user password", err)
		return domain.User{}, errors.New("password must be at least 6 characters")
	}

	// Check if email already exists
	existingUser, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err == nil && existingUser.ID > 0 {
		logger.Error("Email already exists")
		return domain.User{}, errors.New("email already exists")
	}

	passwordHash, err := utils.HashPassword(user.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return domain.User{}, errors.New("failed to hash password")
	}

	newUser := domain.User{
		FullName: user.FullName,
		Email:    user.Email,
		Password: string(passwordHash),
		Role:     RoleCustomer,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user")
		return domain.User{}, err
	}

	newUser.Password = ""
	return newUser, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		logger.Error("Invalid user credentials", err)
		return "", domain.User{}, errors.New("invalid credentials")
	}

	if ok := utils.CheckPassword(password, user.Password); !ok {
		logger.Error("User password incorrect")
		return "", domain.User{}, errors.New("incorrect password")
	}

	userIDStr := strconv.FormatUint(uint64(user.ID), 10)
	token, err := utils.GenerateJWT(userIDStr, user.Role)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	if s.tokenRepo != nil {
		if err := s.tokenRepo.StoreToken(ctx, userIDStr, token, tokenTTL); err != nil {
			logger.Warn("Failed to store token in Redis", err)
		}
	}

	user.Password = ""
	return token, user, nil
}

func (s *userService) Logout(ctx context.Context, userID uint, token string) error {
	if s.tokenRepo == nil {
		return nil
	}

	userIDStr := strconv.FormatUint(uint64(userID), 10)
	if err := s.tokenRepo.InvalidateToken(ctx, userIDStr, token); err != nil {
		logger.Error("Failed to invalidate token", err)
		return errors.New("failed to logout")
	}

	return nil
}

// ValidateTokenFromRedis resolves a bearer token to its user id, rejecting
// tokens that were logged out even if the JWT itself is still valid.
func (s *userService) ValidateTokenFromRedis(ctx context.Context, token string) (string, error) {
	if s.tokenRepo == nil {
		return "", errors.New("token store not configured")
	}
	return s.tokenRepo.ValidateToken(ctx, token)
}

// GuestSession issues an opaque session token for anonymous visitors so the
// storefront can attribute interactions before sign-up. The token is an
// AES-encrypted "uuid|expiry" pair, base64 encoded.
func (s *userService) GuestSession(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context error: %w", err)
	}

	expAt := time.Now().Add(guestSessionTTLhr * time.Hour).Unix()
	sessionID := fmt.Sprintf("%v|%v", uuid.NewString(), expAt)

	sessionEncrypt, err := goshortcute.AESCBCEncrypt([]byte(sessionID), []byte(s.guestSessionKey))
	if err != nil {
		logger.Error("Failed to encrypt guest session", err)
		return "", errors.New("failed to create guest session")
	}

	return goshortcute.StringtoBase64Encode(sessionEncrypt), nil
}

// ParseGuestSession decodes and validates a guest session token, returning
// the session id.
func (s *userService) ParseGuestSession(token string) (string, error) {
	strDecode := goshortcute.StringtoBase64Decode(token)
	sessionDecrypt, err := goshortcute.AESCBCDecrypt([]byte(strDecode), []byte(s.guestSessionKey))
	if err != nil {
		logger.Error("Failed to decrypt guest session", err)
		return "", errors.New("invalid or expired session")
	}

	parts := strings.Split(sessionDecrypt, "|")
	if len(parts) != 2 {
		return "", errors.New("invalid or expired session")
	}

	ts, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", errors.New("invalid or expired session")
	}
	if time.Now().After(time.Unix(ts, 0)) {
		return "", errors.New("invalid or expired session")
	}

	return parts[0], nil
}
