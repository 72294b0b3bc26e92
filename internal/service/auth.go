package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/smartrecipes/backend/internal/models"
	"github.com/smartrecipes/backend/internal/types"
)

// AuthService handles registration, email verification and login.
type AuthService struct {
	db        *gorm.DB
	pending   IPendingStore
	email     IEmailService
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService instance
func NewAuthService(db *gorm.DB, pending IPendingStore, email IEmailService, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		db:        db,
		pending:   pending,
		email:     email,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// Register starts a pending registration and emails its verification code.
// No user row is created until the code is confirmed.
func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	code, err := verificationCode()
	if err != nil {
		return fmt.Errorf("generate verification code: %w", err)
	}

	reg := &PendingRegistration{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Code:         code,
	}
	if err := s.pending.Put(ctx, reg); err != nil {
		return fmt.Errorf("store pending registration: %w", err)
	}

	if err := s.email.SendVerificationEmail(name, email, code); err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}

	return nil
}

// Verify completes a pending registration, creates the user and returns a
// session token.
func (s *AuthService) Verify(ctx context.Context, email, code string) (string, error) {
	reg, err := s.pending.Get(ctx, email)
	if err != nil {
		return "", err
	}
	if reg.Code != code {
		return "", ErrVerificationInvalid
	}

	user := models.User{
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: reg.PasswordHash,
		Verified:     true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}

	if err := s.pending.Delete(ctx, email); err != nil {
		// The entry expires on its own; verification already succeeded.
		return s.generateToken(&user)
	}

	return s.generateToken(&user)
}

// Login authenticates an existing user and returns a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.generateToken(&user)
}

// ValidateToken parses and verifies a session token.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &types.TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*types.TokenClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			Subject:   user.ID.String(),
		},
		UserID: user.ID,
		Email:  user.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// verificationCode returns a random six-digit code.
func verificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
