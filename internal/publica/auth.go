package publica

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/publica-dev/publica/internal/db"
	"golang.org/x/crypto/bcrypt"
)

// Register creates an account with the USER role and returns it with a
// fresh bearer token. The password is stored bcrypt-hashed and never
// leaves the store layer in responses.
func (m *Manager) Register(ctx context.Context, email, password, name string) (*AuthResult, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := m.db.CreateUser(ctx, &db.User{
		Email:    email,
		Password: string(hashed),
		Name:     name,
	})
	if err != nil {
		return nil, fmt.Errorf("db create user: %w", err)
	}

	token, err := m.generateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: *user, Token: token}, nil
}

// Login verifies the credentials and mints a token. Unknown email and
// wrong password are indistinguishable to the caller.
func (m *Manager) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := m.db.UserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("db get user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := m.generateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: *user, Token: token}, nil
}

// UserFromToken validates a bearer token and resolves it to the stored
// user.
func (m *Manager) UserFromToken(ctx context.Context, tokenString string) (*db.User, error) {
	token, err := jwt.ParseWithClaims(tokenString, jwt.MapClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(m.cfg.TokenSecret), nil
		})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return nil, fmt.Errorf("token without subject: %w", ErrPermissionDenied)
	}

	user, err := m.db.UserByID(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("db get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("token user not found: %w", ErrPermissionDenied)
	}

	return user, nil
}

func (m *Manager) generateToken(userID string) (string, error) {
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(m.cfg.TokenTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(m.cfg.TokenSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}
