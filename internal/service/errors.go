// Package service holds the account, content and share link operations
// behind the HTTP handlers
package service

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidAccount     = errors.New("invalid username or password format")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidContentType = errors.New("invalid content type")
	ErrInvalidContent     = errors.New("invalid content")
	ErrContentNotFound    = errors.New("content not found")
	ErrShareNotFound      = errors.New("shared content not found")
)

// Connector hands out a database handle bound to ctx
type Connector interface {
	DB(ctx context.Context) (*gorm.DB, error)
}

type PasswordHasher interface {
	GenerateFromPassword(p string) (string, error)
	VerifyPasswd(p, e string) (bool, error)
}
