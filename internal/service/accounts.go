package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"second-brain/api/internal/model"
	"second-brain/api/pkg/validators"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

const userIDLength = 16

type Accounts struct {
	store  Connector
	hasher PasswordHasher

	dummyOnce sync.Once
	dummyHash string
	dummyErr  error
}

func NewAccounts(store Connector, hasher PasswordHasher) *Accounts {
	return &Accounts{store: store, hasher: hasher}
}

// Register creates a user and returns its id. Usernames are unique, a taken
// one yields ErrUserExists even when a concurrent registration wins the race.
func (a *Accounts) Register(ctx context.Context, username, password string) (string, error) {
	if err := validators.UsernameValidator(username); err != nil {
		return "", fmt.Errorf("%w, %w", ErrInvalidAccount, err)
	}

	if err := validators.PasswordValidator(password); err != nil {
		return "", fmt.Errorf("%w, %w", ErrInvalidAccount, err)
	}

	d, err := a.store.DB(ctx)
	if err != nil {
		return "", err
	}

	hash, err := a.hasher.GenerateFromPassword(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password, %w", err)
	}

	id, err := gonanoid.New(userIDLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate user id, %w", err)
	}

	user := model.User{
		ID:           id,
		Username:     username,
		PasswordHash: hash,
	}

	if err := d.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", ErrUserExists
		}

		return "", fmt.Errorf("failed to create user, %w", err)
	}

	return user.ID, nil
}

// Authenticate returns the id of the user matching the credentials. Unknown
// users and wrong passwords both yield ErrInvalidCredentials.
func (a *Accounts) Authenticate(ctx context.Context, username, password string) (string, error) {
	d, err := a.store.DB(ctx)
	if err != nil {
		return "", err
	}

	var user model.User
	err = d.Select("id", "password_hash").Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Burn the same time a real verification would
			if hash, err := a.dummy(); err == nil {
				a.hasher.VerifyPasswd(password, hash)
			}

			return "", ErrInvalidCredentials
		}

		return "", fmt.Errorf("failed to look up user, %w", err)
	}

	ok, err := a.hasher.VerifyPasswd(password, user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("failed to verify password, %w", err)
	}

	if !ok {
		return "", ErrInvalidCredentials
	}

	return user.ID, nil
}

func (a *Accounts) Exists(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}

	d, err := a.store.DB(ctx)
	if err != nil {
		return false, err
	}

	var n int64
	if err := d.Model(&model.User{}).Where("id = ?", userID).Count(&n).Error; err != nil {
		return false, fmt.Errorf("failed to check user, %w", err)
	}

	return n > 0, nil
}

func (a *Accounts) dummy() (string, error) {
	a.dummyOnce.Do(func() {
		a.dummyHash, a.dummyErr = a.hasher.GenerateFromPassword("second-brain-dummy-password")
	})

	return a.dummyHash, a.dummyErr
}
