package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"second-brain/api/internal/model"
	"second-brain/api/pkg/security"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxHashAttempts = 5

// SharedContent is the public view of a shared item
type SharedContent struct {
	ID       string            `json:"id"`
	Link     string            `json:"link"`
	Type     model.ContentType `json:"type"`
	Title    string            `json:"title"`
	Tags     string            `json:"tags"`
	SharedBy string            `json:"sharedBy"`
	SharedAt time.Time         `json:"sharedAt"`
}

type Shares struct {
	store    Connector
	contents *Contents
	newHash  func() (string, error)
}

func NewShares(store Connector) *Shares {
	return &Shares{
		store:    store,
		contents: NewContents(store),
		newHash:  security.NewShareHash,
	}
}

// CreateOrGet returns the share link of an item owned by ownerID, creating
// it when missing. created reports whether this call made the link. Racing
// callers always end up with the same link.
func (s *Shares) CreateOrGet(ctx context.Context, ownerID, contentID string) (*model.ShareLink, bool, error) {
	d, err := s.store.DB(ctx)
	if err != nil {
		return nil, false, err
	}

	content, err := s.contents.get(d, ownerID, contentID)
	if err != nil {
		return nil, false, err
	}

	created := false
	for attempt := 1; ; attempt++ {
		hash, err := s.newHash()
		if err != nil {
			return nil, false, fmt.Errorf("failed to generate share hash, %w", err)
		}

		link := model.ShareLink{
			ID:        uuid.NewString(),
			Hash:      hash,
			ContentID: &content.ID,
			UserID:    content.UserID,
			Kind:      model.ShareIndividual,
		}

		res := d.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "content_id"}},
				DoNothing: true,
			}).
			Omit(clause.Associations).
			Create(&link)
		if res.Error == nil {
			created = res.RowsAffected > 0
			break
		}

		// The item was deleted between the lookup and the insert
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return nil, false, ErrContentNotFound
		}

		if !errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, false, fmt.Errorf("failed to create share link, %w", res.Error)
		}

		if attempt == maxHashAttempts {
			return nil, false, fmt.Errorf("failed to create share link after %d hash collisions", attempt)
		}

		zap.L().Warn("Share hash collision, retrying", zap.Int("attempt", attempt))
	}

	var link model.ShareLink
	if err := d.Where("content_id = ?", content.ID).First(&link).Error; err != nil {
		return nil, false, fmt.Errorf("failed to read share link, %w", err)
	}

	return &link, created, nil
}

// Resolve looks up shared content by its public hash
func (s *Shares) Resolve(ctx context.Context, hash string) (*SharedContent, error) {
	if hash == "" {
		return nil, ErrShareNotFound
	}

	d, err := s.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	var link model.ShareLink
	err = d.
		Preload("Content").
		Preload("User", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "username")
		}).
		Where("hash = ?", hash).
		First(&link).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShareNotFound
		}

		return nil, fmt.Errorf("failed to look up share link, %w", err)
	}

	// shareAll links and links left behind by a deleted item
	if link.Content == nil {
		return nil, ErrShareNotFound
	}

	return &SharedContent{
		ID:       link.Content.ID,
		Link:     link.Content.Link,
		Type:     link.Content.Type,
		Title:    link.Content.Title,
		Tags:     link.Content.Tags,
		SharedBy: link.User.Username,
		SharedAt: link.CreatedAt,
	}, nil
}
