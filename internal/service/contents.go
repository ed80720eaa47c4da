package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"second-brain/api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewContent struct {
	Link  string
	Type  string
	Title string
	Tags  string
}

type Contents struct {
	store Connector
}

func NewContents(store Connector) *Contents {
	return &Contents{store: store}
}

func (s *Contents) Create(ctx context.Context, ownerID string, in NewContent) (*model.Content, error) {
	if !model.ContentType(in.Type).Valid() {
		return nil, ErrInvalidContentType
	}

	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w, title is required", ErrInvalidContent)
	}

	if u, err := url.ParseRequestURI(in.Link); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w, link must be an absolute URL", ErrInvalidContent)
	}

	d, err := s.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	// v7 ids sort by creation time which keeps listing order stable on ties
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate content id, %w", err)
	}

	content := model.Content{
		ID:     id.String(),
		UserID: ownerID,
		Link:   in.Link,
		Type:   model.ContentType(in.Type),
		Title:  in.Title,
		Tags:   in.Tags,
	}

	if err := d.Create(&content).Error; err != nil {
		return nil, fmt.Errorf("failed to create content, %w", err)
	}

	return &content, nil
}

// ListByOwner returns every item of the owner in insertion order
func (s *Contents) ListByOwner(ctx context.Context, ownerID string) ([]model.Content, error) {
	d, err := s.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	contents := make([]model.Content, 0)
	err = d.
		Where("user_id = ?", ownerID).
		Order("created_at asc, id asc").
		Find(&contents).
		Error
	if err != nil {
		return nil, fmt.Errorf("failed to list contents, %w", err)
	}

	return contents, nil
}

// Delete removes an item owned by ownerID together with its share link.
// Items of other users are reported as ErrContentNotFound.
func (s *Contents) Delete(ctx context.Context, ownerID, contentID string) error {
	if contentID == "" {
		return ErrContentNotFound
	}

	d, err := s.store.DB(ctx)
	if err != nil {
		return err
	}

	return d.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("content_id = ? AND user_id = ?", contentID, ownerID).
			Delete(&model.ShareLink{}).
			Error
		if err != nil {
			return fmt.Errorf("failed to delete share link, %w", err)
		}

		res := tx.
			Where("id = ? AND user_id = ?", contentID, ownerID).
			Delete(&model.Content{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete content, %w", res.Error)
		}

		if res.RowsAffected == 0 {
			return ErrContentNotFound
		}

		return nil
	})
}

func (s *Contents) get(d *gorm.DB, ownerID, contentID string) (*model.Content, error) {
	if contentID == "" {
		return nil, ErrContentNotFound
	}

	var content model.Content
	err := d.Where("id = ? AND user_id = ?", contentID, ownerID).First(&content).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}

		return nil, fmt.Errorf("failed to look up content, %w", err)
	}

	return &content, nil
}
