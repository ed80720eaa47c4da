package model

import "time"

type ContentType string

const (
	ContentTweet    ContentType = "tweet"
	ContentVideo    ContentType = "video"
	ContentDocument ContentType = "document"
	ContentLink     ContentType = "link"
)

var ContentTypes = []ContentType{ContentTweet, ContentVideo, ContentDocument, ContentLink}

func (t ContentType) Valid() bool {
	switch t {
	case ContentTweet, ContentVideo, ContentDocument, ContentLink:
		return true
	}

	return false
}

// Content is a single saved item. Tags are kept exactly as the user typed
// them, a comma separated string.
type Content struct {
	ID        string      `gorm:"primaryKey;size:36" json:"_id"`
	UserID    string      `gorm:"index;size:16;not null" json:"userId"`
	Link      string      `gorm:"not null" json:"link"`
	Type      ContentType `gorm:"size:16;not null" json:"type"`
	Title     string      `gorm:"not null" json:"title"`
	Tags      string      `json:"tags"`
	CreatedAt time.Time   `gorm:"index" json:"createdAt"`
}
