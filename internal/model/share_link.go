package model

import "time"

type ShareKind string

const (
	ShareIndividual ShareKind = "individual"
	// ShareAll links have no content and would expose every item of the
	// owner. Nothing creates them yet.
	ShareAll ShareKind = "shareAll"
)

type ShareLink struct {
	ID   string `gorm:"primaryKey;size:36"`
	Hash string `gorm:"uniqueIndex;size:32;not null"`

	// Unique so a content item can never get a second link, even when two
	// share requests race.
	ContentID *string  `gorm:"uniqueIndex;size:36"`
	Content   *Content `gorm:"foreignKey:ContentID"`

	UserID    string    `gorm:"index;size:16;not null"`
	User      User      `gorm:"foreignKey:UserID"`
	Kind      ShareKind `gorm:"size:16;default:individual;not null"`
	CreatedAt time.Time
}
