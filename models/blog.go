package models

import (
	"github.com/google/uuid"
)

// Blog represents a single submitted blog entry
type Blog struct {
	ID      uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title   string     `json:"title" db:"title" gorm:"type:text;not null"`
	Author  string     `json:"author" db:"author" gorm:"type:text"`
	URL     string     `json:"url" db:"url" gorm:"type:text;not null"`
	Likes   int        `json:"likes" db:"likes" gorm:"type:integer;not null;default:0"`
	OwnerID *uuid.UUID `json:"ownerId,omitempty" db:"owner_id" gorm:"type:uuid;index"`
	Owner   *User      `json:"owner,omitempty" gorm:"foreignKey:OwnerID;references:ID"`
}
