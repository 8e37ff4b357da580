package models

import (
	"github.com/google/uuid"
)

// User represents a registered account. BlogIDs caches the identifiers of
// the blogs the user owns; Blog.OwnerID is the authoritative ownership
// field and BlogIDs can always be rebuilt from it.
type User struct {
	ID           uuid.UUID   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Username     string      `json:"username" db:"username" gorm:"type:text;not null;uniqueIndex"`
	Name         string      `json:"name,omitempty" db:"name" gorm:"type:text"`
	PasswordHash string      `json:"-" db:"password_hash" gorm:"type:text;not null"`
	BlogIDs      []uuid.UUID `json:"blogIds" db:"blog_ids" gorm:"type:jsonb;serializer:json"`
}
