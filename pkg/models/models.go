package models

import (
	"time"
)

type User struct {
	ID             uint      `gorm:"primary_key" json:"id"`
	Email          string    `gorm:"unique_index;not null" json:"email"`
	HashedPassword string    `gorm:"not null" json:"-"`
	IsActive       bool      `json:"is_active"`
	IsPremium      bool      `json:"is_premium"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Video struct {
	ID          uint      `gorm:"primary_key" json:"id"`
	Title       string    `gorm:"index" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"index" json:"category"`
	Duration    string    `json:"duration"`
	S3Key       string    `json:"s3_key,omitempty"`
	ThumbKey    string    `json:"thumb_key,omitempty"`
	OwnerID     *uint     `json:"owner_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Comment struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	VideoID   uint      `gorm:"not null;index" json:"video_id"`
	AuthorID  *uint     `json:"author_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
