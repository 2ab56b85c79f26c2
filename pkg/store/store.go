// Package store is the persistence layer: plain records from pkg/models plus
// per-entity store interfaces with a gorm-backed implementation and an
// in-memory implementation for tests.
package store

import (
	"errors"

	"streamly-backend/pkg/models"
)

var (
	// ErrNotFound is returned when a lookup misses.
	ErrNotFound = errors.New("record not found")
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
)

type UserStore interface {
	// Create inserts the user, assigning ID and timestamps. Returns
	// ErrEmailTaken when the email is already registered.
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	// SetPremium writes the premium flag unconditionally (last write wins).
	SetPremium(id uint, premium bool) error
}

type VideoStore interface {
	Create(video *models.Video) error
	// List returns videos newest-first, window controlled by skip/limit.
	List(skip, limit int) ([]models.Video, error)
	GetByID(id uint) (*models.Video, error)
	// All returns every video in insertion order.
	All() ([]models.Video, error)
}

type CommentStore interface {
	Create(comment *models.Comment) error
	// ListForVideo returns the video's comments newest-first. An unknown
	// video yields an empty slice, not an error.
	ListForVideo(videoID uint) ([]models.Comment, error)
}

// Stores bundles the per-entity stores handed to the handlers.
type Stores struct {
	Users    UserStore
	Videos   VideoStore
	Comments CommentStore
}
