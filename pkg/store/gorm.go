package store

import (
	"github.com/jinzhu/gorm"

	"streamly-backend/pkg/models"
)

// NewGormStores wires all three stores over one gorm handle.
func NewGormStores(db *gorm.DB) *Stores {
	return &Stores{
		Users:    &gormUserStore{db: db},
		Videos:   &gormVideoStore{db: db},
		Comments: &gormCommentStore{db: db},
	}
}

type gormUserStore struct {
	db *gorm.DB
}

func (s *gormUserStore) Create(user *models.User) error {
	var existing models.User
	err := s.db.Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		return ErrEmailTaken
	}
	if !gorm.IsRecordNotFoundError(err) {
		return err
	}
	return s.db.Create(user).Error
}

func (s *gormUserStore) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormUserStore) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormUserStore) SetPremium(id uint, premium bool) error {
	res := s.db.Model(&models.User{}).Where("id = ?", id).Update("is_premium", premium)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type gormVideoStore struct {
	db *gorm.DB
}

func (s *gormVideoStore) Create(video *models.Video) error {
	return s.db.Create(video).Error
}

func (s *gormVideoStore) List(skip, limit int) ([]models.Video, error) {
	videos := []models.Video{}
	err := s.db.Order("created_at desc, id desc").Offset(skip).Limit(limit).Find(&videos).Error
	return videos, err
}

func (s *gormVideoStore) GetByID(id uint) (*models.Video, error) {
	var video models.Video
	if err := s.db.First(&video, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}

func (s *gormVideoStore) All() ([]models.Video, error) {
	videos := []models.Video{}
	err := s.db.Order("id asc").Find(&videos).Error
	return videos, err
}

type gormCommentStore struct {
	db *gorm.DB
}

func (s *gormCommentStore) Create(comment *models.Comment) error {
	return s.db.Create(comment).Error
}

func (s *gormCommentStore) ListForVideo(videoID uint) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := s.db.Where("video_id = ?", videoID).Order("created_at desc, id desc").Find(&comments).Error
	return comments, err
}
