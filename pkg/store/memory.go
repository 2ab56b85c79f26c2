package store

import (
	"sort"
	"sync"
	"time"

	"streamly-backend/pkg/models"
)

// NewMemoryStores returns stores backed by in-process slices. Used by tests in
// place of the gorm implementation.
func NewMemoryStores() *Stores {
	return &Stores{
		Users:    &memoryUserStore{},
		Videos:   &memoryVideoStore{},
		Comments: &memoryCommentStore{},
	}
}

type memoryUserStore struct {
	mu     sync.Mutex
	users  []models.User
	nextID uint
}

func (s *memoryUserStore) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return ErrEmailTaken
		}
	}
	s.nextID++
	user.ID = s.nextID
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users = append(s.users, *user)
	return nil
}

func (s *memoryUserStore) GetByID(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryUserStore) GetByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryUserStore) SetPremium(id uint, premium bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].IsPremium = premium
			s.users[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

type memoryVideoStore struct {
	mu     sync.Mutex
	videos []models.Video
	nextID uint
}

func (s *memoryVideoStore) Create(video *models.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	video.ID = s.nextID
	video.CreatedAt = time.Now()
	s.videos = append(s.videos, *video)
	return nil
}

func (s *memoryVideoStore) List(skip, limit int) ([]models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sorted := make([]models.Video, len(s.videos))
	copy(sorted, s.videos)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		}
		return sorted[i].ID > sorted[j].ID
	})
	if skip >= len(sorted) {
		return []models.Video{}, nil
	}
	sorted = sorted[skip:]
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (s *memoryVideoStore) GetByID(id uint) (*models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.videos {
		if v.ID == id {
			v := v
			return &v, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryVideoStore) All() ([]models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]models.Video, len(s.videos))
	copy(all, s.videos)
	return all, nil
}

type memoryCommentStore struct {
	mu       sync.Mutex
	comments []models.Comment
	nextID   uint
}

func (s *memoryCommentStore) Create(comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	comment.ID = s.nextID
	comment.CreatedAt = time.Now()
	s.comments = append(s.comments, *comment)
	return nil
}

func (s *memoryCommentStore) ListForVideo(videoID uint) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := []models.Comment{}
	for _, c := range s.comments {
		if c.VideoID == videoID {
			matched = append(matched, c)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})
	return matched, nil
}
