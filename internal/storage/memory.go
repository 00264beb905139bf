package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "creativista-api/internal/errors"
	"creativista-api/internal/models"
)

// MemoryStorage is the volatile fallback used when no database is
// configured. Records live in process memory and vanish on restart.
// Unlike the raw slice it replaces, it enforces the same uniqueness
// rules as the Postgres backend so callers see one contract.
type MemoryStorage struct {
	mu     sync.RWMutex
	admins []*models.Admin
	images []*models.CommunityImage
}

var _ Storage = (*MemoryStorage)(nil)

// NewMemoryStorage creates an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) GetAdminByEmail(_ context.Context, email string) (*models.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, admin := range s.admins {
		if admin.Email == email {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *MemoryStorage) GetAdminByFirebaseUid(_ context.Context, firebaseUid string) (*models.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, admin := range s.admins {
		if admin.FirebaseUid != nil && *admin.FirebaseUid == firebaseUid {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *MemoryStorage) CreateAdmin(_ context.Context, insert models.InsertAdmin) (*models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.admins {
		if existing.Email == insert.Email {
			return nil, apperrors.ErrDuplicate
		}
		if insert.FirebaseUid != nil && existing.FirebaseUid != nil && *existing.FirebaseUid == *insert.FirebaseUid {
			return nil, apperrors.ErrDuplicate
		}
	}

	admin := &models.Admin{
		ID:          uuid.NewString(),
		Email:       insert.Email,
		FirebaseUid: insert.FirebaseUid,
		CreatedAt:   time.Now().UTC(),
	}
	s.admins = append(s.admins, admin)

	copied := *admin
	return &copied, nil
}

func (s *MemoryStorage) GetAllCommunityImages(_ context.Context) ([]*models.CommunityImage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Newest first, matching the Postgres ORDER BY.
	result := make([]*models.CommunityImage, 0, len(s.images))
	for i := len(s.images) - 1; i >= 0; i-- {
		copied := *s.images[i]
		result = append(result, &copied)
	}
	return result, nil
}

func (s *MemoryStorage) CreateCommunityImage(_ context.Context, insert models.InsertCommunityImage) (*models.CommunityImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	image := &models.CommunityImage{
		ID:          uuid.NewString(),
		ImageUrl:    insert.ImageUrl,
		ArtStyle:    insert.ArtStyle,
		AspectRatio: insert.AspectRatio,
		CreatedAt:   time.Now().UTC(),
	}
	s.images = append(s.images, image)

	copied := *image
	return &copied, nil
}

func (s *MemoryStorage) DeleteCommunityImage(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.images[:0]
	for _, image := range s.images {
		if image.ID != id {
			filtered = append(filtered, image)
		}
	}
	s.images = filtered
	return nil
}
