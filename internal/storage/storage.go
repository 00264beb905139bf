// Package storage decouples the route handlers from the persistence
// backend. The backend is chosen once at startup and never swapped
// per-request.
package storage

import (
	"context"

	"creativista-api/internal/models"
)

// Storage is the persistence contract for admins and community images.
//
// Lookups return errors.ErrNotFound when no record matches. CreateAdmin
// returns errors.ErrDuplicate when the email (or firebaseUid) is
// already taken. DeleteCommunityImage is idempotent: deleting an
// unknown id succeeds.
type Storage interface {
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetAdminByFirebaseUid(ctx context.Context, firebaseUid string) (*models.Admin, error)
	CreateAdmin(ctx context.Context, insert models.InsertAdmin) (*models.Admin, error)

	GetAllCommunityImages(ctx context.Context) ([]*models.CommunityImage, error)
	CreateCommunityImage(ctx context.Context, insert models.InsertCommunityImage) (*models.CommunityImage, error)
	DeleteCommunityImage(ctx context.Context, id string) error
}
