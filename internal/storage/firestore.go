package storage

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apperrors "creativista-api/internal/errors"
	"creativista-api/internal/models"
)

// FirestoreStorage is a persistent backend on Cloud Firestore, for
// deployments that already live on Firebase and have no Postgres.
// Firestore has no unique constraints, so uniqueness is checked with
// an equality query before each insert; two racing creates can still
// both land, which Postgres would reject.
type FirestoreStorage struct {
	client           *firestore.Client
	adminsCollection string
	imagesCollection string
}

var _ Storage = (*FirestoreStorage)(nil)

// NewFirestoreStorage wraps an initialized Firestore client.
func NewFirestoreStorage(client *firestore.Client, adminsCollection, imagesCollection string) *FirestoreStorage {
	return &FirestoreStorage{
		client:           client,
		adminsCollection: adminsCollection,
		imagesCollection: imagesCollection,
	}
}

func (s *FirestoreStorage) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return s.queryAdmin(ctx, "email", email)
}

func (s *FirestoreStorage) GetAdminByFirebaseUid(ctx context.Context, firebaseUid string) (*models.Admin, error) {
	return s.queryAdmin(ctx, "firebaseUid", firebaseUid)
}

func (s *FirestoreStorage) queryAdmin(ctx context.Context, field, value string) (*models.Admin, error) {
	iter := s.client.Collection(s.adminsCollection).Where(field, "==", value).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query admins: %w", err)
	}

	var admin models.Admin
	if err := doc.DataTo(&admin); err != nil {
		return nil, fmt.Errorf("failed to parse admin: %w", err)
	}
	return &admin, nil
}

func (s *FirestoreStorage) CreateAdmin(ctx context.Context, insert models.InsertAdmin) (*models.Admin, error) {
	if _, err := s.GetAdminByEmail(ctx, insert.Email); err == nil {
		return nil, apperrors.ErrDuplicate
	}
	if insert.FirebaseUid != nil {
		if _, err := s.GetAdminByFirebaseUid(ctx, *insert.FirebaseUid); err == nil {
			return nil, apperrors.ErrDuplicate
		}
	}

	admin := &models.Admin{
		ID:          uuid.NewString(),
		Email:       insert.Email,
		FirebaseUid: insert.FirebaseUid,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := s.client.Collection(s.adminsCollection).Doc(admin.ID).Set(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return admin, nil
}

func (s *FirestoreStorage) GetAllCommunityImages(ctx context.Context) ([]*models.CommunityImage, error) {
	iter := s.client.Collection(s.imagesCollection).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	images := []*models.CommunityImage{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate community images: %w", err)
		}

		var image models.CommunityImage
		if err := doc.DataTo(&image); err != nil {
			// Skip malformed documents rather than failing the whole listing.
			continue
		}
		images = append(images, &image)
	}
	return images, nil
}

func (s *FirestoreStorage) CreateCommunityImage(ctx context.Context, insert models.InsertCommunityImage) (*models.CommunityImage, error) {
	image := &models.CommunityImage{
		ID:          uuid.NewString(),
		ImageUrl:    insert.ImageUrl,
		ArtStyle:    insert.ArtStyle,
		AspectRatio: insert.AspectRatio,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := s.client.Collection(s.imagesCollection).Doc(image.ID).Set(ctx, image); err != nil {
		return nil, fmt.Errorf("failed to create community image: %w", err)
	}
	return image, nil
}

// DeleteCommunityImage removes the document. Firestore deletes are
// no-ops for unknown ids, which matches the idempotent contract.
func (s *FirestoreStorage) DeleteCommunityImage(ctx context.Context, id string) error {
	if _, err := s.client.Collection(s.imagesCollection).Doc(id).Delete(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}
		return fmt.Errorf("failed to delete community image: %w", err)
	}
	return nil
}
