package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	apperrors "creativista-api/internal/errors"
	"creativista-api/internal/models"
)

// uniqueViolation is the Postgres error code for unique-constraint
// violations on admins.email / admins.firebase_uid.
const uniqueViolation = "23505"

// PostgresStorage is the persistent backend. Uniqueness of admin
// emails and firebase uids is enforced by the database itself.
type PostgresStorage struct {
	db *sql.DB
}

var _ Storage = (*PostgresStorage)(nil)

// NewPostgresStorage opens a connection pool for the given DSN and
// verifies connectivity before returning.
func NewPostgresStorage(ctx context.Context, dsn string) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStorage{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *PostgresStorage) Close() error {
	return s.db.Close()
}

func (s *PostgresStorage) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, email, firebase_uid, created_at
		FROM admins
		WHERE email = $1
	`, email)
	return scanAdmin(row)
}

func (s *PostgresStorage) GetAdminByFirebaseUid(ctx context.Context, firebaseUid string) (*models.Admin, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, email, firebase_uid, created_at
		FROM admins
		WHERE firebase_uid = $1
	`, firebaseUid)
	return scanAdmin(row)
}

func (s *PostgresStorage) CreateAdmin(ctx context.Context, insert models.InsertAdmin) (*models.Admin, error) {
	admin := &models.Admin{
		ID:          uuid.NewString(),
		Email:       insert.Email,
		FirebaseUid: insert.FirebaseUid,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO admins (id, email, firebase_uid, created_at)
		VALUES ($1, $2, $3, $4)
	`, admin.ID, admin.Email, admin.FirebaseUid, admin.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to insert admin: %w", err)
	}
	return admin, nil
}

func (s *PostgresStorage) GetAllCommunityImages(ctx context.Context) ([]*models.CommunityImage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, image_url, art_style, aspect_ratio, created_at
		FROM community_images
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query community images: %w", err)
	}
	defer rows.Close()

	images := []*models.CommunityImage{}
	for rows.Next() {
		var image models.CommunityImage
		if err := rows.Scan(&image.ID, &image.ImageUrl, &image.ArtStyle, &image.AspectRatio, &image.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan community image: %w", err)
		}
		images = append(images, &image)
	}
	return images, rows.Err()
}

func (s *PostgresStorage) CreateCommunityImage(ctx context.Context, insert models.InsertCommunityImage) (*models.CommunityImage, error) {
	image := &models.CommunityImage{
		ID:          uuid.NewString(),
		ImageUrl:    insert.ImageUrl,
		ArtStyle:    insert.ArtStyle,
		AspectRatio: insert.AspectRatio,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO community_images (id, image_url, art_style, aspect_ratio, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, image.ID, image.ImageUrl, image.ArtStyle, image.AspectRatio, image.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert community image: %w", err)
	}
	return image, nil
}

// DeleteCommunityImage removes the matching row. Deleting an unknown
// id is not an error, so RowsAffected is deliberately not checked.
func (s *PostgresStorage) DeleteCommunityImage(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM community_images WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete community image: %w", err)
	}
	return nil
}

func scanAdmin(row *sql.Row) (*models.Admin, error) {
	var admin models.Admin
	err := row.Scan(&admin.ID, &admin.Email, &admin.FirebaseUid, &admin.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan admin: %w", err)
	}
	return &admin, nil
}
