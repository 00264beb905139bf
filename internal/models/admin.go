package models

import "time"

// Admin is a principal permitted to manage the community gallery.
// Records are created once and never updated; there is no delete path.
type Admin struct {
	ID          string    `json:"id" firestore:"id"`
	Email       string    `json:"email" firestore:"email"`
	FirebaseUid *string   `json:"firebaseUid" firestore:"firebaseUid"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
}

// InsertAdmin is the subset of Admin fields accepted on creation.
// ID and CreatedAt are always server-generated.
type InsertAdmin struct {
	Email       string  `json:"email" validate:"required,email"`
	FirebaseUid *string `json:"firebaseUid" validate:"omitempty,min=1"`
}
