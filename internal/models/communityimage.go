package models

import "time"

// CommunityImage is a curated image shown in the public gallery.
// ArtStyle is a free-form label used by the client for filtering;
// AspectRatio is a display hint like "1:1" or "16:9" and is not
// enforced server-side beyond presence.
type CommunityImage struct {
	ID          string    `json:"id" firestore:"id"`
	ImageUrl    string    `json:"imageUrl" firestore:"imageUrl"`
	ArtStyle    string    `json:"artStyle" firestore:"artStyle"`
	AspectRatio string    `json:"aspectRatio" firestore:"aspectRatio"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
}

// InsertCommunityImage is the subset of CommunityImage fields accepted
// on creation.
type InsertCommunityImage struct {
	ImageUrl    string `json:"imageUrl" validate:"required"`
	ArtStyle    string `json:"artStyle" validate:"required"`
	AspectRatio string `json:"aspectRatio" validate:"required"`
}
