package schema

import (
	"strings"
	"testing"

	"creativista-api/internal/models"
)

func strptr(s string) *string { return &s }

func TestValidateInsertAdmin(t *testing.T) {
	tests := []struct {
		name      string
		input     models.InsertAdmin
		wantError bool
		wantIn    string
	}{
		{
			name:  "valid with email only",
			input: models.InsertAdmin{Email: "admin@example.com"},
		},
		{
			name:  "valid with firebase uid",
			input: models.InsertAdmin{Email: "admin@example.com", FirebaseUid: strptr("uid-123")},
		},
		{
			name:      "missing email",
			input:     models.InsertAdmin{},
			wantError: true,
			wantIn:    "email is required",
		},
		{
			name:      "malformed email",
			input:     models.InsertAdmin{Email: "not-an-email"},
			wantError: true,
			wantIn:    "email must be a valid email address",
		},
		{
			name:      "empty firebase uid",
			input:     models.InsertAdmin{Email: "admin@example.com", FirebaseUid: strptr("")},
			wantError: true,
			wantIn:    "firebaseUid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.input)
			if tt.wantError {
				if err == nil {
					t.Fatalf("Validate(%+v) expected error, got nil", tt.input)
				}
				if !strings.Contains(err.Error(), tt.wantIn) {
					t.Errorf("Validate(%+v) error %q does not mention %q", tt.input, err.Error(), tt.wantIn)
				}
			} else if err != nil {
				t.Errorf("Validate(%+v) unexpected error: %v", tt.input, err)
			}
		})
	}
}

func TestValidateInsertCommunityImage(t *testing.T) {
	err := Validate(models.InsertCommunityImage{})
	if err == nil {
		t.Fatal("expected error for empty payload")
	}
	// Every violation must be merged into one message.
	for _, want := range []string{"imageUrl is required", "artStyle is required", "aspectRatio is required"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err.Error(), want)
		}
	}

	valid := models.InsertCommunityImage{
		ImageUrl:    "https://x/y.png",
		ArtStyle:    "anime",
		AspectRatio: "1:1",
	}
	if err := Validate(valid); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}
}

func TestValidateNonStruct(t *testing.T) {
	if err := Validate("not a struct"); err == nil {
		t.Fatal("expected error for non-struct value")
	}
}
