package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GoArmGo/artgallery/internal/domain"
)

func TestValidateArtworkInput(t *testing.T) {
	price := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		in      domain.ArtworkInput
		create  bool
		wantErr string
	}{
		{"create ok", domain.ArtworkInput{ArtistEmail: strPtr("a@x.com"), Title: strPtr("T")}, true, ""},
		{"create without email", domain.ArtworkInput{Title: strPtr("T")}, true, "artistEmail: is required"},
		{"create without title", domain.ArtworkInput{ArtistEmail: strPtr("a@x.com")}, true, "title: is required"},
		{"bad email", domain.ArtworkInput{ArtistEmail: strPtr("nope"), Title: strPtr("T")}, true, "artistEmail: must be a valid email"},
		{"email with display name", domain.ArtworkInput{ArtistEmail: strPtr("Ann <a@x.com>"), Title: strPtr("T")}, true, "artistEmail: must be a valid email"},
		{"email in angle brackets", domain.ArtworkInput{ArtistEmail: strPtr("<a@x.com>")}, false, "artistEmail: must be a valid email"},
		{"negative price", domain.ArtworkInput{Price: price(-1)}, false, "price: must not be negative"},
		{"zero price", domain.ArtworkInput{Price: price(0)}, false, ""},
		{"bad visibility", domain.ArtworkInput{Visibility: strPtr("secret")}, false, "visibility: must be public or private"},
		{"blank title on patch", domain.ArtworkInput{Title: strPtr(" ")}, false, "title: must not be empty"},
		{"empty patch", domain.ArtworkInput{}, false, "no fields to update"},
		{"patch tags only", domain.ArtworkInput{Tags: &[]string{"a"}}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateArtworkInput(tt.in, tt.create)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
