package usecase

import (
	"net/mail"
	"strings"

	"github.com/GoArmGo/artgallery/internal/domain"
)

var allowedVisibility = map[string]bool{"public": true, "private": true}

// validateArtworkInput служит границей между входными данными клиента и моделью.
// При создании обязательны artistEmail и title, при обновлении нужно хотя бы одно поле.
func validateArtworkInput(in domain.ArtworkInput, create bool) error {
	if create {
		if in.ArtistEmail == nil || strings.TrimSpace(*in.ArtistEmail) == "" {
			return &ValidationError{Field: "artistEmail", Message: "is required"}
		}
		if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
			return &ValidationError{Field: "title", Message: "is required"}
		}
	} else if in.IsEmpty() {
		return &ValidationError{Message: "no fields to update"}
	}

	if in.ArtistEmail != nil && !validEmail(*in.ArtistEmail) {
		return &ValidationError{Field: "artistEmail", Message: "must be a valid email"}
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return &ValidationError{Field: "title", Message: "must not be empty"}
	}
	if in.Price != nil && *in.Price < 0 {
		return &ValidationError{Field: "price", Message: "must not be negative"}
	}
	if in.Visibility != nil && !allowedVisibility[*in.Visibility] {
		return &ValidationError{Field: "visibility", Message: "must be public or private"}
	}
	return nil
}

// validEmail принимает только голый адрес: форма "Имя <addr>" отклоняется
func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
