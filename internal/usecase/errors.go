package usecase

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrArtworkNotFound    = errors.New("artwork not found")
	ErrAlreadyLiked       = errors.New("artwork already liked by this user")
	ErrAlreadyFavorited   = errors.New("artwork already in favorites")
	ErrEmailRequired      = errors.New("user email required")
	ErrInvalidID          = errors.New("invalid id")
	ErrUploadsDisabled    = errors.New("image uploads are not configured")
	ErrUnsupportedContent = errors.New("unsupported image content type")
)

// ValidationError описывает ошибку проверки входных данных
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
