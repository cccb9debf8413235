package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favorite описывает работу в избранном пользователя.
// title, image и artistName копируются в момент добавления и дальше не синхронизируются.
type Favorite struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	ArtworkID  string             `json:"artworkId" bson:"artworkId"`
	UserEmail  string             `json:"userEmail" bson:"userEmail"`
	Title      string             `json:"title,omitempty" bson:"title,omitempty"`
	Image      string             `json:"image,omitempty" bson:"image,omitempty"`
	ArtistName string             `json:"artistName,omitempty" bson:"artistName,omitempty"`
	CreatedAt  time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// FavoriteInput описывает тело запроса POST /favorites.
// Category принимается, но не сохраняется.
type FavoriteInput struct {
	ArtworkID  string `json:"artworkId"`
	UserEmail  string `json:"userEmail"`
	Title      string `json:"title"`
	Image      string `json:"image"`
	Category   string `json:"category"`
	ArtistName string `json:"artistName"`
}
