package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Artwork представляет работу художника,
// соответствует документу коллекции artworks.
// Присланные клиентом поля хранятся указателями: отсутствующий ключ даёт nil,
// а сохранённое пустое значение ("" или []) возвращается клиенту как есть.
type Artwork struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	ArtistEmail *string            `json:"artistEmail,omitempty" bson:"artistEmail,omitempty"`
	ArtistName  *string            `json:"artistName,omitempty" bson:"artistName,omitempty"`
	ArtistPhoto *string            `json:"artistPhoto,omitempty" bson:"artistPhoto,omitempty"`
	Title       *string            `json:"title,omitempty" bson:"title,omitempty"`
	Image       *string            `json:"image,omitempty" bson:"image,omitempty"`
	Category    *string            `json:"category,omitempty" bson:"category,omitempty"`
	Description *string            `json:"description,omitempty" bson:"description,omitempty"`
	Medium      *string            `json:"medium,omitempty" bson:"medium,omitempty"`
	Dimensions  *string            `json:"dimensions,omitempty" bson:"dimensions,omitempty"`
	Price       *float64           `json:"price,omitempty" bson:"price,omitempty"`
	Visibility  *string            `json:"visibility,omitempty" bson:"visibility,omitempty"`
	Tags        *[]string          `json:"tags,omitempty" bson:"tags,omitempty"`
	Likes       int                `json:"likes,omitempty" bson:"likes,omitempty"`
	LikedBy     []string           `json:"likedBy,omitempty" bson:"likedBy,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// ArtworkInput перечисляет поля работы, которые может прислать клиент.
// Служебные поля (_id, createdAt, likes, likedBy) сюда не входят.
// Указатели позволяют отличить "поле не прислано" от пустого значения,
// nil-поля не попадают ни в документ при создании, ни в $set при обновлении.
type ArtworkInput struct {
	ArtistEmail *string   `json:"artistEmail" bson:"artistEmail,omitempty"`
	ArtistName  *string   `json:"artistName" bson:"artistName,omitempty"`
	ArtistPhoto *string   `json:"artistPhoto" bson:"artistPhoto,omitempty"`
	Title       *string   `json:"title" bson:"title,omitempty"`
	Image       *string   `json:"image" bson:"image,omitempty"`
	Category    *string   `json:"category" bson:"category,omitempty"`
	Description *string   `json:"description" bson:"description,omitempty"`
	Medium      *string   `json:"medium" bson:"medium,omitempty"`
	Dimensions  *string   `json:"dimensions" bson:"dimensions,omitempty"`
	Price       *float64  `json:"price" bson:"price,omitempty"`
	Visibility  *string   `json:"visibility" bson:"visibility,omitempty"`
	Tags        *[]string `json:"tags" bson:"tags,omitempty"`
}

// IsEmpty сообщает, что ни одно поле не прислано
func (in ArtworkInput) IsEmpty() bool {
	return in.ArtistEmail == nil && in.ArtistName == nil && in.ArtistPhoto == nil &&
		in.Title == nil && in.Image == nil && in.Category == nil && in.Description == nil &&
		in.Medium == nil && in.Dimensions == nil && in.Price == nil && in.Visibility == nil &&
		in.Tags == nil
}

// TopArtist описывает строку результата агрегации топ-художников
type TopArtist struct {
	Email         string `json:"_id" bson:"_id"`
	ArtistName    string `json:"artistName" bson:"artistName"`
	ArtistPhoto   string `json:"artistPhoto" bson:"artistPhoto"`
	TotalArtworks int    `json:"totalArtworks" bson:"totalArtworks"`
	TotalLikes    int    `json:"totalLikes" bson:"totalLikes"`
}
