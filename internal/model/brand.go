package model

import (
	"time"

	"github.com/google/uuid"
)

// Brand представляет марку автомобиля (таблица brands).
// Поля deleted_at/deleted_by присутствуют в схеме, но удаление
// сейчас физическое.
type Brand struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	ImageURL     string     `json:"image_url"`
	ThumbnailURL string     `json:"thumbnail_url"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedBy    string     `json:"created_by"`
	UpdatedBy    *string    `json:"updated_by"`
	DeletedBy    *string    `json:"deleted_by"`
}

// CreateBrand представляет тело запроса на создание марки.
type CreateBrand struct {
	Name         string `json:"name"`
	ImageURL     string `json:"image_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// UpdateBrand представляет тело запроса на обновление марки.
type UpdateBrand struct {
	Name         string `json:"name"`
	ImageURL     string `json:"image_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}
