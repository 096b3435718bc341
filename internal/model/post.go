package model

import "github.com/google/uuid"

// Post представляет объявление о продаже автомобиля (таблица posts).
type Post struct {
	ID           uuid.UUID `json:"id"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Version      string    `json:"version"`
	Engine       string    `json:"engine"`
	Transmission string    `json:"transmission"`
	Year         int32     `json:"year"`
	Mileage      int32     `json:"mileage"`
	Color        string    `json:"color"`
	Body         string    `json:"body"`
	Armored      bool      `json:"armored"`
	Exchange     bool      `json:"exchange"`
	Price        int64     `json:"price"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Author       string    `json:"author"`
	Published    bool      `json:"published"`
}

// CreatePost представляет тело запроса на создание объявления.
// ID и Published клиент не передаёт: ID генерируется сервером,
// Published всегда выставляется в true.
type CreatePost struct {
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Version      string `json:"version"`
	Engine       string `json:"engine"`
	Transmission string `json:"transmission"`
	Year         int32  `json:"year"`
	Mileage      int32  `json:"mileage"`
	Color        string `json:"color"`
	Body         string `json:"body"`
	Armored      bool   `json:"armored"`
	Exchange     bool   `json:"exchange"`
	Price        int64  `json:"price"`
	ThumbnailURL string `json:"thumbnail_url"`
	Author       string `json:"author"`
}

// UpdatePost представляет тело запроса на обновление объявления.
type UpdatePost struct {
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Version      string `json:"version"`
	Engine       string `json:"engine"`
	Transmission string `json:"transmission"`
	Year         int32  `json:"year"`
	Mileage      int32  `json:"mileage"`
	Color        string `json:"color"`
	Body         string `json:"body"`
	Armored      bool   `json:"armored"`
	Exchange     bool   `json:"exchange"`
	Price        int64  `json:"price"`
	ThumbnailURL string `json:"thumbnail_url"`
	Author       string `json:"author"`
	Published    bool   `json:"published"`
}
