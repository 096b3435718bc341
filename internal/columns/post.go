package columns

import "go.uber.org/zap"

// NewPostRegistry строит реестр колонок таблицы posts.
// Колонка по умолчанию — model.
func NewPostRegistry(logger *zap.Logger) *Registry {
	cols := []Column{
		{Name: "brand", Kind: Text},
		{Name: "model", Kind: Text},
		{Name: "version", Kind: Text},
		{Name: "engine", Kind: Text},
		{Name: "transmission", Kind: Text},
		{Name: "year", Kind: Integer},
		{Name: "mileage", Kind: Integer},
		{Name: "color", Kind: Text},
		{Name: "body", Kind: Text},
		{Name: "armored", Kind: Boolean},
		{Name: "exchange", Kind: Boolean},
		{Name: "price", Kind: BigInteger},
		{Name: "thumbnail_url", Kind: Text},
		{Name: "author", Kind: Text},
		{Name: "published", Kind: Boolean},
	}

	m := make(map[string]Column, len(cols))
	for _, c := range cols {
		m[c.Name] = c
	}

	return &Registry{
		columns:  m,
		fallback: m["model"],
		logger:   logger,
	}
}
