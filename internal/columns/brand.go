package columns

import "go.uber.org/zap"

// NewBrandRegistry строит реестр колонок таблицы brands.
// Колонка по умолчанию — name.
func NewBrandRegistry(logger *zap.Logger) *Registry {
	cols := []Column{
		{Name: "name", Kind: Text},
		{Name: "created_by", Kind: Text},
		{Name: "updated_by", Kind: NullableText},
	}

	m := make(map[string]Column, len(cols))
	for _, c := range cols {
		m[c.Name] = c
	}

	return &Registry{
		columns:  m,
		fallback: m["name"],
		logger:   logger,
	}
}
