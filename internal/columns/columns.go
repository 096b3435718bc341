// Package columns содержит реестры колонок, по которым разрешена
// динамическая сортировка и фильтрация. Имя поля приходит из запроса
// как произвольная строка; реестр сопоставляет его с безопасной
// ссылкой на колонку и её скалярным типом.
package columns

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

// Kind обозначает скалярный тип колонки. От него зависит,
// как разбирается значение фильтра перед сравнением.
type Kind int

const (
	Text Kind = iota
	Integer
	BigInteger
	Boolean
	NullableText
)

// Column — типизированная ссылка на колонку таблицы.
type Column struct {
	Name string
	Kind Kind
}

// Registry — замкнутый список колонок одной сущности плюс колонка
// по умолчанию. Строится один раз при старте процесса.
type Registry struct {
	columns  map[string]Column
	fallback Column
	logger   *zap.Logger
}

// Resolve возвращает колонку по имени поля из запроса.
// Неизвестное имя не является ошибкой: пишем предупреждение
// и возвращаем колонку по умолчанию.
func (r *Registry) Resolve(field string) Column {
	if col, ok := r.columns[field]; ok {
		return col
	}
	r.logger.Warn("Unknown column name, defaulting",
		zap.String("field", field),
		zap.String("default", r.fallback.Name))
	return r.fallback
}

// Default возвращает колонку по умолчанию для сущности.
func (r *Registry) Default() Column {
	return r.fallback
}

// ParseTerm разбирает значение фильтра согласно типу колонки.
// В отличие от неизвестного имени колонки, некорректное значение —
// это ошибка, которая прерывает весь запрос списка.
func (c Column) ParseTerm(term string) (any, error) {
	switch c.Kind {
	case Integer:
		v, err := strconv.ParseInt(term, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid filter term %q for column %q: %w", term, c.Name, err)
		}
		return int32(v), nil
	case BigInteger:
		v, err := strconv.ParseInt(term, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid filter term %q for column %q: %w", term, c.Name, err)
		}
		return v, nil
	case Boolean:
		v, err := strconv.ParseBool(term)
		if err != nil {
			return nil, fmt.Errorf("invalid filter term %q for column %q: %w", term, c.Name, err)
		}
		return v, nil
	default:
		// Text и NullableText сравниваются как есть.
		return term, nil
	}
}
