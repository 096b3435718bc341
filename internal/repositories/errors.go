package repositories

import "errors"

var (
	// ErrNotFound — по id не найдено ни одной строки.
	ErrNotFound = errors.New("not found")
	// ErrEmptyBatch — пакетная вставка с пустым списком.
	ErrEmptyBatch = errors.New("no entities to create")
)
