// Package handlers содержит HTTP-обработчики поверх репозиториев.
// Обработчик разбирает параметры запроса, зовёт репозиторий и
// отображает результат в статус и тело ответа.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
)

const (
	defaultOffset = 0
	defaultLimit  = 10
	maxLimit      = 100
)

// listParams — разобранные параметры списочного запроса.
type listParams struct {
	offset     int
	limit      int
	sortBy     string
	sortOrder  string
	filterBy   string
	filterTerm string
}

// parseListParams разбирает query-параметры пагинации, сортировки и
// фильтра. Отсутствующие и некорректные значения заменяются
// значениями по умолчанию, limit обрезается потолком.
func parseListParams(r *http.Request, defaultSortBy string) listParams {
	q := r.URL.Query()

	p := listParams{
		offset:     intParam(q.Get("offset"), defaultOffset),
		limit:      intParam(q.Get("limit"), defaultLimit),
		sortBy:     defaultString(q.Get("sort_by"), defaultSortBy),
		sortOrder:  defaultString(q.Get("sort_order"), "asc"),
		filterBy:   q.Get("filter_by"),
		filterTerm: q.Get("filter_term"),
	}
	if p.limit > maxLimit {
		p.limit = maxLimit
	}
	if p.offset < 0 {
		p.offset = defaultOffset
	}
	return p
}

func intParam(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func defaultString(raw, def string) string {
	if raw == "" {
		return def
	}
	return raw
}

// writeJSON сериализует тело ответа и выставляет статус.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusForCount переводит число затронутых строк в статус:
// ноль строк — «не найдено», иначе — успех без тела.
func statusForCount(count int64) int {
	if count > 0 {
		return http.StatusNoContent
	}
	return http.StatusNotFound
}
