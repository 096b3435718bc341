package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SpencerMelo/showroom-backend-api/internal/model"
	"github.com/SpencerMelo/showroom-backend-api/internal/repositories"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BrandHandler обслуживает маршруты /v1/brand.
type BrandHandler struct {
	Repo   repositories.BrandRepositoryInterface
	Logger *zap.Logger
}

// NewBrandHandler создаёт обработчик марок.
func NewBrandHandler(repo repositories.BrandRepositoryInterface, logger *zap.Logger) *BrandHandler {
	return &BrandHandler{Repo: repo, Logger: logger}
}

// List возвращает страницу марок.
func (h *BrandHandler) List(w http.ResponseWriter, r *http.Request) {
	p := parseListParams(r, "name")

	brands, err := h.Repo.List(r.Context(), p.offset, p.limit, p.sortBy, p.sortOrder, p.filterBy, p.filterTerm)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, brands)
}

// GetOne возвращает одну марку по id.
func (h *BrandHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	brand, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, brand)
}

// CreateOne создаёт марку и возвращает сохранённую строку целиком.
func (h *BrandHandler) CreateOne(w http.ResponseWriter, r *http.Request) {
	var payload model.CreateBrand
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	brand, err := h.Repo.Create(r.Context(), payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, brand)
}

// CreateMany создаёт несколько марок одним запросом к БД.
func (h *BrandHandler) CreateMany(w http.ResponseWriter, r *http.Request) {
	var payloads []model.CreateBrand
	if err := json.NewDecoder(r.Body).Decode(&payloads); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	brands, err := h.Repo.CreateBatch(r.Context(), payloads)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, brands)
}

// UpdateOne заменяет поля марки по id.
func (h *BrandHandler) UpdateOne(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var payload model.UpdateBrand
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	count, err := h.Repo.Update(r.Context(), id, payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(statusForCount(count))
}

// DeleteOne удаляет марку по id.
func (h *BrandHandler) DeleteOne(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	count, err := h.Repo.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(statusForCount(count))
}

// DeleteMany удаляет марки по списку id.
func (h *BrandHandler) DeleteMany(w http.ResponseWriter, r *http.Request) {
	var ids []uuid.UUID
	if err := json.NewDecoder(r.Body).Decode(&ids); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	count, err := h.Repo.DeleteBatch(r.Context(), ids)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(statusForCount(count))
}
