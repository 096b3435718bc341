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

// PostHandler обслуживает маршруты /v1/post.
type PostHandler struct {
	Repo   repositories.PostRepositoryInterface
	Logger *zap.Logger
}

// NewPostHandler создаёт обработчик объявлений.
func NewPostHandler(repo repositories.PostRepositoryInterface, logger *zap.Logger) *PostHandler {
	return &PostHandler{Repo: repo, Logger: logger}
}

// List возвращает страницу объявлений.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	p := parseListParams(r, "model")

	posts, err := h.Repo.List(r.Context(), p.offset, p.limit, p.sortBy, p.sortOrder, p.filterBy, p.filterTerm)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// GetOne возвращает одно объявление по id.
func (h *PostHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	post, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// CreateOne создаёт объявление и возвращает сохранённую строку целиком.
func (h *PostHandler) CreateOne(w http.ResponseWriter, r *http.Request) {
	var payload model.CreatePost
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	post, err := h.Repo.Create(r.Context(), payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

// CreateMany создаёт несколько объявлений одним запросом к БД.
func (h *PostHandler) CreateMany(w http.ResponseWriter, r *http.Request) {
	var payloads []model.CreatePost
	if err := json.NewDecoder(r.Body).Decode(&payloads); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	posts, err := h.Repo.CreateBatch(r.Context(), payloads)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, posts)
}

// UpdateOne заменяет поля объявления по id.
func (h *PostHandler) UpdateOne(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var payload model.UpdatePost
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

// DeleteOne удаляет объявление по id.
func (h *PostHandler) DeleteOne(w http.ResponseWriter, r *http.Request) {
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

// DeleteMany удаляет объявления по списку id.
func (h *PostHandler) DeleteMany(w http.ResponseWriter, r *http.Request) {
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
