package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SpencerMelo/showroom-backend-api/internal/mocks"
	"github.com/SpencerMelo/showroom-backend-api/internal/model"
	"github.com/SpencerMelo/showroom-backend-api/internal/repositories"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newPostHandler(t *testing.T) (*PostHandler, *mocks.MockPostRepositoryInterface) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPostRepositoryInterface(ctrl)
	return NewPostHandler(repo, zap.NewNop()), repo
}

// withID подкладывает path-параметр id в контекст chi
func withID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func samplePost() *model.Post {
	return &model.Post{
		ID:           uuid.New(),
		Brand:        "Toyota",
		Model:        "Corolla",
		Version:      "XEi",
		Engine:       "2.0",
		Transmission: "automatic",
		Year:         2020,
		Mileage:      42000,
		Color:        "black",
		Body:         "sedan",
		Armored:      false,
		Exchange:     true,
		Price:        12990000,
		ThumbnailURL: "https://img.example/corolla.jpg",
		Author:       "seller@example.com",
		Published:    true,
	}
}

// Параметры списка по умолчанию: offset 0, limit 10, сортировка по model asc
func TestPostList_Defaults(t *testing.T) {
	h, repo := newPostHandler(t)

	repo.EXPECT().
		List(gomock.Any(), 0, 10, "model", "asc", "", "").
		Return([]model.Post{*samplePost()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/post", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var got []model.Post
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Len(t, got, 1)
	assert.Equal(t, "Corolla", got[0].Model)
}

// limit выше потолка обрезается уже на уровне обработчика
func TestPostList_LimitCapped(t *testing.T) {
	h, repo := newPostHandler(t)

	repo.EXPECT().
		List(gomock.Any(), 0, 100, "model", "asc", "", "").
		Return([]model.Post{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/post?limit=1000", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Нечисловые offset/limit заменяются значениями по умолчанию
func TestPostList_InvalidPagination(t *testing.T) {
	h, repo := newPostHandler(t)

	repo.EXPECT().
		List(gomock.Any(), 0, 10, "model", "asc", "", "").
		Return([]model.Post{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/post?offset=abc&limit=xyz", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Параметры сортировки и фильтра прокидываются в репозиторий как есть
func TestPostList_PassesParams(t *testing.T) {
	h, repo := newPostHandler(t)

	repo.EXPECT().
		List(gomock.Any(), 20, 50, "price", "desc", "mileage", "42000").
		Return([]model.Post{}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/v1/post?offset=20&limit=50&sort_by=price&sort_order=desc&filter_by=mileage&filter_term=42000", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Ошибка репозитория (включая разбор фильтра) — 500 с текстом ошибки
func TestPostList_RepoError(t *testing.T) {
	h, repo := newPostHandler(t)

	repo.EXPECT().
		List(gomock.Any(), 0, 10, "model", "asc", "mileage", "not_a_number").
		Return(nil, errors.New(`invalid filter term "not_a_number" for column "mileage"`))

	req := httptest.NewRequest(http.MethodGet, "/v1/post?filter_by=mileage&filter_term=not_a_number", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, resp.StatusCode)
	}
	assert.Contains(t, w.Body.String(), "invalid filter term")
}

func TestPostGetOne(t *testing.T) {
	h, repo := newPostHandler(t)
	post := samplePost()

	repo.EXPECT().Get(gomock.Any(), post.ID).Return(post, nil)

	req := withID(httptest.NewRequest(http.MethodGet, "/v1/post/"+post.ID.String(), nil), post.ID.String())
	w := httptest.NewRecorder()
	h.GetOne(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got model.Post
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, *post, got)
}

func TestPostGetOne_NotFound(t *testing.T) {
	h, repo := newPostHandler(t)
	id := uuid.New()

	repo.EXPECT().Get(gomock.Any(), id).
		Return(nil, fmt.Errorf("post %s: %w", id, repositories.ErrNotFound))

	req := withID(httptest.NewRequest(http.MethodGet, "/v1/post/"+id.String(), nil), id.String())
	w := httptest.NewRecorder()
	h.GetOne(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

func TestPostGetOne_InvalidID(t *testing.T) {
	h, _ := newPostHandler(t)

	req := withID(httptest.NewRequest(http.MethodGet, "/v1/post/not-a-uuid", nil), "not-a-uuid")
	w := httptest.NewRecorder()
	h.GetOne(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Создание возвращает 201 и сохранённую строку, published всегда true
func TestPostCreateOne(t *testing.T) {
	h, repo := newPostHandler(t)
	created := samplePost()

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload model.CreatePost) (*model.Post, error) {
			assert.Equal(t, "Corolla", payload.Model)
			return created, nil
		})

	body := `{"brand":"Toyota","model":"Corolla","version":"XEi","engine":"2.0",
              "transmission":"automatic","year":2020,"mileage":42000,"color":"black",
              "body":"sedan","armored":false,"exchange":true,"price":12990000,
              "thumbnail_url":"https://img.example/corolla.jpg","author":"seller@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/post", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.CreateOne(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, resp.StatusCode)
	}

	var got model.Post
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.True(t, got.Published)
}

func TestPostCreateOne_BadBody(t *testing.T) {
	h, _ := newPostHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/post", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	h.CreateOne(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Пустой пакет — явная ошибка, а не 201 с пустым списком
func TestPostCreateMany_Empty(t *testing.T) {
	h, repo := newPostHandler(t)

	repo.EXPECT().
		CreateBatch(gomock.Any(), gomock.Len(0)).
		Return(nil, repositories.ErrEmptyBatch)

	req := httptest.NewRequest(http.MethodPost, "/v1/post/bulk", strings.NewReader("[]"))
	w := httptest.NewRecorder()
	h.CreateMany(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, resp.StatusCode)
	}
}

func TestPostCreateMany(t *testing.T) {
	h, repo := newPostHandler(t)

	repo.EXPECT().
		CreateBatch(gomock.Any(), gomock.Len(2)).
		Return([]model.Post{*samplePost(), *samplePost()}, nil)

	body := `[{"brand":"Toyota","model":"Corolla"},{"brand":"Honda","model":"Civic"}]`
	req := httptest.NewRequest(http.MethodPost, "/v1/post/bulk", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.CreateMany(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var got []model.Post
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Len(t, got, 2)
}

// Обновление: затронута строка — 204, нет — 404
func TestPostUpdateOne(t *testing.T) {
	h, repo := newPostHandler(t)
	id := uuid.New()

	repo.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(int64(1), nil)

	body := `{"brand":"Toyota","model":"Corolla","published":false}`
	req := withID(httptest.NewRequest(http.MethodPatch, "/v1/post/"+id.String(), strings.NewReader(body)), id.String())
	w := httptest.NewRecorder()
	h.UpdateOne(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, resp.StatusCode)
	}
}

func TestPostUpdateOne_NotFound(t *testing.T) {
	h, repo := newPostHandler(t)
	id := uuid.New()

	repo.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(int64(0), nil)

	req := withID(httptest.NewRequest(http.MethodPatch, "/v1/post/"+id.String(), strings.NewReader(`{}`)), id.String())
	w := httptest.NewRecorder()
	h.UpdateOne(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPostDeleteOne(t *testing.T) {
	h, repo := newPostHandler(t)
	id := uuid.New()

	repo.EXPECT().Delete(gomock.Any(), id).Return(int64(1), nil)

	req := withID(httptest.NewRequest(http.MethodDelete, "/v1/post/"+id.String(), nil), id.String())
	w := httptest.NewRecorder()
	h.DeleteOne(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestPostDeleteOne_NotFound(t *testing.T) {
	h, repo := newPostHandler(t)
	id := uuid.New()

	repo.EXPECT().Delete(gomock.Any(), id).Return(int64(0), nil)

	req := withID(httptest.NewRequest(http.MethodDelete, "/v1/post/"+id.String(), nil), id.String())
	w := httptest.NewRecorder()
	h.DeleteOne(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Пакетное удаление: хотя бы одна затронутая строка — 204
func TestPostDeleteMany(t *testing.T) {
	h, repo := newPostHandler(t)
	id1, id2 := uuid.New(), uuid.New()

	repo.EXPECT().
		DeleteBatch(gomock.Any(), []uuid.UUID{id1, id2}).
		Return(int64(1), nil)

	body := fmt.Sprintf(`["%s","%s"]`, id1, id2)
	req := httptest.NewRequest(http.MethodDelete, "/v1/post/bulk", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.DeleteMany(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestPostDeleteMany_NoneMatched(t *testing.T) {
	h, repo := newPostHandler(t)

	repo.EXPECT().DeleteBatch(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	body := fmt.Sprintf(`["%s"]`, uuid.New())
	req := httptest.NewRequest(http.MethodDelete, "/v1/post/bulk", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.DeleteMany(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
