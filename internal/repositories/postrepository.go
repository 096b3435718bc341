package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SpencerMelo/showroom-backend-api/internal/columns"
	"github.com/SpencerMelo/showroom-backend-api/internal/database"
	"github.com/SpencerMelo/showroom-backend-api/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// PostRepositoryInterface определяет операции репозитория объявлений.
// Каждая операция — ровно один запрос к базе.
type PostRepositoryInterface interface {
	List(ctx context.Context, offset, limit int, sortBy, sortOrder, filterBy, filterTerm string) ([]model.Post, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Post, error)
	Create(ctx context.Context, payload model.CreatePost) (*model.Post, error)
	CreateBatch(ctx context.Context, payloads []model.CreatePost) ([]model.Post, error)
	Update(ctx context.Context, id uuid.UUID, payload model.UpdatePost) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteBatch(ctx context.Context, ids []uuid.UUID) (int64, error)
}

const postColumns = "id, brand, model, version, engine, transmission, year, mileage, color, body, armored, exchange, price, thumbnail_url, author, published"

// Число колонок в postColumns без id.
const postValueCount = 15

// PostRepository реализует PostRepositoryInterface поверх PostgreSQL.
type PostRepository struct {
	DB      database.DBInterface
	Logger  *zap.Logger
	columns *columns.Registry
}

// NewPostRepository создаёт репозиторий объявлений.
// Реестр колонок строится один раз на весь срок жизни процесса.
func NewPostRepository(db database.DBInterface, logger *zap.Logger) *PostRepository {
	return &PostRepository{
		DB:      db,
		Logger:  logger,
		columns: columns.NewPostRegistry(logger),
	}
}

// List возвращает опубликованные объявления с учётом сортировки,
// фильтра и пагинации. Все шесть входов считаются недоверенными.
func (r *PostRepository) List(ctx context.Context, offset, limit int, sortBy, sortOrder, filterBy, filterTerm string) ([]model.Post, error) {
	r.Logger.Info("Get all posts",
		zap.Int("offset", offset),
		zap.Int("limit", limit),
		zap.String("sort_by", sortBy),
		zap.String("sort_order", sortOrder),
		zap.String("filter_by", filterBy),
		zap.String("filter_term", filterTerm))

	query, args, err := buildListQuery(postColumns, "posts", "published = true",
		r.columns, offset, limit, sortBy, sortOrder, filterBy, filterTerm)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve posts: %w", err)
	}

	rows, err := r.DB.(*database.DB).Pool.Query(ctx, query, args...)
	if err != nil {
		r.Logger.Error("Unable to retrieve posts", zap.Error(err))
		return nil, fmt.Errorf("database query error: %w", err)
	}
	defer rows.Close()

	results := make([]model.Post, 0)
	for rows.Next() {
		var p model.Post
		if err := scanPost(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		results = append(results, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database query error: %w", err)
	}
	return results, nil
}

// Get извлекает объявление по идентификатору.
func (r *PostRepository) Get(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	r.Logger.Info("Get post", zap.String("id", id.String()))

	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	var p model.Post
	err := scanPost(r.DB.(*database.DB).Pool.QueryRow(ctx, query, id), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("post %s: %w", id, ErrNotFound)
		}
		r.Logger.Error("Unable to retrieve post", zap.Error(err))
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &p, nil
}

// Create сохраняет новое объявление. Идентификатор генерируется
// сервером, published принудительно true независимо от клиента.
func (r *PostRepository) Create(ctx context.Context, payload model.CreatePost) (*model.Post, error) {
	r.Logger.Info("Create post", zap.String("model", payload.Model), zap.String("author", payload.Author))

	query := `INSERT INTO posts (` + postColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
              RETURNING ` + postColumns

	var p model.Post
	err := scanPost(r.DB.(*database.DB).Pool.QueryRow(ctx, query, postValues(uuid.New(), payload, true)...), &p)
	if err != nil {
		r.Logger.Error("Unable to create post", zap.Error(err))
		return nil, fmt.Errorf("database insert error: %w", err)
	}
	return &p, nil
}

// CreateBatch сохраняет несколько объявлений одним multi-row INSERT.
// Пустой список — явная ошибка, а не тихий успех с нулём строк.
func (r *PostRepository) CreateBatch(ctx context.Context, payloads []model.CreatePost) ([]model.Post, error) {
	r.Logger.Info("Create posts", zap.Int("count", len(payloads)))

	if len(payloads) == 0 {
		r.Logger.Info("No posts to create")
		return nil, ErrEmptyBatch
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO posts (" + postColumns + ") VALUES ")
	args := make([]any, 0, len(payloads)*(postValueCount+1))
	for i, payload := range payloads {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(valuesPlaceholders(len(args)+1, postValueCount+1))
		args = append(args, postValues(uuid.New(), payload, true)...)
	}
	sb.WriteString(" RETURNING " + postColumns)

	rows, err := r.DB.(*database.DB).Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		r.Logger.Error("Unable to create posts", zap.Error(err))
		return nil, fmt.Errorf("database insert error: %w", err)
	}
	defer rows.Close()

	created := make([]model.Post, 0, len(payloads))
	for rows.Next() {
		var p model.Post
		if err := scanPost(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		created = append(created, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database insert error: %w", err)
	}
	return created, nil
}

// Update полностью заменяет изменяемые поля объявления по id.
// Возвращает число затронутых строк: 0 означает «не найдено».
func (r *PostRepository) Update(ctx context.Context, id uuid.UUID, payload model.UpdatePost) (int64, error) {
	r.Logger.Info("Update post", zap.String("id", id.String()))

	query := `UPDATE posts
              SET brand = $1, model = $2, version = $3, engine = $4, transmission = $5,
                  year = $6, mileage = $7, color = $8, body = $9, armored = $10,
                  exchange = $11, price = $12, thumbnail_url = $13, author = $14, published = $15
              WHERE id = $16`

	tag, err := r.DB.(*database.DB).Pool.Exec(ctx, query,
		payload.Brand, payload.Model, payload.Version, payload.Engine, payload.Transmission,
		payload.Year, payload.Mileage, payload.Color, payload.Body, payload.Armored,
		payload.Exchange, payload.Price, payload.ThumbnailURL, payload.Author, payload.Published,
		id)
	if err != nil {
		r.Logger.Error("Unable to update post", zap.Error(err))
		return 0, fmt.Errorf("database update error: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete удаляет объявление по id. Контракт по счётчику тот же,
// что и у Update.
func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	r.Logger.Info("Delete post", zap.String("id", id.String()))

	tag, err := r.DB.(*database.DB).Pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		r.Logger.Error("Unable to delete post", zap.Error(err))
		return 0, fmt.Errorf("database delete error: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteBatch удаляет объявления по списку id одним запросом.
func (r *PostRepository) DeleteBatch(ctx context.Context, ids []uuid.UUID) (int64, error) {
	r.Logger.Info("Delete posts", zap.Int("count", len(ids)))

	tag, err := r.DB.(*database.DB).Pool.Exec(ctx, `DELETE FROM posts WHERE id = ANY($1)`, ids)
	if err != nil {
		r.Logger.Error("Unable to delete posts", zap.Error(err))
		return 0, fmt.Errorf("database delete error: %w", err)
	}
	r.Logger.Info("Posts delete count", zap.Int64("count", tag.RowsAffected()))
	return tag.RowsAffected(), nil
}

// postValues раскладывает объявление в аргументы INSERT в порядке postColumns.
func postValues(id uuid.UUID, p model.CreatePost, published bool) []any {
	return []any{
		id, p.Brand, p.Model, p.Version, p.Engine, p.Transmission,
		p.Year, p.Mileage, p.Color, p.Body, p.Armored, p.Exchange,
		p.Price, p.ThumbnailURL, p.Author, published,
	}
}

func scanPost(row pgx.Row, p *model.Post) error {
	return row.Scan(
		&p.ID, &p.Brand, &p.Model, &p.Version, &p.Engine, &p.Transmission,
		&p.Year, &p.Mileage, &p.Color, &p.Body, &p.Armored, &p.Exchange,
		&p.Price, &p.ThumbnailURL, &p.Author, &p.Published,
	)
}

// valuesPlaceholders возвращает группу вида ($n, $n+1, ...) из count
// плейсхолдеров, начиная с номера start.
func valuesPlaceholders(start, count int) string {
	parts := make([]string, count)
	for i := 0; i < count; i++ {
		parts[i] = fmt.Sprintf("$%d", start+i)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
