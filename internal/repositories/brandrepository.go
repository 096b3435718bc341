package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SpencerMelo/showroom-backend-api/internal/columns"
	"github.com/SpencerMelo/showroom-backend-api/internal/database"
	"github.com/SpencerMelo/showroom-backend-api/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BrandRepositoryInterface определяет операции репозитория марок.
type BrandRepositoryInterface interface {
	List(ctx context.Context, offset, limit int, sortBy, sortOrder, filterBy, filterTerm string) ([]model.Brand, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Brand, error)
	Create(ctx context.Context, payload model.CreateBrand) (*model.Brand, error)
	CreateBatch(ctx context.Context, payloads []model.CreateBrand) ([]model.Brand, error)
	Update(ctx context.Context, id uuid.UUID, payload model.UpdateBrand) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteBatch(ctx context.Context, ids []uuid.UUID) (int64, error)
}

const brandColumns = "id, name, image_url, thumbnail_url, created_at, updated_at, deleted_at, created_by, updated_by, deleted_by"

// auditActor — фиксированный актор аудита. Идентичности запроса
// у нас нет, значение захардкожено.
const auditActor = "admin"

// BrandRepository реализует BrandRepositoryInterface поверх PostgreSQL.
type BrandRepository struct {
	DB      database.DBInterface
	Logger  *zap.Logger
	columns *columns.Registry
}

// NewBrandRepository создаёт репозиторий марок.
func NewBrandRepository(db database.DBInterface, logger *zap.Logger) *BrandRepository {
	return &BrandRepository{
		DB:      db,
		Logger:  logger,
		columns: columns.NewBrandRegistry(logger),
	}
}

// List возвращает марки с учётом сортировки, фильтра и пагинации.
// Базового предиката у brands нет.
func (r *BrandRepository) List(ctx context.Context, offset, limit int, sortBy, sortOrder, filterBy, filterTerm string) ([]model.Brand, error) {
	r.Logger.Info("Get all brands",
		zap.Int("offset", offset),
		zap.Int("limit", limit),
		zap.String("sort_by", sortBy),
		zap.String("sort_order", sortOrder),
		zap.String("filter_by", filterBy),
		zap.String("filter_term", filterTerm))

	query, args, err := buildListQuery(brandColumns, "brands", "",
		r.columns, offset, limit, sortBy, sortOrder, filterBy, filterTerm)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve brands: %w", err)
	}

	rows, err := r.DB.(*database.DB).Pool.Query(ctx, query, args...)
	if err != nil {
		r.Logger.Error("Unable to retrieve brands", zap.Error(err))
		return nil, fmt.Errorf("database query error: %w", err)
	}
	defer rows.Close()

	results := make([]model.Brand, 0)
	for rows.Next() {
		var b model.Brand
		if err := scanBrand(rows, &b); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		results = append(results, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database query error: %w", err)
	}
	return results, nil
}

// Get извлекает марку по идентификатору.
func (r *BrandRepository) Get(ctx context.Context, id uuid.UUID) (*model.Brand, error) {
	r.Logger.Info("Get brand", zap.String("id", id.String()))

	query := `SELECT ` + brandColumns + ` FROM brands WHERE id = $1`
	var b model.Brand
	err := scanBrand(r.DB.(*database.DB).Pool.QueryRow(ctx, query, id), &b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("brand %s: %w", id, ErrNotFound)
		}
		r.Logger.Error("Unable to retrieve brand", zap.Error(err))
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &b, nil
}

// Create сохраняет новую марку. Идентификатор и created_at
// назначает сервер, created_by — фиксированный актор.
func (r *BrandRepository) Create(ctx context.Context, payload model.CreateBrand) (*model.Brand, error) {
	r.Logger.Info("Create brand", zap.String("name", payload.Name))

	query := `INSERT INTO brands (` + brandColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
              RETURNING ` + brandColumns

	var b model.Brand
	err := scanBrand(r.DB.(*database.DB).Pool.QueryRow(ctx, query, brandValues(uuid.New(), payload)...), &b)
	if err != nil {
		r.Logger.Error("Unable to create brand", zap.Error(err))
		return nil, fmt.Errorf("database insert error: %w", err)
	}
	return &b, nil
}

// CreateBatch сохраняет несколько марок одним multi-row INSERT.
func (r *BrandRepository) CreateBatch(ctx context.Context, payloads []model.CreateBrand) ([]model.Brand, error) {
	r.Logger.Info("Create brands", zap.Int("count", len(payloads)))

	if len(payloads) == 0 {
		r.Logger.Info("No brands to create")
		return nil, ErrEmptyBatch
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO brands (" + brandColumns + ") VALUES ")
	args := make([]any, 0, len(payloads)*10)
	for i, payload := range payloads {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(valuesPlaceholders(len(args)+1, 10))
		args = append(args, brandValues(uuid.New(), payload)...)
	}
	sb.WriteString(" RETURNING " + brandColumns)

	rows, err := r.DB.(*database.DB).Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		r.Logger.Error("Unable to create brands", zap.Error(err))
		return nil, fmt.Errorf("database insert error: %w", err)
	}
	defer rows.Close()

	created := make([]model.Brand, 0, len(payloads))
	for rows.Next() {
		var b model.Brand
		if err := scanBrand(rows, &b); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		created = append(created, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database insert error: %w", err)
	}
	return created, nil
}

// Update заменяет изменяемые поля марки и отмечает updated_at/updated_by.
func (r *BrandRepository) Update(ctx context.Context, id uuid.UUID, payload model.UpdateBrand) (int64, error) {
	r.Logger.Info("Update brand", zap.String("id", id.String()))

	query := `UPDATE brands
              SET name = $1, image_url = $2, thumbnail_url = $3, updated_at = $4, updated_by = $5
              WHERE id = $6`

	tag, err := r.DB.(*database.DB).Pool.Exec(ctx, query,
		payload.Name, payload.ImageURL, payload.ThumbnailURL, time.Now().UTC(), auditActor, id)
	if err != nil {
		r.Logger.Error("Unable to update brand", zap.Error(err))
		return 0, fmt.Errorf("database update error: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete удаляет марку по id. Удаление физическое: deleted_at/deleted_by
// в схеме есть, но этот слой их не трогает.
func (r *BrandRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	r.Logger.Info("Delete brand", zap.String("id", id.String()))

	tag, err := r.DB.(*database.DB).Pool.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		r.Logger.Error("Unable to delete brand", zap.Error(err))
		return 0, fmt.Errorf("database delete error: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteBatch удаляет марки по списку id одним запросом.
func (r *BrandRepository) DeleteBatch(ctx context.Context, ids []uuid.UUID) (int64, error) {
	r.Logger.Info("Delete brands", zap.Int("count", len(ids)))

	tag, err := r.DB.(*database.DB).Pool.Exec(ctx, `DELETE FROM brands WHERE id = ANY($1)`, ids)
	if err != nil {
		r.Logger.Error("Unable to delete brands", zap.Error(err))
		return 0, fmt.Errorf("database delete error: %w", err)
	}
	r.Logger.Info("Brands delete count", zap.Int64("count", tag.RowsAffected()))
	return tag.RowsAffected(), nil
}

// brandValues раскладывает марку в аргументы INSERT в порядке brandColumns.
func brandValues(id uuid.UUID, p model.CreateBrand) []any {
	return []any{
		id, p.Name, p.ImageURL, p.ThumbnailURL, time.Now().UTC(),
		nil, nil, auditActor, nil, nil,
	}
}

func scanBrand(row pgx.Row, b *model.Brand) error {
	return row.Scan(
		&b.ID, &b.Name, &b.ImageURL, &b.ThumbnailURL, &b.CreatedAt,
		&b.UpdatedAt, &b.DeletedAt, &b.CreatedBy, &b.UpdatedBy, &b.DeletedBy,
	)
}
