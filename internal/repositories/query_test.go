package repositories

import (
	"testing"

	"github.com/SpencerMelo/showroom-backend-api/internal/columns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func postRegistry() *columns.Registry {
	return columns.NewPostRegistry(zap.NewNop())
}

func brandRegistry() *columns.Registry {
	return columns.NewBrandRegistry(zap.NewNop())
}

// Базовый случай: предикат published, сортировка, пагинация
func TestBuildListQuery_Posts(t *testing.T) {
	query, args, err := buildListQuery(postColumns, "posts", "published = true",
		postRegistry(), 0, 10, "model", "asc", "", "")

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT "+postColumns+" FROM posts WHERE published = true ORDER BY model ASC LIMIT $1 OFFSET $2",
		query)
	assert.Equal(t, []any{10, 0}, args)
}

func TestBuildListQuery_SortDesc(t *testing.T) {
	query, _, err := buildListQuery(postColumns, "posts", "published = true",
		postRegistry(), 0, 10, "price", "desc", "", "")

	require.NoError(t, err)
	assert.Contains(t, query, "ORDER BY price DESC")
}

// Неизвестное направление сортировки — ORDER BY не добавляется
func TestBuildListQuery_InvalidSortOrder(t *testing.T) {
	query, _, err := buildListQuery(postColumns, "posts", "published = true",
		postRegistry(), 0, 10, "model", "banana", "", "")

	require.NoError(t, err)
	assert.NotContains(t, query, "ORDER BY")
}

// Без ORDER BY колонка сортировки не разрешается вовсе:
// неизвестное имя не должно попадать в лог предупреждений
func TestBuildListQuery_NoSortNoResolve(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	reg := columns.NewPostRegistry(zap.New(core))

	_, _, err := buildListQuery(postColumns, "posts", "published = true",
		reg, 0, 10, "nonexistent_field", "banana", "", "")

	require.NoError(t, err)
	assert.Equal(t, 0, logs.Len())
}

// Неизвестная колонка сортировки уходит в колонку по умолчанию
func TestBuildListQuery_UnknownSortColumn(t *testing.T) {
	query, _, err := buildListQuery(postColumns, "posts", "published = true",
		postRegistry(), 0, 10, "nonexistent_field", "asc", "", "")

	require.NoError(t, err)
	assert.Contains(t, query, "ORDER BY model ASC")
}

// limit выше потолка молча обрезается до 100
func TestBuildListQuery_LimitCap(t *testing.T) {
	_, args, err := buildListQuery(postColumns, "posts", "published = true",
		postRegistry(), 0, 1000, "model", "asc", "", "")

	require.NoError(t, err)
	assert.Equal(t, []any{100, 0}, args)
}

// Отрицательные limit и offset обрезаются до нуля
func TestBuildListQuery_NegativeBounds(t *testing.T) {
	_, args, err := buildListQuery(postColumns, "posts", "published = true",
		postRegistry(), -5, -1, "model", "asc", "", "")

	require.NoError(t, err)
	assert.Equal(t, []any{0, 0}, args)
}

// Фильтр добавляется только при наличии и колонки, и значения
func TestBuildListQuery_Filter(t *testing.T) {
	query, args, err := buildListQuery(postColumns, "posts", "published = true",
		postRegistry(), 0, 10, "model", "asc", "mileage", "42000")

	require.NoError(t, err)
	assert.Contains(t, query, "WHERE published = true AND mileage = $1")
	assert.Equal(t, []any{int32(42000), 10, 0}, args)
}

func TestBuildListQuery_FilterHalfSpecified(t *testing.T) {
	// Только колонка, без значения
	query, _, err := buildListQuery(postColumns, "posts", "published = true",
		postRegistry(), 0, 10, "model", "asc", "mileage", "")
	require.NoError(t, err)
	assert.NotContains(t, query, "mileage =")

	// Только значение, без колонки
	query, _, err = buildListQuery(postColumns, "posts", "published = true",
		postRegistry(), 0, 10, "model", "asc", "", "42000")
	require.NoError(t, err)
	assert.NotContains(t, query, "= $1 ")
	assert.Contains(t, query, "WHERE published = true ")
}

// Значение фильтра, не разбираемое в тип колонки, валит весь запрос
func TestBuildListQuery_FilterParseError(t *testing.T) {
	_, _, err := buildListQuery(postColumns, "posts", "published = true",
		postRegistry(), 0, 10, "model", "asc", "mileage", "not_a_number")

	assert.Error(t, err)
}

// Булевы и big-integer колонки разбираются по своему типу
func TestBuildListQuery_FilterKinds(t *testing.T) {
	_, args, err := buildListQuery(postColumns, "posts", "published = true",
		postRegistry(), 0, 10, "model", "asc", "armored", "true")
	require.NoError(t, err)
	assert.Equal(t, true, args[0])

	_, args, err = buildListQuery(postColumns, "posts", "published = true",
		postRegistry(), 0, 10, "model", "asc", "price", "12990000")
	require.NoError(t, err)
	assert.Equal(t, int64(12990000), args[0])
}

// Неизвестная колонка фильтра уходит в колонку по умолчанию (model)
func TestBuildListQuery_UnknownFilterColumn(t *testing.T) {
	query, args, err := buildListQuery(postColumns, "posts", "published = true",
		postRegistry(), 0, 10, "model", "asc", "nonexistent_field", "Corolla")

	require.NoError(t, err)
	assert.Contains(t, query, "AND model = $1")
	assert.Equal(t, "Corolla", args[0])
}

// У brands нет базового предиката
func TestBuildListQuery_Brands(t *testing.T) {
	query, args, err := buildListQuery(brandColumns, "brands", "",
		brandRegistry(), 20, 10, "name", "desc", "", "")

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT "+brandColumns+" FROM brands ORDER BY name DESC LIMIT $1 OFFSET $2",
		query)
	assert.Equal(t, []any{10, 20}, args)
}

func TestBuildListQuery_BrandsFilterOnly(t *testing.T) {
	query, args, err := buildListQuery(brandColumns, "brands", "",
		brandRegistry(), 0, 10, "name", "asc", "created_by", "admin")

	require.NoError(t, err)
	assert.Contains(t, query, " FROM brands WHERE created_by = $1 ")
	assert.Equal(t, []any{"admin", 10, 0}, args)
}

// Группы плейсхолдеров для multi-row INSERT
func TestValuesPlaceholders(t *testing.T) {
	assert.Equal(t, "($1, $2, $3)", valuesPlaceholders(1, 3))
	assert.Equal(t, "($17, $18)", valuesPlaceholders(17, 2))
}
