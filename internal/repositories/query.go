package repositories

import (
	"fmt"
	"strings"

	"github.com/SpencerMelo/showroom-backend-api/internal/columns"
)

// maxListLimit — серверный потолок размера страницы.
// Запрошенный limit выше потолка молча обрезается, а не отклоняется.
const maxListLimit = 100

// buildListQuery собирает один параметризованный SELECT для списочных
// операций: базовый предикат, необязательный фильтр по равенству,
// необязательная сортировка и пагинация. Имена колонок берутся только
// из реестра, значения передаются параметрами.
func buildListQuery(
	selectList, table, basePredicate string,
	reg *columns.Registry,
	offset, limit int,
	sortBy, sortOrder, filterBy, filterTerm string,
) (string, []any, error) {
	if limit < 0 {
		limit = 0
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	var sb strings.Builder
	args := make([]any, 0, 3)

	sb.WriteString("SELECT ")
	sb.WriteString(selectList)
	sb.WriteString(" FROM ")
	sb.WriteString(table)

	conditions := make([]string, 0, 2)
	if basePredicate != "" {
		conditions = append(conditions, basePredicate)
	}

	// Фильтр применяется только когда заданы и колонка, и значение.
	if filterBy != "" && filterTerm != "" {
		col := reg.Resolve(filterBy)
		value, err := col.ParseTerm(filterTerm)
		if err != nil {
			return "", nil, err
		}
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", col.Name, len(args)))
	}

	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}

	// ORDER BY добавляется только при точном "asc"/"desc".
	// Любое другое значение оставляет порядок на усмотрение БД;
	// колонка сортировки тогда даже не разрешается.
	switch sortOrder {
	case "asc":
		sb.WriteString(" ORDER BY ")
		sb.WriteString(reg.Resolve(sortBy).Name)
		sb.WriteString(" ASC")
	case "desc":
		sb.WriteString(" ORDER BY ")
		sb.WriteString(reg.Resolve(sortBy).Name)
		sb.WriteString(" DESC")
	}

	args = append(args, limit)
	fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	args = append(args, offset)
	fmt.Fprintf(&sb, " OFFSET $%d", len(args))

	return sb.String(), args, nil
}
