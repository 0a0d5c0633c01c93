package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	xerrors "catalog-service/internal/pkg/errors"
	"catalog-service/internal/repository/query"

	"github.com/jackc/pgx/v5"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// Table describes how an entity maps onto its table: the select list, the
// mutable column sets, and the scan/value accessors the generic repository
// needs. Sort columns are whitelisted by the service layer before they
// reach Sort, so OrderBy interpolation is safe here.
type Table[T any] struct {
	Name          string
	Columns       []string
	InsertColumns []string
	UpdateColumns []string

	Scan            func(row rowScanner) (T, error)
	InsertValues    func(e *T) []any
	InsertReturning func(e *T) []any // destinations for RETURNING id, created_at
	UpdateValues    func(e *T) []any // must align with UpdateColumns
	ID              func(e *T) int64
}

// Repository is a generic CRUD + paged-query store over a single table.
type Repository[T any] struct {
	db  Querier
	tbl Table[T]
}

func NewRepository[T any](db Querier, tbl Table[T]) *Repository[T] {
	return &Repository[T]{db: db, tbl: tbl}
}

// WithQuerier returns a copy bound to q, typically a transaction.
func (r *Repository[T]) WithQuerier(q Querier) *Repository[T] {
	return &Repository[T]{db: q, tbl: r.tbl}
}

func (r *Repository[T]) selectList() string {
	return strings.Join(r.tbl.Columns, ", ")
}

// GetByID returns (nil, nil) when no row matches. Absence is not an error
// at this layer.
func (r *Repository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", r.selectList(), r.tbl.Name)

	e, err := r.tbl.Scan(r.db.QueryRow(ctx, sql, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s by id: %w", r.tbl.Name, err)
	}
	return &e, nil
}

func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	return r.Find(ctx, query.Filter{})
}

func (r *Repository[T]) Find(ctx context.Context, f query.Filter) ([]T, error) {
	sql := fmt.Sprintf("SELECT %s FROM %s", r.selectList(), r.tbl.Name)

	clause, args, _ := f.ToSQL(1)
	if clause != "" {
		sql += " WHERE " + clause
	}
	sql += " ORDER BY id ASC"

	return r.queryMany(ctx, sql, args)
}

// GetPaged counts the filtered set, then fetches one sorted page. The count
// runs before LIMIT/OFFSET so it reflects the whole filtered set regardless
// of the requested window; a window past the last page yields an empty item
// slice with the true total.
func (r *Repository[T]) GetPaged(ctx context.Context, p query.Page, f query.Filter, s query.Sort) ([]T, int64, error) {
	clause, args, argPos := f.ToSQL(1)

	where := ""
	if clause != "" {
		where = " WHERE " + clause
	}

	var total int64
	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", r.tbl.Name, where)
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count %s: %w", r.tbl.Name, err)
	}

	sql := fmt.Sprintf(
		"SELECT %s FROM %s%s ORDER BY %s LIMIT $%d OFFSET $%d",
		r.selectList(), r.tbl.Name, where, s.OrderBy(), argPos, argPos+1,
	)
	args = append(args, p.Limit(), p.Offset())

	items, err := r.queryMany(ctx, sql, args)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *Repository[T]) Create(ctx context.Context, e *T) error {
	placeholders := make([]string, len(r.tbl.InsertColumns))
	for i := range r.tbl.InsertColumns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	sql := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING id, created_at",
		r.tbl.Name,
		strings.Join(r.tbl.InsertColumns, ", "),
		strings.Join(placeholders, ", "),
	)

	err := r.db.QueryRow(ctx, sql, r.tbl.InsertValues(e)...).Scan(r.tbl.InsertReturning(e)...)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", r.tbl.Name, mapConstraintError(err))
	}
	return nil
}

func (r *Repository[T]) Update(ctx context.Context, e *T) error {
	sets := make([]string, len(r.tbl.UpdateColumns))
	for i, col := range r.tbl.UpdateColumns {
		sets[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}

	sql := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d",
		r.tbl.Name, strings.Join(sets, ", "), len(r.tbl.UpdateColumns)+1,
	)

	args := append(r.tbl.UpdateValues(e), r.tbl.ID(e))
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", r.tbl.Name, mapConstraintError(err))
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *Repository[T]) Delete(ctx context.Context, e *T) error {
	sql := fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.tbl.Name)

	tag, err := r.db.Exec(ctx, sql, r.tbl.ID(e))
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", r.tbl.Name, err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *Repository[T]) Exists(ctx context.Context, id int64) (bool, error) {
	sql := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)", r.tbl.Name)

	var exists bool
	err := r.db.QueryRow(ctx, sql, id).Scan(&exists)
	return exists, err
}

func (r *Repository[T]) Count(ctx context.Context, f query.Filter) (int64, error) {
	clause, args, _ := f.ToSQL(1)

	sql := fmt.Sprintf("SELECT COUNT(*) FROM %s", r.tbl.Name)
	if clause != "" {
		sql += " WHERE " + clause
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", r.tbl.Name, err)
	}
	return total, nil
}

func (r *Repository[T]) queryMany(ctx context.Context, sql string, args []any) ([]T, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.tbl.Name, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		e, err := r.tbl.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", r.tbl.Name, err)
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s rows: %w", r.tbl.Name, err)
	}
	return items, nil
}
