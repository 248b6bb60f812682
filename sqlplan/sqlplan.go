// Package sqlplan pushes a projection plan down to SQL: it selects only the columns
// the plan reads from the root entity and loads the rows with sqlx.
package sqlplan

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/reflectx"

	"queryable-projector/internal/plan"
)

const (
	dialectPostgres = "postgres"
	columnTag       = "db"
)

var (
	ErrBuildingQueryFailed = errors.New("building query failed")
	ErrNoColumn            = errors.New("source field has no column")
	ErrNilPlan             = errors.New("plan is nil")
)

// mapper resolves column names the way sqlx does by default: the db tag,
// otherwise the lowercased field name.
var mapper = reflectx.NewMapperFunc(columnTag, strings.ToLower)

// Columns returns the columns read by the scalar bindings of the root plan, in binding
// order without duplicates. Relations are loaded separately and contribute no columns.
func Columns(p *plan.TypePlan) ([]string, error) {
	if p == nil {
		return nil, ErrNilPlan
	}

	sm := mapper.TypeMap(p.Source)
	columns := make([]string, 0, len(p.Bindings))

	for _, b := range p.Bindings {
		if b.Kind != plan.BindingScalar {
			continue
		}

		col, ok := columnOf(sm, b.Source.Index)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrNoColumn, p.Source, b.Source.Name)
		}

		if !slices.Contains(columns, col) {
			columns = append(columns, col)
		}
	}

	return columns, nil
}

func columnOf(sm *reflectx.StructMap, index []int) (string, bool) {
	for _, fi := range sm.Index {
		if slices.Equal(fi.Index, index) {
			return fi.Path, true
		}
	}

	return "", false
}

// Select restricts ds to the columns read by p.
func Select(ds *goqu.SelectDataset, p *plan.TypePlan) (*goqu.SelectDataset, error) {
	columns, err := Columns(p)
	if err != nil {
		return nil, err
	}

	cols := make([]any, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, goqu.C(c))
	}

	return ds.Select(cols...), nil
}

// From starts a postgres SELECT of the columns read by p from table.
func From(table string, p *plan.TypePlan) (*goqu.SelectDataset, error) {
	return Select(goqu.Dialect(dialectPostgres).From(table), p)
}

// ToSQL renders ds as a prepared statement.
func ToSQL(ds *goqu.SelectDataset) (string, []any, error) {
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return "", nil, errors.Join(ErrBuildingQueryFailed, err)
	}

	return query, args, nil
}

// SelectRoots runs ds and scans the rows into dest, a pointer to a slice of root entities.
func SelectRoots(ctx context.Context, q sqlx.QueryerContext, ds *goqu.SelectDataset, dest any) error {
	query, args, err := ToSQL(ds)
	if err != nil {
		return err
	}

	if err := sqlx.SelectContext(ctx, q, dest, query, args...); err != nil {
		return fmt.Errorf("failed to select roots: %w", err)
	}

	return nil
}
