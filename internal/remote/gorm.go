package remote

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Gorm is the postgres-backed Service.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (g *Gorm) Select(ctx context.Context, collection string, dest any, filters ...Filter) error {
	q := g.db.WithContext(ctx).Table(collection)
	if err := applyFilters(q, filters).Find(dest).Error; err != nil {
		return fmt.Errorf("select %s: %w", collection, err)
	}
	return nil
}

func (g *Gorm) Insert(ctx context.Context, collection string, rows any) error {
	// Server-default columns (the uuid primary keys) are backfilled into
	// rows via RETURNING.
	if err := g.db.WithContext(ctx).Table(collection).Create(rows).Error; err != nil {
		return fmt.Errorf("insert %s: %w", collection, err)
	}
	return nil
}

func (g *Gorm) Update(ctx context.Context, collection string, changes map[string]any, filters ...Filter) error {
	if len(changes) == 0 {
		return nil
	}
	q := g.db.WithContext(ctx).Table(collection)
	if err := applyFilters(q, filters).Updates(changes).Error; err != nil {
		return fmt.Errorf("update %s: %w", collection, err)
	}
	return nil
}

func (g *Gorm) Delete(ctx context.Context, collection string, filters ...Filter) error {
	conds := make([]string, 0, len(filters))
	args := make([]any, 0, len(filters))
	for _, f := range filters {
		if f.isIn {
			conds = append(conds, f.Column+" IN ?")
			args = append(args, f.Values)
		} else {
			conds = append(conds, f.Column+" = ?")
			args = append(args, f.Value)
		}
	}
	sql := "DELETE FROM " + collection
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	if err := g.db.WithContext(ctx).Exec(sql, args...).Error; err != nil {
		return fmt.Errorf("delete %s: %w", collection, err)
	}
	return nil
}

func (g *Gorm) Upsert(ctx context.Context, collection string, rows any, conflictColumns ...string) error {
	cols := make([]clause.Column, len(conflictColumns))
	for i, c := range conflictColumns {
		cols[i] = clause.Column{Name: c}
	}
	err := g.db.WithContext(ctx).Table(collection).
		Clauses(clause.OnConflict{Columns: cols, UpdateAll: true}).
		Create(rows).Error
	if err != nil {
		return fmt.Errorf("upsert %s: %w", collection, err)
	}
	return nil
}

func applyFilters(q *gorm.DB, filters []Filter) *gorm.DB {
	for _, f := range filters {
		if f.isIn {
			q = q.Where(f.Column+" IN ?", f.Values)
		} else {
			q = q.Where(f.Column+" = ?", f.Value)
		}
	}
	return q
}
