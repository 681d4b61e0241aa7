package mysql

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/BoburSobirjanov/order-task/pkg/domain/model"
)

// Store implements the shared soft-delete operations for one table.
// Every read it issues carries the deleted = FALSE predicate by
// construction; Find is the only raw lookup. Entity-specific stores
// embed it and add their own Save and finders.
type Store[T any] struct {
	db       *sqlx.DB
	table    string
	notFound error
}

func NewStore[T any](db *sqlx.DB, table string, notFound error) *Store[T] {
	return &Store[T]{db: db, table: table, notFound: notFound}
}

func (s *Store[T]) Find(id uuid.UUID) (*T, error) {
	var row T
	err := s.db.Get(&row, "SELECT * FROM "+s.table+" WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, s.notFound
		}
		return nil, errors.Wrapf(err, "find in %s", s.table)
	}
	return &row, nil
}

func (s *Store[T]) FindActive(id uuid.UUID) (*T, error) {
	return s.findOneActive(clause{expr: "id = ?", args: []any{id}})
}

func (s *Store[T]) Trash(id uuid.UUID) (*T, error) {
	res, err := s.db.Exec("UPDATE "+s.table+" SET deleted = TRUE WHERE id = ? AND deleted = FALSE", id)
	if err != nil {
		return nil, errors.Wrapf(err, "trash in %s", s.table)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "trash in %s", s.table)
	}
	if affected == 0 {
		return nil, s.notFound
	}
	return s.Find(id)
}

func (s *Store[T]) TrashMany(ids []uuid.UUID) ([]*T, error) {
	results := make([]*T, 0, len(ids))
	for _, id := range ids {
		e, err := s.Trash(id)
		if err != nil {
			if errors.Is(err, s.notFound) {
				results = append(results, nil)
				continue
			}
			return nil, err
		}
		results = append(results, e)
	}
	return results, nil
}

func (s *Store[T]) ListAllActive() ([]T, error) {
	return s.selectActive(matchAll())
}

func (s *Store[T]) ListActive(p model.Pageable) (model.Page[T], error) {
	return s.list(notDeleted(), p)
}

// save assigns identifier and creation time on first insert, upserts
// the row and re-reads it so callers get the persisted state back.
func (s *Store[T]) save(e interface{ Base() *model.Entity }, stmt string) (*T, error) {
	base := e.Base()
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
		base.CreatedAt = time.Now().UTC()
	}
	if _, err := s.db.NamedExec(stmt, e); err != nil {
		return nil, errors.Wrapf(err, "save in %s", s.table)
	}
	return s.Find(base.ID)
}

func (s *Store[T]) findOneActive(w clause) (*T, error) {
	cond := w.and(notDeleted())
	var row T
	err := s.db.Get(&row, "SELECT * FROM "+s.table+" WHERE "+cond.expr+" LIMIT 1", cond.args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, s.notFound
		}
		return nil, errors.Wrapf(err, "query %s", s.table)
	}
	return &row, nil
}

func (s *Store[T]) selectActive(w clause) ([]T, error) {
	cond := w.and(notDeleted())
	var rows []T
	err := s.db.Select(&rows, "SELECT * FROM "+s.table+" WHERE "+cond.expr+" ORDER BY created_at", cond.args...)
	if err != nil {
		return nil, errors.Wrapf(err, "query %s", s.table)
	}
	return rows, nil
}

func (s *Store[T]) list(where clause, p model.Pageable) (model.Page[T], error) {
	var total int64
	err := s.db.Get(&total, "SELECT COUNT(*) FROM "+s.table+" WHERE "+where.expr, where.args...)
	if err != nil {
		return model.Page[T]{}, errors.Wrapf(err, "count %s", s.table)
	}

	rows := make([]T, 0, p.Limit())
	args := make([]any, 0, len(where.args)+2)
	args = append(args, where.args...)
	args = append(args, p.Limit(), p.Offset())
	err = s.db.Select(&rows, "SELECT * FROM "+s.table+" WHERE "+where.expr+" ORDER BY created_at LIMIT ? OFFSET ?", args...)
	if err != nil {
		return model.Page[T]{}, errors.Wrapf(err, "list %s", s.table)
	}
	return model.NewPage(rows, p, total), nil
}
