// Package orm is a thin query builder over gorm. Every terminal call is timed
// into metrics.DBQueryDuration under its operation name.
//
//	err := orm.New(db).Transaction(ctx, func(tx *orm.Query) error {
//	    return tx.Model(&models.Item{}).WhereEq("Id", id).First(&item)
//	})
package orm

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shashiranjanraj/mrvrecords/pkg/metrics"
)

// ErrRecordNotFound is returned by First when no row matches.
var ErrRecordNotFound = gorm.ErrRecordNotFound

type Query struct {
	db *gorm.DB
}

// New wraps an explicit gorm handle (a pool or an open transaction).
func New(db *gorm.DB) *Query {
	return &Query{db: db}
}

func (q *Query) WithContext(ctx context.Context) *Query {
	return &Query{db: q.db.WithContext(ctx)}
}

// Transaction runs fn in one transaction. fn's error (or a panic) rolls back.
func (q *Query) Transaction(ctx context.Context, fn func(tx *Query) error) error {
	return q.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Query{db: tx})
	})
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Table(name string) *Query {
	return &Query{db: q.db.Table(name)}
}

// WhereEq adds "column = value" with the column quoted for the active dialect.
func (q *Query) WhereEq(column string, value interface{}) *Query {
	return &Query{db: q.db.Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})}
}

// OrderBy sorts ascending on a quoted column.
func (q *Query) OrderBy(column string) *Query {
	return &Query{db: q.db.Order(clause.OrderByColumn{Column: clause.Column{Name: column}})}
}

func (q *Query) Get(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Find(dest).Error
}

func (q *Query) First(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.First(dest).Error
}

func (q *Query) Count() (int64, error) {
	defer metrics.ObserveDBQuery("count", time.Now())
	var n int64
	err := q.db.Count(&n).Error
	return n, err
}

// Exists reports whether at least one row matches.
func (q *Query) Exists() (bool, error) {
	n, err := q.Count()
	return n > 0, err
}

func (q *Query) Create(v interface{}) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return q.db.Create(v).Error
}

// Updates writes every key in values, including nil ones as NULL.
func (q *Query) Updates(values map[string]interface{}) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return q.db.Updates(values).Error
}

func (q *Query) Delete(v interface{}) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	return q.db.Delete(v).Error
}
