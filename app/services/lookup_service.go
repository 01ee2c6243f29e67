package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/mrvrecords/app/models"
	"github.com/shashiranjanraj/mrvrecords/app/repositories"
	"github.com/shashiranjanraj/mrvrecords/pkg/logger"
	"github.com/shashiranjanraj/mrvrecords/pkg/metrics"
	"github.com/shashiranjanraj/mrvrecords/pkg/orm"
)

// LookupService serves one reference table. Rows keep the id the client
// chose and cannot be deleted while a master product points at them.
type LookupService struct {
	db       *orm.Query
	table    models.LookupTable
	repo     *repositories.LookupRepository
	products *repositories.MasterProductRepository
}

func NewLookupService(db *gorm.DB, table models.LookupTable) *LookupService {
	return &LookupService{
		db:       orm.New(db),
		table:    table,
		repo:     repositories.NewLookupRepository(table),
		products: repositories.NewMasterProductRepository(),
	}
}

// Table returns the reference table this service serves.
func (s *LookupService) Table() models.LookupTable { return s.table }

func (s *LookupService) Create(ctx context.Context, in models.LookupInput) (row models.Lookup, err error) {
	defer func() { metrics.RecordOperation(s.table.Resource, "create", err) }()

	if err = checkInput(in); err != nil {
		return models.Lookup{}, err
	}

	err = s.db.Transaction(ctx, func(tx *orm.Query) error {
		exists, err := s.repo.Exists(tx, in.ID)
		if err != nil {
			return err
		}
		if exists {
			return newError(ErrConflict, "%s %d already exists", s.table.Label, in.ID)
		}
		if err := s.repo.Create(tx, &models.Lookup{ID: in.ID, Description: in.Description}); err != nil {
			return err
		}
		row, err = s.repo.FindByID(tx, in.ID)
		return err
	})
	if err != nil {
		return models.Lookup{}, err
	}

	logger.WithCtx(ctx).Info("lookup created", "table", s.table.Table, "id", row.ID)
	return row, nil
}

func (s *LookupService) List(ctx context.Context) (rows []models.Lookup, err error) {
	defer func() { metrics.RecordOperation(s.table.Resource, "list", err) }()
	return s.repo.All(s.db.WithContext(ctx))
}

func (s *LookupService) Get(ctx context.Context, id int) (row models.Lookup, err error) {
	defer func() { metrics.RecordOperation(s.table.Resource, "get", err) }()

	row, err = s.repo.FindByID(s.db.WithContext(ctx), id)
	if err != nil {
		return models.Lookup{}, notFoundOr(err, s.table.Label)
	}
	return row, nil
}

func (s *LookupService) Update(ctx context.Context, id int, in models.LookupUpdate) (row models.Lookup, err error) {
	defer func() { metrics.RecordOperation(s.table.Resource, "update", err) }()

	err = s.db.Transaction(ctx, func(tx *orm.Query) error {
		if _, err := s.repo.FindByID(tx, id); err != nil {
			return notFoundOr(err, s.table.Label)
		}
		if err := checkInput(in); err != nil {
			return err
		}
		if err := s.repo.Update(tx, id, in.Description); err != nil {
			return err
		}
		row, err = s.repo.FindByID(tx, id)
		return err
	})
	if err != nil {
		return models.Lookup{}, err
	}

	logger.WithCtx(ctx).Info("lookup updated", "table", s.table.Table, "id", id)
	return row, nil
}

func (s *LookupService) Delete(ctx context.Context, id int) (err error) {
	defer func() { metrics.RecordOperation(s.table.Resource, "delete", err) }()

	err = s.db.Transaction(ctx, func(tx *orm.Query) error {
		if _, err := s.repo.FindByID(tx, id); err != nil {
			return notFoundOr(err, s.table.Label)
		}
		n, err := s.products.CountReferencing(tx, s.table.Column, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return newError(ErrConflict, "%s %d is referenced by %d master product(s)", s.table.Label, id, n)
		}
		return s.repo.Delete(tx, id)
	})
	if err != nil {
		return err
	}

	logger.WithCtx(ctx).Info("lookup deleted", "table", s.table.Table, "id", id)
	return nil
}
