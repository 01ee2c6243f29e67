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

const masterProductResource = "master_product"

// MasterProductService writes master products after checking every foreign
// key against its lookup table in the same transaction.
type MasterProductService struct {
	db      *orm.Query
	repo    *repositories.MasterProductRepository
	lookups map[string]*repositories.LookupRepository
}

func NewMasterProductService(db *gorm.DB) *MasterProductService {
	lookups := make(map[string]*repositories.LookupRepository)
	for _, t := range models.LookupTables() {
		lookups[t.Table] = repositories.NewLookupRepository(t)
	}
	return &MasterProductService{
		db:      orm.New(db),
		repo:    repositories.NewMasterProductRepository(),
		lookups: lookups,
	}
}

func (s *MasterProductService) Create(ctx context.Context, in models.MasterProductInput) (p models.MasterProduct, err error) {
	defer func() { metrics.RecordOperation(masterProductResource, "create", err) }()

	if err = checkMasterProduct(in); err != nil {
		return models.MasterProduct{}, err
	}

	err = s.db.Transaction(ctx, func(tx *orm.Query) error {
		if err := s.checkReferences(tx, &in); err != nil {
			return err
		}
		created := in.Model()
		if err := s.repo.Create(tx, &created); err != nil {
			return err
		}
		p, err = s.repo.FindByID(tx, created.ID)
		return err
	})
	if err != nil {
		return models.MasterProduct{}, err
	}

	logger.WithCtx(ctx).Info("master product created", "id", p.ID, "product_number", p.ProductNumber)
	return p, nil
}

func (s *MasterProductService) List(ctx context.Context) (products []models.MasterProduct, err error) {
	defer func() { metrics.RecordOperation(masterProductResource, "list", err) }()
	return s.repo.All(s.db.WithContext(ctx))
}

func (s *MasterProductService) Get(ctx context.Context, id int) (p models.MasterProduct, err error) {
	defer func() { metrics.RecordOperation(masterProductResource, "get", err) }()

	p, err = s.repo.FindByID(s.db.WithContext(ctx), id)
	if err != nil {
		return models.MasterProduct{}, notFoundOr(err, "Master product")
	}
	return p, nil
}

func (s *MasterProductService) Update(ctx context.Context, id int, in models.MasterProductInput) (p models.MasterProduct, err error) {
	defer func() { metrics.RecordOperation(masterProductResource, "update", err) }()

	err = s.db.Transaction(ctx, func(tx *orm.Query) error {
		if _, err := s.repo.FindByID(tx, id); err != nil {
			return notFoundOr(err, "Master product")
		}
		if err := checkMasterProduct(in); err != nil {
			return err
		}
		if err := s.checkReferences(tx, &in); err != nil {
			return err
		}
		if err := s.repo.Update(tx, id, in.Columns()); err != nil {
			return err
		}
		p, err = s.repo.FindByID(tx, id)
		return err
	})
	if err != nil {
		return models.MasterProduct{}, err
	}

	logger.WithCtx(ctx).Info("master product updated", "id", id)
	return p, nil
}

func (s *MasterProductService) Delete(ctx context.Context, id int) (err error) {
	defer func() { metrics.RecordOperation(masterProductResource, "delete", err) }()

	err = s.db.Transaction(ctx, func(tx *orm.Query) error {
		if _, err := s.repo.FindByID(tx, id); err != nil {
			return notFoundOr(err, "Master product")
		}
		return s.repo.Delete(tx, id)
	})
	if err != nil {
		return err
	}

	logger.WithCtx(ctx).Info("master product deleted", "id", id)
	return nil
}

// checkReferences issues one existence query per non-null foreign key, in
// column order, and stops at the first one that does not resolve.
func (s *MasterProductService) checkReferences(tx *orm.Query, in *models.MasterProductInput) error {
	for _, ref := range in.References() {
		if ref.ID == nil {
			continue
		}
		ok, err := s.lookups[ref.Table.Table].Exists(tx, *ref.ID)
		if err != nil {
			return err
		}
		if !ok {
			return newError(ErrReference, "Invalid %s: %s %d does not exist", ref.Field, ref.Table.Label, *ref.ID)
		}
	}
	return nil
}

func checkMasterProduct(in models.MasterProductInput) error {
	if err := checkInput(in); err != nil {
		return err
	}
	if in.FatContent.Valid && in.FatContent.Decimal.IsNegative() {
		return fieldError("fat_content", "The fat_content must not be negative.")
	}
	if in.ConversionOunces.Valid && !in.ConversionOunces.Decimal.IsPositive() {
		return fieldError("conversion_ounces", "The conversion_ounces must be greater than 0.")
	}
	return nil
}
