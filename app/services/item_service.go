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

const itemResource = "item"

type ItemService struct {
	db   *orm.Query
	repo *repositories.ItemRepository
}

func NewItemService(db *gorm.DB) *ItemService {
	return &ItemService{db: orm.New(db), repo: repositories.NewItemRepository()}
}

func (s *ItemService) Create(ctx context.Context, in models.ItemInput) (item models.Item, err error) {
	defer func() { metrics.RecordOperation(itemResource, "create", err) }()

	if err = checkInput(in); err != nil {
		return models.Item{}, err
	}

	err = s.db.Transaction(ctx, func(tx *orm.Query) error {
		created := in.Model()
		if err := s.repo.Create(tx, &created); err != nil {
			return err
		}
		item, err = s.repo.FindByID(tx, created.ID)
		return err
	})
	if err != nil {
		return models.Item{}, err
	}

	logger.WithCtx(ctx).Info("item created", "id", item.ID)
	return item, nil
}

func (s *ItemService) List(ctx context.Context) (items []models.Item, err error) {
	defer func() { metrics.RecordOperation(itemResource, "list", err) }()
	return s.repo.All(s.db.WithContext(ctx))
}

func (s *ItemService) Get(ctx context.Context, id int) (item models.Item, err error) {
	defer func() { metrics.RecordOperation(itemResource, "get", err) }()

	item, err = s.repo.FindByID(s.db.WithContext(ctx), id)
	if err != nil {
		return models.Item{}, notFoundOr(err, "Item")
	}
	return item, nil
}

func (s *ItemService) Update(ctx context.Context, id int, in models.ItemInput) (item models.Item, err error) {
	defer func() { metrics.RecordOperation(itemResource, "update", err) }()

	err = s.db.Transaction(ctx, func(tx *orm.Query) error {
		if _, err := s.repo.FindByID(tx, id); err != nil {
			return notFoundOr(err, "Item")
		}
		if err := checkInput(in); err != nil {
			return err
		}
		if err := s.repo.Update(tx, id, in.Columns()); err != nil {
			return err
		}
		item, err = s.repo.FindByID(tx, id)
		return err
	})
	if err != nil {
		return models.Item{}, err
	}

	logger.WithCtx(ctx).Info("item updated", "id", id)
	return item, nil
}

func (s *ItemService) Delete(ctx context.Context, id int) (err error) {
	defer func() { metrics.RecordOperation(itemResource, "delete", err) }()

	err = s.db.Transaction(ctx, func(tx *orm.Query) error {
		if _, err := s.repo.FindByID(tx, id); err != nil {
			return notFoundOr(err, "Item")
		}
		return s.repo.Delete(tx, id)
	})
	if err != nil {
		return err
	}

	logger.WithCtx(ctx).Info("item deleted", "id", id)
	return nil
}
