package repositories

import (
	"github.com/shashiranjanraj/mrvrecords/app/models"
	"github.com/shashiranjanraj/mrvrecords/pkg/orm"
)

// ItemRepository handles database operations for Item. Every method runs on
// the handle it is given, normally an open transaction.
type ItemRepository struct{}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

// FindByID looks up an item by primary key.
func (r *ItemRepository) FindByID(tx *orm.Query, id int) (models.Item, error) {
	var item models.Item
	err := tx.Model(&models.Item{}).WhereEq("Id", id).First(&item)
	return item, err
}

// All returns every item in primary key order.
func (r *ItemRepository) All(tx *orm.Query) ([]models.Item, error) {
	items := []models.Item{}
	err := tx.Model(&models.Item{}).OrderBy("Id").Get(&items)
	return items, err
}

// Create persists a new item and fills in its Id.
func (r *ItemRepository) Create(tx *orm.Query, item *models.Item) error {
	return tx.Create(item)
}

func (r *ItemRepository) Update(tx *orm.Query, id int, columns map[string]interface{}) error {
	return tx.Model(&models.Item{}).WhereEq("Id", id).Updates(columns)
}

func (r *ItemRepository) Delete(tx *orm.Query, id int) error {
	return tx.WhereEq("Id", id).Delete(&models.Item{})
}
