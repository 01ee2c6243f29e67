package repositories

import (
	"github.com/shashiranjanraj/mrvrecords/app/models"
	"github.com/shashiranjanraj/mrvrecords/pkg/orm"
)

// MasterProductRepository handles database operations for MasterProduct.
type MasterProductRepository struct{}

func NewMasterProductRepository() *MasterProductRepository {
	return &MasterProductRepository{}
}

func (r *MasterProductRepository) FindByID(tx *orm.Query, id int) (models.MasterProduct, error) {
	var p models.MasterProduct
	err := tx.Model(&models.MasterProduct{}).WhereEq("Id", id).First(&p)
	return p, err
}

func (r *MasterProductRepository) All(tx *orm.Query) ([]models.MasterProduct, error) {
	products := []models.MasterProduct{}
	err := tx.Model(&models.MasterProduct{}).OrderBy("Id").Get(&products)
	return products, err
}

func (r *MasterProductRepository) Create(tx *orm.Query, p *models.MasterProduct) error {
	return tx.Create(p)
}

// Update overwrites the given columns. Nil values are written as NULL.
func (r *MasterProductRepository) Update(tx *orm.Query, id int, columns map[string]interface{}) error {
	return tx.Model(&models.MasterProduct{}).WhereEq("Id", id).Updates(columns)
}

func (r *MasterProductRepository) Delete(tx *orm.Query, id int) error {
	return tx.WhereEq("Id", id).Delete(&models.MasterProduct{})
}

// CountReferencing counts master products whose column equals id.
func (r *MasterProductRepository) CountReferencing(tx *orm.Query, column string, id int) (int64, error) {
	return tx.Model(&models.MasterProduct{}).WhereEq(column, id).Count()
}
