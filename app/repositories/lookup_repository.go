package repositories

import (
	"github.com/shashiranjanraj/mrvrecords/app/models"
	"github.com/shashiranjanraj/mrvrecords/pkg/orm"
)

// LookupRepository handles one reference table.
type LookupRepository struct {
	table models.LookupTable
}

func NewLookupRepository(table models.LookupTable) *LookupRepository {
	return &LookupRepository{table: table}
}

func (r *LookupRepository) FindByID(tx *orm.Query, id int) (models.Lookup, error) {
	var l models.Lookup
	err := tx.Table(r.table.Table).WhereEq("Id", id).First(&l)
	return l, err
}

func (r *LookupRepository) Exists(tx *orm.Query, id int) (bool, error) {
	return tx.Table(r.table.Table).WhereEq("Id", id).Exists()
}

func (r *LookupRepository) All(tx *orm.Query) ([]models.Lookup, error) {
	rows := []models.Lookup{}
	err := tx.Table(r.table.Table).OrderBy("Id").Get(&rows)
	return rows, err
}

func (r *LookupRepository) Create(tx *orm.Query, l *models.Lookup) error {
	return tx.Table(r.table.Table).Create(l)
}

func (r *LookupRepository) Update(tx *orm.Query, id int, description string) error {
	return tx.Table(r.table.Table).WhereEq("Id", id).Updates(map[string]interface{}{"Description": description})
}

func (r *LookupRepository) Delete(tx *orm.Query, id int) error {
	return tx.Table(r.table.Table).WhereEq("Id", id).Delete(&models.Lookup{})
}
