package models

// Lookup is a row of any of the four reference tables. They share one shape
// and are told apart by the table name passed to gorm's Table().
type Lookup struct {
	ID          int    `gorm:"column:Id;primaryKey;autoIncrement:false" json:"Id"`
	Description string `gorm:"column:Description;size:255;not null"     json:"Description"`
}

// LookupTable describes one reference table and the MasterProducts column
// that points at it.
type LookupTable struct {
	Table    string
	Column   string
	Label    string
	Resource string
}

var (
	ProductDescriptions = LookupTable{
		Table:    "ProductDescription",
		Column:   "ProductDescriptionId",
		Label:    "Product description",
		Resource: "product_description",
	}
	UnitsOfMeasure = LookupTable{
		Table:    "UnitOfMeasure",
		Column:   "UnitOfMeasureId",
		Label:    "Unit of measure",
		Resource: "unit_of_measure",
	}
	ProductCategories = LookupTable{
		Table:    "ProductCategory",
		Column:   "ProductCategoryId",
		Label:    "Product category",
		Resource: "product_category",
	}
	ProductTypes = LookupTable{
		Table:    "ProductType",
		Column:   "ProductTypeId",
		Label:    "Product type",
		Resource: "product_type",
	}
)

// LookupTables returns the four reference tables.
func LookupTables() []LookupTable {
	return []LookupTable{ProductDescriptions, UnitsOfMeasure, ProductCategories, ProductTypes}
}

// LookupInput is the create payload; the client picks the id.
type LookupInput struct {
	ID          int    `json:"id"          validate:"required,gt=0"`
	Description string `json:"description" validate:"required,max=255"`
}

// LookupUpdate is the update payload. The id in the path is the key.
type LookupUpdate struct {
	Description string `json:"description" validate:"required,max=255"`
}
