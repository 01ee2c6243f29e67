package models

import "github.com/shopspring/decimal"

// MasterProduct is a row of the MRV master product list. Every foreign key
// points at one of the lookup tables; the database declares none of them.
type MasterProduct struct {
	ID                   int                 `gorm:"column:Id;primaryKey;autoIncrement"             json:"Id"`
	ProductNumber        string              `gorm:"column:ProductNumber;size:50;not null"          json:"ProductNumber"`
	FMMOClassification   *string             `gorm:"column:FMMOClassification;size:50"              json:"FMMOClassification"`
	FatContent           decimal.NullDecimal `gorm:"column:FatContent;type:decimal(18,4)"           json:"FatContent"`
	ConversionOunces     decimal.NullDecimal `gorm:"column:ConversionOunces;type:decimal(18,4)"     json:"ConversionOunces"`
	TypeCode             *string             `gorm:"column:TypeCode;size:10"                        json:"TypeCode"`
	ProductDescriptionID int                 `gorm:"column:ProductDescriptionId;not null;index"     json:"ProductDescriptionId"`
	ProductCategoryID    int                 `gorm:"column:ProductCategoryId;not null;index"        json:"ProductCategoryId"`
	ProductTypeID        *int                `gorm:"column:ProductTypeId;index"                     json:"ProductTypeId"`
	UnitOfMeasureID      *int                `gorm:"column:UnitOfMeasureId;index"                   json:"UnitOfMeasureId"`
}

func (MasterProduct) TableName() string { return "MasterProducts" }

// MasterProductInput is the create/update payload. Omitted optional fields
// are stored as NULL, on update as well.
type MasterProductInput struct {
	ProductNumber        string              `json:"product_number"         validate:"required,max=50"`
	FMMOClassification   *string             `json:"fmmo_classification"    validate:"nullable,max=50"`
	FatContent           decimal.NullDecimal `json:"fat_content"`
	ConversionOunces     decimal.NullDecimal `json:"conversion_ounces"`
	TypeCode             *string             `json:"type_code"              validate:"nullable,max=10"`
	ProductDescriptionID int                 `json:"product_description_id" validate:"required,gt=0"`
	ProductCategoryID    int                 `json:"product_category_id"    validate:"required,gt=0"`
	ProductTypeID        *int                `json:"product_type_id"        validate:"nullable,gt=0"`
	UnitOfMeasureID      *int                `json:"uom_id"                 validate:"nullable,gt=0"`
}

// Reference is one foreign key carried by a payload. A nil ID is not checked.
type Reference struct {
	Field string
	Table LookupTable
	ID    *int
}

// References lists the payload's foreign keys in column order.
func (in *MasterProductInput) References() []Reference {
	return []Reference{
		{Field: "product_description_id", Table: ProductDescriptions, ID: &in.ProductDescriptionID},
		{Field: "product_category_id", Table: ProductCategories, ID: &in.ProductCategoryID},
		{Field: "product_type_id", Table: ProductTypes, ID: in.ProductTypeID},
		{Field: "uom_id", Table: UnitsOfMeasure, ID: in.UnitOfMeasureID},
	}
}

// Columns maps the payload onto every mutable column of MasterProducts.
func (in MasterProductInput) Columns() map[string]interface{} {
	return map[string]interface{}{
		"ProductNumber":        in.ProductNumber,
		"FMMOClassification":   in.FMMOClassification,
		"FatContent":           in.FatContent,
		"ConversionOunces":     in.ConversionOunces,
		"TypeCode":             in.TypeCode,
		"ProductDescriptionId": in.ProductDescriptionID,
		"ProductCategoryId":    in.ProductCategoryID,
		"ProductTypeId":        in.ProductTypeID,
		"UnitOfMeasureId":      in.UnitOfMeasureID,
	}
}

func (in MasterProductInput) Model() MasterProduct {
	return MasterProduct{
		ProductNumber:        in.ProductNumber,
		FMMOClassification:   in.FMMOClassification,
		FatContent:           in.FatContent,
		ConversionOunces:     in.ConversionOunces,
		TypeCode:             in.TypeCode,
		ProductDescriptionID: in.ProductDescriptionID,
		ProductCategoryID:    in.ProductCategoryID,
		ProductTypeID:        in.ProductTypeID,
		UnitOfMeasureID:      in.UnitOfMeasureID,
	}
}
