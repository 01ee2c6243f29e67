package models

// Item is a free-form catalogue entry.
type Item struct {
	ID          int    `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	Name        string `gorm:"column:Name;size:255;not null"      json:"Name"`
	Description string `gorm:"column:Description;size:255;not null" json:"Description"`
	Category    string `gorm:"column:Category;size:255;not null"  json:"Category"`
}

func (Item) TableName() string { return "Items" }

// ItemInput is the create/update payload.
type ItemInput struct {
	Name        string `json:"name"        validate:"required,max=255"`
	Description string `json:"description" validate:"required,max=255"`
	Category    string `json:"category"    validate:"required,max=255"`
}

// Columns maps the payload onto the mutable columns of Items.
func (in ItemInput) Columns() map[string]interface{} {
	return map[string]interface{}{
		"Name":        in.Name,
		"Description": in.Description,
		"Category":    in.Category,
	}
}

func (in ItemInput) Model() Item {
	return Item{Name: in.Name, Description: in.Description, Category: in.Category}
}
