package controllers

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/mrvrecords/app/models"
	"github.com/shashiranjanraj/mrvrecords/app/services"
	"github.com/shashiranjanraj/mrvrecords/pkg/ctx"
)

// LookupController serves CRUD for one reference table. One instance is
// mounted per table.
type LookupController struct {
	service *services.LookupService
	label   string
}

func NewLookupController(db *gorm.DB, table models.LookupTable) *LookupController {
	return &LookupController{service: services.NewLookupService(db, table), label: table.Label}
}

func (c *LookupController) Index(cx *ctx.Context) {
	rows, err := c.service.List(cx.Context())
	if err != nil {
		fail(cx, err)
		return
	}
	cx.OK(rows)
}

func (c *LookupController) Store(cx *ctx.Context) {
	var in models.LookupInput
	if !cx.DecodeJSON(&in) {
		return
	}
	row, err := c.service.Create(cx.Context(), in)
	if err != nil {
		fail(cx, err)
		return
	}
	cx.OK(row)
}

func (c *LookupController) Show(cx *ctx.Context) {
	id, ok := pathID(cx, c.label)
	if !ok {
		return
	}
	row, err := c.service.Get(cx.Context(), id)
	if err != nil {
		fail(cx, err)
		return
	}
	cx.OK(row)
}

func (c *LookupController) Update(cx *ctx.Context) {
	id, ok := pathID(cx, c.label)
	if !ok {
		return
	}
	var in models.LookupUpdate
	if !cx.DecodeJSON(&in) {
		return
	}
	row, err := c.service.Update(cx.Context(), id, in)
	if err != nil {
		fail(cx, err)
		return
	}
	cx.OK(row)
}

func (c *LookupController) Destroy(cx *ctx.Context) {
	id, ok := pathID(cx, c.label)
	if !ok {
		return
	}
	if err := c.service.Delete(cx.Context(), id); err != nil {
		fail(cx, err)
		return
	}
	cx.Message(c.label + " deleted")
}
