package controllers

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/mrvrecords/app/models"
	"github.com/shashiranjanraj/mrvrecords/app/services"
	"github.com/shashiranjanraj/mrvrecords/pkg/ctx"
)

type MasterProductController struct {
	service *services.MasterProductService
}

func NewMasterProductController(db *gorm.DB) *MasterProductController {
	return &MasterProductController{service: services.NewMasterProductService(db)}
}

func (c *MasterProductController) Index(cx *ctx.Context) {
	products, err := c.service.List(cx.Context())
	if err != nil {
		fail(cx, err)
		return
	}
	cx.OK(products)
}

func (c *MasterProductController) Store(cx *ctx.Context) {
	var in models.MasterProductInput
	if !cx.DecodeJSON(&in) {
		return
	}
	p, err := c.service.Create(cx.Context(), in)
	if err != nil {
		fail(cx, err)
		return
	}
	cx.OK(p)
}

func (c *MasterProductController) Show(cx *ctx.Context) {
	id, ok := pathID(cx, "Master product")
	if !ok {
		return
	}
	p, err := c.service.Get(cx.Context(), id)
	if err != nil {
		fail(cx, err)
		return
	}
	cx.OK(p)
}

func (c *MasterProductController) Update(cx *ctx.Context) {
	id, ok := pathID(cx, "Master product")
	if !ok {
		return
	}
	var in models.MasterProductInput
	if !cx.DecodeJSON(&in) {
		return
	}
	p, err := c.service.Update(cx.Context(), id, in)
	if err != nil {
		fail(cx, err)
		return
	}
	cx.OK(p)
}

func (c *MasterProductController) Destroy(cx *ctx.Context) {
	id, ok := pathID(cx, "Master product")
	if !ok {
		return
	}
	if err := c.service.Delete(cx.Context(), id); err != nil {
		fail(cx, err)
		return
	}
	cx.Message("Master product deleted")
}
