package controllers

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/mrvrecords/app/models"
	"github.com/shashiranjanraj/mrvrecords/app/services"
	"github.com/shashiranjanraj/mrvrecords/pkg/ctx"
)

type ItemController struct {
	service *services.ItemService
}

func NewItemController(db *gorm.DB) *ItemController {
	return &ItemController{service: services.NewItemService(db)}
}

func (c *ItemController) Index(cx *ctx.Context) {
	items, err := c.service.List(cx.Context())
	if err != nil {
		fail(cx, err)
		return
	}
	cx.OK(items)
}

func (c *ItemController) Store(cx *ctx.Context) {
	var in models.ItemInput
	if !cx.DecodeJSON(&in) {
		return
	}
	item, err := c.service.Create(cx.Context(), in)
	if err != nil {
		fail(cx, err)
		return
	}
	cx.OK(item)
}

func (c *ItemController) Show(cx *ctx.Context) {
	id, ok := pathID(cx, "Item")
	if !ok {
		return
	}
	item, err := c.service.Get(cx.Context(), id)
	if err != nil {
		fail(cx, err)
		return
	}
	cx.OK(item)
}

func (c *ItemController) Update(cx *ctx.Context) {
	id, ok := pathID(cx, "Item")
	if !ok {
		return
	}
	var in models.ItemInput
	if !cx.DecodeJSON(&in) {
		return
	}
	item, err := c.service.Update(cx.Context(), id, in)
	if err != nil {
		fail(cx, err)
		return
	}
	cx.OK(item)
}

func (c *ItemController) Destroy(cx *ctx.Context) {
	id, ok := pathID(cx, "Item")
	if !ok {
		return
	}
	if err := c.service.Delete(cx.Context(), id); err != nil {
		fail(cx, err)
		return
	}
	cx.Message("Item deleted")
}
