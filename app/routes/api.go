package routes

import (
	"strings"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/mrvrecords/app/controllers"
	"github.com/shashiranjanraj/mrvrecords/app/models"
	"github.com/shashiranjanraj/mrvrecords/pkg/ctx"
	"github.com/shashiranjanraj/mrvrecords/pkg/router"
)

// lookupPrefixes are the public paths of the reference tables.
var lookupPrefixes = []struct {
	prefix string
	table  models.LookupTable
}{
	{"/product-descriptions", models.ProductDescriptions},
	{"/uom", models.UnitsOfMeasure},
	{"/product-categories", models.ProductCategories},
	{"/product-types", models.ProductTypes},
}

type resourceController interface {
	Index(*ctx.Context)
	Store(*ctx.Context)
	Show(*ctx.Context)
	Update(*ctx.Context)
	Destroy(*ctx.Context)
}

func RegisterAPI(r *router.Router, db *gorm.DB) {
	resource(r, "/items", controllers.NewItemController(db))
	resource(r, "/mrv-master-products", controllers.NewMasterProductController(db))

	for _, l := range lookupPrefixes {
		resource(r, l.prefix, controllers.NewLookupController(db, l.table))
	}
}

// resource mounts the five CRUD routes under prefix:
//
//	POST/GET        prefix/
//	GET/PUT/DELETE prefix/{id}
func resource(r *router.Router, prefix string, c resourceController) {
	name := strings.TrimPrefix(prefix, "/")
	g := r.Group(prefix)

	g.Get("/", name+".index", ctx.Wrap(c.Index))
	g.Post("/", name+".store", ctx.Wrap(c.Store))
	g.Get("/{id}", name+".show", ctx.Wrap(c.Show))
	g.Put("/{id}", name+".update", ctx.Wrap(c.Update))
	g.Delete("/{id}", name+".destroy", ctx.Wrap(c.Destroy))
}
