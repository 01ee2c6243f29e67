package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/mrvrecords/app/services"
	"github.com/shashiranjanraj/mrvrecords/pkg/ctx"
	"github.com/shashiranjanraj/mrvrecords/pkg/logger"
)

// fail maps a service error onto a status code. Anything the services did
// not classify is a database failure and goes out as a 500 with its message.
func fail(c *ctx.Context, err error) {
	var svcErr *services.Error
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.NotFound(err.Error())
	case errors.Is(err, services.ErrValidation) && errors.As(err, &svcErr) && len(svcErr.Fields()) > 0:
		c.ValidationError(svcErr.Fields())
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrReference),
		errors.Is(err, services.ErrConflict):
		c.Error(http.StatusBadRequest, err.Error())
	default:
		logger.WithCtx(c.Context()).Error("record service failure", "error", err)
		c.Error(http.StatusInternalServerError, err.Error())
	}
}

// pathID reads {id}. An id that is not an integer cannot name a row, so it is
// answered like a missing one.
func pathID(c *ctx.Context, label string) (int, bool) {
	id, ok := c.ParamInt("id")
	if !ok {
		c.NotFound(label + " not found")
	}
	return id, ok
}
