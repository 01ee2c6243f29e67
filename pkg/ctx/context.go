// Package ctx provides a request context for controller handlers.
//
// A handler receives a single *Context instead of (w, r):
//
//	func (c *ItemController) Show(cx *ctx.Context) {
//	    id, ok := cx.ParamInt("id")
//	    ...
//	    cx.OK(item)
//	}
//
//	g.Get("/{id}", "items.show", ctx.Wrap(c.Show))
package ctx

import (
	"context"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/mrvrecords/pkg/bind"
	"github.com/shashiranjanraj/mrvrecords/pkg/response"
)

// HandlerFunc is the context-aware handler signature.
type HandlerFunc func(c *Context)

// Wrap converts a HandlerFunc to a standard http.HandlerFunc.
func Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := acquire(w, r)
		defer release(c)
		h(c)
	}
}

// Context wraps a request/response pair.
type Context struct {
	W http.ResponseWriter
	R *http.Request
}

var pool = sync.Pool{
	New: func() any { return &Context{} },
}

func acquire(w http.ResponseWriter, r *http.Request) *Context {
	c := pool.Get().(*Context)
	c.W = w
	c.R = r
	return c
}

func release(c *Context) {
	c.W = nil
	c.R = nil
	pool.Put(c)
}

// Param returns a URL path parameter ("/items/{id}" → c.Param("id")).
func (c *Context) Param(key string) string {
	return chi.URLParam(c.R, key)
}

// ParamInt parses a URL path parameter as an int.
func (c *Context) ParamInt(key string) (int, bool) {
	n, err := strconv.Atoi(c.Param(key))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Context returns the underlying request context.
func (c *Context) Context() context.Context { return c.R.Context() }

// DecodeJSON decodes the body into dest. On failure it writes a 400 and
// returns false; the handler should return immediately.
func (c *Context) DecodeJSON(dest any) bool {
	if err := bind.Decode(c.W, c.R, dest); err != nil {
		c.Error(http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// OK sends a 200 with v as the body.
func (c *Context) OK(v any) {
	response.OK(c.W, v)
}

// Message sends a 200 {"message": msg}.
func (c *Context) Message(msg string) {
	response.Message(c.W, msg)
}

// Error sends a JSON error envelope.
func (c *Context) Error(code int, message string) {
	response.Error(c.W, code, message)
}

// NotFound sends a 404.
func (c *Context) NotFound(message string) {
	response.NotFound(c.W, message)
}

// ValidationError sends a 400 with a field → message map.
func (c *Context) ValidationError(errs map[string]string) {
	response.ValidationError(c.W, errs)
}
