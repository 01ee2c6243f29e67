package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCtxFallsBackToBase(t *testing.T) {
	assert.Same(t, L, WithCtx(context.Background()))
}

func TestWithCtxReturnsInjected(t *testing.T) {
	var buf bytes.Buffer
	reqLog := slog.New(slog.NewTextHandler(&buf, nil)).With("request_id", "abc")

	ctx := InjectLogger(context.Background(), reqLog)
	WithCtx(ctx).Info("item created", "id", 7)

	assert.Contains(t, buf.String(), "request_id=abc")
	assert.Contains(t, buf.String(), "id=7")
}

func TestMultiHandlerFansOut(t *testing.T) {
	var a, b bytes.Buffer
	log := slog.New(NewMultiHandler(
		slog.NewTextHandler(&a, nil),
		slog.NewJSONHandler(&b, nil),
	)).With("resource", "items")

	log.Info("deleted")

	assert.Contains(t, a.String(), "resource=items")
	assert.Contains(t, b.String(), `"resource":"items"`)
}

func TestToDocumentLiftsRequestID(t *testing.T) {
	r := slog.NewRecord(time.Now(), slog.LevelWarn, "lookup in use", 0)
	r.AddAttrs(slog.Int("id", 3))

	doc := toDocument(r, []slog.Attr{slog.String("request_id", "rid-1")}, "")

	require.NotNil(t, doc.Attrs)
	assert.Equal(t, "rid-1", doc.RequestID)
	assert.Equal(t, "WARN", doc.Level)
	assert.EqualValues(t, 3, doc.Attrs["id"])
}

func TestToDocumentGroupPrefix(t *testing.T) {
	r := slog.NewRecord(time.Now(), slog.LevelInfo, "query", 0)
	r.AddAttrs(slog.String("op", "select"))

	doc := toDocument(r, nil, "db.")

	assert.Equal(t, "select", doc.Attrs["db.op"])
	assert.Empty(t, doc.RequestID)
}
