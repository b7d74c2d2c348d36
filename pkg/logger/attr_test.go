package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clubledger/pkg/analytics"
	"github.com/dmitrymomot/clubledger/pkg/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("snapshot", slog.String("area", "Center"), slog.Int("n", 2))
	require.Equal(t, "snapshot", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "area", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want any
	}{
		{"client id", logger.ClientID("c1"), "client_id", "c1"},
		{"area", logger.Area("Center"), "area", "Center"},
		{"group", logger.TrainingGroup("Kids"), "group", "Kids"},
		{"period", logger.Period(analytics.Month(2024, 1)), "period", "2024-01-01..2024-02-01"},
		{"collection", logger.Collection("clients"), "collection", "clients"},
		{"count", logger.Count(3), "count", int64(3)},
		{"attempt", logger.Attempt(2), "attempt", int64(2)},
		{"duration", logger.Duration(1500 * time.Millisecond), "duration", 1500 * time.Millisecond},
		{"command", logger.Command("paysync"), "command", "paysync"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}
}

func TestEmptyDomainAttrs(t *testing.T) {
	t.Parallel()
	assert.True(t, logger.ClientID("").Equal(slog.Attr{}))
	assert.True(t, logger.Area("").Equal(slog.Attr{}))
	assert.True(t, logger.TrainingGroup("").Equal(slog.Attr{}))
	assert.True(t, logger.Period(nil).Equal(slog.Attr{}))
}
