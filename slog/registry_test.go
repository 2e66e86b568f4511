package slog_test

import (
	"bytes"
	stdslog "log/slog"
	"testing"

	"github.com/bookbind/bookbind"
	bookslog "github.com/bookbind/bookbind/slog"
	"github.com/bookbind/bookbind/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRegistry_ForURL(t *testing.T) {
	t.Parallel()

	var log bytes.Buffer
	logger := stdslog.New(stdslog.NewTextHandler(&log, nil))

	want := &bookbind.Strategy{Site: bookbind.SiteUntools}
	next := &mock.StrategyRegistry{
		ForURLFn: func(url string) *bookbind.Strategy { return want },
		ListFn:   func() []bookbind.Site { return []bookbind.Site{bookbind.SiteUntools} },
	}

	r := bookslog.NewLoggingRegistry(next, logger)

	got := r.ForURL("https://untools.co/x/")
	require.Same(t, want, got)
	assert.Contains(t, log.String(), "site resolution")
	assert.Contains(t, log.String(), "untools")

	assert.Equal(t, []bookbind.Site{bookbind.SiteUntools}, r.List())
}
