package htmltomarkdown_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/bookbind/bookbind"
	"github.com/bookbind/bookbind/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("converts basic structure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		r := htmltomarkdown.NewRenderer()
		err := r.Render(&buf, `<h2>Section</h2><p>Some <strong>bold</strong> text.</p>`)
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "## Section")
		assert.Contains(t, out, "**bold**")
	})

	t.Run("empty input fails", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		r := htmltomarkdown.NewRenderer()
		err := r.Render(&buf, "   ")
		require.Error(t, err)
		assert.Equal(t, bookbind.EINVALID, bookbind.ErrorCode(err))
	})
}

func TestTransformer_Transform(t *testing.T) {
	t.Parallel()

	tr := htmltomarkdown.NewTransformer()
	const in = `<p>Some <a href="/x">link</a> and <img src="/i.png" alt="pic"/>.</p>`
	out, err := tr.Transform(context.Background(), in, "https://example.com/a")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
