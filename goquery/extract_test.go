package goquery_test

import (
	"testing"

	"github.com/bookbind/bookbind"
	"github.com/bookbind/bookbind/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenericExtractor(t *testing.T) {
	t.Parallel()

	t.Run("title from first heading", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewGenericExtractor()
		got, err := e.Extract(`<html><body><h1>The Title</h1><p>Body text</p></body></html>`)
		require.NoError(t, err)

		assert.Equal(t, "The Title", got.Title)
		assert.Empty(t, got.Published)
		assert.Empty(t, got.Metadata)
		assert.Contains(t, got.ContentHTML, "<p>Body text</p>")
	})

	t.Run("missing heading fails", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewGenericExtractor()
		_, err := e.Extract(`<html><body><p>no heading here</p></body></html>`)
		require.Error(t, err)
		assert.Equal(t, bookbind.ENOTFOUND, bookbind.ErrorCode(err))
	})

	t.Run("publish date found anywhere in the page", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewGenericExtractor()
		got, err := e.Extract(`<html><body>
			<h1>T</h1>
			<footer><time class="entry-date published">March 3, 2020</time></footer>
		</body></html>`)
		require.NoError(t, err)
		assert.Equal(t, "March 3, 2020", got.Published)
	})

	t.Run("boilerplate stripped", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewGenericExtractor()
		got, err := e.Extract(`<html><body>
			<header id="masthead">branding</header>
			<div class="site-branding">logo</div>
			<nav class="post-navigation">prev/next</nav>
			<aside id="secondary">sidebar</aside>
			<h1>T</h1>
			<p>keep me</p>
		</body></html>`)
		require.NoError(t, err)

		assert.Contains(t, got.ContentHTML, "keep me")
		assert.NotContains(t, got.ContentHTML, "branding")
		assert.NotContains(t, got.ContentHTML, "logo")
		assert.NotContains(t, got.ContentHTML, "prev/next")
		assert.NotContains(t, got.ContentHTML, "sidebar")
	})
}

func TestUntoolsExtractor(t *testing.T) {
	t.Parallel()

	page := `<html><body>
		<div class="article-module--top--3f9a1">
			<h2>Inversion</h2>
			<span class="tag-module--tag--77bc2">Decision making</span>
			<div class="article-module--when-useful--90ddf">When you feel stuck.</div>
		</div>
		<div class="article-module--content--5c1e8"><p>Think backwards.</p></div>
	</body></html>`

	t.Run("title metadata and content", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewUntoolsExtractor()
		got, err := e.Extract(page)
		require.NoError(t, err)

		assert.Equal(t, "Inversion", got.Title)
		assert.Equal(t, ".Decision making\n****\nWhen you feel stuck.\n****\n\n", got.Metadata)
		assert.Contains(t, got.ContentHTML, "<p>Think backwards.</p>")
		assert.NotContains(t, got.ContentHTML, "Decision making")
	})

	t.Run("missing header fails", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewUntoolsExtractor()
		_, err := e.Extract(`<html><body><p>not an untools page</p></body></html>`)
		require.Error(t, err)
		assert.Equal(t, bookbind.ENOTFOUND, bookbind.ErrorCode(err))
	})
}

func TestConsequencesExtractor(t *testing.T) {
	t.Parallel()

	t.Run("narrows to entry content", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewConsequencesExtractor()
		got, err := e.Extract(`<html><body><div id="page">
			<h1>Unintended</h1>
			<header id="masthead">nav</header>
			<div class="entry-content"><p>The essay.</p></div>
			<time class="entry-date published">July 4, 2019</time>
		</div></body></html>`)
		require.NoError(t, err)

		assert.Equal(t, "Unintended", got.Title)
		assert.Equal(t, "July 4, 2019", got.Published)
		assert.Contains(t, got.ContentHTML, "<p>The essay.</p>")
		assert.NotContains(t, got.ContentHTML, "entry-content")
	})

	t.Run("missing page container fails", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewConsequencesExtractor()
		_, err := e.Extract(`<html><body><h1>T</h1></body></html>`)
		require.Error(t, err)
		assert.Equal(t, bookbind.ENOTFOUND, bookbind.ErrorCode(err))
	})
}

func TestMorningPaperExtractor(t *testing.T) {
	t.Parallel()

	e := goquery.NewMorningPaperExtractor()
	got, err := e.Extract(`<html><body>
		<h1 class="entry-title">A paper a day</h1>
		<div class="entry-content"><p>Today we look at...</p></div>
	</body></html>`)
	require.NoError(t, err)

	assert.Equal(t, "A paper a day", got.Title)
	assert.Contains(t, got.ContentHTML, "Today we look at...")
}
