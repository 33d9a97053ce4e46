package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openletters/community/internal/domain"
)

func TestCollection_AddAssignsUniqueIDs(t *testing.T) {
	c := NewCollection[domain.CarouselSlide, domain.CarouselSlidePatch](Append, nil)

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		slide := c.Add(domain.CarouselSlide{Title: "slide"})
		require.NotEmpty(t, slide.ID)
		assert.False(t, seen[slide.ID], "id %s assigned twice", slide.ID)
		seen[slide.ID] = true
	}
	assert.Equal(t, 10, c.Len())
}

func TestCollection_Placement(t *testing.T) {
	appendCol := NewCollection[domain.CarouselSlide, domain.CarouselSlidePatch](Append, nil)
	first := appendCol.Add(domain.CarouselSlide{Title: "first"})
	second := appendCol.Add(domain.CarouselSlide{Title: "second"})
	items := appendCol.List()
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)

	prependCol := NewCollection[domain.ForumPost, domain.ForumPostPatch](Prepend, nil)
	older := prependCol.Add(domain.ForumPost{Title: "older"})
	newer := prependCol.Add(domain.ForumPost{Title: "newer"})
	posts := prependCol.List()
	require.Len(t, posts, 2)
	assert.Equal(t, newer.ID, posts[0].ID)
	assert.Equal(t, older.ID, posts[1].ID)
}

func TestCollection_UpdateMergesPatchInPlace(t *testing.T) {
	c := NewCollection[domain.Article, domain.ArticlePatch](Append, seedArticles())

	before, ok := c.Get("2")
	require.True(t, ok)

	title := "A Revised Title"
	require.True(t, c.Update("2", domain.ArticlePatch{Title: &title}))

	items := c.List()
	require.Len(t, items, 3)
	// Same position, same untouched fields, new title.
	assert.Equal(t, "2", items[1].ID)
	assert.Equal(t, "A Revised Title", items[1].Title)
	assert.Equal(t, before.Excerpt, items[1].Excerpt)
	assert.Equal(t, before.Date, items[1].Date)
}

func TestCollection_UpdateMissingIsNoop(t *testing.T) {
	c := NewCollection[domain.Article, domain.ArticlePatch](Append, seedArticles())
	title := "ghost"
	assert.False(t, c.Update("does-not-exist", domain.ArticlePatch{Title: &title}))
	assert.Equal(t, 3, c.Len())
}

func TestCollection_Remove(t *testing.T) {
	c := NewCollection[domain.Book, domain.BookPatch](Append, seedBooks())

	require.True(t, c.Remove("2"))
	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("2")
	assert.False(t, ok)

	// Absent id is a no-op, not an error.
	assert.False(t, c.Remove("2"))
	assert.Equal(t, 2, c.Len())
}
