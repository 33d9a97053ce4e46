package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openletters/community/internal/domain"
	"github.com/openletters/community/internal/localstore"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return NewRegistry(localstore.Open("", nil))
}

func TestRegistry_SeedCountsMatchSeedComments(t *testing.T) {
	r := newTestRegistry(t)

	for _, post := range r.Posts.List() {
		assert.Equal(t, post.CommentCount, len(r.CommentsForPost(post.ID)), "post %s", post.ID)
	}
	for _, book := range r.Books.List() {
		assert.Equal(t, book.CommentCount, len(r.CommentsForBook(book.ID)), "book %s", book.ID)
	}
	for _, img := range r.Gallery.List() {
		assert.Equal(t, img.CommentCount, len(r.CommentsForImage(img.ID)), "image %s", img.ID)
	}
	for _, doc := range r.Documents.List() {
		assert.Equal(t, doc.CommentCount, len(r.CommentsForDocument(doc.ID)), "document %s", doc.ID)
	}
}

func TestAddPostComment_BumpsCountByExactlyOne(t *testing.T) {
	r := newTestRegistry(t)

	before, ok := r.Posts.Get("post1")
	require.True(t, ok)

	comment, ok := r.AddPostComment(domain.Comment{
		PostID:  "post1",
		Author:  domain.Author{ID: "user9", Name: "New Voice"},
		Content: "What a poem!",
	})
	require.True(t, ok)
	assert.NotEmpty(t, comment.ID)

	after, ok := r.Posts.Get("post1")
	require.True(t, ok)
	assert.Equal(t, before.CommentCount+1, after.CommentCount)

	// New comments land at the front of the thread.
	comments := r.CommentsForPost("post1")
	require.NotEmpty(t, comments)
	assert.Equal(t, comment.ID, comments[0].ID)
}

func TestAddPostComment_MissingParentRecordsNothing(t *testing.T) {
	r := newTestRegistry(t)
	total := r.PostComments.Len()

	_, ok := r.AddPostComment(domain.Comment{PostID: "no-such-post", Content: "lost"})
	assert.False(t, ok)
	assert.Equal(t, total, r.PostComments.Len())
}

func TestAddCommentVariants(t *testing.T) {
	r := newTestRegistry(t)

	bc, ok := r.AddBookComment(domain.BookComment{BookID: "3", Content: "Just finished it."})
	require.True(t, ok)
	assert.NotEmpty(t, bc.ID)
	book, _ := r.Books.Get("3")
	assert.Equal(t, 1, book.CommentCount)

	ic, ok := r.AddImageComment(domain.ImageComment{ImageID: "gal3", Content: "Striking portrait."})
	require.True(t, ok)
	assert.NotEmpty(t, ic.ID)
	img, _ := r.Gallery.Get("gal3")
	assert.Equal(t, 1, img.CommentCount)

	dc, ok := r.AddDocumentComment(domain.GameDocumentComment{DocumentID: "game2", Content: "Great templates."})
	require.True(t, ok)
	assert.NotEmpty(t, dc.ID)
	doc, _ := r.Documents.Get("game2")
	assert.Equal(t, 2, doc.CommentCount)
}

func TestRemovePost_DoesNotCascadeToComments(t *testing.T) {
	// Known gap carried over from the source: deleting a parent leaves its
	// comments in place, addressable only by direct id.
	r := newTestRegistry(t)

	orphans := r.CommentsForPost("post1")
	require.NotEmpty(t, orphans)

	require.True(t, r.Posts.Remove("post1"))
	_, ok := r.Posts.Get("post1")
	require.False(t, ok)

	assert.Len(t, r.CommentsForPost("post1"), len(orphans))
	_, ok = r.PostComments.Get(orphans[0].ID)
	assert.True(t, ok)
}

func TestPostsByDateAndByLikes(t *testing.T) {
	r := newTestRegistry(t)

	byDate := r.PostsByDate()
	require.Len(t, byDate, 3)
	for i := 1; i < len(byDate); i++ {
		assert.False(t, byDate[i-1].CreatedAt.Before(byDate[i].CreatedAt))
	}

	byLikes := r.PostsByLikes()
	require.Len(t, byLikes, 3)
	for i := 1; i < len(byLikes); i++ {
		assert.GreaterOrEqual(t, byLikes[i-1].Likes, byLikes[i].Likes)
	}
}

func TestArticlesAndConferencesByDate(t *testing.T) {
	r := newTestRegistry(t)

	articles := r.ArticlesByDate()
	require.NotEmpty(t, articles)
	for i := 1; i < len(articles); i++ {
		assert.False(t, articles[i-1].Date.Before(articles[i].Date))
	}

	conferences := r.ConferencesByDate()
	require.NotEmpty(t, conferences)
	for i := 1; i < len(conferences); i++ {
		assert.False(t, conferences[i-1].Date.Before(conferences[i].Date))
	}
}

func TestSettings_DefaultsAndUpdate(t *testing.T) {
	store := localstore.Open(t.TempDir(), nil)
	r := NewRegistry(store)

	got := r.Settings.Get()
	assert.Equal(t, domain.DefaultSiteSettings(), got)

	got.SiteTitle = "Renamed Site"
	got.PrimaryColor = "0 72% 51%"
	r.Settings.Update(got)

	// A new registry over the same store sees the saved settings.
	again := NewRegistry(store)
	assert.Equal(t, "Renamed Site", again.Settings.Get().SiteTitle)
	assert.Equal(t, "0 72% 51%", again.Settings.Get().PrimaryColor)
}
