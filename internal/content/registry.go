package content

import (
	"sort"

	"github.com/openletters/community/internal/domain"
	"github.com/openletters/community/internal/localstore"
)

// Registry owns every content collection. Each collection is independent;
// only the comment operations touch two collections, and those keep the
// parent's comment count in step with the comment insert.
type Registry struct {
	Articles    *Collection[domain.Article, domain.ArticlePatch]
	Books       *Collection[domain.Book, domain.BookPatch]
	Gallery     *Collection[domain.GalleryImage, domain.GalleryImagePatch]
	Posts       *Collection[domain.ForumPost, domain.ForumPostPatch]
	Documents   *Collection[domain.GameDocument, domain.GameDocumentPatch]
	Courses     *Collection[domain.Course, domain.CoursePatch]
	Conferences *Collection[domain.Conference, domain.ConferencePatch]
	Carousel    *Collection[domain.CarouselSlide, domain.CarouselSlidePatch]

	PostComments     *Collection[domain.Comment, domain.CommentPatch]
	BookComments     *Collection[domain.BookComment, domain.CommentPatch]
	ImageComments    *Collection[domain.ImageComment, domain.CommentPatch]
	DocumentComments *Collection[domain.GameDocumentComment, domain.CommentPatch]

	Reactions *ReactionLedger
	Settings  *SettingsStore
}

// NewRegistry builds the registry pre-filled with the seed fixtures, the way
// a fresh page load starts from the hard-coded placeholder data.
func NewRegistry(store *localstore.Store) *Registry {
	r := &Registry{
		Articles:    NewCollection[domain.Article, domain.ArticlePatch](Prepend, seedArticles()),
		Books:       NewCollection[domain.Book, domain.BookPatch](Append, seedBooks()),
		Gallery:     NewCollection[domain.GalleryImage, domain.GalleryImagePatch](Append, seedGalleryImages()),
		Posts:       NewCollection[domain.ForumPost, domain.ForumPostPatch](Prepend, seedForumPosts()),
		Documents:   NewCollection[domain.GameDocument, domain.GameDocumentPatch](Append, seedGameDocuments()),
		Courses:     NewCollection[domain.Course, domain.CoursePatch](Append, seedCourses()),
		Conferences: NewCollection[domain.Conference, domain.ConferencePatch](Append, seedConferences()),
		Carousel:    NewCollection[domain.CarouselSlide, domain.CarouselSlidePatch](Append, seedCarouselSlides()),

		PostComments:     NewCollection[domain.Comment, domain.CommentPatch](Prepend, seedPostComments()),
		BookComments:     NewCollection[domain.BookComment, domain.CommentPatch](Prepend, seedBookComments()),
		ImageComments:    NewCollection[domain.ImageComment, domain.CommentPatch](Prepend, seedImageComments()),
		DocumentComments: NewCollection[domain.GameDocumentComment, domain.CommentPatch](Prepend, seedDocumentComments()),
	}
	r.Reactions = NewReactionLedger(r.Posts, store)
	r.Settings = NewSettingsStore(store)
	return r
}

// AddPostComment records a comment on a forum post and bumps the post's
// comment count. When the post id does not resolve, nothing is recorded.
func (r *Registry) AddPostComment(c domain.Comment) (domain.Comment, bool) {
	return addComment(r.Posts, c.PostID, r.PostComments, c,
		func(p domain.ForumPost) domain.ForumPost { p.CommentCount++; return p })
}

func (r *Registry) AddBookComment(c domain.BookComment) (domain.BookComment, bool) {
	return addComment(r.Books, c.BookID, r.BookComments, c,
		func(b domain.Book) domain.Book { b.CommentCount++; return b })
}

func (r *Registry) AddImageComment(c domain.ImageComment) (domain.ImageComment, bool) {
	return addComment(r.Gallery, c.ImageID, r.ImageComments, c,
		func(g domain.GalleryImage) domain.GalleryImage { g.CommentCount++; return g })
}

func (r *Registry) AddDocumentComment(c domain.GameDocumentComment) (domain.GameDocumentComment, bool) {
	return addComment(r.Documents, c.DocumentID, r.DocumentComments, c,
		func(d domain.GameDocument) domain.GameDocument { d.CommentCount++; return d })
}

// addComment checks the parent first: the count bump and the insert happen
// together or not at all.
func addComment[T Entity[T, P], P any, C Entity[C, CP], CP any](
	parents *Collection[T, P], parentID string,
	comments *Collection[C, CP], comment C,
	bump func(T) T,
) (C, bool) {
	if !parents.Transform(parentID, bump) {
		var zero C
		return zero, false
	}
	return comments.Add(comment), true
}

// CommentsForPost returns the comments of one post, newest first (the
// collection already grows at the front).
func (r *Registry) CommentsForPost(postID string) []domain.Comment {
	var out []domain.Comment
	for _, c := range r.PostComments.List() {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out
}

func (r *Registry) CommentsForBook(bookID string) []domain.BookComment {
	var out []domain.BookComment
	for _, c := range r.BookComments.List() {
		if c.BookID == bookID {
			out = append(out, c)
		}
	}
	return out
}

func (r *Registry) CommentsForImage(imageID string) []domain.ImageComment {
	var out []domain.ImageComment
	for _, c := range r.ImageComments.List() {
		if c.ImageID == imageID {
			out = append(out, c)
		}
	}
	return out
}

func (r *Registry) CommentsForDocument(documentID string) []domain.GameDocumentComment {
	var out []domain.GameDocumentComment
	for _, c := range r.DocumentComments.List() {
		if c.DocumentID == documentID {
			out = append(out, c)
		}
	}
	return out
}

// PostsByDate is the forum page order: newest first.
func (r *Registry) PostsByDate() []domain.ForumPost {
	posts := r.Posts.List()
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}

// PostsByLikes is the "top posts" order used by the home page ranking.
func (r *Registry) PostsByLikes() []domain.ForumPost {
	posts := r.Posts.List()
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Likes > posts[j].Likes
	})
	return posts
}

// ArticlesByDate is the editorial page order: newest first.
func (r *Registry) ArticlesByDate() []domain.Article {
	articles := r.Articles.List()
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Date.After(articles[j].Date)
	})
	return articles
}

// ConferencesByDate lists recorded talks newest first.
func (r *Registry) ConferencesByDate() []domain.Conference {
	conferences := r.Conferences.List()
	sort.SliceStable(conferences, func(i, j int) bool {
		return conferences[i].Date.After(conferences[j].Date)
	})
	return conferences
}
