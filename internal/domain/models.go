package domain

import "time"

// Session is the single active user of the process. At most one exists at a
// time; it is created by a sign-in, mutated by a profile update and destroyed
// by a sign-out.
type Session struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
	Description string `json:"description"`
	IsAdmin     bool   `json:"isAdmin"`
}

// AdminCredential is one entry of the secondary administrator set, keyed by
// email. The password is stored only as a bcrypt hash.
type AdminCredential struct {
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// Author identifies who wrote a forum post or comment.
type Author struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// ProfilePatch carries the fields a user may change on their own session.
type ProfilePatch struct {
	DisplayName *string `json:"displayName,omitempty"`
	PhotoURL    *string `json:"photoURL,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Article is a long-form editorial piece.
type Article struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Slug     string    `json:"slug"`
	Excerpt  string    `json:"excerpt"`
	ImageURL string    `json:"imageUrl,omitempty"`
	Author   string    `json:"author"`
	Date     time.Time `json:"date"`
	Content  string    `json:"content,omitempty"`
}

type ArticlePatch struct {
	Title    *string    `json:"title,omitempty"`
	Slug     *string    `json:"slug,omitempty"`
	Excerpt  *string    `json:"excerpt,omitempty"`
	ImageURL *string    `json:"imageUrl,omitempty"`
	Author   *string    `json:"author,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
	Content  *string    `json:"content,omitempty"`
}

func (a Article) EntityID() string               { return a.ID }
func (a Article) WithEntityID(id string) Article { a.ID = id; return a }
func (a Article) ApplyPatch(p ArticlePatch) Article {
	setString(&a.Title, p.Title)
	setString(&a.Slug, p.Slug)
	setString(&a.Excerpt, p.Excerpt)
	setString(&a.ImageURL, p.ImageURL)
	setString(&a.Author, p.Author)
	setTime(&a.Date, p.Date)
	setString(&a.Content, p.Content)
	return a
}

// Book is a published work presented with a synopsis and a comment thread.
type Book struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	CoverURL     string `json:"coverUrl"`
	Synopsis     string `json:"synopsis"`
	Author       string `json:"author"`
	CommentCount int    `json:"commentCount"`
}

type BookPatch struct {
	Title    *string `json:"title,omitempty"`
	CoverURL *string `json:"coverUrl,omitempty"`
	Synopsis *string `json:"synopsis,omitempty"`
	Author   *string `json:"author,omitempty"`
}

func (b Book) EntityID() string            { return b.ID }
func (b Book) WithEntityID(id string) Book { b.ID = id; return b }
func (b Book) ApplyPatch(p BookPatch) Book {
	setString(&b.Title, p.Title)
	setString(&b.CoverURL, p.CoverURL)
	setString(&b.Synopsis, p.Synopsis)
	setString(&b.Author, p.Author)
	return b
}

// GalleryImage is one entry of the media gallery.
type GalleryImage struct {
	ID               string `json:"id"`
	Src              string `json:"src"`
	Alt              string `json:"alt"`
	ShortDescription string `json:"shortDescription"`
	LongDescription  string `json:"longDescription"`
	CommentCount     int    `json:"commentCount"`
}

type GalleryImagePatch struct {
	Src              *string `json:"src,omitempty"`
	Alt              *string `json:"alt,omitempty"`
	ShortDescription *string `json:"shortDescription,omitempty"`
	LongDescription  *string `json:"longDescription,omitempty"`
}

func (g GalleryImage) EntityID() string                    { return g.ID }
func (g GalleryImage) WithEntityID(id string) GalleryImage { g.ID = id; return g }
func (g GalleryImage) ApplyPatch(p GalleryImagePatch) GalleryImage {
	setString(&g.Src, p.Src)
	setString(&g.Alt, p.Alt)
	setString(&g.ShortDescription, p.ShortDescription)
	setString(&g.LongDescription, p.LongDescription)
	return g
}

// ForumPost is user-generated; likes and dislikes are aggregate counters kept
// consistent with the per-user reaction ledger.
type ForumPost struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Author       Author    `json:"author"`
	CreatedAt    time.Time `json:"createdAt"`
	CommentCount int       `json:"commentCount"`
	Likes        int       `json:"likes"`
	Dislikes     int       `json:"dislikes"`
	Genre        string    `json:"genre,omitempty"`
	Category     string    `json:"category,omitempty"`
}

type ForumPostPatch struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
	Genre    *string `json:"genre,omitempty"`
	Category *string `json:"category,omitempty"`
}

func (f ForumPost) EntityID() string                 { return f.ID }
func (f ForumPost) WithEntityID(id string) ForumPost { f.ID = id; return f }
func (f ForumPost) ApplyPatch(p ForumPostPatch) ForumPost {
	setString(&f.Title, p.Title)
	setString(&f.Content, p.Content)
	setString(&f.ImageURL, p.ImageURL)
	setString(&f.Genre, p.Genre)
	setString(&f.Category, p.Category)
	return f
}

// GameDocument is a downloadable PDF resource.
type GameDocument struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	LongDescription string `json:"longDescription,omitempty"`
	CoverImageURL   string `json:"coverImageUrl"`
	PDFURL          string `json:"pdfUrl"`
	PDFFileName     string `json:"pdfFileName,omitempty"`
	CommentCount    int    `json:"commentCount"`
}

type GameDocumentPatch struct {
	Title           *string `json:"title,omitempty"`
	Description     *string `json:"description,omitempty"`
	LongDescription *string `json:"longDescription,omitempty"`
	CoverImageURL   *string `json:"coverImageUrl,omitempty"`
	PDFURL          *string `json:"pdfUrl,omitempty"`
	PDFFileName     *string `json:"pdfFileName,omitempty"`
}

func (d GameDocument) EntityID() string                    { return d.ID }
func (d GameDocument) WithEntityID(id string) GameDocument { d.ID = id; return d }
func (d GameDocument) ApplyPatch(p GameDocumentPatch) GameDocument {
	setString(&d.Title, p.Title)
	setString(&d.Description, p.Description)
	setString(&d.LongDescription, p.LongDescription)
	setString(&d.CoverImageURL, p.CoverImageURL)
	setString(&d.PDFURL, p.PDFURL)
	setString(&d.PDFFileName, p.PDFFileName)
	return d
}

// Course is an externally purchasable course.
type Course struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	PurchaseLink string   `json:"purchaseLink"`
	Tags         []string `json:"tags,omitempty"`
}

type CoursePatch struct {
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	ImageURL     *string   `json:"imageUrl,omitempty"`
	PurchaseLink *string   `json:"purchaseLink,omitempty"`
	Tags         *[]string `json:"tags,omitempty"`
}

func (c Course) EntityID() string              { return c.ID }
func (c Course) WithEntityID(id string) Course { c.ID = id; return c }
func (c Course) ApplyPatch(p CoursePatch) Course {
	setString(&c.Title, p.Title)
	setString(&c.Description, p.Description)
	setString(&c.ImageURL, p.ImageURL)
	setString(&c.PurchaseLink, p.PurchaseLink)
	if p.Tags != nil {
		c.Tags = append([]string(nil), (*p.Tags)...)
	}
	return c
}

// Conference is a recorded talk.
type Conference struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoURL     string    `json:"videoUrl"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Date         time.Time `json:"date"`
}

type ConferencePatch struct {
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	VideoURL     *string    `json:"videoUrl,omitempty"`
	ThumbnailURL *string    `json:"thumbnailUrl,omitempty"`
	Date         *time.Time `json:"date,omitempty"`
}

func (c Conference) EntityID() string                  { return c.ID }
func (c Conference) WithEntityID(id string) Conference { c.ID = id; return c }
func (c Conference) ApplyPatch(p ConferencePatch) Conference {
	setString(&c.Title, p.Title)
	setString(&c.Description, p.Description)
	setString(&c.VideoURL, p.VideoURL)
	setString(&c.ThumbnailURL, p.ThumbnailURL)
	setTime(&c.Date, p.Date)
	return c
}

// CarouselSlide is one slide of the home page carousel.
type CarouselSlide struct {
	ID          string `json:"id"`
	ImageURL    string `json:"imageUrl"`
	Title       string `json:"title"`
	Description string `json:"description"`
	LinkURL     string `json:"linkUrl,omitempty"`
}

type CarouselSlidePatch struct {
	ImageURL    *string `json:"imageUrl,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	LinkURL     *string `json:"linkUrl,omitempty"`
}

func (s CarouselSlide) EntityID() string                     { return s.ID }
func (s CarouselSlide) WithEntityID(id string) CarouselSlide { s.ID = id; return s }
func (s CarouselSlide) ApplyPatch(p CarouselSlidePatch) CarouselSlide {
	setString(&s.ImageURL, p.ImageURL)
	setString(&s.Title, p.Title)
	setString(&s.Description, p.Description)
	setString(&s.LinkURL, p.LinkURL)
	return s
}

// CommentPatch applies to every comment kind.
type CommentPatch struct {
	Content *string `json:"content,omitempty"`
}

// Comment belongs to a forum post.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Author    Author    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c Comment) EntityID() string               { return c.ID }
func (c Comment) WithEntityID(id string) Comment { c.ID = id; return c }
func (c Comment) ApplyPatch(p CommentPatch) Comment {
	setString(&c.Content, p.Content)
	return c
}

// BookComment belongs to a book.
type BookComment struct {
	ID        string    `json:"id"`
	BookID    string    `json:"bookId"`
	Author    Author    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c BookComment) EntityID() string                   { return c.ID }
func (c BookComment) WithEntityID(id string) BookComment { c.ID = id; return c }
func (c BookComment) ApplyPatch(p CommentPatch) BookComment {
	setString(&c.Content, p.Content)
	return c
}

// ImageComment belongs to a gallery image.
type ImageComment struct {
	ID        string    `json:"id"`
	ImageID   string    `json:"imageId"`
	Author    Author    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c ImageComment) EntityID() string                    { return c.ID }
func (c ImageComment) WithEntityID(id string) ImageComment { c.ID = id; return c }
func (c ImageComment) ApplyPatch(p CommentPatch) ImageComment {
	setString(&c.Content, p.Content)
	return c
}

// GameDocumentComment belongs to a game document.
type GameDocumentComment struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"documentId"`
	Author     Author    `json:"author"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (c GameDocumentComment) EntityID() string { return c.ID }
func (c GameDocumentComment) WithEntityID(id string) GameDocumentComment {
	c.ID = id
	return c
}
func (c GameDocumentComment) ApplyPatch(p CommentPatch) GameDocumentComment {
	setString(&c.Content, p.Content)
	return c
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setTime(dst *time.Time, src *time.Time) {
	if src != nil {
		*dst = *src
	}
}
