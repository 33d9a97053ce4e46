package content

import (
	"time"

	"github.com/openletters/community/internal/domain"
)

// Seed fixtures. These are the hard-coded values a fresh process serves;
// every restart goes back to them. Comment counts match the seeded comments
// so the count invariant holds from the first request.

func daysAgo(d float64) time.Time {
	return time.Now().Add(-time.Duration(d * 24 * float64(time.Hour)))
}

func seedArticles() []domain.Article {
	return []domain.Article{
		{
			ID:       "1",
			Title:    "The Art of Concise Writing",
			Slug:     "art-of-concise-writing",
			Excerpt:  "How brevity sharpens your message and keeps readers with you.",
			ImageURL: "https://placehold.co/600x400.png",
			Author:   "Site Author",
			Date:     time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
			Content:  "<p>Concise writing is an invaluable skill when attention is scarce. Stating ideas clearly and directly improves communication and respects the reader's time.</p><ul><li>Cut redundant words.</li><li>Prefer active verbs.</li><li>Be specific.</li></ul>",
		},
		{
			ID:       "2",
			Title:    "Why Critical Reading Matters",
			Slug:     "why-critical-reading-matters",
			Excerpt:  "Critical reading shapes thought and builds deep understanding.",
			ImageURL: "https://placehold.co/600x400.png",
			Author:   "Site Author",
			Date:     time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
			Content:  "<p>Critical reading goes beyond decoding words. It means analyzing, evaluating and questioning a text to form an informed judgment.</p>",
		},
		{
			ID:       "3",
			Title:    "Building Communities Through Words",
			Slug:     "building-communities-through-words",
			Excerpt:  "How writing and dialogue bring people together.",
			ImageURL: "https://placehold.co/600x400.png",
			Author:   "Site Author",
			Date:     time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC),
			Content:  "<p>Words build bridges. Online communities form around shared interests, and writing plays the central role: sharing texts and debating ideas strengthens social ties.</p>",
		},
	}
}

func seedBooks() []domain.Book {
	return []domain.Book{
		{ID: "1", Title: "The Labyrinth of Words", CoverURL: "https://placehold.co/300x450.png", Synopsis: "A novel about the power of language and the secrets hidden in old libraries.", Author: "Site Author", CommentCount: 2},
		{ID: "2", Title: "Chronicles of a Devoted Reader", CoverURL: "https://placehold.co/300x450.png", Synopsis: "Essays on the pleasure of reading and the transformative impact of books.", Author: "Site Author", CommentCount: 1},
		{ID: "3", Title: "A Creative Writing Handbook", CoverURL: "https://placehold.co/300x450.png", Synopsis: "A practical guide with exercises and advice to unlock your potential as a writer.", Author: "Site Author", CommentCount: 0},
	}
}

func seedGalleryImages() []domain.GalleryImage {
	return []domain.GalleryImage{
		{
			ID:               "gal1",
			Src:              "https://placehold.co/400x400.png",
			Alt:              "Modern Abstract Sculpture",
			ShortDescription: "An exploration of form and texture in polished metal.",
			LongDescription:  "This abstract sculpture plays with light and shadow to evoke movement and fluidity. Polished curves contrast with sharp edges, inviting contemplation from many angles.",
			CommentCount:     2,
		},
		{
			ID:               "gal2",
			Src:              "https://placehold.co/400x400.png",
			Alt:              "Impressionist Landscape",
			ShortDescription: "Lavender fields under a vivid sunset sky.",
			LongDescription:  "Inspired by the impressionist masters, this painting captures the serene beauty of a lavender field at dusk. Loose brushwork and a warm palette convey a fleeting atmosphere.",
			CommentCount:     1,
		},
		{
			ID:               "gal3",
			Src:              "https://placehold.co/400x400.png",
			Alt:              "Street Portrait in B&W",
			ShortDescription: "The piercing gaze of an old man in a crowded market.",
			LongDescription:  "A black-and-white photograph centered on an old man's expressive gaze, the contrast of light and shadow tracing the lines of a long life.",
			CommentCount:     0,
		},
	}
}

func seedForumPosts() []domain.ForumPost {
	return []domain.ForumPost{
		{
			ID:           "post1",
			Title:        "My first attempt at poetry",
			Content:      "I'd like to share a poem I wrote last night. Constructive criticism welcome!\n\nOn the dark canvas of the night,\nstars flicker, silver beacons.",
			ImageURL:     "https://placehold.co/600x300.png",
			Author:       domain.Author{ID: "user1", Name: "Ana Writer", AvatarURL: "https://placehold.co/50x50.png?text=AW"},
			CreatedAt:    daysAgo(2),
			CommentCount: 3,
			Likes:        78,
			Dislikes:     1,
			Genre:        "Poetry",
			Category:     "Share Poetry",
		},
		{
			ID:           "post2",
			Title:        "Thoughts on One Hundred Years of Solitude",
			Content:      "I just reread this masterpiece and would love to hear what impact it had on you. The way time and family are handled is simply brilliant.",
			Author:       domain.Author{ID: "user2", Name: "Carl Reader", AvatarURL: "https://placehold.co/50x50.png?text=CR"},
			CreatedAt:    daysAgo(1),
			CommentCount: 2,
			Likes:        105,
			Dislikes:     0,
			Genre:        "Magical Realism",
			Category:     "Book Reviews",
		},
		{
			ID:           "post3",
			Title:        "Looking for short-story inspiration",
			Content:      "Hi all, I'm a bit blocked. Do you have techniques for finding short-story ideas? Any advice appreciated.",
			ImageURL:     "https://placehold.co/600x300.png",
			Author:       domain.Author{ID: "user3", Name: "Sofia Creative", AvatarURL: "https://placehold.co/50x50.png?text=SC"},
			CreatedAt:    daysAgo(0.2),
			CommentCount: 2,
			Likes:        55,
			Dislikes:     2,
			Genre:        "Short Story",
			Category:     "Writing Help",
		},
	}
}

func seedPostComments() []domain.Comment {
	return []domain.Comment{
		{ID: "comment1", PostID: "post1", Author: domain.Author{ID: "user2", Name: "Carl Reader"}, Content: "Lovely! I like the silver beacons metaphor.", CreatedAt: daysAgo(1.9)},
		{ID: "comment2", PostID: "post1", Author: domain.Author{ID: "user3", Name: "Sofia Creative"}, Content: "Very calming. Keep writing!", CreatedAt: daysAgo(1.8)},
		{ID: "comment3", PostID: "post1", Author: domain.Author{ID: "user1", Name: "Ana Writer"}, Content: "Thanks both for the encouragement!", CreatedAt: daysAgo(1.7)},
		{ID: "comment4", PostID: "post2", Author: domain.Author{ID: "user1", Name: "Ana Writer"}, Content: "Completely agree, the Buendía saga is unforgettable.", CreatedAt: daysAgo(0.9)},
		{ID: "comment5", PostID: "post2", Author: domain.Author{ID: "user4", Name: "Mark Debater"}, Content: "A book that stays with you. I read it years ago and still remember the feeling.", CreatedAt: daysAgo(0.8)},
		{ID: "comment6", PostID: "post3", Author: domain.Author{ID: "user2", Name: "Carl Reader"}, Content: "I go for a walk and watch people. There's always a story.", CreatedAt: daysAgo(0.05)},
		{ID: "comment7", PostID: "post3", Author: domain.Author{ID: "user1", Name: "Ana Writer"}, Content: "Try creative prompts, like a random word or an image.", CreatedAt: daysAgo(0.1)},
	}
}

func seedBookComments() []domain.BookComment {
	return []domain.BookComment{
		{ID: "bcomment1", BookID: "1", Author: domain.Author{ID: "user2", Name: "Carl Reader"}, Content: "Fascinating book, I couldn't put it down!", CreatedAt: daysAgo(1)},
		{ID: "bcomment2", BookID: "1", Author: domain.Author{ID: "user3", Name: "Sofia Creative"}, Content: "Loved the setting and the mystery. Recommended.", CreatedAt: daysAgo(0.2)},
		{ID: "bcomment3", BookID: "2", Author: domain.Author{ID: "user1", Name: "Ana Writer"}, Content: "A very inspiring collection of essays for any book lover.", CreatedAt: daysAgo(0.5)},
	}
}

func seedImageComments() []domain.ImageComment {
	return []domain.ImageComment{
		{ID: "imgcomm1", ImageID: "gal1", Author: domain.Author{ID: "user1", Name: "Ana Writer"}, Content: "I love how the light plays on this sculpture. So dynamic.", CreatedAt: daysAgo(0.5)},
		{ID: "imgcomm2", ImageID: "gal1", Author: domain.Author{ID: "user2", Name: "Carl Reader"}, Content: "The shapes are really interesting. Invites reflection.", CreatedAt: daysAgo(0.125)},
		{ID: "imgcomm3", ImageID: "gal2", Author: domain.Author{ID: "user3", Name: "Sofia Creative"}, Content: "Such beautiful colors. Takes me straight to Provence.", CreatedAt: daysAgo(0.2)},
	}
}

func seedCarouselSlides() []domain.CarouselSlide {
	return []domain.CarouselSlide{
		{ID: "slide1", ImageURL: "https://placehold.co/1200x600.png", Title: "Explore New Literary Worlds", Description: "Discover fascinating works and emerging authors in our community."},
		{ID: "slide2", ImageURL: "https://placehold.co/1200x600.png", Title: "Share Your Own Creations", Description: "Publish your writing, poems and ideas on our forum.", LinkURL: "/forum/new"},
		{ID: "slide3", ImageURL: "https://placehold.co/1200x600.png", Title: "Connect with Fellow Readers", Description: "Join debates, give feedback and make new friends.", LinkURL: "/forum"},
	}
}

func seedCourses() []domain.Course {
	return []domain.Course{
		{
			ID:           "course1",
			Title:        "Creative Writing: Unlock Your Potential",
			Description:  "A complete course to develop your narrative skills, build memorable characters and find your voice.",
			ImageURL:     "https://placehold.co/600x400.png",
			PurchaseLink: "https://courses.example.com/products/000001",
			Tags:         []string{"Writing", "Creativity", "Narrative"},
		},
		{
			ID:           "course2",
			Title:        "The Craft of the Novel: From Idea to Publication",
			Description:  "Learn the step-by-step process to plan, write and revise a novel, with publishing advice.",
			ImageURL:     "https://placehold.co/600x400.png",
			PurchaseLink: "https://courses.example.com/products/000002",
			Tags:         []string{"Novel", "Writing", "Publishing"},
		},
	}
}

func seedGameDocuments() []domain.GameDocument {
	return []domain.GameDocument{
		{
			ID:              "game1",
			Title:           "Text Adventure: The Lighthouse Mystery",
			Description:     "A text-based adventure where you solve riddles to uncover the secrets of an abandoned lighthouse.",
			LongDescription: "Dive into an interactive adventure on a storm-battered remote island. Solve puzzles, examine clues and make choices that decide your fate. The PDF guides you through the narrative with multiple paths and endings.",
			CoverImageURL:   "https://placehold.co/400x300.png",
			PDFURL:          "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf",
			PDFFileName:     "lighthouse_mystery_adventure.pdf",
			CommentCount:    2,
		},
		{
			ID:              "game2",
			Title:           "Fantasy Worldbuilding Guide",
			Description:     "Exercises and templates to build detailed, coherent fantasy worlds for your stories or tabletop games.",
			LongDescription: "Design the geography, history, cultures, creatures and magic systems of your own world, with templates and practical exercises. Ideal for storytellers, fiction writers and game masters.",
			CoverImageURL:   "https://placehold.co/400x300.png",
			PDFURL:          "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf",
			PDFFileName:     "fantasy_worldbuilding_guide.pdf",
			CommentCount:    1,
		},
	}
}

func seedDocumentComments() []domain.GameDocumentComment {
	return []domain.GameDocumentComment{
		{ID: "gamedoccomm1", DocumentID: "game1", Author: domain.Author{ID: "user1", Name: "Ana Writer"}, Content: "The lighthouse game is so intriguing! Hooked me to the end.", CreatedAt: daysAgo(0.3)},
		{ID: "gamedoccomm2", DocumentID: "game1", Author: domain.Author{ID: "user2", Name: "Carl Reader"}, Content: "Got a bit lost in the chapter-two riddles, but very good.", CreatedAt: daysAgo(0.08)},
		{ID: "gamedoccomm3", DocumentID: "game2", Author: domain.Author{ID: "user3", Name: "Sofia Creative"}, Content: "The worldbuilding guide is super useful. Already using the templates.", CreatedAt: daysAgo(0.1)},
	}
}

func seedConferences() []domain.Conference {
	return []domain.Conference{
		{
			ID:           "conf1",
			Title:        "The Future of Digital Narrative",
			Description:  "A talk on how new technologies are transforming the way we tell and experience stories.",
			VideoURL:     "https://www.youtube.com/embed/VIDEO_ID_1",
			ThumbnailURL: "https://placehold.co/600x338.png",
			Date:         time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "conf2",
			Title:        "The Psychology of Fictional Characters",
			Description:  "A deep dive into building complex, believable characters that resonate with an audience.",
			VideoURL:     "https://www.youtube.com/embed/VIDEO_ID_2",
			ThumbnailURL: "https://placehold.co/600x338.png",
			Date:         time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		},
	}
}
