package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/openletters/community/internal/auth"
	"github.com/openletters/community/internal/content"
	"github.com/openletters/community/internal/domain"
)

func (s *Server) signInWithProvider(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Provider string `json:"provider"`
	}
	if !decode(w, r, &body) {
		return
	}
	p := auth.Provider(body.Provider)
	if p != auth.ProviderGoogle && p != auth.ProviderFacebook {
		respondError(w, http.StatusBadRequest, "unknown provider")
		return
	}
	respond(w, http.StatusOK, s.auth.SignInWithProvider(r.Context(), p))
}

// signInAsAdmin tries the primary credential pair first, then the secondary
// set. A failed attempt leaves any existing session in place.
func (s *Server) signInAsAdmin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decode(w, r, &body) {
		return
	}
	if !s.auth.SignInAsPrimaryAdmin(r.Context(), body.Email, body.Password) &&
		!s.auth.SignInAsSecondaryAdmin(r.Context(), body.Email, body.Password) {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	respond(w, http.StatusOK, s.auth.Current())
}

func (s *Server) currentSession(w http.ResponseWriter, r *http.Request) {
	sess := s.auth.Current()
	if sess == nil {
		respondError(w, http.StatusNotFound, "no active session")
		return
	}
	respond(w, http.StatusOK, sess)
}

func (s *Server) signOut(w http.ResponseWriter, r *http.Request) {
	s.auth.SignOut()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	var patch domain.ProfilePatch
	if !decode(w, r, &patch) {
		return
	}
	if !s.auth.UpdateProfile(patch) {
		respondError(w, http.StatusUnauthorized, "no active session")
		return
	}
	respond(w, http.StatusOK, s.auth.Current())
}

func (s *Server) listAdmins(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.auth.ListSecondaryAdmins())
}

func (s *Server) addAdmin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decode(w, r, &body) {
		return
	}
	if !s.auth.AddSecondaryAdmin(body.Email, body.Password) {
		respondError(w, http.StatusConflict, "email rejected")
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) removeAdmin(w http.ResponseWriter, r *http.Request) {
	s.auth.RemoveSecondaryAdmin(chi.URLParam(r, "email"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getSettings(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.registry.Settings.Get())
}

func (s *Server) updateSettings(w http.ResponseWriter, r *http.Request) {
	var settings domain.SiteSettings
	if !decode(w, r, &settings) {
		return
	}
	s.registry.Settings.Update(settings)
	respond(w, http.StatusOK, s.registry.Settings.Get())
}

func (s *Server) listPosts(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("sort") {
	case "top":
		respond(w, http.StatusOK, s.registry.PostsByLikes())
	default:
		respond(w, http.StatusOK, s.registry.PostsByDate())
	}
}

func (s *Server) getPost(w http.ResponseWriter, r *http.Request) {
	post, ok := s.registry.Posts.Get(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	respond(w, http.StatusOK, post)
}

// createPost stamps the post with the signed-in user; the client never picks
// the author.
func (s *Server) createPost(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		ImageURL string `json:"imageUrl"`
		Genre    string `json:"genre"`
		Category string `json:"category"`
	}
	if !decode(w, r, &body) {
		return
	}
	if body.Title == "" || body.Content == "" {
		respondError(w, http.StatusBadRequest, "title and content are required")
		return
	}
	sess := s.auth.Current()
	post := s.registry.Posts.Add(domain.ForumPost{
		Title:    body.Title,
		Content:  body.Content,
		ImageURL: body.ImageURL,
		Genre:    body.Genre,
		Category: body.Category,
		Author: domain.Author{
			ID:        sess.UID,
			Name:      sess.DisplayName,
			AvatarURL: sess.PhotoURL,
		},
		CreatedAt: time.Now(),
	})
	respond(w, http.StatusCreated, post)
}

func (s *Server) updatePost(w http.ResponseWriter, r *http.Request) {
	var patch domain.ForumPostPatch
	if !decode(w, r, &patch) {
		return
	}
	id := chi.URLParam(r, "id")
	if !s.registry.Posts.Update(id, patch) {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	post, _ := s.registry.Posts.Get(id)
	respond(w, http.StatusOK, post)
}

func (s *Server) deletePost(w http.ResponseWriter, r *http.Request) {
	s.registry.Posts.Remove(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listPostComments(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.registry.CommentsForPost(chi.URLParam(r, "id")))
}

func (s *Server) createPostComment(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeCommentBody(w, r)
	if !ok {
		return
	}
	comment, ok := s.registry.AddPostComment(domain.Comment{
		PostID:    chi.URLParam(r, "id"),
		Author:    s.sessionAuthor(),
		Content:   body,
		CreatedAt: time.Now(),
	})
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	respond(w, http.StatusCreated, comment)
}

func (s *Server) listBookComments(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.registry.CommentsForBook(chi.URLParam(r, "id")))
}

func (s *Server) createBookComment(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeCommentBody(w, r)
	if !ok {
		return
	}
	comment, ok := s.registry.AddBookComment(domain.BookComment{
		BookID:    chi.URLParam(r, "id"),
		Author:    s.sessionAuthor(),
		Content:   body,
		CreatedAt: time.Now(),
	})
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	respond(w, http.StatusCreated, comment)
}

func (s *Server) listImageComments(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.registry.CommentsForImage(chi.URLParam(r, "id")))
}

func (s *Server) createImageComment(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeCommentBody(w, r)
	if !ok {
		return
	}
	comment, ok := s.registry.AddImageComment(domain.ImageComment{
		ImageID:   chi.URLParam(r, "id"),
		Author:    s.sessionAuthor(),
		Content:   body,
		CreatedAt: time.Now(),
	})
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	respond(w, http.StatusCreated, comment)
}

func (s *Server) listDocumentComments(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.registry.CommentsForDocument(chi.URLParam(r, "id")))
}

func (s *Server) createDocumentComment(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeCommentBody(w, r)
	if !ok {
		return
	}
	comment, ok := s.registry.AddDocumentComment(domain.GameDocumentComment{
		DocumentID: chi.URLParam(r, "id"),
		Author:     s.sessionAuthor(),
		Content:    body,
		CreatedAt:  time.Now(),
	})
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	respond(w, http.StatusCreated, comment)
}

func (s *Server) getReaction(w http.ResponseWriter, r *http.Request) {
	sess := s.auth.Current()
	var kind content.ReactionKind
	if sess != nil {
		kind = s.registry.Reactions.Current(sess.UID, chi.URLParam(r, "id"))
	}
	respond(w, http.StatusOK, map[string]string{"reaction": string(kind)})
}

func (s *Server) react(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Kind string `json:"kind"`
	}
	if !decode(w, r, &body) {
		return
	}
	kind := content.ReactionKind(body.Kind)
	if kind != content.ReactionLike && kind != content.ReactionDislike {
		respondError(w, http.StatusBadRequest, "kind must be like or dislike")
		return
	}
	sess := s.auth.Current()
	post, ok := s.registry.Reactions.React(sess.UID, chi.URLParam(r, "id"), kind)
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	respond(w, http.StatusOK, post)
}

func (s *Server) sessionAuthor() domain.Author {
	sess := s.auth.Current()
	return domain.Author{ID: sess.UID, Name: sess.DisplayName, AvatarURL: sess.PhotoURL}
}

func decodeCommentBody(w http.ResponseWriter, r *http.Request) (string, bool) {
	var body struct {
		Content string `json:"content"`
	}
	if !decode(w, r, &body) {
		return "", false
	}
	if body.Content == "" {
		respondError(w, http.StatusBadRequest, "content is required")
		return "", false
	}
	return body.Content, true
}
