// Package server exposes the session store and content registry as a JSON
// API. It is the stand-in for the original rendering layer: reads are public,
// forum writes need a session, curation needs an admin.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"

	"github.com/openletters/community/internal/auth"
	"github.com/openletters/community/internal/content"
)

type Server struct {
	auth     *auth.Service
	registry *content.Registry
	logger   *zap.Logger
}

func New(authSvc *auth.Service, registry *content.Registry, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{auth: authSvc, registry: registry, logger: logger}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}).Handler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/provider", s.signInWithProvider)
			r.Post("/admin", s.signInAsAdmin)
			r.Get("/session", s.currentSession)
			r.Delete("/session", s.signOut)
			r.With(s.requireSession).Patch("/profile", s.updateProfile)
		})

		r.Route("/admins", func(r chi.Router) {
			r.Use(s.requireAdmin)
			r.Get("/", s.listAdmins)
			r.Post("/", s.addAdmin)
			r.Delete("/{email}", s.removeAdmin)
		})

		r.Get("/settings", s.getSettings)
		r.With(s.requireAdmin).Put("/settings", s.updateSettings)

		registerResource(r, s, "/articles", s.registry.Articles, s.registry.ArticlesByDate)
		registerResource(r, s, "/books", s.registry.Books, s.registry.Books.List, func(r chi.Router) {
			r.Get("/{id}/comments", s.listBookComments)
			r.With(s.requireSession).Post("/{id}/comments", s.createBookComment)
		})
		registerResource(r, s, "/gallery", s.registry.Gallery, s.registry.Gallery.List, func(r chi.Router) {
			r.Get("/{id}/comments", s.listImageComments)
			r.With(s.requireSession).Post("/{id}/comments", s.createImageComment)
		})
		registerResource(r, s, "/games", s.registry.Documents, s.registry.Documents.List, func(r chi.Router) {
			r.Get("/{id}/comments", s.listDocumentComments)
			r.With(s.requireSession).Post("/{id}/comments", s.createDocumentComment)
		})
		registerResource(r, s, "/courses", s.registry.Courses, s.registry.Courses.List)
		registerResource(r, s, "/conferences", s.registry.Conferences, s.registry.ConferencesByDate)
		registerResource(r, s, "/carousel", s.registry.Carousel, s.registry.Carousel.List)

		r.Route("/forum/posts", func(r chi.Router) {
			r.Get("/", s.listPosts)
			r.With(s.requireSession).Post("/", s.createPost)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.getPost)
				r.With(s.requireAdmin).Patch("/", s.updatePost)
				r.With(s.requireAdmin).Delete("/", s.deletePost)
				r.Get("/comments", s.listPostComments)
				r.With(s.requireSession).Post("/comments", s.createPostComment)
				r.Get("/reactions", s.getReaction)
				r.With(s.requireSession).Post("/reactions", s.react)
			})
		})
	})

	return r
}

// registerResource wires the shared list/get/add/update/remove contract for
// one admin-curated collection. The list function decides the page order;
// extra route sets (comment threads) hang off the same subrouter.
func registerResource[T content.Entity[T, P], P any](r chi.Router, s *Server, path string, col *content.Collection[T, P], list func() []T, extra ...func(chi.Router)) {
	r.Route(path, func(r chi.Router) {
		for _, register := range extra {
			register(r)
		}
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			respond(w, http.StatusOK, list())
		})
		r.Get("/{id}", func(w http.ResponseWriter, req *http.Request) {
			item, ok := col.Get(chi.URLParam(req, "id"))
			if !ok {
				respondError(w, http.StatusNotFound, "not found")
				return
			}
			respond(w, http.StatusOK, item)
		})
		r.With(s.requireAdmin).Post("/", func(w http.ResponseWriter, req *http.Request) {
			var item T
			if !decode(w, req, &item) {
				return
			}
			respond(w, http.StatusCreated, col.Add(item))
		})
		r.With(s.requireAdmin).Patch("/{id}", func(w http.ResponseWriter, req *http.Request) {
			var patch P
			if !decode(w, req, &patch) {
				return
			}
			id := chi.URLParam(req, "id")
			if !col.Update(id, patch) {
				respondError(w, http.StatusNotFound, "not found")
				return
			}
			item, _ := col.Get(id)
			respond(w, http.StatusOK, item)
		})
		r.With(s.requireAdmin).Delete("/{id}", func(w http.ResponseWriter, req *http.Request) {
			col.Remove(chi.URLParam(req, "id"))
			w.WriteHeader(http.StatusNoContent)
		})
	})
}

// requireSession rejects anonymous mutation attempts.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.auth.Current() == nil {
			respondError(w, http.StatusUnauthorized, "sign in first")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAdmin rejects anything but an admin session.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := s.auth.Current()
		if sess == nil {
			respondError(w, http.StatusUnauthorized, "sign in first")
			return
		}
		if !sess.IsAdmin {
			respondError(w, http.StatusForbidden, "admin only")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)))
	})
}

func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respond(w, status, map[string]string{"error": msg})
}

// decode rejects malformed or unknown-field bodies up front; this is the one
// place where a bad request surfaces as an error rather than a silent no-op.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
