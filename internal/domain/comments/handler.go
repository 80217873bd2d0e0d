package comments

import (
	"net/http"
	"time"

	"faunagram/internal/domain/authz"
	"faunagram/internal/middleware"
	"faunagram/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/comments", func(cr chi.Router) {
		cr.Get("/", listCommentsHandler(svc))
		cr.With(middleware.RequireAuth).Post("/", createCommentHandler(svc))

		cr.Get("/{commentID}", getCommentHandler(svc))
		cr.With(middleware.RequireAuth).Put("/{commentID}", updateCommentHandler(svc))
		cr.With(middleware.RequireAuth).Delete("/{commentID}", deleteCommentHandler(svc))

		// replies: comentarios cuyo commentable es otro comment
		cr.Get("/{commentID}/comments", repliesHandler(svc))
	})
}

// Response es la vista pública de un comment. Exportada porque users y
// sightings también listan comentarios de sus recursos.
type Response struct {
	ID              string    `json:"id"`
	Body            string    `json:"body"`
	CommentableType string    `json:"commentable_type"`
	CommentableID   string    `json:"commentable_id"`
	UserID          string    `json:"user_id"`
	Username        *string   `json:"username"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToResponse(c Comment) Response {
	resp := Response{
		ID:              c.ID,
		Body:            c.Body,
		CommentableType: string(c.CommentableType),
		CommentableID:   c.CommentableID,
		UserID:          c.UserID,
		CreatedAt:       c.CreatedAt,
	}
	if c.Username != "" {
		resp.Username = &c.Username
	}
	return resp
}

func ToResponses(items []Comment) []Response {
	out := make([]Response, 0, len(items))
	for _, c := range items {
		out = append(out, ToResponse(c))
	}
	return out
}

type createCommentRequest struct {
	Body            string `json:"body"`
	CommentableType string `json:"commentable_type"`
	CommentableID   string `json:"commentable_id"`
	Username        string `json:"username"`
}

type updateCommentRequest struct {
	Body string `json:"body"`
}

func listCommentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		items, err := svc.List(r.Context(), q.Get("commentable_type"), q.Get("commentable_id"))
		switch err {
		case nil:
		case ErrUnknownTarget:
			httpjson.WriteError(w, http.StatusBadRequest, "Invalid commentable_type")
			return
		default:
			httpjson.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		httpjson.WriteJSON(w, http.StatusOK, ToResponses(items))
	}
}

func createCommentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req createCommentRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "Body, commentable_type, and commentable_id are required")
			return
		}

		c, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Body:            req.Body,
			CommentableType: req.CommentableType,
			CommentableID:   req.CommentableID,
			Username:        req.Username,
		})
		switch err {
		case nil:
		case ErrInvalidInput:
			httpjson.WriteError(w, http.StatusBadRequest, "Body, commentable_type, and commentable_id are required")
			return
		case ErrUnknownTarget:
			httpjson.WriteError(w, http.StatusBadRequest, "Invalid commentable_type")
			return
		default:
			httpjson.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		httpjson.WriteJSON(w, http.StatusCreated, ToResponse(c))
	}
}

func getCommentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "commentID"))
		if err != nil {
			httpjson.WriteError(w, http.StatusNotFound, "Comment not found")
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, ToResponse(c))
	}
}

func updateCommentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		commentID := chi.URLParam(r, "commentID")

		switch authz.RequireOwner(r.Context(), svc.OwnerOf, commentID, claims.UserID) {
		case nil:
		case authz.ErrNotFound:
			httpjson.WriteError(w, http.StatusNotFound, "Comment not found")
			return
		default:
			httpjson.WriteError(w, http.StatusForbidden, "You are not authorized to update this comment")
			return
		}

		var req updateCommentRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		c, err := svc.UpdateBody(r.Context(), commentID, req.Body)
		switch err {
		case nil:
		case ErrInvalidInput:
			httpjson.WriteError(w, http.StatusBadRequest, "Body is required")
			return
		case ErrNotFound:
			httpjson.WriteError(w, http.StatusNotFound, "Comment not found")
			return
		default:
			httpjson.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		httpjson.WriteJSON(w, http.StatusOK, ToResponse(c))
	}
}

func deleteCommentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		commentID := chi.URLParam(r, "commentID")

		switch authz.RequireOwner(r.Context(), svc.OwnerOf, commentID, claims.UserID) {
		case nil:
		case authz.ErrNotFound:
			httpjson.WriteError(w, http.StatusNotFound, "Comment not found")
			return
		default:
			httpjson.WriteError(w, http.StatusForbidden, "You are not authorized to delete this comment")
			return
		}

		if err := svc.Delete(r.Context(), commentID); err != nil {
			httpjson.WriteError(w, http.StatusNotFound, "Comment not found")
			return
		}

		httpjson.WriteJSON(w, http.StatusOK, map[string]string{"message": "Comment deleted"})
	}
}

func repliesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByTarget(r.Context(), TargetComment, chi.URLParam(r, "commentID"))
		if err != nil {
			httpjson.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, ToResponses(items))
	}
}
