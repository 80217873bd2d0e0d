package sightings

import (
	"net/http"
	"time"

	"faunagram/internal/domain/animals"
	"faunagram/internal/domain/authz"
	"faunagram/internal/domain/comments"
	"faunagram/internal/domain/users"
	"faunagram/internal/middleware"
	"faunagram/internal/platform/httpjson"
	"faunagram/internal/platform/logger"
	"faunagram/internal/platform/storagekey"
	"faunagram/internal/ports/blob"

	"github.com/go-chi/chi/v5"
)

const imagePrefix = "sightings/"

// Deps agrupa los servicios vecinos que enriquecen la vista de un
// sighting (autor, animal, cantidad de comentarios).
type Deps struct {
	Users    *users.Service
	Animals  *animals.Service
	Comments *comments.Service
	Bucket   blob.Bucket
	Log      logger.Logger
}

func RegisterRoutes(r chi.Router, svc *Service, deps Deps) {
	r.Route("/sightings", func(sr chi.Router) {
		sr.Get("/", listSightingsHandler(svc, deps))
		sr.With(middleware.RequireAuth).Post("/", createSightingHandler(svc, deps))

		sr.Get("/{sightingID}", getSightingHandler(svc, deps))
		sr.With(middleware.RequireAuth).Put("/{sightingID}", updateSightingHandler(svc, deps))
		sr.With(middleware.RequireAuth).Delete("/{sightingID}", deleteSightingHandler(svc))
		sr.With(middleware.RequireAuth).Put("/{sightingID}/image_upload", imageUploadHandler(svc, deps))

		sr.Get("/{sightingID}/comments", sightingCommentsHandler(deps))
	})
}

type userSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type sightingResponse struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Body          string           `json:"body"`
	UserID        string           `json:"user_id"`
	AnimalID      string           `json:"animal_id"`
	Likes         int              `json:"likes"`
	ImageURL      *string          `json:"image_url"`
	CreatedAt     time.Time        `json:"created_at"`
	User          *userSummary     `json:"user"`
	Animal        *animals.Summary `json:"animal"`
	CommentsCount int              `json:"comments_count"`
}

type createSightingRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	AnimalID string `json:"animal_id"`
	Likes    int    `json:"likes"`
}

type updateSightingRequest struct {
	// Punteros para update parcial. user_id y animal_id son inmutables
	// y se ignoran si vienen en el body.
	Title *string `json:"title"`
	Body  *string `json:"body"`
	Likes *int    `json:"likes"`
}

// toSightingResponse enriquece el registro con autor, animal y conteo
// de comentarios. Las referencias rotas degradan a null, nunca a error:
// un sighting cuyo autor se borró sigue siendo listable.
func toSightingResponse(r *http.Request, sg Sighting, deps Deps) sightingResponse {
	ctx := r.Context()

	resp := sightingResponse{
		ID:        sg.ID,
		Title:     sg.Title,
		Body:      sg.Body,
		UserID:    sg.UserID,
		AnimalID:  sg.AnimalID,
		Likes:     sg.Likes,
		CreatedAt: sg.CreatedAt,
	}

	if sg.ImagePath != "" && deps.Bucket != nil {
		url := deps.Bucket.PublicURL(imagePrefix + sg.ImagePath)
		resp.ImageURL = &url
	}

	if deps.Users != nil {
		if u, err := deps.Users.GetByID(ctx, sg.UserID); err == nil {
			resp.User = &userSummary{ID: u.ID, Username: u.Username, Name: u.Name}
		}
	}

	if deps.Animals != nil {
		if a, err := deps.Animals.GetByID(ctx, sg.AnimalID); err == nil {
			s := a.Summary()
			resp.Animal = &s
		}
	}

	if deps.Comments != nil {
		if n, err := deps.Comments.CountByTarget(ctx, comments.TargetSighting, sg.ID); err == nil {
			resp.CommentsCount = n
		}
	}

	return resp
}

func listSightingsHandler(svc *Service, deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpjson.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		out := make([]sightingResponse, 0, len(items))
		for _, sg := range items {
			out = append(out, toSightingResponse(r, sg, deps))
		}
		httpjson.WriteJSON(w, http.StatusOK, out)
	}
}

func createSightingHandler(svc *Service, deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req createSightingRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "Title and animal_id are required")
			return
		}

		sg, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Title:    req.Title,
			Body:     req.Body,
			AnimalID: req.AnimalID,
			Likes:    req.Likes,
		})
		switch err {
		case nil:
		case ErrInvalidInput:
			httpjson.WriteError(w, http.StatusBadRequest, "Title and animal_id are required")
			return
		default:
			httpjson.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		httpjson.WriteJSON(w, http.StatusCreated, toSightingResponse(r, sg, deps))
	}
}

func getSightingHandler(svc *Service, deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sg, err := svc.GetByID(r.Context(), chi.URLParam(r, "sightingID"))
		if err != nil {
			httpjson.WriteError(w, http.StatusNotFound, "Sighting not found")
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toSightingResponse(r, sg, deps))
	}
}

func updateSightingHandler(svc *Service, deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		sightingID := chi.URLParam(r, "sightingID")

		switch authz.RequireOwner(r.Context(), svc.OwnerOf, sightingID, claims.UserID) {
		case nil:
		case authz.ErrNotFound:
			httpjson.WriteError(w, http.StatusNotFound, "Sighting not found")
			return
		default:
			httpjson.WriteError(w, http.StatusForbidden, "You are not authorized to update this sighting")
			return
		}

		var req updateSightingRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		sg, err := svc.Update(r.Context(), sightingID, UpdateInput{
			Title: req.Title,
			Body:  req.Body,
			Likes: req.Likes,
		})
		if err != nil {
			httpjson.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		httpjson.WriteJSON(w, http.StatusOK, toSightingResponse(r, sg, deps))
	}
}

func deleteSightingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		sightingID := chi.URLParam(r, "sightingID")

		switch authz.RequireOwner(r.Context(), svc.OwnerOf, sightingID, claims.UserID) {
		case nil:
		case authz.ErrNotFound:
			httpjson.WriteError(w, http.StatusNotFound, "Sighting not found")
			return
		default:
			httpjson.WriteError(w, http.StatusForbidden, "You are not authorized to delete this sighting")
			return
		}

		if err := svc.Delete(r.Context(), sightingID); err != nil {
			httpjson.WriteError(w, http.StatusNotFound, "Sighting not found")
			return
		}

		httpjson.WriteJSON(w, http.StatusOK, map[string]string{"message": "Sighting deleted"})
	}
}

func imageUploadHandler(svc *Service, deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		sightingID := chi.URLParam(r, "sightingID")

		// Guard estrictamente antes de cualquier escritura (incluida la subida).
		switch authz.RequireOwner(r.Context(), svc.OwnerOf, sightingID, claims.UserID) {
		case nil:
		case authz.ErrNotFound:
			httpjson.WriteError(w, http.StatusNotFound, "Sighting not found")
			return
		default:
			httpjson.WriteError(w, http.StatusForbidden, "You are not authorized to update this sighting")
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "No file uploaded")
			return
		}
		defer file.Close()

		key := storagekey.New(sightingID, time.Now(), header.Filename)
		contentType := header.Header.Get("Content-Type")

		if err := deps.Bucket.Put(r.Context(), imagePrefix+key, contentType, file, header.Size); err != nil {
			httpjson.WriteError(w, http.StatusInternalServerError, "Failed to upload file")
			return
		}

		sg, err := svc.SetImage(r.Context(), sightingID, key)
		if err != nil {
			// El objeto ya subió; no hay rollback. Queda huérfano y se loguea.
			deps.Log.Error("image metadata update failed, object orphaned", map[string]any{
				"sighting_id": sightingID,
				"key":         imagePrefix + key,
				"error":       err.Error(),
			})
			httpjson.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		httpjson.WriteJSON(w, http.StatusOK, toSightingResponse(r, sg, deps))
	}
}

func sightingCommentsHandler(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := deps.Comments.ListByTarget(r.Context(), comments.TargetSighting, chi.URLParam(r, "sightingID"))
		if err != nil {
			httpjson.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, comments.ToResponses(items))
	}
}
