package users

import (
	"context"
	"net/http"
	"time"

	"faunagram/internal/domain/authz"
	"faunagram/internal/domain/comments"
	"faunagram/internal/middleware"
	"faunagram/internal/platform/httpjson"
	"faunagram/internal/platform/logger"
	"faunagram/internal/platform/storagekey"
	"faunagram/internal/ports/auth"
	"faunagram/internal/ports/blob"

	"github.com/go-chi/chi/v5"
)

const avatarPrefix = "avatars/"

func RegisterRoutes(r chi.Router, svc *Service, issuer auth.TokenIssuer, bucket blob.Bucket, commentsSvc *comments.Service, log logger.Logger) {
	r.Post("/login", loginHandler(svc, issuer, bucket))
	r.With(middleware.RequireAuth).Get("/current_user", currentUserHandler(svc, bucket))

	r.Route("/users", func(ur chi.Router) {
		ur.Get("/", listUsersHandler(svc, bucket))
		ur.Post("/", registerHandler(svc, issuer, bucket))

		ur.Get("/{userID}", getUserHandler(svc, bucket))
		ur.With(middleware.RequireAuth).Put("/{userID}", updateUserHandler(svc, bucket))
		ur.With(middleware.RequireAuth).Delete("/{userID}", deleteUserHandler(svc))
		ur.With(middleware.RequireAuth).Put("/{userID}/avatar_upload", avatarUploadHandler(svc, bucket, log))

		ur.Get("/{userID}/comments", userCommentsHandler(commentsSvc))
	})
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

type sessionResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type updateUserRequest struct {
	// Puntero para update parcial: nil = no tocar.
	Name *string `json:"name"`
}

// toUserResponse arma la vista pública: sin digest, con avatar_url
// resuelta fresca contra el bucket (o null si no hay avatar).
func toUserResponse(u User, bucket blob.Bucket) userResponse {
	resp := userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
	if u.AvatarPath != "" && bucket != nil {
		url := bucket.PublicURL(avatarPrefix + u.AvatarPath)
		resp.AvatarURL = &url
	}
	return resp
}

func loginHandler(svc *Service, issuer auth.TokenIssuer, bucket blob.Bucket) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "Username and password required")
			return
		}

		u, err := svc.Authenticate(r.Context(), req.Username, req.Password)
		switch err {
		case nil:
		case ErrMissingCredentials:
			httpjson.WriteError(w, http.StatusBadRequest, "Username and password required")
			return
		case ErrBadCredentials:
			httpjson.WriteError(w, http.StatusUnauthorized, "Your username/password is incorrect")
			return
		default:
			httpjson.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		token, err := issuer.Issue(u.ID)
		if err != nil {
			httpjson.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		httpjson.WriteJSON(w, http.StatusOK, sessionResponse{
			User:  toUserResponse(u, bucket),
			Token: token,
		})
	}
}

func currentUserHandler(svc *Service, bucket blob.Bucket) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		// El middleware no toca el store; acá sí: un token de una cuenta
		// borrada da 404.
		u, err := svc.GetByID(r.Context(), claims.UserID)
		if err != nil {
			httpjson.WriteError(w, http.StatusNotFound, "User not found")
			return
		}

		httpjson.WriteJSON(w, http.StatusOK, toUserResponse(u, bucket))
	}
}

func listUsersHandler(svc *Service, bucket blob.Bucket) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpjson.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u, bucket))
		}
		httpjson.WriteJSON(w, http.StatusOK, out)
	}
}

func registerHandler(svc *Service, issuer auth.TokenIssuer, bucket blob.Bucket) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "Username and password required")
			return
		}

		u, err := svc.Register(r.Context(), RegisterInput{
			Username: req.Username,
			Password: req.Password,
			Name:     req.Name,
		})
		switch err {
		case nil:
		case ErrMissingCredentials:
			httpjson.WriteError(w, http.StatusBadRequest, "Username and password required")
			return
		case ErrPasswordTooShort:
			httpjson.WriteError(w, http.StatusBadRequest, "Password must be at least 5 characters")
			return
		case ErrUsernameTaken:
			httpjson.WriteError(w, http.StatusBadRequest, "Username already taken")
			return
		default:
			httpjson.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		token, err := issuer.Issue(u.ID)
		if err != nil {
			httpjson.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		httpjson.WriteJSON(w, http.StatusCreated, sessionResponse{
			User:  toUserResponse(u, bucket),
			Token: token,
		})
	}
}

func getUserHandler(svc *Service, bucket blob.Bucket) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.GetByID(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			httpjson.WriteError(w, http.StatusNotFound, "User not found")
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toUserResponse(u, bucket))
	}
}

// selfLoader adapta GetByID al guard: cargar la cuenta y devolver su
// propio id. Así cuentas inexistentes dan 404 antes que 403.
func selfLoader(svc *Service) authz.OwnerLoader {
	return func(ctx context.Context, id string) (string, error) {
		u, err := svc.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		return u.ID, nil
	}
}

func updateUserHandler(svc *Service, bucket blob.Bucket) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		userID := chi.URLParam(r, "userID")

		switch authz.RequireOwner(r.Context(), selfLoader(svc), userID, claims.UserID) {
		case nil:
		case authz.ErrNotFound:
			httpjson.WriteError(w, http.StatusNotFound, "User not found")
			return
		default:
			httpjson.WriteError(w, http.StatusForbidden, "You are not authorized to update this user")
			return
		}

		var req updateUserRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		u, err := svc.Update(r.Context(), userID, UpdateInput{Name: req.Name})
		if err != nil {
			httpjson.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		httpjson.WriteJSON(w, http.StatusOK, toUserResponse(u, bucket))
	}
}

func deleteUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		userID := chi.URLParam(r, "userID")

		switch authz.RequireOwner(r.Context(), selfLoader(svc), userID, claims.UserID) {
		case nil:
		case authz.ErrNotFound:
			httpjson.WriteError(w, http.StatusNotFound, "User not found")
			return
		default:
			httpjson.WriteError(w, http.StatusForbidden, "You are not authorized to delete this user")
			return
		}

		if err := svc.Delete(r.Context(), userID); err != nil {
			httpjson.WriteError(w, http.StatusNotFound, "User not found")
			return
		}

		httpjson.WriteJSON(w, http.StatusOK, map[string]string{"message": "User deleted"})
	}
}

func avatarUploadHandler(svc *Service, bucket blob.Bucket, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		userID := chi.URLParam(r, "userID")

		// Guard estrictamente antes de cualquier escritura (incluida la subida).
		switch authz.RequireOwner(r.Context(), selfLoader(svc), userID, claims.UserID) {
		case nil:
		case authz.ErrNotFound:
			httpjson.WriteError(w, http.StatusNotFound, "User not found")
			return
		default:
			httpjson.WriteError(w, http.StatusForbidden, "You are not authorized to update this user")
			return
		}

		file, header, err := r.FormFile("avatar")
		if err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "No file uploaded")
			return
		}
		defer file.Close()

		key := storagekey.New(userID, time.Now(), header.Filename)
		contentType := header.Header.Get("Content-Type")

		if err := bucket.Put(r.Context(), avatarPrefix+key, contentType, file, header.Size); err != nil {
			httpjson.WriteError(w, http.StatusInternalServerError, "Failed to upload file")
			return
		}

		u, err := svc.SetAvatar(r.Context(), userID, key)
		if err != nil {
			// El objeto ya subió; no hay rollback. Queda huérfano y se loguea.
			log.Error("avatar metadata update failed, object orphaned", map[string]any{
				"user_id": userID,
				"key":     avatarPrefix + key,
				"error":   err.Error(),
			})
			httpjson.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		httpjson.WriteJSON(w, http.StatusOK, toUserResponse(u, bucket))
	}
}

func userCommentsHandler(commentsSvc *comments.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := commentsSvc.ListByTarget(r.Context(), comments.TargetUser, chi.URLParam(r, "userID"))
		if err != nil {
			httpjson.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, comments.ToResponses(items))
	}
}
