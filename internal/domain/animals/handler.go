package animals

import (
	"net/http"

	"faunagram/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Get("/", listAnimalsHandler(svc))
		ar.Get("/{animalID}", getAnimalHandler(svc))
		ar.Put("/{animalID}", updateAnimalHandler(svc))
	})
}

type animalResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Genus   string `json:"genus"`
	Species string `json:"species"`
	GName   string `json:"g_name"`
	Image   string `json:"image"`
	Kingdom string `json:"kingdom"`
	Phylum  string `json:"phylum"`
	Order   string `json:"order"`
	Family  string `json:"family"`
	Cls     string `json:"cls"`
}

type updateAnimalRequest struct {
	// Punteros para update parcial: nil = no tocar.
	Name    *string `json:"name"`
	Genus   *string `json:"genus"`
	Species *string `json:"species"`
	GName   *string `json:"g_name"`
	Image   *string `json:"image"`
	Kingdom *string `json:"kingdom"`
	Phylum  *string `json:"phylum"`
	Order   *string `json:"order"`
	Family  *string `json:"family"`
	Cls     *string `json:"cls"`
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:      a.ID,
		Name:    a.Name,
		Genus:   a.Genus,
		Species: a.Species,
		GName:   a.GName,
		Image:   a.Image,
		Kingdom: a.Kingdom,
		Phylum:  a.Phylum,
		Order:   a.Order,
		Family:  a.Family,
		Cls:     a.Cls,
	}
}

func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpjson.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}
		httpjson.WriteJSON(w, http.StatusOK, out)
	}
}

func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			httpjson.WriteError(w, http.StatusNotFound, "Animal not found")
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateAnimalRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		a, err := svc.Update(r.Context(), chi.URLParam(r, "animalID"), UpdateInput{
			Name:    req.Name,
			Genus:   req.Genus,
			Species: req.Species,
			GName:   req.GName,
			Image:   req.Image,
			Kingdom: req.Kingdom,
			Phylum:  req.Phylum,
			Order:   req.Order,
			Family:  req.Family,
			Cls:     req.Cls,
		})
		switch err {
		case nil:
		case ErrNotFound:
			httpjson.WriteError(w, http.StatusNotFound, "Animal not found")
			return
		default:
			httpjson.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		httpjson.WriteJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}
