package pets

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"qa-pet-api/internal/httperr"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

func RegisterRoutes(r chi.Router, svc *Service, log zerolog.Logger) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc, log))
		pr.Get("/", listPetsHandler(svc, log))

		pr.Get("/{petID}", getPetHandler(svc, log))
		pr.Put("/{petID}", updatePetHandler(svc, log))
		pr.Delete("/{petID}", deletePetHandler(svc, log))
	})
}

type petResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Age       int       `json:"age"`
	Breed     *string   `json:"breed,omitempty"`
	OwnerName *string   `json:"ownerName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// createPetHandler maneja POST /pets.
//
// @Summary Cria um novo pet
// @Tags pets
// @Accept json
// @Produce json
// @Param pet body pets.CreateInput true "Dados do pet"
// @Success 201 {object} pets.petResponse
// @Failure 400 {object} httperr.Response
// @Router /pets [post]
func createPetHandler(svc *Service, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in CreateInput
		if err := decodeBody(r, &in); err != nil {
			respondError(w, r, log, err)
			return
		}

		p, err := svc.Create(r.Context(), in)
		if err != nil {
			respondError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler maneja GET /pets con filtros opcionales.
//
// @Summary Lista pets com filtros opcionais
// @Tags pets
// @Produce json
// @Param kind query string false "Filtro por tipo (dog, cat, bird, other)"
// @Param age query integer false "Filtro por idade exata"
// @Success 200 {array} pets.petResponse
// @Failure 400 {object} httperr.Response
// @Router /pets [get]
func listPetsHandler(svc *Service, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f, err := ParseFilters(q.Get("kind"), q.Get("age"))
		if err != nil {
			respondError(w, r, log, err)
			return
		}

		items, err := svc.List(r.Context(), f)
		if err != nil {
			respondError(w, r, log, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler maneja GET /pets/{id}. El formato del id se valida en
// el borde, antes de tocar el Service o el store.
//
// @Summary Busca um pet pelo ID
// @Tags pets
// @Produce json
// @Param id path string true "UUID do pet"
// @Success 200 {object} pets.petResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pets/{id} [get]
func getPetHandler(svc *Service, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if !IsValidID(petID) {
			writeInvalidID(w)
			return
		}

		p, err := svc.GetByID(r.Context(), petID)
		if err != nil {
			respondError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler maneja PUT /pets/{id}: merge-patch sobre el registro
// existente, no reemplazo PUT estricto (así lo fija el contrato).
//
// @Summary Atualiza um pet (parcial)
// @Tags pets
// @Accept json
// @Produce json
// @Param id path string true "UUID do pet"
// @Param pet body pets.UpdateInput true "Campos a atualizar"
// @Success 200 {object} pets.petResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pets/{id} [put]
func updatePetHandler(svc *Service, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if !IsValidID(petID) {
			writeInvalidID(w)
			return
		}

		var in UpdateInput
		if err := decodeBody(r, &in); err != nil {
			respondError(w, r, log, err)
			return
		}

		p, err := svc.Update(r.Context(), petID, in)
		if err != nil {
			respondError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler maneja DELETE /pets/{id}.
//
// @Summary Remove um pet
// @Tags pets
// @Param id path string true "UUID do pet"
// @Success 204 "sem conteúdo"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pets/{id} [delete]
func deletePetHandler(svc *Service, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if !IsValidID(petID) {
			writeInvalidID(w)
			return
		}

		if err := svc.Delete(r.Context(), petID); err != nil {
			respondError(w, r, log, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

var errInvalidJSON = errors.New("invalid json body")

// decodeBody decodifica el body JSON en dst. Un body vacío equivale a
// {} (la validación reporta después los campos faltantes). Un campo con
// tipo JSON equivocado se traduce al ERRO_VALIDACAO por campo del
// contrato.
func decodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeMismatchError(typeErr.Field)
	}
	return errInvalidJSON
}

func typeMismatchError(field string) error {
	switch field {
	case "name", "breed", "ownerName":
		return newValidationError(fmt.Sprintf("O campo '%s' deve ser uma string", field))
	case "age":
		return newValidationError("O campo 'age' deve ser um número")
	case "kind":
		// el contrato responde aquí con el error de enum
		return invalidKindError()
	}
	return errInvalidJSON
}

// respondError es el traductor central error → respuesta HTTP.
// Cualquier error no tipado se reporta como 500 genérico sin filtrar
// detalle interno, pero se loguea completo para diagnóstico.
func respondError(w http.ResponseWriter, r *http.Request, log zerolog.Logger, err error) {
	var validationErr *ValidationError
	var notFoundErr *NotFoundError

	switch {
	case errors.As(err, &validationErr):
		httperr.Write(w, http.StatusBadRequest, httperr.Response{
			Erro:     httperr.CodeValidation,
			Mensagem: validationErr.Message,
			Detalhes: validationErr.Details,
		})
	case errors.As(err, &notFoundErr):
		httperr.Write(w, http.StatusNotFound, httperr.Response{
			Erro:     httperr.CodeNotFound,
			Mensagem: notFoundErr.Message,
		})
	case errors.Is(err, errInvalidJSON):
		httperr.Write(w, http.StatusBadRequest, httperr.Response{
			Erro:     httperr.CodeInvalidJSON,
			Mensagem: "O corpo da requisição contém JSON inválido",
		})
	default:
		log.Error().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("error", fmt.Sprintf("%T", err)).
			Msg(err.Error())
		httperr.Write(w, http.StatusInternalServerError, httperr.Response{
			Erro:     httperr.CodeInternal,
			Mensagem: httperr.MsgInternal,
		})
	}
}

func writeInvalidID(w http.ResponseWriter) {
	httperr.Write(w, http.StatusBadRequest, httperr.Response{
		Erro:     httperr.CodeInvalidID,
		Mensagem: "O ID fornecido não é um UUID válido",
	})
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		Name:      p.Name,
		Kind:      string(p.Kind),
		Age:       p.Age,
		Breed:     p.Breed,
		OwnerName: p.OwnerName,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
