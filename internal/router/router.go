package router

import (
	"encoding/json"
	"net/http"
	"time"

	_ "qa-pet-api/docs" // registra el documento swagger
	mem "qa-pet-api/internal/adapters/storage/memory"
	"qa-pet-api/internal/domain/pets"
	"qa-pet-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

const version = "1.0.0"

type Options struct {
	Logger zerolog.Logger

	// Repo opcional para que los tests inyecten su propio store.
	// Si es nil, el router arma uno in-memory y lo siembra con los
	// fixtures (Rex y Mimi).
	Repo pets.Repository
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()
	log := opts.Logger
	start := time.Now()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	repo := opts.Repo
	if repo == nil {
		memRepo := mem.NewPetRepo()
		memRepo.Seed()
		repo = memRepo
	}

	svc := pets.NewService(repo)

	r.Get("/", rootHandler())
	r.Get("/health", healthHandler(start))
	r.Get("/api-docs/*", httpSwagger.WrapHandler)

	pets.RegisterRoutes(r, svc, log)

	return r
}

// rootHandler responde la metadata del servicio que las suites de QA
// conocen.
func rootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"mensagem":     "Bem-vindo à QA Pet API! 🐾",
			"versao":       version,
			"descricao":    "API REST para treinamento e prática de testes de QA",
			"documentacao": "/api-docs/index.html",
			"rotas": map[string]string{
				"pets":         "/pets",
				"documentacao": "/api-docs/index.html",
			},
		})
	}
}

func healthHandler(start time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"uptime":    time.Since(start).Seconds(),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
