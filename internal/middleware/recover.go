package middleware

import (
	"net/http"
	"runtime/debug"

	"qa-pet-api/internal/httperr"

	"github.com/rs/zerolog"
)

// Recover convierte panics en un 500 con el body JSON del contrato
// (ERRO_INTERNO) en lugar del texto plano del Recoverer de chi.
// El panic y su stack quedan en el log local, nunca en la respuesta.
func Recover(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				httperr.Write(w, http.StatusInternalServerError, httperr.Response{
					Erro:     httperr.CodeInternal,
					Mensagem: httperr.MsgInternal,
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
