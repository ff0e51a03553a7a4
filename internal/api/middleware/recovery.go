package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/blaisecz/vital-quest/pkg/problem"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Recovery turns a handler panic into a 500 problem response, logging the
// stack together with the request ID.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}
				log.Printf("[api] panic recovered (request %s %s %s): %v\n%s",
					chimw.GetReqID(r.Context()), r.Method, r.URL.Path, err, debug.Stack())
				problem.InternalError("An unexpected error occurred").Write(w)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
