package publication

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/publication/pkg/clientip"
	"github.com/dmitrymomot/publication/pkg/requestid"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures which services to mount. Each is optional.
type RouterOptions struct {
	Publication Mountable
	Health      Mountable
	Logger      *slog.Logger
}

// Router builds the application router.
//
//	r := publication.Router(publication.RouterOptions{
//		Publication: publication.NewService(cfg, greetings, validator, dispatcher),
//		Health:      publication.NewHealthService(log, store.Healthcheck),
//		Logger:      log,
//	})
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(middleware.Recoverer)
	if opts.Logger != nil {
		r.Use(requestLogger(opts.Logger))
	}

	if opts.Health != nil {
		r.Mount("/health", opts.Health.Handle())
	}
	if opts.Publication != nil {
		r.Mount("/", opts.Publication.Handle())
	}

	return r
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.DebugContext(r.Context(), "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status_code", ww.Status()),
			)
		})
	}
}
