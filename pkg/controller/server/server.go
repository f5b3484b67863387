package server

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/satooru65536/projfeed/pkg/domain/interfaces"
	"github.com/satooru65536/projfeed/pkg/utils/errutil"
	"github.com/satooru65536/projfeed/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func New(uc interfaces.UseCase) *Server {
	r := chi.NewRouter()
	r.Use(preProcess)
	r.Use(middleware.Recoverer)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Get("/projects", func(w http.ResponseWriter, r *http.Request) {
		handleGetProjects(uc, w, r)
	})

	return &Server{
		mux: r,
	}
}

func handleGetProjects(uc interfaces.UseCase, w http.ResponseWriter, r *http.Request) {
	// A client disconnect must not abandon a half-built cache entry
	ctx := DetachContext(r.Context())

	projects, err := uc.GetProjects(ctx)
	if err != nil {
		errutil.HandleError(r.Context(), "fail to get projects", err)
		safeWrite(w, http.StatusInternalServerError, []byte("internal server error"))
		return
	}

	raw, err := json.Marshal(projects)
	if err != nil {
		errutil.HandleError(r.Context(), "fail to marshal projects", err)
		safeWrite(w, http.StatusInternalServerError, []byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, http.StatusOK, raw)
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
