package cmd

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/denizsincar29/goerror"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/stradella/constants"
	"github.com/jsphweid/stradella/model"
	"github.com/jsphweid/stradella/note"
	"github.com/jsphweid/stradella/resolve"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var servePort string

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", constants.GetPort(), "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves combinations over HTTP",
	Long:  `Serves the note layout, chord catalog and button combinations as JSON.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve(servePort)
	},
}

type server struct {
	resolver *resolve.Resolver
}

// NewRouter wires the JSON API around r.
func NewRouter(r *resolve.Resolver, logger *slog.Logger) http.Handler {
	s := &server{resolver: r}
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestLogger(logger))
	router.HandleFunc("/notes", s.handleNotes).Methods(http.MethodGet)
	router.HandleFunc("/chords", s.handleChords).Methods(http.MethodGet)
	router.HandleFunc("/combinations", s.handleCombinations).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet},
		ExposedHeaders: []string{"X-Request-Id"},
	})
	return c.Handler(router)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func requestLogger(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.New().String()
			w.Header().Set("X-Request-Id", id)
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, r)
			logger.Info("request",
				"id", id,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start))
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func (s *server) handleNotes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.NotesResponse{
		Bass:        note.BassRow(),
		Counterbass: note.CounterbassRow(),
	})
}

func (s *server) handleChords(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.ChordsResponse{
		Chords: s.resolver.Catalog().Filter(r.URL.Query().Get("q")),
	})
}

func (s *server) handleCombinations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	root := query.Get("root")
	typ := query.Get("type")
	if root == "" || typ == "" {
		writeError(w, http.StatusBadRequest, "root and type are required")
		return
	}

	limit := constants.MaxDisplayed
	if l := query.Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	combos := s.resolver.ResolveName(root, typ)
	writeJSON(w, http.StatusOK, model.CombinationsResponse{
		Root:         root,
		Type:         typ,
		Total:        len(combos),
		Combinations: model.Displayed(combos, limit),
	})
}

func serve(port string) {
	logger := newLogger(os.Stderr)
	e := goerror.NewError(logger)

	r, err := newResolver(logger)
	e.Must(err, "Failed to load chord catalog")

	logger.Info("listening", "port", port)
	err = http.ListenAndServe(":"+port, NewRouter(r, logger))
	e.Must(err, "Server stopped")
}
