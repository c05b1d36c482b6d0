// Package server exposes rendered maps over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	log "github.com/inconshreveable/log15"
	jsoniter "github.com/json-iterator/go"

	"civicmap/internal/geom"
	"civicmap/internal/mapview"
	"civicmap/internal/refdata"
	"civicmap/internal/svgout"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxDimension caps the requested SVG size.
const maxDimension = 4096

type Server struct {
	states    []geom.Feature
	districts []geom.Feature
	settings  mapview.Settings
	viewport  geom.Viewport
	log       log.Logger
	now       func() time.Time
}

func New(states, districts []geom.Feature, settings mapview.Settings, vp geom.Viewport, logger log.Logger) *Server {
	if logger == nil {
		logger = log.New()
		logger.SetHandler(log.DiscardHandler())
	}
	settings.Logger = logger
	return &Server{
		states:    states,
		districts: districts,
		settings:  settings,
		viewport:  vp,
		log:       logger,
		now:       time.Now,
	}
}

// Handler returns the routed handler with CORS, panic recovery and request
// logging applied.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.health).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/states", s.stateList).Methods(http.MethodGet)
	r.HandleFunc("/map.svg", s.countryMap).Methods(http.MethodGet)
	r.HandleFunc("/states/{code}.svg", s.stateMap).Methods(http.MethodGet)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	var h http.Handler = r
	h = handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodHead, http.MethodOptions}),
	)(h)
	h = handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{s.log}))(h)
	return handlers.CustomLoggingHandler(io.Discard, h, s.logRequest)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:        fmt.Sprintf("0.0.0.0:%d", port),
		Handler:     s.Handler(),
		IdleTimeout: time.Minute,
	}
	errc := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: s.now().UTC().Format(time.RFC3339Nano),
		Message:   "civicmap API is running",
	})
}

type stateEntry struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	FIPS      string `json:"fips"`
	Category  string `json:"category"`
	Districts int    `json:"districts"`
	AtLarge   bool   `json:"at_large"`
	Fill      string `json:"fill"`
}

// stateList serves the reference table, optionally narrowed with
// ?category=red|blue|purple|neutral.
func (s *Server) stateList(w http.ResponseWriter, r *http.Request) {
	all := refdata.States()
	if q := r.URL.Query().Get("category"); q != "" {
		group, ok := refdata.ByCategory()[refdata.Category(strings.ToLower(q))]
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid category: "+q)
			return
		}
		all = group
	}
	out := make([]stateEntry, len(all))
	for i, st := range all {
		out[i] = stateEntry{
			Code:      strings.ToUpper(st.Code),
			Name:      st.Name,
			FIPS:      st.FIPS,
			Category:  string(st.Category),
			Districts: refdata.DistrictCount(st.Code),
			AtLarge:   refdata.IsAtLarge(st.Code),
			Fill:      refdata.ColorsFor(st.Category).Fill,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) countryMap(w http.ResponseWriter, r *http.Request) {
	vp, ok := s.requestViewport(w, r)
	if !ok {
		return
	}
	v := mapview.Country(s.states, s.settings, nil)
	s.writeSVG(w, v, vp, "United States")
}

// stateMap draws a state's congressional districts, falling back to the
// state outline when the district layer has nothing for it.
func (s *Server) stateMap(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	st, ok := refdata.ByCode(code)
	if !ok {
		writeError(w, http.StatusNotFound, "Unknown state: "+code)
		return
	}
	vp, ok := s.requestViewport(w, r)
	if !ok {
		return
	}
	v, err := mapview.StateDetail(s.states, s.districts, st.Code, s.settings, nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeSVG(w, v, vp, st.DisplayName)
}

func (s *Server) writeSVG(w http.ResponseWriter, v *mapview.View, vp geom.Viewport, title string) {
	opts := svgout.DefaultOptions()
	opts.Title = title
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := svgout.Write(w, v, vp, opts); err != nil {
		s.log.Error("svg render failed", "title", title, "err", err)
	}
}

// requestViewport reads optional width/height query parameters.
func (s *Server) requestViewport(w http.ResponseWriter, r *http.Request) (geom.Viewport, bool) {
	vp := s.viewport
	q := r.URL.Query()
	for _, p := range []struct {
		name string
		dst  *float64
	}{{"width", &vp.Width}, {"height", &vp.Height}} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxDimension {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid %s: %q", p.name, raw))
			return geom.Viewport{}, false
		}
		*p.dst = float64(n)
	}
	return vp, true
}

func (s *Server) logRequest(_ io.Writer, p handlers.LogFormatterParams) {
	s.log.Info("request",
		"method", p.Request.Method,
		"path", p.URL.Path,
		"status", p.StatusCode,
		"size", p.Size,
		"duration", time.Since(p.TimeStamp),
	)
}

type recoveryLogger struct{ log.Logger }

func (l recoveryLogger) Println(v ...interface{}) {
	l.Error("handler panic", "err", fmt.Sprint(v...))
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
