// Package server exposes the HTML converter over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"h2f/config"
	"h2f/fetch"
	"h2f/state"
	"h2f/store"
	"h2f/transform"
)

// Server converts pages submitted by URL or as raw markup.
type Server struct {
	conf    *config.ServerConfig
	log     *zap.Logger
	rpt     *config.Report
	parser  *transform.Parser
	client  *fetch.Client
	history *store.History
}

type convertRequest struct {
	URL  string `json:"url,omitempty"`
	HTML string `json:"html,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Run starts the HTTP server and blocks until ctx is canceled or the
// listener fails.
func Run(ctx context.Context) error {

	env := state.EnvFromContext(ctx)
	conf := &env.Cfg.Server

	s := &Server{
		conf:   conf,
		log:    env.Log.Named("server"),
		rpt:    env.Rpt,
		parser: transform.NewParser(env.Log),
		client: fetch.NewClient(&env.Cfg.Fetch, env.Log),
	}

	if conf.History.Enable {
		h, err := store.Open(conf.History.Path, env.Log)
		if err != nil {
			return err
		}
		s.history = h
		defer s.history.Close()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/getDesignSpecs", s.handleConvert)

	srv := &http.Server{
		Addr:    conf.Address,
		Handler: s.cors(mux),
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Listening", zap.String("address", conf.Address))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("unable to serve on %s: %w", conf.Address, err)
	case <-ctx.Done():
	}

	s.log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("unable to shut down cleanly: %w", err)
	}
	return nil
}

func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.conf.CORSOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "unable to parse request body")
		return
	}
	if req.URL == "" && req.HTML == "" {
		s.writeError(w, http.StatusBadRequest, "either url or html must be provided")
		return
	}

	source, text := "inline", req.HTML
	if req.URL != "" {
		source = req.URL
		var err error
		text, err = s.client.Fetch(r.Context(), req.URL)
		if err != nil {
			s.log.Warn("Fetch failed", zap.String("url", req.URL), zap.Error(err))
			var se *fetch.StatusError
			if errors.As(err, &se) {
				s.writeError(w, se.Code, err.Error())
				return
			}
			s.writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		s.rpt.StoreData("fetched.html", []byte(text))
	}

	start := time.Now()
	root, err := s.parser.Parse(text)
	if err != nil {
		s.log.Error("Conversion failed", zap.String("source", source), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	payload, err := json.Marshal(root)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.rpt.StoreData("result.json", payload)

	if err := s.history.Save(source, root.Framework.String(), root.Count(), payload); err != nil {
		// conversion succeeded, do not fail the request
		s.log.Warn("Unable to record conversion", zap.Error(err))
	}

	s.log.Info("Page converted",
		zap.String("source", source),
		zap.Stringer("framework", root.Framework),
		zap.Int("nodes", root.Count()),
		zap.Duration("elapsed", time.Since(start)))

	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
