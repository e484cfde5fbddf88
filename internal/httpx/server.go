package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"carlettos_chess/game"
	"carlettos_chess/internal/logging"
	"carlettos_chess/shared"
)

// Server wires the HTTP layer to a game session.
type Server struct {
	gameMu sync.Mutex
	game   *game.CChess
	preset string
	srvMu  sync.Mutex
	srv    *http.Server
}

const (
	maxJSONBodyBytes int64 = 1 << 20
	apiCSP                 = "default-src 'none'; frame-ancestors 'none'; base-uri 'none'"
)

// NewServer builds a Server over a session started from the named
// preset.
func NewServer(preset string) (*Server, error) {
	session, err := newSession(preset)
	if err != nil {
		return nil, err
	}
	return &Server{game: session, preset: preset}, nil
}

func newSession(preset string) (*game.CChess, error) {
	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "", "classic":
		return game.DefaultChessboardGame(), nil
	case "full":
		return game.CChessboardGame(), nil
	case "display":
		return game.DefaultDisplay(), nil
	default:
		return nil, errors.New("unknown preset " + preset)
	}
}

// Listen starts the HTTP server.
func (s *Server) Listen(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	s.srvMu.Lock()
	s.srv = srv
	s.srvMu.Unlock()
	defer func() {
		s.srvMu.Lock()
		s.srv = nil
		s.srvMu.Unlock()
	}()

	logging.Info("http listening", logging.Fields{"addr": addr})
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close attempts a graceful shutdown of the HTTP server.
func (s *Server) Close(ctx context.Context) error {
	s.srvMu.Lock()
	srv := s.srv
	s.srvMu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// routes configures the ServeMux with the JSON APIs.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/state", s.withJSON(s.handleState))
	mux.HandleFunc("/api/click", s.withJSON(s.handleClick))
	mux.HandleFunc("/api/action", s.withJSON(s.handleAction))
	mux.HandleFunc("/api/tick", s.withJSON(s.handleTick))
	mux.HandleFunc("/api/reset", s.withJSON(s.handleReset))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// ---- JSON helpers ----

func (s *Server) withJSON(h func(http.ResponseWriter, *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applyAPISecurityHeaders(w.Header())
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if r.Body != nil && r.Body != http.NoBody {
			r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
		}
		h(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	writeJSON(w, map[string]string{"error": msg})
}

func applyAPISecurityHeaders(h http.Header) {
	h.Set("Content-Security-Policy", apiCSP)
	h.Set("Cross-Origin-Opener-Policy", "same-origin")
	h.Set("Cross-Origin-Embedder-Policy", "require-corp")
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if isBodyTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "request too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// ---- API: state ----

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.gameMu.Lock()
	defer s.gameMu.Unlock()
	writeJSON(w, map[string]any{"state": s.game})
}

// ---- API: click ----

type clickBody struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) handleClick(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var body clickBody
	if !decodeBody(w, r, &body) {
		return
	}
	if body.X < 0 || body.Y < 0 {
		writeError(w, http.StatusBadRequest, "invalid position")
		return
	}

	s.gameMu.Lock()
	defer s.gameMu.Unlock()
	if !s.game.Click(shared.NewPos(body.X, body.Y)) {
		writeError(w, http.StatusBadRequest, "position outside the board")
		return
	}
	writeJSON(w, map[string]any{"state": s.game})
}

// ---- API: action ----

// handleAction performs a raw action, legality-checked. It covers the
// ability payloads a bare click cannot express.
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var action game.Action
	if !decodeBody(w, r, &action) {
		return
	}

	s.gameMu.Lock()
	defer s.gameMu.Unlock()
	board := s.game.Board
	piece := board.PieceAt(action.From)
	if piece == nil {
		writeError(w, http.StatusBadRequest, "no tile at from")
		return
	}
	if !piece.CanDo(board, action) {
		writeError(w, http.StatusBadRequest, "illegal action")
		return
	}
	if !action.IsAbility() {
		if target := board.PieceAt(action.To); target != nil && !target.CanBe(action) {
			writeError(w, http.StatusBadRequest, "target refuses the action")
			return
		}
	}
	if err := board.Make(action); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, map[string]any{"state": s.game})
}

// ---- API: tick ----

func (s *Server) handleTick(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if r.Body != nil {
		r.Body.Close()
	}
	s.gameMu.Lock()
	defer s.gameMu.Unlock()
	s.game.Board.Tick()
	var eventErrors []string
	for _, err := range s.game.Board.FireDueEvents() {
		eventErrors = append(eventErrors, err.Error())
	}
	writeJSON(w, map[string]any{"state": s.game, "event_errors": eventErrors})
}

// ---- API: reset ----

type resetBody struct {
	Preset string `json:"preset"`
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var body resetBody
	if r.Body != nil && r.Body != http.NoBody {
		if !decodeBody(w, r, &body) {
			return
		}
	}
	preset := body.Preset
	if preset == "" {
		preset = s.preset
	}

	session, err := newSession(preset)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.gameMu.Lock()
	defer s.gameMu.Unlock()
	s.game = session
	s.preset = preset
	writeJSON(w, map[string]any{"state": s.game})
}
