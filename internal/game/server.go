package game

import (
	"net/http"

	"example.com/bc-solver/internal/httpapi"
	"github.com/google/uuid"
)

type Server struct {
	cfg      Config
	sessions *SessionService
}

func NewServer(cfg Config, sessions *SessionService) *Server {
	return &Server{
		cfg:      cfg,
		sessions: sessions,
	}
}

func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/session", s.handleCreateSession)
	mux.HandleFunc("/ws/", s.handleWS)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	sessionID := uuid.NewString()

	sess, err := s.sessions.Create(r.Context(), sessionID)
	if err != nil {
		httpapi.WriteError(w, http.StatusInternalServerError, "create_failed", "failed to create session")
		return
	}
	st := sess.State()

	httpapi.WriteJSON(w, http.StatusOK, map[string]any{
		"sessionId":       sessionID,
		"remaining":       st.Remaining,
		"uncertaintyBits": st.UncertaintyBits,
	})
}
