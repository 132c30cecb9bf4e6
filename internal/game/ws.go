package game

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type ClientConn struct {
	ws   *websocket.Conn
	send chan []byte

	closeOnce sync.Once
}

func (c *ClientConn) Close() {
	c.closeOnce.Do(func() {
		close(c.send)
		_ = c.ws.Close()
	})
}

func (c *ClientConn) Send(env Envelope) {
	b, _ := json.Marshal(env)
	select {
	case c.send <- b:
	default:
		// slow client: drop rather than block the session
	}
}

// sessionIDFromWSPath extracts the session ID from /ws/{id}.
// IDs are lowercase alphanumerics plus '-' (uuid form), max 64 chars.
func sessionIDFromWSPath(path string) (string, bool) {
	rest, ok := strings.CutPrefix(path, "/ws/")
	if !ok || rest == "" || len(rest) > 64 || strings.Contains(rest, "/") {
		return "", false
	}
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '-' {
			continue
		}
		return "", false
	}
	return rest, true
}

// handleWS — WebSocket entry into a session: /ws/{sessionID}
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromWSPath(r.URL.Path)
	if !ok {
		http.Error(w, "missing or malformed session id", http.StatusBadRequest)
		return
	}

	sess, found, err := s.sessions.GetOrLoad(r.Context(), sessionID)
	if err != nil {
		http.Error(w, "storage error", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	cc := &ClientConn{
		ws:   ws,
		send: make(chan []byte, 64),
	}
	sess.Attach(cc)

	// writer loop
	go func() {
		ticker := time.NewTicker(25 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case msg, ok := <-cc.send:
				if !ok {
					return
				}
				_ = ws.WriteMessage(websocket.TextMessage, msg)
			case <-ticker.C:
				_ = ws.WriteMessage(websocket.PingMessage, []byte{})
			}
		}
	}()

	// initial state
	sess.SendState()

	// reader loop
	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			break
		}

		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			sess.SendError("bad_json", "invalid json")
			continue
		}

		switch env.Type {
		case "guess":
			var p GuessPayload
			if err := json.Unmarshal(env.Payload, &p); err != nil {
				sess.SendError("bad_input", "invalid payload")
				continue
			}
			if _, err := sess.Guess(p.Guess); err != nil {
				sess.SendError("bad_input", err.Error())
			}

		case "hint":
			var p HintRequestPayload
			if len(env.Payload) > 0 {
				if err := json.Unmarshal(env.Payload, &p); err != nil {
					sess.SendError("bad_input", "invalid payload")
					continue
				}
			}
			hint, err := sess.Hint(p.Pool)
			if err != nil {
				sess.SendError("hint_failed", err.Error())
				continue
			}
			cc.Send(Envelope{Type: "hint_result", Payload: mustJSON(hint)})

		default:
			sess.SendError("unknown_type", "unknown message type")
		}
	}

	// disconnect
	sess.Detach()
	cc.Close()
}

func mustJSON(v any) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}
