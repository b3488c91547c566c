package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"quiz-presenter/internal/app"
	"quiz-presenter/internal/domain"
)

// QuizRepository resolves question sets by id.
type QuizRepository interface {
	GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error)
}

// SessionRegistry tracks live browser sessions.
type SessionRegistry interface {
	Add(id string, session *app.Session)
	Remove(id string)
	Len() int
}

// toucher is implemented by registries whose entries expire unless refreshed.
type toucher interface {
	Touch(ctx context.Context, id string) error
}

// Options configures the canvas endpoint.
type Options struct {
	DefaultQuizID string
	Settings      app.Settings
	FPS           int
}

// CanvasHandler streams rendered frames to a browser canvas and applies the
// pointer input it sends back. Each connection owns one Session.
type CanvasHandler struct {
	quizzes  QuizRepository
	sessions SessionRegistry
	opts     Options
	upgrader websocket.Upgrader
	now      func() time.Time
}

func NewCanvasHandler(quizzes QuizRepository, sessions SessionRegistry, opts Options) *CanvasHandler {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	return &CanvasHandler{
		quizzes:  quizzes,
		sessions: sessions,
		opts:     opts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		now: time.Now,
	}
}

// LiveSessions reports how many canvas sessions are connected.
func (h *CanvasHandler) LiveSessions() int {
	return h.sessions.Len()
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type pointerPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type resizePayload struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type helloPayload struct {
	SessionID string `json:"sessionId"`
	QuizID    string `json:"quizId"`
	Total     int    `json:"total"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the request and runs the session until the client leaves.
func (h *CanvasHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	quizID := r.URL.Query().Get("quizId")
	if quizID == "" {
		quizID = h.opts.DefaultQuizID
	}
	quiz, err := h.quizzes.GetQuiz(r.Context(), quizID)
	if errors.Is(err, domain.ErrQuizNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("load quiz %s: %v", quizID, err)
		http.Error(w, "failed to load quiz", http.StatusInternalServerError)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	id := uuid.NewString()
	session := app.NewSession(quiz, h.opts.Settings)
	h.sessions.Add(id, session)
	defer h.sessions.Remove(id)
	log.Printf("session %s started on quiz %s (%d questions)", id, quiz.ID, len(quiz.Questions))

	if err := conn.WriteJSON(outboundMessage[helloPayload]{
		Type:    "hello",
		Payload: helloPayload{SessionID: id, QuizID: quiz.ID, Total: len(quiz.Questions)},
	}); err != nil {
		log.Printf("ws write error: %v", err)
		return
	}

	// The reader only decodes; the loop below is the single writer and the
	// only goroutine touching the session.
	inbound := make(chan inboundMessage, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(inbound)
		for {
			var msg inboundMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			select {
			case inbound <- msg:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(h.opts.FPS))
	defer ticker.Stop()
	keepAlive := time.NewTicker(time.Second)
	defer keepAlive.Stop()

	for {
		select {
		case msg, ok := <-inbound:
			if !ok {
				log.Printf("session %s closed", id)
				return
			}
			if err := h.apply(session, msg); err != nil {
				if werr := conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}}); werr != nil {
					log.Printf("ws write error: %v", werr)
					return
				}
			}
		case <-ticker.C:
			if err := session.Step(h.now()); err != nil {
				log.Printf("session %s: %v", id, err)
			}
			if err := conn.WriteJSON(outboundMessage[[]domain.DrawCommand]{Type: "frame", Payload: session.Frame()}); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		case <-keepAlive.C:
			if t, ok := h.sessions.(toucher); ok {
				if err := t.Touch(r.Context(), id); err != nil {
					log.Printf("session %s touch: %v", id, err)
				}
			}
		}
	}
}

var errUnsupportedMessage = errors.New("unsupported message type")

func (h *CanvasHandler) apply(session *app.Session, msg inboundMessage) error {
	switch msg.Type {
	case "resize":
		var p resizePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return errors.New("invalid resize payload")
		}
		session.Resize(p.Width, p.Height)
	case "pointermove":
		var p pointerPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return errors.New("invalid pointer payload")
		}
		session.PointerMove(p.X, p.Y)
	case "pointerdown":
		var p pointerPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return errors.New("invalid pointer payload")
		}
		return session.PointerDown(p.X, p.Y)
	case "reset":
		session.Reset()
	default:
		return errUnsupportedMessage
	}
	return nil
}
