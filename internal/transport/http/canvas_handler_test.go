package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"quiz-presenter/internal/app"
	"quiz-presenter/internal/domain"
	"quiz-presenter/internal/infra/memory"
)

type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func newTestServer(t *testing.T) (*httptest.Server, *memory.SessionStore) {
	t.Helper()
	quizzes := memory.NewQuizRepository(memory.NewStaticQuizLoader(map[string]domain.Quiz{
		"quiz-1": memory.SampleQuiz("quiz-1"),
	}), time.Minute)
	store := memory.NewSessionStore()
	handler := NewCanvasHandler(quizzes, store, Options{
		DefaultQuizID: "quiz-1",
		Settings:      app.DefaultSettings(),
		FPS:           60,
	})
	server := httptest.NewServer(NewRouter(handler))
	t.Cleanup(server.Close)
	return server, store
}

func dial(t *testing.T, server *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	u := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws" + query
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// readUntil reads messages until match accepts one or the deadline passes.
func readUntil(t *testing.T, conn *websocket.Conn, what string, match func(envelope) bool) envelope {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		var msg envelope
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("waiting for %s: %v", what, err)
		}
		if match(msg) {
			return msg
		}
	}
}

func frame(t *testing.T, msg envelope) []domain.DrawCommand {
	t.Helper()
	var cmds []domain.DrawCommand
	if err := json.Unmarshal(msg.Payload, &cmds); err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	return cmds
}

func TestCanvasSessionFlow(t *testing.T) {
	server, store := newTestServer(t)
	conn := dial(t, server, "?quizId=quiz-1")

	hello := readUntil(t, conn, "hello", func(m envelope) bool { return m.Type == "hello" })
	var h helloPayload
	if err := json.Unmarshal(hello.Payload, &h); err != nil {
		t.Fatalf("decode hello: %v", err)
	}
	if h.SessionID == "" || h.QuizID != "quiz-1" || h.Total != 3 {
		t.Fatalf("unexpected hello %+v", h)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 registered session, got %d", store.Len())
	}

	send := func(typ string, payload any) {
		if err := conn.WriteJSON(map[string]any{"type": typ, "payload": payload}); err != nil {
			t.Fatalf("write %s: %v", typ, err)
		}
	}
	send("resize", map[string]float64{"width": 800, "height": 600})
	readUntil(t, conn, "quiz frame", func(m envelope) bool {
		return m.Type == "frame" && len(frame(t, m)) > 1
	})

	// Option A sits at 100,210 600x60 on the reference viewport.
	send("pointerdown", map[string]float64{"x": 400, "y": 240})
	send("pointerdown", map[string]float64{"x": 400, "y": 240})
	readUntil(t, conn, "feedback flash", func(m envelope) bool {
		if m.Type != "frame" {
			return false
		}
		for _, cmd := range frame(t, m) {
			if cmd.Kind == domain.DrawRect && cmd.X == 0 && cmd.Y == 0 && cmd.W == 800 && cmd.H == 600 {
				return true
			}
		}
		return false
	})
}

func TestCanvasRejectsUnsupportedMessage(t *testing.T) {
	server, _ := newTestServer(t)
	conn := dial(t, server, "")

	if err := conn.WriteJSON(map[string]any{"type": "bogus"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	msg := readUntil(t, conn, "error", func(m envelope) bool { return m.Type == "error" })
	var p errorPayload
	if err := json.Unmarshal(msg.Payload, &p); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if p.Message != errUnsupportedMessage.Error() {
		t.Fatalf("unexpected error message %q", p.Message)
	}
}

func TestCanvasUnknownQuiz(t *testing.T) {
	server, _ := newTestServer(t)
	u := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?quizId=missing"
	_, resp, err := websocket.DefaultDialer.Dial(u, nil)
	if err == nil {
		t.Fatalf("expected handshake failure")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %+v", resp)
	}
}

func TestCanvasSessionRemovedOnClose(t *testing.T) {
	server, store := newTestServer(t)
	conn := dial(t, server, "")
	readUntil(t, conn, "hello", func(m envelope) bool { return m.Type == "hello" })
	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for store.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("session still registered after close")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func getHealth(t *testing.T, server *httptest.Server) health {
	t.Helper()
	resp, err := http.Get(server.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected healthz status %d", resp.StatusCode)
	}
	var h health
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		t.Fatalf("decode healthz: %v", err)
	}
	return h
}

func TestHealthCountsLiveSessions(t *testing.T) {
	server, _ := newTestServer(t)

	if h := getHealth(t, server); h.Status != "ok" || h.Sessions != 0 {
		t.Fatalf("unexpected health before connecting: %+v", h)
	}

	conn := dial(t, server, "")
	readUntil(t, conn, "hello", func(m envelope) bool { return m.Type == "hello" })
	if h := getHealth(t, server); h.Sessions != 1 {
		t.Fatalf("expected 1 live session, got %+v", h)
	}
}

func TestIndex(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/")
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), "<canvas") {
		t.Fatalf("expected canvas page, got %q", body)
	}
}
