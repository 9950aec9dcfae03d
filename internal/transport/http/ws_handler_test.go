package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/infra/memory"
	"trivia-quiz-service/internal/quiz"
)

type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func TestWebSocketQuizFlow(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	conn := dial(t, server, "p1")
	defer conn.Close()

	var welcome welcomePayload
	decode(t, readNext(conn, t, "welcome"), &welcome)
	if welcome.PlayerID != "p1" {
		t.Fatalf("expected player p1, got %s", welcome.PlayerID)
	}
	if welcome.View.Question == nil || welcome.View.Question.Progress != "1 of 1" {
		t.Fatalf("expected first question view, got %+v", welcome.View)
	}

	send(t, conn, "select", map[string]any{"option": "7"})
	var errPayload errorPayload
	decode(t, readNext(conn, t, "error"), &errPayload)
	if errPayload.Message != domain.ErrInvalidOption.Error() {
		t.Fatalf("expected invalid option error, got %q", errPayload.Message)
	}

	send(t, conn, "select", map[string]any{"option": "4"})
	var view quiz.View
	decode(t, readNext(conn, t, "view"), &view)
	if !view.Question.Selected {
		t.Fatalf("expected selection recorded, got %+v", view.Question)
	}

	send(t, conn, "next", nil)
	view = quiz.View{}
	decode(t, readNext(conn, t, "view"), &view)
	if view.State != quiz.StateComplete || view.Result == nil || view.Result.Score != 1 {
		t.Fatalf("expected completed view with score 1, got %+v", view)
	}

	send(t, conn, "next", nil)
	decode(t, readNext(conn, t, "error"), &errPayload)
	if errPayload.Message != domain.ErrSessionComplete.Error() {
		t.Fatalf("expected session complete error, got %q", errPayload.Message)
	}

	send(t, conn, "summary", nil)
	var summary domain.Summary
	decode(t, readNext(conn, t, "summary"), &summary)
	if summary.Score != 1 || summary.Total != 1 || len(summary.Answers) != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}

	send(t, conn, "retry", nil)
	view = quiz.View{}
	decode(t, readNext(conn, t, "view"), &view)
	if view.State != quiz.StateInProgress || view.Question == nil {
		t.Fatalf("expected fresh quiz after retry, got %+v", view)
	}

	send(t, conn, "dance", nil)
	readNext(conn, t, "error")
}

func TestWebSocketResumesSession(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	first := dial(t, server, "p2")
	readNext(first, t, "welcome")
	send(t, first, "select", map[string]any{"option": "3"})
	readNext(first, t, "view")
	first.Close()

	second := dial(t, server, "p2")
	defer second.Close()
	var welcome welcomePayload
	decode(t, readNext(second, t, "welcome"), &welcome)
	if welcome.View.Question == nil || !welcome.View.Question.Selected {
		t.Fatalf("expected resumed session with pending selection, got %+v", welcome.View)
	}
}

func TestWebSocketAssignsPlayerID(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	conn := dial(t, server, "")
	defer conn.Close()
	var welcome welcomePayload
	decode(t, readNext(conn, t, "welcome"), &welcome)
	if welcome.PlayerID == "" {
		t.Fatalf("expected generated player id")
	}
}

func TestWebSocketEndDropsSession(t *testing.T) {
	store := &countingStore{SessionStore: memory.NewSessionStore()}
	server := newTestServerWithStore(store)
	defer server.Close()

	conn := dial(t, server, "p3")
	defer conn.Close()
	readNext(conn, t, "welcome")

	send(t, conn, "end", nil)
	readNext(conn, t, "ended")

	if _, err := store.Get(context.Background(), "p3"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected session dropped after end, got %v", err)
	}
}

func TestWebSocketReleasesAnonymousSessionsOnDisconnect(t *testing.T) {
	store := &countingStore{SessionStore: memory.NewSessionStore()}
	server := newTestServerWithStore(store)
	defer server.Close()

	const players = 5
	ids := make([]string, 0, players)
	for i := 0; i < players; i++ {
		conn := dial(t, server, "")
		var welcome welcomePayload
		decode(t, readNext(conn, t, "welcome"), &welcome)
		ids = append(ids, welcome.PlayerID)
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	}

	deadline := time.Now().Add(5 * time.Second)
	for store.deletes.Load() < players && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if got := store.deletes.Load(); got != players {
		t.Fatalf("expected %d sessions released, got %d", players, got)
	}
	for _, id := range ids {
		if _, err := store.Get(context.Background(), id); err != domain.ErrSessionNotFound {
			t.Fatalf("expected session for %s released, got %v", id, err)
		}
	}
}

func TestWebSocketKeepsNamedSessionOnDisconnect(t *testing.T) {
	store := &countingStore{SessionStore: memory.NewSessionStore()}
	server := newTestServerWithStore(store)
	defer server.Close()

	conn := dial(t, server, "p4")
	readNext(conn, t, "welcome")
	conn.Close()

	second := dial(t, server, "p4")
	defer second.Close()
	readNext(second, t, "welcome")
	if _, err := store.Get(context.Background(), "p4"); err != nil {
		t.Fatalf("expected named session kept, got %v", err)
	}
	if got := store.deletes.Load(); got != 0 {
		t.Fatalf("expected no deletes for a named player, got %d", got)
	}
}

type countingStore struct {
	*memory.SessionStore
	deletes atomic.Int32
}

func (s *countingStore) Delete(ctx context.Context, playerID string) error {
	s.deletes.Add(1)
	return s.SessionStore.Delete(ctx, playerID)
}

func newTestServer() *httptest.Server {
	return newTestServerWithStore(memory.NewSessionStore())
}

func newTestServerWithStore(store app.SessionRepository) *httptest.Server {
	catalogs := memory.NewCatalogRepository(memory.NewStaticCatalogLoader(sampleCatalog()), time.Minute)
	service := app.NewQuizService(store, catalogs, "catalog-1", nil)
	wsHandler := NewWSHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	return httptest.NewServer(mux)
}

func dial(t *testing.T, server *httptest.Server, playerID string) *websocket.Conn {
	t.Helper()
	u := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	if playerID != "" {
		u += "?playerId=" + playerID
	}
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

func send(t *testing.T, conn *websocket.Conn, typ string, payload any) {
	t.Helper()
	if err := conn.WriteJSON(map[string]any{"type": typ, "payload": payload}); err != nil {
		t.Fatalf("write %s: %v", typ, err)
	}
}

func readNext(conn *websocket.Conn, t *testing.T, expect string) json.RawMessage {
	t.Helper()
	var msg envelope
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if expect != "" && msg.Type != expect {
		t.Fatalf("expected type %s, got %s (%s)", expect, msg.Type, msg.Payload)
	}
	return msg.Payload
}

func decode(t *testing.T, raw json.RawMessage, v any) {
	t.Helper()
	if err := json.Unmarshal(raw, v); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
}

func sampleCatalog() domain.Catalog {
	return domain.Catalog{
		ID: "catalog-1",
		Questions: []domain.Question{
			{
				Category: "Math",
				Prompt:   "What is 2 + 2?",
				Options:  []string{"3", "4", "5"},
				Answer:   "4",
			},
		},
	}
}
