package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/quiz"
)

type WSHandler struct {
	service  *app.QuizService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.QuizService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type selectPayload struct {
	Option string `json:"option"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

type welcomePayload struct {
	PlayerID string    `json:"playerId"`
	View     quiz.View `json:"view"`
}

// ServeWS upgrades HTTP requests to websockets and drives one player's quiz.
// Clients send select/next/retry/summary messages and receive the re-rendered
// view after every one; "end" drops the session and closes the socket.
// A missing playerId gets a fresh one, and that session is dropped on
// disconnect since nobody can resume it.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	playerID := r.URL.Query().Get("playerId")
	anonymous := playerID == ""
	if anonymous {
		playerID = uuid.NewString()
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()
	if anonymous {
		defer h.release(context.WithoutCancel(ctx), playerID)
	}

	view, err := h.service.Open(ctx, playerID)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	if err := conn.WriteJSON(outboundMessage[welcomePayload]{Type: "welcome", Payload: welcomePayload{PlayerID: playerID, View: view}}); err != nil {
		log.Printf("ws write error: %v", err)
		return
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws read error for player %s: %v", playerID, err)
			}
			return
		}

		var reply any
		switch inbound.Type {
		case "select":
			var payload selectPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				reply = errorMessage("invalid select payload")
				break
			}
			reply = viewMessage(h.service.Select(ctx, playerID, payload.Option))
		case "next":
			reply = viewMessage(h.service.Next(ctx, playerID))
		case "retry":
			reply = viewMessage(h.service.Retry(ctx, playerID))
		case "end":
			if err := h.service.End(ctx, playerID); err != nil {
				reply = errorMessage(err.Error())
				break
			}
			_ = conn.WriteJSON(outboundMessage[struct{}]{Type: "ended"})
			return
		case "view":
			reply = viewMessage(h.service.Current(ctx, playerID))
		case "summary":
			summary, err := h.service.Summary(ctx, playerID)
			if err != nil {
				reply = errorMessage(err.Error())
				break
			}
			reply = outboundMessage[any]{Type: "summary", Payload: summary}
		default:
			reply = errorMessage("unsupported message type")
		}

		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("ws write error: %v", err)
			return
		}
	}
}

func (h *WSHandler) release(ctx context.Context, playerID string) {
	if err := h.service.End(ctx, playerID); err != nil {
		log.Printf("release session for player %s: %v", playerID, err)
	}
}

func viewMessage(view quiz.View, err error) outboundMessage[any] {
	if err != nil {
		return errorMessage(err.Error())
	}
	return outboundMessage[any]{Type: "view", Payload: view}
}

func errorMessage(msg string) outboundMessage[any] {
	return outboundMessage[any]{Type: "error", Payload: errorPayload{Message: msg}}
}
