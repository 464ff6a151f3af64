package service

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/hitesh0303/union-coders/types"
)

// WebSocketService carries the chat endpoint's semantics over a websocket so
// the client can keep one connection open for a whole conversation. The
// transcript still lives on the client; every chat frame carries the history
// and the document content it is about.
type WebSocketService struct {
	ai       AIService
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

func NewWebSocketService(ai AIService, logger *zap.Logger) *WebSocketService {
	return &WebSocketService{
		ai: ai,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
		logger: logger,
	}
}

func (s *WebSocketService) HandleChat(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	// Set connection properties
	conn.SetReadLimit(512 * 1024) // 512KB max message size
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.logger.Warn("websocket read error", zap.Error(err))
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		var req types.WebsocketRequest
		if err := json.Unmarshal(p, &req); err != nil {
			s.writeError(conn, "invalid message")
			continue
		}

		switch req.Type {
		case types.TypeWebsocketChat:
			payloadBytes, err := json.Marshal(req.Payload)
			if err != nil {
				s.writeError(conn, "invalid payload")
				continue
			}
			var payload types.WebSocketChatPayload
			if err := json.Unmarshal(payloadBytes, &payload); err != nil {
				s.writeError(conn, "invalid payload")
				continue
			}
			if payload.Message == "" {
				s.writeError(conn, "message is required")
				continue
			}

			prompt := ChatPrompt(payload.Message, payload.DocumentContent)
			reply, err := s.ai.Chat(ctx, prompt, payload.History)
			if err != nil {
				s.logger.Warn("chat failed", zap.Error(err))
				s.writeError(conn, "error processing message")
				continue
			}
			res := types.WebSocketResponse{
				Type:    types.TypeWebsocketChat,
				Payload: types.WebSocketChatResponse{Message: reply},
			}
			if err := conn.WriteJSON(res); err != nil {
				s.logger.Warn("websocket write error", zap.Error(err))
			}
		case types.TypeWebsocketPing:
			// Send a pong message back to the client
			pongRes := types.WebSocketResponse{
				Type: types.TypeWebsocketPong,
			}
			if err := conn.WriteJSON(pongRes); err != nil {
				s.logger.Warn("websocket write error", zap.Error(err))
			}
		default:
			s.writeError(conn, "invalid message type")
		}
	}
}

func (s *WebSocketService) writeError(conn *websocket.Conn, message string) {
	res := types.WebSocketResponse{
		Type:    types.TypeWebsocketError,
		Payload: types.WebSocketChatResponse{Message: message},
	}
	if err := conn.WriteJSON(res); err != nil {
		s.logger.Warn("websocket write error", zap.Error(err))
	}
}
