package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/websocket/v2"

	"github.com/matchboard/gamelogic/internal/protocol"
	"github.com/matchboard/gamelogic/internal/service"
	"github.com/matchboard/gamelogic/internal/ws"
)

type WebSocketController struct {
	engineService *service.EngineService
}

func NewWebSocketController(engineService *service.EngineService) *WebSocketController {
	return &WebSocketController{engineService: engineService}
}

// HandleConnection runs the per-connection read loop. Every text message
// is one request envelope and is answered with exactly one response or
// error envelope; the connection carries no session state.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	defer c.Close()

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Printf("read error: %v", err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.send(c, ws.MessageTypeError, protocol.ErrorResponse{
				Error: "malformed message: " + err.Error(),
			})
			continue
		}
		if msg.Type != ws.MessageTypeRequest {
			wsc.send(c, ws.MessageTypeError, protocol.ErrorResponse{
				Error: fmt.Sprintf("unknown message type: %s", msg.Type),
			})
			continue
		}

		var req protocol.Request
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			wsc.send(c, ws.MessageTypeError, protocol.ErrorResponse{
				Error: "malformed request: " + err.Error(),
			})
			continue
		}

		resp := wsc.engineService.Dispatch(req)
		kind := ws.MessageTypeResponse
		if _, failed := resp.(protocol.ErrorResponse); failed {
			kind = ws.MessageTypeError
		}
		wsc.send(c, kind, resp)
	}
}

func (wsc *WebSocketController) send(c *websocket.Conn, kind ws.MessageType, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Printf("marshal error: %v", err)
		return
	}
	if err := c.WriteJSON(ws.Message{Type: kind, Payload: raw}); err != nil {
		log.Printf("write error: %v", err)
	}
}
