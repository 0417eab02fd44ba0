package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/signbridge/interview-api/api/realtime"
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust CORS as needed, e.g., check r.Header.Get("Origin")
	},
}

// Websocket exported for testing purposes
type Websocket struct {
	Hub        *realtime.Hub
	Dispatcher *realtime.Dispatcher
}

// ServeWS upgrades /ws/{user_id} to a websocket, registers the connection in
// the hub and runs the protocol loop until the peer goes away. The registry
// entry is removed on every exit path, abrupt disconnects included.
func (ws Websocket) ServeWS(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Errorw("websocket upgrade failed", "userID", userID, "error", err)
		return
	}

	ws.Hub.Register(userID, conn)
	defer func() {
		ws.Hub.Unregister(userID)
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		ws.Dispatcher.HandleInbound(r.Context(), userID, data)
	}
}
