// Package realtime implements the live delivery layer: the connection hub,
// session participant routing and the websocket message protocol. Delivery
// is best effort only; persisted messages share the same fan-out path but
// are the only ones retrievable after a reconnect.
package realtime

import (
	"context"
	"encoding/json"
)

// Recognized inbound frame discriminators. Anything else is ignored.
const (
	TypePing    = "ping"
	TypePong    = "pong"
	TypeMessage = "message"
)

// Envelope is the decoded shape of an inbound frame. Only the discriminator
// and the routing key are interpreted; the rest of the frame is forwarded
// verbatim.
type Envelope struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
}

// Pong is the reply to a ping frame
type Pong struct {
	Type string `json:"type"`
}

// ParseEnvelope decodes an inbound frame. Malformed frames report ok=false
// and are dropped by the caller; a bad frame never tears down the channel.
func ParseEnvelope(data []byte) (Envelope, bool) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, false
	}
	return env, true
}

// Dispatcher routes frames between the hub and the session store
type Dispatcher struct {
	Hub    *Hub
	Router *Router
}

// SendToSession pushes payload to every participant of the session,
// including the sender. Resolution of a vanished session is empty, so the
// whole call degrades to a no-op.
func (d *Dispatcher) SendToSession(ctx context.Context, sessionID string, payload interface{}) {
	for _, userID := range d.Router.Participants(ctx, sessionID) {
		d.Hub.Send(userID, payload)
	}
}

// HandleInbound processes one frame read from userID's channel. Ping frames
// are answered with exactly one pong on the same connection; message frames
// carrying a session_id fan out to that session's participants; everything
// else is swallowed and the channel stays open. The pong goes through the
// hub so it shares the connection's write lock with concurrent fan-outs.
func (d *Dispatcher) HandleInbound(ctx context.Context, userID string, data []byte) {
	env, ok := ParseEnvelope(data)
	if !ok {
		return
	}

	switch env.Type {
	case TypePing:
		d.Hub.Send(userID, Pong{Type: TypePong})
	case TypeMessage:
		if env.SessionID == "" {
			return
		}
		d.SendToSession(ctx, env.SessionID, json.RawMessage(data))
	}
}
