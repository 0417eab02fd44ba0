package realtime_test

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/signbridge/interview-api/api/realtime"
	"github.com/signbridge/interview-api/databases/mocks"
	"github.com/signbridge/interview-api/models"
)

func newDispatcher(db *mocks.SessionDatabase) (*realtime.Dispatcher, *realtime.Hub) {
	hub := realtime.NewHub()
	return &realtime.Dispatcher{Hub: hub, Router: &realtime.Router{DB: db}}, hub
}

func TestHandleInboundPingRepliesWithSinglePong(t *testing.T) {
	d, hub := newDispatcher(&mocks.SessionDatabase{})
	conn := &recorderConn{}
	hub.Register("cand-1", conn)

	d.HandleInbound(context.Background(), "cand-1", []byte(`{"type":"ping"}`))

	assert.Len(t, conn.writes, 1)
	assert.Equal(t, realtime.Pong{Type: realtime.TypePong}, conn.writes[0])
}

func TestHandleInboundMessageFansOutToAllParticipants(t *testing.T) {
	db := &mocks.SessionDatabase{}
	db.On("FindOne", mock.Anything, mock.Anything).Return(&models.InterviewSession{
		SessionID:   "sess-1",
		CandidateID: strPtr("cand-1"),
		HRID:        strPtr("hr-1"),
		Status:      models.SessionStatusActive,
	}, nil)
	d, hub := newDispatcher(db)

	sender := &recorderConn{}
	peer := &recorderConn{}
	hub.Register("cand-1", sender)
	hub.Register("hr-1", peer)

	frame := []byte(`{"type":"message","session_id":"sess-1","content":"hello"}`)
	d.HandleInbound(context.Background(), "cand-1", frame)

	// the sender gets its own message back as a local echo
	assert.Len(t, sender.writes, 1)
	assert.Len(t, peer.writes, 1)
	assert.Equal(t, json.RawMessage(frame), peer.writes[0])
}

func TestHandleInboundMessageWithoutSessionIDIsIgnored(t *testing.T) {
	db := &mocks.SessionDatabase{}
	d, hub := newDispatcher(db)
	conn := &recorderConn{}
	hub.Register("cand-1", conn)

	d.HandleInbound(context.Background(), "cand-1", []byte(`{"type":"message","content":"lost"}`))

	assert.Empty(t, conn.writes)
	db.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
}

func TestHandleInboundUnknownTypeIsIgnored(t *testing.T) {
	d, hub := newDispatcher(&mocks.SessionDatabase{})
	conn := &recorderConn{}
	hub.Register("cand-1", conn)

	d.HandleInbound(context.Background(), "cand-1", []byte(`{"type":"typing_indicator"}`))

	assert.Empty(t, conn.writes)
}

func TestHandleInboundMalformedFrameIsIgnored(t *testing.T) {
	d, hub := newDispatcher(&mocks.SessionDatabase{})
	conn := &recorderConn{}
	hub.Register("cand-1", conn)

	assert.NotPanics(t, func() {
		d.HandleInbound(context.Background(), "cand-1", []byte(`not json at all`))
	})
	assert.Empty(t, conn.writes)
}

// serialConn flags any two writers inside WriteJSON at the same time
type serialConn struct {
	inflight int32
	overlaps int32
}

func (c *serialConn) WriteJSON(v interface{}) error {
	if atomic.AddInt32(&c.inflight, 1) > 1 {
		atomic.AddInt32(&c.overlaps, 1)
	}
	time.Sleep(time.Microsecond)
	atomic.AddInt32(&c.inflight, -1)
	return nil
}

func (c *serialConn) SetWriteDeadline(t time.Time) error { return nil }

func (c *serialConn) Close() error { return nil }

func TestHandleInboundPingSerializedWithConcurrentFanOut(t *testing.T) {
	db := &mocks.SessionDatabase{}
	db.On("FindOne", mock.Anything, mock.Anything).Return(&models.InterviewSession{
		SessionID:   "sess-1",
		CandidateID: strPtr("cand-1"),
		HRID:        strPtr("hr-1"),
		Status:      models.SessionStatusActive,
	}, nil)
	d, hub := newDispatcher(db)

	conn := &serialConn{}
	hub.Register("cand-1", conn)

	const rounds = 200
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			d.SendToSession(context.Background(), "sess-1", "payload")
		}
	}()
	for i := 0; i < rounds; i++ {
		d.HandleInbound(context.Background(), "cand-1", []byte(`{"type":"ping"}`))
	}
	wg.Wait()

	assert.Zero(t, atomic.LoadInt32(&conn.overlaps))
}

func TestSendToSessionVanishedSessionIsNoop(t *testing.T) {
	db := &mocks.SessionDatabase{}
	db.On("FindOne", mock.Anything, mock.Anything).Return(nil, mongo.ErrNoDocuments)
	d, hub := newDispatcher(db)
	conn := &recorderConn{}
	hub.Register("cand-1", conn)

	assert.NotPanics(t, func() {
		d.SendToSession(context.Background(), "no-such-session", "payload")
	})
	assert.Empty(t, conn.writes)
}

func TestSendToSessionSkipsDisconnectedParticipants(t *testing.T) {
	db := &mocks.SessionDatabase{}
	db.On("FindOne", mock.Anything, mock.Anything).Return(&models.InterviewSession{
		SessionID:   "sess-1",
		CandidateID: strPtr("cand-1"),
		HRID:        strPtr("hr-1"),
		Status:      models.SessionStatusActive,
	}, nil)
	d, hub := newDispatcher(db)

	connected := &recorderConn{}
	hub.Register("hr-1", connected)

	d.SendToSession(context.Background(), "sess-1", "payload")

	assert.Len(t, connected.writes, 1)
}

func TestParseEnvelope(t *testing.T) {
	env, ok := realtime.ParseEnvelope([]byte(`{"type":"message","session_id":"sess-1"}`))
	assert.True(t, ok)
	assert.Equal(t, realtime.TypeMessage, env.Type)
	assert.Equal(t, "sess-1", env.SessionID)

	_, ok = realtime.ParseEnvelope([]byte(`{`))
	assert.False(t, ok)
}
