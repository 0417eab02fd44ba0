package realtime

import (
	"context"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/signbridge/interview-api/databases"
)

// Router resolves which users are entitled to receive a session's messages.
// It reads session state and never mutates it.
type Router struct {
	DB databases.SessionDatabase
}

// Participants returns the connected-or-not participant IDs of a session,
// candidate first. A session that does not exist (or a store error) yields
// an empty set so that fan-out degrades to a no-op instead of failing the
// caller.
func (r *Router) Participants(ctx context.Context, sessionID string) []string {
	session, err := r.DB.FindOne(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return nil
	}
	return lo.FilterMap([]*string{session.CandidateID, session.HRID}, func(id *string, _ int) (string, bool) {
		return lo.FromPtr(id), lo.FromPtr(id) != ""
	})
}
