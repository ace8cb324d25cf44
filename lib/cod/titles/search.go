package titles

import (
	"context"
	"encoding/json"

	"codstats-backend/lib/cod/dispatch"
	"codstats-backend/lib/cod/endpoints"
	"codstats-backend/lib/cod/platform"
	"codstats-backend/lib/cod/session"
)

// Search answers fuzzy username lookups. Search is the one operation
// the upstream documents as valid against every platform, so it passes
// the restricted-platform override when resolving.
type Search struct {
	d *dispatch.Client
}

func NewSearch(d *dispatch.Client) Search {
	return Search{d: d}
}

func (s Search) FuzzySearch(ctx context.Context, sess *session.Session, handle string, tag platform.Tag) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "FuzzySearch")
	defer span.End()

	id, err := platform.Resolve(handle, tag, true)
	if err != nil {
		return nil, err
	}
	return s.d.Execute(ctx, sess, endpoints.FuzzySearch(id))
}
