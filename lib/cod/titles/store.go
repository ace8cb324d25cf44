package titles

import (
	"context"
	"encoding/json"

	"codstats-backend/lib/cod/dispatch"
	"codstats-backend/lib/cod/endpoints"
	"codstats-backend/lib/cod/platform"
	"codstats-backend/lib/cod/session"
)

// Store answers catalog queries. Purchasable items and bundle detail
// take no platform or identity at all; battle-pass loot still resolves
// a platform because its path carries one.
type Store struct {
	d *dispatch.Client
}

func NewStore(d *dispatch.Client) Store {
	return Store{d: d}
}

func (s Store) PurchasableItems(ctx context.Context, sess *session.Session, t Title) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "PurchasableItems")
	defer span.End()

	return s.d.Execute(ctx, sess, endpoints.Purchasable(t.Code))
}

func (s Store) BundleInformation(ctx context.Context, sess *session.Session, t Title, bundleID string) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "BundleInformation")
	defer span.End()

	return s.d.Execute(ctx, sess, endpoints.Bundle(t.Code, bundleID))
}

func (s Store) BattlePassLoot(ctx context.Context, sess *session.Session, t Title, tag platform.Tag, season int) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "BattlePassLoot")
	defer span.End()

	id, err := platform.Resolve("", tag, false)
	if err != nil {
		return nil, err
	}
	return s.d.Execute(ctx, sess, endpoints.SeasonLoot(t.Code, id, season))
}
