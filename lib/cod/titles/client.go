package titles

import (
	"context"
	"encoding/json"
	"fmt"

	"codstats-backend/lib/cod/dispatch"
	"codstats-backend/lib/cod/endpoints"
	"codstats-backend/lib/cod/errs"
	"codstats-backend/lib/cod/platform"
	"codstats-backend/lib/cod/session"
)

// Client answers per-title stats queries. It is stateless; all
// authentication state rides in the Session passed to every call.
type Client struct {
	d *dispatch.Client
}

func NewClient(d *dispatch.Client) Client {
	return Client{d: d}
}

// resolveFor applies the title's identity rules: telescope titles take
// a bare numeric uno id and reject a platform parameter outright,
// legacy titles resolve the full handle/platform pair.
func resolveFor(t Title, handle string, tag platform.Tag) (platform.Identity, error) {
	if t.NumericIDOnly {
		if tag != "" {
			return platform.Identity{}, errs.ValidationError{
				Reason: fmt.Sprintf("title %s addresses accounts by uno id only and takes no platform", t.Code),
			}
		}
		return platform.Resolve(handle, platform.Uno, false)
	}
	return platform.Resolve(handle, tag, false)
}

// FullStats fetches lifetime stats. Telescope titles serve these from
// their lifetime endpoint; legacy titles from the profile endpoint
// under the title's own mode.
func (c Client) FullStats(ctx context.Context, sess *session.Session, t Title, handle string, tag platform.Tag) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "FullStats")
	defer span.End()

	id, err := resolveFor(t, handle, tag)
	if err != nil {
		return nil, err
	}
	if t.Backend == endpoints.Telescope {
		return c.d.Execute(ctx, sess, endpoints.Lifetime(t.Code, id.Handle))
	}
	return c.d.Execute(ctx, sess, endpoints.Profile(t.Code, id, t.DefaultMode))
}

// CombatHistory fetches recent matches over the implicit all-time
// window.
func (c Client) CombatHistory(ctx context.Context, sess *session.Session, t Title, handle string, tag platform.Tag) (json.RawMessage, error) {
	return c.CombatHistoryWithDate(ctx, sess, t, handle, tag, 0, 0)
}

// CombatHistoryWithDate fetches matches inside an explicit epoch
// window. Telescope titles only expose the undated list; passing a
// window there other than (0, 0) is a validation error.
func (c Client) CombatHistoryWithDate(ctx context.Context, sess *session.Session, t Title, handle string, tag platform.Tag, start, end int64) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "CombatHistory")
	defer span.End()

	id, err := resolveFor(t, handle, tag)
	if err != nil {
		return nil, err
	}
	if t.Backend == endpoints.Telescope {
		if start != 0 || end != 0 {
			return nil, errs.ValidationError{
				Reason: fmt.Sprintf("title %s does not support dated match history", t.Code),
			}
		}
		return c.d.Execute(ctx, sess, endpoints.MatchList(t.Code, id.Handle))
	}
	return c.d.Execute(ctx, sess, endpoints.MatchHistory(t.Code, id, t.DefaultMode, start, end))
}

// Breakdown fetches the per-match summary rows without details.
func (c Client) Breakdown(ctx context.Context, sess *session.Session, t Title, handle string, tag platform.Tag) (json.RawMessage, error) {
	return c.BreakdownWithDate(ctx, sess, t, handle, tag, 0, 0)
}

// BreakdownWithDate is Breakdown over an explicit epoch window.
func (c Client) BreakdownWithDate(ctx context.Context, sess *session.Session, t Title, handle string, tag platform.Tag, start, end int64) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "Breakdown")
	defer span.End()

	if t.Backend == endpoints.Telescope {
		return nil, errs.ValidationError{
			Reason: fmt.Sprintf("title %s does not support match breakdowns", t.Code),
		}
	}
	id, err := resolveFor(t, handle, tag)
	if err != nil {
		return nil, err
	}
	return c.d.Execute(ctx, sess, endpoints.Breakdown(t.Code, id, t.DefaultMode, start, end))
}

// MatchDetail fetches one match by id. Legacy titles need only a
// platform (the handle may be empty); telescope titles need the
// caller's uno id in the handle position.
func (c Client) MatchDetail(ctx context.Context, sess *session.Session, t Title, matchID, handle string, tag platform.Tag) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "MatchDetail")
	defer span.End()

	id, err := resolveFor(t, handle, tag)
	if err != nil {
		return nil, err
	}
	if t.Backend == endpoints.Telescope {
		return c.d.Execute(ctx, sess, endpoints.MatchByID(t.Code, matchID, id.Handle))
	}
	return c.d.Execute(ctx, sess, endpoints.MatchDetail(t.Code, id, matchID))
}

// SeasonLoot fetches one season's battle-pass loot table for titles
// that expose it.
func (c Client) SeasonLoot(ctx context.Context, sess *session.Session, t Title, tag platform.Tag, season int) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "SeasonLoot")
	defer span.End()

	if !t.SeasonLoot {
		return nil, errs.ValidationError{
			Reason: fmt.Sprintf("title %s does not expose season loot", t.Code),
		}
	}
	id, err := platform.Resolve("", tag, false)
	if err != nil {
		return nil, err
	}
	return c.d.Execute(ctx, sess, endpoints.SeasonLoot(t.Code, id, season))
}

// LootProgress fetches a player's battle-pass loot status for titles
// that expose loot data.
func (c Client) LootProgress(ctx context.Context, sess *session.Session, t Title, handle string, tag platform.Tag) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "LootProgress")
	defer span.End()

	if !t.SeasonLoot {
		return nil, errs.ValidationError{
			Reason: fmt.Sprintf("title %s does not expose loot data", t.Code),
		}
	}
	id, err := platform.Resolve(handle, tag, false)
	if err != nil {
		return nil, err
	}
	return c.d.Execute(ctx, sess, endpoints.LootStatus(t.Code, id))
}

// MapList fetches community map availability for titles that expose
// it, under the title's own mode.
func (c Client) MapList(ctx context.Context, sess *session.Session, t Title, tag platform.Tag) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "MapList")
	defer span.End()

	if !t.MapList {
		return nil, errs.ValidationError{
			Reason: fmt.Sprintf("title %s does not expose a map list", t.Code),
		}
	}
	id, err := platform.Resolve("", tag, false)
	if err != nil {
		return nil, err
	}
	return c.d.Execute(ctx, sess, endpoints.MapList(t.Code, id, t.DefaultMode))
}
