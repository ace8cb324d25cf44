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

// User answers account-level queries. Every operation here requires
// legacy authentication; EventFeed and Identities need no handle at
// all, only the authenticated session.
type User struct {
	d *dispatch.Client
}

func NewUser(d *dispatch.Client) User {
	return User{d: d}
}

func (u User) FriendFeed(ctx context.Context, sess *session.Session, handle string, tag platform.Tag) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "FriendFeed")
	defer span.End()

	id, err := platform.Resolve(handle, tag, false)
	if err != nil {
		return nil, err
	}
	return u.d.Execute(ctx, sess, endpoints.FriendFeed(id))
}

func (u User) EventFeed(ctx context.Context, sess *session.Session) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "EventFeed")
	defer span.End()

	return u.d.Execute(ctx, sess, endpoints.EventFeed(sess.SSOToken()))
}

func (u User) Identities(ctx context.Context, sess *session.Session) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "Identities")
	defer span.End()

	return u.d.Execute(ctx, sess, endpoints.Identities(sess.SSOToken()))
}

func (u User) CODPoints(ctx context.Context, sess *session.Session, handle string, tag platform.Tag) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "CODPoints")
	defer span.End()

	id, err := platform.Resolve(handle, tag, false)
	if err != nil {
		return nil, err
	}
	return u.d.Execute(ctx, sess, endpoints.Currency(id))
}

func (u User) ConnectedAccounts(ctx context.Context, sess *session.Session, handle string, tag platform.Tag) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "ConnectedAccounts")
	defer span.End()

	id, err := platform.Resolve(handle, tag, false)
	if err != nil {
		return nil, err
	}
	return u.d.Execute(ctx, sess, endpoints.ConnectedAccounts(id))
}

func (u User) Settings(ctx context.Context, sess *session.Session, handle string, tag platform.Tag) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "Settings")
	defer span.End()

	id, err := platform.Resolve(handle, tag, false)
	if err != nil {
		return nil, err
	}
	return u.d.Execute(ctx, sess, endpoints.Preferences(id))
}

// FriendAction performs one of invite/uninvite/remove/block/unblock
// against another account.
func (u User) FriendAction(ctx context.Context, sess *session.Session, handle string, tag platform.Tag, action endpoints.FriendAction) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "FriendAction")
	defer span.End()

	if !endpoints.ValidFriendAction(action) {
		return nil, errs.ValidationError{
			Reason: fmt.Sprintf("unknown friend action %q", string(action)),
		}
	}
	id, err := platform.Resolve(handle, tag, false)
	if err != nil {
		return nil, err
	}
	return u.d.Execute(ctx, sess, endpoints.Friend(action, id))
}
