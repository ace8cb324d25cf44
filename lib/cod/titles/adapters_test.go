package titles

import (
	"context"
	"errors"
	"testing"

	"codstats-backend/lib/cod/endpoints"
	"codstats-backend/lib/cod/errs"
	"codstats-backend/lib/cod/platform"
	"codstats-backend/lib/cod/session"
	"codstats-backend/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func TestStoreOperations(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:cod/titles")
	defer cleanup()

	u := newUpstream(t, `{"status":"success","data":{}}`)
	s := NewStore(newDispatch(t, u))
	sess := legacySession(t)

	_, err := s.PurchasableItems(context.Background(), sess, ModernWarfare)
	require.NoError(t, err)
	require.Equal(t, "/inventory/v1/title/mw/platform/uno/purchasable/public/en", u.lastPath)

	_, err = s.BundleInformation(context.Background(), sess, ModernWarfare, "400525")
	require.NoError(t, err)
	require.Equal(t, "/inventory/v2/title/mw/bundle/400525/en", u.lastPath)

	_, err = s.BattlePassLoot(context.Background(), sess, Vanguard, platform.PSN, 2)
	require.NoError(t, err)
	require.Equal(t, "/loot/title/vg/platform/psn/list/loot_season_2/en", u.lastPath)
}

func TestUserOperations(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:cod/titles")
	defer cleanup()

	u := newUpstream(t, `{"status":"success","data":{}}`)
	usr := NewUser(newDispatch(t, u))
	sess := legacySession(t)

	_, err := usr.FriendFeed(context.Background(), sess, "gamer", platform.PSN)
	require.NoError(t, err)
	require.Equal(t, "/userfeed/v1/friendFeed/platform/psn/gamer/gamer/friendFeedEvents/en", u.lastPath)

	// event feed and identities address the session itself
	_, err = usr.EventFeed(context.Background(), sess)
	require.NoError(t, err)
	require.Equal(t, "/userfeed/v1/friendFeed/rendered/en/TOK", u.lastPath)

	_, err = usr.Identities(context.Background(), sess)
	require.NoError(t, err)
	require.Equal(t, "/crm/cod/v2/identities/TOK", u.lastPath)

	_, err = usr.CODPoints(context.Background(), sess, "gamer", platform.PSN)
	require.NoError(t, err)
	require.Equal(t, "/inventory/v1/title/mw/platform/psn/gamer/gamer/currency", u.lastPath)

	_, err = usr.ConnectedAccounts(context.Background(), sess, "12345", platform.Uno)
	require.NoError(t, err)
	require.Equal(t, "/crm/cod/v2/accounts/platform/uno/id/12345", u.lastPath)

	_, err = usr.Settings(context.Background(), sess, "gamer", platform.PSN)
	require.NoError(t, err)
	require.Equal(t, "/preferences/v1/platform/psn/gamer/gamer/list", u.lastPath)
}

func TestUserFriendAction(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:cod/titles")
	defer cleanup()

	u := newUpstream(t, `{"status":"success","data":{}}`)
	usr := NewUser(newDispatch(t, u))
	sess := legacySession(t)

	_, err := usr.FriendAction(context.Background(), sess, "gamer", platform.Xbox, endpoints.FriendBlock)
	require.NoError(t, err)
	require.Equal(t, "/codfriends/v1/block/xbl/gamer/gamer", u.lastPath)

	_, err = usr.FriendAction(context.Background(), sess, "gamer", platform.Xbox, endpoints.FriendAction("poke"))
	var verr errs.ValidationError
	require.True(t, errors.As(err, &verr))
}

func TestUserOperationsRequireLegacyLogin(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:cod/titles")
	defer cleanup()

	u := newUpstream(t, `{}`)
	usr := NewUser(newDispatch(t, u))
	sess, err := session.New(session.Options{})
	require.NoError(t, err)

	_, err = usr.EventFeed(context.Background(), sess)
	var aerr errs.AuthenticationError
	require.True(t, errors.As(err, &aerr))
	require.Equal(t, int64(0), u.calls.Load())
}

// search alone is valid against every platform, steam included
func TestSearchAllowsRestrictedPlatform(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:cod/titles")
	defer cleanup()

	u := newUpstream(t, `{"status":"success","data":[]}`)
	s := NewSearch(newDispatch(t, u))
	sess := legacySession(t)

	_, err := s.FuzzySearch(context.Background(), sess, "gamer", platform.Steam)
	require.NoError(t, err)
	require.Equal(t, "/crm/cod/v2/platform/steam/username/gamer/search", u.lastPath)

	_, err = s.FuzzySearch(context.Background(), sess, "gamer#1234", platform.Activision)
	require.NoError(t, err)
	require.Equal(t, "/crm/cod/v2/platform/uno/username/gamer%231234/search", u.lastPath)
}
