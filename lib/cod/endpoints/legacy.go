package endpoints

import (
	"fmt"

	"codstats-backend/lib/cod/platform"
)

// FriendAction is one of the verbs accepted by the codfriends service.
type FriendAction string

const (
	FriendInvite   FriendAction = "invite"
	FriendUninvite FriendAction = "uninvite"
	FriendRemove   FriendAction = "remove"
	FriendBlock    FriendAction = "block"
	FriendUnblock  FriendAction = "unblock"
)

var friendActions = map[FriendAction]bool{
	FriendInvite:   true,
	FriendUninvite: true,
	FriendRemove:   true,
	FriendBlock:    true,
	FriendUnblock:  true,
}

func ValidFriendAction(a FriendAction) bool {
	return friendActions[a]
}

// Profile builds the lifetime stats path for a legacy title.
func Profile(title string, id platform.Identity, mode string) Request {
	return get(Legacy, fmt.Sprintf(
		"/stats/cod/v1/title/%s/platform/%s/%s/%s/profile/type/%s",
		title, id.Tag, id.Lookup, id.Handle, mode,
	))
}

// MatchHistory builds the combat history path. The implicit all-time
// window is the (0, 0) window; callers wanting the plain variant pass
// zeros and get an identical path.
func MatchHistory(title string, id platform.Identity, mode string, start, end int64) Request {
	return get(Legacy, fmt.Sprintf(
		"/crm/cod/v2/title/%s/platform/%s/%s/%s/matches/%s/start/%d/end/%d/details",
		title, id.Tag, id.Lookup, id.Handle, mode, start, end,
	))
}

// Breakdown is MatchHistory without per-match details.
func Breakdown(title string, id platform.Identity, mode string, start, end int64) Request {
	return get(Legacy, fmt.Sprintf(
		"/crm/cod/v2/title/%s/platform/%s/%s/%s/matches/%s/start/%d/end/%d",
		title, id.Tag, id.Lookup, id.Handle, mode, start, end,
	))
}

// MatchDetail builds the full-match path. The mode segment is always
// the literal "wz" no matter which title is asking; the upstream only
// serves full matches under that segment, multiplayer titles included.
func MatchDetail(title string, id platform.Identity, matchID string) Request {
	return get(Legacy, fmt.Sprintf(
		"/crm/cod/v2/title/%s/platform/%s/fullMatch/wz/%s/en",
		title, id.Tag, matchID,
	))
}

// SeasonLoot builds the loot list path for one battle-pass season.
func SeasonLoot(title string, id platform.Identity, season int) Request {
	return get(Legacy, fmt.Sprintf(
		"/loot/title/%s/platform/%s/list/loot_season_%d/en",
		title, id.Tag, season,
	))
}

// LootStatus builds the per-player loot progress path. Unlike
// SeasonLoot this addresses a handle, not a season.
func LootStatus(title string, id platform.Identity) Request {
	return get(Legacy, fmt.Sprintf(
		"/loot/title/%s/platform/%s/gamer/%s/status/en",
		title, id.Tag, id.Handle,
	))
}

// MapList builds the community map availability path for a mode.
func MapList(title string, id platform.Identity, mode string) Request {
	return get(Legacy, fmt.Sprintf(
		"/ce/v1/title/%s/platform/%s/gameType/%s/communityMapData/availability",
		title, id.Tag, mode,
	))
}

// Currency builds the COD points balance path. The upstream hangs the
// wallet off the mw title for every game.
func Currency(id platform.Identity) Request {
	return get(Legacy, fmt.Sprintf(
		"/inventory/v1/title/mw/platform/%s/gamer/%s/currency",
		id.Tag, id.Handle,
	))
}

// ConnectedAccounts builds the linked platform accounts path.
func ConnectedAccounts(id platform.Identity) Request {
	return get(Legacy, fmt.Sprintf(
		"/crm/cod/v2/accounts/platform/%s/%s/%s",
		id.Tag, id.Lookup, id.Handle,
	))
}

// Preferences builds the account preference list path.
func Preferences(id platform.Identity) Request {
	return get(Legacy, fmt.Sprintf(
		"/preferences/v1/platform/%s/gamer/%s/list",
		id.Tag, id.Handle,
	))
}

// FriendFeed builds the friend activity feed path for a handle.
func FriendFeed(id platform.Identity) Request {
	return get(Legacy, fmt.Sprintf(
		"/userfeed/v1/friendFeed/platform/%s/gamer/%s/friendFeedEvents/en",
		id.Tag, id.Handle,
	))
}

// EventFeed builds the rendered event feed path. It addresses the
// session itself, not a handle: the SSO token rides in the path.
func EventFeed(ssoToken string) Request {
	return get(Legacy, fmt.Sprintf(
		"/userfeed/v1/friendFeed/rendered/en/%s", ssoToken,
	))
}

// Identities builds the linked-identity listing path, again keyed by
// the session's SSO token.
func Identities(ssoToken string) Request {
	return get(Legacy, fmt.Sprintf("/crm/cod/v2/identities/%s", ssoToken))
}

// Friend builds the friend action POST. The upstream expects an empty
// JSON object body.
func Friend(action FriendAction, id platform.Identity) Request {
	return Request{
		Backend: Legacy,
		Method:  "POST",
		Path: fmt.Sprintf(
			"/codfriends/v1/%s/%s/%s/%s",
			action, id.Tag, id.Lookup, id.Handle,
		),
		Body: "{}",
	}
}

// FuzzySearch builds the username search path.
func FuzzySearch(id platform.Identity) Request {
	return get(Legacy, fmt.Sprintf(
		"/crm/cod/v2/platform/%s/username/%s/search",
		id.Tag, id.Handle,
	))
}
