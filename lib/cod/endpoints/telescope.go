package endpoints

import "fmt"

// The telescope backend serves every response in english; the language
// parameter is not caller-selectable.

// Lifetime builds the lifetime stats path for a telescope title.
func Lifetime(title, unoID string) Request {
	return get(Telescope, fmt.Sprintf(
		"/cr/v1/title/%s/lifetime?language=english&unoId=%s",
		title, unoID,
	))
}

// MatchList builds the recent matches path for a telescope title.
func MatchList(title, unoID string) Request {
	return get(Telescope, fmt.Sprintf(
		"/cr/v1/title/%s/matches?language=english&unoId=%s",
		title, unoID,
	))
}

// MatchByID builds the single match path for a telescope title.
func MatchByID(title, matchID, unoID string) Request {
	return get(Telescope, fmt.Sprintf(
		"/cr/v1/title/%s/matches/%s?language=english&unoId=%s",
		title, matchID, unoID,
	))
}
