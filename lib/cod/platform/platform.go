// Package platform validates platform selectors and normalizes
// gamertags into identities usable in upstream URL paths.
package platform

import (
	"fmt"
	"strings"

	"codstats-backend/lib/cod/errs"
)

type Tag string

const (
	All        Tag = "all"
	Activision Tag = "acti"
	Battlenet  Tag = "battle"
	PSN        Tag = "psn"
	Steam      Tag = "steam"
	Uno        Tag = "uno"
	Xbox       Tag = "xbl"
)

var known = map[Tag]bool{
	All:        true,
	Activision: true,
	Battlenet:  true,
	PSN:        true,
	Steam:      true,
	Uno:        true,
	Xbox:       true,
}

// Lookup is how a path segment addresses an account: by handle or by
// numeric account id.
type Lookup string

const (
	LookupGamer Lookup = "gamer"
	LookupID    Lookup = "id"
)

// Identity is a validated, wire-ready handle/platform pair. Tag holds
// the segment that goes on the wire, which is not always the tag the
// caller passed in: acti collapses onto uno while keeping gamer lookup.
type Identity struct {
	Handle string
	Tag    Tag
	Lookup Lookup
}

// handleSafe are the bytes left verbatim when percent-encoding a
// handle. This matches what the upstream web clients send, which is
// stricter than RFC 3986 path escaping: sub-delims like '&' and '='
// are encoded too.
const handleSafe = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789-_.!~*'()"

func encodeHandle(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(handleSafe, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Resolve validates the raw handle/platform pair and produces the
// identity used for path construction.
//
// steam has no native upstream API; it is rejected unless the calling
// operation explicitly allows it (only fuzzy search does).
func Resolve(handle string, tag Tag, allowRestricted bool) (Identity, error) {
	if !known[tag] {
		return Identity{}, errs.ValidationError{
			Reason: fmt.Sprintf("unknown platform %q", string(tag)),
		}
	}
	if tag == Steam && !allowRestricted {
		return Identity{}, errs.ValidationError{
			Reason: "steam has no native api support for this operation",
		}
	}
	if tag == Uno && handle != "" && !isNumeric(handle) {
		return Identity{}, errs.ValidationError{
			Reason: "uno lookups require a purely numeric account id",
		}
	}

	// lookup kind is decided by the tag the caller passed in, before
	// the acti->uno rewrite below. acti and uno share a wire segment
	// yet address accounts differently; the upstream depends on that.
	lookup := LookupGamer
	if tag == Uno {
		lookup = LookupID
	}

	// handles on these platforms may carry '#' and other reserved
	// characters.
	if tag == Activision || tag == Battlenet || tag == Uno {
		handle = encodeHandle(handle)
	}

	if tag == Activision {
		tag = Uno
	}

	return Identity{Handle: handle, Tag: tag, Lookup: lookup}, nil
}
