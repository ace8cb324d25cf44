package platform

import (
	"errors"
	"testing"

	"codstats-backend/lib/cod/errs"

	"github.com/stretchr/testify/require"
)

func TestResolveKnownPlatforms(t *testing.T) {
	for _, tag := range []Tag{All, Activision, Battlenet, PSN, Uno, Xbox} {
		id, err := Resolve("12345", tag, false)
		require.NoError(t, err, "platform %s", tag)
		require.NotEmpty(t, id.Tag)
		require.NotEmpty(t, id.Lookup)
	}

	_, err := Resolve("someone", Tag("wii"), false)
	var verr errs.ValidationError
	require.True(t, errors.As(err, &verr))
}

func TestResolveIsPure(t *testing.T) {
	a, err := Resolve("gamer#1234", Battlenet, false)
	require.NoError(t, err)
	b, err := Resolve("gamer#1234", Battlenet, false)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestUnoRequiresNumericHandle(t *testing.T) {
	for _, handle := range []string{"gamer", "123abc", "12 34", "#", "12.5"} {
		_, err := Resolve(handle, Uno, false)
		var verr errs.ValidationError
		require.True(t, errors.As(err, &verr), "handle %q", handle)
	}

	// an empty handle is allowed, some operations address only the
	// platform segment
	_, err := Resolve("", Uno, false)
	require.NoError(t, err)

	id, err := Resolve("12345678", Uno, false)
	require.NoError(t, err)
	require.Equal(t, LookupID, id.Lookup)
}

func TestActivisionCollapsesOntoUno(t *testing.T) {
	acti, err := Resolve("12345678", Activision, false)
	require.NoError(t, err)
	uno, err := Resolve("12345678", Uno, false)
	require.NoError(t, err)

	// same wire segment, different lookup kind; the upstream relies
	// on this asymmetry
	require.Equal(t, uno.Tag, acti.Tag)
	require.Equal(t, Uno, acti.Tag)
	require.Equal(t, LookupGamer, acti.Lookup)
	require.Equal(t, LookupID, uno.Lookup)
}

func TestHandleEncoding(t *testing.T) {
	id, err := Resolve("gamer#1234", Battlenet, false)
	require.NoError(t, err)
	require.Equal(t, "gamer%231234", id.Handle)

	id, err = Resolve("gamer#1234", Activision, false)
	require.NoError(t, err)
	require.Equal(t, "gamer%231234", id.Handle)

	// psn handles never carry reserved characters and stay verbatim
	id, err = Resolve("gamer_1234", PSN, false)
	require.NoError(t, err)
	require.Equal(t, "gamer_1234", id.Handle)
}

func TestHandleEncodingCoversSubDelims(t *testing.T) {
	// path escaping alone would leave sub-delims like '&' and '='
	// verbatim; the upstream expects them encoded as well
	for raw, want := range map[string]string{
		"a&b=c":      "a%26b%3Dc",
		"gamer#1234": "gamer%231234",
		"a+b,c;d":    "a%2Bb%2Cc%3Bd",
		"tag@host":   "tag%40host",
		"100% luck":  "100%25%20luck",
		"-_.!~*'()":  "-_.!~*'()",
		"gämer":      "g%C3%A4mer",
	} {
		id, err := Resolve(raw, Battlenet, false)
		require.NoError(t, err, "handle %q", raw)
		require.Equal(t, want, id.Handle, "handle %q", raw)
	}
}

func TestSteamNeedsExplicitAllowance(t *testing.T) {
	_, err := Resolve("gamer", Steam, false)
	var verr errs.ValidationError
	require.True(t, errors.As(err, &verr))

	id, err := Resolve("gamer", Steam, true)
	require.NoError(t, err)
	require.Equal(t, Steam, id.Tag)
	require.Equal(t, LookupGamer, id.Lookup)
}
