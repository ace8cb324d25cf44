package endpoints

import "fmt"

// Purchasable builds the public storefront path for a title. No
// platform or identity is involved; the path pins platform to uno.
func Purchasable(title string) Request {
	return get(Legacy, fmt.Sprintf(
		"/inventory/v1/title/%s/platform/uno/purchasable/public/en",
		title,
	))
}

// Bundle builds the bundle detail path for a title and bundle id.
func Bundle(title, bundleID string) Request {
	return get(Legacy, fmt.Sprintf(
		"/inventory/v2/title/%s/bundle/%s/en",
		title, bundleID,
	))
}
