// Package identity defines the persisted account record and the codec
// that translates it to and from the store's value format.
package identity

// User is the single persisted account. Name, Email and AvatarRef are
// mutable through profile updates; Password is set at signup and never
// changed by any other operation. The JSON keys match the record layout
// the mobile app has always written, so existing stores decode as-is.
type User struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	AvatarRef string `json:"avatar,omitempty"`
}
