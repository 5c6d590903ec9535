package identity

import (
	"encoding/json"
	"fmt"

	"github.com/avetrov/profilekeeper/internal/common"
)

// Encode serializes u into the store's value format. It is total for a
// well-formed record: a User holds nothing json.Marshal can reject.
func Encode(u *User) []byte {
	b, _ := json.Marshal(u)
	return b
}

// Decode parses a stored value back into a User. Malformed input fails
// with an error wrapping common.ErrDecode; callers must treat that as
// "no usable account" rather than trusting a partial record.
func Decode(data []byte) (*User, error) {
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDecode, err)
	}
	return &u, nil
}
