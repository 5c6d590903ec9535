package common

// WipeBytes overwrites the contents of b with zeros. Used to remove
// passwords from memory once they have been handed to the session
// layer. A nil slice is a no-op.
func WipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
