package crypto

// Zero overwrites a byte slice in memory with zeros.
// Used to drop key material and plaintext as soon as an operation returns.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
