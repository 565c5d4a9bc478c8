package models

// PlaintextItem is the decrypted form of a vault item as the user entered
// it. Only Secret is ever encrypted; the rest is display metadata that stays
// cleartext in the stored record.
//
// Secret should be zeroed by the caller once the encrypt call returns.
type PlaintextItem struct {
	Site     string
	Username string
	Secret   []byte
	Meta     ItemMetadata
}
