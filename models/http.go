package models

// Request and response bodies for the development gateway HTTP API.

// ChallengeRequest asks the gateway for a fresh login challenge.
type ChallengeRequest struct {
	OwnerAddress string `json:"owner_address"`
}

// ChallengeResponse carries the nonce the client must sign to log in.
type ChallengeResponse struct {
	Challenge string `json:"challenge"`
}

// LoginRequest presents the signed challenge.
type LoginRequest struct {
	OwnerAddress string `json:"owner_address"`
	Challenge    string `json:"challenge"`
	// Signature is the base64 raw signature over the versioned auth
	// message built from Challenge.
	Signature string `json:"signature"`
	// PublicKey is the base64 public key for first-time registration.
	PublicKey string `json:"public_key,omitempty"`
}

// LoginResponse returns the session token used on authorized routes.
type LoginResponse struct {
	Token string `json:"token"`
}

// BlobPutResponse returns the content address of an uploaded blob.
type BlobPutResponse struct {
	Locator string `json:"locator"`
}

// AnchorWriteRequest publishes a new commitment for the authenticated owner.
type AnchorWriteRequest struct {
	Commitment string `json:"commitment"`
	Locator    string `json:"locator"`
	// ExpectedVersion is the version the writer last observed; the write is
	// rejected as stale when the ledger has moved past it.
	ExpectedVersion int64 `json:"expected_version"`
}

// AnchorWriteResponse returns the version assigned to the accepted write.
type AnchorWriteResponse struct {
	Version int64 `json:"version"`
}

// ErrorResponse is the uniform error body of the gateway API.
type ErrorResponse struct {
	Error string `json:"error"`
}
