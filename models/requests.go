package models

// LoginRequest is the body of the primary login call. Field names follow
// the server's wire contract.
type LoginRequest struct {
	// Username is the account login name.
	Username string `json:"Username"`

	// Password is the account password. Sent only on primary login, never
	// stored on the client.
	Password string `json:"Password"`

	// ClientUUID identifies this device install.
	ClientUUID string `json:"ClientUUID"`

	// ClientName is the human-readable device label.
	ClientName string `json:"ClientName"`
}
