package models

// ClientIdentity identifies this device install towards the server. It is
// created once on first run, persisted for the lifetime of the install, and
// never modified afterwards.
type ClientIdentity struct {
	// UUID is a random identifier generated at creation time. The server
	// uses it to bind long-lived tokens to a specific device.
	UUID string `json:"uuid"`

	// Name is a human-readable device label captured when the identity was
	// created (host name plus platform).
	Name string `json:"name"`
}
