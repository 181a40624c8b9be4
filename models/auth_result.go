package models

// AuthResult is the server's answer to every authentication step: primary
// login, second factor, PIN login and the silent long-lived-token login.
// Each successful step fully replaces the previously held value; fields are
// never merged one by one.
type AuthResult struct {
	// Token is the short-lived primary credential. Empty until the server
	// considers the ceremony complete enough to issue one.
	Token string `json:"token"`

	// Username is the account name the result was issued for.
	Username string `json:"username"`

	// RequiresPass2 signals that a second-factor code must still be
	// submitted before the account is fully authenticated.
	RequiresPass2 bool `json:"requiresPass2"`

	// RequiresPin signals that a PIN must still be submitted. Set on
	// returning devices that registered a PIN together with a long-lived
	// token.
	RequiresPin bool `json:"requiresPin"`

	// LongLivedToken is the persisted credential enabling silent
	// re-authentication across sessions. Empty unless the user opted in.
	LongLivedToken string `json:"longLivedToken"`
}

// LoggedIn reports whether the result represents a fully authenticated
// session: a primary token is present and no further step is pending.
func (a AuthResult) LoggedIn() bool {
	return a.Token != "" && !a.RequiresPass2 && !a.RequiresPin
}
