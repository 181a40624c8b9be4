package models

// TwoFactorSetup is returned when second-factor setup is started. The
// secret key is presented to the user for enrolment in an authenticator
// app; the flow is completed by confirming a generated code.
type TwoFactorSetup struct {
	// SecretKey is the shared secret to enrol in the authenticator.
	SecretKey string `json:"secretKey"`

	// Issuer is the account label shown by the authenticator.
	Issuer string `json:"issuer"`
}
