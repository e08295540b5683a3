package domain

// CsrfToken is the token endpoint response: the token value itself plus the
// number of seconds it stays valid. The lifetime drives the cookie max-age.
type CsrfToken struct {
	Sk            string `json:"sk" validate:"required"`
	MaxAgeSeconds int    `json:"max-age-seconds" validate:"required"`
}
