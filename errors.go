package access

import "errors"

// ErrInvalidCredentials is returned for every failed credential check:
// unknown email, missing hash, and password mismatch all collapse into this
// one value so callers cannot probe which accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrTokenInvalid is the single outcome for any token that fails decoding:
// tampered, expired, and malformed tokens are indistinguishable to callers.
var ErrTokenInvalid = errors.New("invalid session token")

// ErrUnableToFindSession is the error when a request carries no token at all
var ErrUnableToFindSession = errors.New("unable to find session")

// ErrIdentityNotFound is the error for lookups outside the login path, where
// masking existence is not required (e.g. linked-identity upserts)
var ErrIdentityNotFound = errors.New("identity not found")

// IsInvalidCredentials will check for the generic credential failure
func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

// IsTokenInvalid will check for the undifferentiated token failure
func IsTokenInvalid(err error) bool {
	return errors.Is(err, ErrTokenInvalid)
}
