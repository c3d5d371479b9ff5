package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// State classifies a stored token.
type State int

const (
	StateAbsent State = iota
	StateMalformed
	StateExpired
	StateValid
)

func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateMalformed:
		return "malformed"
	case StateExpired:
		return "expired"
	case StateValid:
		return "valid"
	default:
		return "unknown"
	}
}

// Classification is the result of inspecting a token's expiry claim.
// ExpiresAt is zero unless the claim decoded.
type Classification struct {
	State     State
	ExpiresAt time.Time
}

var timeNow = time.Now

// Classify decodes the token's payload segment and classifies the session by
// its exp claim. Signature verification is the backend's job; only the claim
// is read here. Pure: no store access, no side effects, total over all
// strings.
func Classify(token string) Classification {
	if token == "" {
		return Classification{State: StateAbsent}
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Classification{State: StateMalformed}
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return Classification{State: StateMalformed}
	}

	if !exp.Time.After(timeNow()) {
		return Classification{State: StateExpired, ExpiresAt: exp.Time}
	}
	return Classification{State: StateValid, ExpiresAt: exp.Time}
}
