package domain

import (
	"strings"
	"time"
)

type Subscriber struct {
	ID             int       `json:"id"`
	Email          string    `json:"email"`
	DateSubscribed time.Time `json:"date_subscribed"`
}

// SubscribeRequest is the JSON body accepted by POST /subscribe.
type SubscribeRequest struct {
	Email string `json:"email"`
}

// NormalizeEmail trims surrounding whitespace. Case is preserved, so
// "Foo@x.com" and "foo@x.com" are distinct subscribers.
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmailRequired
	}
	return email, nil
}
