package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// SubscribeStatus is the user-visible outcome of a newsletter signup.
type SubscribeStatus string

const (
	// StatusSubscribed means a new subscription was recorded.
	StatusSubscribed SubscribeStatus = "subscribed"
	// StatusAlreadySubscribed means the address was on the list; treated
	// as success.
	StatusAlreadySubscribed SubscribeStatus = "already_subscribed"
	// StatusMock means no query service is configured and the signup was
	// accepted locally.
	StatusMock SubscribeStatus = "mock"
)

// Message returns the user-visible line for a signup outcome.
func (s SubscribeStatus) Message() string {
	switch s {
	case StatusAlreadySubscribed:
		return "You're already subscribed."
	default:
		return "Subscribed! Watch your inbox for the next digest."
	}
}

const newsletterTable = "newsletter"

// Newsletter handles digest signups against the query service. A nil
// client means the service is unconfigured and signups mock-succeed.
type Newsletter struct {
	client *Client
}

// NewNewsletter creates the newsletter collaborator.
func NewNewsletter(client *Client) *Newsletter {
	return &Newsletter{client: client}
}

// Subscribe records an email address. Write failures are returned as
// retry-able errors for the caller to show as a message; they are the
// only path in the system where a service failure reaches the user, and
// even then as text, never a crash.
func (n *Newsletter) Subscribe(ctx context.Context, email string) (SubscribeStatus, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", fmt.Errorf("invalid email address")
	}

	if n.client == nil {
		slog.Debug("query service unconfigured, mocking signup", "email", email)
		return StatusMock, nil
	}

	existed, err := n.client.Upsert(ctx, newsletterTable, Row{
		"email":         email,
		"subscribed_at": time.Now().UTC().Format(time.RFC3339),
	}, "email")
	if err != nil {
		return "", fmt.Errorf("signup temporarily unavailable, please retry: %w", err)
	}
	if existed {
		return StatusAlreadySubscribed, nil
	}
	return StatusSubscribed, nil
}
