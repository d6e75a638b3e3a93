package service

import "context"

// SMSSender defines the interface for sending transactional text messages,
// such as notifying a farmer that a firm wants their crop.
type SMSSender interface {
	// Send delivers a single message to the given E.164 phone number.
	Send(ctx context.Context, phone, message string) error
}
