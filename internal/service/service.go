// Package service contains the business logic for the paid-parking API.
// Services validate inputs, enforce the stay lifecycle, and orchestrate repo calls.
// No SQL lives here. Services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkordes/paid-parking/backend/internal/domain"
)

// Notification topics published after a committed state change.
const (
	TopicStayOpened       = "stay.opened"
	TopicStayClosed       = "stay.closed"
	TopicInvoiceGenerated = "invoice.generated"
)

// Transactor runs fn inside one database transaction. repo.TxRunner implements it.
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Publisher delivers a notification to downstream consumers.
// broker.AMQPPublisher implements it. A failed publish never fails the
// operation that triggered it.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// normalizePlate trims the plate and rejects an empty one. The format of a
// plate is otherwise not validated.
func normalizePlate(plate string) (string, error) {
	p := strings.TrimSpace(plate)
	if p == "" {
		return "", fmt.Errorf("%w: plate is required", domain.ErrValidation)
	}
	return p, nil
}

// publish sends payload when a publisher is configured and logs a failure.
func publish(ctx context.Context, pub Publisher, log *slog.Logger, topic string, payload any) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, topic, payload); err != nil {
		log.WarnContext(ctx, "notification not published", "topic", topic, "error", err)
	}
}
