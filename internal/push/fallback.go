package push

import (
	"context"
	"errors"

	"github.com/termin-app/notify-service/internal/models"
)

// FallbackSender tries each sender in order until one accepts the delivery.
// Only ErrNotConnected defers to the next sender; any other outcome,
// success or fault, ends the attempt, so each call is still one logical
// delivery attempt.
type FallbackSender struct {
	senders []Sender
}

func NewFallbackSender(senders ...Sender) *FallbackSender {
	return &FallbackSender{senders: senders}
}

func (f *FallbackSender) Send(ctx context.Context, address string, n models.NotificationPayload) error {
	for _, s := range f.senders {
		err := s.Send(ctx, address, n)
		if errors.Is(err, ErrNotConnected) {
			continue
		}
		return err
	}
	return ErrNotConnected
}
