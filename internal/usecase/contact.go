package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-contact-relay/internal/domain"
	"go-contact-relay/pkg/apperror"
	"go-contact-relay/pkg/logger"
	"go-contact-relay/pkg/mailgun"
)

type contactUsecase struct {
	sender    mailgun.Sender
	toAddress string
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(sender mailgun.Sender, toAddress string) domain.ContactUsecase {
	return &contactUsecase{
		sender:    sender,
		toAddress: toAddress,
	}
}

// SendContactMessage relays the contact request through the mail provider
// and translates its failures into client-facing errors.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	msg := mailgun.Message{
		From:    fmt.Sprintf("%s <%s>", req.FromName, req.FromEmail),
		To:      uc.toAddress,
		Subject: req.Title,
		Text:    req.Body,
	}

	logger.Log.Info("Sending contact mail", "from", msg.From)

	err := uc.sender.Send(ctx, msg)
	if err == nil {
		return nil
	}

	logger.Log.Error("Failed to send contact mail", "from", msg.From, "error", err)

	var apiErr *mailgun.APIError
	switch {
	case errors.As(err, &apiErr):
		// Mailgun said why; pass its message along.
		return apperror.BadGateway(apiErr.Message, err)
	case errors.Is(err, mailgun.ErrUnexpectedResponse):
		return apperror.Internal("mail provider returned an unexpected response", err)
	default:
		return apperror.Internal("could not reach the mail provider", err)
	}
}
