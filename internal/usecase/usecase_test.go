package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"testing"

	"go-contact-relay/internal/domain"
	"go-contact-relay/internal/usecase"
	"go-contact-relay/pkg/apperror"
	"go-contact-relay/pkg/logger"
	"go-contact-relay/pkg/mailgun"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg mailgun.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func testRequest() *domain.ContactRequest {
	return &domain.ContactRequest{
		FromName:  "Jane Doe",
		FromEmail: "jane@example.com",
		Title:     "Hello",
		Body:      "Just saying hi.",
	}
}

func TestSendContactMessage(t *testing.T) {
	t.Run("Should compose the outbound message from the form fields", func(t *testing.T) {
		mockSender := new(MockSender)
		mockSender.On("Send", mock.Anything, mailgun.Message{
			From:    "Jane Doe <jane@example.com>",
			To:      "inbox@example.com",
			Subject: "Hello",
			Text:    "Just saying hi.",
		}).Return(nil).Once()

		uc := usecase.NewContactUsecase(mockSender, "inbox@example.com")
		err := uc.SendContactMessage(context.Background(), testRequest())

		assert.NoError(t, err)
		mockSender.AssertExpectations(t)
	})

	t.Run("Should pass fields through verbatim without trimming", func(t *testing.T) {
		mockSender := new(MockSender)
		mockSender.On("Send", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			msg := args.Get(1).(mailgun.Message)
			assert.Equal(t, " Jane  < jane@example.com>", msg.From)
			assert.Equal(t, " Hello ", msg.Subject)
		})

		uc := usecase.NewContactUsecase(mockSender, "inbox@example.com")
		err := uc.SendContactMessage(context.Background(), &domain.ContactRequest{
			FromName:  " Jane ",
			FromEmail: " jane@example.com",
			Title:     " Hello ",
			Body:      "hi",
		})

		assert.NoError(t, err)
	})
}

func TestSendContactMessageErrorMapping(t *testing.T) {
	t.Run("Should map a provider rejection to a bad gateway error", func(t *testing.T) {
		mockSender := new(MockSender)
		mockSender.On("Send", mock.Anything, mock.Anything).
			Return(&mailgun.APIError{StatusCode: http.StatusInternalServerError, Message: "domain not found"})

		uc := usecase.NewContactUsecase(mockSender, "inbox@example.com")
		err := uc.SendContactMessage(context.Background(), testRequest())

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadGateway, appErr.Code)
		assert.Equal(t, "domain not found", appErr.Message)
	})

	t.Run("Should map a provider auth rejection to a bad gateway error", func(t *testing.T) {
		mockSender := new(MockSender)
		mockSender.On("Send", mock.Anything, mock.Anything).
			Return(&mailgun.APIError{StatusCode: http.StatusUnauthorized, Message: "unauthorized"})

		uc := usecase.NewContactUsecase(mockSender, "inbox@example.com")
		err := uc.SendContactMessage(context.Background(), testRequest())

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadGateway, appErr.Code)
		assert.Equal(t, "unauthorized", appErr.Message)
	})

	t.Run("Should map an unparseable provider response to an internal error", func(t *testing.T) {
		mockSender := new(MockSender)
		mockSender.On("Send", mock.Anything, mock.Anything).
			Return(fmt.Errorf("%w: status 500", mailgun.ErrUnexpectedResponse))

		uc := usecase.NewContactUsecase(mockSender, "inbox@example.com")
		err := uc.SendContactMessage(context.Background(), testRequest())

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
		assert.Equal(t, "mail provider returned an unexpected response", appErr.Message)
	})

	t.Run("Should map a transport failure to an internal error", func(t *testing.T) {
		mockSender := new(MockSender)
		cause := errors.New("dial tcp 127.0.0.1:443: connect: connection refused")
		mockSender.On("Send", mock.Anything, mock.Anything).Return(cause)

		uc := usecase.NewContactUsecase(mockSender, "inbox@example.com")
		err := uc.SendContactMessage(context.Background(), testRequest())

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
		assert.Equal(t, "could not reach the mail provider", appErr.Message)
		// The raw cause stays server-side for logs
		assert.NotContains(t, appErr.Message, "dial tcp")
		assert.ErrorIs(t, appErr.Err, cause)
	})
}
