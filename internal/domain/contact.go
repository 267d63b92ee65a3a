package domain

import "context"

// ContactRequest represents a contact form submission
type ContactRequest struct {
	FromName  string `form:"from_name" binding:"required"`
	FromEmail string `form:"from_email" binding:"required"`
	Title     string `form:"title" binding:"required"`
	Body      string `form:"body" binding:"required"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage relays a contact form message to the configured recipient
	SendContactMessage(ctx context.Context, req *ContactRequest) error
}
