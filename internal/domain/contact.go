package domain

import "context"

// ContactRequest represents a contact form submission. Validation runs
// through the shared validator instance so every failing field is reported,
// not just the first.
type ContactRequest struct {
	FirstName string `json:"firstName" validate:"notblank,max=50"`
	LastName  string `json:"lastName" validate:"notblank,max=50"`
	Email     string `json:"email" validate:"notblank,contact_email"`
	Subject   string `json:"subject" validate:"notblank,max=200"`
	Message   string `json:"message" validate:"notblank,max=2000"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates, sanitizes and sends a contact form
	// message. clientIP is the throttling identity derived from forwarded
	// headers, not an authenticated identity.
	SendContactMessage(ctx context.Context, req *ContactRequest, clientIP string) error
}
