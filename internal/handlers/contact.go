package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/folio"
	"github.com/dmitrymomot/folio/internal/contact"
)

// Client-facing messages. They never carry provider or parser details.
const (
	MsgMissingFields    = "Missing required fields"
	MsgInvalidEmail     = "Invalid email format"
	MsgSendFailed       = "Failed to send email"
	MsgInternalError    = "Internal server error"
	MsgEmailSent        = "Email sent successfully"
	MsgNotFound         = "Not found"
	MsgMethodNotAllowed = "Method not allowed"
)

// Submission outcomes, one per request to the contact endpoint.
const (
	OutcomeDelivered      = "delivered"
	OutcomeMissingFields  = "missing_fields"
	OutcomeInvalidEmail   = "invalid_email"
	OutcomeDeliveryFailed = "delivery_failed"
	OutcomeError          = "error"
)

// SubmissionOutcomes lists every outcome, for pre-registering metric series.
var SubmissionOutcomes = []string{
	OutcomeDelivered,
	OutcomeMissingFields,
	OutcomeInvalidEmail,
	OutcomeDeliveryFailed,
	OutcomeError,
}

// SubmissionObserver records the outcome of each contact submission.
type SubmissionObserver interface {
	ObserveSubmission(outcome string)
}

type nopObserver struct{}

func (nopObserver) ObserveSubmission(string) {}

// ContactResponse is the success body of POST /api/contact.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	EmailID string `json:"emailId,omitempty"`
}

// Contact serves the contact form endpoint.
type Contact struct {
	svc      *contact.Service
	observer SubmissionObserver
}

// NewContact creates the contact handler. A nil observer records nothing.
func NewContact(svc *contact.Service, observer SubmissionObserver) *Contact {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Contact{svc: svc, observer: observer}
}

// Routes implements folio.Handler.
func (h *Contact) Routes(r folio.Router) {
	r.POST("/api/contact", h.submit)
}

func (h *Contact) submit(c folio.Context) error {
	var body json.RawMessage
	if err := c.BindJSON(&body); err != nil {
		h.observer.ObserveSubmission(OutcomeError)
		return folio.ErrInternal(MsgInternalError, folio.WithError(err))
	}
	sub, err := contact.DecodeSubmission(body)
	if err != nil {
		h.observer.ObserveSubmission(OutcomeError)
		return folio.ErrInternal(MsgInternalError, folio.WithError(err))
	}

	id, err := h.svc.Submit(c.Context(), sub)
	switch {
	case errors.Is(err, contact.ErrMissingFields):
		h.observer.ObserveSubmission(OutcomeMissingFields)
		return folio.ErrBadRequest(MsgMissingFields, folio.WithError(err))
	case errors.Is(err, contact.ErrInvalidEmail):
		h.observer.ObserveSubmission(OutcomeInvalidEmail)
		return folio.ErrBadRequest(MsgInvalidEmail, folio.WithError(err))
	case errors.Is(err, contact.ErrDeliveryFailed):
		h.observer.ObserveSubmission(OutcomeDeliveryFailed)
		return folio.ErrInternal(MsgSendFailed, folio.WithError(err))
	case err != nil:
		h.observer.ObserveSubmission(OutcomeError)
		return folio.ErrInternal(MsgInternalError, folio.WithError(err))
	}

	h.observer.ObserveSubmission(OutcomeDelivered)
	c.LogInfo("contact notification sent", slog.String("email_id", id))

	return c.JSON(http.StatusOK, ContactResponse{
		Success: true,
		Message: MsgEmailSent,
		EmailID: id,
	})
}
