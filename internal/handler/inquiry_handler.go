package handler

import (
	"net/http"

	"github.com/heavenofmunroe/backend/internal/model"
	"github.com/heavenofmunroe/backend/internal/service"
)

// InquiryHandler handles the public booking and contact forms and their admin
// listings.
type InquiryHandler struct {
	inquiryService service.InquiryService
}

// NewInquiryHandler creates an InquiryHandler with the given service.
func NewInquiryHandler(inquiryService service.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

// submitResponse is returned by the public form endpoints.
type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// SubmitBookingInquiry handles POST /api/booking-inquiry.
func (h *InquiryHandler) SubmitBookingInquiry(w http.ResponseWriter, r *http.Request) {
	var in model.BookingInquiryInput
	if !bind(w, r, &in, "Invalid form data") {
		return
	}

	b, err := h.inquiryService.SubmitBookingInquiry(r.Context(), &in)
	if err != nil {
		writeServiceError(w, r, err, "submit_booking_inquiry")
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{
		Success: true,
		Message: "Booking inquiry submitted successfully. We'll contact you within 2 hours!",
		ID:      b.ID,
	})
}

// SubmitContactMessage handles POST /api/contact-message.
func (h *InquiryHandler) SubmitContactMessage(w http.ResponseWriter, r *http.Request) {
	var in model.ContactMessageInput
	if !bind(w, r, &in, "Invalid form data") {
		return
	}

	m, err := h.inquiryService.SubmitContactMessage(r.Context(), &in)
	if err != nil {
		writeServiceError(w, r, err, "submit_contact_message")
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{
		Success: true,
		Message: "Message sent successfully. We'll respond soon!",
		ID:      m.ID,
	})
}

type inquiryListResponse struct {
	Success   bool                    `json:"success"`
	Inquiries []*model.BookingInquiry `json:"inquiries"`
}

// ListBookingInquiries handles GET /api/admin/booking-inquiries (admin only).
func (h *InquiryHandler) ListBookingInquiries(w http.ResponseWriter, r *http.Request) {
	list, err := h.inquiryService.ListBookingInquiries(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "list_booking_inquiries")
		return
	}
	writeJSON(w, http.StatusOK, inquiryListResponse{Success: true, Inquiries: list})
}

type messageListResponse struct {
	Success  bool                    `json:"success"`
	Messages []*model.ContactMessage `json:"messages"`
}

// ListContactMessages handles GET /api/admin/contact-messages (admin only).
func (h *InquiryHandler) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	list, err := h.inquiryService.ListContactMessages(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "list_contact_messages")
		return
	}
	writeJSON(w, http.StatusOK, messageListResponse{Success: true, Messages: list})
}
