package service

import (
	"context"

	"github.com/heavenofmunroe/backend/internal/model"
)

// InquiryService handles the public booking and contact forms.
type InquiryService interface {
	// SubmitBookingInquiry stores a validated booking request.
	SubmitBookingInquiry(ctx context.Context, in *model.BookingInquiryInput) (*model.BookingInquiry, error)
	// ListBookingInquiries returns every inquiry, newest first. Never nil.
	ListBookingInquiries(ctx context.Context) ([]*model.BookingInquiry, error)
	SubmitContactMessage(ctx context.Context, in *model.ContactMessageInput) (*model.ContactMessage, error)
	ListContactMessages(ctx context.Context) ([]*model.ContactMessage, error)
}
