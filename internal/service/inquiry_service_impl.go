package service

import (
	"context"
	"log/slog"

	"github.com/heavenofmunroe/backend/internal/metrics"
	"github.com/heavenofmunroe/backend/internal/model"
	"github.com/heavenofmunroe/backend/internal/repository"
)

type inquiryServiceImpl struct {
	repo repository.InquiryRepository
}

// NewInquiryService creates an InquiryService backed by the given repository.
func NewInquiryService(repo repository.InquiryRepository) InquiryService {
	return &inquiryServiceImpl{repo: repo}
}

func (s *inquiryServiceImpl) SubmitBookingInquiry(ctx context.Context, in *model.BookingInquiryInput) (*model.BookingInquiry, error) {
	b, err := s.repo.CreateBookingInquiry(ctx, in)
	if err != nil {
		return nil, err
	}
	metrics.RecordBookingInquiry()
	slog.InfoContext(ctx, "booking inquiry received", "id", b.ID, "guests", b.NumberOfGuests, "check_in", b.CheckInDate)
	return b, nil
}

func (s *inquiryServiceImpl) ListBookingInquiries(ctx context.Context) ([]*model.BookingInquiry, error) {
	list, err := s.repo.ListBookingInquiries(ctx)
	return nonNil(list), err
}

func (s *inquiryServiceImpl) SubmitContactMessage(ctx context.Context, in *model.ContactMessageInput) (*model.ContactMessage, error) {
	m, err := s.repo.CreateContactMessage(ctx, in)
	if err != nil {
		return nil, err
	}
	metrics.RecordContactMessage()
	slog.InfoContext(ctx, "contact message received", "id", m.ID)
	return m, nil
}

func (s *inquiryServiceImpl) ListContactMessages(ctx context.Context) ([]*model.ContactMessage, error) {
	list, err := s.repo.ListContactMessages(ctx)
	return nonNil(list), err
}

// nonNil turns a nil slice into an empty one so it encodes as [] rather than
// null. Errors are passed through by callers, so a nil list on error is fine.
func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
