package model

import "time"

// ContactMessage represents a message submitted via the contact form.
// Contact messages are append-only: they are never updated or removed.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactMessageInput is the payload accepted by POST /api/contact-message.
type ContactMessageInput struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email,max=320"`
	Message string `json:"message" validate:"required,max=5000"`
}

// BookingInquiry represents a booking request submitted by a visitor.
// Like ContactMessage it is append-only.
type BookingInquiry struct {
	ID              string    `json:"id"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	NumberOfGuests  int       `json:"numberOfGuests"`
	CheckInDate     string    `json:"checkInDate"`
	CheckOutDate    string    `json:"checkOutDate"`
	Experiences     []string  `json:"experiences"`
	SpecialRequests string    `json:"specialRequests"`
	CreatedAt       time.Time `json:"createdAt"`
}

// BookingInquiryInput is the payload accepted by POST /api/booking-inquiry.
// Optional fields default to the empty string (dates, requests) or an empty
// list (experiences).
type BookingInquiryInput struct {
	FullName        string   `json:"fullName" validate:"required,max=200"`
	Email           string   `json:"email" validate:"required,email,max=320"`
	Phone           string   `json:"phone" validate:"required,max=30"`
	NumberOfGuests  int      `json:"numberOfGuests" validate:"required,min=1,max=50"`
	CheckInDate     string   `json:"checkInDate" validate:"max=40"`
	CheckOutDate    string   `json:"checkOutDate" validate:"max=40"`
	Experiences     []string `json:"experiences" validate:"max=20,dive,max=100"`
	SpecialRequests string   `json:"specialRequests" validate:"max=2000"`
}

// NewBookingInquiry builds the stored form of in. ID and CreatedAt are left
// for the repository to assign.
func NewBookingInquiry(in *BookingInquiryInput) *BookingInquiry {
	experiences := make([]string, 0, len(in.Experiences))
	experiences = append(experiences, in.Experiences...)
	return &BookingInquiry{
		FullName:        in.FullName,
		Email:           in.Email,
		Phone:           in.Phone,
		NumberOfGuests:  in.NumberOfGuests,
		CheckInDate:     in.CheckInDate,
		CheckOutDate:    in.CheckOutDate,
		Experiences:     experiences,
		SpecialRequests: in.SpecialRequests,
	}
}
