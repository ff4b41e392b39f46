package repository

import (
	"context"

	"github.com/heavenofmunroe/backend/internal/database"
	"github.com/heavenofmunroe/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const inquiryColumns = `id, full_name, email, phone, number_of_guests, check_in_date,
	check_out_date, experiences, special_requests, created_at`

func scanInquiry(row scanner) (*model.BookingInquiry, error) {
	var b model.BookingInquiry
	err := row.Scan(&b.ID, &b.FullName, &b.Email, &b.Phone, &b.NumberOfGuests, &b.CheckInDate,
		&b.CheckOutDate, &b.Experiences, &b.SpecialRequests, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	if b.Experiences == nil {
		b.Experiences = []string{}
	}
	return &b, nil
}

// CreateBookingInquiry inserts a booking_inquiries row. created_at uses
// clock_timestamp() so inquiries inserted in one transaction still order.
func (r *PgRepository) CreateBookingInquiry(ctx context.Context, in *model.BookingInquiryInput) (*model.BookingInquiry, error) {
	b := model.NewBookingInquiry(in)
	return database.Run(ctx, r.conn, "create_booking_inquiry", func(ctx context.Context, pool *pgxpool.Pool) (*model.BookingInquiry, error) {
		return scanInquiry(pool.QueryRow(ctx,
			`INSERT INTO booking_inquiries (full_name, email, phone, number_of_guests, check_in_date,
				check_out_date, experiences, special_requests)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 RETURNING `+inquiryColumns,
			b.FullName, b.Email, b.Phone, b.NumberOfGuests, b.CheckInDate,
			b.CheckOutDate, b.Experiences, b.SpecialRequests,
		))
	})
}

func (r *PgRepository) ListBookingInquiries(ctx context.Context) ([]*model.BookingInquiry, error) {
	return database.Run(ctx, r.conn, "list_booking_inquiries", func(ctx context.Context, pool *pgxpool.Pool) ([]*model.BookingInquiry, error) {
		rows, err := pool.Query(ctx, `SELECT `+inquiryColumns+` FROM booking_inquiries ORDER BY created_at DESC`)
		if err != nil {
			return nil, err
		}
		return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*model.BookingInquiry, error) {
			return scanInquiry(row)
		})
	})
}

func scanContactMessage(row scanner) (*model.ContactMessage, error) {
	var m model.ContactMessage
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgRepository) CreateContactMessage(ctx context.Context, in *model.ContactMessageInput) (*model.ContactMessage, error) {
	return database.Run(ctx, r.conn, "create_contact_message", func(ctx context.Context, pool *pgxpool.Pool) (*model.ContactMessage, error) {
		return scanContactMessage(pool.QueryRow(ctx,
			`INSERT INTO contact_messages (name, email, message)
			 VALUES ($1, $2, $3)
			 RETURNING id, name, email, message, created_at`,
			in.Name, in.Email, in.Message,
		))
	})
}

func (r *PgRepository) ListContactMessages(ctx context.Context) ([]*model.ContactMessage, error) {
	return database.Run(ctx, r.conn, "list_contact_messages", func(ctx context.Context, pool *pgxpool.Pool) ([]*model.ContactMessage, error) {
		rows, err := pool.Query(ctx,
			`SELECT id, name, email, message, created_at FROM contact_messages ORDER BY created_at DESC`)
		if err != nil {
			return nil, err
		}
		return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*model.ContactMessage, error) {
			return scanContactMessage(row)
		})
	})
}
