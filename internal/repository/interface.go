package repository

import (
	"context"

	"github.com/heavenofmunroe/backend/internal/model"
)

// Storage modes reported by Repository.Mode.
const (
	ModePostgres = "postgres"
	ModeMemory   = "memory"
)

// InquiryRepository persists the append-only visitor submissions.
type InquiryRepository interface {
	CreateBookingInquiry(ctx context.Context, in *model.BookingInquiryInput) (*model.BookingInquiry, error)
	// ListBookingInquiries returns every inquiry, newest first.
	ListBookingInquiries(ctx context.Context) ([]*model.BookingInquiry, error)
	CreateContactMessage(ctx context.Context, in *model.ContactMessageInput) (*model.ContactMessage, error)
	ListContactMessages(ctx context.Context) ([]*model.ContactMessage, error)
}

// StoredSingletons reports which singleton blocks have a row, active or not.
type StoredSingletons struct {
	Hero        bool
	About       bool
	ContactInfo bool
}

// SiteContentRepository persists the singleton page blocks and the keyed
// content sections.
//
// The singleton getters return (nil, nil) when no active row exists. The
// updaters merge into the active row, or insert one seeded with defaults.
type SiteContentRepository interface {
	GetHeroContent(ctx context.Context) (*model.HeroContent, error)
	UpdateHeroContent(ctx context.Context, in *model.HeroContentInput) (*model.HeroContent, error)
	GetAboutContent(ctx context.Context) (*model.AboutContent, error)
	UpdateAboutContent(ctx context.Context, in *model.AboutContentInput) (*model.AboutContent, error)
	GetContactInfo(ctx context.Context) (*model.ContactInfo, error)
	UpdateContactInfo(ctx context.Context, in *model.ContactInfoInput) (*model.ContactInfo, error)
	StoredSingletons(ctx context.Context) (StoredSingletons, error)

	// ListContentSections returns active sections ordered by key.
	ListContentSections(ctx context.Context) ([]*model.ContentSection, error)
	// GetContentSection returns (nil, nil) for an unknown key.
	GetContentSection(ctx context.Context, key string) (*model.ContentSection, error)
	// UpdateContentSection inserts the section or merges into the existing one.
	UpdateContentSection(ctx context.Context, key string, in *model.ContentSectionInput) (*model.ContentSection, error)
	DeleteContentSection(ctx context.Context, key string) error
}

// CatalogRepository persists the soft-deletable catalog entities. Lists return
// only active rows, the ListAll variants include soft-deleted ones. Get, Update
// and Delete return ErrNotFound for unknown keys.
type CatalogRepository interface {
	ListBoatingPackages(ctx context.Context) ([]*model.BoatingPackage, error)
	GetBoatingPackage(ctx context.Context, packageID string) (*model.BoatingPackage, error)
	CreateBoatingPackage(ctx context.Context, in *model.BoatingPackageInput) (*model.BoatingPackage, error)
	UpdateBoatingPackage(ctx context.Context, packageID string, patch *model.BoatingPackagePatch) (*model.BoatingPackage, error)
	DeleteBoatingPackage(ctx context.Context, packageID string) error

	ListTestimonials(ctx context.Context) ([]*model.Testimonial, error)
	ListAllTestimonials(ctx context.Context) ([]*model.Testimonial, error)
	GetTestimonial(ctx context.Context, id string) (*model.Testimonial, error)
	CreateTestimonial(ctx context.Context, in *model.TestimonialInput) (*model.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id string, patch *model.TestimonialPatch) (*model.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) error

	ListGalleryImages(ctx context.Context) ([]*model.GalleryImage, error)
	ListAllGalleryImages(ctx context.Context) ([]*model.GalleryImage, error)
	GetGalleryImage(ctx context.Context, id string) (*model.GalleryImage, error)
	CreateGalleryImage(ctx context.Context, in *model.GalleryImageInput) (*model.GalleryImage, error)
	UpdateGalleryImage(ctx context.Context, id string, patch *model.GalleryImagePatch) (*model.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id string) error
}

// Repository is the full content and booking store. The PostgreSQL and
// in-memory implementations satisfy the same contract.
type Repository interface {
	InquiryRepository
	SiteContentRepository
	CatalogRepository

	// Mode reports ModePostgres or ModeMemory.
	Mode() string
	Ping(ctx context.Context) error
}
