package service

import (
	"context"

	"github.com/heavenofmunroe/backend/internal/model"
)

// SiteContentService manages the singleton page blocks and content sections.
// Getters return nil when nothing has been stored yet.
type SiteContentService interface {
	GetHeroContent(ctx context.Context) (*model.HeroContent, error)
	UpdateHeroContent(ctx context.Context, in *model.HeroContentInput) (*model.HeroContent, error)
	GetAboutContent(ctx context.Context) (*model.AboutContent, error)
	UpdateAboutContent(ctx context.Context, in *model.AboutContentInput) (*model.AboutContent, error)
	GetContactInfo(ctx context.Context) (*model.ContactInfo, error)
	UpdateContactInfo(ctx context.Context, in *model.ContactInfoInput) (*model.ContactInfo, error)

	ListContentSections(ctx context.Context) ([]*model.ContentSection, error)
	GetContentSection(ctx context.Context, key string) (*model.ContentSection, error)
	UpdateContentSection(ctx context.Context, key string, in *model.ContentSectionInput) (*model.ContentSection, error)
	DeleteContentSection(ctx context.Context, key string) error
}

// CatalogService manages boating packages, testimonials and gallery images.
type CatalogService interface {
	ListBoatingPackages(ctx context.Context) ([]*model.BoatingPackage, error)
	GetBoatingPackage(ctx context.Context, packageID string) (*model.BoatingPackage, error)
	CreateBoatingPackage(ctx context.Context, in *model.BoatingPackageInput) (*model.BoatingPackage, error)
	UpdateBoatingPackage(ctx context.Context, packageID string, patch *model.BoatingPackagePatch) (*model.BoatingPackage, error)
	DeleteBoatingPackage(ctx context.Context, packageID string) error

	ListTestimonials(ctx context.Context) ([]*model.Testimonial, error)
	GetTestimonial(ctx context.Context, id string) (*model.Testimonial, error)
	CreateTestimonial(ctx context.Context, in *model.TestimonialInput) (*model.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id string, patch *model.TestimonialPatch) (*model.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) error

	ListGalleryImages(ctx context.Context) ([]*model.GalleryImage, error)
	GetGalleryImage(ctx context.Context, id string) (*model.GalleryImage, error)
	CreateGalleryImage(ctx context.Context, in *model.GalleryImageInput) (*model.GalleryImage, error)
	UpdateGalleryImage(ctx context.Context, id string, patch *model.GalleryImagePatch) (*model.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id string) error
}
