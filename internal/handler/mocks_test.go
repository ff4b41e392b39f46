package handler

import (
	"context"

	"github.com/heavenofmunroe/backend/internal/model"
)

// ---------------------------------------------------------------------------
// mockInquiryService
// ---------------------------------------------------------------------------

type mockInquiryService struct {
	submitBookingFunc func(ctx context.Context, in *model.BookingInquiryInput) (*model.BookingInquiry, error)
	listBookingsFunc  func(ctx context.Context) ([]*model.BookingInquiry, error)
	submitMessageFunc func(ctx context.Context, in *model.ContactMessageInput) (*model.ContactMessage, error)
	listMessagesFunc  func(ctx context.Context) ([]*model.ContactMessage, error)
	calls             int
}

func (m *mockInquiryService) SubmitBookingInquiry(ctx context.Context, in *model.BookingInquiryInput) (*model.BookingInquiry, error) {
	m.calls++
	if m.submitBookingFunc != nil {
		return m.submitBookingFunc(ctx, in)
	}
	return &model.BookingInquiry{ID: "inq-1"}, nil
}

func (m *mockInquiryService) ListBookingInquiries(ctx context.Context) ([]*model.BookingInquiry, error) {
	m.calls++
	if m.listBookingsFunc != nil {
		return m.listBookingsFunc(ctx)
	}
	return []*model.BookingInquiry{}, nil
}

func (m *mockInquiryService) SubmitContactMessage(ctx context.Context, in *model.ContactMessageInput) (*model.ContactMessage, error) {
	m.calls++
	if m.submitMessageFunc != nil {
		return m.submitMessageFunc(ctx, in)
	}
	return &model.ContactMessage{ID: "msg-1"}, nil
}

func (m *mockInquiryService) ListContactMessages(ctx context.Context) ([]*model.ContactMessage, error) {
	m.calls++
	if m.listMessagesFunc != nil {
		return m.listMessagesFunc(ctx)
	}
	return []*model.ContactMessage{}, nil
}

// ---------------------------------------------------------------------------
// mockSiteContentService
// ---------------------------------------------------------------------------

type mockSiteContentService struct {
	getHeroFunc       func(ctx context.Context) (*model.HeroContent, error)
	updateHeroFunc    func(ctx context.Context, in *model.HeroContentInput) (*model.HeroContent, error)
	getAboutFunc      func(ctx context.Context) (*model.AboutContent, error)
	updateAboutFunc   func(ctx context.Context, in *model.AboutContentInput) (*model.AboutContent, error)
	getContactFunc    func(ctx context.Context) (*model.ContactInfo, error)
	updateContactFunc func(ctx context.Context, in *model.ContactInfoInput) (*model.ContactInfo, error)
	listSectionsFunc  func(ctx context.Context) ([]*model.ContentSection, error)
	getSectionFunc    func(ctx context.Context, key string) (*model.ContentSection, error)
	updateSectionFunc func(ctx context.Context, key string, in *model.ContentSectionInput) (*model.ContentSection, error)
	deleteSectionFunc func(ctx context.Context, key string) error
	calls             int
}

func (m *mockSiteContentService) GetHeroContent(ctx context.Context) (*model.HeroContent, error) {
	m.calls++
	if m.getHeroFunc != nil {
		return m.getHeroFunc(ctx)
	}
	return nil, nil
}

func (m *mockSiteContentService) UpdateHeroContent(ctx context.Context, in *model.HeroContentInput) (*model.HeroContent, error) {
	m.calls++
	if m.updateHeroFunc != nil {
		return m.updateHeroFunc(ctx, in)
	}
	c := model.DefaultHeroContent()
	in.MergeInto(&c)
	return &c, nil
}

func (m *mockSiteContentService) GetAboutContent(ctx context.Context) (*model.AboutContent, error) {
	m.calls++
	if m.getAboutFunc != nil {
		return m.getAboutFunc(ctx)
	}
	return nil, nil
}

func (m *mockSiteContentService) UpdateAboutContent(ctx context.Context, in *model.AboutContentInput) (*model.AboutContent, error) {
	m.calls++
	if m.updateAboutFunc != nil {
		return m.updateAboutFunc(ctx, in)
	}
	c := model.DefaultAboutContent()
	in.MergeInto(&c)
	return &c, nil
}

func (m *mockSiteContentService) GetContactInfo(ctx context.Context) (*model.ContactInfo, error) {
	m.calls++
	if m.getContactFunc != nil {
		return m.getContactFunc(ctx)
	}
	return nil, nil
}

func (m *mockSiteContentService) UpdateContactInfo(ctx context.Context, in *model.ContactInfoInput) (*model.ContactInfo, error) {
	m.calls++
	if m.updateContactFunc != nil {
		return m.updateContactFunc(ctx, in)
	}
	c := model.DefaultContactInfo()
	in.MergeInto(&c)
	return &c, nil
}

func (m *mockSiteContentService) ListContentSections(ctx context.Context) ([]*model.ContentSection, error) {
	m.calls++
	if m.listSectionsFunc != nil {
		return m.listSectionsFunc(ctx)
	}
	return []*model.ContentSection{}, nil
}

func (m *mockSiteContentService) GetContentSection(ctx context.Context, key string) (*model.ContentSection, error) {
	m.calls++
	if m.getSectionFunc != nil {
		return m.getSectionFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockSiteContentService) UpdateContentSection(ctx context.Context, key string, in *model.ContentSectionInput) (*model.ContentSection, error) {
	m.calls++
	if m.updateSectionFunc != nil {
		return m.updateSectionFunc(ctx, key, in)
	}
	s := &model.ContentSection{ID: "sec-1", SectionKey: key, IsActive: true}
	in.MergeInto(s)
	return s, nil
}

func (m *mockSiteContentService) DeleteContentSection(ctx context.Context, key string) error {
	m.calls++
	if m.deleteSectionFunc != nil {
		return m.deleteSectionFunc(ctx, key)
	}
	return nil
}

// ---------------------------------------------------------------------------
// mockCatalogService
// ---------------------------------------------------------------------------

type mockCatalogService struct {
	listPackagesFunc      func(ctx context.Context) ([]*model.BoatingPackage, error)
	getPackageFunc        func(ctx context.Context, packageID string) (*model.BoatingPackage, error)
	createPackageFunc     func(ctx context.Context, in *model.BoatingPackageInput) (*model.BoatingPackage, error)
	updatePackageFunc     func(ctx context.Context, packageID string, patch *model.BoatingPackagePatch) (*model.BoatingPackage, error)
	deletePackageFunc     func(ctx context.Context, packageID string) error
	listTestimonialsFunc  func(ctx context.Context) ([]*model.Testimonial, error)
	getTestimonialFunc    func(ctx context.Context, id string) (*model.Testimonial, error)
	createTestimonialFunc func(ctx context.Context, in *model.TestimonialInput) (*model.Testimonial, error)
	updateTestimonialFunc func(ctx context.Context, id string, patch *model.TestimonialPatch) (*model.Testimonial, error)
	deleteTestimonialFunc func(ctx context.Context, id string) error
	listImagesFunc        func(ctx context.Context) ([]*model.GalleryImage, error)
	getImageFunc          func(ctx context.Context, id string) (*model.GalleryImage, error)
	createImageFunc       func(ctx context.Context, in *model.GalleryImageInput) (*model.GalleryImage, error)
	updateImageFunc       func(ctx context.Context, id string, patch *model.GalleryImagePatch) (*model.GalleryImage, error)
	deleteImageFunc       func(ctx context.Context, id string) error
	calls                 int
}

func (m *mockCatalogService) ListBoatingPackages(ctx context.Context) ([]*model.BoatingPackage, error) {
	m.calls++
	if m.listPackagesFunc != nil {
		return m.listPackagesFunc(ctx)
	}
	return []*model.BoatingPackage{}, nil
}

func (m *mockCatalogService) GetBoatingPackage(ctx context.Context, packageID string) (*model.BoatingPackage, error) {
	m.calls++
	if m.getPackageFunc != nil {
		return m.getPackageFunc(ctx, packageID)
	}
	return &model.BoatingPackage{PackageID: packageID, IsActive: true}, nil
}

func (m *mockCatalogService) CreateBoatingPackage(ctx context.Context, in *model.BoatingPackageInput) (*model.BoatingPackage, error) {
	m.calls++
	if m.createPackageFunc != nil {
		return m.createPackageFunc(ctx, in)
	}
	p := model.NewBoatingPackage(in)
	p.ID = "pkg-1"
	return p, nil
}

func (m *mockCatalogService) UpdateBoatingPackage(ctx context.Context, packageID string, patch *model.BoatingPackagePatch) (*model.BoatingPackage, error) {
	m.calls++
	if m.updatePackageFunc != nil {
		return m.updatePackageFunc(ctx, packageID, patch)
	}
	p := &model.BoatingPackage{PackageID: packageID}
	patch.Apply(p)
	return p, nil
}

func (m *mockCatalogService) DeleteBoatingPackage(ctx context.Context, packageID string) error {
	m.calls++
	if m.deletePackageFunc != nil {
		return m.deletePackageFunc(ctx, packageID)
	}
	return nil
}

func (m *mockCatalogService) ListTestimonials(ctx context.Context) ([]*model.Testimonial, error) {
	m.calls++
	if m.listTestimonialsFunc != nil {
		return m.listTestimonialsFunc(ctx)
	}
	return []*model.Testimonial{}, nil
}

func (m *mockCatalogService) GetTestimonial(ctx context.Context, id string) (*model.Testimonial, error) {
	m.calls++
	if m.getTestimonialFunc != nil {
		return m.getTestimonialFunc(ctx, id)
	}
	return &model.Testimonial{ID: id}, nil
}

func (m *mockCatalogService) CreateTestimonial(ctx context.Context, in *model.TestimonialInput) (*model.Testimonial, error) {
	m.calls++
	if m.createTestimonialFunc != nil {
		return m.createTestimonialFunc(ctx, in)
	}
	t := model.NewTestimonial(in)
	t.ID = "t-1"
	return t, nil
}

func (m *mockCatalogService) UpdateTestimonial(ctx context.Context, id string, patch *model.TestimonialPatch) (*model.Testimonial, error) {
	m.calls++
	if m.updateTestimonialFunc != nil {
		return m.updateTestimonialFunc(ctx, id, patch)
	}
	t := &model.Testimonial{ID: id}
	patch.Apply(t)
	return t, nil
}

func (m *mockCatalogService) DeleteTestimonial(ctx context.Context, id string) error {
	m.calls++
	if m.deleteTestimonialFunc != nil {
		return m.deleteTestimonialFunc(ctx, id)
	}
	return nil
}

func (m *mockCatalogService) ListGalleryImages(ctx context.Context) ([]*model.GalleryImage, error) {
	m.calls++
	if m.listImagesFunc != nil {
		return m.listImagesFunc(ctx)
	}
	return []*model.GalleryImage{}, nil
}

func (m *mockCatalogService) GetGalleryImage(ctx context.Context, id string) (*model.GalleryImage, error) {
	m.calls++
	if m.getImageFunc != nil {
		return m.getImageFunc(ctx, id)
	}
	return &model.GalleryImage{ID: id}, nil
}

func (m *mockCatalogService) CreateGalleryImage(ctx context.Context, in *model.GalleryImageInput) (*model.GalleryImage, error) {
	m.calls++
	if m.createImageFunc != nil {
		return m.createImageFunc(ctx, in)
	}
	g := model.NewGalleryImage(in)
	g.ID = "img-1"
	return g, nil
}

func (m *mockCatalogService) UpdateGalleryImage(ctx context.Context, id string, patch *model.GalleryImagePatch) (*model.GalleryImage, error) {
	m.calls++
	if m.updateImageFunc != nil {
		return m.updateImageFunc(ctx, id, patch)
	}
	g := &model.GalleryImage{ID: id}
	patch.Apply(g)
	return g, nil
}

func (m *mockCatalogService) DeleteGalleryImage(ctx context.Context, id string) error {
	m.calls++
	if m.deleteImageFunc != nil {
		return m.deleteImageFunc(ctx, id)
	}
	return nil
}
