package repository

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heavenofmunroe/backend/internal/model"
)

// MemoryRepository is the in-process implementation of Repository used when no
// database is configured. Everything is lost on restart.
//
// Records are copied on the way in and out, so callers never share memory
// with the store.
type MemoryRepository struct {
	mu  sync.RWMutex
	now func() time.Time

	inquiries []*model.BookingInquiry
	messages  []*model.ContactMessage

	hero    *model.HeroContent
	about   *model.AboutContent
	contact *model.ContactInfo

	sections     map[string]*model.ContentSection
	packages     []*model.BoatingPackage
	testimonials []*model.Testimonial
	gallery      []*model.GalleryImage
}

// NewMemoryRepository returns an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		now:      func() time.Time { return time.Now().UTC() },
		sections: make(map[string]*model.ContentSection),
	}
}

var _ Repository = (*MemoryRepository)(nil)

func (r *MemoryRepository) Mode() string { return ModeMemory }

func (r *MemoryRepository) Ping(ctx context.Context) error { return nil }

// --- inquiries ---

func (r *MemoryRepository) CreateBookingInquiry(ctx context.Context, in *model.BookingInquiryInput) (*model.BookingInquiry, error) {
	b := model.NewBookingInquiry(in)
	b.ID = uuid.NewString()
	b.CreatedAt = r.now()

	r.mu.Lock()
	r.inquiries = append(r.inquiries, b)
	r.mu.Unlock()
	return cloneInquiry(b), nil
}

func (r *MemoryRepository) ListBookingInquiries(ctx context.Context) ([]*model.BookingInquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.BookingInquiry, 0, len(r.inquiries))
	for i := len(r.inquiries) - 1; i >= 0; i-- {
		out = append(out, cloneInquiry(r.inquiries[i]))
	}
	return out, nil
}

func (r *MemoryRepository) CreateContactMessage(ctx context.Context, in *model.ContactMessageInput) (*model.ContactMessage, error) {
	m := &model.ContactMessage{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: r.now(),
	}

	r.mu.Lock()
	r.messages = append(r.messages, m)
	r.mu.Unlock()
	c := *m
	return &c, nil
}

func (r *MemoryRepository) ListContactMessages(ctx context.Context) ([]*model.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.ContactMessage, 0, len(r.messages))
	for i := len(r.messages) - 1; i >= 0; i-- {
		c := *r.messages[i]
		out = append(out, &c)
	}
	return out, nil
}

// --- singletons ---

func (r *MemoryRepository) GetHeroContent(ctx context.Context) (*model.HeroContent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.hero == nil || !r.hero.IsActive {
		return nil, nil
	}
	c := *r.hero
	return &c, nil
}

func (r *MemoryRepository) StoredSingletons(ctx context.Context) (StoredSingletons, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return StoredSingletons{
		Hero:        r.hero != nil,
		About:       r.about != nil,
		ContactInfo: r.contact != nil,
	}, nil
}

func (r *MemoryRepository) UpdateHeroContent(ctx context.Context, in *model.HeroContentInput) (*model.HeroContent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var next model.HeroContent
	if r.hero != nil && r.hero.IsActive {
		next = *r.hero
	} else {
		next = model.DefaultHeroContent()
		next.ID = uuid.NewString()
		if r.hero != nil {
			next.ID = r.hero.ID
		}
	}
	in.MergeInto(&next)
	next.UpdatedAt = r.now()
	r.hero = &next
	c := next
	return &c, nil
}

func (r *MemoryRepository) GetAboutContent(ctx context.Context) (*model.AboutContent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.about == nil || !r.about.IsActive {
		return nil, nil
	}
	return cloneAbout(r.about), nil
}

func (r *MemoryRepository) UpdateAboutContent(ctx context.Context, in *model.AboutContentInput) (*model.AboutContent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var next model.AboutContent
	if r.about != nil && r.about.IsActive {
		next = *cloneAbout(r.about)
	} else {
		next = model.DefaultAboutContent()
		next.ID = uuid.NewString()
		if r.about != nil {
			next.ID = r.about.ID
		}
	}
	in.MergeInto(&next)
	next.UpdatedAt = r.now()
	r.about = &next
	return cloneAbout(&next), nil
}

func (r *MemoryRepository) GetContactInfo(ctx context.Context) (*model.ContactInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.contact == nil || !r.contact.IsActive {
		return nil, nil
	}
	return cloneContactInfo(r.contact), nil
}

func (r *MemoryRepository) UpdateContactInfo(ctx context.Context, in *model.ContactInfoInput) (*model.ContactInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var next model.ContactInfo
	if r.contact != nil && r.contact.IsActive {
		next = *cloneContactInfo(r.contact)
	} else {
		next = model.DefaultContactInfo()
		next.ID = uuid.NewString()
		if r.contact != nil {
			next.ID = r.contact.ID
		}
	}
	in.MergeInto(&next)
	next.UpdatedAt = r.now()
	r.contact = &next
	return cloneContactInfo(&next), nil
}

// --- content sections ---

func (r *MemoryRepository) ListContentSections(ctx context.Context) ([]*model.ContentSection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.ContentSection, 0, len(r.sections))
	for _, s := range r.sections {
		if s.IsActive {
			out = append(out, cloneSection(s))
		}
	}
	slices.SortFunc(out, func(a, b *model.ContentSection) int {
		return cmp.Compare(a.SectionKey, b.SectionKey)
	})
	return out, nil
}

func (r *MemoryRepository) GetContentSection(ctx context.Context, key string) (*model.ContentSection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sections[key]
	if !ok {
		return nil, nil
	}
	return cloneSection(s), nil
}

func (r *MemoryRepository) UpdateContentSection(ctx context.Context, key string, in *model.ContentSectionInput) (*model.ContentSection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sections[key]
	if !ok {
		s = &model.ContentSection{ID: uuid.NewString(), SectionKey: key, IsActive: true}
		r.sections[key] = s
	}
	in.MergeInto(s)
	s.UpdatedAt = r.now()
	return cloneSection(s), nil
}

func (r *MemoryRepository) DeleteContentSection(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sections[key]
	if !ok {
		return ErrNotFound
	}
	s.IsActive = false
	s.UpdatedAt = r.now()
	return nil
}

// --- boating packages ---

func (r *MemoryRepository) ListBoatingPackages(ctx context.Context) ([]*model.BoatingPackage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.BoatingPackage, 0, len(r.packages))
	for _, p := range r.packages {
		if p.IsActive {
			out = append(out, clonePackage(p))
		}
	}
	slices.SortStableFunc(out, func(a, b *model.BoatingPackage) int {
		return cmp.Compare(a.SortOrder, b.SortOrder)
	})
	return out, nil
}

func (r *MemoryRepository) findPackage(packageID string) *model.BoatingPackage {
	for _, p := range r.packages {
		if p.PackageID == packageID {
			return p
		}
	}
	return nil
}

func (r *MemoryRepository) GetBoatingPackage(ctx context.Context, packageID string) (*model.BoatingPackage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p := r.findPackage(packageID)
	if p == nil {
		return nil, ErrNotFound
	}
	return clonePackage(p), nil
}

func (r *MemoryRepository) CreateBoatingPackage(ctx context.Context, in *model.BoatingPackageInput) (*model.BoatingPackage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findPackage(in.PackageID) != nil {
		return nil, ErrConflict
	}
	p := model.NewBoatingPackage(in)
	p.ID = uuid.NewString()
	p.CreatedAt = r.now()
	p.UpdatedAt = p.CreatedAt
	p.OriginalPrice = cloneString(p.OriginalPrice)
	r.packages = append(r.packages, p)
	return clonePackage(p), nil
}

func (r *MemoryRepository) UpdateBoatingPackage(ctx context.Context, packageID string, patch *model.BoatingPackagePatch) (*model.BoatingPackage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.findPackage(packageID)
	if p == nil {
		return nil, ErrNotFound
	}
	patch.Apply(p)
	p.UpdatedAt = r.now()
	return clonePackage(p), nil
}

func (r *MemoryRepository) DeleteBoatingPackage(ctx context.Context, packageID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.findPackage(packageID)
	if p == nil {
		return ErrNotFound
	}
	p.IsActive = false
	p.UpdatedAt = r.now()
	return nil
}

// --- testimonials ---

func (r *MemoryRepository) ListTestimonials(ctx context.Context) ([]*model.Testimonial, error) {
	return r.listTestimonials(true), nil
}

func (r *MemoryRepository) ListAllTestimonials(ctx context.Context) ([]*model.Testimonial, error) {
	return r.listTestimonials(false), nil
}

func (r *MemoryRepository) listTestimonials(activeOnly bool) []*model.Testimonial {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Testimonial, 0, len(r.testimonials))
	for _, t := range r.testimonials {
		if t.IsActive || !activeOnly {
			out = append(out, cloneTestimonial(t))
		}
	}
	slices.SortStableFunc(out, func(a, b *model.Testimonial) int {
		return cmp.Compare(a.SortOrder, b.SortOrder)
	})
	return out
}

func (r *MemoryRepository) findTestimonial(id string) *model.Testimonial {
	for _, t := range r.testimonials {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (r *MemoryRepository) GetTestimonial(ctx context.Context, id string) (*model.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t := r.findTestimonial(id)
	if t == nil {
		return nil, ErrNotFound
	}
	return cloneTestimonial(t), nil
}

func (r *MemoryRepository) CreateTestimonial(ctx context.Context, in *model.TestimonialInput) (*model.Testimonial, error) {
	t := model.NewTestimonial(in)
	t.ID = uuid.NewString()
	t.UserImage = cloneString(t.UserImage)

	r.mu.Lock()
	defer r.mu.Unlock()
	t.CreatedAt = r.now()
	t.UpdatedAt = t.CreatedAt
	r.testimonials = append(r.testimonials, t)
	return cloneTestimonial(t), nil
}

func (r *MemoryRepository) UpdateTestimonial(ctx context.Context, id string, patch *model.TestimonialPatch) (*model.Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.findTestimonial(id)
	if t == nil {
		return nil, ErrNotFound
	}
	patch.Apply(t)
	t.UpdatedAt = r.now()
	return cloneTestimonial(t), nil
}

func (r *MemoryRepository) DeleteTestimonial(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.findTestimonial(id)
	if t == nil {
		return ErrNotFound
	}
	t.IsActive = false
	t.UpdatedAt = r.now()
	return nil
}

// --- gallery images ---

func (r *MemoryRepository) ListGalleryImages(ctx context.Context) ([]*model.GalleryImage, error) {
	return r.listGalleryImages(true), nil
}

func (r *MemoryRepository) ListAllGalleryImages(ctx context.Context) ([]*model.GalleryImage, error) {
	return r.listGalleryImages(false), nil
}

func (r *MemoryRepository) listGalleryImages(activeOnly bool) []*model.GalleryImage {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.GalleryImage, 0, len(r.gallery))
	for _, g := range r.gallery {
		if g.IsActive || !activeOnly {
			out = append(out, cloneGalleryImage(g))
		}
	}
	slices.SortStableFunc(out, func(a, b *model.GalleryImage) int {
		return cmp.Compare(a.SortOrder, b.SortOrder)
	})
	return out
}

func (r *MemoryRepository) findGalleryImage(id string) *model.GalleryImage {
	for _, g := range r.gallery {
		if g.ID == id {
			return g
		}
	}
	return nil
}

func (r *MemoryRepository) GetGalleryImage(ctx context.Context, id string) (*model.GalleryImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g := r.findGalleryImage(id)
	if g == nil {
		return nil, ErrNotFound
	}
	return cloneGalleryImage(g), nil
}

func (r *MemoryRepository) CreateGalleryImage(ctx context.Context, in *model.GalleryImageInput) (*model.GalleryImage, error) {
	g := model.NewGalleryImage(in)
	g.ID = uuid.NewString()
	g.Description = cloneString(g.Description)
	g.Category = cloneString(g.Category)

	r.mu.Lock()
	defer r.mu.Unlock()
	g.CreatedAt = r.now()
	g.UpdatedAt = g.CreatedAt
	r.gallery = append(r.gallery, g)
	return cloneGalleryImage(g), nil
}

func (r *MemoryRepository) UpdateGalleryImage(ctx context.Context, id string, patch *model.GalleryImagePatch) (*model.GalleryImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g := r.findGalleryImage(id)
	if g == nil {
		return nil, ErrNotFound
	}
	patch.Apply(g)
	g.UpdatedAt = r.now()
	return cloneGalleryImage(g), nil
}

func (r *MemoryRepository) DeleteGalleryImage(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g := r.findGalleryImage(id)
	if g == nil {
		return ErrNotFound
	}
	g.IsActive = false
	g.UpdatedAt = r.now()
	return nil
}

// --- copies ---

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneInquiry(b *model.BookingInquiry) *model.BookingInquiry {
	c := *b
	c.Experiences = append([]string{}, b.Experiences...)
	return &c
}

func cloneAbout(a *model.AboutContent) *model.AboutContent {
	c := *a
	c.ExpandedText1 = cloneString(a.ExpandedText1)
	c.ExpandedText2 = cloneString(a.ExpandedText2)
	return &c
}

func cloneContactInfo(i *model.ContactInfo) *model.ContactInfo {
	c := *i
	c.Facebook = cloneString(i.Facebook)
	c.Instagram = cloneString(i.Instagram)
	c.GoogleMaps = cloneString(i.GoogleMaps)
	return &c
}

func cloneSection(s *model.ContentSection) *model.ContentSection {
	c := *s
	c.Title = cloneString(s.Title)
	c.ImageURL = cloneString(s.ImageURL)
	return &c
}

func clonePackage(p *model.BoatingPackage) *model.BoatingPackage {
	c := *p
	c.OriginalPrice = cloneString(p.OriginalPrice)
	c.Features = append([]string{}, p.Features...)
	return &c
}

func cloneTestimonial(t *model.Testimonial) *model.Testimonial {
	c := *t
	c.UserImage = cloneString(t.UserImage)
	return &c
}

func cloneGalleryImage(g *model.GalleryImage) *model.GalleryImage {
	c := *g
	c.Description = cloneString(g.Description)
	c.Category = cloneString(g.Category)
	return &c
}
