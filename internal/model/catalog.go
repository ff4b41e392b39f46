package model

import "time"

// BoatingPackage is a bookable tour, addressed by its PackageID slug.
// Deleting a package clears IsActive; the row is kept.
type BoatingPackage struct {
	ID            string    `json:"id"`
	PackageID     string    `json:"packageId"`
	Title         string    `json:"title"`
	Duration      string    `json:"duration"`
	Price         string    `json:"price"`
	OriginalPrice *string   `json:"originalPrice"`
	Description   string    `json:"description"`
	Image         string    `json:"image"`
	Features      []string  `json:"features"`
	IsPopular     bool      `json:"isPopular"`
	WhatsappLink  string    `json:"whatsappLink"`
	SortOrder     int       `json:"sortOrder"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BoatingPackageInput is the POST /api/boating-packages payload.
type BoatingPackageInput struct {
	PackageID     string   `json:"packageId" validate:"required,max=100,slug"`
	Title         string   `json:"title" validate:"required,max=200"`
	Duration      string   `json:"duration" validate:"required,max=100"`
	Price         string   `json:"price" validate:"required,max=50"`
	OriginalPrice *string  `json:"originalPrice" validate:"omitempty,max=50"`
	Description   string   `json:"description" validate:"required,max=5000"`
	Image         string   `json:"image" validate:"required,max=500"`
	Features      []string `json:"features" validate:"required,min=1,max=30,dive,required,max=300"`
	IsPopular     *bool    `json:"isPopular"`
	WhatsappLink  string   `json:"whatsappLink" validate:"required,url,max=1000"`
	SortOrder     *int     `json:"sortOrder" validate:"omitempty,min=0"`
	IsActive      *bool    `json:"isActive"`
}

// NewBoatingPackage builds the stored form of in with defaults applied.
func NewBoatingPackage(in *BoatingPackageInput) *BoatingPackage {
	p := &BoatingPackage{
		PackageID:     in.PackageID,
		Title:         in.Title,
		Duration:      in.Duration,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Description:   in.Description,
		Image:         in.Image,
		Features:      append([]string{}, in.Features...),
		WhatsappLink:  in.WhatsappLink,
		IsActive:      true,
	}
	setBool(&p.IsPopular, in.IsPopular)
	setInt(&p.SortOrder, in.SortOrder)
	setBool(&p.IsActive, in.IsActive)
	return p
}

// BoatingPackagePatch is the PUT /api/boating-packages/{id} payload. Only
// non-nil fields are applied; the package identifier cannot be changed.
type BoatingPackagePatch struct {
	Title         *string  `json:"title" validate:"omitempty,max=200"`
	Duration      *string  `json:"duration" validate:"omitempty,max=100"`
	Price         *string  `json:"price" validate:"omitempty,max=50"`
	OriginalPrice *string  `json:"originalPrice" validate:"omitempty,max=50"`
	Description   *string  `json:"description" validate:"omitempty,max=5000"`
	Image         *string  `json:"image" validate:"omitempty,max=500"`
	Features      []string `json:"features" validate:"omitempty,max=30,dive,required,max=300"`
	IsPopular     *bool    `json:"isPopular"`
	WhatsappLink  *string  `json:"whatsappLink" validate:"omitempty,url,max=1000"`
	SortOrder     *int     `json:"sortOrder" validate:"omitempty,min=0"`
	IsActive      *bool    `json:"isActive"`
}

// Apply writes the set fields of patch onto p.
func (patch *BoatingPackagePatch) Apply(p *BoatingPackage) {
	setString(&p.Title, patch.Title)
	setString(&p.Duration, patch.Duration)
	setString(&p.Price, patch.Price)
	setOptional(&p.OriginalPrice, patch.OriginalPrice)
	setString(&p.Description, patch.Description)
	setString(&p.Image, patch.Image)
	if patch.Features != nil {
		p.Features = append([]string{}, patch.Features...)
	}
	setBool(&p.IsPopular, patch.IsPopular)
	setString(&p.WhatsappLink, patch.WhatsappLink)
	setInt(&p.SortOrder, patch.SortOrder)
	setBool(&p.IsActive, patch.IsActive)
}

// Testimonial is a guest review shown on the site.
type Testimonial struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Platform   string    `json:"platform"`
	Rating     int       `json:"rating"`
	Review     string    `json:"review"`
	UserImage  *string   `json:"userImage"`
	ReviewDate string    `json:"reviewDate"`
	SortOrder  int       `json:"sortOrder"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TestimonialInput is the POST /api/testimonials payload. Rating defaults to 5.
type TestimonialInput struct {
	Name       string  `json:"name" validate:"required,max=200"`
	Platform   string  `json:"platform" validate:"required,max=100"`
	Rating     *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Review     string  `json:"review" validate:"required,max=5000"`
	UserImage  *string `json:"userImage" validate:"omitempty,max=500"`
	ReviewDate string  `json:"reviewDate" validate:"required,max=100"`
	SortOrder  *int    `json:"sortOrder" validate:"omitempty,min=0"`
	IsActive   *bool   `json:"isActive"`
}

// NewTestimonial builds the stored form of in with defaults applied.
func NewTestimonial(in *TestimonialInput) *Testimonial {
	t := &Testimonial{
		Name:       in.Name,
		Platform:   in.Platform,
		Rating:     5,
		Review:     in.Review,
		UserImage:  in.UserImage,
		ReviewDate: in.ReviewDate,
		IsActive:   true,
	}
	setInt(&t.Rating, in.Rating)
	setInt(&t.SortOrder, in.SortOrder)
	setBool(&t.IsActive, in.IsActive)
	return t
}

// TestimonialPatch is the PUT /api/testimonials/{id} payload.
type TestimonialPatch struct {
	Name       *string `json:"name" validate:"omitempty,max=200"`
	Platform   *string `json:"platform" validate:"omitempty,max=100"`
	Rating     *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Review     *string `json:"review" validate:"omitempty,max=5000"`
	UserImage  *string `json:"userImage" validate:"omitempty,max=500"`
	ReviewDate *string `json:"reviewDate" validate:"omitempty,max=100"`
	SortOrder  *int    `json:"sortOrder" validate:"omitempty,min=0"`
	IsActive   *bool   `json:"isActive"`
}

// Apply writes the set fields of patch onto t.
func (patch *TestimonialPatch) Apply(t *Testimonial) {
	setString(&t.Name, patch.Name)
	setString(&t.Platform, patch.Platform)
	setInt(&t.Rating, patch.Rating)
	setString(&t.Review, patch.Review)
	setOptional(&t.UserImage, patch.UserImage)
	setString(&t.ReviewDate, patch.ReviewDate)
	setInt(&t.SortOrder, patch.SortOrder)
	setBool(&t.IsActive, patch.IsActive)
}

// GalleryImage is a photo in the public gallery.
type GalleryImage struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	AltText     string    `json:"altText"`
	Category    *string   `json:"category"`
	SortOrder   int       `json:"sortOrder"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// GalleryImageInput is the POST /api/gallery-images payload.
type GalleryImageInput struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	ImageURL    string  `json:"imageUrl" validate:"required,max=500"`
	AltText     string  `json:"altText" validate:"required,max=300"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	SortOrder   *int    `json:"sortOrder" validate:"omitempty,min=0"`
	IsActive    *bool   `json:"isActive"`
}

// NewGalleryImage builds the stored form of in with defaults applied.
func NewGalleryImage(in *GalleryImageInput) *GalleryImage {
	g := &GalleryImage{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		AltText:     in.AltText,
		Category:    in.Category,
		IsActive:    true,
	}
	setInt(&g.SortOrder, in.SortOrder)
	setBool(&g.IsActive, in.IsActive)
	return g
}

// GalleryImagePatch is the PUT /api/gallery-images/{id} payload.
type GalleryImagePatch struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,max=500"`
	AltText     *string `json:"altText" validate:"omitempty,max=300"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	SortOrder   *int    `json:"sortOrder" validate:"omitempty,min=0"`
	IsActive    *bool   `json:"isActive"`
}

// Apply writes the set fields of patch onto g.
func (patch *GalleryImagePatch) Apply(g *GalleryImage) {
	setString(&g.Title, patch.Title)
	setOptional(&g.Description, patch.Description)
	setString(&g.ImageURL, patch.ImageURL)
	setString(&g.AltText, patch.AltText)
	setOptional(&g.Category, patch.Category)
	setInt(&g.SortOrder, patch.SortOrder)
	setBool(&g.IsActive, patch.IsActive)
}
