package model

import "time"

// HeroContent is the landing-page banner. At most one active row exists.
type HeroContent struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Subtitle            string    `json:"subtitle"`
	Description         string    `json:"description"`
	BackgroundImage     string    `json:"backgroundImage"`
	PrimaryButtonText   string    `json:"primaryButtonText"`
	SecondaryButtonText string    `json:"secondaryButtonText"`
	ScrollHintText      string    `json:"scrollHintText"`
	IsActive            bool      `json:"isActive"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// HeroContentInput is the PUT /api/hero-content payload. Nil fields keep the
// stored value, or take the default when no row exists yet.
type HeroContentInput struct {
	Title               *string `json:"title" validate:"omitempty,max=200"`
	Subtitle            *string `json:"subtitle" validate:"omitempty,max=200"`
	Description         *string `json:"description" validate:"omitempty,max=2000"`
	BackgroundImage     *string `json:"backgroundImage" validate:"omitempty,max=500"`
	PrimaryButtonText   *string `json:"primaryButtonText" validate:"omitempty,max=100"`
	SecondaryButtonText *string `json:"secondaryButtonText" validate:"omitempty,max=100"`
	ScrollHintText      *string `json:"scrollHintText" validate:"omitempty,max=200"`
	IsActive            *bool   `json:"isActive"`
}

// DefaultHeroContent returns the hero banner used when fields are missing on
// first insert.
func DefaultHeroContent() HeroContent {
	return HeroContent{
		Title:               "Heaven of Munroe",
		Subtitle:            "Room Stay & Food Boating Service",
		Description:         "Experience Authentic Kerala Backwaters",
		BackgroundImage:     "/images/backwater-boat-silhouette.jpg",
		PrimaryButtonText:   "Discover Paradise",
		SecondaryButtonText: "Book Your Journey",
		ScrollHintText:      "✨ Scroll down to explore our services",
		IsActive:            true,
	}
}

// MergeInto overwrites the fields of c that are set in in.
func (in *HeroContentInput) MergeInto(c *HeroContent) {
	setString(&c.Title, in.Title)
	setString(&c.Subtitle, in.Subtitle)
	setString(&c.Description, in.Description)
	setString(&c.BackgroundImage, in.BackgroundImage)
	setString(&c.PrimaryButtonText, in.PrimaryButtonText)
	setString(&c.SecondaryButtonText, in.SecondaryButtonText)
	setString(&c.ScrollHintText, in.ScrollHintText)
	setBool(&c.IsActive, in.IsActive)
}

// AboutContent is the host biography block. At most one active row exists.
type AboutContent struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	HostName       string    `json:"hostName"`
	HostImage      string    `json:"hostImage"`
	IntroText      string    `json:"introText"`
	Description1   string    `json:"description1"`
	Description2   string    `json:"description2"`
	ExpandedText1  *string   `json:"expandedText1"`
	ExpandedText2  *string   `json:"expandedText2"`
	Languages      string    `json:"languages"`
	Certifications string    `json:"certifications"`
	IsActive       bool      `json:"isActive"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// AboutContentInput is the PUT /api/about-content payload.
type AboutContentInput struct {
	Title          *string `json:"title" validate:"omitempty,max=200"`
	HostName       *string `json:"hostName" validate:"omitempty,max=200"`
	HostImage      *string `json:"hostImage" validate:"omitempty,max=500"`
	IntroText      *string `json:"introText" validate:"omitempty,max=2000"`
	Description1   *string `json:"description1" validate:"omitempty,max=5000"`
	Description2   *string `json:"description2" validate:"omitempty,max=5000"`
	ExpandedText1  *string `json:"expandedText1" validate:"omitempty,max=5000"`
	ExpandedText2  *string `json:"expandedText2" validate:"omitempty,max=5000"`
	Languages      *string `json:"languages" validate:"omitempty,max=200"`
	Certifications *string `json:"certifications" validate:"omitempty,max=200"`
	IsActive       *bool   `json:"isActive"`
}

// DefaultAboutContent returns the about block used when fields are missing on
// first insert.
func DefaultAboutContent() AboutContent {
	return AboutContent{
		Title:          "Meet Evan - Your Local Host",
		HostName:       "Evan",
		HostImage:      "/images/1 (15).jpg",
		IntroText:      "Born and raised on the pristine waters of Munroe Island",
		Description1:   "His deep connection with the local ecosystem",
		Description2:   "When you book with Heaven of Munroe",
		Languages:      "English, Hindi, Malayalam",
		Certifications: "Tourism Board Approved",
		IsActive:       true,
	}
}

// MergeInto overwrites the fields of c that are set in in.
func (in *AboutContentInput) MergeInto(c *AboutContent) {
	setString(&c.Title, in.Title)
	setString(&c.HostName, in.HostName)
	setString(&c.HostImage, in.HostImage)
	setString(&c.IntroText, in.IntroText)
	setString(&c.Description1, in.Description1)
	setString(&c.Description2, in.Description2)
	setOptional(&c.ExpandedText1, in.ExpandedText1)
	setOptional(&c.ExpandedText2, in.ExpandedText2)
	setString(&c.Languages, in.Languages)
	setString(&c.Certifications, in.Certifications)
	setBool(&c.IsActive, in.IsActive)
}

// ContactInfo holds the business contact details. At most one active row exists.
type ContactInfo struct {
	ID             string    `json:"id"`
	BusinessName   string    `json:"businessName"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	Address        string    `json:"address"`
	WhatsappNumber string    `json:"whatsappNumber"`
	Facebook       *string   `json:"facebook"`
	Instagram      *string   `json:"instagram"`
	GoogleMaps     *string   `json:"googleMaps"`
	Description    string    `json:"description"`
	BusinessHours  string    `json:"businessHours"`
	IsActive       bool      `json:"isActive"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ContactInfoInput is the PUT /api/contact-info payload.
type ContactInfoInput struct {
	BusinessName   *string `json:"businessName" validate:"omitempty,max=200"`
	Phone          *string `json:"phone" validate:"omitempty,max=30"`
	Email          *string `json:"email" validate:"omitempty,email,max=320"`
	Address        *string `json:"address" validate:"omitempty,max=500"`
	WhatsappNumber *string `json:"whatsappNumber" validate:"omitempty,max=30"`
	Facebook       *string `json:"facebook" validate:"omitempty,max=500"`
	Instagram      *string `json:"instagram" validate:"omitempty,max=500"`
	GoogleMaps     *string `json:"googleMaps" validate:"omitempty,max=1000"`
	Description    *string `json:"description" validate:"omitempty,max=2000"`
	BusinessHours  *string `json:"businessHours" validate:"omitempty,max=200"`
	IsActive       *bool   `json:"isActive"`
}

// DefaultContactInfo returns the contact details used when fields are missing
// on first insert.
func DefaultContactInfo() ContactInfo {
	return ContactInfo{
		BusinessName:   "Heaven of Munroe",
		Phone:          "+91 96338 36839",
		Email:          "heavenofmunroe@gmail.com",
		Address:        "Munroe Island, Kollam District, Kerala, India",
		WhatsappNumber: "919633836839",
		Description:    "Get in touch with us for bookings, inquiries, or any questions about our services.",
		BusinessHours:  "Available 24/7 for bookings and inquiries",
		IsActive:       true,
	}
}

// MergeInto overwrites the fields of c that are set in in.
func (in *ContactInfoInput) MergeInto(c *ContactInfo) {
	setString(&c.BusinessName, in.BusinessName)
	setString(&c.Phone, in.Phone)
	setString(&c.Email, in.Email)
	setString(&c.Address, in.Address)
	setString(&c.WhatsappNumber, in.WhatsappNumber)
	setOptional(&c.Facebook, in.Facebook)
	setOptional(&c.Instagram, in.Instagram)
	setOptional(&c.GoogleMaps, in.GoogleMaps)
	setString(&c.Description, in.Description)
	setString(&c.BusinessHours, in.BusinessHours)
	setBool(&c.IsActive, in.IsActive)
}

// ContentSection is a free-form block of copy addressed by its section key.
type ContentSection struct {
	ID         string    `json:"id"`
	SectionKey string    `json:"sectionKey"`
	Title      *string   `json:"title"`
	Content    string    `json:"content"`
	ImageURL   *string   `json:"imageUrl"`
	IsActive   bool      `json:"isActive"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ContentSectionInput is the PUT /api/content-sections/{key} payload. The key
// itself comes from the path.
type ContentSectionInput struct {
	Title    *string `json:"title" validate:"omitempty,max=200"`
	Content  string  `json:"content" validate:"required,max=20000"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,max=500"`
	IsActive *bool   `json:"isActive"`
}

// MergeInto overwrites the fields of s that are set in in.
func (in *ContentSectionInput) MergeInto(s *ContentSection) {
	setOptional(&s.Title, in.Title)
	s.Content = in.Content
	setOptional(&s.ImageURL, in.ImageURL)
	setBool(&s.IsActive, in.IsActive)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setOptional(dst **string, v *string) {
	if v != nil {
		s := *v
		*dst = &s
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
