package seed

import (
	"net/url"

	"github.com/heavenofmunroe/backend/internal/model"
)

func str(s string) *string { return &s }
func boolean(b bool) *bool { return &b }
func num(n int) *int       { return &n }

// whatsappBooking returns a click-to-chat link prefilled with a booking
// request for the named package.
func whatsappBooking(title string) string {
	return "https://api.whatsapp.com/send?phone=919633836839&text=" +
		url.QueryEscape("Hi! I want to book "+title+" package")
}

var hero = model.HeroContentInput{
	Title:               str("Heaven of Munroe"),
	Subtitle:            str("Room Stay & Food Boating Service"),
	Description:         str("Experience Authentic Kerala Backwaters"),
	BackgroundImage:     str("/images/backwater-boat-silhouette.jpg"),
	PrimaryButtonText:   str("Discover Paradise"),
	SecondaryButtonText: str("Book Your Journey"),
	ScrollHintText:      str("✨ Scroll down to explore our services"),
}

var about = model.AboutContentInput{
	Title:        str("Meet Evan - Your Local Host"),
	HostName:     str("Evan"),
	HostImage:    str("/images/1 (15).jpg"),
	IntroText:    str("Born and raised on the pristine waters of Munroe Island, Evan has spent over two decades mastering the art of backwater navigation and hospitality."),
	Description1: str("His deep connection with the local ecosystem and authentic Kerala culture makes every journey a unique experience filled with stories, local wisdom, and genuine warmth."),
	Description2: str("When you book with Heaven of Munroe, you're not just getting a service - you're becoming part of Evan's extended family."),
	ExpandedText1: str("Evan's expertise extends beyond boating - he's also a certified local guide, traditional chef, and cultural ambassador for Munroe Island. " +
		"His multilingual abilities ensure comfortable communication with guests from around the world."),
	ExpandedText2: str("The business started as a family tradition, passed down through generations of fishermen and boat builders. " +
		"Today, Evan combines this heritage with modern hospitality standards to create unforgettable experiences."),
	Languages:      str("English, Hindi, Malayalam"),
	Certifications: str("Tourism Board Approved"),
}

var packages = []model.BoatingPackageInput{
	{
		PackageID:     "sunrise-special",
		Title:         "Sunrise Special",
		Duration:      "2 Hours",
		Price:         "₹800",
		OriginalPrice: str("₹1000"),
		Description:   "Experience the magical sunrise over Munroe Island backwaters with traditional breakfast",
		Image:         "/images/1 (1).jpg",
		Features: []string{
			"Early morning boat ride (5:30 AM - 7:30 AM)",
			"Traditional Kerala breakfast on boat",
			"Bird watching opportunities",
			"Photography sessions",
			"Local guide and stories",
		},
		IsPopular:    boolean(true),
		WhatsappLink: whatsappBooking("Sunrise Special"),
		SortOrder:    num(1),
	},
	{
		PackageID:     "family-adventure",
		Title:         "Family Adventure",
		Duration:      "4 Hours",
		Price:         "₹1,500",
		OriginalPrice: str("₹1,800"),
		Description:   "Perfect family experience with fishing, traditional lunch, and backwater exploration",
		Image:         "/images/1 (2).jpg",
		Features: []string{
			"Family-friendly boat tour (9:00 AM - 1:00 PM)",
			"Traditional fishing experience",
			"Authentic Kerala lunch on boat",
			"Wildlife spotting",
			"Kids-friendly activities",
		},
		IsPopular:    boolean(false),
		WhatsappLink: whatsappBooking("Family Adventure"),
		SortOrder:    num(2),
	},
	{
		PackageID:     "sunset-romance",
		Title:         "Romantic Sunset",
		Duration:      "3 Hours",
		Price:         "₹1,200",
		OriginalPrice: str("₹1,500"),
		Description:   "Intimate sunset cruise with candlelight dinner for couples",
		Image:         "/images/1 (3).jpg",
		Features: []string{
			"Private sunset cruise (4:30 PM - 7:30 PM)",
			"Candlelight dinner setup",
			"Romantic ambiance with music",
			"Photography session",
			"Complimentary welcome drink",
		},
		IsPopular:    boolean(true),
		WhatsappLink: whatsappBooking("Romantic Sunset"),
		SortOrder:    num(3),
	},
}

var testimonials = []model.TestimonialInput{
	{
		Name:       "Sarah Johnson",
		Platform:   "Google Maps",
		Rating:     num(5),
		Review:     "Absolutely magical experience! The sunrise boat tour was breathtaking. The traditional breakfast on the boat was delicious and the hospitality was exceptional. Highly recommended!",
		UserImage:  str("/images/1 (10).jpg"),
		ReviewDate: "2024-08-15",
		SortOrder:  num(1),
	},
	{
		Name:       "Rajesh Kumar",
		Platform:   "TripAdvisor",
		Rating:     num(5),
		Review:     "Best boating experience in Kerala! The family adventure package was perfect for our group. Kids loved the fishing experience and the traditional lunch was amazing.",
		UserImage:  str("/images/1 (11).jpg"),
		ReviewDate: "2024-08-01",
		SortOrder:  num(2),
	},
	{
		Name:       "Emily Chen",
		Platform:   "Google Reviews",
		Rating:     num(5),
		Review:     "The romantic sunset cruise exceeded all expectations! The candlelight dinner on the boat was incredibly romantic. Perfect for our anniversary celebration.",
		UserImage:  str("/images/1 (12).jpg"),
		ReviewDate: "2024-08-10",
		SortOrder:  num(3),
	},
}

var galleryImages = []model.GalleryImageInput{
	{
		Title:       "Golden Hour Backwaters",
		Description: str("Spectacular golden sunset reflecting on calm backwater channels"),
		ImageURL:    "/images/1 (20).jpg",
		AltText:     "Golden sunset over backwaters",
		Category:    str("sunsets"),
		SortOrder:   num(1),
	},
	{
		Title:       "Traditional Boat Tour",
		Description: str("Authentic Kerala boat experience through narrow canals"),
		ImageURL:    "/images/1 (21).jpg",
		AltText:     "Traditional boat in backwaters",
		Category:    str("boats"),
		SortOrder:   num(2),
	},
	{
		Title:       "Local Wildlife",
		Description: str("Discover diverse bird species and marine life"),
		ImageURL:    "/images/1 (22).jpg",
		AltText:     "Birds and wildlife in backwaters",
		Category:    str("wildlife"),
		SortOrder:   num(3),
	},
}

var contactInfo = model.ContactInfoInput{
	BusinessName:   str("Heaven of Munroe"),
	Email:          str("info@heavenofmunroe.com"),
	Phone:          str("+91 96338 36839"),
	WhatsappNumber: str("+919633836839"),
	Address:        str("Munroe Island, Kollam, Kerala, India"),
	Description:    str("Your gateway to authentic Kerala backwater experiences"),
	Facebook:       str("https://facebook.com/heavenofmunroe"),
	Instagram:      str("https://instagram.com/heavenofmunroe"),
	GoogleMaps:     str("https://maps.google.com/?q=Munroe+Island+Kerala"),
	BusinessHours:  str("6:00 AM - 8:00 PM (Daily)"),
}

type section struct {
	key   string
	input model.ContentSectionInput
}

var sections = []section{
	{
		key: "munroe-island-main",
		input: model.ContentSectionInput{
			Title:    str("Discover Munroe Island"),
			Content:  "Experience the untouched beauty of Munroe Island, where emerald backwaters meet azure skies in perfect harmony.",
			ImageURL: str("/images/canal.jpg"),
		},
	},
	{
		key: "munroe-island-features",
		input: model.ContentSectionInput{
			Title:    str("Island Features"),
			Content:  "Pristine canals, traditional fishing villages, coconut groves, and authentic Kerala hospitality await you.",
			ImageURL: str("/images/boathouse.jpg"),
		},
	},
}
