package handler

import (
	"net/http"

	"github.com/heavenofmunroe/backend/internal/metrics"
	"github.com/heavenofmunroe/backend/internal/repository"
	"github.com/heavenofmunroe/backend/internal/service"
	"github.com/heavenofmunroe/backend/pkg/auth"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig carries everything NewRouter wires together.
type RouterConfig struct {
	Repository  repository.Repository
	FrontendURL string
	AdminToken  string
	// RateLimiter guards the public form endpoints. Nil disables limiting.
	RateLimiter *RateLimiter
}

// NewRouter builds the full HTTP handler: routes plus the middleware chain
// SecurityHeaders → CORS → RequestLogger → metrics → mux.
func NewRouter(cfg RouterConfig) http.Handler {
	h := New(cfg.Repository, cfg.FrontendURL)
	inquiryHandler := NewInquiryHandler(service.NewInquiryService(cfg.Repository))
	contentHandler := NewSiteContentHandler(service.NewSiteContentService(cfg.Repository))
	catalogHandler := NewCatalogHandler(service.NewCatalogService(cfg.Repository))

	limit := func(next http.Handler) http.Handler { return next }
	if cfg.RateLimiter != nil {
		limit = cfg.RateLimiter.Middleware
	}
	admin := auth.AdminMiddleware(cfg.AdminToken)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Public forms (rate-limited)
	mux.Handle("POST /api/booking-inquiry", limit(http.HandlerFunc(inquiryHandler.SubmitBookingInquiry)))
	mux.Handle("POST /api/contact-message", limit(http.HandlerFunc(inquiryHandler.SubmitContactMessage)))

	// Admin listings
	mux.Handle("GET /api/admin/booking-inquiries", admin(http.HandlerFunc(inquiryHandler.ListBookingInquiries)))
	mux.Handle("GET /api/admin/contact-messages", admin(http.HandlerFunc(inquiryHandler.ListContactMessages)))

	// Singleton content
	mux.HandleFunc("GET /api/hero-content", contentHandler.GetHeroContent)
	mux.Handle("PUT /api/hero-content", admin(http.HandlerFunc(contentHandler.UpdateHeroContent)))
	mux.HandleFunc("GET /api/about-content", contentHandler.GetAboutContent)
	mux.Handle("PUT /api/about-content", admin(http.HandlerFunc(contentHandler.UpdateAboutContent)))
	mux.HandleFunc("GET /api/contact-info", contentHandler.GetContactInfo)
	mux.Handle("PUT /api/contact-info", admin(http.HandlerFunc(contentHandler.UpdateContactInfo)))

	// Content sections
	mux.HandleFunc("GET /api/content-sections", contentHandler.ListContentSections)
	mux.HandleFunc("GET /api/content-sections/{key}", contentHandler.GetContentSection)
	mux.Handle("PUT /api/content-sections/{key}", admin(http.HandlerFunc(contentHandler.UpdateContentSection)))
	mux.Handle("DELETE /api/content-sections/{key}", admin(http.HandlerFunc(contentHandler.DeleteContentSection)))

	// Catalog
	mux.HandleFunc("GET /api/boating-packages", catalogHandler.ListBoatingPackages)
	mux.Handle("POST /api/boating-packages", admin(http.HandlerFunc(catalogHandler.CreateBoatingPackage)))
	mux.HandleFunc("GET /api/boating-packages/{id}", catalogHandler.GetBoatingPackage)
	mux.Handle("PUT /api/boating-packages/{id}", admin(http.HandlerFunc(catalogHandler.UpdateBoatingPackage)))
	mux.Handle("DELETE /api/boating-packages/{id}", admin(http.HandlerFunc(catalogHandler.DeleteBoatingPackage)))

	mux.HandleFunc("GET /api/testimonials", catalogHandler.ListTestimonials)
	mux.Handle("POST /api/testimonials", admin(http.HandlerFunc(catalogHandler.CreateTestimonial)))
	mux.HandleFunc("GET /api/testimonials/{id}", catalogHandler.GetTestimonial)
	mux.Handle("PUT /api/testimonials/{id}", admin(http.HandlerFunc(catalogHandler.UpdateTestimonial)))
	mux.Handle("DELETE /api/testimonials/{id}", admin(http.HandlerFunc(catalogHandler.DeleteTestimonial)))

	mux.HandleFunc("GET /api/gallery-images", catalogHandler.ListGalleryImages)
	mux.Handle("POST /api/gallery-images", admin(http.HandlerFunc(catalogHandler.CreateGalleryImage)))
	mux.HandleFunc("GET /api/gallery-images/{id}", catalogHandler.GetGalleryImage)
	mux.Handle("PUT /api/gallery-images/{id}", admin(http.HandlerFunc(catalogHandler.UpdateGalleryImage)))
	mux.Handle("DELETE /api/gallery-images/{id}", admin(http.HandlerFunc(catalogHandler.DeleteGalleryImage)))

	return SecurityHeaders(h.CORS(RequestLogger(metrics.Middleware(mux))))
}
