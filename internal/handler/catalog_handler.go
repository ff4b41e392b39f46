package handler

import (
	"net/http"

	"github.com/heavenofmunroe/backend/internal/model"
	"github.com/heavenofmunroe/backend/internal/service"
)

// CatalogHandler serves boating packages, testimonials and gallery images.
// Lists contain active records only; DELETE deactivates.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a CatalogHandler with the given service.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// pathID reads the {id} path value; the mux never routes an empty one.
func pathID(r *http.Request) string {
	return r.PathValue("id")
}

// --- boating packages ---

type packageResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Package *model.BoatingPackage `json:"package"`
}

// ListBoatingPackages handles GET /api/boating-packages.
func (h *CatalogHandler) ListBoatingPackages(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalogService.ListBoatingPackages(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "list_boating_packages")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// GetBoatingPackage handles GET /api/boating-packages/{id}, where id is the
// package's packageId.
func (h *CatalogHandler) GetBoatingPackage(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalogService.GetBoatingPackage(r.Context(), pathID(r))
	if err != nil {
		writeServiceError(w, r, err, "get_boating_package")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// CreateBoatingPackage handles POST /api/boating-packages.
func (h *CatalogHandler) CreateBoatingPackage(w http.ResponseWriter, r *http.Request) {
	var in model.BoatingPackageInput
	if !bind(w, r, &in, "Invalid package data") {
		return
	}
	p, err := h.catalogService.CreateBoatingPackage(r.Context(), &in)
	if err != nil {
		writeServiceError(w, r, err, "create_boating_package")
		return
	}
	writeJSON(w, http.StatusCreated, packageResponse{Success: true, Message: "Boating package created successfully", Package: p})
}

// UpdateBoatingPackage handles PUT /api/boating-packages/{id}.
func (h *CatalogHandler) UpdateBoatingPackage(w http.ResponseWriter, r *http.Request) {
	var patch model.BoatingPackagePatch
	if !bind(w, r, &patch, "Invalid package data") {
		return
	}
	p, err := h.catalogService.UpdateBoatingPackage(r.Context(), pathID(r), &patch)
	if err != nil {
		writeServiceError(w, r, err, "update_boating_package")
		return
	}
	writeJSON(w, http.StatusOK, packageResponse{Success: true, Message: "Boating package updated successfully", Package: p})
}

// DeleteBoatingPackage handles DELETE /api/boating-packages/{id}.
func (h *CatalogHandler) DeleteBoatingPackage(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteBoatingPackage(r.Context(), pathID(r)); err != nil {
		writeServiceError(w, r, err, "delete_boating_package")
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{Success: true, Message: "Boating package deleted successfully"})
}

// --- testimonials ---

type testimonialResponse struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message"`
	Testimonial *model.Testimonial `json:"testimonial"`
}

// ListTestimonials handles GET /api/testimonials.
func (h *CatalogHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalogService.ListTestimonials(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "list_testimonials")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// GetTestimonial handles GET /api/testimonials/{id}.
func (h *CatalogHandler) GetTestimonial(w http.ResponseWriter, r *http.Request) {
	t, err := h.catalogService.GetTestimonial(r.Context(), pathID(r))
	if err != nil {
		writeServiceError(w, r, err, "get_testimonial")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// CreateTestimonial handles POST /api/testimonials.
func (h *CatalogHandler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var in model.TestimonialInput
	if !bind(w, r, &in, "Invalid testimonial data") {
		return
	}
	t, err := h.catalogService.CreateTestimonial(r.Context(), &in)
	if err != nil {
		writeServiceError(w, r, err, "create_testimonial")
		return
	}
	writeJSON(w, http.StatusCreated, testimonialResponse{Success: true, Message: "Testimonial created successfully", Testimonial: t})
}

// UpdateTestimonial handles PUT /api/testimonials/{id}.
func (h *CatalogHandler) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	var patch model.TestimonialPatch
	if !bind(w, r, &patch, "Invalid testimonial data") {
		return
	}
	t, err := h.catalogService.UpdateTestimonial(r.Context(), pathID(r), &patch)
	if err != nil {
		writeServiceError(w, r, err, "update_testimonial")
		return
	}
	writeJSON(w, http.StatusOK, testimonialResponse{Success: true, Message: "Testimonial updated successfully", Testimonial: t})
}

// DeleteTestimonial handles DELETE /api/testimonials/{id}.
func (h *CatalogHandler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteTestimonial(r.Context(), pathID(r)); err != nil {
		writeServiceError(w, r, err, "delete_testimonial")
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{Success: true, Message: "Testimonial deleted successfully"})
}

// --- gallery images ---

type imageResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Image   *model.GalleryImage `json:"image"`
}

// ListGalleryImages handles GET /api/gallery-images.
func (h *CatalogHandler) ListGalleryImages(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalogService.ListGalleryImages(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "list_gallery_images")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// GetGalleryImage handles GET /api/gallery-images/{id}.
func (h *CatalogHandler) GetGalleryImage(w http.ResponseWriter, r *http.Request) {
	g, err := h.catalogService.GetGalleryImage(r.Context(), pathID(r))
	if err != nil {
		writeServiceError(w, r, err, "get_gallery_image")
		return
	}
	writeJSON(w, http.StatusOK, g)
}

// CreateGalleryImage handles POST /api/gallery-images.
func (h *CatalogHandler) CreateGalleryImage(w http.ResponseWriter, r *http.Request) {
	var in model.GalleryImageInput
	if !bind(w, r, &in, "Invalid image data") {
		return
	}
	g, err := h.catalogService.CreateGalleryImage(r.Context(), &in)
	if err != nil {
		writeServiceError(w, r, err, "create_gallery_image")
		return
	}
	writeJSON(w, http.StatusCreated, imageResponse{Success: true, Message: "Gallery image created successfully", Image: g})
}

// UpdateGalleryImage handles PUT /api/gallery-images/{id}.
func (h *CatalogHandler) UpdateGalleryImage(w http.ResponseWriter, r *http.Request) {
	var patch model.GalleryImagePatch
	if !bind(w, r, &patch, "Invalid image data") {
		return
	}
	g, err := h.catalogService.UpdateGalleryImage(r.Context(), pathID(r), &patch)
	if err != nil {
		writeServiceError(w, r, err, "update_gallery_image")
		return
	}
	writeJSON(w, http.StatusOK, imageResponse{Success: true, Message: "Gallery image updated successfully", Image: g})
}

// DeleteGalleryImage handles DELETE /api/gallery-images/{id}.
func (h *CatalogHandler) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteGalleryImage(r.Context(), pathID(r)); err != nil {
		writeServiceError(w, r, err, "delete_gallery_image")
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{Success: true, Message: "Gallery image deleted successfully"})
}
