package handler

import (
	"net/http"

	"github.com/heavenofmunroe/backend/internal/model"
	"github.com/heavenofmunroe/backend/internal/service"
)

// SiteContentHandler serves the singleton page blocks and content sections.
// Reads return the raw record (or null); writes return an envelope.
type SiteContentHandler struct {
	contentService service.SiteContentService
}

// NewSiteContentHandler creates a SiteContentHandler with the given service.
func NewSiteContentHandler(contentService service.SiteContentService) *SiteContentHandler {
	return &SiteContentHandler{contentService: contentService}
}

type contentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Content any    `json:"content"`
}

// GetHeroContent handles GET /api/hero-content.
func (h *SiteContentHandler) GetHeroContent(w http.ResponseWriter, r *http.Request) {
	c, err := h.contentService.GetHeroContent(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "get_hero_content")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// UpdateHeroContent handles PUT /api/hero-content.
func (h *SiteContentHandler) UpdateHeroContent(w http.ResponseWriter, r *http.Request) {
	var in model.HeroContentInput
	if !bind(w, r, &in, "Invalid hero content") {
		return
	}
	c, err := h.contentService.UpdateHeroContent(r.Context(), &in)
	if err != nil {
		writeServiceError(w, r, err, "update_hero_content")
		return
	}
	writeJSON(w, http.StatusOK, contentResponse{Success: true, Message: "Hero content updated successfully", Content: c})
}

// GetAboutContent handles GET /api/about-content.
func (h *SiteContentHandler) GetAboutContent(w http.ResponseWriter, r *http.Request) {
	c, err := h.contentService.GetAboutContent(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "get_about_content")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// UpdateAboutContent handles PUT /api/about-content.
func (h *SiteContentHandler) UpdateAboutContent(w http.ResponseWriter, r *http.Request) {
	var in model.AboutContentInput
	if !bind(w, r, &in, "Invalid about content") {
		return
	}
	c, err := h.contentService.UpdateAboutContent(r.Context(), &in)
	if err != nil {
		writeServiceError(w, r, err, "update_about_content")
		return
	}
	writeJSON(w, http.StatusOK, contentResponse{Success: true, Message: "About content updated successfully", Content: c})
}

type contactInfoResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Info    *model.ContactInfo `json:"info"`
}

// GetContactInfo handles GET /api/contact-info.
func (h *SiteContentHandler) GetContactInfo(w http.ResponseWriter, r *http.Request) {
	c, err := h.contentService.GetContactInfo(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "get_contact_info")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// UpdateContactInfo handles PUT /api/contact-info.
func (h *SiteContentHandler) UpdateContactInfo(w http.ResponseWriter, r *http.Request) {
	var in model.ContactInfoInput
	if !bind(w, r, &in, "Invalid contact info") {
		return
	}
	c, err := h.contentService.UpdateContactInfo(r.Context(), &in)
	if err != nil {
		writeServiceError(w, r, err, "update_contact_info")
		return
	}
	writeJSON(w, http.StatusOK, contactInfoResponse{Success: true, Message: "Contact info updated successfully", Info: c})
}

// ListContentSections handles GET /api/content-sections.
func (h *SiteContentHandler) ListContentSections(w http.ResponseWriter, r *http.Request) {
	list, err := h.contentService.ListContentSections(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "list_content_sections")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// sectionKey reads and checks the {key} path value. On failure it writes a
// 400 response and returns false.
func sectionKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	key := r.PathValue("key")
	if err := validate.Var(key, "required,max=100"); err != nil {
		writeValidationError(w, "Invalid section key", map[string]string{"key": "must be 1 to 100 characters"})
		return "", false
	}
	return key, true
}

// GetContentSection handles GET /api/content-sections/{key}.
func (h *SiteContentHandler) GetContentSection(w http.ResponseWriter, r *http.Request) {
	key, ok := sectionKey(w, r)
	if !ok {
		return
	}
	s, err := h.contentService.GetContentSection(r.Context(), key)
	if err != nil {
		writeServiceError(w, r, err, "get_content_section")
		return
	}
	writeJSON(w, http.StatusOK, s)
}

type sectionResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Section *model.ContentSection `json:"section"`
}

// UpdateContentSection handles PUT /api/content-sections/{key}. The section is
// created when the key is new.
func (h *SiteContentHandler) UpdateContentSection(w http.ResponseWriter, r *http.Request) {
	key, ok := sectionKey(w, r)
	if !ok {
		return
	}
	var in model.ContentSectionInput
	if !bind(w, r, &in, "Invalid content section") {
		return
	}
	s, err := h.contentService.UpdateContentSection(r.Context(), key, &in)
	if err != nil {
		writeServiceError(w, r, err, "update_content_section")
		return
	}
	writeJSON(w, http.StatusOK, sectionResponse{Success: true, Message: "Content section saved successfully", Section: s})
}

type deleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DeleteContentSection handles DELETE /api/content-sections/{key}.
func (h *SiteContentHandler) DeleteContentSection(w http.ResponseWriter, r *http.Request) {
	key, ok := sectionKey(w, r)
	if !ok {
		return
	}
	if err := h.contentService.DeleteContentSection(r.Context(), key); err != nil {
		writeServiceError(w, r, err, "delete_content_section")
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{Success: true, Message: "Content section deleted successfully"})
}
