package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/heavenofmunroe/backend/internal/model"
	"github.com/heavenofmunroe/backend/internal/repository"
)

const validPackageBody = `{
	"packageId": "sunset-cruise",
	"title": "Sunset Cruise",
	"duration": "2 hours",
	"price": "₹1500",
	"description": "Drift through the canals at dusk.",
	"image": "/images/sunset.jpg",
	"features": ["Tea and snacks", "Local guide"],
	"whatsappLink": "https://wa.me/919633836839"
}`

func TestCreateBoatingPackage_Created(t *testing.T) {
	var got *model.BoatingPackageInput
	svc := &mockCatalogService{
		createPackageFunc: func(_ context.Context, in *model.BoatingPackageInput) (*model.BoatingPackage, error) {
			got = in
			p := model.NewBoatingPackage(in)
			p.ID = "pkg-7"
			return p, nil
		},
	}
	h := NewCatalogHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/boating-packages", strings.NewReader(validPackageBody))
	rec := httptest.NewRecorder()
	h.CreateBoatingPackage(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if got == nil || len(got.Features) != 2 {
		t.Fatalf("service received %+v", got)
	}
	var resp packageResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success || resp.Package == nil || resp.Package.PackageID != "sunset-cruise" || !resp.Package.IsActive {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestCreateBoatingPackage_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		patch func(m map[string]any)
		field string
	}{
		{"bad slug", func(m map[string]any) { m["packageId"] = "Sunset Cruise" }, "packageId"},
		{"no features", func(m map[string]any) { m["features"] = []string{} }, "features"},
		{"blank feature", func(m map[string]any) { m["features"] = []string{"ok", ""} }, "features[1]"},
		{"bad whatsapp link", func(m map[string]any) { m["whatsappLink"] = "wa.me" }, "whatsappLink"},
		{"missing title", func(m map[string]any) { delete(m, "title") }, "title"},
		{"negative sort order", func(m map[string]any) { m["sortOrder"] = -1 }, "sortOrder"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m map[string]any
			if err := json.Unmarshal([]byte(validPackageBody), &m); err != nil {
				t.Fatal(err)
			}
			tt.patch(m)
			body, _ := json.Marshal(m)

			svc := &mockCatalogService{}
			h := NewCatalogHandler(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/boating-packages", strings.NewReader(string(body)))
			rec := httptest.NewRecorder()
			h.CreateBoatingPackage(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if svc.calls != 0 {
				t.Error("expected service not to be called")
			}
			var resp errorResponse
			_ = json.NewDecoder(rec.Body).Decode(&resp)
			if resp.Message != "Invalid package data" {
				t.Errorf("unexpected message %q", resp.Message)
			}
			if resp.Errors[tt.field] == "" {
				t.Errorf("expected error for %q, got %v", tt.field, resp.Errors)
			}
		})
	}
}

func TestCreateBoatingPackage_Conflict(t *testing.T) {
	svc := &mockCatalogService{
		createPackageFunc: func(context.Context, *model.BoatingPackageInput) (*model.BoatingPackage, error) {
			return nil, fmt.Errorf("insert: %w", repository.ErrConflict)
		},
	}
	h := NewCatalogHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/boating-packages", strings.NewReader(validPackageBody))
	rec := httptest.NewRecorder()
	h.CreateBoatingPackage(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
}

func TestGetBoatingPackage_ByPackageID(t *testing.T) {
	var gotID string
	svc := &mockCatalogService{
		getPackageFunc: func(_ context.Context, packageID string) (*model.BoatingPackage, error) {
			gotID = packageID
			if packageID != "sunset-cruise" {
				return nil, repository.ErrNotFound
			}
			return &model.BoatingPackage{ID: "pkg-7", PackageID: packageID, Features: []string{}}, nil
		},
	}
	h := NewCatalogHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/boating-packages/sunset-cruise", nil)
	req.SetPathValue("id", "sunset-cruise")
	rec := httptest.NewRecorder()
	h.GetBoatingPackage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != "sunset-cruise" {
		t.Errorf("expected packageId lookup, got %q", gotID)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/boating-packages/nope", nil)
	req.SetPathValue("id", "nope")
	rec = httptest.NewRecorder()
	h.GetBoatingPackage(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestUpdateBoatingPackage_PartialPatch(t *testing.T) {
	var got *model.BoatingPackagePatch
	svc := &mockCatalogService{
		updatePackageFunc: func(_ context.Context, _ string, patch *model.BoatingPackagePatch) (*model.BoatingPackage, error) {
			got = patch
			p := &model.BoatingPackage{PackageID: "sunset-cruise", Price: "₹1500", Title: "Sunset Cruise"}
			patch.Apply(p)
			return p, nil
		},
	}
	h := NewCatalogHandler(svc)

	req := httptest.NewRequest(http.MethodPut, "/api/boating-packages/sunset-cruise", strings.NewReader(`{"price":"₹1800"}`))
	req.SetPathValue("id", "sunset-cruise")
	rec := httptest.NewRecorder()
	h.UpdateBoatingPackage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got == nil || got.Price == nil || got.Title != nil || got.Features != nil {
		t.Errorf("service received %+v", got)
	}
	var resp packageResponse
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Package == nil || resp.Package.Price != "₹1800" || resp.Package.Title != "Sunset Cruise" {
		t.Errorf("unexpected package: %+v", resp.Package)
	}
}

func TestUpdateBoatingPackage_PackageIDIsImmutable(t *testing.T) {
	svc := &mockCatalogService{}
	h := NewCatalogHandler(svc)

	req := httptest.NewRequest(http.MethodPut, "/api/boating-packages/sunset-cruise", strings.NewReader(`{"packageId":"other"}`))
	req.SetPathValue("id", "sunset-cruise")
	rec := httptest.NewRecorder()
	h.UpdateBoatingPackage(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown packageId field, got %d", rec.Code)
	}
	if svc.calls != 0 {
		t.Error("expected service not to be called")
	}
}

func TestDeleteBoatingPackage(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"deleted", nil, http.StatusOK},
		{"missing", repository.ErrNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockCatalogService{
				deletePackageFunc: func(context.Context, string) error { return tt.err },
			}
			h := NewCatalogHandler(svc)

			req := httptest.NewRequest(http.MethodDelete, "/api/boating-packages/sunset-cruise", nil)
			req.SetPathValue("id", "sunset-cruise")
			rec := httptest.NewRecorder()
			h.DeleteBoatingPackage(rec, req)

			if rec.Code != tt.status {
				t.Errorf("expected %d, got %d", tt.status, rec.Code)
			}
		})
	}
}

func TestCreateTestimonial(t *testing.T) {
	t.Run("rating defaults to five", func(t *testing.T) {
		h := NewCatalogHandler(&mockCatalogService{})

		body := `{"name":"Maya","platform":"Google","review":"Lovely morning on the canals.","reviewDate":"2 weeks ago"}`
		req := httptest.NewRequest(http.MethodPost, "/api/testimonials", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.CreateTestimonial(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		var resp testimonialResponse
		_ = json.NewDecoder(rec.Body).Decode(&resp)
		if resp.Testimonial == nil || resp.Testimonial.Rating != 5 {
			t.Errorf("unexpected testimonial: %+v", resp.Testimonial)
		}
	})

	t.Run("rating out of range", func(t *testing.T) {
		svc := &mockCatalogService{}
		h := NewCatalogHandler(svc)

		body := `{"name":"Maya","platform":"Google","rating":6,"review":"x","reviewDate":"today"}`
		req := httptest.NewRequest(http.MethodPost, "/api/testimonials", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.CreateTestimonial(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"rating":"must be at most 5"`) {
			t.Errorf("unexpected body %s", rec.Body.String())
		}
		if svc.calls != 0 {
			t.Error("expected service not to be called")
		}
	})
}

func TestUpdateTestimonial_NotFound(t *testing.T) {
	svc := &mockCatalogService{
		updateTestimonialFunc: func(context.Context, string, *model.TestimonialPatch) (*model.Testimonial, error) {
			return nil, repository.ErrNotFound
		},
	}
	h := NewCatalogHandler(svc)

	req := httptest.NewRequest(http.MethodPut, "/api/testimonials/missing", strings.NewReader(`{"rating":4}`))
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	h.UpdateTestimonial(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestGalleryImages(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		h := NewCatalogHandler(&mockCatalogService{})

		body := `{"title":"Kingfisher","imageUrl":"/images/kingfisher.jpg","altText":"A kingfisher on a branch"}`
		req := httptest.NewRequest(http.MethodPost, "/api/gallery-images", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.CreateGalleryImage(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		var resp imageResponse
		_ = json.NewDecoder(rec.Body).Decode(&resp)
		if resp.Image == nil || resp.Image.ID != "img-1" || resp.Image.Category != nil {
			t.Errorf("unexpected image: %+v", resp.Image)
		}
	})

	t.Run("missing alt text", func(t *testing.T) {
		svc := &mockCatalogService{}
		h := NewCatalogHandler(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/gallery-images", strings.NewReader(`{"title":"Kingfisher","imageUrl":"/k.jpg"}`))
		rec := httptest.NewRecorder()
		h.CreateGalleryImage(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"altText":"is required"`) {
			t.Errorf("unexpected body %s", rec.Body.String())
		}
	})

	t.Run("list empty", func(t *testing.T) {
		h := NewCatalogHandler(&mockCatalogService{})

		req := httptest.NewRequest(http.MethodGet, "/api/gallery-images", nil)
		rec := httptest.NewRecorder()
		h.ListGalleryImages(rec, req)

		if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
			t.Errorf("expected [], got %s", got)
		}
	})

	t.Run("delete storage down", func(t *testing.T) {
		svc := &mockCatalogService{
			deleteImageFunc: func(context.Context, string) error { return repository.ErrStorageUnavailable },
		}
		h := NewCatalogHandler(svc)

		req := httptest.NewRequest(http.MethodDelete, "/api/gallery-images/img-1", nil)
		req.SetPathValue("id", "img-1")
		rec := httptest.NewRecorder()
		h.DeleteGalleryImage(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", rec.Code)
		}
	})
}
