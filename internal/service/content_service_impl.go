package service

import (
	"context"
	"log/slog"

	"github.com/heavenofmunroe/backend/internal/model"
	"github.com/heavenofmunroe/backend/internal/repository"
	"github.com/heavenofmunroe/backend/pkg/auth"
)

// changedBy names how the caller of an admin change was authorised, for the
// audit log. Seeding and other in-process callers log as "system".
func changedBy(ctx context.Context) string {
	if src, ok := auth.AdminFromContext(ctx); ok {
		return string(src)
	}
	return "system"
}

type siteContentServiceImpl struct {
	repo repository.SiteContentRepository
}

// NewSiteContentService creates a SiteContentService backed by repo.
func NewSiteContentService(repo repository.SiteContentRepository) SiteContentService {
	return &siteContentServiceImpl{repo: repo}
}

func (s *siteContentServiceImpl) GetHeroContent(ctx context.Context) (*model.HeroContent, error) {
	return s.repo.GetHeroContent(ctx)
}

func (s *siteContentServiceImpl) UpdateHeroContent(ctx context.Context, in *model.HeroContentInput) (*model.HeroContent, error) {
	c, err := s.repo.UpdateHeroContent(ctx, in)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "content updated", "kind", "hero", "id", c.ID, "by", changedBy(ctx))
	return c, nil
}

func (s *siteContentServiceImpl) GetAboutContent(ctx context.Context) (*model.AboutContent, error) {
	return s.repo.GetAboutContent(ctx)
}

func (s *siteContentServiceImpl) UpdateAboutContent(ctx context.Context, in *model.AboutContentInput) (*model.AboutContent, error) {
	c, err := s.repo.UpdateAboutContent(ctx, in)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "content updated", "kind", "about", "id", c.ID, "by", changedBy(ctx))
	return c, nil
}

func (s *siteContentServiceImpl) GetContactInfo(ctx context.Context) (*model.ContactInfo, error) {
	return s.repo.GetContactInfo(ctx)
}

func (s *siteContentServiceImpl) UpdateContactInfo(ctx context.Context, in *model.ContactInfoInput) (*model.ContactInfo, error) {
	c, err := s.repo.UpdateContactInfo(ctx, in)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "content updated", "kind", "contact_info", "id", c.ID, "by", changedBy(ctx))
	return c, nil
}

func (s *siteContentServiceImpl) ListContentSections(ctx context.Context) ([]*model.ContentSection, error) {
	list, err := s.repo.ListContentSections(ctx)
	return nonNil(list), err
}

func (s *siteContentServiceImpl) GetContentSection(ctx context.Context, key string) (*model.ContentSection, error) {
	return s.repo.GetContentSection(ctx, key)
}

func (s *siteContentServiceImpl) UpdateContentSection(ctx context.Context, key string, in *model.ContentSectionInput) (*model.ContentSection, error) {
	sec, err := s.repo.UpdateContentSection(ctx, key, in)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "content updated", "kind", "section", "key", key, "id", sec.ID, "by", changedBy(ctx))
	return sec, nil
}

func (s *siteContentServiceImpl) DeleteContentSection(ctx context.Context, key string) error {
	if err := s.repo.DeleteContentSection(ctx, key); err != nil {
		return err
	}
	slog.InfoContext(ctx, "content deactivated", "kind", "section", "key", key, "by", changedBy(ctx))
	return nil
}

type catalogServiceImpl struct {
	repo repository.CatalogRepository
}

// NewCatalogService creates a CatalogService backed by repo.
func NewCatalogService(repo repository.CatalogRepository) CatalogService {
	return &catalogServiceImpl{repo: repo}
}

func (s *catalogServiceImpl) ListBoatingPackages(ctx context.Context) ([]*model.BoatingPackage, error) {
	list, err := s.repo.ListBoatingPackages(ctx)
	return nonNil(list), err
}

func (s *catalogServiceImpl) GetBoatingPackage(ctx context.Context, packageID string) (*model.BoatingPackage, error) {
	return s.repo.GetBoatingPackage(ctx, packageID)
}

func (s *catalogServiceImpl) CreateBoatingPackage(ctx context.Context, in *model.BoatingPackageInput) (*model.BoatingPackage, error) {
	p, err := s.repo.CreateBoatingPackage(ctx, in)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "content created", "kind", "boating_package", "package_id", p.PackageID, "id", p.ID, "by", changedBy(ctx))
	return p, nil
}

func (s *catalogServiceImpl) UpdateBoatingPackage(ctx context.Context, packageID string, patch *model.BoatingPackagePatch) (*model.BoatingPackage, error) {
	p, err := s.repo.UpdateBoatingPackage(ctx, packageID, patch)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "content updated", "kind", "boating_package", "package_id", packageID, "by", changedBy(ctx))
	return p, nil
}

func (s *catalogServiceImpl) DeleteBoatingPackage(ctx context.Context, packageID string) error {
	if err := s.repo.DeleteBoatingPackage(ctx, packageID); err != nil {
		return err
	}
	slog.InfoContext(ctx, "content deactivated", "kind", "boating_package", "package_id", packageID, "by", changedBy(ctx))
	return nil
}

func (s *catalogServiceImpl) ListTestimonials(ctx context.Context) ([]*model.Testimonial, error) {
	list, err := s.repo.ListTestimonials(ctx)
	return nonNil(list), err
}

func (s *catalogServiceImpl) GetTestimonial(ctx context.Context, id string) (*model.Testimonial, error) {
	return s.repo.GetTestimonial(ctx, id)
}

func (s *catalogServiceImpl) CreateTestimonial(ctx context.Context, in *model.TestimonialInput) (*model.Testimonial, error) {
	t, err := s.repo.CreateTestimonial(ctx, in)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "content created", "kind", "testimonial", "id", t.ID, "by", changedBy(ctx))
	return t, nil
}

func (s *catalogServiceImpl) UpdateTestimonial(ctx context.Context, id string, patch *model.TestimonialPatch) (*model.Testimonial, error) {
	t, err := s.repo.UpdateTestimonial(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "content updated", "kind", "testimonial", "id", id, "by", changedBy(ctx))
	return t, nil
}

func (s *catalogServiceImpl) DeleteTestimonial(ctx context.Context, id string) error {
	if err := s.repo.DeleteTestimonial(ctx, id); err != nil {
		return err
	}
	slog.InfoContext(ctx, "content deactivated", "kind", "testimonial", "id", id, "by", changedBy(ctx))
	return nil
}

func (s *catalogServiceImpl) ListGalleryImages(ctx context.Context) ([]*model.GalleryImage, error) {
	list, err := s.repo.ListGalleryImages(ctx)
	return nonNil(list), err
}

func (s *catalogServiceImpl) GetGalleryImage(ctx context.Context, id string) (*model.GalleryImage, error) {
	return s.repo.GetGalleryImage(ctx, id)
}

func (s *catalogServiceImpl) CreateGalleryImage(ctx context.Context, in *model.GalleryImageInput) (*model.GalleryImage, error) {
	g, err := s.repo.CreateGalleryImage(ctx, in)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "content created", "kind", "gallery_image", "id", g.ID, "by", changedBy(ctx))
	return g, nil
}

func (s *catalogServiceImpl) UpdateGalleryImage(ctx context.Context, id string, patch *model.GalleryImagePatch) (*model.GalleryImage, error) {
	g, err := s.repo.UpdateGalleryImage(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "content updated", "kind", "gallery_image", "id", id, "by", changedBy(ctx))
	return g, nil
}

func (s *catalogServiceImpl) DeleteGalleryImage(ctx context.Context, id string) error {
	if err := s.repo.DeleteGalleryImage(ctx, id); err != nil {
		return err
	}
	slog.InfoContext(ctx, "content deactivated", "kind", "gallery_image", "id", id, "by", changedBy(ctx))
	return nil
}
