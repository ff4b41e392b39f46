// Package seed loads the default Heaven of Munroe site content into a
// repository. Running it again only fills in what is missing, so records
// edited, deactivated or deleted by an admin are left alone.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heavenofmunroe/backend/internal/repository"
)

// Result counts what a Run wrote and what it found already present.
type Result struct {
	Created int
	Skipped int
}

func (r *Result) add(created bool) {
	if created {
		r.Created++
	} else {
		r.Skipped++
	}
}

// Run seeds hero, about and contact blocks, content sections, boating
// packages, testimonials and gallery images.
func Run(ctx context.Context, repo repository.Repository) (Result, error) {
	var res Result
	steps := []struct {
		name string
		fn   func(context.Context, repository.Repository, *Result) error
	}{
		{"hero content", seedHero},
		{"about content", seedAbout},
		{"contact info", seedContactInfo},
		{"content sections", seedSections},
		{"boating packages", seedPackages},
		{"testimonials", seedTestimonials},
		{"gallery images", seedGallery},
	}
	for _, step := range steps {
		before := res
		if err := step.fn(ctx, repo, &res); err != nil {
			return res, fmt.Errorf("seed %s: %w", step.name, err)
		}
		slog.InfoContext(ctx, "seeded",
			"step", step.name,
			"created", res.Created-before.Created,
			"skipped", res.Skipped-before.Skipped,
		)
	}
	return res, nil
}

// Singletons are skipped when any row exists. An admin may have deactivated
// one, and writing the defaults would bring it back.
func seedHero(ctx context.Context, repo repository.Repository, res *Result) error {
	stored, err := repo.StoredSingletons(ctx)
	if err != nil {
		return err
	}
	if !stored.Hero {
		in := hero
		if _, err := repo.UpdateHeroContent(ctx, &in); err != nil {
			return err
		}
	}
	res.add(!stored.Hero)
	return nil
}

func seedAbout(ctx context.Context, repo repository.Repository, res *Result) error {
	stored, err := repo.StoredSingletons(ctx)
	if err != nil {
		return err
	}
	if !stored.About {
		in := about
		if _, err := repo.UpdateAboutContent(ctx, &in); err != nil {
			return err
		}
	}
	res.add(!stored.About)
	return nil
}

func seedContactInfo(ctx context.Context, repo repository.Repository, res *Result) error {
	stored, err := repo.StoredSingletons(ctx)
	if err != nil {
		return err
	}
	if !stored.ContactInfo {
		in := contactInfo
		if _, err := repo.UpdateContactInfo(ctx, &in); err != nil {
			return err
		}
	}
	res.add(!stored.ContactInfo)
	return nil
}

func seedSections(ctx context.Context, repo repository.Repository, res *Result) error {
	for _, s := range sections {
		existing, err := repo.GetContentSection(ctx, s.key)
		if err != nil {
			return err
		}
		if existing == nil {
			in := s.input
			if _, err := repo.UpdateContentSection(ctx, s.key, &in); err != nil {
				return err
			}
		}
		res.add(existing == nil)
	}
	return nil
}

func seedPackages(ctx context.Context, repo repository.Repository, res *Result) error {
	for _, p := range packages {
		in := p
		_, err := repo.CreateBoatingPackage(ctx, &in)
		switch {
		case errors.Is(err, repository.ErrConflict):
			res.add(false)
		case err != nil:
			return fmt.Errorf("%s: %w", p.PackageID, err)
		default:
			res.add(true)
		}
	}
	return nil
}

// Testimonials have no natural key; name and platform identify a seeded one.
// Soft-deleted rows count as present.
func seedTestimonials(ctx context.Context, repo repository.Repository, res *Result) error {
	existing, err := repo.ListAllTestimonials(ctx)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, t := range existing {
		seen[t.Name+"\x00"+t.Platform] = true
	}
	for _, t := range testimonials {
		if seen[t.Name+"\x00"+t.Platform] {
			res.add(false)
			continue
		}
		in := t
		if _, err := repo.CreateTestimonial(ctx, &in); err != nil {
			return err
		}
		res.add(true)
	}
	return nil
}

func seedGallery(ctx context.Context, repo repository.Repository, res *Result) error {
	existing, err := repo.ListAllGalleryImages(ctx)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, g := range existing {
		seen[g.ImageURL] = true
	}
	for _, g := range galleryImages {
		if seen[g.ImageURL] {
			res.add(false)
			continue
		}
		in := g
		if _, err := repo.CreateGalleryImage(ctx, &in); err != nil {
			return err
		}
		res.add(true)
	}
	return nil
}
