package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/heavenofmunroe/backend/internal/model"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }

// runContractSuite checks the behaviour both Repository implementations must
// share. newRepo must return an empty store.
func runContractSuite(t *testing.T, newRepo func(t *testing.T) Repository) {
	t.Run("BookingInquiriesNewestFirst", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		var ids []string
		for _, name := range []string{"A", "B", "C"} {
			b, err := repo.CreateBookingInquiry(ctx, &model.BookingInquiryInput{
				FullName: name, Email: "guest@example.com", Phone: "+91 90000 00000", NumberOfGuests: 2,
			})
			if err != nil {
				t.Fatalf("CreateBookingInquiry failed: %v", err)
			}
			if b.ID == "" {
				t.Fatal("expected ID to be set")
			}
			if b.CreatedAt.IsZero() {
				t.Error("expected CreatedAt to be set")
			}
			if b.Experiences == nil || len(b.Experiences) != 0 {
				t.Errorf("expected empty experiences, got %#v", b.Experiences)
			}
			ids = append(ids, b.ID)
		}

		list, err := repo.ListBookingInquiries(ctx)
		if err != nil {
			t.Fatalf("ListBookingInquiries failed: %v", err)
		}
		if len(list) != 3 {
			t.Fatalf("expected 3 inquiries, got %d", len(list))
		}
		for i, want := range []string{"C", "B", "A"} {
			if list[i].FullName != want {
				t.Errorf("position %d: expected %s, got %s", i, want, list[i].FullName)
			}
		}
		if list[0].ID != ids[2] {
			t.Errorf("expected newest id %s, got %s", ids[2], list[0].ID)
		}
	})

	t.Run("BookingInquiryKeepsExperiences", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		b, err := repo.CreateBookingInquiry(ctx, &model.BookingInquiryInput{
			FullName: "Asha", Email: "a@x.io", Phone: "123", NumberOfGuests: 4,
			CheckInDate: "2025-01-10", Experiences: []string{"canoe", "village walk"},
		})
		if err != nil {
			t.Fatalf("CreateBookingInquiry failed: %v", err)
		}
		if len(b.Experiences) != 2 || b.Experiences[1] != "village walk" {
			t.Errorf("unexpected experiences %v", b.Experiences)
		}
		if b.CheckInDate != "2025-01-10" || b.CheckOutDate != "" || b.SpecialRequests != "" {
			t.Errorf("unexpected optional fields %+v", b)
		}
	})

	t.Run("ContactMessagesNewestFirst", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		for _, msg := range []string{"first", "second"} {
			if _, err := repo.CreateContactMessage(ctx, &model.ContactMessageInput{
				Name: "Ravi", Email: "ravi@example.com", Message: msg,
			}); err != nil {
				t.Fatalf("CreateContactMessage failed: %v", err)
			}
		}
		list, err := repo.ListContactMessages(ctx)
		if err != nil {
			t.Fatalf("ListContactMessages failed: %v", err)
		}
		if len(list) != 2 || list[0].Message != "second" || list[1].Message != "first" {
			t.Errorf("unexpected order: %+v", list)
		}
	})

	t.Run("HeroContentSingleton", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		got, err := repo.GetHeroContent(ctx)
		if err != nil {
			t.Fatalf("GetHeroContent failed: %v", err)
		}
		if got != nil {
			t.Fatalf("expected no hero content, got %+v", got)
		}

		first, err := repo.UpdateHeroContent(ctx, &model.HeroContentInput{Title: strPtr("Welcome")})
		if err != nil {
			t.Fatalf("UpdateHeroContent failed: %v", err)
		}
		def := model.DefaultHeroContent()
		if first.Title != "Welcome" || first.Subtitle != def.Subtitle || !first.IsActive {
			t.Errorf("expected title merged over defaults, got %+v", first)
		}

		second, err := repo.UpdateHeroContent(ctx, &model.HeroContentInput{Subtitle: strPtr("Stay and sail")})
		if err != nil {
			t.Fatalf("UpdateHeroContent failed: %v", err)
		}
		if second.ID != first.ID {
			t.Errorf("expected the same row, got ids %s and %s", first.ID, second.ID)
		}
		if second.Title != "Welcome" || second.Subtitle != "Stay and sail" {
			t.Errorf("expected earlier title kept, got %+v", second)
		}

		got, err = repo.GetHeroContent(ctx)
		if err != nil || got == nil {
			t.Fatalf("GetHeroContent: %v, %v", got, err)
		}
		if got.ID != first.ID || got.Subtitle != "Stay and sail" {
			t.Errorf("unexpected hero %+v", got)
		}

		if _, err := repo.UpdateHeroContent(ctx, &model.HeroContentInput{IsActive: boolPtr(false)}); err != nil {
			t.Fatalf("deactivate failed: %v", err)
		}
		got, err = repo.GetHeroContent(ctx)
		if err != nil {
			t.Fatalf("GetHeroContent failed: %v", err)
		}
		if got != nil {
			t.Errorf("expected inactive hero to be hidden, got %+v", got)
		}

		reset, err := repo.UpdateHeroContent(ctx, &model.HeroContentInput{Description: strPtr("Back again")})
		if err != nil {
			t.Fatalf("UpdateHeroContent failed: %v", err)
		}
		if reset.Title != def.Title || reset.Description != "Back again" || !reset.IsActive {
			t.Errorf("expected a fresh record over defaults, got %+v", reset)
		}
	})

	t.Run("AboutContentOptionalFields", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		a, err := repo.UpdateAboutContent(ctx, &model.AboutContentInput{HostName: strPtr("Evan")})
		if err != nil {
			t.Fatalf("UpdateAboutContent failed: %v", err)
		}
		if a.ExpandedText1 != nil || a.ExpandedText2 != nil {
			t.Errorf("expected nil expanded texts, got %v %v", a.ExpandedText1, a.ExpandedText2)
		}
		if a.Languages != model.DefaultAboutContent().Languages {
			t.Errorf("expected default languages, got %q", a.Languages)
		}

		a, err = repo.UpdateAboutContent(ctx, &model.AboutContentInput{ExpandedText1: strPtr("More about Evan")})
		if err != nil {
			t.Fatalf("UpdateAboutContent failed: %v", err)
		}
		if a.ExpandedText1 == nil || *a.ExpandedText1 != "More about Evan" {
			t.Errorf("expected expanded text set, got %v", a.ExpandedText1)
		}

		got, err := repo.GetAboutContent(ctx)
		if err != nil || got == nil {
			t.Fatalf("GetAboutContent: %v, %v", got, err)
		}
		if got.HostName != "Evan" || got.ExpandedText1 == nil {
			t.Errorf("unexpected about %+v", got)
		}
	})

	t.Run("ContactInfoSingleton", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		c, err := repo.UpdateContactInfo(ctx, &model.ContactInfoInput{
			Phone: strPtr("+91 11111 11111"), Instagram: strPtr("https://instagram.com/munroe"),
		})
		if err != nil {
			t.Fatalf("UpdateContactInfo failed: %v", err)
		}
		def := model.DefaultContactInfo()
		if c.Phone != "+91 11111 11111" || c.Email != def.Email || c.Facebook != nil {
			t.Errorf("unexpected contact info %+v", c)
		}
		if c.Instagram == nil || *c.Instagram != "https://instagram.com/munroe" {
			t.Errorf("expected instagram set, got %v", c.Instagram)
		}

		got, err := repo.GetContactInfo(ctx)
		if err != nil || got == nil {
			t.Fatalf("GetContactInfo: %v, %v", got, err)
		}
		if got.ID != c.ID {
			t.Errorf("expected id %s, got %s", c.ID, got.ID)
		}
	})

	t.Run("ContentSectionsKeyedUpsert", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		missing, err := repo.GetContentSection(ctx, "story")
		if err != nil || missing != nil {
			t.Fatalf("expected no section, got %v, %v", missing, err)
		}

		s, err := repo.UpdateContentSection(ctx, "story", &model.ContentSectionInput{
			Title: strPtr("Our story"), Content: "v1",
		})
		if err != nil {
			t.Fatalf("UpdateContentSection failed: %v", err)
		}
		if s.SectionKey != "story" || !s.IsActive {
			t.Errorf("unexpected section %+v", s)
		}

		s2, err := repo.UpdateContentSection(ctx, "story", &model.ContentSectionInput{Content: "v2"})
		if err != nil {
			t.Fatalf("UpdateContentSection failed: %v", err)
		}
		if s2.ID != s.ID {
			t.Errorf("expected id preserved, got %s and %s", s.ID, s2.ID)
		}
		if s2.Content != "v2" || s2.Title == nil || *s2.Title != "Our story" {
			t.Errorf("expected content replaced and title kept, got %+v", s2)
		}

		if _, err := repo.UpdateContentSection(ctx, "amenities", &model.ContentSectionInput{Content: "wifi"}); err != nil {
			t.Fatalf("UpdateContentSection failed: %v", err)
		}
		list, err := repo.ListContentSections(ctx)
		if err != nil {
			t.Fatalf("ListContentSections failed: %v", err)
		}
		if len(list) != 2 || list[0].SectionKey != "amenities" || list[1].SectionKey != "story" {
			t.Errorf("expected sections ordered by key, got %+v", list)
		}

		if err := repo.DeleteContentSection(ctx, "story"); err != nil {
			t.Fatalf("DeleteContentSection failed: %v", err)
		}
		list, _ = repo.ListContentSections(ctx)
		if len(list) != 1 {
			t.Errorf("expected deleted section hidden, got %d", len(list))
		}
		got, err := repo.GetContentSection(ctx, "story")
		if err != nil || got == nil || got.IsActive {
			t.Errorf("expected inactive section still addressable, got %+v, %v", got, err)
		}

		if err := repo.DeleteContentSection(ctx, "nope"); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("BoatingPackagesLifecycle", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		newInput := func(id string, order int) *model.BoatingPackageInput {
			return &model.BoatingPackageInput{
				PackageID: id, Title: "Package " + id, Duration: "2 hours", Price: "₹1500",
				Description: "Canal cruise", Image: "/images/" + id + ".jpg",
				Features: []string{"Guide", "Tea"}, WhatsappLink: "https://wa.me/919633836839",
				SortOrder: intPtr(order),
			}
		}

		created, err := repo.CreateBoatingPackage(ctx, newInput("sunset", 2))
		if err != nil {
			t.Fatalf("CreateBoatingPackage failed: %v", err)
		}
		if !created.IsActive || created.IsPopular || created.OriginalPrice != nil {
			t.Errorf("unexpected defaults %+v", created)
		}
		if _, err := repo.CreateBoatingPackage(ctx, newInput("sunrise", 1)); err != nil {
			t.Fatalf("CreateBoatingPackage failed: %v", err)
		}
		if _, err := repo.CreateBoatingPackage(ctx, newInput("sunset", 3)); !errors.Is(err, ErrConflict) {
			t.Errorf("expected ErrConflict for duplicate packageId, got %v", err)
		}

		list, err := repo.ListBoatingPackages(ctx)
		if err != nil {
			t.Fatalf("ListBoatingPackages failed: %v", err)
		}
		if len(list) != 2 || list[0].PackageID != "sunrise" || list[1].PackageID != "sunset" {
			t.Errorf("expected packages ordered by sortOrder, got %+v", list)
		}

		updated, err := repo.UpdateBoatingPackage(ctx, "sunset", &model.BoatingPackagePatch{
			Price: strPtr("₹1200"), OriginalPrice: strPtr("₹1500"), IsPopular: boolPtr(true),
		})
		if err != nil {
			t.Fatalf("UpdateBoatingPackage failed: %v", err)
		}
		if updated.ID != created.ID || updated.Price != "₹1200" || !updated.IsPopular {
			t.Errorf("unexpected update result %+v", updated)
		}
		if updated.Title != created.Title || len(updated.Features) != 2 {
			t.Errorf("expected unspecified fields kept, got %+v", updated)
		}
		if updated.OriginalPrice == nil || *updated.OriginalPrice != "₹1500" {
			t.Errorf("expected original price set, got %v", updated.OriginalPrice)
		}

		if _, err := repo.UpdateBoatingPackage(ctx, "missing", &model.BoatingPackagePatch{}); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}

		if err := repo.DeleteBoatingPackage(ctx, "sunset"); err != nil {
			t.Fatalf("DeleteBoatingPackage failed: %v", err)
		}
		list, _ = repo.ListBoatingPackages(ctx)
		if len(list) != 1 || list[0].PackageID != "sunrise" {
			t.Errorf("expected deleted package hidden, got %+v", list)
		}
		got, err := repo.GetBoatingPackage(ctx, "sunset")
		if err != nil {
			t.Fatalf("GetBoatingPackage failed: %v", err)
		}
		if got.IsActive || got.Price != "₹1200" {
			t.Errorf("expected inactive package with data kept, got %+v", got)
		}
		if err := repo.DeleteBoatingPackage(ctx, "sunset"); err != nil {
			t.Errorf("expected repeated delete to succeed, got %v", err)
		}
		if err := repo.DeleteBoatingPackage(ctx, "missing"); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if _, err := repo.GetBoatingPackage(ctx, "missing"); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("StoredSingletonsSeesInactiveRows", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		got, err := repo.StoredSingletons(ctx)
		if err != nil {
			t.Fatalf("StoredSingletons failed: %v", err)
		}
		if got != (StoredSingletons{}) {
			t.Errorf("expected nothing stored, got %+v", got)
		}

		if _, err := repo.UpdateHeroContent(ctx, &model.HeroContentInput{IsActive: boolPtr(false)}); err != nil {
			t.Fatalf("UpdateHeroContent failed: %v", err)
		}
		if _, err := repo.UpdateContactInfo(ctx, &model.ContactInfoInput{}); err != nil {
			t.Fatalf("UpdateContactInfo failed: %v", err)
		}
		if hero, _ := repo.GetHeroContent(ctx); hero != nil {
			t.Fatalf("expected inactive hero hidden, got %+v", hero)
		}

		got, err = repo.StoredSingletons(ctx)
		if err != nil {
			t.Fatalf("StoredSingletons failed: %v", err)
		}
		want := StoredSingletons{Hero: true, ContactInfo: true}
		if got != want {
			t.Errorf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("TestimonialsLifecycle", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		tm, err := repo.CreateTestimonial(ctx, &model.TestimonialInput{
			Name: "Priya", Platform: "Google", Review: "Wonderful", ReviewDate: "2 weeks ago",
		})
		if err != nil {
			t.Fatalf("CreateTestimonial failed: %v", err)
		}
		if tm.Rating != 5 || !tm.IsActive || tm.SortOrder != 0 {
			t.Errorf("unexpected defaults %+v", tm)
		}

		tm2, err := repo.UpdateTestimonial(ctx, tm.ID, &model.TestimonialPatch{Rating: intPtr(4)})
		if err != nil {
			t.Fatalf("UpdateTestimonial failed: %v", err)
		}
		if tm2.Rating != 4 || tm2.Review != "Wonderful" {
			t.Errorf("unexpected update %+v", tm2)
		}

		if err := repo.DeleteTestimonial(ctx, tm.ID); err != nil {
			t.Fatalf("DeleteTestimonial failed: %v", err)
		}
		list, err := repo.ListTestimonials(ctx)
		if err != nil {
			t.Fatalf("ListTestimonials failed: %v", err)
		}
		if len(list) != 0 {
			t.Errorf("expected no active testimonials, got %d", len(list))
		}
		got, err := repo.GetTestimonial(ctx, tm.ID)
		if err != nil || got.IsActive {
			t.Errorf("expected inactive testimonial, got %+v, %v", got, err)
		}
		all, err := repo.ListAllTestimonials(ctx)
		if err != nil {
			t.Fatalf("ListAllTestimonials failed: %v", err)
		}
		if len(all) != 1 || all[0].ID != tm.ID || all[0].IsActive {
			t.Errorf("expected the soft-deleted testimonial in the full list, got %+v", all)
		}
		if _, err := repo.UpdateTestimonial(ctx, "missing", &model.TestimonialPatch{}); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if err := repo.DeleteTestimonial(ctx, "missing"); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("GalleryImagesLifecycle", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		second, err := repo.CreateGalleryImage(ctx, &model.GalleryImageInput{
			Title: "Canal", ImageURL: "/images/canal.jpg", AltText: "Canal", SortOrder: intPtr(5),
		})
		if err != nil {
			t.Fatalf("CreateGalleryImage failed: %v", err)
		}
		first, err := repo.CreateGalleryImage(ctx, &model.GalleryImageInput{
			Title: "Sunset", ImageURL: "/images/sunset.jpg", AltText: "Sunset", Category: strPtr("nature"),
			SortOrder: intPtr(1),
		})
		if err != nil {
			t.Fatalf("CreateGalleryImage failed: %v", err)
		}

		list, err := repo.ListGalleryImages(ctx)
		if err != nil {
			t.Fatalf("ListGalleryImages failed: %v", err)
		}
		if len(list) != 2 || list[0].ID != first.ID || list[1].ID != second.ID {
			t.Errorf("expected images ordered by sortOrder, got %+v", list)
		}
		if list[0].Category == nil || *list[0].Category != "nature" {
			t.Errorf("expected category kept, got %v", list[0].Category)
		}

		upd, err := repo.UpdateGalleryImage(ctx, second.ID, &model.GalleryImagePatch{IsActive: boolPtr(false)})
		if err != nil {
			t.Fatalf("UpdateGalleryImage failed: %v", err)
		}
		if upd.IsActive {
			t.Error("expected image deactivated")
		}
		list, _ = repo.ListGalleryImages(ctx)
		if len(list) != 1 {
			t.Errorf("expected 1 active image, got %d", len(list))
		}
		all, err := repo.ListAllGalleryImages(ctx)
		if err != nil {
			t.Fatalf("ListAllGalleryImages failed: %v", err)
		}
		if len(all) != 2 || all[0].ID != first.ID || all[1].ID != second.ID || all[1].IsActive {
			t.Errorf("expected both images ordered by sortOrder, got %+v", all)
		}
		if _, err := repo.GetGalleryImage(ctx, "missing"); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if err := repo.DeleteGalleryImage(ctx, first.ID); err != nil {
			t.Fatalf("DeleteGalleryImage failed: %v", err)
		}
	})

	t.Run("ReturnedRecordsAreCopies", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		p, err := repo.CreateBoatingPackage(ctx, &model.BoatingPackageInput{
			PackageID: "copy", Title: "Copy", Duration: "1h", Price: "₹1", Description: "d", Image: "i",
			Features: []string{"one"}, WhatsappLink: "https://wa.me/1",
		})
		if err != nil {
			t.Fatalf("CreateBoatingPackage failed: %v", err)
		}
		p.Features[0] = "mutated"
		p.Title = "mutated"

		got, err := repo.GetBoatingPackage(ctx, "copy")
		if err != nil {
			t.Fatalf("GetBoatingPackage failed: %v", err)
		}
		if got.Features[0] != "one" || got.Title != "Copy" {
			t.Errorf("expected store unaffected by caller mutation, got %+v", got)
		}
	})
}
