package repository

import (
	"context"

	"github.com/heavenofmunroe/backend/internal/database"
	"github.com/heavenofmunroe/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// queryOne runs a single-row query, mapping "no rows" to ErrNotFound and
// unique violations to ErrConflict.
func queryOne[T any](ctx context.Context, r *PgRepository, op, query string, scan func(scanner) (*T, error), args ...any) (*T, error) {
	v, err := database.Run(ctx, r.conn, op, func(ctx context.Context, pool *pgxpool.Pool) (*T, error) {
		return scan(pool.QueryRow(ctx, query, args...))
	})
	if err != nil {
		return nil, mapError(err)
	}
	return v, nil
}

func queryAll[T any](ctx context.Context, r *PgRepository, op, query string, scan func(scanner) (*T, error)) ([]*T, error) {
	return database.Run(ctx, r.conn, op, func(ctx context.Context, pool *pgxpool.Pool) ([]*T, error) {
		rows, err := pool.Query(ctx, query)
		if err != nil {
			return nil, err
		}
		return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*T, error) {
			return scan(row)
		})
	})
}

// --- boating packages ---

const packageColumns = `id, package_id, title, duration, price, original_price, description, image,
	features, is_popular, whatsapp_link, sort_order, is_active, created_at, updated_at`

func scanPackage(row scanner) (*model.BoatingPackage, error) {
	var p model.BoatingPackage
	err := row.Scan(&p.ID, &p.PackageID, &p.Title, &p.Duration, &p.Price, &p.OriginalPrice, &p.Description, &p.Image,
		&p.Features, &p.IsPopular, &p.WhatsappLink, &p.SortOrder, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	return &p, nil
}

func (r *PgRepository) ListBoatingPackages(ctx context.Context) ([]*model.BoatingPackage, error) {
	return queryAll(ctx, r, "list_boating_packages",
		`SELECT `+packageColumns+` FROM boating_packages WHERE is_active ORDER BY sort_order, created_at`, scanPackage)
}

func (r *PgRepository) GetBoatingPackage(ctx context.Context, packageID string) (*model.BoatingPackage, error) {
	return queryOne(ctx, r, "get_boating_package",
		`SELECT `+packageColumns+` FROM boating_packages WHERE package_id = $1`, scanPackage, packageID)
}

// CreateBoatingPackage returns ErrConflict when the package_id is taken, even
// by a deactivated package.
func (r *PgRepository) CreateBoatingPackage(ctx context.Context, in *model.BoatingPackageInput) (*model.BoatingPackage, error) {
	p := model.NewBoatingPackage(in)
	return queryOne(ctx, r, "create_boating_package",
		`INSERT INTO boating_packages (package_id, title, duration, price, original_price, description, image,
			features, is_popular, whatsapp_link, sort_order, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING `+packageColumns,
		scanPackage,
		p.PackageID, p.Title, p.Duration, p.Price, p.OriginalPrice, p.Description, p.Image,
		p.Features, p.IsPopular, p.WhatsappLink, p.SortOrder, p.IsActive,
	)
}

func (r *PgRepository) UpdateBoatingPackage(ctx context.Context, packageID string, patch *model.BoatingPackagePatch) (*model.BoatingPackage, error) {
	return queryOne(ctx, r, "update_boating_package",
		`UPDATE boating_packages SET
		   title = COALESCE($2::text, title),
		   duration = COALESCE($3::text, duration),
		   price = COALESCE($4::text, price),
		   original_price = COALESCE($5::text, original_price),
		   description = COALESCE($6::text, description),
		   image = COALESCE($7::text, image),
		   features = COALESCE($8::text[], features),
		   is_popular = COALESCE($9::boolean, is_popular),
		   whatsapp_link = COALESCE($10::text, whatsapp_link),
		   sort_order = COALESCE($11::integer, sort_order),
		   is_active = COALESCE($12::boolean, is_active),
		   updated_at = NOW()
		 WHERE package_id = $1
		 RETURNING `+packageColumns,
		scanPackage,
		packageID, patch.Title, patch.Duration, patch.Price, patch.OriginalPrice, patch.Description, patch.Image,
		patch.Features, patch.IsPopular, patch.WhatsappLink, patch.SortOrder, patch.IsActive,
	)
}

func (r *PgRepository) DeleteBoatingPackage(ctx context.Context, packageID string) error {
	return r.softDelete(ctx, "delete_boating_package",
		`UPDATE boating_packages SET is_active = FALSE, updated_at = NOW() WHERE package_id = $1`, packageID)
}

// --- testimonials ---

const testimonialColumns = `id, name, platform, rating, review, user_image, review_date,
	sort_order, is_active, created_at, updated_at`

func scanTestimonial(row scanner) (*model.Testimonial, error) {
	var t model.Testimonial
	err := row.Scan(&t.ID, &t.Name, &t.Platform, &t.Rating, &t.Review, &t.UserImage, &t.ReviewDate,
		&t.SortOrder, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PgRepository) ListTestimonials(ctx context.Context) ([]*model.Testimonial, error) {
	return queryAll(ctx, r, "list_testimonials",
		`SELECT `+testimonialColumns+` FROM testimonials WHERE is_active ORDER BY sort_order, created_at`, scanTestimonial)
}

func (r *PgRepository) ListAllTestimonials(ctx context.Context) ([]*model.Testimonial, error) {
	return queryAll(ctx, r, "list_all_testimonials",
		`SELECT `+testimonialColumns+` FROM testimonials ORDER BY sort_order, created_at`, scanTestimonial)
}

func (r *PgRepository) GetTestimonial(ctx context.Context, id string) (*model.Testimonial, error) {
	return queryOne(ctx, r, "get_testimonial",
		`SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, scanTestimonial, id)
}

func (r *PgRepository) CreateTestimonial(ctx context.Context, in *model.TestimonialInput) (*model.Testimonial, error) {
	t := model.NewTestimonial(in)
	return queryOne(ctx, r, "create_testimonial",
		`INSERT INTO testimonials (name, platform, rating, review, user_image, review_date, sort_order, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+testimonialColumns,
		scanTestimonial,
		t.Name, t.Platform, t.Rating, t.Review, t.UserImage, t.ReviewDate, t.SortOrder, t.IsActive,
	)
}

func (r *PgRepository) UpdateTestimonial(ctx context.Context, id string, patch *model.TestimonialPatch) (*model.Testimonial, error) {
	return queryOne(ctx, r, "update_testimonial",
		`UPDATE testimonials SET
		   name = COALESCE($2::text, name),
		   platform = COALESCE($3::text, platform),
		   rating = COALESCE($4::integer, rating),
		   review = COALESCE($5::text, review),
		   user_image = COALESCE($6::text, user_image),
		   review_date = COALESCE($7::text, review_date),
		   sort_order = COALESCE($8::integer, sort_order),
		   is_active = COALESCE($9::boolean, is_active),
		   updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+testimonialColumns,
		scanTestimonial,
		id, patch.Name, patch.Platform, patch.Rating, patch.Review, patch.UserImage, patch.ReviewDate,
		patch.SortOrder, patch.IsActive,
	)
}

func (r *PgRepository) DeleteTestimonial(ctx context.Context, id string) error {
	return r.softDelete(ctx, "delete_testimonial",
		`UPDATE testimonials SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
}

// --- gallery images ---

const galleryColumns = `id, title, description, image_url, alt_text, category, sort_order,
	is_active, created_at, updated_at`

func scanGalleryImage(row scanner) (*model.GalleryImage, error) {
	var g model.GalleryImage
	err := row.Scan(&g.ID, &g.Title, &g.Description, &g.ImageURL, &g.AltText, &g.Category, &g.SortOrder,
		&g.IsActive, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *PgRepository) ListGalleryImages(ctx context.Context) ([]*model.GalleryImage, error) {
	return queryAll(ctx, r, "list_gallery_images",
		`SELECT `+galleryColumns+` FROM gallery_images WHERE is_active ORDER BY sort_order, created_at`, scanGalleryImage)
}

func (r *PgRepository) ListAllGalleryImages(ctx context.Context) ([]*model.GalleryImage, error) {
	return queryAll(ctx, r, "list_all_gallery_images",
		`SELECT `+galleryColumns+` FROM gallery_images ORDER BY sort_order, created_at`, scanGalleryImage)
}

func (r *PgRepository) GetGalleryImage(ctx context.Context, id string) (*model.GalleryImage, error) {
	return queryOne(ctx, r, "get_gallery_image",
		`SELECT `+galleryColumns+` FROM gallery_images WHERE id = $1`, scanGalleryImage, id)
}

func (r *PgRepository) CreateGalleryImage(ctx context.Context, in *model.GalleryImageInput) (*model.GalleryImage, error) {
	g := model.NewGalleryImage(in)
	return queryOne(ctx, r, "create_gallery_image",
		`INSERT INTO gallery_images (title, description, image_url, alt_text, category, sort_order, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+galleryColumns,
		scanGalleryImage,
		g.Title, g.Description, g.ImageURL, g.AltText, g.Category, g.SortOrder, g.IsActive,
	)
}

func (r *PgRepository) UpdateGalleryImage(ctx context.Context, id string, patch *model.GalleryImagePatch) (*model.GalleryImage, error) {
	return queryOne(ctx, r, "update_gallery_image",
		`UPDATE gallery_images SET
		   title = COALESCE($2::text, title),
		   description = COALESCE($3::text, description),
		   image_url = COALESCE($4::text, image_url),
		   alt_text = COALESCE($5::text, alt_text),
		   category = COALESCE($6::text, category),
		   sort_order = COALESCE($7::integer, sort_order),
		   is_active = COALESCE($8::boolean, is_active),
		   updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+galleryColumns,
		scanGalleryImage,
		id, patch.Title, patch.Description, patch.ImageURL, patch.AltText, patch.Category,
		patch.SortOrder, patch.IsActive,
	)
}

func (r *PgRepository) DeleteGalleryImage(ctx context.Context, id string) error {
	return r.softDelete(ctx, "delete_gallery_image",
		`UPDATE gallery_images SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
}
