package repository

import (
	"context"
	"errors"

	"github.com/heavenofmunroe/backend/internal/database"
	"github.com/heavenofmunroe/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// getOptional runs a single-row query and treats "no rows" as an absent record.
func getOptional[T any](ctx context.Context, r *PgRepository, op, query string, scan func(scanner) (*T, error), args ...any) (*T, error) {
	return database.Run(ctx, r.conn, op, func(ctx context.Context, pool *pgxpool.Pool) (*T, error) {
		v, err := scan(pool.QueryRow(ctx, query, args...))
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return v, err
	})
}

func (r *PgRepository) StoredSingletons(ctx context.Context) (StoredSingletons, error) {
	return database.Run(ctx, r.conn, "stored_singletons", func(ctx context.Context, pool *pgxpool.Pool) (StoredSingletons, error) {
		var s StoredSingletons
		err := pool.QueryRow(ctx, `SELECT
			EXISTS (SELECT 1 FROM hero_content),
			EXISTS (SELECT 1 FROM about_content),
			EXISTS (SELECT 1 FROM contact_info)`).Scan(&s.Hero, &s.About, &s.ContactInfo)
		return s, err
	})
}

// --- hero ---

const heroColumns = `id, title, subtitle, description, background_image, primary_button_text,
	secondary_button_text, scroll_hint_text, is_active, updated_at`

var heroUpsert = singletonUpsertSQL("hero_content", []column{
	{"title", "text"},
	{"subtitle", "text"},
	{"description", "text"},
	{"background_image", "text"},
	{"primary_button_text", "text"},
	{"secondary_button_text", "text"},
	{"scroll_hint_text", "text"},
	{"is_active", "boolean"},
}, heroColumns)

func scanHero(row scanner) (*model.HeroContent, error) {
	var c model.HeroContent
	err := row.Scan(&c.ID, &c.Title, &c.Subtitle, &c.Description, &c.BackgroundImage, &c.PrimaryButtonText,
		&c.SecondaryButtonText, &c.ScrollHintText, &c.IsActive, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgRepository) GetHeroContent(ctx context.Context) (*model.HeroContent, error) {
	return getOptional(ctx, r, "get_hero_content",
		`SELECT `+heroColumns+` FROM hero_content WHERE singleton_key = 'default' AND is_active`, scanHero)
}

func (r *PgRepository) UpdateHeroContent(ctx context.Context, in *model.HeroContentInput) (*model.HeroContent, error) {
	d := model.DefaultHeroContent()
	return database.Run(ctx, r.conn, "update_hero_content", func(ctx context.Context, pool *pgxpool.Pool) (*model.HeroContent, error) {
		return scanHero(pool.QueryRow(ctx, heroUpsert,
			in.Title, in.Subtitle, in.Description, in.BackgroundImage, in.PrimaryButtonText,
			in.SecondaryButtonText, in.ScrollHintText, in.IsActive,
			d.Title, d.Subtitle, d.Description, d.BackgroundImage, d.PrimaryButtonText,
			d.SecondaryButtonText, d.ScrollHintText, d.IsActive,
		))
	})
}

// --- about ---

const aboutColumns = `id, title, host_name, host_image, intro_text, description1, description2,
	expanded_text1, expanded_text2, languages, certifications, is_active, updated_at`

var aboutUpsert = singletonUpsertSQL("about_content", []column{
	{"title", "text"},
	{"host_name", "text"},
	{"host_image", "text"},
	{"intro_text", "text"},
	{"description1", "text"},
	{"description2", "text"},
	{"expanded_text1", "text"},
	{"expanded_text2", "text"},
	{"languages", "text"},
	{"certifications", "text"},
	{"is_active", "boolean"},
}, aboutColumns)

func scanAbout(row scanner) (*model.AboutContent, error) {
	var c model.AboutContent
	err := row.Scan(&c.ID, &c.Title, &c.HostName, &c.HostImage, &c.IntroText, &c.Description1, &c.Description2,
		&c.ExpandedText1, &c.ExpandedText2, &c.Languages, &c.Certifications, &c.IsActive, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgRepository) GetAboutContent(ctx context.Context) (*model.AboutContent, error) {
	return getOptional(ctx, r, "get_about_content",
		`SELECT `+aboutColumns+` FROM about_content WHERE singleton_key = 'default' AND is_active`, scanAbout)
}

func (r *PgRepository) UpdateAboutContent(ctx context.Context, in *model.AboutContentInput) (*model.AboutContent, error) {
	d := model.DefaultAboutContent()
	return database.Run(ctx, r.conn, "update_about_content", func(ctx context.Context, pool *pgxpool.Pool) (*model.AboutContent, error) {
		return scanAbout(pool.QueryRow(ctx, aboutUpsert,
			in.Title, in.HostName, in.HostImage, in.IntroText, in.Description1, in.Description2,
			in.ExpandedText1, in.ExpandedText2, in.Languages, in.Certifications, in.IsActive,
			d.Title, d.HostName, d.HostImage, d.IntroText, d.Description1, d.Description2,
			d.ExpandedText1, d.ExpandedText2, d.Languages, d.Certifications, d.IsActive,
		))
	})
}

// --- contact info ---

const contactInfoColumns = `id, business_name, phone, email, address, whatsapp_number, facebook,
	instagram, google_maps, description, business_hours, is_active, updated_at`

var contactInfoUpsert = singletonUpsertSQL("contact_info", []column{
	{"business_name", "text"},
	{"phone", "text"},
	{"email", "text"},
	{"address", "text"},
	{"whatsapp_number", "text"},
	{"facebook", "text"},
	{"instagram", "text"},
	{"google_maps", "text"},
	{"description", "text"},
	{"business_hours", "text"},
	{"is_active", "boolean"},
}, contactInfoColumns)

func scanContactInfo(row scanner) (*model.ContactInfo, error) {
	var c model.ContactInfo
	err := row.Scan(&c.ID, &c.BusinessName, &c.Phone, &c.Email, &c.Address, &c.WhatsappNumber, &c.Facebook,
		&c.Instagram, &c.GoogleMaps, &c.Description, &c.BusinessHours, &c.IsActive, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgRepository) GetContactInfo(ctx context.Context) (*model.ContactInfo, error) {
	return getOptional(ctx, r, "get_contact_info",
		`SELECT `+contactInfoColumns+` FROM contact_info WHERE singleton_key = 'default' AND is_active`, scanContactInfo)
}

func (r *PgRepository) UpdateContactInfo(ctx context.Context, in *model.ContactInfoInput) (*model.ContactInfo, error) {
	d := model.DefaultContactInfo()
	return database.Run(ctx, r.conn, "update_contact_info", func(ctx context.Context, pool *pgxpool.Pool) (*model.ContactInfo, error) {
		return scanContactInfo(pool.QueryRow(ctx, contactInfoUpsert,
			in.BusinessName, in.Phone, in.Email, in.Address, in.WhatsappNumber, in.Facebook,
			in.Instagram, in.GoogleMaps, in.Description, in.BusinessHours, in.IsActive,
			d.BusinessName, d.Phone, d.Email, d.Address, d.WhatsappNumber, d.Facebook,
			d.Instagram, d.GoogleMaps, d.Description, d.BusinessHours, d.IsActive,
		))
	})
}

// --- content sections ---

const sectionColumns = `id, section_key, title, content, image_url, is_active, updated_at`

func scanSection(row scanner) (*model.ContentSection, error) {
	var s model.ContentSection
	if err := row.Scan(&s.ID, &s.SectionKey, &s.Title, &s.Content, &s.ImageURL, &s.IsActive, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PgRepository) ListContentSections(ctx context.Context) ([]*model.ContentSection, error) {
	return database.Run(ctx, r.conn, "list_content_sections", func(ctx context.Context, pool *pgxpool.Pool) ([]*model.ContentSection, error) {
		rows, err := pool.Query(ctx,
			`SELECT `+sectionColumns+` FROM content_sections WHERE is_active ORDER BY section_key`)
		if err != nil {
			return nil, err
		}
		return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*model.ContentSection, error) {
			return scanSection(row)
		})
	})
}

func (r *PgRepository) GetContentSection(ctx context.Context, key string) (*model.ContentSection, error) {
	return getOptional(ctx, r, "get_content_section",
		`SELECT `+sectionColumns+` FROM content_sections WHERE section_key = $1`, scanSection, key)
}

// UpdateContentSection upserts on section_key. An existing row keeps its id
// and any column the input leaves nil.
func (r *PgRepository) UpdateContentSection(ctx context.Context, key string, in *model.ContentSectionInput) (*model.ContentSection, error) {
	return database.Run(ctx, r.conn, "update_content_section", func(ctx context.Context, pool *pgxpool.Pool) (*model.ContentSection, error) {
		return scanSection(pool.QueryRow(ctx,
			`INSERT INTO content_sections (section_key, title, content, image_url, is_active)
			 VALUES ($1, $2::text, $3, $4::text, COALESCE($5::boolean, TRUE))
			 ON CONFLICT (section_key) DO UPDATE SET
			   title = COALESCE($2::text, content_sections.title),
			   content = EXCLUDED.content,
			   image_url = COALESCE($4::text, content_sections.image_url),
			   is_active = COALESCE($5::boolean, content_sections.is_active),
			   updated_at = NOW()
			 RETURNING `+sectionColumns,
			key, in.Title, in.Content, in.ImageURL, in.IsActive,
		))
	})
}

func (r *PgRepository) DeleteContentSection(ctx context.Context, key string) error {
	return r.softDelete(ctx, "delete_content_section",
		`UPDATE content_sections SET is_active = FALSE, updated_at = NOW() WHERE section_key = $1`, key)
}

// softDelete runs a deactivating UPDATE and reports ErrNotFound when it
// matched nothing.
func (r *PgRepository) softDelete(ctx context.Context, op, query string, key string) error {
	_, err := database.Run(ctx, r.conn, op, func(ctx context.Context, pool *pgxpool.Pool) (struct{}, error) {
		tag, err := pool.Exec(ctx, query, key)
		if err != nil {
			return struct{}{}, err
		}
		if tag.RowsAffected() == 0 {
			return struct{}{}, ErrNotFound
		}
		return struct{}{}, nil
	})
	return err
}
