package store

import (
	"time"

	"github.com/debghosh/mysticresin/internal/models"
)

// Built-in datasets, used on first start and whenever a persisted entry is
// absent or unparseable.

// DefaultConfig returns the initial site configuration.
// Change the admin access code before going live.
func DefaultConfig() models.SiteConfig {
	return models.SiteConfig{
		Name:            "Mystic Resin Studio",
		Theme:           "ocean",
		HeroTitle:       "Handcrafted Resin Art, Poured With Patience",
		HeroSubtitle:    "Ocean-inspired pieces that bring fluid color into everyday objects.",
		AboutText:       "Every piece that leaves the studio is poured, layered and cured by hand. I work with eco-conscious epoxy, mica pigments and real botanicals, so no two pieces are ever alike.",
		ContactEmail:    "hello@mysticresin.studio",
		PrimaryColor:    "#0ea5e9",
		SecondaryColor:  "#14b8a6",
		AdminAccessCode: "MYSTIC24!",
	}
}

// DefaultProducts returns the sample catalog. Timestamps are stamped with
// the given instant so a fresh database looks newly created.
func DefaultProducts(now time.Time) []models.Product {
	ts := now.UTC().Format(timestampLayout)

	products := []models.Product{
		{
			ID:               "1",
			Title:            "Deep Blue Geode Coaster Set",
			ShortDescription: "Set of 4 agate-inspired coasters with metallic gold edges.",
			LongDescription:  "Layers of deep blues, teals and whites mimic natural agate formations, finished with gold foil edges and cork backing. Each coaster in the set cures with its own cell pattern, so no two are alike. A favorite housewarming and wedding gift.",
			Price:            45,
			Category:         models.CategoryCoasters,
			Images: []string{
				"https://picsum.photos/seed/resin1/600/600",
				"https://picsum.photos/seed/resin1b/600/600",
				"https://picsum.photos/seed/resin1c/600/600",
			},
			MainImage:        "https://picsum.photos/seed/resin1/600/600",
			IsFeatured:       true,
			IsBestSeller:     true,
			Dimensions:       "4 x 4 inches, 0.25 inch thick",
			Materials:        "Epoxy resin, mica powder, gold foil, cork backing",
			CareInstructions: "Wipe clean with a soft damp cloth. No dishwasher, no harsh chemicals, no direct heat.",
			Weight:           "1.2 lbs (set of 4)",
		},
		{
			ID:               "2",
			Title:            "White & Gold Jewelry Tray",
			ShortDescription: "Elegant catch-all tray with real dried flowers and gold leaf.",
			LongDescription:  "Real dried flowers suspended in crystal-clear resin over soft whites and champagne tones. The smooth surface protects jewelry from scratches and doubles as a catch-all for keys and watches on a vanity or dresser.",
			Price:            65,
			Category:         models.CategoryTrays,
			Images: []string{
				"https://picsum.photos/seed/resin2/600/600",
				"https://picsum.photos/seed/resin2b/600/600",
			},
			MainImage:        "https://picsum.photos/seed/resin2/600/600",
			IsFeatured:       true,
			IsNew:            true,
			Dimensions:       "8 x 12 inches, 0.5 inch deep",
			Materials:        "Epoxy resin, dried flowers, gold leaf, felt backing",
			CareInstructions: "Dust with a dry microfiber cloth. For deeper cleaning use mild soap and water, pat dry immediately.",
			Weight:           "1.8 lbs",
		},
		{
			ID:               "3",
			Title:            "Midnight Seascape Wall Art",
			ShortDescription: "Large-format layered ocean wave piece on a wood canvas.",
			LongDescription:  "Multiple resin layers poured over a wood panel build real depth: navy transitions into teal and white with silver and pearl accents, and the wave lacing forms naturally during the cure. Arrives wired and ready to hang. Allow 3-4 weeks for creation and curing.",
			Price:            350,
			Category:         models.CategoryWallArt,
			Images: []string{
				"https://picsum.photos/seed/resin3/800/600",
				"https://picsum.photos/seed/resin3b/800/600",
			},
			MainImage:        "https://picsum.photos/seed/resin3/800/600",
			Dimensions:       "24 x 36 inches, 1.5 inch depth",
			Materials:        "Epoxy resin, acrylic paint, mica powder, wood panel",
			CareInstructions: "Dust gently with a soft dry cloth. Keep out of direct sunlight and high humidity.",
			Weight:           "8.5 lbs",
		},
		{
			ID:               "4",
			Title:            "Emerald Swirl Resin Clock",
			ShortDescription: "Functional art with a silent quartz movement and emerald swirls.",
			LongDescription:  "Jewel-toned green resin with natural swirls and gold accents, minimalist gold hour markers and a silent quartz movement - no ticking. The patterns form as the resin cures, making every clock one of a kind. Takes one AA battery (not included); mounting hardware included.",
			Price:            120,
			Category:         models.CategoryClocks,
			Images: []string{
				"https://picsum.photos/seed/resin4/600/600",
			},
			MainImage:        "https://picsum.photos/seed/resin4/600/600",
			Dimensions:       "12 inch diameter, 0.75 inch thick",
			Materials:        "Epoxy resin, metallic pigments, silent quartz movement, gold leaf",
			CareInstructions: "Dust with a soft dry cloth and keep away from moisture.",
			Weight:           "2.3 lbs",
		},
		{
			ID:               "5",
			Title:            "Amethyst Geode Wall Hanging",
			ShortDescription: "Genuine amethyst clusters embedded in purple resin.",
			LongDescription:  "Real amethyst crystal clusters set in layers of purple, lavender and white resin, framed with gold metallic detailing that mimics a natural geode rim. The crystals catch the light and add real depth. Comes with a sturdy hanging system.",
			Price:            200,
			Category:         models.CategoryWallArt,
			Images: []string{
				"https://picsum.photos/seed/resin5/600/600",
				"https://picsum.photos/seed/resin5b/600/600",
			},
			MainImage:        "https://picsum.photos/seed/resin5/600/600",
			IsFeatured:       true,
			Dimensions:       "18 x 24 inches, 1 inch depth",
			Materials:        "Epoxy resin, genuine amethyst crystals, metallic pigments, wood backing",
			CareInstructions: "Dust gently with a soft brush. No water or cleaners on the crystal areas; avoid direct sunlight.",
			Weight:           "6.2 lbs",
		},
		{
			ID:               "6",
			Title:            "Bridal Bouquet Preservation Block",
			ShortDescription: "Your wedding flowers preserved forever in crystal-clear resin.",
			LongDescription:  "Ship me your bouquet within a few days of the wedding and I arrange, dry and embed the flowers in layered premium resin. Shape, size and extras (date, initials, metallic accents) are all custom - contact me for a personalized quote. Turnaround is 2-3 weeks once the flowers arrive.",
			Price:            250,
			Category:         models.CategoryCustom,
			Images: []string{
				"https://picsum.photos/seed/resin6/600/600",
				"https://picsum.photos/seed/resin6b/600/600",
			},
			MainImage:        "https://picsum.photos/seed/resin6/600/600",
			Dimensions:       "6 x 6 x 2 inches standard, custom sizes available",
			Materials:        "Epoxy resin, preserved flowers, optional metallic accents",
			CareInstructions: "Display away from direct sunlight. Clean with a soft dry cloth only.",
			Weight:           "2-4 lbs depending on size",
		},
	}

	for i := range products {
		products[i].CreatedAt = ts
		products[i].UpdatedAt = ts
	}
	return products
}

// DefaultBlogPosts returns the sample blog.
func DefaultBlogPosts() []models.BlogPost {
	return []models.BlogPost{
		{
			ID:        "1",
			Title:     "The Magic of Layering Resin",
			Date:      "2024-10-15",
			Excerpt:   "How multiple pours over several days create the depth in my ocean pieces.",
			Content:   "Realistic ocean waves are not a one-step pour. Each layer needs a partial cure before the next goes on: base layer in the darkest blues, four to six hours of waiting, mid-tone blues and teals, another wait, then the white wave layer with its cells, and a final clear coat after a full day. The waiting is where the depth comes from - patience really is the secret ingredient.",
			Image:     "https://picsum.photos/seed/resin3/800/600",
			Author:    "Mira",
			Tags:      []string{"Tutorial", "Ocean Art", "Technique"},
			Published: true,
		},
		{
			ID:        "2",
			Title:     "Caring for Your Resin Art",
			Date:      "2024-11-02",
			Excerpt:   "Simple habits that keep coasters and trays shiny for years.",
			Content:   "Resin is durable, but it rewards a little care. Day to day: dust with a dry microfiber cloth, keep very hot items off the surface, and use coasters under cold drinks. For sticky residue, mild dish soap and warm water, dried immediately. Long term, keep pieces out of direct sunlight to prevent yellowing and away from harsh cleaners. Treated kindly, resin stays beautiful for decades.",
			Image:     "https://picsum.photos/seed/resincare/800/600",
			Author:    "Mira",
			Tags:      []string{"Care Tips", "Maintenance"},
			Published: true,
		},
		{
			ID:        "3",
			Title:     "Behind the Scenes: Winter Collection",
			Date:      "2024-12-01",
			Excerpt:   "A sneak peek at the snowy, glittery designs landing this season.",
			Content:   "This year's winter collection is all about iridescent whites, icy blues and silver accents, with glitter suspended between the layers. Expect limited-edition coaster sets, frosted jewelry trays, a Northern Lights wall piece and ornament sets. Pre-orders open December 10th - the limited pieces tend to sell out fast.",
			Image:     "https://picsum.photos/seed/resinwinter/800/600",
			Author:    "Mira",
			Tags:      []string{"New Release", "Holiday", "Sneak Peek"},
			Published: true,
		},
	}
}

// Services returns the static services page entries.
func Services() []models.ServiceItem {
	return []models.ServiceItem{
		{
			ID:          "1",
			Title:       "Custom Commissions",
			Description: "Have a palette or design in mind? We work together to create a piece that matches your vision and your space.",
			Icon:        "palette",
		},
		{
			ID:          "2",
			Title:       "Workshops & Classes",
			Description: "A 3-hour hands-on workshop covering safety, mixing and pouring, where you create your own coaster set to take home.",
			Icon:        "users",
		},
		{
			ID:          "3",
			Title:       "Flower Preservation",
			Description: "Send in flowers from weddings, graduations or memorials and I encapsulate them in high-quality resin as a keepsake.",
			Icon:        "flower",
		},
	}
}
