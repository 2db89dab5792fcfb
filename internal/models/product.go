package models

// Category is the fixed set of product categories the shop sells.
type Category string

const (
	CategoryCoasters Category = "Coasters"
	CategoryWallArt  Category = "Wall Art"
	CategoryTrays    Category = "Jewelry Trays"
	CategoryClocks   Category = "Resin Clocks"
	CategoryCustom   Category = "Custom Commissions"
)

// Categories lists every known category, in display order.
func Categories() []Category {
	return []Category{
		CategoryCoasters,
		CategoryWallArt,
		CategoryTrays,
		CategoryClocks,
		CategoryCustom,
	}
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryCoasters, CategoryWallArt, CategoryTrays, CategoryClocks, CategoryCustom:
		return true
	}
	return false
}

// MaxProductImages caps the image gallery per product.
const MaxProductImages = 5

type Product struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription"`
	LongDescription  string   `json:"longDescription"`
	Price            float64  `json:"price"`
	Category         Category `json:"category"`
	// Images holds up to MaxProductImages data-URIs or URLs.
	Images []string `json:"images"`
	// MainImage is the primary image; either a member of Images or empty.
	MainImage string `json:"mainImage"`
	// Image and Description are legacy single-image era fields, kept so
	// old export documents round-trip untouched.
	Image            string `json:"image,omitempty"`
	Description      string `json:"description,omitempty"`
	IsFeatured       bool   `json:"isFeatured"`
	IsNew            bool   `json:"isNew,omitempty"`
	IsBestSeller     bool   `json:"isBestSeller,omitempty"`
	Dimensions       string `json:"dimensions,omitempty"`
	Materials        string `json:"materials,omitempty"`
	CareInstructions string `json:"careInstructions,omitempty"`
	Weight           string `json:"weight,omitempty"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// ProductDraft is the user-supplied part of a product; the repository
// assigns id and timestamps on create.
type ProductDraft struct {
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription"`
	LongDescription  string   `json:"longDescription"`
	Price            float64  `json:"price"`
	Category         Category `json:"category"`
	Images           []string `json:"images"`
	MainImage        string   `json:"mainImage"`
	IsFeatured       bool     `json:"isFeatured"`
	IsNew            bool     `json:"isNew"`
	IsBestSeller     bool     `json:"isBestSeller"`
	Dimensions       string   `json:"dimensions"`
	Materials        string   `json:"materials"`
	CareInstructions string   `json:"careInstructions"`
	Weight           string   `json:"weight"`
}
