package models

// SiteConfig is the singleton site configuration, editable from the admin
// console. The admin access code lives here too; it gates the admin surface
// as a UX convenience only and is not a security boundary.
type SiteConfig struct {
	Name            string `json:"name"`
	Theme           string `json:"theme"`
	HeroTitle       string `json:"heroTitle"`
	HeroSubtitle    string `json:"heroSubtitle"`
	AboutText       string `json:"aboutText"`
	ContactEmail    string `json:"contactEmail"`
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	AdminAccessCode string `json:"adminAccessCode"`
}

// ConfigPatch is a partial SiteConfig update. Nil fields are left unchanged.
type ConfigPatch struct {
	Name            *string `json:"name"`
	Theme           *string `json:"theme"`
	HeroTitle       *string `json:"heroTitle"`
	HeroSubtitle    *string `json:"heroSubtitle"`
	AboutText       *string `json:"aboutText"`
	ContactEmail    *string `json:"contactEmail"`
	PrimaryColor    *string `json:"primaryColor"`
	SecondaryColor  *string `json:"secondaryColor"`
	AdminAccessCode *string `json:"adminAccessCode"`
}

// Apply merges the patch into cfg, field by field.
func (p ConfigPatch) Apply(cfg *SiteConfig) {
	if p.Name != nil {
		cfg.Name = *p.Name
	}
	if p.Theme != nil {
		cfg.Theme = *p.Theme
	}
	if p.HeroTitle != nil {
		cfg.HeroTitle = *p.HeroTitle
	}
	if p.HeroSubtitle != nil {
		cfg.HeroSubtitle = *p.HeroSubtitle
	}
	if p.AboutText != nil {
		cfg.AboutText = *p.AboutText
	}
	if p.ContactEmail != nil {
		cfg.ContactEmail = *p.ContactEmail
	}
	if p.PrimaryColor != nil {
		cfg.PrimaryColor = *p.PrimaryColor
	}
	if p.SecondaryColor != nil {
		cfg.SecondaryColor = *p.SecondaryColor
	}
	if p.AdminAccessCode != nil {
		cfg.AdminAccessCode = *p.AdminAccessCode
	}
}

// AdminState is the persisted admin session: a flag plus an epoch-millis
// expiry. A session counts as valid only while now < SessionExpiry.
type AdminState struct {
	IsAuthenticated bool  `json:"isAuthenticated"`
	SessionExpiry   int64 `json:"sessionExpiry"`
}

// ServiceItem is one entry on the services page.
type ServiceItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
