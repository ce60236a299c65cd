package settings

// Well-known setting keys managed from the admin panel.
const (
	KeyLogoURL      = "logo_url"
	KeySiteTitle    = "site_title"
	KeyContactEmail = "contact_email"
)

// logoCacheKey is the cache entry for the public logo URL.
const logoCacheKey = "settings:logo_url"
