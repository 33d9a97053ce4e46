package domain

// SiteSettings is the site-wide configuration document. Theme colors are HSL
// triples ("218 48% 17%") consumed verbatim by the rendering layer.
type SiteSettings struct {
	SiteTitle       string `json:"siteTitle"`
	SiteDescription string `json:"siteDescription"`
	ContactEmail    string `json:"contactEmail"`
	FacebookURL     string `json:"facebookUrl"`
	TwitterURL      string `json:"twitterUrl"`
	InstagramURL    string `json:"instagramUrl"`
	LinkedinURL     string `json:"linkedinUrl"`
	YoutubeURL      string `json:"youtubeUrl"`
	PrimaryColor    string `json:"primaryColor"`
	AccentColor     string `json:"accentColor"`
	BackgroundColor string `json:"backgroundColor"`
}

// DefaultSiteSettings is what a fresh install serves before an admin edits
// anything.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteTitle:       "Open Letters",
		SiteDescription: "A place to write, read and share ideas as a community.",
		ContactEmail:    "contact@openletters.example",
		FacebookURL:     "https://facebook.com/openletters",
		TwitterURL:      "https://twitter.com/openletters",
		InstagramURL:    "https://instagram.com/openletters",
		LinkedinURL:     "https://linkedin.com/company/openletters",
		YoutubeURL:      "https://youtube.com/c/openletters",
		PrimaryColor:    "218 48% 17%",
		AccentColor:     "207 55% 56%",
		BackgroundColor: "240 10% 95%",
	}
}
