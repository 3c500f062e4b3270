package pages

import (
	"context"
	"time"

	"retailnexa_site/models"
	"retailnexa_site/templates/components"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LandingView is the data the landing page renders from
type LandingView struct {
	Content     *models.Landing
	Lead        models.LeadFormView
	LinkedInURL string
	Now         time.Time
}

// Landing composes every section of the marketing page in order
func Landing(ctx context.Context, v LandingView) g.Node {
	l := v.Content
	return g.Group{
		components.SiteNav(ctx, l.Brand),
		Main(
			heroSection(l),
			problemSection(l),
			howSection(l),
			featuresSection(l),
			segmentsSection(l),
			pricingSection(l),
			faqSection(l),
			contactSection(ctx, l, v.Lead),
		),
		components.SiteFooter(ctx, components.FooterProps{
			Brand:        l.Brand,
			Tagline:      l.Tagline,
			ContactEmail: v.Lead.ContactEmail,
			LinkedInURL:  v.LinkedInURL,
			Now:          v.Now,
		}),
	}
}
