package layouts

import (
	"context"
	"io"

	"retailnexa_site/middleware"
	"retailnexa_site/models"
	"retailnexa_site/services/i18n"
	"retailnexa_site/templates"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	tailwindCDN = "https://cdn.tailwindcss.com"
	htmxCDN     = "https://unpkg.com/htmx.org@2.0.4"
	fontsCSS    = "https://fonts.googleapis.com/css2?family=Inter:wght@400;500;700;900&display=swap"
)

// Base is the document shell shared by every page: SEO head, nonce'd
// scripts, stylesheet and the page content.
func Base(seo *models.SEO, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		nonce := middleware.GetNonce(ctx)
		doc := h.Doctype(h.HTML(
			h.Lang(i18n.GetLocale(ctx)),
			head(seo, nonce),
			h.Body(
				h.Class("min-h-screen selection:bg-teal-100 selection:text-teal-900 bg-[#f8fafc] text-slate-900 antialiased"),
				templates.FromComponent(ctx, content),
				h.Script(g.Attr("nonce", nonce), h.Src(middleware.AssetURL(middleware.SiteJS)), h.Defer()),
			),
		))
		return doc.Render(w)
	})
}

func head(seo *models.SEO, nonce string) g.Node {
	if seo == nil {
		seo = models.NewSEO("", "")
	}
	card := seo.Preview()
	return h.Head(
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
		h.TitleEl(g.Text(seo.Title)),
		h.Meta(h.Name("description"), h.Content(seo.Description)),
		g.If(seo.Keywords != "", h.Meta(h.Name("keywords"), h.Content(seo.Keywords))),
		g.If(seo.Robots != "", h.Meta(h.Name("robots"), h.Content(seo.Robots))),
		g.If(seo.Canonical != "", h.Link(h.Rel("canonical"), h.Href(seo.Canonical))),
		alternates(seo),

		h.Meta(property("og:title"), h.Content(card.Title)),
		h.Meta(property("og:description"), h.Content(card.Description)),
		h.Meta(property("og:type"), h.Content(card.Type)),
		h.Meta(property("og:locale"), h.Content(seo.Locale)),
		g.If(seo.Canonical != "", h.Meta(property("og:url"), h.Content(seo.Canonical))),
		g.If(card.Image != "", g.Group([]g.Node{
			h.Meta(property("og:image"), h.Content(card.Image)),
			h.Meta(h.Name("twitter:image"), h.Content(card.Image)),
		})),
		h.Meta(h.Name("twitter:card"), h.Content(seo.TwitterCard)),
		h.Meta(h.Name("twitter:title"), h.Content(card.Title)),
		h.Meta(h.Name("twitter:description"), h.Content(card.Description)),

		h.Link(h.Rel("icon"), h.Type("image/svg+xml"), h.Href(middleware.AssetURL(middleware.Favicon))),
		h.Link(h.Rel("preconnect"), h.Href("https://fonts.googleapis.com")),
		h.Link(h.Rel("stylesheet"), h.Href(fontsCSS)),
		h.Link(h.Rel("stylesheet"), h.Href(middleware.AssetURL(middleware.SiteCSS))),
		h.Script(g.Attr("nonce", nonce), h.Src(tailwindCDN)),
		h.Script(g.Attr("nonce", nonce), h.Src(htmxCDN), h.Defer()),
	)
}

func property(name string) g.Node {
	return g.Attr("property", name)
}

// alternates emits one hreflang link per other language
func alternates(seo *models.SEO) g.Node {
	if seo.Canonical == "" {
		return nil
	}
	return g.Group(g.Map(seo.Alternates, func(lang string) g.Node {
		return h.Link(h.Rel("alternate"), g.Attr("hreflang", lang), h.Href(seo.AlternateURL(lang)))
	}))
}
