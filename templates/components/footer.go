package components

import (
	"context"
	"time"

	"retailnexa_site/services/i18n"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// FooterProps carries the footer's configurable links
type FooterProps struct {
	Brand        string
	Tagline      string
	ContactEmail string
	LinkedInURL  string
	Now          time.Time
}

type footerLink struct {
	Label    string
	Href     string
	External bool
}

func footerColumn(title string, links []footerLink) g.Node {
	return Div(
		H5(Class("font-black text-xs uppercase tracking-[0.2em] text-slate-900 mb-6"), g.Text(title)),
		Ul(
			Class("space-y-4 text-sm font-bold text-slate-500"),
			g.Group(g.Map(links, func(l footerLink) g.Node {
				return Li(A(
					Href(l.Href),
					Class("hover:text-teal-600 transition-colors"),
					g.If(l.External, g.Group{Target("_blank"), Rel("noopener noreferrer")}),
					g.Text(l.Label),
				))
			})),
		),
	)
}

const roundIconLink = "w-10 h-10 rounded-full bg-slate-200 hover:bg-teal-100 flex items-center justify-center text-slate-400 hover:text-teal-600 transition-all cursor-pointer"

func SiteFooter(ctx context.Context, p FooterProps) g.Node {
	product := []footerLink{
		{Label: "Integrations", Href: "#how"},
		{Label: "AI Phone Agent", Href: "#features"},
		{Label: "Reconciliation", Href: "#features"},
		{Label: "Inventory OS", Href: "#features"},
	}
	company := []footerLink{
		{Label: "Our Vision", Href: "#problem"},
		{Label: "LinkedIn", Href: p.LinkedInURL, External: true},
		{Label: "Pricing", Href: "#pricing"},
		{Label: "FAQ", Href: "#faq"},
		{Label: "Contact", Href: "#contact"},
	}

	return Footer(
		Class("bg-slate-50 py-24 px-6 border-t border-slate-200"),
		Div(
			Class("container mx-auto"),
			Div(
				Class("grid md:grid-cols-4 gap-12 mb-20"),
				Div(
					Class("col-span-2"),
					Div(Class("mb-8"), BrandMark(p.Brand, "w-12 h-12 rounded-xl")),
					P(Class("text-slate-500 max-w-sm font-medium leading-relaxed italic"), g.Text(p.Tagline)),
				),
				footerColumn(i18n.T(ctx, "footer.product"), product),
				footerColumn(i18n.T(ctx, "footer.company"), company),
			),
			Div(
				Class("flex flex-col md:flex-row justify-between items-center gap-10 pt-12 border-t border-slate-200"),
				Div(
					Class("text-sm text-slate-400 font-black uppercase tracking-widest"),
					g.Text(i18n.T(ctx, "footer.copyright", map[string]interface{}{"year": p.Now.Year()})),
				),
				Div(
					Class("flex gap-8"),
					A(Href("mailto:"+p.ContactEmail), Aria("label", "Email "+p.Brand), Class(roundIconLink), MailIcon("w-5 h-5")),
					A(Href(p.LinkedInURL), Target("_blank"), Rel("noopener noreferrer"), Aria("label", p.Brand+" on LinkedIn"), Class(roundIconLink), LinkedInIcon("w-5 h-5")),
				),
			),
		),
	)
}
