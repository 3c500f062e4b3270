package components

import (
	"context"
	"strings"

	"retailnexa_site/services/i18n"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type navLink struct {
	Anchor string
	Key    string
}

var navLinks = []navLink{
	{"#problem", "nav.problem"},
	{"#how", "nav.how"},
	{"#features", "nav.features"},
	{"#pricing", "nav.pricing"},
	{"#faq", "nav.faq"},
}

// BrandMark is the teal "R" tile next to the brand name
func BrandMark(brand, tileClass string) g.Node {
	return Div(
		Class("flex items-center gap-3 group cursor-pointer"),
		Div(Class(tileClass+" bg-teal-600 flex items-center justify-center text-white font-black text-2xl italic"), g.Text(initial(brand))),
		Span(Class("text-2xl font-black tracking-tighter text-slate-900"), g.Text(brand)),
	)
}

func initial(s string) string {
	for _, r := range s {
		return strings.ToUpper(string(r))
	}
	return ""
}

// SiteNav is the fixed top bar. site.js toggles the glass style once the page scrolls.
func SiteNav(ctx context.Context, brand string) g.Node {
	lang := i18n.GetLocale(ctx)
	return Nav(
		ID("site-nav"),
		Class("fixed top-0 w-full z-[100] transition-all duration-500 bg-transparent py-8"),
		Div(
			Class("container mx-auto px-6 flex justify-between items-center"),
			A(Href("#"), BrandMark(brand, "w-12 h-12 rounded-2xl shadow-[0_8px_16px_-4px_rgba(13,148,136,0.4)] group-hover:scale-105 transition-all")),
			Div(
				Class("hidden md:flex items-center gap-10 text-xs font-bold uppercase tracking-widest text-slate-500"),
				g.Group(g.Map(navLinks, func(l navLink) g.Node {
					return A(Href(l.Anchor), Class("hover:text-teal-600 transition-colors"), g.Text(i18n.T(ctx, l.Key)))
				})),
				A(
					Href("#contact"),
					Class("bg-slate-900 text-white px-7 py-3 rounded-xl hover:bg-teal-600 transition-all shadow-lg active:scale-95 text-[11px]"),
					g.Text(i18n.T(ctx, "nav.demo")),
				),
				Div(
					Class("flex gap-2 text-[10px]"),
					g.Group(g.Map(i18n.Languages(), func(code string) g.Node {
						return A(
							Href("?lang="+code),
							g.Attr("hreflang", code),
							g.If(code == lang, Class("text-teal-600")),
							g.If(code != lang, Class("hover:text-teal-600 transition-colors")),
							g.Text(strings.ToUpper(code)),
						)
					})),
				),
			),
		),
	)
}
