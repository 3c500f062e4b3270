package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func svgIcon(class, fill, stroke string, paths ...g.Node) g.Node {
	return SVG(
		Class(class),
		g.Attr("fill", fill),
		g.If(stroke != "", g.Attr("stroke", stroke)),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("aria-hidden", "true"),
		g.Group(paths),
	)
}

func strokePath(d string) g.Node {
	return g.El("path",
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("stroke-width", "2"),
		g.Attr("d", d),
	)
}

func fillPath(d string) g.Node {
	return g.El("path", g.Attr("d", d))
}

func ChartIcon(class string) g.Node {
	return svgIcon(class, "none", "currentColor",
		strokePath("M9 19v-6a2 2 0 00-2-2H5a2 2 0 00-2 2v6a2 2 0 002 2h2a2 2 0 002-2zm0 0V9a2 2 0 012-2h2a2 2 0 012 2v10m-6 0a2 2 0 002 2h2a2 2 0 002-2m0 0V5a2 2 0 012-2h2a2 2 0 012 2v14a2 2 0 01-2 2h-2a2 2 0 01-2-2z"),
	)
}

func BotIcon(class string) g.Node {
	return svgIcon(class, "none", "currentColor",
		strokePath("M9.75 17L9 20l-1 1h8l-1-1-.75-3M3 13h18M5 17h14a2 2 0 002-2V5a2 2 0 00-2-2H5a2 2 0 00-2 2v10a2 2 0 002 2z"),
	)
}

func ShieldIcon(class string) g.Node {
	return svgIcon(class, "none", "currentColor",
		strokePath("M9 12l2 2 4-4m5.618-4.016A11.955 11.955 0 0112 2.944a11.955 11.955 0 01-8.618 3.04A12.02 12.02 0 003 9c0 5.591 3.824 10.29 9 11.622 5.176-1.332 9-6.03 9-11.622 0-1.042-.133-2.052-.382-3.016z"),
	)
}

func CheckIcon(class string) g.Node {
	return svgIcon(class, "none", "currentColor", strokePath("M5 13l4 4L19 7"))
}

func WarningIcon(class string) g.Node {
	return svgIcon(class, "none", "currentColor",
		strokePath("M12 9v2m0 4h.01m-6.938 4h13.856c1.54 0 2.502-1.667 1.732-3L13.732 4c-.77-1.333-2.694-1.333-3.464 0L3.34 16c-.77 1.333.192 3 1.732 3z"),
	)
}

func MailIcon(class string) g.Node {
	return svgIcon(class, "currentColor", "",
		fillPath("M20 4H4c-1.1 0-2 .9-2 2v12c0 1.1.9 2 2 2h16c1.1 0 2-.9 2-2V6c0-1.1-.9-2-2-2zm0 4-8 5-8-5V6l8 5 8-5v2z"),
	)
}

func LinkedInIcon(class string) g.Node {
	return svgIcon(class, "currentColor", "",
		fillPath("M19 0h-14c-2.761 0-5 2.239-5 5v14c0 2.761 2.239 5 5 5h14c2.762 0 5-2.239 5-5v-14c0-2.761-2.238-5-5-5zm-11 19h-3v-11h3v11zm-1.5-12.268c-.966 0-1.75-.79-1.75-1.764s.784-1.764 1.75-1.764 1.75.79 1.75 1.764-.783 1.764-1.75 1.764zm13.5 12.268h-3v-5.604c0-3.368-4-3.113-4 0v5.604h-3v-11h3v1.765c1.396-2.586 7-2.777 7 2.476v6.759z"),
	)
}

// FeatureIcon maps a catalog icon name to its glyph. Unknown names render nothing.
func FeatureIcon(name, class string) g.Node {
	switch name {
	case "chart":
		return ChartIcon(class)
	case "bot":
		return BotIcon(class)
	case "shield":
		return ShieldIcon(class)
	}
	return nil
}

// CheckBullet is the teal check mark followed by a label used by step and feature lists
func CheckBullet(label string) g.Node {
	return Div(
		Class("flex gap-3 items-center text-sm font-bold text-slate-700"),
		Div(
			Class("w-5 h-5 rounded-full bg-teal-50 flex items-center justify-center"),
			CheckIcon("w-3 h-3 text-teal-600"),
		),
		g.Text(label),
	)
}
