package pages

import (
	"context"

	"retailnexa_site/models"
	"retailnexa_site/services/i18n"
	"retailnexa_site/templates/components"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func eyebrow(text string) g.Node {
	return Div(Class("bg-teal-50 text-teal-600 text-[10px] font-black uppercase tracking-[0.3em] px-4 py-2 rounded-full mb-6 inline-block"), g.Text(text))
}

func sectionIntro(badge, title, titleClass, lead string) g.Node {
	return Div(
		Class("text-center max-w-3xl mx-auto mb-20"),
		g.If(badge != "", eyebrow(badge)),
		H2(Class("text-4xl md:text-6xl font-black mb-6 tracking-tighter "+titleClass), g.Text(title)),
		P(Class("text-xl text-slate-500 font-medium leading-relaxed"), g.Text(lead)),
	)
}

func heroSection(l *models.Landing) g.Node {
	h := l.Hero
	return Section(
		Class("pt-40 pb-32 px-6 overflow-hidden relative"),
		Div(
			Class("absolute top-0 left-1/2 -translate-x-1/2 w-full h-full -z-10 overflow-hidden"),
			Div(Class("absolute top-[10%] left-[5%] w-[500px] h-[500px] bg-teal-200/20 rounded-full blur-[120px] animate-pulse")),
			Div(Class("absolute bottom-[10%] right-[5%] w-[500px] h-[500px] bg-cyan-200/20 rounded-full blur-[120px] animate-pulse delay-1000")),
		),
		Div(
			Class("container mx-auto text-center"),
			Div(
				Class("inline-flex items-center gap-3 px-5 py-2.5 bg-white shadow-sm border border-slate-200 rounded-full mb-10 group cursor-default"),
				Span(Class("flex h-2 w-2 rounded-full bg-teal-500 animate-ping")),
				Span(Class("text-[11px] font-black text-slate-600 uppercase tracking-[0.2em]"), g.Text(h.Badge)),
			),
			H1(Class("text-6xl md:text-8xl font-black text-slate-900 leading-[0.9] mb-8 tracking-tighter"), components.RichText(h.Headline)),
			P(Class("text-xl md:text-2xl text-slate-500 max-w-3xl mx-auto mb-12 leading-relaxed font-medium"), g.Text(h.Subline)),
			Div(
				Class("flex flex-col sm:flex-row gap-6 justify-center mb-24"),
				A(Href("#contact"), Class("bg-teal-600 text-white px-12 py-5 rounded-2xl font-black text-xl hover:bg-teal-700 transition-all shadow-[0_20px_40px_-10px_rgba(13,148,136,0.3)] hover:-translate-y-1 active:scale-95"), g.Text(h.PrimaryCTA)),
				A(
					Href("#how"),
					Class("bg-white text-slate-900 border-2 border-slate-200 px-12 py-5 rounded-2xl font-black text-xl hover:border-teal-500 hover:text-teal-600 transition-all active:scale-95 flex items-center justify-center gap-3"),
					g.Text(h.SecondaryCTA),
					Div(
						Class("w-8 h-8 rounded-full bg-slate-100 flex items-center justify-center"),
						Div(Class("w-0 h-0 border-t-[5px] border-t-transparent border-l-[8px] border-l-slate-900 border-b-[5px] border-b-transparent ml-1")),
					),
				),
			),
			Div(
				Class("relative group px-4"),
				Div(Class("absolute -inset-4 bg-gradient-to-tr from-teal-500/10 via-transparent to-cyan-500/10 blur-3xl opacity-50 group-hover:opacity-100 transition-opacity -z-10")),
				DashboardPreview(l.Dashboard),
			),
		),
	)
}

func problemSection(l *models.Landing) g.Node {
	return Section(
		ID("problem"),
		Class("py-32 bg-slate-900 px-6 relative overflow-hidden"),
		Div(Class("absolute top-0 w-full h-px bg-gradient-to-r from-transparent via-teal-500/50 to-transparent")),
		Div(
			Class("container mx-auto"),
			Div(
				Class("text-center max-w-3xl mx-auto mb-20"),
				H2(Class("text-4xl md:text-6xl font-black text-white mb-6 tracking-tighter uppercase italic"), g.Text("The High Cost of Chaos")),
				P(Class("text-xl text-slate-400 font-medium leading-relaxed"), g.Text("Retailers don't fail because they lack hard work. They fail because their money leaks through invisible cracks.")),
			),
			Div(
				Class("grid md:grid-cols-3 gap-8 mb-20"),
				g.Group(g.Map(l.Problems, func(p models.Problem) g.Node {
					return Div(
						Class("bg-slate-800/50 p-10 rounded-[2.5rem] border border-slate-700/50 hover:bg-slate-800 transition-all hover:-translate-y-2 group"),
						Div(Class("text-5xl mb-6 group-hover:scale-110 transition-transform inline-block"), g.Text(p.Icon)),
						H4(Class("text-2xl font-black text-white mb-4 italic tracking-tight"), g.Text(p.Title)),
						P(Class("text-slate-400 leading-relaxed font-medium"), g.Text(p.Desc)),
					)
				})),
			),
			intelligenceBanner(l),
		),
	)
}

func intelligenceBanner(l *models.Landing) g.Node {
	return Div(
		Class("bg-teal-600 rounded-[3rem] p-10 md:p-16 flex flex-col md:flex-row items-center gap-12 relative overflow-hidden"),
		Div(Class("absolute inset-0 bg-white/5 pointer-events-none")),
		Div(
			Class("relative z-10 md:w-1/2"),
			Div(Class("bg-white/20 px-4 py-1.5 rounded-full text-[10px] font-black uppercase tracking-widest text-white mb-6 inline-block"), g.Text("The Intelligence Layer")),
			H3(Class("text-4xl md:text-5xl font-black text-white leading-none mb-6"), g.Text("Stop Reacting."), Br(), g.Text("Start Orchestrating.")),
			P(Class("text-teal-50 text-lg mb-8 font-medium"), g.Text("RetailNexa sits on top of your existing POS, Bank, and Cameras. We turn fragmented data into automated wealth protection.")),
			Div(
				Class("flex flex-wrap gap-4"),
				g.Group(g.Map(l.Tags, func(tag string) g.Node {
					return Div(Class("flex items-center gap-2 text-white font-bold text-xs"), Div(Class("w-1.5 h-1.5 rounded-full bg-white")), g.Text(tag))
				})),
			),
		),
		Div(
			Class("md:w-1/2 relative"),
			Div(
				Class("bg-slate-900 rounded-3xl p-8 border border-white/10 shadow-2xl transform rotate-2 hover:rotate-0 transition-transform"),
				Div(
					Class("space-y-4"),
					Div(
						Class("flex justify-between items-center text-teal-400 font-bold text-xs uppercase tracking-tighter"),
						Span(g.Text("Live Reorder Priority")),
						Span(Class("bg-teal-400/10 px-2 py-0.5 rounded"), g.Text("Calculated")),
					),
					Div(
						Class("space-y-3"),
						g.Group(g.Map(l.Reorders, func(it models.ReorderItem) g.Node {
							return Div(
								Class("bg-slate-800 p-4 rounded-xl border border-white/5"),
								Div(
									Class("flex justify-between items-center mb-1"),
									Span(Class("text-white font-black text-sm"), g.Text(it.Name)),
									Span(Class("text-rose-500 text-xs font-bold"), g.Text(it.Stock+" Left")),
								),
								P(Class("text-slate-400 text-[10px] font-medium"), g.Text(it.Action)),
							)
						})),
					),
					Div(Class("w-full bg-teal-600 text-white font-black py-3 rounded-xl text-sm mt-2 text-center"), g.Text("Approve All Drafts")),
				),
			),
		),
	)
}

func howSection(l *models.Landing) g.Node {
	return Section(
		ID("how"),
		Class("py-32 px-6 bg-white"),
		Div(
			Class("container mx-auto"),
			sectionIntro("POS-Agnostic", "Connect. Verify. Automate.", "",
				"RetailNexa sits on top of your existing tools and turns scattered data into actions — without replacing your POS."),
			Div(
				Class("grid lg:grid-cols-3 gap-10"),
				g.Group(g.Map(l.Steps, func(s models.Step) g.Node {
					return Div(
						Class("p-10 rounded-[3rem] bg-slate-50 border border-slate-200 hover:border-teal-200 hover:bg-white hover:shadow-2xl transition-all"),
						Div(
							Class("flex items-center justify-between mb-8"),
							Div(Class("text-[11px] font-black uppercase tracking-[0.3em] text-slate-400"), g.Text("Step")),
							Div(Class("text-4xl font-black tracking-tighter text-teal-600 italic"), g.Text(s.Step)),
						),
						H3(Class("text-2xl font-black mb-4 tracking-tight"), g.Text(s.Title)),
						P(Class("text-slate-500 font-medium leading-relaxed mb-8"), g.Text(s.Desc)),
						Div(Class("space-y-4 pt-6 border-t border-slate-200"), g.Group(g.Map(s.Bullets, components.CheckBullet))),
					)
				})),
			),
		),
	)
}

func featuresSection(l *models.Landing) g.Node {
	return Section(
		ID("features"),
		Class("py-32 px-6 bg-white"),
		Div(
			Class("container mx-auto"),
			Div(
				Class("flex flex-col md:flex-row justify-between items-end gap-10 mb-20"),
				Div(
					Class("max-w-2xl"),
					H2(Class("text-4xl md:text-6xl font-black mb-6 tracking-tighter"), g.Text("Everything under one hood.")),
					P(Class("text-xl text-slate-500 font-medium"), g.Text("We've built a full-stack automation layer that handles the heavy lifting, so you can focus on being an entrepreneur.")),
				),
				A(Href("#how"), Class("bg-slate-100 text-slate-900 px-8 py-4 rounded-xl font-black text-sm uppercase tracking-widest hover:bg-teal-50 hover:text-teal-600 transition-all"), g.Text("How It Works")),
			),
			Div(
				Class("grid md:grid-cols-3 gap-10"),
				g.Group(g.Map(l.Features, func(f models.Feature) g.Node {
					return Div(
						Class("p-10 rounded-[3rem] bg-slate-50 border border-slate-100 hover:border-teal-200 hover:bg-white hover:shadow-2xl transition-all group duration-500 flex flex-col h-full"),
						Div(
							Class("mb-8 p-5 rounded-[1.5rem] bg-white w-fit shadow-md text-teal-600 group-hover:bg-teal-600 group-hover:text-white transition-all transform group-hover:rotate-6"),
							components.FeatureIcon(f.Icon, "w-10 h-10"),
						),
						H3(Class("text-2xl font-black mb-6 tracking-tight italic group-hover:text-teal-700"), g.Text(f.Title)),
						P(Class("text-slate-500 mb-8 font-medium leading-relaxed flex-grow"), g.Text(f.Description)),
						Div(Class("space-y-4 pt-6 border-t border-slate-100"), g.Group(g.Map(f.Details, components.CheckBullet))),
					)
				})),
			),
			phoneAgentDemo(l.Chat),
		),
	)
}

func phoneAgentDemo(chat []models.ChatMessage) g.Node {
	return Div(
		Class("mt-24 bg-slate-900 rounded-[4rem] p-10 md:p-20 text-white flex flex-col lg:flex-row items-center gap-16"),
		Div(
			Class("lg:w-1/3"),
			H4(Class("text-3xl font-black italic mb-6 leading-tight uppercase"), g.Text("AI Phone Agent:"), Br(), g.Text("Your New Best Employee")),
			P(Class("text-slate-400 font-medium mb-8"), g.Text("RetailNexa answers your store phone 24/7. It provides store hours, directions, stock checks, and faq—letting your floor staff focus on real sales.")),
			A(Href("#contact"), Class("inline-block bg-teal-600 px-8 py-4 rounded-2xl font-black text-sm uppercase tracking-widest shadow-xl shadow-teal-900 hover:bg-teal-500 transition-colors"), g.Text("Request a Demo")),
		),
		Div(
			Class("lg:w-2/3 grid grid-cols-1 md:grid-cols-2 gap-4 w-full"),
			g.Group(g.Map(chat, func(m models.ChatMessage) g.Node {
				bubble, sender := "bg-slate-800 border-slate-700", "text-slate-400"
				if m.Bot {
					bubble, sender = "bg-teal-950/30 border-teal-500/30", "text-teal-400"
				}
				return Div(
					Class("p-6 rounded-2xl border relative "+bubble),
					Div(Class("text-[10px] font-black uppercase mb-2 "+sender), g.Text(m.Sender)),
					P(Class("text-sm font-medium italic"), g.Text(`"`+m.Text+`"`)),
				)
			})),
		),
	)
}

func segmentsSection(l *models.Landing) g.Node {
	return Section(
		Class("py-32 bg-[#020617] text-white overflow-hidden relative"),
		Div(
			Class("container mx-auto px-6 text-center relative z-10"),
			H2(Class("text-4xl md:text-7xl font-black mb-16 tracking-tighter uppercase italic"), g.Text("Built for the Backbone")),
			Div(
				Class("flex flex-wrap justify-center gap-6 max-w-5xl mx-auto"),
				g.Group(g.Map(l.Segments, func(s string) g.Node {
					return Div(
						Class("bg-white/5 px-8 py-6 rounded-3xl border border-white/10 hover:border-teal-500 hover:bg-teal-500/10 transition-all cursor-default group"),
						Span(Class("text-xl md:text-3xl font-black tracking-tight text-slate-300 group-hover:text-white transition-colors"), g.Text(s)),
					)
				})),
			),
			Div(
				Class("mt-20 flex flex-wrap justify-center gap-12 opacity-40 grayscale hover:grayscale-0 transition-all"),
				g.Group(g.Map(l.POSBrands, func(b string) g.Node {
					return Span(Class("text-2xl font-black tracking-widest uppercase"), g.Text(b))
				})),
			),
		),
	)
}

func pricingSection(l *models.Landing) g.Node {
	return Section(
		ID("pricing"),
		Class("py-32 px-6 bg-white relative"),
		Div(
			Class("container mx-auto"),
			sectionIntro("Simple Monthly Plans", "Buy back your time.", "italic uppercase",
				"Start small, then scale into full automation as you grow."),
			Div(
				Class("grid md:grid-cols-3 gap-10 max-w-6xl mx-auto"),
				g.Group(g.Map(l.Plans, planCard)),
			),
		),
	)
}

func planCard(p models.Plan) g.Node {
	card := "bg-slate-50 border border-slate-200 text-slate-900"
	period, tick, feat := "text-slate-500", "bg-teal-100 text-teal-600", "text-slate-600"
	cta := "bg-white text-slate-900 border-2 border-slate-200 hover:border-teal-600 hover:text-teal-600"
	if p.Highlighted {
		card = "bg-slate-900 text-white shadow-[0_40px_80px_-20px_rgba(13,148,136,0.3)] scale-105 z-10"
		period, tick, feat = "text-teal-400", "bg-teal-500/20 text-teal-400", "text-slate-300"
		cta = "bg-teal-600 text-white hover:bg-teal-500"
	}

	return Div(
		Class("p-12 rounded-[3.5rem] relative transition-all duration-500 hover:-translate-y-4 "+card),
		g.If(p.Highlighted, Div(Class("absolute -top-5 left-1/2 -translate-x-1/2 bg-teal-600 text-white px-6 py-2 rounded-full text-xs font-black uppercase tracking-widest shadow-xl"), g.Text("Best Value"))),
		H3(Class("text-3xl font-black mb-2 italic tracking-tight"), g.Text(p.Name)),
		Div(
			Class("flex items-baseline gap-2 mb-10"),
			Span(Class("text-6xl font-black tracking-tighter"), g.Text(p.Price)),
			Span(Class("text-sm font-black uppercase tracking-widest "+period), g.Text("/MO")),
		),
		Ul(
			Class("space-y-6 mb-12"),
			g.Group(g.Map(p.Features, func(f string) g.Node {
				return Li(
					Class("flex gap-4 items-center text-sm font-bold"),
					Div(Class("w-6 h-6 rounded-full flex items-center justify-center shrink-0 "+tick), components.CheckIcon("w-3.5 h-3.5")),
					Span(Class(feat), g.Text(f)),
				)
			})),
		),
		A(Href("#contact"), Class("block text-center w-full py-5 rounded-2xl font-black text-lg transition-all transform active:scale-95 shadow-xl "+cta), g.Text(p.CTA)),
	)
}

func faqSection(l *models.Landing) g.Node {
	return Section(
		ID("faq"),
		Class("py-32 px-6 bg-white"),
		Div(
			Class("container mx-auto"),
			sectionIntro("FAQ", "Answers, not fluff.", "",
				"Built for owners and operators — simple setup, real automation, and clear accountability."),
			Div(
				Class("grid lg:grid-cols-2 gap-8 max-w-6xl mx-auto"),
				g.Group(g.Map(l.FAQs, func(f models.FAQ) g.Node {
					return Div(
						Class("p-10 rounded-[3rem] bg-slate-50 border border-slate-200 hover:bg-white hover:border-teal-200 hover:shadow-xl transition-all"),
						H3(Class("text-xl font-black mb-4 tracking-tight"), g.Text(f.Question)),
						P(Class("text-slate-500 font-medium leading-relaxed"), g.Text(f.Answer)),
					)
				})),
			),
		),
	)
}

func contactSection(ctx context.Context, l *models.Landing, lead models.LeadFormView) g.Node {
	t := func(key string) string { return i18n.T(ctx, key) }
	return Section(
		ID("contact"),
		Class("py-32 px-6 bg-white overflow-hidden"),
		Div(
			Class("container mx-auto max-w-6xl bg-slate-900 rounded-[4rem] p-12 md:p-24 text-center text-white relative shadow-[0_50px_100px_-20px_rgba(0,0,0,0.5)]"),
			Div(Class("absolute inset-0 bg-gradient-to-br from-teal-500/10 to-transparent pointer-events-none")),
			Div(Class("absolute top-0 right-0 w-96 h-96 bg-teal-500/10 rounded-full -translate-y-1/2 translate-x-1/2 blur-[100px]")),
			H2(
				Class("text-5xl md:text-8xl font-black mb-10 tracking-tighter leading-none italic uppercase"),
				g.Text(t("contact.title")), Br(),
				Span(Class("text-teal-500 italic lowercase"), g.Text(t("contact.title_accent"))),
			),
			P(Class("text-xl md:text-2xl mb-14 text-slate-400 max-w-3xl mx-auto font-medium leading-relaxed"), g.Text(t("contact.intro"))),
			Div(
				Class("max-w-3xl mx-auto grid md:grid-cols-3 gap-6 mb-14 text-left"),
				g.Group(g.Map(l.ValueCards, func(c models.ValueCard) g.Node {
					return Div(
						Class("bg-white/5 border border-white/10 rounded-3xl p-8"),
						Div(Class("text-xs font-black uppercase tracking-[0.3em] text-teal-300 mb-3"), g.Text(c.Title)),
						Div(Class("text-sm text-slate-300 font-medium leading-relaxed"), g.Text(c.Desc)),
					)
				})),
			),
			Div(Class("max-w-4xl mx-auto text-left relative z-10"), LeadForm(ctx, lead)),
			P(Class("mt-12 text-slate-500 text-sm font-black uppercase tracking-[0.3em]"), g.Text(t("contact.footnote"))),
		),
	)
}
