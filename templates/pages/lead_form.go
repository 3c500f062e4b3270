package pages

import (
	"context"

	"retailnexa_site/middleware"
	"retailnexa_site/models"
	"retailnexa_site/services/i18n"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// LeadFormID is the element HTMX swaps on submit
const LeadFormID = "lead-form"

const (
	fieldLabelClass = "block text-xs font-black uppercase tracking-widest text-slate-300 mb-2"
	fieldInputClass = "w-full bg-slate-950/40 border border-white/10 rounded-2xl px-5 py-4 text-white placeholder:text-slate-500 font-bold focus:outline-none focus:ring-2 focus:ring-teal-500/60"
	fieldErrorClass = " ring-2 ring-rose-400/70"
)

// LeadForm renders the demo / early-access form card. It is also the HTMX
// fragment returned by POST /lead.
func LeadForm(ctx context.Context, v models.LeadFormView) g.Node {
	f := v.Form
	t := func(key string) string { return i18n.T(ctx, key) }

	inputClass := func(field string) string {
		if v.ErrorField == field {
			return fieldInputClass + fieldErrorClass
		}
		return fieldInputClass
	}

	return Div(
		ID(LeadFormID),
		Class("bg-white/5 border border-white/10 rounded-[2.5rem] p-8 md:p-12"),
		Div(
			Class("flex flex-col md:flex-row md:items-end md:justify-between gap-6 mb-10"),
			Div(
				Div(Class("text-xs font-black uppercase tracking-[0.3em] text-teal-300 mb-3"), g.Text(t("lead.eyebrow"))),
				H3(Class("text-3xl md:text-4xl font-black tracking-tight"), g.Text(t("lead.title"))),
			),
			A(Class("text-teal-300 font-black uppercase tracking-widest text-xs hover:text-teal-200 transition-colors"), Href("#pricing"), g.Text(t("lead.view_pricing"))),
		),
		Form(
			Method("post"),
			Action("/lead#contact"),
			hx.Post("/lead"),
			hx.Target("#"+LeadFormID),
			hx.Swap("outerHTML"),
			Class("grid md:grid-cols-2 gap-6"),
			Input(Type("hidden"), Name(middleware.CSRFFormField), Value(v.CSRFToken)),

			textField("fullName", t("lead.label.full_name"), t("lead.placeholder.full_name"), "text", f.FullName, inputClass("fullName"), true),
			textField("email", t("lead.label.email"), t("lead.placeholder.email"), "email", f.Email, inputClass("email"), true),
			textField("businessName", t("lead.label.business_name"), t("lead.placeholder.business_name"), "text", f.BusinessName, fieldInputClass, false),
			textField("phone", t("lead.label.phone"), t("lead.placeholder.phone"), "tel", f.Phone, fieldInputClass, false),

			selectField("locations", t("lead.label.locations"), models.LocationOptions, f.Locations, func(o string) string { return o }),
			selectField("pos", t("lead.label.pos"), models.POSOptions, f.POS, func(o string) string {
				if o == "" {
					return t("lead.placeholder.pos")
				}
				return o
			}),

			Div(
				Class("md:col-span-2"),
				Span(Class(fieldLabelClass), g.Text(t("lead.label.request_type"))),
				Div(
					Class("grid sm:grid-cols-2 gap-4"),
					g.Group(g.Map(models.RequestTypes, func(rt string) g.Node {
						return Label(
							Class("flex items-center gap-3 bg-slate-950/40 border border-white/10 rounded-2xl px-5 py-4 font-bold cursor-pointer"),
							Input(Type("radio"), Name("requestType"), Value(rt), g.If(f.RequestType == rt, Checked())),
							Span(Class("text-slate-200"), g.Text(t("lead.request_type."+rt))),
						)
					})),
				),
			),

			Div(
				Class("md:col-span-2"),
				Label(For("lead-message"), Class(fieldLabelClass), g.Text(t("lead.label.message"))),
				Textarea(
					ID("lead-message"),
					Name("message"),
					Class("w-full bg-slate-950/40 border border-white/10 rounded-[1.5rem] px-5 py-4 text-white placeholder:text-slate-500 font-bold min-h-[120px] focus:outline-none focus:ring-2 focus:ring-teal-500/60"),
					Placeholder(t("lead.placeholder.message")),
					// the parser drops one newline right after <textarea>
					g.Text("\n"+f.Message),
				),
			),

			Div(
				Class("md:col-span-2 flex flex-col sm:flex-row gap-4 sm:items-center sm:justify-between pt-2"),
				Div(
					Class("text-sm text-slate-400 font-medium"),
					Aria("live", "polite"),
					g.If(v.Error != "", Div(ID("lead-error"), g.Attr("role", "alert"), Class("text-rose-300 font-black"), g.Text(v.Error))),
					g.If(v.ShowFallbackLink(), Div(
						ID("lead-fallback"),
						Class("text-teal-200 font-black"),
						g.Text(t("lead.fallback_prefix")+" "),
						A(Class("underline"), Href(v.MailtoHref), g.Text(t("lead.fallback_link"))),
						g.Text("."),
					)),
				),
				Button(
					Type("submit"),
					Class("bg-teal-600 text-white px-10 py-5 rounded-2xl font-black text-lg hover:bg-teal-500 transition-all shadow-[0_20px_40px_-10px_rgba(13,148,136,0.35)] active:scale-95"),
					g.Text(t("lead.submit")),
				),
			),
		),
		Div(
			Class("mt-8 text-xs font-black uppercase tracking-[0.3em] text-slate-500"),
			g.Text(t("lead.direct")+" "),
			A(Class("text-teal-300 hover:text-teal-200 transition-colors"), Href("mailto:"+v.ContactEmail), g.Text(v.ContactEmail)),
		),
	)
}

func textField(name, label, placeholder, inputType, value, class string, required bool) g.Node {
	id := "lead-" + name
	return Div(
		Label(For(id), Class(fieldLabelClass), g.Text(label)),
		Input(
			ID(id),
			Type(inputType),
			Name(name),
			Value(value),
			Class(class),
			Placeholder(placeholder),
			g.If(required, Required()),
		),
	)
}

func selectField(name, label string, options []string, selected string, display func(string) string) g.Node {
	id := "lead-" + name
	return Div(
		Label(For(id), Class(fieldLabelClass), g.Text(label)),
		Select(
			ID(id),
			Name(name),
			Class("w-full bg-slate-950/40 border border-white/10 rounded-2xl px-5 py-4 text-white font-bold focus:outline-none focus:ring-2 focus:ring-teal-500/60"),
			g.Group(g.Map(options, func(o string) g.Node {
				return Option(Value(o), g.If(o == selected, Selected()), g.Text(display(o)))
			})),
		),
	)
}
