package pages

import (
	"strconv"

	"retailnexa_site/models"
	"retailnexa_site/services"
	"retailnexa_site/templates/components"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	chartWidth  = 600
	chartHeight = 256
)

// DashboardPreview is the mock operator dashboard shown under the hero
func DashboardPreview(d models.Dashboard) g.Node {
	chart := services.BuildSalesChart(d.Series, chartWidth, chartHeight)

	return Div(
		ID("dashboard-preview"),
		Class("bg-white rounded-[2rem] shadow-[0_32px_64px_-16px_rgba(13,148,136,0.2)] border border-slate-200 overflow-hidden w-full max-w-5xl mx-auto transform transition-all hover:scale-[1.01] text-left"),
		windowBar(),
		Div(
			Class("p-8 grid grid-cols-1 md:grid-cols-4 gap-6 bg-slate-50/50"),
			Div(
				Class("md:col-span-1 space-y-4"),
				Div(
					Class("bg-white p-5 rounded-2xl border border-slate-200 shadow-sm hover:shadow-md transition-shadow"),
					P(Class("text-slate-500 text-[10px] font-bold uppercase tracking-wider"), g.Text("Total Sales Today")),
					H3(Class("text-2xl font-black text-slate-900 mt-1"), g.Text(d.TotalSalesToday)),
					Div(Class("flex items-center gap-1 text-emerald-600 text-[11px] font-bold mt-2"), g.Text(d.SalesTrend)),
				),
				Div(
					ID("profit-at-risk"),
					Class("bg-white p-5 rounded-2xl border-l-4 border-l-rose-500 border border-slate-200 shadow-sm"),
					P(Class("text-slate-500 text-[10px] font-bold uppercase tracking-wider"), g.Text("Profit at Risk")),
					H3(Class("text-2xl font-black text-rose-600 mt-1"), g.Text(services.FormatCurrency(-chart.AtRisk, true))),
					P(Class("text-rose-400 text-[11px] font-medium mt-2 leading-tight"), g.Text(unverifiedLabel(len(chart.Discrepancies)))),
				),
				Div(
					Class("bg-teal-900 p-5 rounded-2xl shadow-lg shadow-teal-900/20 text-white"),
					Div(
						Class("flex justify-between items-start mb-4"),
						P(Class("text-teal-400 text-[10px] font-bold uppercase tracking-wider"), g.Text("Inventory Health")),
						Div(Class("bg-teal-400/20 px-2 py-0.5 rounded text-[9px] font-bold text-teal-300"), g.Text(d.InventoryHealth)),
					),
					Div(
						Class("relative h-2 bg-teal-800 rounded-full overflow-hidden mb-2"),
						Div(Class("absolute left-0 h-full bg-teal-400 rounded-full"), Style("width: "+strconv.Itoa(d.InventoryLevel)+"%")),
					),
					P(Class("text-[11px] text-teal-200"), g.Text(d.ReorderNote)),
				),
			),
			Div(
				Class("md:col-span-3 bg-white p-6 rounded-3xl border border-slate-200 shadow-sm relative overflow-hidden"),
				Div(
					Class("flex justify-between items-center mb-8"),
					Div(
						H4(Class("text-lg font-black text-slate-800"), g.Text("AI Integrity Monitor")),
						P(Class("text-xs text-slate-500 font-medium"), g.Text("Real-time mapping: POS transactions vs. bank settlement")),
					),
					Div(
						Class("flex gap-4"),
						legendItem("bg-teal-500", "POS Sales"),
						legendItem("bg-rose-500", "Bank Deposit"),
					),
				),
				Div(Class("h-64 w-full"), salesChartSVG(chart)),
				g.Iff(chart.Largest != nil, func() g.Node { return discrepancyBanner(chart.Largest) }),
			),
		),
	)
}

func unverifiedLabel(n int) string {
	if n == 1 {
		return "1 unverified bank deposit detected"
	}
	return strconv.Itoa(n) + " unverified bank deposits detected"
}

func windowBar() g.Node {
	return Div(
		Class("bg-slate-900 px-6 py-4 flex items-center justify-between"),
		Div(
			Class("flex gap-2"),
			Div(Class("w-3 h-3 rounded-full bg-rose-500 shadow-sm shadow-rose-500/50")),
			Div(Class("w-3 h-3 rounded-full bg-amber-500 shadow-sm shadow-amber-500/50")),
			Div(Class("w-3 h-3 rounded-full bg-teal-500 shadow-sm shadow-teal-500/50")),
		),
		Div(
			Class("flex items-center gap-3"),
			Div(Class("h-2 w-32 bg-slate-800 rounded-full overflow-hidden"), Div(Class("h-full bg-teal-500 w-3/4 animate-pulse"))),
			Span(Class("text-slate-400 text-[10px] font-bold tracking-[0.2em] uppercase"), g.Text("AI Engine Live • 99.9% Uptime")),
		),
		Div(Class("w-10 h-10 rounded-full bg-slate-800 border border-slate-700 flex items-center justify-center text-teal-400 font-bold text-xs"), g.Text("JD")),
	)
}

func legendItem(dot, label string) g.Node {
	return Div(
		Class("flex items-center gap-2"),
		Div(Class("w-2 h-2 rounded-full "+dot)),
		Span(Class("text-[10px] font-bold text-slate-400 uppercase"), g.Text(label)),
	)
}

func discrepancyBanner(d *services.Discrepancy) g.Node {
	return Div(
		ID("discrepancy-banner"),
		Class("mt-6 flex items-center justify-between p-4 bg-rose-50 rounded-2xl border border-rose-100 animate-pulse"),
		Div(
			Class("flex items-center gap-3"),
			Div(Class("w-10 h-10 bg-rose-100 rounded-full flex items-center justify-center text-rose-600"), components.WarningIcon("w-5 h-5")),
			Div(
				P(Class("text-[13px] font-black text-rose-900 leading-none"), g.Text("High-Risk Discrepancy Found")),
				P(Class("text-[11px] text-rose-700 mt-1"), g.Text(d.Summary())),
			),
		),
		Span(Class("bg-rose-600 text-white text-[10px] px-4 py-2 rounded-lg font-black uppercase tracking-wider"), g.Text("Investigate")),
	)
}

func svgEl(name string, children ...g.Node) g.Node {
	return g.El(name, children...)
}

func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func gradient(id, color, top string) g.Node {
	return svgEl("linearGradient", ID(id), g.Attr("x1", "0"), g.Attr("y1", "0"), g.Attr("x2", "0"), g.Attr("y2", "1"),
		svgEl("stop", g.Attr("offset", "5%"), g.Attr("stop-color", color), g.Attr("stop-opacity", top)),
		svgEl("stop", g.Attr("offset", "95%"), g.Attr("stop-color", color), g.Attr("stop-opacity", "0")),
	)
}

// salesChartSVG draws the POS sales and bank deposit series as stacked areas
// over a dashed grid.
func salesChartSVG(c services.SalesChart) g.Node {
	axisText := func(x, y float64, anchor, label string) g.Node {
		return svgEl("text",
			g.Attr("x", fmtNum(x)), g.Attr("y", fmtNum(y)),
			g.Attr("text-anchor", anchor),
			g.Attr("font-size", "10"), g.Attr("font-weight", "600"), g.Attr("fill", "#94a3b8"),
			g.Text(label),
		)
	}

	return SVG(
		Class("w-full h-full"),
		g.Attr("viewBox", "0 0 "+fmtNum(c.Width)+" "+fmtNum(c.Height)),
		g.Attr("preserveAspectRatio", "none"),
		g.Attr("role", "img"),
		Aria("label", "POS sales versus bank deposits"),
		svgEl("defs",
			gradient("chartTeal", "#0d9488", "0.15"),
			gradient("chartRose", "#f43f5e", "0.1"),
		),
		g.Group(g.Map(c.YTicks, func(t services.ChartTick) g.Node {
			return g.Group{
				svgEl("line",
					g.Attr("x1", fmtNum(c.PlotLeft)), g.Attr("x2", fmtNum(c.PlotRight)),
					g.Attr("y1", fmtNum(t.Y)), g.Attr("y2", fmtNum(t.Y)),
					g.Attr("stroke", "#f1f5f9"), g.Attr("stroke-dasharray", "3 3"),
				),
				axisText(c.PlotLeft-8, t.Y+3, "end", t.Label),
			}
		})),
		g.Group(g.Map(c.XLabels, func(l services.ChartLabel) g.Node {
			return axisText(l.X, c.Height-8, "middle", l.Label)
		})),
		svgEl("path", g.Attr("d", c.SalesArea), g.Attr("fill", "url(#chartTeal)"), g.Attr("stroke", "none")),
		svgEl("path", g.Attr("d", c.SalesLine), g.Attr("fill", "none"), g.Attr("stroke", "#0d9488"), g.Attr("stroke-width", "4")),
		svgEl("path", g.Attr("d", c.DepositArea), g.Attr("fill", "url(#chartRose)"), g.Attr("stroke", "none")),
		svgEl("path", g.Attr("d", c.DepositLine), g.Attr("fill", "none"), g.Attr("stroke", "#f43f5e"), g.Attr("stroke-width", "2"), g.Attr("stroke-dasharray", "5 5")),
	)
}
