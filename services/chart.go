package services

import (
	"math"
	"strconv"
	"strings"
	"time"

	"retailnexa_site/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Plot padding inside the SVG viewport
const (
	chartPadLeft   = 44.0
	chartPadRight  = 12.0
	chartPadTop    = 12.0
	chartPadBottom = 28.0
	chartTickCount = 5
)

// ChartTick is a labeled horizontal grid line
type ChartTick struct {
	Value float64
	Y     float64
	Label string
}

// ChartLabel is an X axis label centered on a sample
type ChartLabel struct {
	X     float64
	Label string
}

// Discrepancy is a slot where the bank settled less than the POS reported
type Discrepancy struct {
	Name    string
	Sales   float64
	Deposit float64
	Gap     float64
}

// Summary renders the discrepancy the way the dashboard banner states it,
// e.g. "12:00PM: POS shows $980. Bank settled $800. Missing $180."
func (d Discrepancy) Summary() string {
	return slotLabel(d.Name) + ": POS shows " + FormatCurrency(d.Sales, false) +
		". Bank settled " + FormatCurrency(d.Deposit, false) +
		". Missing " + FormatCurrency(d.Gap, false) + "."
}

// SalesChart is the geometry of the POS sales vs bank deposit area chart
type SalesChart struct {
	Width       float64
	Height      float64
	PlotLeft    float64
	PlotRight   float64
	BaselineY   float64
	SalesLine   string // SVG path data
	SalesArea   string
	DepositLine string
	DepositArea string
	YTicks      []ChartTick
	XLabels     []ChartLabel

	Discrepancies []Discrepancy
	AtRisk        float64 // Sum of all gaps
	Largest       *Discrepancy
}

// BuildSalesChart projects the series onto a width x height viewport. Both
// series share one Y scale starting at zero; curves use monotone cubic
// interpolation so they never overshoot a sample.
func BuildSalesChart(series []models.SalesPoint, width, height float64) SalesChart {
	chart := SalesChart{
		Width:     width,
		Height:    height,
		PlotLeft:  chartPadLeft,
		PlotRight: width - chartPadRight,
		BaselineY: height - chartPadBottom,
	}
	chart.Discrepancies, chart.AtRisk, chart.Largest = findDiscrepancies(series)
	if len(series) == 0 {
		return chart
	}

	maxValue := 0.0
	for _, p := range series {
		maxValue = math.Max(maxValue, math.Max(p.Sales, p.Deposit))
	}
	step := niceStep(maxValue / float64(chartTickCount-1))
	top := math.Ceil(maxValue/step) * step
	if top == 0 {
		top = step
	}

	plotW := width - chartPadLeft - chartPadRight
	plotH := height - chartPadTop - chartPadBottom
	xAt := func(i int) float64 {
		if len(series) == 1 {
			return chartPadLeft + plotW/2
		}
		return chartPadLeft + plotW*float64(i)/float64(len(series)-1)
	}
	yAt := func(v float64) float64 {
		return chartPadTop + plotH*(1-v/top)
	}

	for v := 0.0; v <= top+step/2; v += step {
		chart.YTicks = append(chart.YTicks, ChartTick{Value: v, Y: yAt(v), Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}

	sales := make([]point, len(series))
	deposits := make([]point, len(series))
	for i, p := range series {
		x := xAt(i)
		sales[i] = point{x, yAt(p.Sales)}
		deposits[i] = point{x, yAt(p.Deposit)}
		chart.XLabels = append(chart.XLabels, ChartLabel{X: x, Label: p.Name})
	}

	chart.SalesLine = monotonePath(sales)
	chart.SalesArea = areaPath(chart.SalesLine, sales, chart.BaselineY)
	chart.DepositLine = monotonePath(deposits)
	chart.DepositArea = areaPath(chart.DepositLine, deposits, chart.BaselineY)
	return chart
}

func findDiscrepancies(series []models.SalesPoint) ([]Discrepancy, float64, *Discrepancy) {
	var (
		found   []Discrepancy
		total   float64
		largest = -1
	)
	for _, p := range series {
		if p.Deposit >= p.Sales {
			continue
		}
		d := Discrepancy{Name: p.Name, Sales: p.Sales, Deposit: p.Deposit, Gap: p.Sales - p.Deposit}
		total += d.Gap
		if largest < 0 || d.Gap > found[largest].Gap {
			largest = len(found)
		}
		found = append(found, d)
	}
	if largest < 0 {
		return found, total, nil
	}
	top := found[largest]
	return found, total, &top
}

// niceStep rounds a raw tick interval up to 1, 2, 2.5 or 5 times a power of ten
func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	magnitude := math.Pow(10, math.Floor(math.Log10(raw)))
	normalized := raw / magnitude
	for _, n := range []float64{1, 2, 2.5, 5} {
		if normalized <= n {
			return n * magnitude
		}
	}
	return 10 * magnitude
}

type point struct{ X, Y float64 }

// monotoneTangents computes Fritsch-Carlson style tangents: zero at local
// extrema, bounded by the neighboring secants elsewhere.
func monotoneTangents(pts []point) []float64 {
	n := len(pts)
	m := make([]float64, n)
	if n < 2 {
		return m
	}
	secant := make([]float64, n-1)
	width := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		width[i] = pts[i+1].X - pts[i].X
		if width[i] != 0 {
			secant[i] = (pts[i+1].Y - pts[i].Y) / width[i]
		}
	}
	if n == 2 {
		m[0], m[1] = secant[0], secant[0]
		return m
	}

	for i := 1; i < n-1; i++ {
		s0, s1 := secant[i-1], secant[i]
		if s0*s1 <= 0 {
			continue
		}
		p := (s0*width[i] + s1*width[i-1]) / (width[i-1] + width[i])
		mag := math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
		m[i] = 2 * math.Copysign(mag, s0)
	}
	m[0] = (3*secant[0] - m[1]) / 2
	m[n-1] = (3*secant[n-2] - m[n-2]) / 2
	return m
}

func monotonePath(pts []point) string {
	if len(pts) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("M" + coord(pts[0].X) + "," + coord(pts[0].Y))
	m := monotoneTangents(pts)
	for i := 0; i < len(pts)-1; i++ {
		p0, p1 := pts[i], pts[i+1]
		dx := (p1.X - p0.X) / 3
		b.WriteString(" C" + coord(p0.X+dx) + "," + coord(p0.Y+dx*m[i]) +
			" " + coord(p1.X-dx) + "," + coord(p1.Y-dx*m[i+1]) +
			" " + coord(p1.X) + "," + coord(p1.Y))
	}
	return b.String()
}

func areaPath(line string, pts []point, baseline float64) string {
	if len(pts) == 0 {
		return ""
	}
	last, first := pts[len(pts)-1], pts[0]
	return line + " L" + coord(last.X) + "," + coord(baseline) +
		" L" + coord(first.X) + "," + coord(baseline) + " Z"
}

func coord(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency formats v as US dollars with thousands separators, e.g.
// "$5,641.20" with cents or "$1,450" without. Negative values get a leading
// minus sign ("-$330.00").
func FormatCurrency(v float64, cents bool) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	if cents {
		return sign + "$" + currencyPrinter.Sprintf("%.2f", v)
	}
	return sign + "$" + currencyPrinter.Sprintf("%d", int64(math.Round(v)))
}

// slotLabel turns a 24h "15:04" sample name into "3:04PM"; anything else is
// returned unchanged.
func slotLabel(name string) string {
	t, err := time.Parse("15:04", name)
	if err != nil {
		return name
	}
	return t.Format("3:04PM")
}
