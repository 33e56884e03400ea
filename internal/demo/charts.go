package demo

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/catalogue"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/theme"
)

const (
	plotRows  = 8
	pointMark = '●'
	lineMark  = '·'
)

var (
	barLabels = []string{"A", "B", "C"}
	barValues = []float64{10, 20, 15}

	histData = []float64{1, 2, 2, 3, 3, 3, 4, 4, 5}
	histBins = 5

	trendX = []float64{1, 2, 3, 4}
	trendY = []float64{10, 20, 25, 30}

	heatData = [][]float64{{1, 2}, {3, 4}}
)

func renderBar(_ catalogue.TopicRecord, width int) string {
	labelWidth := 0
	for _, l := range barLabels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}
	maxV := maxOf(barValues)
	// label + space + bar + space + value
	barWidth := max(width-labelWidth-6, 4)

	fill := lipgloss.NewStyle().Foreground(theme.Secondary)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	lines := []string{caption("Gráfico de barras")}
	for i, v := range barValues {
		n := scaleTo(v, maxV, barWidth)
		lines = append(lines, fmt.Sprintf("%-*s %s %s",
			labelWidth, barLabels[i],
			fill.Render(strings.Repeat("█", n)),
			dim.Render(formatValue(v))))
	}
	return strings.Join(lines, "\n")
}

func renderHistogram(_ catalogue.TopicRecord, width int) string {
	counts, lo, _ := histogram(histData, histBins)
	maxC := 0
	for _, c := range counts {
		maxC = max(maxC, c)
	}

	colWidth := max(min((width-4)/len(counts), 6), 2)
	fill := lipgloss.NewStyle().Foreground(theme.Accent)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	rows := min(plotRows, maxC*2)
	lines := []string{caption("Histograma")}
	for r := rows; r >= 1; r-- {
		var b strings.Builder
		b.WriteString(dim.Render(fmt.Sprintf("%2s│", axisTick(r, rows, maxC))))
		for _, c := range counts {
			cell := strings.Repeat(" ", colWidth)
			if scaleTo(float64(c), float64(maxC), rows) >= r {
				cell = strings.Repeat("█", colWidth-1) + " "
			}
			b.WriteString(fill.Render(cell))
		}
		lines = append(lines, b.String())
	}
	lines = append(lines, dim.Render("  └"+strings.Repeat("─", colWidth*len(counts))))
	lines = append(lines, dim.Render(fmt.Sprintf("   %s … %s",
		formatValue(lo), formatValue(maxOf(histData)))))
	return strings.Join(lines, "\n")
}

func renderLine(_ catalogue.TopicRecord, width int) string {
	return renderPlot("Gráfico de líneas", trendX, trendY, width, true)
}

func renderScatter(_ catalogue.TopicRecord, width int) string {
	return renderPlot("Gráfico de dispersión", trendX, trendY, width, false)
}

func renderPlot(title string, xs, ys []float64, width int, connect bool) string {
	cols := max(min(width-6, 40), 8)
	grid := plot(xs, ys, cols, plotRows, connect)

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	point := lipgloss.NewStyle().Foreground(theme.Primary)

	lo, hi := minOf(ys), maxOf(ys)
	lines := []string{caption(title)}
	for i, row := range grid {
		tick := ""
		switch i {
		case 0:
			tick = formatValue(hi)
		case len(grid) - 1:
			tick = formatValue(lo)
		}
		lines = append(lines, dim.Render(fmt.Sprintf("%3s│", tick))+point.Render(row))
	}
	lines = append(lines, dim.Render("   └"+strings.Repeat("─", cols)))
	lines = append(lines, dim.Render(fmt.Sprintf("    %s%*s",
		formatValue(minOf(xs)), cols-1, formatValue(maxOf(xs)))))
	return strings.Join(lines, "\n")
}

func renderHeatmap(_ catalogue.TopicRecord, _ int) string {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, row := range heatData {
		lo = min(lo, minOf(row))
		hi = max(hi, maxOf(row))
	}

	lines := []string{caption("Mapa de calor")}
	for _, row := range heatData {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = lipgloss.NewStyle().
				Background(heatColor(v, lo, hi)).
				Foreground(theme.BgDark).
				Bold(true).
				Width(7).
				Align(lipgloss.Center).
				Render(formatValue(v))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(lines, "\n")
}

// heatPalette runs from low to high intensity.
var heatPalette = []string{"#1E3A8A", "#2563EB", "#14B8A6", "#FACC15", "#F97316"}

func heatColor(v, lo, hi float64) color.Color {
	i := 0
	if hi > lo {
		i = int(math.Round((v - lo) / (hi - lo) * float64(len(heatPalette)-1)))
	}
	return lipgloss.Color(heatPalette[i])
}

// histogram splits data into bins equal-width intervals over [min, max].
// The last interval is closed. It returns the counts, the lower bound and
// the interval width.
func histogram(data []float64, bins int) ([]int, float64, float64) {
	counts := make([]int, bins)
	if len(data) == 0 || bins <= 0 {
		return counts, 0, 0
	}
	lo, hi := minOf(data), maxOf(data)
	step := (hi - lo) / float64(bins)
	for _, v := range data {
		i := bins - 1
		if step > 0 {
			i = min(int((v-lo)/step), bins-1)
		}
		counts[i]++
	}
	return counts, lo, step
}

// plot places the points on a cols x rows character grid, row 0 at the top.
// With connect set, consecutive points are joined.
func plot(xs, ys []float64, cols, rows int, connect bool) []string {
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}

	xlo, xhi := minOf(xs), maxOf(xs)
	ylo, yhi := minOf(ys), maxOf(ys)
	toCell := func(x, y float64) (int, int) {
		c := project(x, xlo, xhi, cols-1)
		r := rows - 1 - project(y, ylo, yhi, rows-1)
		return c, r
	}

	n := min(len(xs), len(ys))
	if connect {
		for i := 1; i < n; i++ {
			c0, r0 := toCell(xs[i-1], ys[i-1])
			c1, r1 := toCell(xs[i], ys[i])
			steps := max(abs(c1-c0), abs(r1-r0))
			for s := 1; s < steps; s++ {
				c := c0 + (c1-c0)*s/steps
				r := r0 + (r1-r0)*s/steps
				grid[r][c] = lineMark
			}
		}
	}
	for i := 0; i < n; i++ {
		c, r := toCell(xs[i], ys[i])
		grid[r][c] = pointMark
	}

	out := make([]string, rows)
	for i, row := range grid {
		out[i] = string(row)
	}
	return out
}

func project(v, lo, hi float64, span int) int {
	if hi <= lo {
		return 0
	}
	return int(math.Round((v - lo) / (hi - lo) * float64(span)))
}

func scaleTo(v, maxV float64, span int) int {
	if maxV <= 0 {
		return 0
	}
	return int(math.Round(v / maxV * float64(span)))
}

func axisTick(r, rows, maxC int) string {
	if r != rows {
		return ""
	}
	return fmt.Sprint(maxC)
}

func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

func minOf(vs []float64) float64 {
	m := math.Inf(1)
	for _, v := range vs {
		m = min(m, v)
	}
	return m
}

func maxOf(vs []float64) float64 {
	m := math.Inf(-1)
	for _, v := range vs {
		m = max(m, v)
	}
	return m
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
