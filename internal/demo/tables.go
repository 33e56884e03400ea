package demo

import (
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/catalogue"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/theme"
)

var (
	dataFrameHeaders = []string{"", "Nombre", "Edad"}
	dataFrameRows    = [][]string{
		{"0", "Ana", "23"},
		{"1", "Luis", "30"},
	}

	seriesValues = []int{10, 20, 30}
)

func renderDataFrame(_ catalogue.TopicRecord, width int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		caption("df"),
		newTable(dataFrameHeaders, dataFrameRows, width),
	)
}

func renderSeries(_ catalogue.TopicRecord, width int) string {
	rows := make([][]string, len(seriesValues))
	for i, v := range seriesValues {
		rows[i] = []string{strconv.Itoa(i), strconv.Itoa(v)}
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		caption("serie"),
		newTable([]string{"", "0"}, rows, width),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("dtype: int64"),
	)
}

// newTable styles a pandas-like table: index column dimmed, header bold.
func newTable(headers []string, rows [][]string, width int) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Padding(0, 1)
	indexStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return indexStyle
			default:
				return cellStyle
			}
		})

	out := t.String()
	if lipgloss.Width(out) > width {
		t = t.Width(width)
		out = t.String()
	}
	return out
}
