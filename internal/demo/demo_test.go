package demo

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/catalogue"
)

func TestDefault_CoversFlaggedSeedTopics(t *testing.T) {
	reg := Default()
	for _, rec := range catalogue.Default().Records() {
		_, ok := reg.Lookup(rec.ID())
		assert.Equal(t, rec.HasVisualDemo, ok, "renderer for %s", rec.ID())
	}
	assert.Equal(t, 7, reg.Len())
}

func TestRender_NoDemo(t *testing.T) {
	rec := catalogue.TopicRecord{Category: "A", Topic: "Variables"}
	assert.Empty(t, Default().Render(rec, 80))
}

func TestRender_FlaggedButUnregistered(t *testing.T) {
	rec := catalogue.TopicRecord{Category: "A", Topic: "Nuevo", HasVisualDemo: true}
	out := ansi.Strip(NewRegistry().Render(rec, 80))
	assert.Contains(t, out, "no disponible")
	assert.Contains(t, out, "Nuevo")
}

func TestRegister_Replaces(t *testing.T) {
	reg := NewRegistry()
	id := catalogue.NewTopicID("A", "x")
	reg.Register(id, RendererFunc(func(catalogue.TopicRecord, int) string { return "one" }))
	reg.Register(id, RendererFunc(func(catalogue.TopicRecord, int) string { return "two" }))

	rec := catalogue.TopicRecord{Category: "A", Topic: "x", HasVisualDemo: true}
	assert.Equal(t, "two", reg.Render(rec, 80))
	assert.Equal(t, 1, reg.Len())
}

func TestRender_NarrowWidthIsClamped(t *testing.T) {
	var got int
	reg := NewRegistry()
	reg.Register("A|x", RendererFunc(func(_ catalogue.TopicRecord, w int) string {
		got = w
		return ""
	}))
	reg.Render(catalogue.TopicRecord{Category: "A", Topic: "x", HasVisualDemo: true}, 3)
	assert.Equal(t, minWidth, got)
}

func TestSeedDemos_Content(t *testing.T) {
	reg := Default()
	cat := catalogue.Default()

	tests := []struct {
		category string
		topic    string
		want     []string
	}{
		{pandasCategory, "DataFrames", []string{"Nombre", "Edad", "Ana", "Luis", "23", "30"}},
		{pandasCategory, "Series", []string{"10", "20", "30", "dtype: int64"}},
		{vizCategory, "Gráfico de barras", []string{"A", "B", "C", "█"}},
		{vizCategory, "Histograma", []string{"█", "1 … 5"}},
		{vizCategory, "Gráfico de líneas", []string{string(pointMark), string(lineMark)}},
		{vizCategory, "Gráfico de dispersión", []string{string(pointMark)}},
		{vizCategory, "Mapa de calor", []string{"1", "2", "3", "4"}},
	}
	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			rec, err := cat.Topic(catalogue.NewTopicID(tt.category, tt.topic))
			require.NoError(t, err)
			out := ansi.Strip(reg.Render(rec, 60))
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, line := range strings.Split(out, "\n") {
				assert.LessOrEqual(t, ansi.StringWidth(line), 60, "line %q", line)
			}
		})
	}
}

func TestScatterHasNoConnectors(t *testing.T) {
	rec := catalogue.TopicRecord{Category: vizCategory, Topic: "Gráfico de dispersión", HasVisualDemo: true}
	out := ansi.Strip(Default().Render(rec, 60))
	assert.NotContains(t, out, string(lineMark))
	assert.Equal(t, len(trendX), strings.Count(out, string(pointMark)))
}

func TestHistogram(t *testing.T) {
	counts, lo, step := histogram(histData, 5)
	assert.Equal(t, []int{1, 2, 3, 2, 1}, counts)
	assert.Equal(t, 1.0, lo)
	assert.InDelta(t, 0.8, step, 1e-9)

	counts, _, _ = histogram([]float64{2, 2, 2}, 3)
	assert.Equal(t, []int{0, 0, 3}, counts)

	counts, _, _ = histogram(nil, 2)
	assert.Equal(t, []int{0, 0}, counts)
}

func TestPlot_Corners(t *testing.T) {
	grid := plot([]float64{0, 1}, []float64{0, 1}, 5, 3, false)
	require.Len(t, grid, 3)
	assert.Equal(t, "    ●", grid[0])
	assert.Equal(t, "     ", grid[1])
	assert.Equal(t, "●    ", grid[2])
}

func TestPlot_Connects(t *testing.T) {
	grid := plot([]float64{0, 1}, []float64{0, 0}, 5, 1, true)
	assert.Equal(t, "●···●", grid[0])
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "10", formatValue(10))
	assert.Equal(t, "2.5", formatValue(2.5))
}
