// Package demo renders the visual demos attached to catalogue topics.
package demo

import (
	"charm.land/lipgloss/v2"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/catalogue"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/ui/theme"
)

// minWidth is the narrowest width a renderer is asked to fill.
const minWidth = 24

// Renderer draws the demo for one topic within width columns.
type Renderer interface {
	Render(rec catalogue.TopicRecord, width int) string
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(rec catalogue.TopicRecord, width int) string

// Render calls f.
func (f RendererFunc) Render(rec catalogue.TopicRecord, width int) string {
	return f(rec, width)
}

// Registry maps topics to their demo renderers.
type Registry struct {
	renderers map[catalogue.TopicID]Renderer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[catalogue.TopicID]Renderer)}
}

// Register binds r to id, replacing any earlier binding.
func (r *Registry) Register(id catalogue.TopicID, rend Renderer) {
	r.renderers[id] = rend
}

// Lookup returns the renderer bound to id.
func (r *Registry) Lookup(id catalogue.TopicID) (Renderer, bool) {
	rend, ok := r.renderers[id]
	return rend, ok
}

// Len returns the number of registered renderers.
func (r *Registry) Len() int {
	return len(r.renderers)
}

// Render draws the demo for rec. Records without a demo render as "".
// Flagged records with no registered renderer get a notice instead.
func (r *Registry) Render(rec catalogue.TopicRecord, width int) string {
	if !rec.HasVisualDemo {
		return ""
	}
	if width < minWidth {
		width = minWidth
	}
	rend, ok := r.Lookup(rec.ID())
	if !ok {
		return Unavailable(rec)
	}
	return rend.Render(rec, width)
}

// Unavailable is the notice shown for a flagged topic with no renderer.
func Unavailable(rec catalogue.TopicRecord) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("(demo visual no disponible para " + rec.Topic + ")")
}

const (
	pandasCategory = "Ciencia de Datos con pandas"
	vizCategory    = "Visualización de Datos"
)

// Default returns a registry with the demos of the built-in catalogue.
func Default() *Registry {
	r := NewRegistry()
	r.Register(catalogue.NewTopicID(pandasCategory, "DataFrames"), RendererFunc(renderDataFrame))
	r.Register(catalogue.NewTopicID(pandasCategory, "Series"), RendererFunc(renderSeries))
	r.Register(catalogue.NewTopicID(vizCategory, "Gráfico de barras"), RendererFunc(renderBar))
	r.Register(catalogue.NewTopicID(vizCategory, "Histograma"), RendererFunc(renderHistogram))
	r.Register(catalogue.NewTopicID(vizCategory, "Gráfico de líneas"), RendererFunc(renderLine))
	r.Register(catalogue.NewTopicID(vizCategory, "Gráfico de dispersión"), RendererFunc(renderScatter))
	r.Register(catalogue.NewTopicID(vizCategory, "Mapa de calor"), RendererFunc(renderHeatmap))
	return r
}

func caption(title string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary).Render(title)
}
