// Package render turns catalog records into HTML pages using Liquid
// templates embedded in the binary.
package render

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/Priya8975/travel-agency/internal/domain"
	"github.com/osteele/liquid"
)

//go:embed templates/*.liquid
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page template names.
const (
	PageIndex       = "index"
	PageContinent   = "continent"
	PageDestination = "destination"
	PageNotFound    = "not_found"
)

var pageNames = []string{PageIndex, PageContinent, PageDestination, PageNotFound}

// Renderer holds the parsed templates. It is safe for concurrent use once
// built.
type Renderer struct {
	layout *liquid.Template
	pages  map[string]*liquid.Template
}

// New parses every embedded template, so a broken template fails startup
// rather than the first request.
func New() (*Renderer, error) {
	engine := liquid.NewEngine()
	registerFilters(engine)

	layout, err := parse(engine, "layout")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*liquid.Template, len(pageNames))
	for _, name := range pageNames {
		tpl, err := parse(engine, name)
		if err != nil {
			return nil, err
		}
		pages[name] = tpl
	}

	return &Renderer{layout: layout, pages: pages}, nil
}

func parse(engine *liquid.Engine, name string) (*liquid.Template, error) {
	src, err := templateFS.ReadFile("templates/" + name + ".liquid")
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}
	tpl, perr := engine.ParseTemplate(src)
	if perr != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, perr)
	}
	return tpl, nil
}

func registerFilters(engine *liquid.Engine) {
	// {{ d.price | money }} -> 1499.99
	engine.RegisterFilter("money", func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	})
}

// Render executes page inside the shared layout.
func (r *Renderer) Render(page, title string, bindings map[string]any) ([]byte, error) {
	tpl, ok := r.pages[page]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", page)
	}

	body, err := tpl.Render(bindings)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", page, err)
	}

	out, err := r.layout.Render(map[string]any{
		"title":   title,
		"content": string(body),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering layout for %s: %w", page, err)
	}
	return out, nil
}

// Index renders the landing page.
func (r *Renderer) Index(continents []domain.Continent, featured []domain.Destination) ([]byte, error) {
	return r.Render(PageIndex, "Explore the world", map[string]any{
		"continents": continentList(continents),
		"featured":   destinationList(featured),
	})
}

// Continent renders one continent with the destinations that reference it.
func (r *Renderer) Continent(c domain.Continent, destinations []domain.Destination) ([]byte, error) {
	return r.Render(PageContinent, c.Name, map[string]any{
		"continent":    continentBindings(c),
		"destinations": destinationList(destinations),
	})
}

// Destination renders one destination. continent may be nil.
func (r *Renderer) Destination(d domain.Destination, continent *domain.Continent) ([]byte, error) {
	bindings := map[string]any{
		"destination": destinationBindings(d),
	}
	if continent != nil {
		bindings["continent"] = continentBindings(*continent)
	}
	return r.Render(PageDestination, d.Name, bindings)
}

// NotFound renders the 404 page.
func (r *Renderer) NotFound(message string) ([]byte, error) {
	return r.Render(PageNotFound, "Not found", map[string]any{
		"message": message,
	})
}

// StaticHandler serves the embedded stylesheet and other assets. Mount it
// with the /static/ prefix stripped.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

func continentBindings(c domain.Continent) map[string]any {
	return map[string]any{
		"id":          c.ID,
		"name":        c.Name,
		"description": c.Description,
		"image":       c.Image,
	}
}

func continentList(cs []domain.Continent) []map[string]any {
	out := make([]map[string]any, 0, len(cs))
	for _, c := range cs {
		out = append(out, continentBindings(c))
	}
	return out
}

func destinationBindings(d domain.Destination) map[string]any {
	return map[string]any{
		"id":           d.ID,
		"name":         d.Name,
		"description":  d.Description,
		"image":        d.Image,
		"price":        d.Price,
		"highlights":   d.HighlightList(),
		"continent_id": d.ContinentID,
		"featured":     d.Featured,
	}
}

func destinationList(ds []domain.Destination) []map[string]any {
	out := make([]map[string]any, 0, len(ds))
	for _, d := range ds {
		out = append(out, destinationBindings(d))
	}
	return out
}
