// Package templates turns a normalized InvoiceData aggregate into a
// self-contained HTML document in one of several visual styles. Renderers
// are stateless; the only side effect any of them has is fetching a remote
// company logo for inlining, and that fetch degrades to "no logo" on error.
package templates

import (
	"log/slog"

	"invoice-service/internal/models"
)

// DefaultTemplateID is the renderer used when an unknown template id is
// requested. Unknown ids resolve here instead of erroring so that template
// ids saved by older versions keep working.
const DefaultTemplateID = "modern"

// Renderer produces a complete HTML document for one invoice.
type Renderer interface {
	ID() string
	Render(data *models.InvoiceData) (string, error)
}

// Colors is the preview color triple shown in the template picker.
type Colors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// TemplateInfo is the display metadata for one registered template.
type TemplateInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Colors      Colors `json:"colors"`
}

type registered struct {
	info     TemplateInfo
	renderer Renderer
}

// Registry maps template ids to renderers and their display metadata. It is
// built once at startup and never mutated afterwards.
type Registry struct {
	entries   map[string]registered
	order     []string
	defaultID string
}

// NewRegistry builds the full template catalog. All renderers that inline
// logos share the given fetcher.
func NewRegistry(fetcher LogoFetcher) *Registry {
	r := &Registry{
		entries:   make(map[string]registered),
		defaultID: DefaultTemplateID,
	}

	r.add(TemplateInfo{
		ID:          "modern",
		Name:        "Modern Professional",
		Description: "Clean and modern design with blue accents",
		Colors:      Colors{Primary: "#2563eb", Secondary: "#f8fafc", Accent: "#3b82f6"},
	}, newModernRenderer())
	r.add(TemplateInfo{
		ID:          "classic",
		Name:        "Classic Business",
		Description: "Traditional business invoice with elegant styling",
		Colors:      Colors{Primary: "#1f2937", Secondary: "#f9fafb", Accent: "#6b7280"},
	}, newClassicRenderer())
	r.add(TemplateInfo{
		ID:          "minimal",
		Name:        "Minimal Clean",
		Description: "Minimalist design focusing on content clarity",
		Colors:      Colors{Primary: "#374151", Secondary: "#ffffff", Accent: "#9ca3af"},
	}, newMinimalRenderer())
	r.add(TemplateInfo{
		ID:          "corporate",
		Name:        "Corporate Elite",
		Description: "Professional corporate design with detailed tax breakdown",
		Colors:      Colors{Primary: "#059669", Secondary: "#f0fdf4", Accent: "#10b981"},
	}, newCorporateRenderer(fetcher))
	r.add(TemplateInfo{
		ID:          "simple_logo",
		Name:        "Simple Logo",
		Description: "Clean and simple design with company logo",
		Colors:      Colors{Primary: "#1f2937", Secondary: "#f9fafb", Accent: "#dbeafe"},
	}, newSimpleLogoRenderer(fetcher))
	r.add(TemplateInfo{
		ID:          "formal_letterhead",
		Name:        "Formal Letterhead",
		Description: "Traditional business letterhead format",
		Colors:      Colors{Primary: "#1f2937", Secondary: "#fafafa", Accent: "#4b5563"},
	}, newFormalLetterheadRenderer(fetcher))
	r.add(TemplateInfo{
		ID:          "modern_minimal",
		Name:        "Modern Minimal",
		Description: "Contemporary design with clean typography",
		Colors:      Colors{Primary: "#2563eb", Secondary: "#f8fafc", Accent: "#10b981"},
	}, newModernMinimalRenderer(fetcher))
	r.add(TemplateInfo{
		ID:          "extrape_invoice",
		Name:        "Extrape Invoice",
		Description: "Professional invoice format with detailed tax breakdown",
		Colors:      Colors{Primary: "#1f2937", Secondary: "#f3f4f6", Accent: "#d1d5db"},
	}, newExtrapeRenderer(fetcher))

	return r
}

func (r *Registry) add(info TemplateInfo, renderer Renderer) {
	r.entries[info.ID] = registered{info: info, renderer: renderer}
	r.order = append(r.order, info.ID)
}

// Resolve returns the renderer for id, falling back to the default template
// when the id is unknown. It never fails; the fallback is logged so silent
// drift stays observable.
func (r *Registry) Resolve(id string) Renderer {
	if entry, ok := r.entries[id]; ok {
		return entry.renderer
	}
	slog.Warn("unknown template id, falling back to default",
		"template_id", id,
		"default", r.defaultID)
	return r.entries[r.defaultID].renderer
}

// Catalog returns display metadata for every registered template in
// registration order.
func (r *Registry) Catalog() []TemplateInfo {
	infos := make([]TemplateInfo, 0, len(r.order))
	for _, id := range r.order {
		infos = append(infos, r.entries[id].info)
	}
	return infos
}
