// Package industry holds the per-industry search keyword configuration and
// the mapping from external industry labels onto configured industry keys.
package industry

import "sort"

// Keywords holds the configured search query lists for one industry.
type Keywords struct {
	Trend      []string `json:"industry_trend"`
	Regulation []string `json:"regulation"`
	Competitor []string `json:"competitor_keywords"`
}

// Registry resolves industry names to their keyword configuration. Unknown
// industries resolve to the fallback bucket.
type Registry struct {
	industries map[string]Keywords
	order      []string
	fallback   string
}

// NewRegistry returns a registry backed by the built-in industry table.
func NewRegistry() *Registry {
	return &Registry{
		industries: builtinIndustries,
		order:      builtinOrder,
		fallback:   FallbackIndustry,
	}
}

// NewRegistryWith builds a registry from a custom table, for deployments that
// retarget the keyword lists. fallback should be a key of industries.
func NewRegistryWith(industries map[string]Keywords, fallback string) *Registry {
	order := make([]string, 0, len(industries))
	for name := range industries {
		order = append(order, name)
	}
	sort.Strings(order)
	return &Registry{
		industries: industries,
		order:      order,
		fallback:   fallback,
	}
}

// Lookup returns the keyword configuration for the given industry, falling
// back to the catch-all bucket for unknown names.
func (r *Registry) Lookup(industry string) Keywords {
	if kw, ok := r.industries[industry]; ok {
		return kw
	}
	return r.industries[r.fallback]
}

// Has reports whether the industry is explicitly configured.
func (r *Registry) Has(industry string) bool {
	_, ok := r.industries[industry]
	return ok
}

// Names returns the configured industry names in table order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Fallback returns the name of the catch-all bucket.
func (r *Registry) Fallback() string {
	return r.fallback
}
