package handlers

import (
	"net/http"

	"github.com/geneblend/geneblend/internal/genetics"
	"github.com/geneblend/geneblend/internal/i18n"
)

type TraitHandler struct {
	bundle *i18n.Bundle
}

func NewTraitHandler(bundle *i18n.Bundle) *TraitHandler {
	return &TraitHandler{bundle: bundle}
}

type traitPhenotype struct {
	Phenotype string `json:"phenotype"`
	Name      string `json:"name"`
}

type traitResponse struct {
	Key        string           `json:"key"`
	Title      string           `json:"title"`
	Variant    genetics.Variant `json:"variant"`
	Fields     []string         `json:"fields"`
	Labels     []string         `json:"labels"`
	Phenotypes []traitPhenotype `json:"phenotypes"`
}

// List describes every trait the calculator evaluates: which form fields it
// reads, which labels it accepts and which phenotypes it can produce.
func (h *TraitHandler) List(w http.ResponseWriter, r *http.Request) {
	loc := h.bundle.Localizer(h.bundle.ResolveRequest(r))

	registry := genetics.Registry()
	out := make([]traitResponse, 0, len(registry))
	for _, e := range registry {
		tr := traitResponse{
			Key:     e.Key,
			Title:   loc.TraitTitle(e.Key),
			Variant: e.Trait.Variant(),
			Fields:  e.Fields(),
			Labels:  e.Trait.Labels(),
		}
		for _, ph := range e.Trait.Phenotypes() {
			tr.Phenotypes = append(tr.Phenotypes, traitPhenotype{
				Phenotype: string(ph),
				Name:      loc.Phenotype(string(ph)),
			})
		}
		out = append(out, tr)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"locale": loc.Tag().String(),
		"traits": out,
	})
}
