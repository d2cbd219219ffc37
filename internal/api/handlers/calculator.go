package handlers

import (
	"errors"
	"mime"
	"net/http"
	"time"

	"github.com/geneblend/geneblend/internal/domain"
	"github.com/geneblend/geneblend/internal/genetics"
	"github.com/geneblend/geneblend/internal/i18n"
	"github.com/geneblend/geneblend/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CalculatorHandler struct {
	svc    *service.CalculatorService
	bundle *i18n.Bundle
}

func NewCalculatorHandler(svc *service.CalculatorService, bundle *i18n.Bundle) *CalculatorHandler {
	return &CalculatorHandler{svc: svc, bundle: bundle}
}

type displayPhenotype struct {
	Phenotype   string  `json:"phenotype"`
	Name        string  `json:"name"`
	Probability float64 `json:"probability"`
}

type displayTrait struct {
	Trait      string             `json:"trait"`
	Title      string             `json:"title"`
	Phenotypes []displayPhenotype `json:"phenotypes"`
}

type calculationResponse struct {
	ID        uuid.UUID               `json:"id"`
	Prior     string                  `json:"prior"`
	Locale    string                  `json:"locale"`
	Results   genetics.Results        `json:"results"`
	Display   []displayTrait          `json:"display"`
	Warnings  []genetics.Unrecognized `json:"warnings"`
	Input     map[string]string       `json:"input,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
	ExpiresAt *time.Time              `json:"expires_at,omitempty"`
}

// Calculate accepts the family form either form-encoded or as a flat JSON
// object of strings.
func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	fields, err := parseFields(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	prior, err := h.svc.ResolvePrior(r.URL.Query().Get("prior"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "prior must be uniform or mendelian")
		return
	}

	calc, err := h.svc.Calculate(r.Context(), fields, prior)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to calculate")
		return
	}

	writeJSON(w, http.StatusCreated, h.response(r, calc, false))
}

// GetByID returns a saved calculation. With ?consume=true it is deleted
// after being read.
func (h *CalculatorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid calculation ID")
		return
	}

	var calc *domain.Calculation
	if r.URL.Query().Get("consume") == "true" {
		calc, err = h.svc.Consume(r.Context(), id)
	} else {
		calc, err = h.svc.GetByID(r.Context(), id)
	}
	if err != nil {
		if errors.Is(err, service.ErrCalculationNotFound) {
			writeError(w, http.StatusNotFound, "calculation not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get calculation")
		return
	}

	writeJSON(w, http.StatusOK, h.response(r, calc, true))
}

func (h *CalculatorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid calculation ID")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrCalculationNotFound) {
			writeError(w, http.StatusNotFound, "calculation not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete calculation")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CalculatorHandler) response(r *http.Request, calc *domain.Calculation, withInput bool) calculationResponse {
	loc := h.bundle.Localizer(h.bundle.ResolveRequest(r))

	resp := calculationResponse{
		ID:        calc.ID,
		Prior:     calc.Prior,
		Locale:    loc.Tag().String(),
		Results:   calc.Results,
		Display:   display(calc.Results, loc),
		Warnings:  calc.Warnings,
		CreatedAt: calc.CreatedAt,
		ExpiresAt: calc.ExpiresAt,
	}
	if resp.Warnings == nil {
		resp.Warnings = []genetics.Unrecognized{}
	}
	if withInput {
		resp.Input = calc.Input
	}
	return resp
}

// display lists the traits that produced a result, in registry order, with
// localized names. Traits without parent input are skipped.
func display(results genetics.Results, loc *i18n.Localizer) []displayTrait {
	out := []displayTrait{}
	for _, e := range genetics.Registry() {
		res := results[e.Key]
		if len(res) == 0 {
			continue
		}
		dt := displayTrait{Trait: e.Key, Title: loc.TraitTitle(e.Key)}
		for _, ph := range e.Trait.Phenotypes() {
			p, ok := res[string(ph)]
			if !ok {
				continue
			}
			dt.Phenotypes = append(dt.Phenotypes, displayPhenotype{
				Phenotype:   string(ph),
				Name:        loc.Phenotype(string(ph)),
				Probability: p,
			})
		}
		out = append(out, dt)
	}
	return out
}

func parseFields(w http.ResponseWriter, r *http.Request) (genetics.Fields, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var raw map[string]string
		if err := decodeJSON(w, r, &raw); err != nil {
			return nil, err
		}
		return genetics.Fields(raw), nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	fields := make(genetics.Fields, len(r.PostForm))
	for k, vs := range r.PostForm {
		if len(vs) > 0 {
			fields[k] = vs[0]
		}
	}
	return fields, nil
}
