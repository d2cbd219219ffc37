package genetics

import "strings"

// Fields is the raw input: field name to label, e.g. "father_eye": "hazel".
type Fields map[string]string

// Get returns the trimmed value of key, or "" when it is absent or Unknown.
func (f Fields) Get(key string) string {
	v := strings.TrimSpace(f[key])
	if !Known(v) {
		return ""
	}
	return v
}

// TraitResult maps phenotype labels to probabilities. It is empty when no
// parent phenotype was supplied for the trait.
type TraitResult map[string]float64

// Results maps trait keys to their TraitResult.
type Results map[string]TraitResult

// Unrecognized reports an input label a trait does not accept.
type Unrecognized struct {
	Trait string `json:"trait"`
	Field string `json:"field"`
	Value string `json:"value"`
}

// Calculator runs every registered trait over one set of input fields.
// It holds no mutable state.
type Calculator struct {
	prior   Prior
	entries []Entry
}

func NewCalculator(prior Prior) *Calculator {
	return &Calculator{prior: prior, entries: Registry()}
}

func (c *Calculator) Prior() Prior { return c.prior }

// Entries returns the traits the calculator evaluates.
func (c *Calculator) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Evidence extracts the father's and mother's evidence for one trait. ok is
// false when neither parent's own phenotype is a recognized observation.
func (c *Calculator) Evidence(e Entry, fields Fields) (father, mother Evidence, ok bool) {
	father = Evidence{
		Phenotype: recognized(e.Trait, fields.Get(e.FatherField())),
		Father:    recognized(e.Trait, fields.Get(e.PaternalGrandfather())),
		Mother:    recognized(e.Trait, fields.Get(e.PaternalGrandmother())),
	}
	mother = Evidence{
		Phenotype: recognized(e.Trait, fields.Get(e.MotherField())),
		Father:    recognized(e.Trait, fields.Get(e.MaternalGrandfather())),
		Mother:    recognized(e.Trait, fields.Get(e.MaternalGrandmother())),
	}
	ok = father.Phenotype != "" || mother.Phenotype != ""
	return father, mother, ok
}

// CalculateTraitExact runs the pipeline for one trait and keeps exact
// probabilities. The result is nil when there is no parent evidence.
func (c *Calculator) CalculateTraitExact(e Entry, fields Fields) PhenotypeDist {
	father, mother, ok := c.Evidence(e, fields)
	if !ok {
		return nil
	}
	return e.Trait.Calculate(father, mother, c.prior)
}

// CalculateTrait runs the pipeline for one trait.
func (c *Calculator) CalculateTrait(e Entry, fields Fields) TraitResult {
	dist := c.CalculateTraitExact(e, fields)
	if dist == nil {
		return TraitResult{}
	}
	return dist.Float64()
}

// Calculate evaluates every trait sequentially.
func (c *Calculator) Calculate(fields Fields) Results {
	out := make(Results, len(c.entries))
	for _, e := range c.entries {
		out[e.Key] = c.CalculateTrait(e, fields)
	}
	return out
}

// Unrecognized lists every supplied label that its trait does not accept.
// Such labels are treated as unobserved.
func (c *Calculator) Unrecognized(fields Fields) []Unrecognized {
	var out []Unrecognized
	for _, e := range c.entries {
		for _, name := range e.Fields() {
			v := fields.Get(name)
			if v == "" {
				continue
			}
			if _, ok := e.Trait.Canonical(v); !ok {
				out = append(out, Unrecognized{Trait: e.Key, Field: name, Value: v})
			}
		}
	}
	return out
}

func recognized(t Trait, label string) string {
	if label == "" {
		return ""
	}
	if _, ok := t.Canonical(label); !ok {
		return ""
	}
	return label
}
