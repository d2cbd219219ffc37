package genetics

import (
	"errors"
	"fmt"
	"strings"
)

// Unknown is the sentinel input value meaning "not observed".
const Unknown = "unknown"

// Known reports whether v is an actual observation.
func Known(v string) bool {
	return v != "" && v != Unknown
}

type Variant string

const (
	VariantSimpleDominance     Variant = "simple_dominance"
	VariantIncompleteDominance Variant = "incomplete_dominance"
	VariantCodominance         Variant = "codominance"
	VariantTwoGene             Variant = "two_gene"
)

// Prior selects how ancestry nobody observed is modeled.
type Prior int

const (
	// PriorUniform applies evidence in three tiers: both grandparents, then
	// the parent's own phenotype, then the full genotype space.
	PriorUniform Prior = iota
	// PriorMendelian derives every parent by crossing its two parents, an
	// unobserved grandparent being uniform over the genotype space.
	PriorMendelian
)

var ErrUnknownPrior = errors.New("unknown prior")

func (p Prior) String() string {
	switch p {
	case PriorMendelian:
		return "mendelian"
	default:
		return "uniform"
	}
}

// ParsePrior maps a configuration value to a Prior. The empty string is the
// uniform prior.
func ParsePrior(s string) (Prior, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "uniform":
		return PriorUniform, nil
	case "mendelian":
		return PriorMendelian, nil
	}
	return PriorUniform, fmt.Errorf("%w: %q", ErrUnknownPrior, s)
}

// Evidence is what is known about one parent of the child: the parent's own
// phenotype and the phenotypes of the parent's father and mother. Values are
// raw input labels; empty or Unknown means not observed.
type Evidence struct {
	Phenotype string
	Father    string
	Mother    string
}

// Empty reports whether no observation at all is present.
func (e Evidence) Empty() bool {
	return !Known(e.Phenotype) && !Known(e.Father) && !Known(e.Mother)
}

// Trait models the genotype/phenotype relationship of one hereditary trait.
// Implementations are stateless and safe for concurrent use.
type Trait interface {
	Name() string
	Variant() Variant
	// Labels lists the raw input labels the trait accepts.
	Labels() []string
	// Phenotypes lists the canonical phenotypes the trait produces.
	Phenotypes() []Phenotype
	// Canonical maps a raw input label to its phenotype category.
	Canonical(label string) (Phenotype, bool)
	GenotypeSpace() []Genotype
	// GenotypesFor lists the genotypes consistent with ph. A phenotype the
	// trait does not produce is consistent with the whole genotype space.
	GenotypesFor(ph Phenotype) []Genotype
	PhenotypeOf(g Genotype) Phenotype
	Cross(father, mother Genotype) Distribution
	ParentGenotypeDist(ev Evidence, prior Prior) Distribution
	Calculate(father, mother Evidence, prior Prior) PhenotypeDist
}

// consistentWith filters t's genotype space down to the genotypes expressing
// ph, falling back to the whole space for a phenotype t never produces.
func consistentWith(t Trait, ph Phenotype) []Genotype {
	space := t.GenotypeSpace()
	var out []Genotype
	for _, g := range space {
		if t.PhenotypeOf(g) == ph {
			out = append(out, g)
		}
	}
	if len(out) == 0 {
		return space
	}
	return out
}

func canonicalLabel(categories map[string]Phenotype, label string) (Phenotype, bool) {
	ph, ok := categories[label]
	return ph, ok
}
