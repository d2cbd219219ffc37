package genetics

// Codominance is a three-allele single-locus system (ABO): a and b are
// codominant with each other and both dominate the null allele.
type Codominance struct {
	name   string
	a, b   Allele
	null   Allele
	phA    Phenotype
	phB    Phenotype
	phAB   Phenotype
	phNull Phenotype
	space  []Genotype
}

func NewCodominance(name string, a, b, null Allele, phA, phB, phAB, phNull Phenotype) *Codominance {
	alleles := []Allele{a, b, null}
	var space []Genotype
	for i := range alleles {
		for j := i; j < len(alleles); j++ {
			space = append(space, OneLocus(alleles[i], alleles[j], NormalizeLexical))
		}
	}
	return &Codominance{
		name:   name,
		a:      a,
		b:      b,
		null:   null,
		phA:    phA,
		phB:    phB,
		phAB:   phAB,
		phNull: phNull,
		space:  space,
	}
}

func (t *Codominance) Name() string     { return t.name }
func (t *Codominance) Variant() Variant { return VariantCodominance }

func (t *Codominance) Labels() []string {
	return []string{string(t.phNull), string(t.phA), string(t.phB), string(t.phAB)}
}

func (t *Codominance) Phenotypes() []Phenotype {
	return []Phenotype{t.phNull, t.phA, t.phB, t.phAB}
}

func (t *Codominance) Canonical(label string) (Phenotype, bool) {
	for _, ph := range t.Phenotypes() {
		if Phenotype(label) == ph {
			return ph, true
		}
	}
	return "", false
}

func (t *Codominance) GenotypeSpace() []Genotype {
	return append([]Genotype(nil), t.space...)
}

func (t *Codominance) GenotypesFor(ph Phenotype) []Genotype {
	return consistentWith(t, ph)
}

func (t *Codominance) PhenotypeOf(g Genotype) Phenotype {
	hasA, hasB := g.First.Contains(t.a), g.First.Contains(t.b)
	switch {
	case hasA && hasB:
		return t.phAB
	case hasA:
		return t.phA
	case hasB:
		return t.phB
	}
	return t.phNull
}

func (t *Codominance) Cross(father, mother Genotype) Distribution {
	return CrossPairs(father.First, mother.First, NormalizeLexical)
}

func (t *Codominance) ParentGenotypeDist(ev Evidence, prior Prior) Distribution {
	return InferParent(t, ev, prior)
}

func (t *Codominance) Calculate(father, mother Evidence, prior Prior) PhenotypeDist {
	return calculate(t, father, mother, prior)
}
