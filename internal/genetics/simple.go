package genetics

// SimpleDominance is a single-locus, two-allele trait where one dominant
// allele is enough to express the dominant phenotype.
type SimpleDominance struct {
	name        string
	dominant    Allele
	recessive   Allele
	dominantPh  Phenotype
	recessivePh Phenotype
	space       []Genotype
}

// NewSimpleDominance builds a trait from a single-letter gene symbol, e.g.
// "R" for the Rh factor.
func NewSimpleDominance(name string, symbol Allele, dominantPh, recessivePh Phenotype) *SimpleDominance {
	d, r := DominantOf(symbol)
	return &SimpleDominance{
		name:        name,
		dominant:    d,
		recessive:   r,
		dominantPh:  dominantPh,
		recessivePh: recessivePh,
		space: []Genotype{
			OneLocus(d, d, Normalize),
			OneLocus(d, r, Normalize),
			OneLocus(r, r, Normalize),
		},
	}
}

func (s *SimpleDominance) Name() string     { return s.name }
func (s *SimpleDominance) Variant() Variant { return VariantSimpleDominance }

func (s *SimpleDominance) Labels() []string {
	return []string{string(s.dominantPh), string(s.recessivePh)}
}

func (s *SimpleDominance) Phenotypes() []Phenotype {
	return []Phenotype{s.dominantPh, s.recessivePh}
}

func (s *SimpleDominance) Canonical(label string) (Phenotype, bool) {
	switch Phenotype(label) {
	case s.dominantPh:
		return s.dominantPh, true
	case s.recessivePh:
		return s.recessivePh, true
	}
	return "", false
}

func (s *SimpleDominance) GenotypeSpace() []Genotype {
	return append([]Genotype(nil), s.space...)
}

func (s *SimpleDominance) GenotypesFor(ph Phenotype) []Genotype {
	return consistentWith(s, ph)
}

func (s *SimpleDominance) PhenotypeOf(g Genotype) Phenotype {
	if g.First.Contains(s.dominant) {
		return s.dominantPh
	}
	return s.recessivePh
}

func (s *SimpleDominance) Cross(father, mother Genotype) Distribution {
	return CrossPairs(father.First, mother.First, Normalize)
}

func (s *SimpleDominance) ParentGenotypeDist(ev Evidence, prior Prior) Distribution {
	return InferParent(s, ev, prior)
}

func (s *SimpleDominance) Calculate(father, mother Evidence, prior Prior) PhenotypeDist {
	return calculate(s, father, mother, prior)
}
