package genetics

// IncompleteDominance is a single-locus trait whose heterozygote has its own
// phenotype, distinct from both homozygotes.
type IncompleteDominance struct {
	name      string
	a, b      Allele
	homozygA  Phenotype
	heterozyg Phenotype
	homozygB  Phenotype
	space     []Genotype
}

func NewIncompleteDominance(name string, a, b Allele, homozygA, heterozyg, homozygB Phenotype) *IncompleteDominance {
	return &IncompleteDominance{
		name:      name,
		a:         a,
		b:         b,
		homozygA:  homozygA,
		heterozyg: heterozyg,
		homozygB:  homozygB,
		space: []Genotype{
			OneLocus(a, a, Normalize),
			OneLocus(a, b, Normalize),
			OneLocus(b, b, Normalize),
		},
	}
}

func (t *IncompleteDominance) Name() string     { return t.name }
func (t *IncompleteDominance) Variant() Variant { return VariantIncompleteDominance }

func (t *IncompleteDominance) Labels() []string {
	return []string{string(t.homozygA), string(t.heterozyg), string(t.homozygB)}
}

func (t *IncompleteDominance) Phenotypes() []Phenotype {
	return []Phenotype{t.homozygA, t.heterozyg, t.homozygB}
}

func (t *IncompleteDominance) Canonical(label string) (Phenotype, bool) {
	for _, ph := range t.Phenotypes() {
		if Phenotype(label) == ph {
			return ph, true
		}
	}
	return "", false
}

func (t *IncompleteDominance) GenotypeSpace() []Genotype {
	return append([]Genotype(nil), t.space...)
}

func (t *IncompleteDominance) GenotypesFor(ph Phenotype) []Genotype {
	return consistentWith(t, ph)
}

func (t *IncompleteDominance) PhenotypeOf(g Genotype) Phenotype {
	switch g.First.Count(t.a) {
	case 2:
		return t.homozygA
	case 1:
		return t.heterozyg
	}
	return t.homozygB
}

func (t *IncompleteDominance) Cross(father, mother Genotype) Distribution {
	return CrossPairs(father.First, mother.First, Normalize)
}

func (t *IncompleteDominance) ParentGenotypeDist(ev Evidence, prior Prior) Distribution {
	return InferParent(t, ev, prior)
}

func (t *IncompleteDominance) Calculate(father, mother Evidence, prior Prior) PhenotypeDist {
	return calculate(t, father, mother, prior)
}
