package genetics

// Category maps one raw input label onto the phenotype category the model
// reasons about. Several labels may share a category (hazel eyes are brown).
type Category struct {
	Label     string
	Phenotype Phenotype
}

// TwoGene approximates a polygenic trait with two independently segregating
// loci, each with a dominant and a recessive allele.
type TwoGene struct {
	name       string
	first      Allele
	second     Allele
	categories map[string]Phenotype
	labels     []string
	phenotypes []Phenotype
	express    func(g Genotype) Phenotype
	space      []Genotype
}

func newTwoGene(name string, first, second Allele, phenotypes []Phenotype, cats []Category, express func(Genotype) Phenotype) *TwoGene {
	t := &TwoGene{
		name:       name,
		first:      first,
		second:     second,
		categories: make(map[string]Phenotype, len(cats)),
		phenotypes: phenotypes,
		express:    express,
	}
	for _, c := range cats {
		t.categories[c.Label] = c.Phenotype
		t.labels = append(t.labels, c.Label)
	}

	d1, r1 := DominantOf(first)
	d2, r2 := DominantOf(second)
	locus1 := []Pair{Normalize(d1, d1), Normalize(d1, r1), Normalize(r1, r1)}
	locus2 := []Pair{Normalize(d2, d2), Normalize(d2, r2), Normalize(r2, r2)}
	for _, p1 := range locus1 {
		for _, p2 := range locus2 {
			t.space = append(t.space, Genotype{First: p1, Second: p2})
		}
	}
	return t
}

// NewEpistatic builds a hierarchical two-gene trait: a dominant allele at the
// first locus expresses top whatever the second locus holds; otherwise a
// dominant allele at the second locus expresses middle; otherwise bottom.
func NewEpistatic(name string, first, second Allele, top, middle, bottom Phenotype, cats []Category) *TwoGene {
	d1, _ := DominantOf(first)
	d2, _ := DominantOf(second)
	return newTwoGene(name, first, second, []Phenotype{top, middle, bottom}, cats, func(g Genotype) Phenotype {
		switch {
		case g.First.Contains(d1):
			return top
		case g.Second.Contains(d2):
			return middle
		}
		return bottom
	})
}

// NewAdditive builds a two-gene trait where every dominant allele adds one
// unit: three or four units express high, two mid, fewer low.
func NewAdditive(name string, first, second Allele, high, mid, low Phenotype, cats []Category) *TwoGene {
	return newTwoGene(name, first, second, []Phenotype{high, mid, low}, cats, func(g Genotype) Phenotype {
		score := 0
		for _, a := range g.Alleles() {
			if Dominant(a) {
				score++
			}
		}
		switch {
		case score >= 3:
			return high
		case score == 2:
			return mid
		}
		return low
	})
}

func (t *TwoGene) Name() string     { return t.name }
func (t *TwoGene) Variant() Variant { return VariantTwoGene }

func (t *TwoGene) Labels() []string {
	return append([]string(nil), t.labels...)
}

func (t *TwoGene) Phenotypes() []Phenotype {
	return append([]Phenotype(nil), t.phenotypes...)
}

func (t *TwoGene) Canonical(label string) (Phenotype, bool) {
	return canonicalLabel(t.categories, label)
}

func (t *TwoGene) GenotypeSpace() []Genotype {
	return append([]Genotype(nil), t.space...)
}

func (t *TwoGene) GenotypesFor(ph Phenotype) []Genotype {
	return consistentWith(t, ph)
}

func (t *TwoGene) PhenotypeOf(g Genotype) Phenotype {
	return t.express(g)
}

func (t *TwoGene) Cross(father, mother Genotype) Distribution {
	return CrossLoci(father, mother, Normalize)
}

func (t *TwoGene) ParentGenotypeDist(ev Evidence, prior Prior) Distribution {
	return InferParent(t, ev, prior)
}

func (t *TwoGene) Calculate(father, mother Evidence, prior Prior) PhenotypeDist {
	return calculate(t, father, mother, prior)
}
