package genetics

import (
	"math/big"
	"sort"
)

// Genotype is the alleles an individual carries at one locus (First) or at
// two independently segregating loci (First and Second). Single-locus
// genotypes leave Second zero. Both pairs are stored canonically so that a
// Genotype is usable as a map key regardless of derivation path.
type Genotype struct {
	First  Pair
	Second Pair
}

// OneLocus builds a single-locus genotype normalized with norm.
func OneLocus(a, b Allele, norm Normalizer) Genotype {
	return Genotype{First: norm(a, b)}
}

// TwoLoci builds a two-locus genotype, normalizing each locus with norm.
func TwoLoci(a1, a2, b1, b2 Allele, norm Normalizer) Genotype {
	return Genotype{First: norm(a1, a2), Second: norm(b1, b2)}
}

// HasSecondLocus reports whether g is a two-gene genotype.
func (g Genotype) HasSecondLocus() bool {
	return g.Second != Pair{}
}

// Alleles returns every allele carried, first locus first.
func (g Genotype) Alleles() []Allele {
	if !g.HasSecondLocus() {
		return []Allele{g.First[0], g.First[1]}
	}
	return []Allele{g.First[0], g.First[1], g.Second[0], g.Second[1]}
}

func (g Genotype) String() string {
	if !g.HasSecondLocus() {
		return g.First.String()
	}
	return g.First.String() + g.Second.String()
}

// Distribution maps genotypes to exact probabilities.
type Distribution map[Genotype]*big.Rat

// Uniform spreads probability evenly over gs. An empty gs yields an empty
// distribution.
func Uniform(gs []Genotype) Distribution {
	d := make(Distribution, len(gs))
	if len(gs) == 0 {
		return d
	}
	w := big.NewRat(1, int64(len(gs)))
	for _, g := range gs {
		d.Add(g, w)
	}
	return d
}

// Add accumulates p into g's probability. p is copied, never retained.
func (d Distribution) Add(g Genotype, p *big.Rat) {
	if cur, ok := d[g]; ok {
		cur.Add(cur, p)
		return
	}
	d[g] = new(big.Rat).Set(p)
}

// Total returns the sum of all probabilities.
func (d Distribution) Total() *big.Rat {
	sum := new(big.Rat)
	for _, p := range d {
		sum.Add(sum, p)
	}
	return sum
}

// Get returns g's probability, or zero when g is absent.
func (d Distribution) Get(g Genotype) *big.Rat {
	if p, ok := d[g]; ok {
		return new(big.Rat).Set(p)
	}
	return new(big.Rat)
}

// Genotypes lists the distribution's keys in a stable order.
func (d Distribution) Genotypes() []Genotype {
	out := make([]Genotype, 0, len(d))
	for g := range d {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Phenotype is a trait-specific observable category.
type Phenotype string

// PhenotypeDist maps phenotypes to exact probabilities.
type PhenotypeDist map[Phenotype]*big.Rat

// Add accumulates p into ph's probability.
func (d PhenotypeDist) Add(ph Phenotype, p *big.Rat) {
	if cur, ok := d[ph]; ok {
		cur.Add(cur, p)
		return
	}
	d[ph] = new(big.Rat).Set(p)
}

// Total returns the sum of all probabilities.
func (d PhenotypeDist) Total() *big.Rat {
	sum := new(big.Rat)
	for _, p := range d {
		sum.Add(sum, p)
	}
	return sum
}

// Get returns ph's probability, or zero when ph is absent.
func (d PhenotypeDist) Get(ph Phenotype) *big.Rat {
	if p, ok := d[ph]; ok {
		return new(big.Rat).Set(p)
	}
	return new(big.Rat)
}

// Float64 converts the distribution to floating point. This is the only
// place exact probabilities are rounded.
func (d PhenotypeDist) Float64() map[string]float64 {
	out := make(map[string]float64, len(d))
	for ph, p := range d {
		f, _ := p.Float64()
		out[string(ph)] = f
	}
	return out
}
