package genetics

import "math/big"

// observe resolves a raw label into a phenotype of t. Unobserved and
// unrecognized labels both count as no evidence.
func observe(t Trait, label string) (Phenotype, bool) {
	if !Known(label) {
		return "", false
	}
	return t.Canonical(label)
}

// InferParent computes the genotype distribution of one parent from the
// available evidence. Both grandparents take precedence over the parent's own
// phenotype, which takes precedence over the full genotype space. The parent's
// own phenotype is then applied as a filter whatever tier was used.
func InferParent(t Trait, ev Evidence, prior Prior) Distribution {
	own, ownKnown := observe(t, ev.Phenotype)
	gf, gfKnown := observe(t, ev.Father)
	gm, gmKnown := observe(t, ev.Mother)

	var dist Distribution
	switch {
	case prior == PriorMendelian:
		dist = crossAncestors(t, ancestor(t, gf, gfKnown), ancestor(t, gm, gmKnown))
	case gfKnown && gmKnown:
		dist = crossAncestors(t, t.GenotypesFor(gf), t.GenotypesFor(gm))
	case ownKnown:
		dist = Uniform(t.GenotypesFor(own))
	default:
		dist = Uniform(t.GenotypeSpace())
	}

	if ownKnown {
		dist = condition(t, dist, own)
	}
	return dist
}

func ancestor(t Trait, ph Phenotype, known bool) []Genotype {
	if !known {
		return t.GenotypeSpace()
	}
	return t.GenotypesFor(ph)
}

// crossAncestors crosses every pair of grandparent genotypes, each pair
// weighted uniformly.
func crossAncestors(t Trait, first, second []Genotype) Distribution {
	dist := make(Distribution)
	n := len(first) * len(second)
	if n == 0 {
		return dist
	}
	w := big.NewRat(1, int64(n))
	p := new(big.Rat)
	for _, a := range first {
		for _, b := range second {
			for g, q := range t.Cross(a, b) {
				dist.Add(g, p.Mul(w, q))
			}
		}
	}
	return dist
}

// condition restricts dist to the genotypes expressing ph and renormalizes.
// When nothing in dist expresses ph the evidence is contradictory and dist is
// returned untouched.
func condition(t Trait, dist Distribution, ph Phenotype) Distribution {
	total := new(big.Rat)
	for g, p := range dist {
		if t.PhenotypeOf(g) == ph {
			total.Add(total, p)
		}
	}
	if total.Sign() == 0 {
		return dist
	}
	out := make(Distribution, len(dist))
	for g, p := range dist {
		if t.PhenotypeOf(g) == ph {
			out[g] = new(big.Rat).Quo(p, total)
		}
	}
	return out
}

// ChildPhenotypes crosses every father genotype with every mother genotype and
// accumulates the offspring into a phenotype distribution.
func ChildPhenotypes(t Trait, father, mother Distribution) PhenotypeDist {
	out := make(PhenotypeDist)
	w := new(big.Rat)
	p := new(big.Rat)
	for fg, fp := range father {
		for mg, mp := range mother {
			w.Mul(fp, mp)
			for g, q := range t.Cross(fg, mg) {
				out.Add(t.PhenotypeOf(g), p.Mul(w, q))
			}
		}
	}
	return out
}

// calculate runs the whole per-trait pipeline.
func calculate(t Trait, father, mother Evidence, prior Prior) PhenotypeDist {
	return ChildPhenotypes(t, InferParent(t, father, prior), InferParent(t, mother, prior))
}
