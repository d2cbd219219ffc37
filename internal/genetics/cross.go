package genetics

import "math/big"

var (
	quarter   = big.NewRat(1, 4)
	sixteenth = big.NewRat(1, 16)
)

// CrossPairs is the single-locus Punnett square: each of the four gamete
// combinations carries weight 1/4 and collisions are summed.
func CrossPairs(father, mother Pair, norm Normalizer) Distribution {
	out := make(Distribution, 4)
	for _, a := range father {
		for _, b := range mother {
			out.Add(Genotype{First: norm(a, b)}, quarter)
		}
	}
	return out
}

// CrossLoci is the two-locus Punnett square. Each parent contributes one of
// four gametes (one allele per locus), giving 16 outcomes of weight 1/16.
// The loci are normalized independently.
func CrossLoci(father, mother Genotype, norm Normalizer) Distribution {
	out := make(Distribution, 9)
	fg, mg := gametes(father), gametes(mother)
	for _, f := range fg {
		for _, m := range mg {
			out.Add(Genotype{First: norm(f[0], m[0]), Second: norm(f[1], m[1])}, sixteenth)
		}
	}
	return out
}

func gametes(g Genotype) [4][2]Allele {
	return [4][2]Allele{
		{g.First[0], g.Second[0]},
		{g.First[0], g.Second[1]},
		{g.First[1], g.Second[0]},
		{g.First[1], g.Second[1]},
	}
}
