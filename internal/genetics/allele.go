package genetics

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Allele is one variant form of a gene. Upper-case alleles are dominant,
// lower-case recessive. ABO uses the multi-character symbols IA, IB and i.
type Allele string

// Pair is the canonical ordered pair of alleles an individual carries at one locus.
type Pair [2]Allele

func (p Pair) String() string {
	if len(p[0]) > 1 || len(p[1]) > 1 {
		return string(p[0]) + "/" + string(p[1])
	}
	return string(p[0]) + string(p[1])
}

// Contains reports whether a is one of the pair's alleles.
func (p Pair) Contains(a Allele) bool {
	return p[0] == a || p[1] == a
}

// Count returns how many copies of a the pair carries.
func (p Pair) Count(a Allele) int {
	n := 0
	for _, x := range p {
		if x == a {
			n++
		}
	}
	return n
}

// Normalizer turns an unordered allele pair into its canonical Pair.
type Normalizer func(a, b Allele) Pair

// Dominant reports whether a is written as a dominant allele.
func Dominant(a Allele) bool {
	r, _ := utf8.DecodeRuneInString(string(a))
	return r != utf8.RuneError && unicode.IsUpper(r)
}

// Normalize places the dominant allele first. When dominance does not decide
// the order, the pair falls back to descending lexical order.
func Normalize(a, b Allele) Pair {
	if a == b {
		return Pair{a, b}
	}
	da, db := Dominant(a), Dominant(b)
	switch {
	case da && !db:
		return Pair{a, b}
	case db && !da:
		return Pair{b, a}
	}
	return NormalizeLexical(a, b)
}

// NormalizeLexical orders a pair by descending lexical order only. Used for
// codominant systems where no allele is singularly dominant.
func NormalizeLexical(a, b Allele) Pair {
	if strings.Compare(string(a), string(b)) >= 0 {
		return Pair{a, b}
	}
	return Pair{b, a}
}

// DominantOf returns the upper-case (dominant) and lower-case (recessive)
// forms of a single-letter gene symbol.
func DominantOf(symbol Allele) (dominant, recessive Allele) {
	return Allele(strings.ToUpper(string(symbol))), Allele(strings.ToLower(string(symbol)))
}
