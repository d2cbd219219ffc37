package genetics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenotypeSpaceSizes(t *testing.T) {
	tests := []struct {
		trait Trait
		want  int
	}{
		{RhFactor, 3},
		{Dimples, 3},
		{Freckles, 3},
		{HairType, 3},
		{BloodType, 6},
		{EyeColor, 9},
		{HairColor, 9},
		{Height, 9},
	}

	for _, tt := range tests {
		t.Run(tt.trait.Name(), func(t *testing.T) {
			assert.Len(t, tt.trait.GenotypeSpace(), tt.want)
		})
	}
}

func TestGenotypesFor(t *testing.T) {
	tests := []struct {
		name  string
		trait Trait
		ph    Phenotype
		want  int
	}{
		{"rh dominant", RhFactor, "pos", 2},
		{"rh recessive", RhFactor, "neg", 1},
		{"curly", HairType, "curly", 1},
		{"wavy", HairType, "wavy", 1},
		{"straight", HairType, "straight", 1},
		{"blood O", BloodType, "O", 1},
		{"blood A", BloodType, "A", 2},
		{"blood B", BloodType, "B", 2},
		{"blood AB", BloodType, "AB", 1},
		{"brown eyes", EyeColor, "brown", 6},
		{"green eyes", EyeColor, "green", 2},
		{"blue eyes", EyeColor, "blue", 1},
		{"dark hair", HairColor, "dark", 6},
		{"red hair", HairColor, "red", 2},
		{"blonde hair", HairColor, "blonde", 1},
		{"tall", Height, "tall", 3},
		{"medium", Height, "medium", 3},
		{"short", Height, "short", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := tt.trait.GenotypesFor(tt.ph)
			require.Len(t, gs, tt.want)
			for _, g := range gs {
				assert.Equal(t, tt.ph, tt.trait.PhenotypeOf(g), g)
			}
		})
	}
}

func TestGenotypesFor_UnrecognizedPhenotypeIsWholeSpace(t *testing.T) {
	for _, e := range Registry() {
		t.Run(e.Key, func(t *testing.T) {
			assert.ElementsMatch(t, e.Trait.GenotypeSpace(), e.Trait.GenotypesFor("purple"))
		})
	}
}

func TestPhenotypeOf_BloodType(t *testing.T) {
	tests := []struct {
		a, b Allele
		want Phenotype
	}{
		{"IA", "IA", "A"},
		{"IA", "i", "A"},
		{"IB", "IB", "B"},
		{"IB", "i", "B"},
		{"IA", "IB", "AB"},
		{"i", "i", "O"},
	}

	for _, tt := range tests {
		g := OneLocus(tt.a, tt.b, NormalizeLexical)
		assert.Equal(t, tt.want, BloodType.PhenotypeOf(g), g)
	}
}

func TestPhenotypeOf_Height(t *testing.T) {
	tests := []struct {
		g    Genotype
		want Phenotype
	}{
		{TwoLoci("A", "A", "B", "B", Normalize), "tall"},
		{TwoLoci("A", "a", "B", "B", Normalize), "tall"},
		{TwoLoci("A", "a", "B", "b", Normalize), "medium"},
		{TwoLoci("A", "A", "b", "b", Normalize), "medium"},
		{TwoLoci("a", "a", "B", "b", Normalize), "short"},
		{TwoLoci("a", "a", "b", "b", Normalize), "short"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Height.PhenotypeOf(tt.g), tt.g)
	}
}

func TestPhenotypeOf_EyeColorHierarchy(t *testing.T) {
	assert.Equal(t, Phenotype("brown"), EyeColor.PhenotypeOf(TwoLoci("B", "b", "g", "g", Normalize)))
	assert.Equal(t, Phenotype("brown"), EyeColor.PhenotypeOf(TwoLoci("B", "b", "G", "G", Normalize)))
	assert.Equal(t, Phenotype("green"), EyeColor.PhenotypeOf(TwoLoci("b", "b", "G", "g", Normalize)))
	assert.Equal(t, Phenotype("blue"), EyeColor.PhenotypeOf(TwoLoci("b", "b", "g", "g", Normalize)))
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		trait  Trait
		label  string
		want   Phenotype
		wantOK bool
	}{
		{EyeColor, "hazel", "brown", true},
		{EyeColor, "gray", "blue", true},
		{EyeColor, "green", "green", true},
		{EyeColor, "violet", "", false},
		{HairColor, "black", "dark", true},
		{HairColor, "dark_brown", "dark", true},
		{HairColor, "brown", "dark", true},
		{HairColor, "blonde", "blonde", true},
		{HairColor, "dark", "", false},
		{BloodType, "AB", "AB", true},
		{BloodType, "ab", "", false},
		{RhFactor, "neg", "neg", true},
		{RhFactor, "yes", "", false},
		{HairType, "wavy", "wavy", true},
		{HairType, "frizzy", "", false},
		{Height, "medium", "medium", true},
	}

	for _, tt := range tests {
		t.Run(tt.trait.Name()+"/"+tt.label, func(t *testing.T) {
			got, ok := tt.trait.Canonical(tt.label)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLabelsAreCanonical(t *testing.T) {
	for _, e := range Registry() {
		for _, l := range e.Trait.Labels() {
			ph, ok := e.Trait.Canonical(l)
			assert.True(t, ok, "%s label %q", e.Key, l)
			assert.Contains(t, e.Trait.Phenotypes(), ph)
		}
	}
}

func TestVariants(t *testing.T) {
	assert.Equal(t, VariantSimpleDominance, RhFactor.Variant())
	assert.Equal(t, VariantIncompleteDominance, HairType.Variant())
	assert.Equal(t, VariantCodominance, BloodType.Variant())
	assert.Equal(t, VariantTwoGene, EyeColor.Variant())
	assert.Equal(t, VariantTwoGene, Height.Variant())
}

func TestParsePrior(t *testing.T) {
	p, err := ParsePrior("")
	require.NoError(t, err)
	assert.Equal(t, PriorUniform, p)

	p, err = ParsePrior(" Mendelian ")
	require.NoError(t, err)
	assert.Equal(t, PriorMendelian, p)
	assert.Equal(t, "mendelian", p.String())

	_, err = ParsePrior("hardy-weinberg")
	assert.ErrorIs(t, err, ErrUnknownPrior)
}
