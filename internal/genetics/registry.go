package genetics

// Trait keys as they appear in calculation results.
const (
	TraitEyeColor  = "eye_color"
	TraitHairColor = "hair_color"
	TraitHairType  = "hair_type"
	TraitBlood     = "blood"
	TraitRh        = "rh"
	TraitHeight    = "height"
	TraitDimples   = "dimples"
	TraitFreckles  = "freckles"
)

var (
	EyeColor = NewEpistatic("Eye Color", "B", "G", "brown", "green", "blue", []Category{
		{Label: "brown", Phenotype: "brown"},
		{Label: "hazel", Phenotype: "brown"},
		{Label: "green", Phenotype: "green"},
		{Label: "blue", Phenotype: "blue"},
		{Label: "gray", Phenotype: "blue"},
	})

	HairColor = NewEpistatic("Hair Color", "D", "R", "dark", "red", "blonde", []Category{
		{Label: "black", Phenotype: "dark"},
		{Label: "dark_brown", Phenotype: "dark"},
		{Label: "brown", Phenotype: "dark"},
		{Label: "red", Phenotype: "red"},
		{Label: "blonde", Phenotype: "blonde"},
	})

	HairType = NewIncompleteDominance("Hair Type", "C", "s", "curly", "wavy", "straight")

	BloodType = NewCodominance("Blood Type", "IA", "IB", "i", "A", "B", "AB", "O")

	RhFactor = NewSimpleDominance("Rh Factor", "R", "pos", "neg")

	Height = NewAdditive("Height", "A", "B", "tall", "medium", "short", []Category{
		{Label: "tall", Phenotype: "tall"},
		{Label: "medium", Phenotype: "medium"},
		{Label: "short", Phenotype: "short"},
	})

	Dimples = NewSimpleDominance("Dimples", "D", "yes", "no")

	Freckles = NewSimpleDominance("Freckles", "F", "yes", "no")
)

// Entry binds a result key to its trait model and the suffix of its input
// fields.
type Entry struct {
	Key    string
	Suffix string
	Trait  Trait
}

// Field names for one trait with suffix S.
func (e Entry) FatherField() string { return "father_" + e.Suffix }
func (e Entry) MotherField() string { return "mother_" + e.Suffix }
func (e Entry) PaternalGrandfather() string { return "pf_father_" + e.Suffix }
func (e Entry) PaternalGrandmother() string { return "pf_mother_" + e.Suffix }
func (e Entry) MaternalGrandfather() string { return "pm_father_" + e.Suffix }
func (e Entry) MaternalGrandmother() string { return "pm_mother_" + e.Suffix }

// Fields lists every input field the entry reads.
func (e Entry) Fields() []string {
	return []string{
		e.FatherField(), e.MotherField(),
		e.PaternalGrandfather(), e.PaternalGrandmother(),
		e.MaternalGrandfather(), e.MaternalGrandmother(),
	}
}

var registry = []Entry{
	{Key: TraitEyeColor, Suffix: "eye", Trait: EyeColor},
	{Key: TraitHairColor, Suffix: "hair_color", Trait: HairColor},
	{Key: TraitHairType, Suffix: "hair_type", Trait: HairType},
	{Key: TraitBlood, Suffix: "blood", Trait: BloodType},
	{Key: TraitRh, Suffix: "rh", Trait: RhFactor},
	{Key: TraitHeight, Suffix: "height", Trait: Height},
	{Key: TraitDimples, Suffix: "dimples", Trait: Dimples},
	{Key: TraitFreckles, Suffix: "freckles", Trait: Freckles},
}

// Registry returns the supported traits in display order.
func Registry() []Entry {
	return append([]Entry(nil), registry...)
}

// Lookup finds the entry for a result key.
func Lookup(key string) (Entry, bool) {
	for _, e := range registry {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}
