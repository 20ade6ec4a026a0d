package catalog

// PatternCategory is one of the three top-level GoF classifications
type PatternCategory string

const (
	CategoryCreational PatternCategory = "Creational"
	CategoryStructural PatternCategory = "Structural"
	CategoryBehavioral PatternCategory = "Behavioral"
)

// Categories returns the three categories in canonical GoF order
func Categories() []PatternCategory {
	return []PatternCategory{
		CategoryCreational,
		CategoryStructural,
		CategoryBehavioral,
	}
}

// Valid reports whether c is one of the canonical categories
func (c PatternCategory) Valid() bool {
	switch c {
	case CategoryCreational, CategoryStructural, CategoryBehavioral:
		return true
	}
	return false
}

// Frequency is the qualitative usage-frequency tag attached to each pattern
type Frequency string

const (
	FrequencyVeryFrequent Frequency = "Very Frequent"
	FrequencyFrequent     Frequency = "Frequent"
	FrequencyModerate     Frequency = "Moderate"
	FrequencySpecialized  Frequency = "Specialized"
)

// Frequencies returns all frequency tags, most common first
func Frequencies() []Frequency {
	return []Frequency{
		FrequencyVeryFrequent,
		FrequencyFrequent,
		FrequencyModerate,
		FrequencySpecialized,
	}
}

// Valid reports whether f is one of the known frequency tags
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyVeryFrequent, FrequencyFrequent, FrequencyModerate, FrequencySpecialized:
		return true
	}
	return false
}
