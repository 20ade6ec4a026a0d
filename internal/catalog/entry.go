package catalog

// PatternEntry is a single row of the catalogue: one GoF design pattern
// with its classification, one-line purpose, and usage guidance.
type PatternEntry struct {
	Name           string          `json:"name" yaml:"name" db:"name"`
	Category       PatternCategory `json:"category" yaml:"category" db:"category"`
	Purpose        string          `json:"purpose" yaml:"purpose" db:"purpose"`
	Frequency      Frequency       `json:"frequency" yaml:"frequency" db:"frequency"`
	ExampleContext string          `json:"example_context,omitempty" yaml:"example_context,omitempty" db:"example_context"`
}
