package catalog

// builtinEntries is the canonical 23-pattern GoF catalogue: 5 creational,
// 7 structural, 11 behavioral, in book order within each group. Example
// contexts reference the scenario each pattern is usually taught with.
var builtinEntries = []PatternEntry{
	// Creational
	{
		Name:           "Factory Pattern",
		Category:       CategoryCreational,
		Purpose:        "Delegate object creation to a factory method so callers depend on an interface, not concrete classes.",
		Frequency:      FrequencyVeryFrequent,
		ExampleContext: "Creating credit or debit transaction objects from a payment-type tag.",
	},
	{
		Name:           "Abstract Factory Pattern",
		Category:       CategoryCreational,
		Purpose:        "Produce families of related objects without naming their concrete classes.",
		Frequency:      FrequencyModerate,
		ExampleContext: "Switching a whole widget set between light and dark themed variants at once.",
	},
	{
		Name:           "Builder Pattern",
		Category:       CategoryCreational,
		Purpose:        "Assemble a complex object step by step, separating construction from representation.",
		Frequency:      FrequencyFrequent,
		ExampleContext: "Composing a multi-section report where header, body, and footer vary by format.",
	},
	{
		Name:           "Prototype Pattern",
		Category:       CategoryCreational,
		Purpose:        "Create new objects by cloning a pre-configured prototype instead of building from scratch.",
		Frequency:      FrequencyModerate,
		ExampleContext: "Spawning game entities by cloning tuned template monsters and items.",
	},
	{
		Name:           "Singleton Pattern",
		Category:       CategoryCreational,
		Purpose:        "Guarantee a class has exactly one instance and provide a global access point to it.",
		Frequency:      FrequencyVeryFrequent,
		ExampleContext: "A process-wide logger writing every component's output to one shared file.",
	},

	// Structural
	{
		Name:           "Adapter Pattern",
		Category:       CategoryStructural,
		Purpose:        "Wrap an incompatible interface so existing code can be used where a different contract is expected.",
		Frequency:      FrequencyVeryFrequent,
		ExampleContext: "Exposing a legacy payment gateway behind a modern payment-processor interface.",
	},
	{
		Name:           "Decorator Pattern",
		Category:       CategoryStructural,
		Purpose:        "Attach responsibilities to an object dynamically by wrapping it in same-interface layers.",
		Frequency:      FrequencyFrequent,
		ExampleContext: "Stacking SMS and Slack delivery on top of a base email notifier.",
	},
	{
		Name:           "Composite Pattern",
		Category:       CategoryStructural,
		Purpose:        "Compose objects into tree structures and treat leaves and containers uniformly.",
		Frequency:      FrequencyModerate,
		ExampleContext: "Rendering a UI where panels contain buttons, labels, and nested panels.",
	},
	{
		Name:           "Proxy Pattern",
		Category:       CategoryStructural,
		Purpose:        "Stand in for another object to control access, defer cost, or add bookkeeping.",
		Frequency:      FrequencyFrequent,
		ExampleContext: "A document viewer that loads the heavyweight document only on first display.",
	},
	{
		Name:           "Facade Pattern",
		Category:       CategoryStructural,
		Purpose:        "Offer one simple entry point that hides a subsystem of cooperating classes.",
		Frequency:      FrequencyFrequent,
		ExampleContext: "A single convert() call fronting decode, compress, and transcode stages.",
	},
	{
		Name:           "Bridge Pattern",
		Category:       CategoryStructural,
		Purpose:        "Split an abstraction from its implementation so the two can vary independently.",
		Frequency:      FrequencySpecialized,
		ExampleContext: "Shapes drawn through interchangeable vector and raster renderers.",
	},
	{
		Name:           "Flyweight Pattern",
		Category:       CategoryStructural,
		Purpose:        "Share intrinsic state between many fine-grained objects to cut memory use.",
		Frequency:      FrequencySpecialized,
		ExampleContext: "A text editor sharing one glyph object per character across the document.",
	},

	// Behavioral
	{
		Name:           "Chain of Responsibility Pattern",
		Category:       CategoryBehavioral,
		Purpose:        "Pass a request along a chain of handlers until one of them takes responsibility.",
		Frequency:      FrequencyModerate,
		ExampleContext: "Escalating support tickets from first-line agents to specialists to managers.",
	},
	{
		Name:           "Command Pattern",
		Category:       CategoryBehavioral,
		Purpose:        "Reify requests as objects so they can be queued, logged, and undone.",
		Frequency:      FrequencyFrequent,
		ExampleContext: "Text-editor insert and delete operations kept on an undo stack.",
	},
	{
		Name:           "Interpreter Pattern",
		Category:       CategoryBehavioral,
		Purpose:        "Represent a grammar as a class hierarchy and evaluate sentences by walking it.",
		Frequency:      FrequencySpecialized,
		ExampleContext: "Evaluating a small boolean query language against in-memory records.",
	},
	{
		Name:           "Iterator Pattern",
		Category:       CategoryBehavioral,
		Purpose:        "Traverse a collection sequentially without exposing its internal layout.",
		Frequency:      FrequencyVeryFrequent,
		ExampleContext: "Walking a playlist the same way whether it is backed by a list or a tree.",
	},
	{
		Name:           "Mediator Pattern",
		Category:       CategoryBehavioral,
		Purpose:        "Centralize the interactions of a set of peers in one coordinating object.",
		Frequency:      FrequencyModerate,
		ExampleContext: "Chat-room participants messaging each other only through the room.",
	},
	{
		Name:           "Memento Pattern",
		Category:       CategoryBehavioral,
		Purpose:        "Capture an object's state in an opaque token so it can be restored later.",
		Frequency:      FrequencySpecialized,
		ExampleContext: "Snapshotting a form before risky edits and rolling back on cancel.",
	},
	{
		Name:           "Observer Pattern",
		Category:       CategoryBehavioral,
		Purpose:        "Let subscribers register with a subject and be notified whenever its state changes.",
		Frequency:      FrequencyVeryFrequent,
		ExampleContext: "Price displays and alert rules reacting to updates from one data feed.",
	},
	{
		Name:           "State Pattern",
		Category:       CategoryBehavioral,
		Purpose:        "Move state-dependent behavior into state objects so the owner changes behavior by swapping them.",
		Frequency:      FrequencyModerate,
		ExampleContext: "A media player whose play button acts differently when stopped, playing, or paused.",
	},
	{
		Name:           "Strategy Pattern",
		Category:       CategoryBehavioral,
		Purpose:        "Define interchangeable algorithms behind one interface and pick one at runtime.",
		Frequency:      FrequencyVeryFrequent,
		ExampleContext: "Selecting regular, sale, or loyalty pricing when totalling an order.",
	},
	{
		Name:           "Template Method Pattern",
		Category:       CategoryBehavioral,
		Purpose:        "Fix an algorithm's skeleton in a base class and let subclasses fill in the steps.",
		Frequency:      FrequencyFrequent,
		ExampleContext: "A data pipeline with fixed load-process-save stages and per-format steps.",
	},
	{
		Name:           "Visitor Pattern",
		Category:       CategoryBehavioral,
		Purpose:        "Add operations over an object structure without modifying the element classes.",
		Frequency:      FrequencySpecialized,
		ExampleContext: "Export and word-count passes visiting paragraphs, tables, and images.",
	},
}

// Builtin returns the canonical GoF catalogue. The builtin data is
// validated by the same path as file-loaded catalogues; a failure here is
// a programming error, so it panics rather than returning an error.
func Builtin() *Catalog {
	c, err := New(builtinEntries)
	if err != nil {
		panic("catalog: builtin data invalid: " + err.Error())
	}
	return c
}
