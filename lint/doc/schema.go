package doc

// Schema binds a document type to its folder convention and minimal field
// set. The loader uses Dir/Glob to discover files; the validator uses
// Required to check completeness after parse.
type Schema struct {
	Type Type

	// Dir is the numbered folder under the system subtree that holds this
	// document type.
	Dir string

	// Glob matches the document files inside Dir, relative to Dir.
	Glob string

	// Required lists the metadata fields every document of this type must
	// declare. Title is tracked on the Document itself but listed here under
	// its metadata key.
	Required []string
}

// Schemas describes the corpus folder convention, one entry per type.
// Messages have no folder of their own: they live in per-screen messages.yml
// files, so their Dir is empty and discovery rides on the screen walk.
var Schemas = map[Type]Schema{
	Screen: {
		Type:     Screen,
		Dir:      "21-screens",
		Glob:     "*/screen.yml",
		Required: []string{"title"},
	},
	Component: {
		Type:     Component,
		Dir:      "22-components",
		Glob:     "*.yml",
		Required: []string{"title"},
	},
	Requirement: {
		Type:     Requirement,
		Dir:      "23-requirements",
		Glob:     "RF-*.yml",
		Required: []string{"title"},
	},
	Rule: {
		Type:     Rule,
		Dir:      "24-rules",
		Glob:     "RN-*.yml",
		Required: []string{"title"},
	},
	Flow: {
		Type:     Flow,
		Dir:      "25-flows",
		Glob:     "UC-*.yml",
		Required: []string{"title"},
	},
	Message: {
		Type:     Message,
		Required: []string{"title", "text"},
	},
}

// TraceabilityDir is where the generated matrix artifact lives, alongside
// the numbered document folders.
const TraceabilityDir = "27-traceability"

// SystemsDir is the corpus folder that holds one subtree per system
const SystemsDir = "20-systems"
