package mdarchive

// Converter converts a located content tree into a Markdown body.
type Converter interface {
	// Convert transforms the subtree rooted at root into Markdown.
	// Returns ENOTFOUND if root is nil or empty.
	// Implementations must not mutate the tree.
	Convert(root *Node) (string, error)
}

// Prober is implemented by converters that can report whether their
// machinery initialized correctly. Callers use it to choose between a
// primary converter and a fallback.
type Prober interface {
	Probe() bool
}

// Inspector reports the Markdown structure of a converted document.
type Inspector interface {
	Inspect(markdown string) (*Structure, error)
}

// Structure summarizes the Markdown constructs found in a document.
type Structure struct {
	Headings   []Heading `json:"headings"`
	Links      int       `json:"links"`
	Images     int       `json:"images"`
	CodeBlocks int       `json:"codeBlocks"`
	Tables     int       `json:"tables"`
	Lists      int       `json:"lists"`
}

// Heading is a single heading found in a document.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}
