package mdarchive

// ExtractResult holds the main content located in a full HTML page together
// with whatever metadata the page itself declares.
type ExtractResult struct {
	// Content is the root of the main content subtree.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	Content *Node

	// Metadata holds title, author, date and URL when the page declares them.
	// Missing values are empty.
	Metadata Metadata
}

// Extractor locates the main content of a full HTML page.
type Extractor interface {
	// Extract processes raw HTML and returns the main content subtree.
	// Returns ENOTFOUND if no content could be located.
	Extract(html string) (*ExtractResult, error)
}
