package extractor

// FontWeight classifies the dominant weight of a section heading.
type FontWeight string

const (
	WeightNormal FontWeight = "normal"
	WeightBold   FontWeight = "bold"
)

// Section is a contiguous document unit starting at a detected heading
// (or the start of the document) and running to the next heading.
// Sections are immutable once extracted.
type Section struct {
	// Heading is empty for content that precedes the first detected
	// heading, or when the document has no headings at all.
	Heading    string
	Paragraphs []string
	FontSize   float64
	FontWeight FontWeight
	OrderIndex int
	Pages      []int
}

// Text joins the section paragraphs into a single body string.
func (s Section) Text() string {
	out := ""
	for i, p := range s.Paragraphs {
		if i > 0 {
			out += " "
		}
		out += p
	}
	return out
}

// Document is the extractor output consumed by the analyzer.
type Document struct {
	Title     string
	PageCount int
	Sections  []Section
}
