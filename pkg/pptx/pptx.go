// Package pptx writes and reads PowerPoint presentations. It covers the
// subset of Office Open XML needed for generated decks: text boxes with
// sized runs, embedded PNG pictures, and speaker notes. Files it writes
// open in PowerPoint, LibreOffice and Keynote.
package pptx

import "fmt"

// EMU (English Metric Units) per inch, the coordinate unit of OOXML.
const emuPerInch = 914400

// Slide dimensions in EMU.
const (
	widescreenWidth  = 12192000 // 13.333 in
	widescreenHeight = 6858000  // 7.5 in
	standardWidth    = 9144000  // 10 in
	standardHeight   = 6858000
)

// Inches converts inches to EMU.
func Inches(in float64) int64 {
	return int64(in * emuPerInch)
}

// Box is a rectangle on the slide, in EMU.
type Box struct {
	X, Y, W, H int64
}

// TextLine is one paragraph inside a text box.
type TextLine struct {
	Text   string
	SizePt int
	Bold   bool
}

type textBox struct {
	box   Box
	lines []TextLine
}

type picture struct {
	box  Box
	path string
}

// Slide accumulates the content of a single slide.
type Slide struct {
	title     TextLine
	titleBox  Box
	hasTitle  bool
	textBoxes []textBox
	pictures  []picture
	notes     string
}

// Presentation is a deck under construction. Build it with AddSlide and
// write it with Save.
type Presentation struct {
	slideWidth  int64
	slideHeight int64
	slides      []*Slide
}

// New creates an empty presentation. aspectRatio is "16:9" or "4:3";
// anything else defaults to 16:9.
func New(aspectRatio string) *Presentation {
	p := &Presentation{
		slideWidth:  widescreenWidth,
		slideHeight: widescreenHeight,
	}
	if aspectRatio == "4:3" {
		p.slideWidth = standardWidth
		p.slideHeight = standardHeight
	}
	return p
}

// SlideSize returns the slide dimensions in EMU.
func (p *Presentation) SlideSize() (width, height int64) {
	return p.slideWidth, p.slideHeight
}

// AddSlide appends an empty slide and returns it for population.
func (p *Presentation) AddSlide() *Slide {
	s := &Slide{}
	p.slides = append(p.slides, s)
	return s
}

// SetTitle places the slide title in the given box.
func (s *Slide) SetTitle(text string, sizePt int, box Box) {
	s.title = TextLine{Text: text, SizePt: sizePt, Bold: true}
	s.titleBox = box
	s.hasTitle = true
}

// AddTextBox adds a free-form text box with one paragraph per line.
func (s *Slide) AddTextBox(box Box, lines []TextLine) {
	if len(lines) == 0 {
		return
	}
	s.textBoxes = append(s.textBoxes, textBox{box: box, lines: lines})
}

// AddPicture embeds the PNG at path into the given box. The file is read
// at Save time.
func (s *Slide) AddPicture(path string, box Box) {
	s.pictures = append(s.pictures, picture{box: box, path: path})
}

// SetNotes attaches speaker notes to the slide.
func (s *Slide) SetNotes(text string) {
	s.notes = text
}

func validatePt(sizePt int) error {
	if sizePt < 1 || sizePt > 400 {
		return fmt.Errorf("font size %dpt out of range", sizePt)
	}
	return nil
}
