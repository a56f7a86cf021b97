package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const (
	nsDrawing      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPresentation = "http://schemas.openxmlformats.org/presentationml/2006/main"
)

// SlideText is the text content read back from one slide.
type SlideText struct {
	Title string
	Body  []string
	Notes string
}

// Deck is a parsed presentation.
type Deck struct {
	Slides []SlideText
}

var slidePartRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// Open reads the text content of a .pptx file: slide titles, body
// paragraphs and speaker notes, in deck order.
func Open(path string) (*Deck, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer zr.Close()

	parts := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		parts[f.Name] = f
	}

	var numbers []int
	for name := range parts {
		if m := slidePartRe.FindStringSubmatch(name); m != nil {
			n, _ := strconv.Atoi(m[1])
			numbers = append(numbers, n)
		}
	}
	if len(numbers) == 0 {
		return nil, fmt.Errorf("%s contains no slides", path)
	}
	sort.Ints(numbers)

	deck := &Deck{Slides: make([]SlideText, 0, len(numbers))}
	for _, n := range numbers {
		slide, err := parseSlide(parts[fmt.Sprintf("ppt/slides/slide%d.xml", n)])
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", n, err)
		}
		if notesPart, ok := parts[fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", n)]; ok {
			notes, err := parseNotes(notesPart)
			if err != nil {
				return nil, fmt.Errorf("notes %d: %w", n, err)
			}
			slide.Notes = notes
		}
		deck.Slides = append(deck.Slides, slide)
	}
	return deck, nil
}

// parseSlide walks the slide's shape tree collecting paragraph text.
// Title placeholders become the slide title; every other text shape
// contributes body paragraphs.
func parseSlide(part *zip.File) (SlideText, error) {
	var slide SlideText

	err := walkPart(part, func(dec *xml.Decoder, start xml.StartElement) error {
		if start.Name.Space != nsPresentation || start.Name.Local != "sp" {
			return nil
		}
		phType, paragraphs, err := parseShape(dec, start)
		if err != nil {
			return err
		}
		if phType == "title" || phType == "ctrTitle" {
			slide.Title = strings.Join(paragraphs, " ")
		} else {
			slide.Body = append(slide.Body, paragraphs...)
		}
		return nil
	})
	return slide, err
}

// parseNotes joins every paragraph in the notes part.
func parseNotes(part *zip.File) (string, error) {
	var paragraphs []string

	err := walkPart(part, func(dec *xml.Decoder, start xml.StartElement) error {
		if start.Name.Space != nsDrawing || start.Name.Local != "p" {
			return nil
		}
		text, err := paragraphText(dec, start)
		if err != nil {
			return err
		}
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return strings.Join(paragraphs, " "), nil
}

// walkPart streams the XML of a package part, calling visit for each
// start element. visit may consume the element's subtree through the
// decoder.
func walkPart(part *zip.File, visit func(*xml.Decoder, xml.StartElement) error) error {
	rc, err := part.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	dec := xml.NewDecoder(rc)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if err := visit(dec, start); err != nil {
			return err
		}
	}
}

// parseShape consumes one p:sp subtree, returning its placeholder type
// and the text of each non-empty paragraph.
func parseShape(dec *xml.Decoder, start xml.StartElement) (string, []string, error) {
	var phType string
	var paragraphs []string

	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return "", nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case t.Name.Space == nsPresentation && t.Name.Local == "ph":
				for _, attr := range t.Attr {
					if attr.Name.Local == "type" {
						phType = attr.Value
					}
				}
				depth++
			case t.Name.Space == nsDrawing && t.Name.Local == "p":
				text, err := paragraphText(dec, t)
				if err != nil {
					return "", nil, err
				}
				if text != "" {
					paragraphs = append(paragraphs, text)
				}
			default:
				depth++
			}
		case xml.EndElement:
			depth--
		}
	}
	return phType, paragraphs, nil
}

// paragraphText consumes one a:p subtree and concatenates its runs.
func paragraphText(dec *xml.Decoder, start xml.StartElement) (string, error) {
	var b strings.Builder
	inText := false

	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space == nsDrawing && t.Name.Local == "t" {
				inText = true
			}
			depth++
		case xml.EndElement:
			if t.Name.Space == nsDrawing && t.Name.Local == "t" {
				inText = false
			}
			depth--
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return strings.TrimSpace(b.String()), nil
}
