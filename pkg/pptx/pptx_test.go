package pptx

import (
	"archive/zip"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestRoundtrip(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "pic.png")
	writePNG(t, imgPath)

	p := New("16:9")
	w, h := p.SlideSize()
	if w != 12192000 || h != 6858000 {
		t.Fatalf("16:9 slide size = %dx%d EMU", w, h)
	}

	s1 := p.AddSlide()
	s1.SetTitle("First Slide", 32, Box{X: Inches(0.5), Y: Inches(0.3), W: Inches(12), H: Inches(1.2)})
	s1.AddTextBox(Box{X: Inches(0.5), Y: Inches(1.8), W: Inches(12), H: Inches(5)}, []TextLine{
		{Text: "• point one", SizePt: 14},
		{Text: "• point two", SizePt: 14},
	})
	s1.SetNotes("Narration for the first slide.")

	s2 := p.AddSlide()
	s2.SetTitle("Second Slide", 28, Box{X: Inches(0.5), Y: Inches(0.3), W: Inches(12), H: Inches(1.2)})
	s2.AddTextBox(Box{X: Inches(0.5), Y: Inches(1.8), W: Inches(6), H: Inches(5)}, []TextLine{
		{Text: "• left column", SizePt: 12},
	})
	s2.AddPicture(imgPath, Box{X: Inches(7), Y: Inches(2), W: Inches(5), H: Inches(4)})
	s2.SetNotes("Narration for the second slide.")

	out := filepath.Join(dir, "deck.pptx")
	if err := p.Save(out); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	deck, err := Open(out)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if len(deck.Slides) != 2 {
		t.Fatalf("got %d slides, want 2", len(deck.Slides))
	}

	got := deck.Slides[0]
	if got.Title != "First Slide" {
		t.Errorf("slide 1 title = %q", got.Title)
	}
	if len(got.Body) != 2 || got.Body[0] != "• point one" || got.Body[1] != "• point two" {
		t.Errorf("slide 1 body = %v", got.Body)
	}
	if got.Notes != "Narration for the first slide." {
		t.Errorf("slide 1 notes = %q", got.Notes)
	}

	got = deck.Slides[1]
	if got.Title != "Second Slide" {
		t.Errorf("slide 2 title = %q", got.Title)
	}
	if got.Notes != "Narration for the second slide." {
		t.Errorf("slide 2 notes = %q", got.Notes)
	}
}

func TestArchiveParts(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "pic.png")
	writePNG(t, imgPath)

	p := New("4:3")
	s := p.AddSlide()
	s.SetTitle("Only Slide", 32, Box{W: Inches(9), H: Inches(1)})
	s.AddPicture(imgPath, Box{Y: Inches(2), W: Inches(4), H: Inches(3)})
	s.SetNotes("notes")

	out := filepath.Join(dir, "deck.pptx")
	if err := p.Save(out); err != nil {
		t.Fatal(err)
	}

	zr, err := zip.OpenReader(out)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/notesMasters/notesMaster1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/_rels/slide1.xml.rels",
		"ppt/notesSlides/notesSlide1.xml",
		"ppt/media/image1_1.png",
	} {
		if !names[want] {
			t.Errorf("archive missing %s", want)
		}
	}
}

func TestEscapesMarkup(t *testing.T) {
	dir := t.TempDir()
	p := New("16:9")
	s := p.AddSlide()
	s.SetTitle(`Q&A <review> "quotes"`, 32, Box{W: Inches(12), H: Inches(1)})
	s.AddTextBox(Box{Y: Inches(2), W: Inches(12), H: Inches(4)}, []TextLine{
		{Text: "a < b && b > c", SizePt: 14},
	})

	out := filepath.Join(dir, "deck.pptx")
	if err := p.Save(out); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	deck, err := Open(out)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if deck.Slides[0].Title != `Q&A <review> "quotes"` {
		t.Errorf("title = %q", deck.Slides[0].Title)
	}
	if deck.Slides[0].Body[0] != "a < b && b > c" {
		t.Errorf("body = %q", deck.Slides[0].Body[0])
	}
}

func TestSaveEmptyPresentation(t *testing.T) {
	p := New("16:9")
	if err := p.Save(filepath.Join(t.TempDir(), "deck.pptx")); err == nil {
		t.Error("Save() on empty deck should fail")
	}
}

func TestSaveRejectsBadFontSize(t *testing.T) {
	p := New("16:9")
	s := p.AddSlide()
	s.SetTitle("Bad", 0, Box{W: Inches(1), H: Inches(1)})
	if err := p.Save(filepath.Join(t.TempDir(), "deck.pptx")); err == nil {
		t.Error("Save() should reject a 0pt font")
	}
}

func TestSaveRejectsMissingPicture(t *testing.T) {
	p := New("16:9")
	s := p.AddSlide()
	s.SetTitle("Pic", 32, Box{W: Inches(1), H: Inches(1)})
	s.AddPicture(filepath.Join(t.TempDir(), "absent.png"), Box{W: Inches(1), H: Inches(1)})
	if err := p.Save(filepath.Join(t.TempDir(), "deck.pptx")); err == nil {
		t.Error("Save() should fail on a missing picture file")
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.pptx")); err == nil {
		t.Error("Open() on a missing file should fail")
	}
}

func TestInches(t *testing.T) {
	if Inches(1) != 914400 {
		t.Errorf("Inches(1) = %d", Inches(1))
	}
	if Inches(0.5) != 457200 {
		t.Errorf("Inches(0.5) = %d", Inches(0.5))
	}
}
