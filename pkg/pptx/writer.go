package pptx

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Save writes the presentation to path as a .pptx file.
func (p *Presentation) Save(path string) error {
	if len(p.slides) == 0 {
		return fmt.Errorf("presentation has no slides")
	}
	for i, s := range p.slides {
		if err := s.validate(); err != nil {
			return fmt.Errorf("slide %d: %w", i+1, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	if err := p.writeParts(zw); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}
	return nil
}

func (s *Slide) validate() error {
	if s.hasTitle {
		if err := validatePt(s.title.SizePt); err != nil {
			return err
		}
	}
	for _, tb := range s.textBoxes {
		for _, line := range tb.lines {
			if err := validatePt(line.SizePt); err != nil {
				return err
			}
		}
	}
	for _, pic := range s.pictures {
		if _, err := os.Stat(pic.path); err != nil {
			return fmt.Errorf("picture %s: %w", pic.path, err)
		}
	}
	return nil
}

func (p *Presentation) writeParts(zw *zip.Writer) error {
	static := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", p.contentTypes()},
		{"_rels/.rels", rootRels},
		{"ppt/presentation.xml", p.presentationXML()},
		{"ppt/_rels/presentation.xml.rels", p.presentationRelsXML()},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRels},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRels},
		{"ppt/notesMasters/notesMaster1.xml", notesMasterXML},
		{"ppt/notesMasters/_rels/notesMaster1.xml.rels", notesMasterRels},
		{"ppt/theme/theme1.xml", themeXML},
	}
	for _, part := range static {
		if err := writeEntry(zw, part.name, part.content); err != nil {
			return err
		}
	}

	for i, slide := range p.slides {
		n := i + 1
		if err := writeEntry(zw, fmt.Sprintf("ppt/slides/slide%d.xml", n), slide.xml()); err != nil {
			return err
		}
		if err := writeEntry(zw, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), slide.relsXML(n)); err != nil {
			return err
		}
		for j, pic := range slide.pictures {
			if err := copyEntry(zw, mediaName(n, j), pic.path); err != nil {
				return err
			}
		}
		if slide.notes != "" {
			if err := writeEntry(zw, fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", n), slide.notesXML()); err != nil {
				return err
			}
			if err := writeEntry(zw, fmt.Sprintf("ppt/notesSlides/_rels/notesSlide%d.xml.rels", n), notesRelsXML(n)); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeEntry(zw *zip.Writer, name, content string) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("create entry %s: %w", name, err)
	}
	if _, err := io.WriteString(w, content); err != nil {
		return fmt.Errorf("write entry %s: %w", name, err)
	}
	return nil
}

func copyEntry(zw *zip.Writer, name, srcPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", srcPath, err)
	}
	defer src.Close()

	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("create entry %s: %w", name, err)
	}
	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("copy %s: %w", srcPath, err)
	}
	return nil
}

func mediaName(slide, pic int) string {
	return fmt.Sprintf("ppt/media/image%d_%d.png", slide, pic+1)
}

func (p *Presentation) contentTypes() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` + "\n")
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` + "\n")
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>` + "\n")
	b.WriteString(`<Default Extension="png" ContentType="image/png"/>` + "\n")

	override := func(part, ctype string) {
		fmt.Fprintf(&b, `<Override PartName="%s" ContentType="%s"/>`+"\n", part, ctype)
	}
	override("/ppt/presentation.xml", "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml")
	override("/ppt/slideMasters/slideMaster1.xml", "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml")
	override("/ppt/slideLayouts/slideLayout1.xml", "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml")
	override("/ppt/notesMasters/notesMaster1.xml", "application/vnd.openxmlformats-officedocument.presentationml.notesMaster+xml")
	override("/ppt/theme/theme1.xml", "application/vnd.openxmlformats-officedocument.theme+xml")
	for i, slide := range p.slides {
		override(fmt.Sprintf("/ppt/slides/slide%d.xml", i+1),
			"application/vnd.openxmlformats-officedocument.presentationml.slide+xml")
		if slide.notes != "" {
			override(fmt.Sprintf("/ppt/notesSlides/notesSlide%d.xml", i+1),
				"application/vnd.openxmlformats-officedocument.presentationml.notesSlide+xml")
		}
	}

	b.WriteString("</Types>")
	return b.String()
}

func (p *Presentation) presentationXML() string {
	var ids strings.Builder
	for i := range p.slides {
		// rId1..rId3 are master, notes master and theme.
		fmt.Fprintf(&ids, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, 4+i)
	}

	return xmlHeader + fmt.Sprintf(`<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>
<p:notesMasterIdLst><p:notesMasterId r:id="rId2"/></p:notesMasterIdLst>
<p:sldIdLst>%s</p:sldIdLst>
<p:sldSz cx="%d" cy="%d"/>
<p:notesSz cx="6858000" cy="9144000"/>
</p:presentation>`, ids.String(), p.slideWidth, p.slideHeight)
}

func (p *Presentation) presentationRelsXML() string {
	var slides strings.Builder
	for i := range p.slides {
		fmt.Fprintf(&slides,
			`<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`+"\n",
			4+i, i+1)
	}
	return fmt.Sprintf(presentationRels, slides.String())
}

func notesRelsXML(n int) string {
	return xmlHeader + fmt.Sprintf(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesMaster" Target="../notesMasters/notesMaster1.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="../slides/slide%d.xml"/>
</Relationships>`, n)
}
