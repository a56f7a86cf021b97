package pptx

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Slide part XML generation. Shape IDs start at 2; id 1 is the group
// shape that roots the tree.

func (s *Slide) xml() string {
	var shapes strings.Builder
	id := 2

	if s.hasTitle {
		writeTextShape(&shapes, id, "Title", "title", s.titleBox, []TextLine{s.title})
		id++
	}
	for _, tb := range s.textBoxes {
		writeTextShape(&shapes, id, fmt.Sprintf("TextBox %d", id), "", tb.box, tb.lines)
		id++
	}
	for j, pic := range s.pictures {
		writePicture(&shapes, id, j, pic.box)
		id++
	}

	return xmlHeader + fmt.Sprintf(`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
<p:cSld><p:spTree>
<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>
%s</p:spTree></p:cSld>
<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>
</p:sld>`, shapes.String())
}

func writeTextShape(b *strings.Builder, id int, name, phType string, box Box, lines []TextLine) {
	ph := ""
	if phType != "" {
		ph = fmt.Sprintf(`<p:ph type="%s"/>`, phType)
	}

	fmt.Fprintf(b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr>%s</p:nvPr></p:nvSpPr>`,
		id, escape(name), ph)
	fmt.Fprintf(b, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`,
		box.X, box.Y, box.W, box.H)

	b.WriteString(`<p:txBody><a:bodyPr wrap="square"><a:normAutofit/></a:bodyPr><a:lstStyle/>`)
	for _, line := range lines {
		bold := 0
		if line.Bold {
			bold = 1
		}
		fmt.Fprintf(b, `<a:p><a:r><a:rPr lang="en-US" sz="%d" b="%d" dirty="0"/><a:t>%s</a:t></a:r></a:p>`,
			line.SizePt*100, bold, escape(line.Text))
	}
	b.WriteString(`</p:txBody></p:sp>` + "\n")
}

func writePicture(b *strings.Builder, id, picIndex int, box Box) {
	// Picture relationships start at rId3; rId1 is the layout and rId2
	// the notes slide.
	rid := 3 + picIndex
	fmt.Fprintf(b, `<p:pic><p:nvPicPr><p:cNvPr id="%d" name="Picture %d"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr>`, id, picIndex+1)
	fmt.Fprintf(b, `<p:blipFill><a:blip r:embed="rId%d"/><a:stretch><a:fillRect/></a:stretch></p:blipFill>`, rid)
	fmt.Fprintf(b, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr></p:pic>`+"\n",
		box.X, box.Y, box.W, box.H)
}

func (s *Slide) relsXML(n int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` + "\n")
	b.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>` + "\n")
	if s.notes != "" {
		fmt.Fprintf(&b, `<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide" Target="../notesSlides/notesSlide%d.xml"/>`+"\n", n)
	}
	for j := range s.pictures {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="../media/image%d_%d.png"/>`+"\n",
			3+j, n, j+1)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func (s *Slide) notesXML() string {
	return xmlHeader + fmt.Sprintf(`<p:notes xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
<p:cSld><p:spTree>
<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>
<p:sp><p:nvSpPr><p:cNvPr id="2" name="Notes Placeholder"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr><p:ph type="body" idx="1"/></p:nvPr></p:nvSpPr><p:spPr/>
<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US" dirty="0"/><a:t>%s</a:t></a:r></a:p></p:txBody></p:sp>
</p:spTree></p:cSld>
<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>
</p:notes>`, escape(s.notes))
}

func escape(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}
