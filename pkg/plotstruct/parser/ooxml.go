package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io/fs"
	"path"
	"strconv"
	"strings"
)

// readPart returns the bytes of a package part, nil when it does not exist.
func readPart(r *zip.Reader, name string) ([]byte, error) {
	data, err := fs.ReadFile(r, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

// relsPath returns the relationships part of a package part, e.g.
// xl/worksheets/_rels/sheet1.xml.rels for xl/worksheets/sheet1.xml.
func relsPath(part string) string {
	return path.Join(path.Dir(part), "_rels", path.Base(part)+".rels")
}

// resolvePart resolves a relationship target against the part that owns
// the relationship.
func resolvePart(source, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(path.Dir(source), target)
}

// relationship is one entry of a .rels part.
type relationship struct {
	id     string
	target string
	kind   string
}

// parseRels reads every Relationship element of a .rels part.
func parseRels(data []byte) []relationship {
	var rels []relationship
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "Relationship" {
			continue
		}
		rel := relationship{
			id:     attrValue(se, "Id"),
			target: attrValue(se, "Target"),
		}
		// Type is a URI such as .../relationships/drawing; keep the last segment.
		t := attrValue(se, "Type")
		rel.kind = t[strings.LastIndex(t, "/")+1:]
		rels = append(rels, rel)
	}
	return rels
}

// parseWorkbookSheets returns sheet names keyed by relationship id, plus
// the names in workbook order.
func parseWorkbookSheets(data []byte) (byID map[string]string, order []string) {
	byID = make(map[string]string)
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "sheet" {
			continue
		}
		name, id := attrValue(se, "name"), attrValue(se, "id")
		if name != "" && id != "" {
			byID[id] = name
			order = append(order, name)
		}
	}
	return byID, order
}

// attrValue returns the value of the attribute with the given local name.
func attrValue(se xml.StartElement, local string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}

// eachChild walks the element the decoder has just entered and calls fn for
// every nested start element. fn returns true when it consumed the element
// through its end tag.
func eachChild(decoder *xml.Decoder, fn func(se xml.StartElement) bool) {
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return
		}
		switch t := token.(type) {
		case xml.StartElement:
			if fn(t) {
				continue
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
}

// readElementText consumes the current element and returns its text.
func readElementText(decoder *xml.Decoder) string {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return sb.String()
}

// parseExtent consumes an xfrm element and returns its size in pixels.
func parseExtent(decoder *xml.Decoder) (width, height int) {
	eachChild(decoder, func(se xml.StartElement) bool {
		if se.Name.Local == "ext" {
			if cx, err := strconv.ParseInt(attrValue(se, "cx"), 10, 64); err == nil {
				width = EMUToPixels(cx)
			}
			if cy, err := strconv.ParseInt(attrValue(se, "cy"), 10, 64); err == nil {
				height = EMUToPixels(cy)
			}
		}
		return false
	})
	return width, height
}
