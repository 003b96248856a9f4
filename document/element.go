// Package document provides a thin traversal layer over a parsed XML
// document: find one child by tag, find all children by tag, read element
// text, read an attribute. Tag and attribute matching is on the local name so
// namespace prefixes in the source document do not matter.
//
// The whole document is materialized before traversal begins; streaming
// decode is out of scope for the interchange documents this package serves.
package document

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// Element is one node of the parsed document tree.
type Element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []Element  `xml:",any"`
	Text     string     `xml:",chardata"`
}

// Parse materializes the document tree from raw document bytes.
//
// Returns:
//   - *Element: The root element of the document
//   - error: XML syntax errors from decoding
func Parse(data []byte) (*Element, error) {
	root := &Element{}
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(root); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return root, nil
}

// Tag returns the element's local tag name, without any namespace prefix.
func (e *Element) Tag() string {
	return e.XMLName.Local
}

// Child returns the first child element with the given local tag name, or nil
// when no such child exists.
func (e *Element) Child(tag string) *Element {
	for i := range e.Children {
		if e.Children[i].XMLName.Local == tag {
			return &e.Children[i]
		}
	}

	return nil
}

// ChildElements returns all child elements with the given local tag name, in
// document order.
func (e *Element) ChildElements(tag string) []*Element {
	var children []*Element
	for i := range e.Children {
		if e.Children[i].XMLName.Local == tag {
			children = append(children, &e.Children[i])
		}
	}

	return children
}

// ChildText returns the trimmed text of the first child with the given local
// tag name, or the empty string when the child is absent.
func (e *Element) ChildText(tag string) string {
	child := e.Child(tag)
	if child == nil {
		return ""
	}

	return child.TrimmedText()
}

// TrimmedText returns the element's character data with surrounding
// whitespace removed.
func (e *Element) TrimmedText() string {
	return strings.TrimSpace(e.Text)
}

// Attr returns the value of the attribute with the given local name, or the
// empty string when the attribute is absent.
func (e *Element) Attr(name string) string {
	for _, attr := range e.Attrs {
		if attr.Name.Local == name {
			return attr.Value
		}
	}

	return ""
}

// HasAttr reports whether the attribute with the given local name is present.
func (e *Element) HasAttr(name string) bool {
	for _, attr := range e.Attrs {
		if attr.Name.Local == name {
			return true
		}
	}

	return false
}
