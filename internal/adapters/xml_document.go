package adapters

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/beevik/etree"

	"openlego/internal/shared"
	"openlego/internal/types"
)

// DocumentCodec reads and writes the XML documents exchanged with
// disciplines. It carries the parser/serializer configuration explicitly;
// there is no process-wide parser state.
type DocumentCodec struct {
	Indent int
}

func NewDocumentCodec() DocumentCodec {
	return DocumentCodec{Indent: 2}
}

// NewDocument creates an empty document with the given root element and
// an XML declaration.
func (c DocumentCodec) NewDocument(rootTag string) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateElement(rootTag)
	return doc
}

// Parse reads a document from a file- or buffer-backed resource. A
// malformed or rootless document is fatal.
func (c DocumentCodec) Parse(resource *types.Resource) (*etree.Document, error) {
	doc := etree.NewDocument()
	var err error
	if resource.InMemory() {
		err = doc.ReadFromBytes(resource.Buffer.Bytes())
	} else {
		err = doc.ReadFromFile(resource.Path)
	}
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to parse xml document: %s", describeResource(resource))).
			WithCause(err)
	}
	if doc.Root() == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("xml document has no root element: %s", describeResource(resource)))
	}
	return doc, nil
}

// ParseFile reads a document from a path.
func (c DocumentCodec) ParseFile(path string) (*etree.Document, error) {
	return c.Parse(types.FileResource(path))
}

// Write serializes a document into a file- or buffer-backed resource.
func (c DocumentCodec) Write(doc *etree.Document, resource *types.Resource) error {
	doc.Indent(c.Indent)
	if resource.InMemory() {
		data, err := doc.WriteToBytes()
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to serialize xml document").
				WithCause(err)
		}
		resource.Buffer.Reset()
		resource.Buffer.Write(data)
		return nil
	}
	if err := doc.WriteToFile(resource.Path); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to write xml document: %s", resource.Path)).
			WithCause(err)
	}
	return nil
}

// Leaves enumerates every leaf element of the document in document order,
// keyed by XPath. Positional predicates appear only where an element has
// same-tag siblings, matching the convention of the templates.
func (c DocumentCodec) Leaves(doc *etree.Document) []types.Leaf {
	root := doc.Root()
	if root == nil {
		return nil
	}
	var leaves []types.Leaf
	collectLeaves(root, "/"+root.Tag, &leaves)
	return leaves
}

func collectLeaves(el *etree.Element, xpath string, leaves *[]types.Leaf) {
	children := el.ChildElements()
	if len(children) == 0 {
		*leaves = append(*leaves, types.Leaf{
			XPath: xpath,
			Value: shared.ParseValueText(el.Text()),
		})
		return
	}
	counts := map[string]int{}
	for _, child := range children {
		counts[child.Tag]++
	}
	position := map[string]int{}
	for _, child := range children {
		position[child.Tag]++
		segment := child.Tag
		if counts[child.Tag] > 1 {
			segment = fmt.Sprintf("%s[%d]", child.Tag, position[child.Tag])
		}
		collectLeaves(child, xpath+"/"+segment, leaves)
	}
}

// CreateLeaf creates the element at the given XPath, building missing
// ancestors (and missing same-tag siblings up to a positional predicate)
// along the way, then sets its text. Existing elements are reused, so
// writing to an existing XPath overwrites its value.
func (c DocumentCodec) CreateLeaf(doc *etree.Document, xpath string, value types.Value) error {
	segments, err := splitXPath(xpath)
	if err != nil {
		return err
	}
	rootTag, rootIndex := shared.SplitSegment(segments[0])
	if rootIndex > 1 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("xpath root element cannot be indexed: %s", xpath))
	}
	root := doc.Root()
	if root == nil {
		root = doc.CreateElement(rootTag)
	} else if root.Tag != rootTag {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("xpath root %q does not match document root %q", rootTag, root.Tag))
	}

	current := root
	for _, segment := range segments[1:] {
		tag, index := shared.SplitSegment(segment)
		if index == 0 {
			index = 1
		}
		siblings := current.SelectElements(tag)
		for len(siblings) < index {
			siblings = append(siblings, current.CreateElement(tag))
		}
		current = siblings[index-1]
	}
	current.SetText(shared.FormatValueText(value))
	return nil
}

// Merge overwrites the base document with every leaf of the overlay,
// keyed by XPath. Elements only present in the base are left alone.
func (c DocumentCodec) Merge(base *etree.Document, overlay *etree.Document) error {
	for _, leaf := range c.Leaves(overlay) {
		if err := c.CreateLeaf(base, leaf.XPath, leaf.Value); err != nil {
			return err
		}
	}
	return nil
}

// MergeIntoFile merges the overlay into a persistent base file. A missing
// base file is seeded with the overlay itself.
func (c DocumentCodec) MergeIntoFile(basePath string, overlay *etree.Document) error {
	if _, err := os.Stat(basePath); err != nil {
		return c.Write(overlay, types.FileResource(basePath))
	}
	base, err := c.ParseFile(basePath)
	if err != nil {
		return err
	}
	if err := c.Merge(base, overlay); err != nil {
		return err
	}
	return c.Write(base, types.FileResource(basePath))
}

func splitXPath(xpath string) ([]string, error) {
	segments := splitSegments(xpath)
	if len(segments) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("xpath is empty")
	}
	for _, segment := range segments {
		if segment == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("xpath has an empty segment: %s", xpath))
		}
	}
	return segments, nil
}

func splitSegments(xpath string) []string {
	trimmed := xpath
	if len(trimmed) > 0 && trimmed[0] == '/' {
		trimmed = trimmed[1:]
	}
	if trimmed == "" {
		return nil
	}
	var segments []string
	start := 0
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] == '/' {
			segments = append(segments, trimmed[start:i])
			start = i + 1
		}
	}
	return append(segments, trimmed[start:])
}

func describeResource(resource *types.Resource) string {
	if resource.InMemory() {
		return "in-memory buffer"
	}
	return resource.Path
}
