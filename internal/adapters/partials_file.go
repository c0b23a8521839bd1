package adapters

import (
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/beevik/etree"

	"openlego/internal/shared"
	"openlego/internal/types"
)

// PartialsCodec reads and writes partials XML documents:
//
//	<partials>
//	  <partial of="/root/y">
//	    <wrt xpath="/root/x">1.5</wrt>
//	  </partial>
//	</partials>
//
// Entries with an empty "of" attribute or no wrt children are skipped.
type PartialsCodec struct {
	Documents DocumentCodec
}

func NewPartialsCodec(documents DocumentCodec) PartialsCodec {
	return PartialsCodec{Documents: documents}
}

// Parse reads every sensitivity entry from a partials resource.
func (c PartialsCodec) Parse(resource *types.Resource) ([]types.PartialsEntry, error) {
	doc, err := c.Documents.Parse(resource)
	if err != nil {
		return nil, err
	}
	root := doc.Root()
	if root.Tag != "partials" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("partials document root must be <partials>")
	}
	var entries []types.PartialsEntry
	for _, partial := range root.SelectElements("partial") {
		of := partial.SelectAttrValue("of", "")
		if of == "" {
			continue
		}
		for _, wrt := range partial.SelectElements("wrt") {
			xpath := wrt.SelectAttrValue("xpath", "")
			if xpath == "" {
				continue
			}
			entries = append(entries, types.PartialsEntry{
				Of:    of,
				WRT:   xpath,
				Value: shared.ParseValueText(wrt.Text()),
			})
		}
	}
	return entries, nil
}

// ParseSpec reads a partials template as a declaration list, grouping the
// wrt entries of each output.
func (c PartialsCodec) ParseSpec(resource *types.Resource) ([]types.PartialsSpec, error) {
	entries, err := c.Parse(resource)
	if err != nil {
		return nil, err
	}
	return GroupPartials(entries), nil
}

// GroupPartials folds flat entries into one declaration per output,
// preserving first-seen order.
func GroupPartials(entries []types.PartialsEntry) []types.PartialsSpec {
	var order []string
	wrts := map[string][]string{}
	for _, entry := range entries {
		if _, ok := wrts[entry.Of]; !ok {
			order = append(order, entry.Of)
		}
		wrts[entry.Of] = append(wrts[entry.Of], entry.WRT)
	}
	specs := make([]types.PartialsSpec, 0, len(order))
	for _, of := range order {
		specs = append(specs, types.PartialsSpec{Of: of, WRT: wrts[of]})
	}
	return specs
}

// Write serializes entries into a partials resource.
func (c PartialsCodec) Write(entries []types.PartialsEntry, resource *types.Resource) error {
	doc := c.Documents.NewDocument("partials")
	root := doc.Root()
	elements := map[string]*etree.Element{}
	for _, entry := range entries {
		partial, ok := elements[entry.Of]
		if !ok {
			partial = root.CreateElement("partial")
			partial.CreateAttr("of", entry.Of)
			elements[entry.Of] = partial
		}
		wrt := partial.CreateElement("wrt")
		wrt.CreateAttr("xpath", entry.WRT)
		wrt.SetText(shared.FormatValueText(entry.Value))
	}
	return c.Documents.Write(doc, resource)
}
