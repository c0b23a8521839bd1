package app

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"openlego/internal/adapters"
	"openlego/internal/core"
	"openlego/internal/policies"
	"openlego/internal/ports"
	"openlego/internal/shared"
	"openlego/internal/types"
)

// Component adapts one XML-based discipline to the host framework. Its
// parameter surface comes from XML templates; at evaluation time it writes
// the current input slot values to an XML document, hands the document to
// the discipline, and routes the resulting output document back into the
// framework's slots, applying the collision rename maps in both
// directions.
//
// A component instance is single-threaded: evaluations run start to finish
// and scratch file names are salted by time, not by a concurrency token.
type Component struct {
	Name       string
	Registry   *core.Registry
	Discipline ports.DisciplinePort
	Documents  adapters.DocumentCodec
	Partials   adapters.PartialsCodec
	Scratch    adapters.ScratchFileAdapter
	Planner    core.SetupPlanner

	PartialsSpec []types.PartialsSpec
	DataFolder   string
	KeepFiles    bool
	BaseFile     string
}

// NewComponent builds a component from its spec, populating the registry
// from the templates the spec names. Collisions are resolved here, so a
// type-mismatched collision aborts construction.
func NewComponent(ctx context.Context, spec types.ComponentSpec, discipline ports.DisciplinePort) (*Component, error) {
	assert.NotEmpty(ctx, spec.Name, "component name must be set")

	documents := adapters.NewDocumentCodec()
	component := &Component{
		Name:       spec.Name,
		Registry:   core.NewRegistry(),
		Discipline: discipline,
		Documents:  documents,
		Partials:   adapters.NewPartialsCodec(documents),
		Scratch:    adapters.NewScratchFileAdapter(),
		Planner:    core.NewSetupPlanner(),
		DataFolder: spec.DataFolder,
		KeepFiles:  spec.KeepFiles,
		BaseFile:   spec.BaseFile,
	}
	if spec.InputXML != "" {
		if err := component.SetInputsFromXML(spec.InputXML); err != nil {
			return nil, err
		}
	}
	if spec.OutputXML != "" {
		if err := component.SetOutputsFromXML(spec.OutputXML); err != nil {
			return nil, err
		}
	}
	if spec.PartialsXML != "" {
		if err := component.DeclarePartialsFromXML(spec.PartialsXML); err != nil {
			return nil, err
		}
	}
	if _, err := component.Registry.RenameMaps(); err != nil {
		return nil, err
	}
	return component, nil
}

// SetInputsFromXML repopulates the input registry from a template file,
// invalidating the cached rename maps.
func (c *Component) SetInputsFromXML(path string) error {
	doc, err := c.Documents.ParseFile(path)
	if err != nil {
		return err
	}
	c.Registry.SetInputs(c.Documents.Leaves(doc))
	return nil
}

// SetOutputsFromXML repopulates the output registry from a template file,
// invalidating the cached rename maps.
func (c *Component) SetOutputsFromXML(path string) error {
	doc, err := c.Documents.ParseFile(path)
	if err != nil {
		return err
	}
	c.Registry.SetOutputs(c.Documents.Leaves(doc))
	return nil
}

// DeclarePartialsFromXML loads an explicit partials declaration template.
func (c *Component) DeclarePartialsFromXML(path string) error {
	spec, err := c.Partials.ParseSpec(types.FileResource(path))
	if err != nil {
		return err
	}
	c.PartialsSpec = spec
	return nil
}

// Setup declares the component's parameter surface to the framework.
func (c *Component) Setup(ctx context.Context, builder ports.SlotBuilderPort) error {
	return c.Planner.Setup(ctx, c.Registry, builder, c.PartialsSpec)
}

// Compute runs one evaluation: write inputs, invoke the discipline, read
// outputs back. Disciplines offering the fast path skip XML entirely;
// otherwise the documents live in memory, or on disk when the component
// keeps its files.
func (c *Component) Compute(ctx context.Context, inputs ports.SlotsPort, outputs ports.SlotsPort, discreteInputs ports.SlotsPort, discreteOutputs ports.SlotsPort) error {
	ctx = c.evalContext(ctx)

	if fast, ok := c.Discipline.(ports.FastDisciplinePort); ok {
		return c.computeFast(ctx, fast, inputs, outputs, discreteInputs, discreteOutputs)
	}
	if !c.KeepFiles {
		return c.computeBuffered(ctx, inputs, outputs, discreteInputs, discreteOutputs)
	}
	return c.computeOnDisk(ctx, inputs, outputs, discreteInputs, discreteOutputs)
}

func (c *Component) computeFast(ctx context.Context, fast ports.FastDisciplinePort, inputs ports.SlotsPort, outputs ports.SlotsPort, discreteInputs ports.SlotsPort, discreteOutputs ports.SlotsPort) error {
	inputMap := map[string]types.Value{}
	for _, input := range c.Registry.Inputs() {
		if value, ok := slotValue(inputs, input.Name); ok {
			inputMap[shared.XPathFromParam(input.Name)] = value
		} else if value, ok := slotValue(discreteInputs, input.Name); ok {
			inputMap[shared.XPathFromParam(input.Name)] = value
		}
	}
	outputMap, err := fast.ExecuteFast(ctx, inputMap)
	if err != nil {
		return err
	}
	var leaves []types.Leaf
	for xpath, value := range outputMap {
		leaves = append(leaves, types.Leaf{XPath: xpath, Value: value})
	}
	log.Ctx(ctx).Debug().Int("outputs", len(leaves)).Msg("fast path evaluation finished")
	return c.readOutputs(leaves, outputs, discreteOutputs)
}

func (c *Component) computeBuffered(ctx context.Context, inputs ports.SlotsPort, outputs ports.SlotsPort, discreteInputs ports.SlotsPort, discreteOutputs ports.SlotsPort) error {
	inputRes := types.BufferResource()
	outputRes := types.BufferResource()

	if c.Registry.HasInputs() {
		doc, err := c.writeInputDocument(inputs, discreteInputs)
		if err != nil {
			return err
		}
		if err := c.Documents.Write(doc, inputRes); err != nil {
			return err
		}
		if c.BaseFile != "" {
			if err := c.Documents.MergeIntoFile(c.BaseFile, doc); err != nil {
				return err
			}
		}
	}

	source := inputRes
	if c.BaseFile != "" {
		source = types.FileResource(c.BaseFile)
	}
	if err := c.Discipline.Execute(ctx, source, outputRes); err != nil {
		return err
	}

	outputDoc, err := c.Documents.Parse(outputRes)
	if err != nil {
		return err
	}
	if c.BaseFile != "" {
		if err := c.Documents.MergeIntoFile(c.BaseFile, outputDoc); err != nil {
			return err
		}
	}
	if c.Registry.HasOutputs() {
		return c.readOutputs(c.Documents.Leaves(outputDoc), outputs, discreteOutputs)
	}
	return nil
}

func (c *Component) computeOnDisk(ctx context.Context, inputs ports.SlotsPort, outputs ports.SlotsPort, discreteInputs ports.SlotsPort, discreteOutputs ports.SlotsPort) error {
	set := c.Scratch.GenerateNames(c.DataFolder, c.Name)

	if c.Registry.HasInputs() {
		doc, err := c.writeInputDocument(inputs, discreteInputs)
		if err != nil {
			return err
		}
		if err := c.Documents.Write(doc, types.FileResource(set.Input)); err != nil {
			return err
		}
		if c.BaseFile != "" {
			if err := c.Documents.MergeIntoFile(c.BaseFile, doc); err != nil {
				return err
			}
		}
	}

	source := set.Input
	if c.BaseFile != "" {
		source = c.BaseFile
	}
	if err := c.Discipline.Execute(ctx, types.FileResource(source), types.FileResource(set.Output)); err != nil {
		return err
	}

	outputDoc, err := c.Documents.ParseFile(set.Output)
	if err != nil {
		return err
	}
	if c.BaseFile != "" {
		if err := c.Documents.MergeIntoFile(c.BaseFile, outputDoc); err != nil {
			return err
		}
	}
	if c.Registry.HasOutputs() {
		return c.readOutputs(c.Documents.Leaves(outputDoc), outputs, discreteOutputs)
	}
	return nil
}

// ComputePartials writes the inputs, asks the discipline to linearize,
// and merges each declared sensitivity into the partials store. A failed
// write of a single pair is logged and skipped; the evaluation continues.
func (c *Component) ComputePartials(ctx context.Context, inputs ports.SlotsPort, partials ports.PartialSlotsPort) error {
	if len(c.PartialsSpec) == 0 {
		return nil
	}
	ctx = c.evalContext(ctx)

	set := c.Scratch.GenerateNames(c.DataFolder, c.Name)
	doc, err := c.writeInputDocument(inputs, nil)
	if err != nil {
		return err
	}
	if err := c.Documents.Write(doc, types.FileResource(set.Input)); err != nil {
		return err
	}

	if err := c.Discipline.Linearize(ctx, types.FileResource(set.Input), types.FileResource(set.Partials)); err != nil {
		return err
	}
	if !c.KeepFiles {
		c.Scratch.Remove(set.Input)
	}

	entries, err := c.Partials.Parse(types.FileResource(set.Partials))
	if err != nil {
		return err
	}
	renames, err := c.Registry.RenameMaps()
	if err != nil {
		return err
	}
	for _, entry := range entries {
		of := policies.RenamedOutput(renames, shared.ParamFromXPath(entry.Of))
		wrt := shared.ParamFromXPath(entry.WRT)
		if !partials.Declared(of, wrt) {
			continue
		}
		if err := partials.Set(of, wrt, entry.Value); err != nil {
			log.Ctx(ctx).Warn().
				Str("of", of).
				Str("wrt", wrt).
				Err(err).
				Msg("failed to store partial derivative")
		}
	}

	if !c.KeepFiles {
		c.Scratch.Remove(set.Partials)
	}
	return nil
}

// writeInputDocument serializes the current input slot values into a new
// document rooted at the templates' root element.
func (c *Component) writeInputDocument(inputs ports.SlotsPort, discreteInputs ports.SlotsPort) (*etree.Document, error) {
	registryInputs := c.Registry.Inputs()
	doc := c.Documents.NewDocument(documentRootTag(registryInputs))
	for _, input := range registryInputs {
		value, ok := slotValue(inputs, input.Name)
		if !ok {
			value, ok = slotValue(discreteInputs, input.Name)
		}
		if !ok {
			continue
		}
		if err := c.Documents.CreateLeaf(doc, shared.XPathFromParam(input.Name), value); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func (c *Component) readOutputs(leaves []types.Leaf, outputs ports.SlotsPort, discreteOutputs ports.SlotsPort) error {
	renames, err := c.Registry.RenameMaps()
	if err != nil {
		return err
	}
	for _, leaf := range leaves {
		name := shared.ParamFromXPath(leaf.XPath)
		if !c.Registry.HasOutput(name) {
			continue
		}
		name = policies.RenamedOutput(renames, name)
		if outputs != nil && outputs.Has(name) {
			if err := outputs.SetValue(name, leaf.Value); err != nil {
				return err
			}
			continue
		}
		// A nil discrete store silently drops discrete writes. Kept from
		// the original behavior; see DESIGN.md.
		if discreteOutputs != nil && discreteOutputs.Has(name) {
			if err := discreteOutputs.SetValue(name, leaf.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Component) evalContext(ctx context.Context) context.Context {
	logger := log.Ctx(ctx).With().
		Str("component", c.Name).
		Str("evaluation", uuid.NewString()).
		Logger()
	return logger.WithContext(ctx)
}

func slotValue(slots ports.SlotsPort, name string) (types.Value, bool) {
	if slots == nil {
		return types.Value{}, false
	}
	return slots.Value(name)
}

func documentRootTag(inputs []types.ParamValue) string {
	if len(inputs) == 0 {
		return "root"
	}
	segment := splitFirstSegment(shared.XPathFromParam(inputs[0].Name))
	tag, _ := shared.SplitSegment(segment)
	return tag
}

func splitFirstSegment(xpath string) string {
	trimmed := xpath
	if len(trimmed) > 0 && trimmed[0] == '/' {
		trimmed = trimmed[1:]
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] == '/' {
			return trimmed[:i]
		}
	}
	return trimmed
}
