package types

// ComponentSpec is the top-level structure of a component.yaml file. It
// names a discipline component and points at the XML templates that define
// its parameter surface.
//
// The input and output templates are parsed once at construction time; the
// XPath of every leaf element becomes a parameter, its text the template
// value. Either template may be omitted when the corresponding side is
// declared directly against the framework.
type ComponentSpec struct {
	// Name identifies the component. It prefixes every scratch file the
	// component writes, so it should be unique within a data folder.
	Name string `yaml:"name"`

	// InputXML is the path to the input template file.
	InputXML string `yaml:"input_xml,omitempty"`

	// OutputXML is the path to the output template file.
	OutputXML string `yaml:"output_xml,omitempty"`

	// PartialsXML optionally declares an explicit sparsity pattern for the
	// partial derivatives. Without it a dense finite-difference fallback
	// covers all continuous outputs against all continuous inputs.
	PartialsXML string `yaml:"partials_xml,omitempty"`

	// DataFolder is where scratch files are written when KeepFiles is set.
	DataFolder string `yaml:"data_folder,omitempty"`

	// KeepFiles retains every generated XML artifact on disk. File names
	// are salted with a high-resolution timestamp so repeated evaluations
	// do not overwrite each other.
	KeepFiles bool `yaml:"keep_files,omitempty"`

	// BaseFile is the path of a persistent XML document kept up to date
	// with the latest data from every evaluation. When set, freshly
	// written inputs and freshly read outputs are merged into it.
	BaseFile string `yaml:"base_file,omitempty"`
}
