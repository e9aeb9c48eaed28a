package unit

import "github.com/vk/hclimport/internal/unitname"

// Kind selects the execution strategy for a unit.
type Kind int

const (
	// FileBody units execute the contents of a single file.
	FileBody Kind = iota
	// ContainerBody units execute their container initializer.
	ContainerBody
	// NoBody units are synthesized namespace containers with nothing to run.
	NoBody
	// Delegated units are produced by the platform unit provider.
	Delegated
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case FileBody:
		return "file"
	case ContainerBody:
		return "container"
	case NoBody:
		return "namespace"
	case Delegated:
		return "delegated"
	default:
		return "unknown"
	}
}

// Format is the encoding of a unit body on disk.
type Format string

const (
	FormatHCL  Format = "hcl"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Descriptor describes a located unit. Use the constructors: they keep the
// rule that sub-search locations are present exactly for containers.
type Descriptor struct {
	Name   unitname.Name
	Origin string // empty for namespace containers
	Kind   Kind
	Format Format

	subSearch []string
	container bool
}

// NewFileDescriptor describes a single-file leaf unit.
func NewFileDescriptor(name unitname.Name, origin string, format Format) *Descriptor {
	return &Descriptor{Name: name, Origin: origin, Kind: FileBody, Format: format}
}

// NewContainerDescriptor describes a container with an initializer body.
func NewContainerDescriptor(name unitname.Name, origin string, format Format, locations []string) *Descriptor {
	return &Descriptor{
		Name:      name,
		Origin:    origin,
		Kind:      ContainerBody,
		Format:    format,
		subSearch: cloneStrings(locations),
		container: true,
	}
}

// NewNamespaceDescriptor describes a container with no body and no origin.
func NewNamespaceDescriptor(name unitname.Name, locations []string) *Descriptor {
	return &Descriptor{
		Name:      name,
		Kind:      NoBody,
		subSearch: cloneStrings(locations),
		container: true,
	}
}

// NewDelegatedDescriptor describes a unit owned by the platform provider.
// The token is provider-internal and is not a filesystem path.
func NewDelegatedDescriptor(name unitname.Name, token string) *Descriptor {
	return &Descriptor{Name: name, Origin: token, Kind: Delegated}
}

// IsContainer reports whether the descriptor denotes a container.
func (d *Descriptor) IsContainer() bool {
	return d.container
}

// SubSearchLocations returns the locations sub-units are searched in. The
// boolean is false for non-containers.
func (d *Descriptor) SubSearchLocations() ([]string, bool) {
	if !d.container {
		return nil, false
	}
	return cloneStrings(d.subSearch), true
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
