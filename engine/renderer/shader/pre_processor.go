// pre_processor.go expands @vrm: directives into plain WGSL. Struct sources
// are registered by the caller so the package stays free of engine imports.
package shader

import (
	"fmt"
	"sort"
	"strings"
)

// registryEntry pairs a WGSL struct definition with its type name.
type registryEntry struct {
	source   string
	typeName string
}

// preProcessor is the implementation of the PreProcessor interface.
type preProcessor struct {
	structRegistry map[string]registryEntry
}

// Declaration records a binding generated by a group directive.
type Declaration struct {
	Group    uint32
	Binding  uint32
	Space    AddressSpace
	Name     string
	TypeName string
}

// PreProcessor expands @vrm: directives.
type PreProcessor interface {
	// Process replaces every directive in source with generated WGSL.
	//
	// Parameters:
	//   - source: WGSL with directives
	//
	// Returns:
	//   - string: plain WGSL
	//   - []Declaration: the generated bindings ordered by group then binding
	//   - error: error for a malformed directive, an unregistered struct or a reused binding slot
	Process(source string) (string, []Declaration, error)

	// Structs returns the registered struct keys in sorted order.
	Structs() []string
}

var _ PreProcessor = &preProcessor{}

// PreProcessorBuilderOption is a functional option for configuring a PreProcessor.
type PreProcessorBuilderOption func(*preProcessor)

// WithStruct registers a struct definition under key.
//
// Parameters:
//   - key: the name directives refer to
//   - typeName: the WGSL type name declared by source
//   - source: the WGSL struct definition
//
// Returns:
//   - PreProcessorBuilderOption: a function that applies the struct option
func WithStruct(key, typeName, source string) PreProcessorBuilderOption {
	return func(pp *preProcessor) {
		pp.structRegistry[key] = registryEntry{source: source, typeName: typeName}
	}
}

// NewPreProcessor creates a PreProcessor.
//
// Parameters:
//   - options: functional options
//
// Returns:
//   - PreProcessor: the pre-processor
func NewPreProcessor(options ...PreProcessorBuilderOption) PreProcessor {
	pp := &preProcessor{structRegistry: make(map[string]registryEntry)}
	for _, option := range options {
		option(pp)
	}
	return pp
}

func (pp *preProcessor) Structs() []string {
	keys := make([]string, 0, len(pp.structRegistry))
	for k := range pp.structRegistry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (pp *preProcessor) Process(source string) (string, []Declaration, error) {
	var (
		out          strings.Builder
		declarations []Declaration
		included     = make(map[string]bool)
		slots        = make(map[[2]uint32]string)
	)

	for i, line := range strings.Split(source, "\n") {
		if i > 0 {
			out.WriteByte('\n')
		}

		a, ok, err := parseAnnotation(line, i+1)
		if err != nil {
			return "", nil, err
		}
		if !ok {
			out.WriteString(line)
			continue
		}

		entry, known := pp.structRegistry[a.Struct]
		if !known {
			return "", nil, fmt.Errorf("line %d: unregistered struct %q", a.Line, a.Struct)
		}

		switch a.Type {
		case AnnotationTypeInclude:
			if included[a.Struct] {
				continue
			}
			included[a.Struct] = true
			out.WriteString(strings.TrimRight(entry.source, "\n"))

		case AnnotationTypeGroup:
			slot := [2]uint32{a.Group, a.Binding}
			if prev, taken := slots[slot]; taken {
				return "", nil, fmt.Errorf("line %d: @group(%d) @binding(%d) already used by %s", a.Line, a.Group, a.Binding, prev)
			}
			slots[slot] = a.Name

			qualifier, _ := a.Space.qualifier()
			fmt.Fprintf(&out, "@group(%d) @binding(%d) %s %s: %s;", a.Group, a.Binding, qualifier, a.Name, entry.typeName)
			declarations = append(declarations, Declaration{
				Group:    a.Group,
				Binding:  a.Binding,
				Space:    a.Space,
				Name:     a.Name,
				TypeName: entry.typeName,
			})
		}
	}

	sort.Slice(declarations, func(i, j int) bool {
		if declarations[i].Group != declarations[j].Group {
			return declarations[i].Group < declarations[j].Group
		}
		return declarations[i].Binding < declarations[j].Binding
	})
	return out.String(), declarations, nil
}
