// annotations.go defines the directives understood by the WGSL pre-processor.
// A directive is a single-line WGSL comment prefixed with @vrm: that either
// injects a registered struct definition or declares a buffer binding whose
// type is a registered struct:
//
//	//@vrm:include camera
//	//@vrm:group 0 0 uniform camera camera
package shader

import (
	"fmt"
	"strconv"
	"strings"
)

// annotationPrefix marks a directive inside a WGSL line comment.
const annotationPrefix = "@vrm:"

// AnnotationType identifies the kind of directive.
type AnnotationType string

const (
	// AnnotationTypeInclude injects the source of a registered struct. A
	// struct is injected at most once per Process call.
	//
	// Syntax: //@vrm:include <struct_key>
	AnnotationTypeInclude AnnotationType = "include"

	// AnnotationTypeGroup emits a @group/@binding variable of a registered
	// struct type and records a Declaration.
	//
	// Syntax: //@vrm:group <group> <binding> <address_space> <var_name> <struct_key>
	AnnotationTypeGroup AnnotationType = "group"
)

// AddressSpace is the buffer address space of a group directive.
type AddressSpace string

const (
	// AddressSpaceUniform declares var<uniform>.
	AddressSpaceUniform AddressSpace = "uniform"

	// AddressSpaceStorageRead declares var<storage, read>.
	AddressSpaceStorageRead AddressSpace = "storage_read"

	// AddressSpaceStorage declares var<storage, read_write>.
	AddressSpaceStorage AddressSpace = "storage"
)

// qualifier returns the WGSL var template for the address space.
func (a AddressSpace) qualifier() (string, bool) {
	switch a {
	case AddressSpaceUniform:
		return "var<uniform>", true
	case AddressSpaceStorageRead:
		return "var<storage, read>", true
	case AddressSpaceStorage:
		return "var<storage, read_write>", true
	}
	return "", false
}

// Annotation is one parsed directive.
type Annotation struct {
	Type AnnotationType

	// Line is the 1-based source line the directive was found on.
	Line int

	// Struct is the registry key named by the directive.
	Struct string

	// Group, Binding, Space and Name are set for AnnotationTypeGroup.
	Group   uint32
	Binding uint32
	Space   AddressSpace
	Name    string
}

// parseAnnotation parses line as a directive. The bool result is false when
// line is not a directive at all.
//
// Parameters:
//   - line: the raw source line
//   - lineNo: the 1-based line number used in errors
//
// Returns:
//   - Annotation: the parsed directive
//   - bool: true if line holds a directive
//   - error: error if the directive is malformed
func parseAnnotation(line string, lineNo int) (Annotation, bool, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "//") {
		return Annotation{}, false, nil
	}
	body := strings.TrimSpace(strings.TrimPrefix(trimmed, "//"))
	if !strings.HasPrefix(body, annotationPrefix) {
		return Annotation{}, false, nil
	}

	fields := strings.Fields(strings.TrimPrefix(body, annotationPrefix))
	if len(fields) == 0 {
		return Annotation{}, true, fmt.Errorf("line %d: empty directive", lineNo)
	}

	a := Annotation{Type: AnnotationType(fields[0]), Line: lineNo}
	args := fields[1:]
	switch a.Type {
	case AnnotationTypeInclude:
		if len(args) != 1 {
			return a, true, fmt.Errorf("line %d: include takes 1 argument, got %d", lineNo, len(args))
		}
		a.Struct = args[0]

	case AnnotationTypeGroup:
		if len(args) != 5 {
			return a, true, fmt.Errorf("line %d: group takes 5 arguments, got %d", lineNo, len(args))
		}
		group, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return a, true, fmt.Errorf("line %d: group index %q: %w", lineNo, args[0], err)
		}
		binding, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return a, true, fmt.Errorf("line %d: binding index %q: %w", lineNo, args[1], err)
		}
		a.Group = uint32(group)
		a.Binding = uint32(binding)
		a.Space = AddressSpace(args[2])
		if _, ok := a.Space.qualifier(); !ok {
			return a, true, fmt.Errorf("line %d: unknown address space %q", lineNo, args[2])
		}
		a.Name = args[3]
		a.Struct = args[4]

	default:
		return a, true, fmt.Errorf("line %d: unknown directive %q", lineNo, fields[0])
	}
	return a, true, nil
}
