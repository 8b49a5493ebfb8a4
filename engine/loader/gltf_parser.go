package loader

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Common errors returned by the parser
var (
	errInvalidGLTFVersion = errors.New("invalid glTF version: must be 2.0")
	errInvalidGLBMagic    = errors.New("invalid GLB magic number")
	errInvalidGLBVersion  = errors.New("invalid GLB version: must be 2")
	errGLBTooSmall        = errors.New("GLB file too small")
	errMissingJSONChunk   = errors.New("GLB file missing JSON chunk")
	errNodeOutOfRange     = errors.New("node index out of range")
)

// gltfParserImpl is the implementation of the gltfParser interface.
type gltfParserImpl struct {
	baseDir  string
	document *gltfDocument
}

// gltfParser defines the interface for loading and parsing glTF/GLB/VRM files.
// It handles file I/O, container detection and JSON deserialization.
// This is internal to the loader package.
type gltfParser interface {
	// Parse loads and parses a glTF, GLB or VRM file from the given path.
	// Binary containers are detected from the extension or the GLB magic.
	//
	// Parameters:
	//   - path: path to the file
	//
	// Returns:
	//   - error: error if parsing fails
	Parse(path string) error

	// ParseReader parses a glTF document from a reader.
	//
	// Parameters:
	//   - r: reader containing glTF JSON or GLB data
	//   - isGLB: true if the data is in GLB format
	//
	// Returns:
	//   - error: error if parsing fails
	ParseReader(r io.Reader, isGLB bool) error

	// Document returns the parsed glTF document.
	// Returns nil if Parse has not been called successfully.
	//
	// Returns:
	//   - *gltfDocument: the parsed document or nil
	Document() *gltfDocument

	// BaseDir returns the directory containing the loaded file.
	//
	// Returns:
	//   - string: the base directory path
	BaseDir() string
}

var _ gltfParser = &gltfParserImpl{}

// newGLTFParser creates a new glTF parser instance.
//
// Returns:
//   - gltfParser: a new parser instance
func newGLTFParser() gltfParser {
	return &gltfParserImpl{}
}

func (p *gltfParserImpl) Document() *gltfDocument {
	return p.document
}

func (p *gltfParserImpl) BaseDir() string {
	return p.baseDir
}

func (p *gltfParserImpl) Parse(path string) error {
	p.baseDir = filepath.Dir(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if isBinaryExt(path) || (len(data) >= 4 && binary.LittleEndian.Uint32(data[:4]) == gltfGLBMagic) {
		return p.parseGLB(data)
	}

	return p.parseGLTF(data)
}

func (p *gltfParserImpl) ParseReader(r io.Reader, isGLB bool) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read data: %w", err)
	}

	if isGLB {
		return p.parseGLB(data)
	}
	return p.parseGLTF(data)
}

// parseGLTF parses a glTF JSON document.
func (p *gltfParserImpl) parseGLTF(data []byte) error {
	var doc gltfDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse glTF JSON: %w", err)
	}

	if err := validateDocument(&doc); err != nil {
		return err
	}

	p.document = &doc
	return nil
}

// parseGLB extracts the JSON chunk of a GLB container and parses it. The BIN
// chunk holds geometry only and is skipped.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#glb-file-format-specification
func (p *gltfParserImpl) parseGLB(data []byte) error {
	if len(data) < 12 {
		return errGLBTooSmall
	}

	r := bytes.NewReader(data)

	var header gltfGLBHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to read GLB header: %w", err)
	}

	if header.Magic != gltfGLBMagic {
		return errInvalidGLBMagic
	}
	if header.Version != gltfGLBVersion {
		return errInvalidGLBVersion
	}

	var jsonData []byte
	for {
		var chunkHeader gltfGLBChunkHeader
		if err := binary.Read(r, binary.LittleEndian, &chunkHeader); err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("failed to read chunk header: %w", err)
		}

		if chunkHeader.ChunkType != gltfGLBChunkJSON {
			if _, err := r.Seek(int64(chunkHeader.ChunkLength), io.SeekCurrent); err != nil {
				return fmt.Errorf("failed to skip chunk: %w", err)
			}
			continue
		}

		jsonData = make([]byte, chunkHeader.ChunkLength)
		if _, err := io.ReadFull(r, jsonData); err != nil {
			return fmt.Errorf("failed to read chunk data: %w", err)
		}
	}

	if jsonData == nil {
		return errMissingJSONChunk
	}

	return p.parseGLTF(bytes.TrimRight(jsonData, " \x00"))
}

// validateDocument checks the version and every node reference the importer
// follows. Nothing else is validated.
func validateDocument(doc *gltfDocument) error {
	if !strings.HasPrefix(doc.Asset.Version, "2.") {
		return errInvalidGLTFVersion
	}

	n := len(doc.Nodes)
	inRange := func(i int) bool { return i >= 0 && i < n }

	for i, node := range doc.Nodes {
		for _, c := range node.Children {
			if !inRange(c) {
				return fmt.Errorf("node %d child %d: %w", i, c, errNodeOutOfRange)
			}
		}
	}
	for i, scene := range doc.Scenes {
		for _, r := range scene.Nodes {
			if !inRange(r) {
				return fmt.Errorf("scene %d root %d: %w", i, r, errNodeOutOfRange)
			}
		}
	}
	for i, skin := range doc.Skins {
		for _, j := range skin.Joints {
			if !inRange(j) {
				return fmt.Errorf("skin %d joint %d: %w", i, j, errNodeOutOfRange)
			}
		}
	}
	return nil
}

// isBinaryExt reports whether path names a GLB container (.glb or .vrm).
func isBinaryExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".glb", ".vrm":
		return true
	}
	return false
}
