package parser

import (
	"fmt"
	"os"

	"mercator-hq/callisto/pkg/fm/ast"
	fmErrors "mercator-hq/callisto/pkg/fm/errors"
)

// Parser parses feature model documents into typed feature trees.
type Parser struct {
	maxFileSize int64 // Maximum document size in bytes (default: 10MB)
}

// New creates a new parser with default configuration.
func New() *Parser {
	return &Parser{
		maxFileSize: 10 * 1024 * 1024, // 10MB
	}
}

// WithMaxFileSize sets the maximum document size limit.
func (p *Parser) WithMaxFileSize(size int64) *Parser {
	p.maxFileSize = size
	return p
}

// Parse parses a model file at the given path and returns the feature tree.
func (p *Parser) Parse(path string) (*ast.Model, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, &fmErrors.Error{
			Type:     fmErrors.ErrorTypeIO,
			Message:  fmt.Sprintf("failed to access file: %v", err),
			Location: fmErrors.Location{File: path},
		}
	}

	if fileInfo.Size() > p.maxFileSize {
		return nil, &fmErrors.Error{
			Type:     fmErrors.ErrorTypeIO,
			Message:  fmt.Sprintf("file size %d exceeds maximum %d bytes", fileInfo.Size(), p.maxFileSize),
			Location: fmErrors.Location{File: path},
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &fmErrors.Error{
			Type:     fmErrors.ErrorTypeIO,
			Message:  fmt.Sprintf("failed to read file: %v", err),
			Location: fmErrors.Location{File: path},
		}
	}

	return p.ParseBytes(data, path)
}

// ParseBytes parses a model document from a byte slice. The sourcePath is
// used for error reporting only and may be a synthetic name such as
// "upload://model.xml".
func (p *Parser) ParseBytes(data []byte, sourcePath string) (*ast.Model, error) {
	if int64(len(data)) > p.maxFileSize {
		return nil, &fmErrors.Error{
			Type:     fmErrors.ErrorTypeIO,
			Message:  fmt.Sprintf("document size %d exceeds maximum %d bytes", len(data), p.maxFileSize),
			Location: fmErrors.Location{File: sourcePath},
		}
	}

	doc, err := decodeModel(data)
	if err != nil {
		return nil, &fmErrors.Error{
			Type:       fmErrors.ErrorTypeSyntax,
			Message:    fmt.Sprintf("XML parsing failed: %v", err),
			Location:   fmErrors.Location{File: sourcePath, Line: 1},
			Suggestion: "check XML well-formedness (matching tags, quoted attributes)",
		}
	}

	return newBuilder(sourcePath).buildModel(doc)
}
