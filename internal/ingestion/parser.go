// Package ingestion turns uploaded resume documents into clean text: file
// type detection, size limits, PDF/DOCX/TXT text extraction and document
// metadata.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"

	"github.com/jonathan/resume-insight/internal/types"
)

// DefaultMaxFileSize bounds uploaded documents to 10 MB.
const DefaultMaxFileSize int64 = 10 << 20

// Parser extracts plain text from resume documents on disk. A document that
// cannot be parsed is a hard error: silent empty text would poison every
// downstream stage.
type Parser struct {
	maxFileSize int64
}

// NewParser creates a parser with the given size limit; zero or negative
// means DefaultMaxFileSize.
func NewParser(maxFileSize int64) *Parser {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	return &Parser{maxFileSize: maxFileSize}
}

// DetectFileType maps a filename extension to a supported file type.
func DetectFileType(filename string) (types.FileType, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return types.FileTypePDF, nil
	case ".docx", ".doc":
		return types.FileTypeDOCX, nil
	case ".txt":
		return types.FileTypeTXT, nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}
}

// Document is the result of parsing one resume file.
type Document struct {
	Filename string
	FileType types.FileType
	FileSize int64
	Text     string
}

// ParseFile extracts the text of the document at path. The file type is
// detected from the extension; PDF and DOCX go through docconv, plain text
// is read directly.
func (p *Parser) ParseFile(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat document: %w", err)
	}
	if info.Size() > p.maxFileSize {
		return nil, fmt.Errorf("document %s exceeds size limit of %d bytes", filepath.Base(path), p.maxFileSize)
	}

	fileType, err := DetectFileType(path)
	if err != nil {
		return nil, err
	}

	var text string
	switch fileType {
	case types.FileTypeTXT:
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read text file: %w", err)
		}
		text = string(content)
	default:
		res, err := docconv.ConvertPath(path)
		if err != nil {
			return nil, fmt.Errorf("parse %s document: %w", fileType, err)
		}
		text = res.Body
	}

	text = CleanText(text)
	if text == "" {
		return nil, fmt.Errorf("document %s contains no extractable text", filepath.Base(path))
	}

	return &Document{
		Filename: filepath.Base(path),
		FileType: fileType,
		FileSize: info.Size(),
		Text:     text,
	}, nil
}
