package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// Reader decodes claim documents into plain UTF-8 text. PDF text is
// extracted page by page; .txt files are read verbatim.
type Reader struct {
	maxFileSize int64
	maxTextSize int
}

// NewReader creates a document reader with the specified size constraints
func NewReader(maxFileSize int64) *Reader {
	return &Reader{
		maxFileSize: maxFileSize,
		maxTextSize: 10 * 1024 * 1024, // 10MB text limit
	}
}

// ReadFile decodes the text content of a claim document
func (r *Reader) ReadFile(req ReadFileRequest) (*ReadFileResult, error) {
	if req.Path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(req.Path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", req.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", req.Path)
	}
	if fileInfo.Size() > r.maxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), r.maxFileSize)
	}

	switch strings.ToLower(filepath.Ext(req.Path)) {
	case ".pdf":
		return r.readPDF(req.Path, fileInfo.Size())
	case ".txt":
		return r.readText(req.Path, fileInfo.Size())
	default:
		return nil, fmt.Errorf("unsupported file type: %s (supported: .pdf, .txt)", filepath.Ext(req.Path))
	}
}

// readText reads a plain-text claim document
func (r *Reader) readText(path string, size int64) (*ReadFileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read text file: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("text file is not valid UTF-8: %s", path)
	}

	// Strip a UTF-8 BOM if present
	content := strings.TrimPrefix(string(data), "\ufeff")

	return &ReadFileResult{
		Content: content,
		Path:    path,
		Format:  FormatText,
		Size:    size,
	}, nil
}

// readPDF extracts text from a PDF claim document
func (r *Reader) readPDF(path string, size int64) (*ReadFileResult, error) {
	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	content, err := r.extractTextContent(pdfReader)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text content: %w", err)
	}

	return &ReadFileResult{
		Content: content,
		Path:    path,
		Format:  FormatPDF,
		Pages:   pdfReader.NumPage(),
		Size:    size,
	}, nil
}

// extractTextContent walks the PDF pages and concatenates their plain text.
// Pages are joined with single newlines rather than marked separators so
// field patterns can match across the page boundary.
func (r *Reader) extractTextContent(pdfReader *pdf.Reader) (string, error) {
	var builder strings.Builder
	totalLength := 0

	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			// Continue with other pages even if one fails
			continue
		}

		if totalLength+len(content) > r.maxTextSize {
			remaining := r.maxTextSize - totalLength
			if remaining > 0 {
				builder.WriteString(content[:remaining])
			}
			break
		}

		builder.WriteString(content)
		totalLength += len(content)

		if pageNum < pdfReader.NumPage() {
			builder.WriteString("\n")
		}
	}

	text := builder.String()
	if text == "" {
		return "", fmt.Errorf("no text content could be extracted from PDF")
	}

	return text, nil
}
