package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Validator handles claim document validation operations
type Validator struct {
	maxFileSize int64
}

// NewValidator creates a new document validator with the specified constraints
func NewValidator(maxFileSize int64) *Validator {
	return &Validator{
		maxFileSize: maxFileSize,
	}
}

// ValidateFile performs comprehensive validation on a claim document
func (v *Validator) ValidateFile(req ValidateFileRequest) (*ValidateFileResult, error) {
	result := &ValidateFileResult{
		Path:  req.Path,
		Valid: false,
	}

	format, err := v.validateDocument(req.Path)
	result.Format = format
	if err != nil {
		result.Message = err.Error()
		return result, nil //nolint:nilerr // Return result with validation error, not a processing error
	}

	result.Valid = true
	result.Message = fmt.Sprintf("Valid %s claim document", format)
	return result, nil
}

// validateDocument performs detailed validation on a claim document
func (v *Validator) validateDocument(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("file does not exist: %s", filePath)
	}
	if err != nil {
		return "", fmt.Errorf("cannot access file: %w", err)
	}

	if fileInfo.IsDir() {
		return "", fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	if fileInfo.Size() == 0 {
		return "", fmt.Errorf("file is empty: %s", filePath)
	}

	if fileInfo.Size() > v.maxFileSize {
		return "", fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), v.maxFileSize)
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return FormatPDF, v.validatePDF(filePath)
	case ".txt":
		return FormatText, v.validateText(filePath)
	default:
		return "", fmt.Errorf("unsupported file type: %s (supported: .pdf, .txt)", filepath.Ext(filePath))
	}
}

// validatePDF checks PDF structure using a relaxed validation context.
// Strict mode rejects many real-world carrier exports that still parse fine.
func (v *Validator) validatePDF(filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(file, conf)
	if err != nil {
		return fmt.Errorf("invalid PDF file: %w", err)
	}

	if err := ctx.EnsurePageCount(); err != nil {
		return fmt.Errorf("failed to determine page count: %w", err)
	}

	if ctx.PageCount == 0 {
		return fmt.Errorf("PDF has no pages: %s", filePath)
	}

	return nil
}

// validateText checks that a plain-text document decodes as UTF-8
func (v *Validator) validateText(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read text file: %w", err)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("text file is not valid UTF-8: %s", filePath)
	}
	return nil
}
