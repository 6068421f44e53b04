package document

import (
	"fmt"
)

// Service handles claim document operations by orchestrating the
// reader, validator and search components behind a path guard.
type Service struct {
	maxFileSize int64
	reader      *Reader
	validator   *Validator
	search      *Search
	guard       *PathGuard
	infoCache   *directoryCache
}

// NewService creates a new document service rooted at the claims directory
func NewService(maxFileSize int64, claimsDirectory string) (*Service, error) {
	guard, err := NewPathGuard(claimsDirectory)
	if err != nil {
		return nil, fmt.Errorf("failed to create path guard: %w", err)
	}

	return &Service{
		maxFileSize: maxFileSize,
		reader:      NewReader(maxFileSize),
		validator:   NewValidator(maxFileSize),
		search:      NewSearch(maxFileSize),
		guard:       guard,
		infoCache:   newDirectoryCache(directoryCacheTTL),
	}, nil
}

// ReadFile decodes the text content of a claim document
func (s *Service) ReadFile(req ReadFileRequest) (*ReadFileResult, error) {
	if err := s.guard.CheckPath(req.Path); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}
	return s.reader.ReadFile(req)
}

// ValidateFile performs validation on a claim document
func (s *Service) ValidateFile(req ValidateFileRequest) (*ValidateFileResult, error) {
	if err := s.guard.CheckPath(req.Path); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}
	return s.validator.ValidateFile(req)
}

// SearchDirectory searches for claim documents in a directory
func (s *Service) SearchDirectory(req SearchDirectoryRequest) (*SearchDirectoryResult, error) {
	if req.Directory == "" {
		req.Directory = s.guard.ClaimsDirectory()
	}

	if err := s.guard.CheckDirectory(req.Directory); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}

	return s.search.SearchDirectory(req)
}

// ClaimsDirectory returns the configured claims directory
func (s *Service) ClaimsDirectory() string {
	return s.guard.ClaimsDirectory()
}

// MaxFileSize returns the maximum file size limit
func (s *Service) MaxFileSize() int64 {
	return s.maxFileSize
}

// CountDocumentsInDirectory counts the claim documents in a directory
func (s *Service) CountDocumentsInDirectory(directory string) (int, error) {
	return s.search.CountDocumentsInDirectory(directory)
}
