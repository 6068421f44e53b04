package document

// Format identifies how a claim document's text was decoded
const (
	FormatPDF  = "pdf"
	FormatText = "text"
)

// FileInfo describes a claim document found on disk
type FileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}

// Request Types

// ReadFileRequest asks for the decoded text of one claim document
type ReadFileRequest struct {
	Path string `json:"path"`
}

// ValidateFileRequest asks whether a file is a readable claim document
type ValidateFileRequest struct {
	Path string `json:"path"`
}

// SearchDirectoryRequest asks for claim documents under a directory
type SearchDirectoryRequest struct {
	Directory string `json:"directory"`
	Query     string `json:"query"`
}

// Response Types

// ReadFileResult carries the decoded text of a claim document
type ReadFileResult struct {
	Content string `json:"content"`
	Path    string `json:"path"`
	Format  string `json:"format"` // "pdf" or "text"
	Pages   int    `json:"pages"`  // 0 for plain-text documents
	Size    int64  `json:"size"`
}

// ValidateFileResult carries the outcome of a document validation
type ValidateFileResult struct {
	Valid   bool   `json:"valid"`
	Path    string `json:"path"`
	Format  string `json:"format,omitempty"`
	Message string `json:"message,omitempty"`
}

// SearchDirectoryResult lists the claim documents found in a directory
type SearchDirectoryResult struct {
	Directory   string     `json:"directory"`
	Files       []FileInfo `json:"files"`
	TotalCount  int        `json:"total_count"`
	SearchQuery string     `json:"search_query,omitempty"`
}
