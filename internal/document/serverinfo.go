package document

import (
	"sync"
	"time"
)

const directoryCacheTTL = 30 * time.Second

// ToolInfo describes one MCP tool for the server info response
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Usage       string `json:"usage"`
	Parameters  string `json:"parameters"`
}

// ServerInfoRequest represents a request for server information
type ServerInfoRequest struct{}

// ServerInfoResult represents server information and usage guidance
type ServerInfoResult struct {
	ServerName        string     `json:"server_name"`
	Version           string     `json:"version"`
	ClaimsDirectory   string     `json:"claims_directory"`
	MaxFileSize       int64      `json:"max_file_size"`
	DirectoryContents []FileInfo `json:"directory_contents"`
	AvailableTools    []ToolInfo `json:"available_tools"`
	UsageGuidance     string     `json:"usage_guidance"`
}

// directoryCache avoids rescanning the claims directory on every
// server info request.
type directoryCache struct {
	mu         sync.RWMutex
	files      []FileInfo
	lastUpdate time.Time
	ttl        time.Duration
}

func newDirectoryCache(ttl time.Duration) *directoryCache {
	return &directoryCache{ttl: ttl}
}

func (c *directoryCache) get() ([]FileInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.lastUpdate.IsZero() || time.Since(c.lastUpdate) > c.ttl {
		return nil, false
	}
	return c.files, true
}

func (c *directoryCache) set(files []FileInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files = files
	c.lastUpdate = time.Now()
}

// ServerInfo assembles server capabilities, directory contents and tool
// guidance for agents discovering the claim tools.
func (s *Service) ServerInfo(serverName, version string, tools []ToolInfo, guidance string) (*ServerInfoResult, error) {
	files, ok := s.infoCache.get()
	if !ok {
		result, err := s.search.SearchDirectory(SearchDirectoryRequest{Directory: s.guard.ClaimsDirectory()})
		if err != nil {
			// A missing or unreadable directory is reported as empty
			// contents rather than failing the whole info request.
			files = nil
		} else {
			files = result.Files
			s.infoCache.set(files)
		}
	}

	return &ServerInfoResult{
		ServerName:        serverName,
		Version:           version,
		ClaimsDirectory:   s.guard.ClaimsDirectory(),
		MaxFileSize:       s.maxFileSize,
		DirectoryContents: files,
		AvailableTools:    tools,
		UsageGuidance:     guidance,
	}, nil
}
