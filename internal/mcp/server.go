package mcp

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/clearclaim/fnol-triage/internal/claims"
	"github.com/clearclaim/fnol-triage/internal/config"
	"github.com/clearclaim/fnol-triage/internal/descriptions"
	"github.com/clearclaim/fnol-triage/internal/document"
)

// Server represents the MCP server instance
type Server struct {
	config    *config.Config
	documents *document.Service
	processor *claims.Processor
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, documents *document.Service, processor *claims.Processor) (*Server, error) {
	if documents == nil {
		return nil, fmt.Errorf("documents service cannot be nil")
	}
	if processor == nil {
		return nil, fmt.Errorf("processor cannot be nil")
	}

	// Create MCP server
	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:    cfg,
		documents: documents,
		processor: processor,
		mcpServer: mcpServer,
	}

	// Register tools
	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	processFileTool := mcp.NewTool(
		"claim_process_file",
		mcp.WithDescription(descriptions.ClaimProcessFileDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the claim document (.pdf or .txt)"),
		),
	)
	s.mcpServer.AddTool(processFileTool, s.handleClaimProcessFile)

	processTextTool := mcp.NewTool(
		"claim_process_text",
		mcp.WithDescription(descriptions.ClaimProcessTextDescription),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Raw claim text to process"),
		),
		mcp.WithString("source",
			mcp.Description("Optional source label recorded in the result (defaults to 'inline_text')"),
		),
	)
	s.mcpServer.AddTool(processTextTool, s.handleClaimProcessText)

	validateFileTool := mcp.NewTool(
		"claim_validate_file",
		mcp.WithDescription(descriptions.ClaimValidateFileDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the claim document"),
		),
	)
	s.mcpServer.AddTool(validateFileTool, s.handleClaimValidateFile)

	searchDirectoryTool := mcp.NewTool(
		"claim_search_directory",
		mcp.WithDescription(descriptions.ClaimSearchDirectoryDescription),
		mcp.WithString("directory",
			mcp.Description("Directory path to search (uses the configured claims directory if empty)"),
		),
		mcp.WithString("query",
			mcp.Description("Optional search query for fuzzy filename matching"),
		),
	)
	s.mcpServer.AddTool(searchDirectoryTool, s.handleClaimSearchDirectory)

	serverInfoTool := mcp.NewTool(
		"claim_server_info",
		mcp.WithDescription(descriptions.ClaimServerInfoDescription),
	)
	s.mcpServer.AddTool(serverInfoTool, s.handleClaimServerInfo)
}

// Handler functions
func (s *Server) handleClaimProcessFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := s.documents.ReadFile(document.ReadFileRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := s.processor.Process(doc.Content, doc.Path)
	return s.processingResultResponse(result)
}

func (s *Server) handleClaimProcessText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	source := "inline_text"
	if v, ok := request.GetArguments()["source"].(string); ok && v != "" {
		source = v
	}

	result := s.processor.Process(text, source)
	return s.processingResultResponse(result)
}

func (s *Server) handleClaimValidateFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.documents.ValidateFile(document.ValidateFileRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if result.Valid {
		responseText = fmt.Sprintf("Claim document %s is valid and readable (%s)", result.Path, result.Format)
	} else {
		responseText = fmt.Sprintf("Claim document validation failed for %s: %s", result.Path, result.Message)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleClaimSearchDirectory(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	args := request.GetArguments()

	directory := s.config.ClaimsDirectory // default
	if dir, ok := args["directory"].(string); ok && dir != "" {
		directory = dir
	}

	query := ""
	if q, ok := args["query"].(string); ok {
		query = q
	}

	result, err := s.documents.SearchDirectory(document.SearchDirectoryRequest{
		Directory: directory,
		Query:     query,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if result.TotalCount == 0 {
		responseText = fmt.Sprintf("No claim documents found in directory: %s", result.Directory)
		if result.SearchQuery != "" {
			responseText += fmt.Sprintf(" (searched for: %s)", result.SearchQuery)
		}
	} else {
		responseText = s.formatSearchDirectoryResult(result)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleClaimServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := s.documents.ServerInfo(s.config.ServerName, s.config.Version, availableTools(), descriptions.UsageGuidance)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := s.formatServerInfoResult(result)
	return mcp.NewToolResultText(responseText), nil
}

// Formatting methods
func (s *Server) processingResultResponse(result *claims.ProcessingResult) (*mcp.CallToolResult, error) {
	body, err := result.JSON()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to serialize processing result: %v", err)), nil
	}

	text := fmt.Sprintf("Processed claim: %s\n", result.SourceFile)
	text += fmt.Sprintf("Recommended route: %s\n", result.RecommendedRoute)
	text += fmt.Sprintf("Reasoning: %s\n", result.Reasoning)
	text += fmt.Sprintf("Extracted fields: %d\n", result.ExtractedFields.Len())
	if len(result.MissingFields) > 0 {
		text += fmt.Sprintf("Missing mandatory fields: %s\n", joinFieldNames(result.MissingFields))
	}
	text += "\nResult:\n"
	text += string(body)

	return mcp.NewToolResultText(text), nil
}

func (s *Server) formatSearchDirectoryResult(result *document.SearchDirectoryResult) string {
	text := fmt.Sprintf("Found %d claim document(s) in directory: %s\n", result.TotalCount, result.Directory)
	if result.SearchQuery != "" {
		text += fmt.Sprintf("Search query: %s\n", result.SearchQuery)
	}
	text += "\nFiles:\n"

	for i, file := range result.Files {
		text += fmt.Sprintf("%d. %s\n", i+1, file.Name)
		text += fmt.Sprintf("   Path: %s\n", file.Path)
		text += fmt.Sprintf("   Size: %d bytes\n", file.Size)
		text += fmt.Sprintf("   Modified: %s\n", file.ModifiedTime)
		if i < len(result.Files)-1 {
			text += "\n"
		}
	}

	return text
}

func (s *Server) formatServerInfoResult(result *document.ServerInfoResult) string {
	text := fmt.Sprintf("📋 %s v%s - Server Information\n", result.ServerName, result.Version)
	text += fmt.Sprintf("📁 Claims Directory: %s\n", result.ClaimsDirectory)
	text += fmt.Sprintf("📏 Max File Size: %d MB\n\n", result.MaxFileSize/(1024*1024))

	// Directory contents
	if len(result.DirectoryContents) > 0 {
		text += fmt.Sprintf("📂 Directory Contents (%d claim documents found):\n", len(result.DirectoryContents))
		for i, file := range result.DirectoryContents {
			if i >= 10 { // Limit to first 10 files for readability
				text += fmt.Sprintf("   ... and %d more files\n", len(result.DirectoryContents)-10)
				break
			}
			text += fmt.Sprintf("   %d. %s (%d bytes)\n", i+1, file.Name, file.Size)
		}
		text += "\n"
	} else {
		text += "📂 Directory Contents: No claim documents found in claims directory\n\n"
	}

	// Available tools
	text += "🛠️  Available Tools:\n"
	for _, tool := range result.AvailableTools {
		text += fmt.Sprintf("\n• %s\n", tool.Name)
		text += fmt.Sprintf("  Description: %s\n", tool.Description)
		text += fmt.Sprintf("  Usage: %s\n", tool.Usage)
		text += fmt.Sprintf("  Parameters: %s\n", tool.Parameters)
	}

	// Usage guidance
	text += "\n" + result.UsageGuidance

	return text
}

// availableTools lists the claim tools for the server info response
func availableTools() []document.ToolInfo {
	return []document.ToolInfo{
		{
			Name:        "claim_process_file",
			Description: "Extract, classify, fraud-screen and route a claim document",
			Usage:       "claim_process_file(path: \"/claims/claim_001.pdf\")",
			Parameters:  "path (required): full path to a .pdf or .txt claim document",
		},
		{
			Name:        "claim_process_text",
			Description: "Run the processing pipeline on raw claim text",
			Usage:       "claim_process_text(text: \"POLICY NUMBER: POL-123...\")",
			Parameters:  "text (required): raw claim text; source (optional): label for the result",
		},
		{
			Name:        "claim_validate_file",
			Description: "Check a claim document is readable before processing",
			Usage:       "claim_validate_file(path: \"/claims/claim_001.pdf\")",
			Parameters:  "path (required): full path to the claim document",
		},
		{
			Name:        "claim_search_directory",
			Description: "List claim documents in a directory with optional fuzzy matching",
			Usage:       "claim_search_directory(directory: \"/claims\", query: \"2024\")",
			Parameters:  "directory (optional): defaults to the configured claims directory; query (optional): fuzzy filename filter",
		},
		{
			Name:        "claim_server_info",
			Description: "Show server configuration, pending documents and usage guidance",
			Usage:       "claim_server_info()",
			Parameters:  "none",
		},
	}
}

func joinFieldNames(fields []claims.FieldName) string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// Run starts the MCP server on standard I/O
func (s *Server) Run(ctx context.Context) error {
	return s.runStdioMode(ctx)
}

// runStdioMode runs the server in stdio mode
func (s *Server) runStdioMode(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting FNOL triage MCP server in stdio mode")
		log.Printf("Claims directory: %s", s.config.ClaimsDirectory)
	}

	// Use the mark3labs/mcp-go server.ServeStdio function
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
