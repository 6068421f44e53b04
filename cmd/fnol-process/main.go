package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/clearclaim/fnol-triage/internal/claims"
	"github.com/clearclaim/fnol-triage/internal/document"
)

var (
	outputFormat = flag.String("format", "text", "Output format: text, json")
	threshold    = flag.Float64("fasttrack", claims.DefaultFastTrackThreshold, "Damage estimate below which claims are fast-tracked")
	maxFileSize  = flag.Int64("maxfilesize", 100*1024*1024, "Maximum claim document size in bytes")
	noSave       = flag.Bool("nosave", false, "Do not write the <name>_processed.json result file")
	help         = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: claim document path required\n\n")
		printUsage()
		os.Exit(1)
	}

	exitCode := 0
	for _, path := range flag.Args() {
		if err := processFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", path, err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func processFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}

	// The one-shot tool reads documents wherever they live, so the
	// containing directory becomes the allowed root.
	documents, err := document.NewService(*maxFileSize, filepath.Dir(path))
	if err != nil {
		return err
	}

	cfg := claims.DefaultConfig()
	cfg.FastTrackThreshold = *threshold
	processor, err := claims.NewProcessor(cfg)
	if err != nil {
		return err
	}

	doc, err := documents.ReadFile(document.ReadFileRequest{Path: path})
	if err != nil {
		return err
	}

	result := processor.Process(doc.Content, filepath.Base(path))

	body, err := result.JSON()
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}

	switch *outputFormat {
	case "json":
		fmt.Println(string(body))
	case "text":
		printReport(result, body)
	default:
		return fmt.Errorf("unknown output format: %s", *outputFormat)
	}

	if *noSave {
		return nil
	}

	outputFile := resultFileName(path)
	if err := os.WriteFile(outputFile, append(body, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	if *outputFormat == "text" {
		fmt.Println("\n" + strings.Repeat("=", 60))
		fmt.Printf("✓ Results saved to: %s\n", outputFile)
		fmt.Println(strings.Repeat("=", 60))
	}

	return nil
}

// resultFileName derives the result path from the input document path,
// e.g. /claims/claim_001.pdf -> /claims/claim_001_processed.json
func resultFileName(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(path), stem+"_processed.json")
}

func printReport(result *claims.ProcessingResult, body []byte) {
	line := strings.Repeat("-", 60)
	banner := strings.Repeat("=", 60)

	fmt.Println(banner)
	fmt.Println("PROCESSING INSURANCE CLAIM")
	fmt.Println(banner)
	fmt.Printf("File: %s\n", result.SourceFile)
	fmt.Println(line)

	fmt.Println("\nEXTRACTED FIELDS:")
	fmt.Println(line)
	for _, name := range result.ExtractedFields.Names() {
		value, _ := result.ExtractedFields.Value(name)
		fmt.Printf("  %s: %v\n", name, value)
	}

	fmt.Println("\nVALIDATION:")
	fmt.Println(line)
	if result.Complete() {
		fmt.Println("  ✓ All mandatory fields present")
	} else {
		names := make([]string, 0, len(result.MissingFields))
		for _, f := range result.MissingFields {
			names = append(names, string(f))
		}
		fmt.Printf("  Missing fields: %s\n", strings.Join(names, ", "))
	}

	fmt.Println("\nROUTING DECISION:")
	fmt.Println(line)
	fmt.Printf("  Route: %s\n", result.RecommendedRoute)
	fmt.Printf("  Reasoning: %s\n", result.Reasoning)

	fmt.Println("\n" + banner)
	fmt.Println("JSON OUTPUT:")
	fmt.Println(banner)
	fmt.Println(string(body))
}

func printHelp() {
	fmt.Println("FNOL Process - extract, classify and route insurance claim documents")
	fmt.Println()
	fmt.Println("Reads a first notice of loss document (.pdf or .txt), extracts the claim")
	fmt.Println("fields, screens the description for fraud indicators, validates mandatory")
	fmt.Println("fields and prints the recommended routing queue with reasoning.")
	fmt.Println()
	printUsage()
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -format        Output format: text (default), json")
	fmt.Println("  -fasttrack     Damage estimate below which claims are fast-tracked")
	fmt.Println("  -maxfilesize   Maximum claim document size in bytes")
	fmt.Println("  -nosave        Skip writing the <name>_processed.json result file")
	fmt.Println("  -help          Show this help message")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  fnol-process claim.pdf")
	fmt.Println("  fnol-process -format json claim.txt")
	fmt.Println("  fnol-process -fasttrack 10000 claims/*.pdf")
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  fnol-process [OPTIONS] <claim_document> [...]")
}
