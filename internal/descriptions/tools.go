package descriptions

// Comprehensive tool descriptions with practical examples and use cases

const (
	ClaimProcessFileDescription = `Run the full FNOL pipeline on a claim document: extract fields, classify, screen for fraud, and route.

**When to use:** You have a first notice of loss document (.pdf or .txt) on disk and need a routing decision with supporting evidence.

**Why it's useful:** Produces a complete, auditable processing result in one call: every field the document yielded, every mandatory field it is missing, the recommended queue, and the reasoning behind it.

**Examples:**
• Intake triage: "Process claim_2024_0117.pdf and tell me which queue it belongs in"
• Batch review: "Process each document in /claims/incoming and summarize the routes"
• Audit replay: "Re-process archived_claim.txt to confirm the original routing decision"

**Common workflows:**
1. Intake: claim_search_directory → claim_process_file per document → dispatch to queues
2. Quality control: claim_validate_file → claim_process_file → review reasoning
3. Escalation review: process → inspect missing fields → request follow-up from claimant

**Best practices:** Validate unfamiliar files first with claim_validate_file; the result JSON is deterministic, so re-processing an unchanged document yields the same decision.`

	ClaimProcessTextDescription = `Run the full FNOL pipeline on raw claim text supplied inline.

**When to use:** The claim narrative arrived through another channel (email body, transcription, pasted form) and never touched disk.

**Why it's useful:** Gives the same extraction, classification, fraud screening and routing as file processing without requiring a file in the claims directory.

**Examples:**
• Email intake: "Process this pasted FNOL email and route it"
• What-if analysis: "How would this claim route if the damage estimate were $26,000?"
• Form testing: "Check which fields this draft claim template actually yields"

**Common workflows:**
1. Channel bridging: Receive text → claim_process_text → route decision
2. Threshold exploration: Edit text → re-process → compare routes

**Best practices:** Supply the text exactly as received; the extractor depends on the LABEL: value layout of standard FNOL forms.`

	ClaimValidateFileDescription = `Verify a claim document is readable before processing.

**When to use:** Before processing unfamiliar or user-uploaded documents, especially in automated intake.

**Why it's useful:** Catches corrupted PDFs, empty files, oversized files, and unsupported formats early, before they produce misleading all-fields-missing results.

**Examples:**
• Upload verification: "Check uploaded_claim.pdf is valid before triage"
• Batch safety: "Validate every file in /claims/incoming before the nightly run"

**Common workflows:**
1. Automated intake: Validate → process if valid → quarantine otherwise
2. Quality control: Validate → report unreadable documents → request re-submission

**Best practices:** A validation failure message names the specific problem; surface it to whoever supplied the document.`

	ClaimSearchDirectoryDescription = `Discover claim documents (.pdf and .txt) in a directory with optional fuzzy matching.

**When to use:** Need to enumerate pending claim documents or find a specific claim by partial filename.

**Why it's useful:** Filters to supported document types, skips hidden directories and unreadable files, and matches loosely against filename words.

**Examples:**
• Queue listing: "List all claim documents waiting in the intake directory"
• Lookup: "Find the document for claim 2024-0117"

**Common workflows:**
1. Batch processing: Search directory → claim_process_file per result
2. Case lookup: Search with query → open the matching document

**Best practices:** Omit the directory argument to search the configured claims directory.`

	ClaimServerInfoDescription = `Get server status, the configured claims directory, its contents, and tool usage guidance.

**When to use:** First call in a session, or whenever you need to confirm configuration and discover available tools.

**Why it's useful:** Shows which documents are available for processing and how each tool should be used, so an agent can plan a triage workflow without trial and error.

**Examples:**
• Session start: "What claim tools are available and what documents are pending?"
• Configuration check: "Which directory is this triage server watching?"

**Best practices:** Directory contents are cached briefly; re-run after adding documents if the listing looks stale.`
)

// UsageGuidance summarizes how the claim tools compose into a triage workflow
const UsageGuidance = `💡 Quick Start:
1. Use 'claim_search_directory' to list pending claim documents
2. Use 'claim_validate_file' on anything you did not produce yourself
3. Use 'claim_process_file' to extract, classify and route a document
4. Use 'claim_process_text' for claim narratives that never touched disk

Routing queues, highest priority first: Manual Review (missing mandatory
fields or no damage estimate), Investigation Queue (fraud indicators),
Specialist Queue (injury claims), Fast-Track (damage below threshold),
Standard Processing (everything else).`

// ToolDescriptions maps tool names to their comprehensive descriptions
var ToolDescriptions = map[string]string{
	"claim_process_file":     ClaimProcessFileDescription,
	"claim_process_text":     ClaimProcessTextDescription,
	"claim_validate_file":    ClaimValidateFileDescription,
	"claim_search_directory": ClaimSearchDirectoryDescription,
	"claim_server_info":      ClaimServerInfoDescription,
}

// GetToolDescription returns the comprehensive description for a tool
func GetToolDescription(toolName string) string {
	if desc, exists := ToolDescriptions[toolName]; exists {
		return desc
	}
	return "Tool description not available"
}

// GetAllToolNames returns a list of all available tool names
func GetAllToolNames() []string {
	var names []string
	for name := range ToolDescriptions {
		names = append(names, name)
	}
	return names
}
