package mcp

import "github.com/mark3labs/mcp-go/mcp"

// lookupTumorInfoTool defines the lookup_tumor_info MCP tool.
var lookupTumorInfoTool = mcp.NewTool("lookup_tumor_info",
	mcp.WithDescription("Look up medical reference information for a brain tumor type. Returns description, symptoms, risk factors, treatment options, and prognosis."),
	mcp.WithString("tumor_type",
		mcp.Required(),
		mcp.Description("Tumor type or classifier label, e.g. 'glioma', 'Meningioma Tumour', or 'normal'"),
	),
)

// searchKnowledgeTool defines the search_knowledge MCP tool.
var searchKnowledgeTool = mcp.NewTool("search_knowledge",
	mcp.WithDescription("Search the brain tumor knowledge base semantically. Returns the most relevant reference entries and FAQs."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Natural language search query"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 5)"),
	),
)

// askAssistantTool defines the ask_assistant MCP tool.
var askAssistantTool = mcp.NewTool("ask_assistant",
	mcp.WithDescription("Ask NeuroBot, the medical imaging assistant, a question. Optionally attach scan classification context so answers reference the result."),
	mcp.WithString("message",
		mcp.Required(),
		mcp.Description("The question to ask"),
	),
	mcp.WithString("session_id",
		mcp.Description("Conversation session to continue; omit to start a new one"),
	),
	mcp.WithString("prediction",
		mcp.Description("Classifier label of the scan being discussed"),
	),
	mcp.WithNumber("confidence",
		mcp.Description("Classifier confidence percentage for the scan"),
	),
)
