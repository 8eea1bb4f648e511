package news

// Keyword catalogues. All entries are lowercase; matching is substring
// containment against NormalizeLight text.

// FieldKeywords measures relevance to enterprise field technology leadership.
var FieldKeywords = []string{
	"enterprise", "client", "customer", "deal", "revenue", "roi", "tco", "business case",
	"digital transformation", "modernization", "migration", "cto", "cio", "ciso", "ceo",
	"board", "c-suite", "executive", "leadership", "ibm", "watsonx", "red hat", "openshift",
	"consulting", "services", "hybrid cloud", "multicloud", "kubernetes", "containerization",
	"api", "integration", "microservices", "platform", "cost reduction", "efficiency",
	"automation", "productivity", "competitive advantage", "innovation", "growth",
}

// RegionalKeywords measures Asia-Pacific relevance.
var RegionalKeywords = []string{
	"singapore", "australia", "japan", "korea", "india", "indonesia", "malaysia", "thailand",
	"vietnam", "philippines", "new zealand", "hong kong", "taiwan", "asia pacific", "apac",
	"asean", "asia", "pacific rim", "mas", "apra", "rbi", "fsa", "pdpc", "imda",
}

// UrgencyKeywords marks time-sensitive coverage.
var UrgencyKeywords = []string{
	"ai agent", "agentic", "autonomous", "llm", "large language model", "gpt", "claude",
	"gemini", "copilot", "watsonx", "generative ai", "gen ai", "foundation model",
	"ai governance", "responsible ai", "ai ethics", "ai safety", "ai regulation", "ai act",
	"ai policy", "cybersecurity", "security", "breach", "vulnerability", "zero trust",
	"ransomware", "threat", "attack", "quantum safe", "encryption", "identity",
	"data sovereignty", "data localization", "data residency", "gdpr", "pdpa", "pipl",
	"privacy", "compliance", "breaking", "urgent", "critical", "announced", "launched",
}

// CompetitiveKeywords marks competitor and market-move coverage.
var CompetitiveKeywords = []string{
	"microsoft", "azure", "google cloud", "gcp", "aws", "amazon web services", "accenture",
	"deloitte", "kpmg", "pwc", "ey", "mckinsey", "bcg", "bain", "tcs", "infosys", "wipro",
	"cognizant", "capgemini", "salesforce", "servicenow", "snowflake", "databricks",
	"palantir", "oracle", "sap", "vmware", "dell", "hpe", "openai", "anthropic",
	"google deepmind", "meta ai", "cohere", "partnership", "acquisition", "merger",
	"contract", "deal", "wins", "loses", "expands", "launches",
}

// ArchitectureKeywords marks platform and architecture coverage.
var ArchitectureKeywords = []string{
	"kubernetes", "openshift", "docker", "container", "cloud native", "serverless",
	"microservices", "api", "integration", "middleware", "event-driven", "data fabric",
	"data mesh", "lakehouse", "data platform", "hybrid cloud", "multicloud", "edge", "5g",
	"devops", "devsecops", "sre", "platform engineering",
}

// GovernanceTerms add a flat urgency bonus when any of them is present.
var GovernanceTerms = []string{
	"ai governance", "responsible ai", "ai safety", "ai ethics", "ai regulation",
}

// SovereigntyTerms add a flat urgency bonus when any of them is present.
var SovereigntyTerms = []string{
	"data sovereignty", "data localization", "data residency", "cross-border",
}

// TopicGroups is the cross-reference catalogue. Each group is a set of
// synonymous terms; the first term names the topic.
var TopicGroups = [][]string{
	{"openai", "gpt", "chatgpt"},
	{"anthropic", "claude"},
	{"google", "gemini", "deepmind"},
	{"microsoft", "copilot", "azure ai"},
	{"ai agent", "agentic", "autonomous agent"},
	{"llm", "large language model", "foundation model"},
	{"ai regulation", "ai act", "ai governance"},
	{"data privacy", "gdpr", "pdpa", "pipl"},
	{"data sovereignty", "data localization"},
	{"ibm", "watsonx", "red hat"},
	{"aws", "amazon web services", "bedrock"},
	{"accenture"},
	{"deloitte"},
	{"kubernetes", "container", "openshift"},
	{"quantum", "quantum computing"},
	{"semiconductor", "chip", "nvidia"},
}
