package llm

// DefaultModels is the ordered model fallback chain for resume analysis. The
// analyzer starts with the first entry and falls back to the next when a
// model is rate limited or over quota.
func DefaultModels() []string {
	return []string{
		"gemini-2.5-flash",
		"gemini-2.5-flash-lite",
		"gemini-1.5-flash",
	}
}
