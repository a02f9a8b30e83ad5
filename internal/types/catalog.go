package types

// JobCatalogEntry is one immutable posting in the static job catalog.
// Entries are loaded once per model build; a catalog refresh replaces the
// whole set, never patches it.
type JobCatalogEntry struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company,omitempty"`
	Location     string   `json:"location,omitempty"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// JobRecommendation is a catalog entry plus the scores derived for one query.
// FinalScore blends lexical similarity with the classifier's probability for
// the entry's category.
type JobRecommendation struct {
	JobCatalogEntry
	SimilarityScore  float64 `json:"similarity_score"`
	ProbabilityScore float64 `json:"probability_score"`
	FinalScore       float64 `json:"final_score"`
}
