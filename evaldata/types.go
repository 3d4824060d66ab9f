package evaldata

// QuerySummary holds the aggregate evaluation figures for one query.
type QuerySummary struct {
	Query         string  `json:"query"`
	RelevanceRate float64 `json:"relevance_rate"`
	AvgConfidence float64 `json:"avg_confidence"`
	RelevantCount int     `json:"relevant_count"`
	TotalResults  int     `json:"total_results"`
}

// Result is a single evaluated product returned for a query.
type Result struct {
	ProductName  string  `json:"product_name"`
	ProductClass string  `json:"product_class"`
	Score        float64 `json:"score"`
	Position     int     `json:"position"`
	Confidence   float64 `json:"confidence"`
	IsRelevant   bool    `json:"is_relevant"`
	ImageURL     string  `json:"imageUrl,omitempty"`

	// At most one of these carries the product description. EmbedDescription
	// is plain text; DescCompressed is a JSON-encoded ProductDetails.
	EmbedDescription string `json:"product_embed_description,omitempty"`
	DescCompressed   string `json:"desc_compressed,omitempty"`
}

// QueryData is the full evaluation record for one query: the aggregate
// figures plus the ordered result list.
type QueryData struct {
	QuerySummary
	Results []Result `json:"results"`
}

// ProductDetails is the structured form of a compressed description.
type ProductDetails struct {
	Name        string `json:"name"`
	Class       string `json:"class"`
	Price       string `json:"price"`
	Brand       string `json:"brand"`
	Description string `json:"description"`
}
