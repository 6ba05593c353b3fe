package mcp

// operatorsDoc is the static search-operator documentation returned by
// the get_search_operators tool. It is returned as-is, unaffected by any
// arguments the caller sends.
type operatorsDoc struct {
	Description string            `json:"description"`
	Operators   map[string]string `json:"operators"`
}

func searchOperators() operatorsDoc {
	return operatorsDoc{
		Description: "DuckDuckGo search operators",
		Operators: map[string]string{
			"cats dogs":              "Results about cats or dogs",
			`"cats and dogs"`:        "Results for the exact phrase 'cats and dogs'",
			"cats -dogs":             "Fewer mentions of dogs in results",
			"cats +dogs":             "More mentions of dogs in results",
			"cats filetype:pdf":      "PDF files about cats",
			"dogs site:example.com":  "Pages about dogs from example.com",
			"cats -site:example.com": "Pages about cats, excluding example.com",
			"intitle:dogs":           "Page title contains the word 'dogs'",
			"inurl:cats":             "Page URL contains the word 'cats'",
		},
	}
}
