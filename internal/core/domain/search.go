package domain

// SearchKind identifies a search vertical supported by the provider.
type SearchKind string

// Available search kinds.
const (
	// KindText is general web text search.
	KindText SearchKind = "text"

	// KindImages is image search.
	KindImages SearchKind = "images"

	// KindVideos is video search.
	KindVideos SearchKind = "videos"

	// KindNews is news article search.
	KindNews SearchKind = "news"

	// KindBooks is book search.
	KindBooks SearchKind = "books"
)

// IsValid returns true if the search kind is recognised.
func (k SearchKind) IsValid() bool {
	switch k {
	case KindText, KindImages, KindVideos, KindNews, KindBooks:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k SearchKind) String() string {
	return string(k)
}

// SafeSearch controls content filtering on search results.
type SafeSearch string

// Available safe search levels.
const (
	SafeSearchOn       SafeSearch = "on"
	SafeSearchModerate SafeSearch = "moderate"
	SafeSearchOff      SafeSearch = "off"
)

// IsValid returns true if the safe search level is recognised.
func (s SafeSearch) IsValid() bool {
	switch s {
	case SafeSearchOn, SafeSearchModerate, SafeSearchOff:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s SafeSearch) String() string {
	return string(s)
}

// TimeLimit restricts results to a recency window.
// An empty value means no restriction.
type TimeLimit string

// Available time limits.
const (
	TimeLimitDay   TimeLimit = "d"
	TimeLimitWeek  TimeLimit = "w"
	TimeLimitMonth TimeLimit = "m"
	TimeLimitYear  TimeLimit = "y"
)

// String returns the string representation.
func (t TimeLimit) String() string {
	return string(t)
}

// Default option values applied when the caller omits a parameter.
const (
	DefaultRegion     = "us-en"
	DefaultSafeSearch = SafeSearchModerate
	DefaultMaxResults = 10
	DefaultPage       = 1
	DefaultBackend    = "auto"

	// MaxResultsCeiling is the largest accepted max_results value.
	MaxResultsCeiling = 50
)

// SearchOptions is the normalised, validated form of a search invocation's
// arguments. It is created per request and discarded after the provider
// call returns. Facet fields only apply to some kinds; the provider ignores
// fields that do not apply to the requested vertical.
type SearchOptions struct {
	// Region is the region code, e.g. "us-en".
	Region string

	// SafeSearch is the content filtering level.
	SafeSearch SafeSearch

	// TimeLimit restricts recency. Empty means unrestricted.
	TimeLimit TimeLimit

	// MaxResults is the page size (1..MaxResultsCeiling).
	MaxResults int

	// Page is the 1-based result page. Pagination arithmetic is the
	// provider's contract; this core passes Page and MaxResults through
	// unmodified.
	Page int

	// Backend selects the provider backend. "auto" delegates the choice
	// to the provider entirely.
	Backend string

	// Image facets.
	Size         string
	Color        string
	TypeImage    string
	Layout       string
	LicenseImage string

	// Video facets.
	Resolution    string
	Duration      string
	LicenseVideos string
}

// DefaultSearchOptions returns options with all defaults applied.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Region:     DefaultRegion,
		SafeSearch: DefaultSafeSearch,
		MaxResults: DefaultMaxResults,
		Page:       DefaultPage,
		Backend:    DefaultBackend,
	}
}

// SearchResult is a single result record returned by the provider.
// Records are passed through verbatim; this core does not interpret,
// rank, or post-process them.
type SearchResult map[string]string
