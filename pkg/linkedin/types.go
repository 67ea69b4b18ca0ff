package linkedin

import "net/http"

// Config defines settings shared by the guest and REST clients
type Config struct {
	// REST API credentials. AccessToken is mandatory for the API client,
	// ClientID/ClientSecret are carried for token refresh flows.
	ClientID     string
	ClientSecret string
	AccessToken  string

	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
	PageSize   int
}

// SearchQuery carries normalized job search filters
type SearchQuery struct {
	Keywords        string
	Location        string
	ExperienceLevel string
	PostedTime      string
	JobType         string
	Remote          bool
	Limit           int
}

// Job is a single normalized job card
type Job struct {
	ID              string
	Title           string
	Company         string
	Location        string
	Posted          string
	URL             string
	ExperienceLevel string
}

// SearchPage is one page of job search results plus the URL that produced it.
// Total is the upstream's match count, which can exceed len(Jobs) when the
// page was truncated by a limit.
type SearchPage struct {
	Jobs  []Job
	URL   string
	Total int
}

// JobDetails describes a single job posting page
type JobDetails struct {
	Title       string
	Company     string
	Location    string
	URL         string
	Description string
}

// Company is a normalized company lookup result
type Company struct {
	Name    string
	ID      string
	Tagline string
	URL     string
	Found   bool
	// LookupURL points at a manual search when the direct lookup misses
	LookupURL string
}

// Person is a normalized people search result
type Person struct {
	Name       string
	Headline   string
	ProfileURL string
}

// Sentinel values substituted when a field cannot be extracted.
const (
	CompanyNotListed     = "Company not listed"
	LocationNotSpecified = "Location not specified"
	FieldNotAvailable    = "N/A"
)

// restSearchResponse is the envelope every REST endpoint returns
type restSearchResponse struct {
	Elements []restJobElement `json:"elements"`
	Paging   restPaging       `json:"paging"`
}

type restPaging struct {
	Count int `json:"count"`
	Start int `json:"start"`
	Total int `json:"total"`
}

type restJobElement struct {
	JobPostingID      string `json:"jobPostingId"`
	Title             string `json:"title"`
	FormattedLocation string `json:"formattedLocation"`
	ExperienceLevel   string `json:"experienceLevel"`
	ListedAt          int64  `json:"listedAt"`
	ApplyURL          string `json:"applyUrl"`
	CompanyDetails    struct {
		Company struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"company"`
	} `json:"companyDetails"`
	Description struct {
		Text string `json:"text"`
	} `json:"description"`
}

type restCompanyResponse struct {
	Elements []restCompanyElement `json:"elements"`
}

type restCompanyElement struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	LocalizedName string `json:"localizedName"`
	UniversalName string `json:"universalName"`
	Tagline       string `json:"tagline"`
}

type restPeopleResponse struct {
	Elements []restPersonElement `json:"elements"`
}

type restPersonElement struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Headline         string `json:"headline"`
	PublicIdentifier string `json:"publicIdentifier"`
}
