package linkedin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultAPIBaseURL  = "https://api.linkedin.com/v2"
	defaultAPIPageSize = 10

	restliProtocolVersion = "2.0.0"
)

// APIClient queries the authenticated LinkedIn REST API
type APIClient struct {
	clientID     string
	clientSecret string
	accessToken  string
	baseURL      string
	httpClient   *http.Client
	pageSize     int
}

// NewAPIClient instantiates a REST API client
func NewAPIClient(cfg Config) (*APIClient, error) {
	if cfg.AccessToken == "" {
		return nil, fmt.Errorf("linkedin: access token is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultAPIPageSize
	}

	return &APIClient{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		accessToken:  cfg.AccessToken,
		baseURL:      baseURL,
		httpClient:   httpClient,
		pageSize:     pageSize,
	}, nil
}

// DefaultLimit reports the result cap used when the caller passes none.
func (c *APIClient) DefaultLimit() int {
	return c.pageSize
}

// SearchJobs queries the job search endpoint. Every returned element yields
// exactly one record; missing fields are papered over with sentinel values
// instead of dropping the element.
func (c *APIClient) SearchJobs(ctx context.Context, query SearchQuery) (SearchPage, error) {
	values := url.Values{}
	values.Set("keywords", query.Keywords)
	if query.Location != "" {
		values.Set("location", query.Location)
	}
	if v := TimeFilter(query.PostedTime); v != "" {
		values.Set("timePosted", v)
	}
	if v := APIExperienceFilter(query.ExperienceLevel); v != "" {
		values.Set("experienceLevels", v)
	}
	if v := JobTypeFilter(query.JobType); v != "" {
		values.Set("jobType", v)
	}
	if query.Remote {
		values.Set("workplaceTypes", workplaceRemote)
	}

	limit := ClampLimit(query.Limit, c.pageSize)
	values.Set("count", fmt.Sprint(limit))

	u := c.baseURL + "/jobSearch?" + values.Encode()
	page := SearchPage{URL: u}

	var payload restSearchResponse
	if err := c.getJSON(ctx, u, &payload); err != nil {
		return page, err
	}

	// A payload without an elements list degrades to an empty result.
	for _, el := range payload.Elements {
		page.Jobs = append(page.Jobs, mapJobElement(el))
		if len(page.Jobs) >= limit {
			break
		}
	}

	page.Total = payload.Paging.Total
	if page.Total < len(page.Jobs) {
		page.Total = len(page.Jobs)
	}

	return page, nil
}

// JobDetails fetches one job posting by ID or URL.
func (c *APIClient) JobDetails(ctx context.Context, ref string) (JobDetails, error) {
	jobID := JobIDFromRef(ref)
	u := c.baseURL + "/jobs/" + url.PathEscape(jobID)
	details := JobDetails{URL: u}

	var el restJobElement
	if err := c.getJSON(ctx, u, &el); err != nil {
		return details, err
	}

	job := mapJobElement(el)
	details.Title = orDefault(job.Title, FieldNotAvailable)
	details.Company = job.Company
	details.Location = job.Location
	details.Description = el.Description.Text

	return details, nil
}

// FindCompany queries the company search endpoint for a name.
func (c *APIClient) FindCompany(ctx context.Context, name string) (Company, error) {
	u := c.baseURL + "/companySearch?" + url.Values{"q": {name}}.Encode()

	company := Company{
		Name:      name,
		LookupURL: u,
	}

	var payload restCompanyResponse
	if err := c.getJSON(ctx, u, &payload); err != nil {
		return company, err
	}

	if len(payload.Elements) == 0 {
		return company, nil
	}

	el := payload.Elements[0]
	company.Found = true
	company.Name = orDefault(orDefault(el.Name, el.LocalizedName), name)
	company.ID = orDefault(el.UniversalName, el.ID)
	company.Tagline = el.Tagline
	if el.UniversalName != "" {
		company.URL = "https://www.linkedin.com/company/" + el.UniversalName
	}

	return company, nil
}

// Organization fetches one organization record by its identifier.
func (c *APIClient) Organization(ctx context.Context, id string) (Company, error) {
	u := c.baseURL + "/organizations/" + url.PathEscape(id)

	var el restCompanyElement
	if err := c.getJSON(ctx, u, &el); err != nil {
		return Company{ID: id, LookupURL: u}, err
	}

	return Company{
		Name:    orDefault(orDefault(el.Name, el.LocalizedName), FieldNotAvailable),
		ID:      orDefault(el.UniversalName, id),
		Tagline: el.Tagline,
		Found:   true,
	}, nil
}

// SearchPeople queries the people search endpoint.
func (c *APIClient) SearchPeople(ctx context.Context, keywords string, limit int) ([]Person, error) {
	limit = ClampLimit(limit, c.pageSize)

	values := url.Values{}
	values.Set("keywords", keywords)
	values.Set("count", fmt.Sprint(limit))
	u := c.baseURL + "/peopleSearch?" + values.Encode()

	var payload restPeopleResponse
	if err := c.getJSON(ctx, u, &payload); err != nil {
		return nil, err
	}

	people := make([]Person, 0, len(payload.Elements))
	for _, el := range payload.Elements {
		name := strings.TrimSpace(el.FirstName + " " + el.LastName)
		person := Person{
			Name:     orDefault(name, FieldNotAvailable),
			Headline: el.Headline,
		}
		if el.PublicIdentifier != "" {
			person.ProfileURL = "https://www.linkedin.com/in/" + el.PublicIdentifier
		}
		people = append(people, person)
		if len(people) >= limit {
			break
		}
	}

	return people, nil
}

func (c *APIClient) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("linkedin: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("X-Restli-Protocol-Version", restliProtocolVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("linkedin: request %s failed: %w", u, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("linkedin: API error (%d) at %s: %s", resp.StatusCode, u, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("linkedin: decode response from %s: %w", u, err)
	}

	return nil
}

func mapJobElement(el restJobElement) Job {
	job := Job{
		ID:              el.JobPostingID,
		Title:           el.Title,
		Company:         orDefault(el.CompanyDetails.Company.Name, CompanyNotListed),
		Location:        orDefault(el.FormattedLocation, LocationNotSpecified),
		URL:             el.ApplyURL,
		ExperienceLevel: el.ExperienceLevel,
	}

	if el.ListedAt > 0 {
		job.Posted = formatEpochMillis(el.ListedAt)
	}

	if job.ID == "" {
		job.ID = uuid.NewString()
	}

	return job
}

// formatEpochMillis renders the listedAt timestamp as a calendar date.
func formatEpochMillis(ms int64) string {
	return time.UnixMilli(ms).UTC().Format("2006-01-02")
}

func orDefault(value, def string) string {
	if value != "" {
		return value
	}
	return def
}
