package linkedin

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	defaultGuestBaseURL = "https://www.linkedin.com"
	defaultUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// MaxResults caps the number of job cards returned per search.
	MaxResults = 25

	// HardLimit is the absolute ceiling any caller-provided limit is
	// clamped to before truncating the result list.
	HardLimit = 100
)

// GuestClient scrapes LinkedIn's public (unauthenticated) job pages
type GuestClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewGuestClient instantiates a scraping client
func NewGuestClient(cfg Config) *GuestClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGuestBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &GuestClient{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: httpClient,
	}
}

// DefaultLimit reports the result cap used when the caller passes none.
func (c *GuestClient) DefaultLimit() int {
	return MaxResults
}

// SearchJobs fetches a public search page and extracts job cards. The
// returned page always carries the attempted URL so empty results can point
// the user at a manual retry.
func (c *GuestClient) SearchJobs(ctx context.Context, query SearchQuery) (SearchPage, error) {
	u := c.buildSearchURL(query)
	page := SearchPage{URL: u}

	doc, err := c.fetchDocument(ctx, u)
	if err != nil {
		return page, err
	}

	limit := ClampLimit(query.Limit, MaxResults)

	cards := doc.Find("div.base-card")
	if cards.Length() == 0 {
		// Alternative layout: cards rendered as bare list items.
		cards = doc.Find("ul.jobs-search__results-list > li")
	}

	cards.EachWithBreak(func(_ int, card *goquery.Selection) bool {
		if job, ok := parseJobCard(card); ok {
			page.Jobs = append(page.Jobs, job)
		}
		return len(page.Jobs) < limit
	})

	// Public pages expose no match count beyond what was extracted.
	page.Total = len(page.Jobs)

	return page, nil
}

// JobDetails fetches a single job posting page. ref may be a full LinkedIn
// URL or a bare job ID.
func (c *GuestClient) JobDetails(ctx context.Context, ref string) (JobDetails, error) {
	jobID := JobIDFromRef(ref)
	u := c.baseURL + "/jobs/view/" + url.PathEscape(jobID)
	details := JobDetails{URL: u}

	doc, err := c.fetchDocument(ctx, u)
	if err != nil {
		return details, err
	}

	details.Title = textOrDefault(doc.Selection, FieldNotAvailable, "h1.top-card-layout__title")
	details.Company = textOrDefault(doc.Selection, FieldNotAvailable, "a.topcard__org-name-link")
	details.Location = textOrDefault(doc.Selection, FieldNotAvailable, "span.topcard__flavor--bullet")
	details.Description = textOrDefault(doc.Selection, "", "div.show-more-less-html__markup")

	return details, nil
}

// FindCompany probes the best-guess public profile URL for a company name.
func (c *GuestClient) FindCompany(ctx context.Context, name string) (Company, error) {
	slug := CompanySlug(name)
	u := c.baseURL + "/company/" + url.PathEscape(slug)

	company := Company{
		Name:      name,
		ID:        slug,
		URL:       u,
		LookupURL: c.baseURL + "/search/results/companies/?keywords=" + url.QueryEscape(name),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return company, fmt.Errorf("linkedin: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return company, fmt.Errorf("linkedin: request %s failed: %w", u, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	company.Found = resp.StatusCode == http.StatusOK
	return company, nil
}

func (c *GuestClient) buildSearchURL(query SearchQuery) string {
	values := url.Values{}
	values.Set("keywords", query.Keywords)
	values.Set("position", "1")
	values.Set("pageNum", "0")

	if query.Location != "" {
		values.Set("location", query.Location)
	}
	if v := TimeFilter(query.PostedTime); v != "" {
		values.Set("f_TPR", v)
	}
	if v := ExperienceFilter(query.ExperienceLevel); v != "" {
		values.Set("f_E", v)
	}
	if v := JobTypeFilter(query.JobType); v != "" {
		values.Set("f_JT", v)
	}
	if query.Remote {
		values.Set("f_WT", workplaceRemote)
	}

	return c.baseURL + "/jobs/search/?" + values.Encode()
}

func (c *GuestClient) fetchDocument(ctx context.Context, u string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("linkedin: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("linkedin: request %s failed: %w", u, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("linkedin: %s returned status %d", u, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("linkedin: parse %s: %w", u, err)
	}

	return doc, nil
}

// parseJobCard extracts one normalized job from a card. A card without a
// resolvable title yields no record; the caller skips it and moves on.
func parseJobCard(card *goquery.Selection) (Job, bool) {
	title := firstText(card, "h3.base-search-card__title", "a.base-card__full-link")
	if title == "" {
		return Job{}, false
	}

	href, _ := card.Find("a.base-card__full-link").First().Attr("href")
	href = strings.TrimSpace(href)
	if href == "" {
		return Job{}, false
	}

	return Job{
		Title:    title,
		URL:      href,
		ID:       JobIDFromRef(href),
		Company:  firstTextOr(card, CompanyNotListed, "h4.base-search-card__subtitle", "a.hidden-nested-link"),
		Location: firstTextOr(card, LocationNotSpecified, "span.job-search-card__location"),
		Posted:   firstText(card, "time.job-search-card__listdate"),
	}, true
}

// firstText tries each selector in order and returns the first non-empty
// trimmed text it finds.
func firstText(s *goquery.Selection, selectors ...string) string {
	for _, sel := range selectors {
		if text := strings.TrimSpace(s.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

// firstTextOr is firstText with a sentinel default.
func firstTextOr(s *goquery.Selection, def string, selectors ...string) string {
	if text := firstText(s, selectors...); text != "" {
		return text
	}
	return def
}

func textOrDefault(s *goquery.Selection, def string, selector string) string {
	if text := strings.TrimSpace(s.Find(selector).First().Text()); text != "" {
		return text
	}
	return def
}

// trailingIDRe matches the numeric job ID at the end of a view-URL slug,
// covering both /jobs/view/4335742219 and /jobs/view/ai-engineer-at-acme-4335742219.
var trailingIDRe = regexp.MustCompile(`(\d{7,})$`)

// JobIDFromRef extracts a job ID from a LinkedIn job URL, passing bare IDs
// through untouched.
func JobIDFromRef(ref string) string {
	ref = strings.TrimSpace(ref)
	if !strings.Contains(ref, "linkedin.com") {
		return ref
	}

	id := ref
	if idx := strings.LastIndex(id, "/view/"); idx != -1 {
		id = id[idx+len("/view/"):]
	}
	id = strings.SplitN(id, "?", 2)[0]
	id = strings.TrimSuffix(id, "/")

	if m := trailingIDRe.FindStringSubmatch(id); m != nil {
		return m[1]
	}
	return id
}

// CompanySlug derives the public profile slug for a company name.
func CompanySlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// ClampLimit normalizes a caller-provided result limit: non-positive values
// take the default, anything above HardLimit is clamped down.
func ClampLimit(limit, def int) int {
	if limit <= 0 {
		limit = def
	}
	if limit > HardLimit {
		limit = HardLimit
	}
	return limit
}
