package linkedin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPIFixture(t *testing.T, handler http.HandlerFunc) *APIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewAPIClient(Config{
		AccessToken: "test-token",
		BaseURL:     srv.URL,
		HTTPClient:  srv.Client(),
	})
	require.NoError(t, err)
	return client
}

func TestNewAPIClientRequiresToken(t *testing.T) {
	_, err := NewAPIClient(Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access token")
}

func TestAPISearchJobsDefaultsPerMissingField(t *testing.T) {
	const payload = `{"elements":[
		{"jobPostingId":"123","title":"Backend Engineer",
		 "companyDetails":{"company":{"name":"Acme"}},
		 "formattedLocation":"Austin, TX","listedAt":1754006400000,
		 "experienceLevel":"mid_senior"},
		{"title":"Platform Engineer"},
		{}
	],"paging":{"count":3,"start":0,"total":42}}`

	var gotAuth, gotRestli string
	client := newAPIFixture(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRestli = r.Header.Get("X-Restli-Protocol-Version")
		_, _ = w.Write([]byte(payload))
	})

	page, err := client.SearchJobs(context.Background(), SearchQuery{Keywords: "engineer"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "2.0.0", gotRestli)

	// No element is ever skipped: output length equals input length.
	require.Len(t, page.Jobs, 3)
	assert.Equal(t, 42, page.Total)

	full := page.Jobs[0]
	assert.Equal(t, "123", full.ID)
	assert.Equal(t, "Backend Engineer", full.Title)
	assert.Equal(t, "Acme", full.Company)
	assert.Equal(t, "Austin, TX", full.Location)
	assert.Equal(t, "2025-08-01", full.Posted)
	assert.Equal(t, "mid_senior", full.ExperienceLevel)

	// Missing nested fields take sentinel defaults, missing IDs get synthesized.
	partial := page.Jobs[1]
	assert.Equal(t, "Platform Engineer", partial.Title)
	assert.Equal(t, CompanyNotListed, partial.Company)
	assert.Equal(t, LocationNotSpecified, partial.Location)
	assert.NotEmpty(t, partial.ID)

	empty := page.Jobs[2]
	assert.Empty(t, empty.Title)
	assert.Equal(t, CompanyNotListed, empty.Company)
	assert.NotEmpty(t, empty.ID)
}

func TestAPISearchJobsMalformedPayloadDegrades(t *testing.T) {
	client := newAPIFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"paging":{"total":0}}`))
	})

	page, err := client.SearchJobs(context.Background(), SearchQuery{Keywords: "engineer"})
	require.NoError(t, err)
	assert.Empty(t, page.Jobs)
	assert.Contains(t, page.URL, "/jobSearch?")
}

func TestAPISearchJobsLimit(t *testing.T) {
	elements := `{"elements":[` +
		`{"title":"a"},{"title":"b"},{"title":"c"},{"title":"d"}]}`

	var gotCount string
	client := newAPIFixture(t, func(w http.ResponseWriter, r *http.Request) {
		gotCount = r.URL.Query().Get("count")
		_, _ = w.Write([]byte(elements))
	})

	page, err := client.SearchJobs(context.Background(), SearchQuery{Keywords: "x", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, "2", gotCount)
	assert.Len(t, page.Jobs, 2)
	// Without a paging block the total falls back to what was kept.
	assert.Equal(t, 2, page.Total)

	// 150 clamps to the 100 ceiling.
	_, err = client.SearchJobs(context.Background(), SearchQuery{Keywords: "x", Limit: 150})
	require.NoError(t, err)
	assert.Equal(t, "100", gotCount)
}

func TestAPISearchJobsErrorIncludesURL(t *testing.T) {
	client := newAPIFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid token"}`))
	})

	_, err := client.SearchJobs(context.Background(), SearchQuery{Keywords: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "/jobSearch")
	assert.Contains(t, err.Error(), "invalid token")
}

func TestAPIFindCompany(t *testing.T) {
	const payload = `{"elements":[
		{"id":"1337","name":"Acme","universalName":"acme-corp","tagline":"We make anvils"}
	]}`

	client := newAPIFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Acme", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(payload))
	})

	company, err := client.FindCompany(context.Background(), "Acme")
	require.NoError(t, err)
	assert.True(t, company.Found)
	assert.Equal(t, "Acme", company.Name)
	assert.Equal(t, "acme-corp", company.ID)
	assert.Equal(t, "We make anvils", company.Tagline)
	assert.Contains(t, company.URL, "/company/acme-corp")
}

func TestAPIFindCompanyNoMatch(t *testing.T) {
	client := newAPIFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"elements":[]}`))
	})

	company, err := client.FindCompany(context.Background(), "Ghost Startup")
	require.NoError(t, err)
	assert.False(t, company.Found)
	assert.Equal(t, "Ghost Startup", company.Name)
	assert.NotEmpty(t, company.LookupURL)
}

func TestAPIOrganization(t *testing.T) {
	const payload = `{"id":"1337","name":"Acme","universalName":"acme-corp","tagline":"We make anvils"}`

	var gotPath string
	client := newAPIFixture(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(payload))
	})

	org, err := client.Organization(context.Background(), "acme-corp")
	require.NoError(t, err)
	assert.Equal(t, "/organizations/acme-corp", gotPath)
	assert.True(t, org.Found)
	assert.Equal(t, "Acme", org.Name)
	assert.Equal(t, "acme-corp", org.ID)
	assert.Equal(t, "We make anvils", org.Tagline)
}

func TestAPIOrganizationError(t *testing.T) {
	client := newAPIFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	org, err := client.Organization(context.Background(), "ghost")
	require.Error(t, err)
	assert.False(t, org.Found)
	assert.Equal(t, "ghost", org.ID)
}

func TestAPISearchPeople(t *testing.T) {
	const payload = `{"elements":[
		{"firstName":"Ada","lastName":"Lovelace","headline":"Engineer","publicIdentifier":"ada"},
		{"headline":"Mystery profile"}
	]}`

	client := newAPIFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(payload))
	})

	people, err := client.SearchPeople(context.Background(), "ada", 10)
	require.NoError(t, err)
	require.Len(t, people, 2)

	assert.Equal(t, "Ada Lovelace", people[0].Name)
	assert.Equal(t, "https://www.linkedin.com/in/ada", people[0].ProfileURL)

	assert.Equal(t, FieldNotAvailable, people[1].Name)
	assert.Empty(t, people[1].ProfileURL)
}

func TestAPIJobDetails(t *testing.T) {
	const payload = `{"jobPostingId":"3812345678","title":"Staff Engineer",
		"companyDetails":{"company":{"name":"Acme"}},
		"formattedLocation":"Berlin","description":{"text":"Do hard things."}}`

	var gotPath string
	client := newAPIFixture(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(payload))
	})

	details, err := client.JobDetails(context.Background(), "https://www.linkedin.com/jobs/view/3812345678")
	require.NoError(t, err)
	assert.Equal(t, "/jobs/3812345678", gotPath)
	assert.Equal(t, "Staff Engineer", details.Title)
	assert.Equal(t, "Acme", details.Company)
	assert.Equal(t, "Berlin", details.Location)
	assert.Equal(t, "Do hard things.", details.Description)
}
