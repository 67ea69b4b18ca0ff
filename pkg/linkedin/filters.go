package linkedin

// Filter parameter mapping for LinkedIn job search URLs. Every lookup has a
// defined fallback; an empty result means "omit this filter".

// workplaceRemote is the f_WT code for remote-only postings.
const workplaceRemote = "2"

// timeFilters maps posting recency to seconds-based f_TPR tokens.
var timeFilters = map[string]string{
	"past_24h":   "r86400",
	"past_week":  "r604800",
	"past_month": "r2592000",
	"any_time":   "",
}

// experienceFilters maps experience levels to f_E codes.
var experienceFilters = map[string]string{
	"internship":  "1",
	"entry_level": "2",
	"associate":   "3",
	"mid_senior":  "4",
	"director":    "5",
	"executive":   "6",
}

// apiExperienceFilters is the REST API vocabulary. The API merges the entry
// tier, so entry_level selects both internship and entry codes.
var apiExperienceFilters = map[string]string{
	"internship":  "1",
	"entry_level": "1,2",
	"associate":   "3",
	"mid_senior":  "4",
	"director":    "5",
	"executive":   "6",
}

// jobTypeFilters maps employment types to f_JT codes.
var jobTypeFilters = map[string]string{
	"full_time":  "F",
	"part_time":  "P",
	"contract":   "C",
	"temporary":  "T",
	"internship": "I",
	"volunteer":  "V",
}

// TimeFilter returns the f_TPR token for a recency value. Unrecognized
// input falls back to the past-month token.
func TimeFilter(postedTime string) string {
	if v, ok := timeFilters[postedTime]; ok {
		return v
	}
	return timeFilters["past_month"]
}

// ExperienceFilter returns the f_E code for an experience level, or ""
// (no filter) for unrecognized input.
func ExperienceFilter(level string) string {
	return experienceFilters[level]
}

// APIExperienceFilter is ExperienceFilter in the REST API vocabulary.
func APIExperienceFilter(level string) string {
	return apiExperienceFilters[level]
}

// JobTypeFilter returns the f_JT code for an employment type, or "" for
// unrecognized input.
func JobTypeFilter(jobType string) string {
	return jobTypeFilters[jobType]
}
