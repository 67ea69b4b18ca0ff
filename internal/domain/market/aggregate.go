package market

import (
	"sort"

	"github.com/honeycarbs/linkscout/internal/domain"
)

// TopN caps every ranked section of a market summary.
const TopN = 10

// counter tallies string keys while remembering first-encounter order, so
// ranking ties stay stable.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if key == "" {
		key = domain.UnknownValue
	}
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// ranked returns the topN keys sorted by count descending. Ties keep
// encounter order.
func (c *counter) ranked(topN int) []domain.RankedCount {
	out := make([]domain.RankedCount, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, domain.RankedCount{Key: key, Count: c.counts[key]})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// Summarize aggregates a normalized record set into grouped counts. It works
// directly from structured records for every backend; the rendered report is
// a pure terminal step and is never re-parsed.
func Summarize(role, location string, jobs []domain.Job) domain.MarketSummary {
	summary := domain.MarketSummary{
		Role:     role,
		Location: location,
		Total:    len(jobs),
	}

	if len(jobs) == 0 {
		return summary
	}

	companies := newCounter()
	locations := newCounter()
	experience := newCounter()
	haveExperience := false

	for _, j := range jobs {
		companies.add(j.Company)
		locations.add(j.Location)
		if j.ExperienceLevel != "" {
			haveExperience = true
		}
		experience.add(j.ExperienceLevel)
	}

	summary.Companies = companies.ranked(TopN)
	summary.Locations = locations.ranked(TopN)

	// The experience breakdown only exists when the backend supplies the
	// field at all; it carries percentage-of-total shares.
	if haveExperience {
		summary.Experience = experience.ranked(TopN)
		for i := range summary.Experience {
			summary.Experience[i].Share = 100 * float64(summary.Experience[i].Count) / float64(summary.Total)
		}
	}

	return summary
}
