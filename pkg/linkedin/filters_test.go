package linkedin

import "testing"

func TestTimeFilter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"past 24h", "past_24h", "r86400"},
		{"past week", "past_week", "r604800"},
		{"past month", "past_month", "r2592000"},
		{"any time maps to no filter", "any_time", ""},
		{"unrecognized falls back to past month", "yesterday", "r2592000"},
		{"empty falls back to past month", "", "r2592000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeFilter(tt.input); got != tt.want {
				t.Errorf("TimeFilter(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExperienceFilter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"internship", "internship", "1"},
		{"entry level", "entry_level", "2"},
		{"associate", "associate", "3"},
		{"mid senior", "mid_senior", "4"},
		{"director", "director", "5"},
		{"executive", "executive", "6"},
		{"unrecognized means no filter", "wizard", ""},
		{"empty means no filter", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExperienceFilter(tt.input); got != tt.want {
				t.Errorf("ExperienceFilter(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAPIExperienceFilterMergedEntryTier(t *testing.T) {
	if got := APIExperienceFilter("entry_level"); got != "1,2" {
		t.Errorf("APIExperienceFilter(entry_level) = %q, want %q", got, "1,2")
	}
	if got := APIExperienceFilter("director"); got != "5" {
		t.Errorf("APIExperienceFilter(director) = %q, want %q", got, "5")
	}
	if got := APIExperienceFilter("nope"); got != "" {
		t.Errorf("APIExperienceFilter(nope) = %q, want empty", got)
	}
}

func TestJobTypeFilter(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"full_time", "F"},
		{"part_time", "P"},
		{"contract", "C"},
		{"temporary", "T"},
		{"internship", "I"},
		{"volunteer", "V"},
		{"freelance", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := JobTypeFilter(tt.input); got != tt.want {
			t.Errorf("JobTypeFilter(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		def   int
		want  int
	}{
		{"zero takes default", 0, 25, 25},
		{"negative takes default", -3, 10, 10},
		{"within range passes through", 40, 25, 40},
		{"above ceiling clamps to 100", 150, 25, 100},
		{"exactly 100 is allowed", 100, 25, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampLimit(tt.limit, tt.def); got != tt.want {
				t.Errorf("ClampLimit(%d, %d) = %d, want %d", tt.limit, tt.def, got, tt.want)
			}
		})
	}
}
