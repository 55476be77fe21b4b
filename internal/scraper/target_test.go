package scraper

import "testing"

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		username    string
		wantCompany bool
	}{
		{"bare username", "satyanadella", "satyanadella", false},
		{"personal URL", "https://www.linkedin.com/in/satyanadella/", "satyanadella", false},
		{"personal URL no scheme", "linkedin.com/in/satyanadella", "satyanadella", false},
		{"personal URL with trailing path", "https://www.linkedin.com/in/satyanadella/recent-activity/all/", "satyanadella", false},
		{"personal URL with query", "https://www.linkedin.com/in/satyanadella/?originalSubdomain=us", "satyanadella", false},
		{"company URL", "https://www.linkedin.com/company/microsoft/", "microsoft", true},
		{"company posts URL", "https://www.linkedin.com/company/microsoft/posts/", "microsoft", true},
		{"http scheme", "http://linkedin.com/company/github", "github", true},
		{"slug with hyphen", "https://www.linkedin.com/in/jane-doe-12345", "jane-doe-12345", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTarget(tt.input)
			if got.Username != tt.username {
				t.Errorf("ParseTarget(%q).Username = %q, want %q", tt.input, got.Username, tt.username)
			}
			if got.IsCompany != tt.wantCompany {
				t.Errorf("ParseTarget(%q).IsCompany = %v, want %v", tt.input, got.IsCompany, tt.wantCompany)
			}
		})
	}
}

func TestTargetURLs(t *testing.T) {
	personal := Target{Username: "jane-doe"}
	if got := personal.ProfileURL(); got != "https://www.linkedin.com/in/jane-doe/" {
		t.Errorf("ProfileURL() = %q", got)
	}
	if got := personal.PostsURL(); got != personal.ProfileURL() {
		t.Errorf("personal PostsURL() = %q, want profile URL", got)
	}
	if got := personal.ActivityURL(); got != "https://www.linkedin.com/in/jane-doe/recent-activity/all/" {
		t.Errorf("ActivityURL() = %q", got)
	}

	company := Target{Username: "acme", IsCompany: true}
	if got := company.PostsURL(); got != "https://www.linkedin.com/company/acme/posts/" {
		t.Errorf("company PostsURL() = %q", got)
	}
}
