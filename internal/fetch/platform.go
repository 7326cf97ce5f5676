package fetch

import (
	"net/url"
	"strings"
)

// Platform is a known job board.
type Platform string

// Supported job boards.
const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformLinkedIn   Platform = "linkedin"
	PlatformAshby      Platform = "ashby"
	PlatformUnknown    Platform = "unknown"
)

var platformHosts = []struct {
	suffix   string
	platform Platform
}{
	{"greenhouse.io", PlatformGreenhouse},
	{"lever.co", PlatformLever},
	{"myworkdayjobs.com", PlatformWorkday},
	{"workday.com", PlatformWorkday},
	{"linkedin.com", PlatformLinkedIn},
	{"ashbyhq.com", PlatformAshby},
}

// DetectPlatform identifies the job board from the URL host.
func DetectPlatform(rawURL string) Platform {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return PlatformUnknown
	}
	host := strings.ToLower(parsed.Hostname())
	for _, h := range platformHosts {
		if host == h.suffix || strings.HasSuffix(host, "."+h.suffix) {
			return h.platform
		}
	}
	return PlatformUnknown
}

// genericContentSelectors match the description on most career pages.
var genericContentSelectors = []string{
	".job-description",
	"#job-description",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	"#content",
	".content",
}

// PlatformContentSelectors returns the description selectors for platform, most specific first.
func PlatformContentSelectors(platform Platform) []string {
	var specific []string
	switch platform {
	case PlatformGreenhouse:
		specific = []string{".job__description", "#content", ".job-post-container"}
	case PlatformLever:
		specific = []string{".posting-page", ".posting-description", ".section-wrapper.page-full-width"}
	case PlatformWorkday:
		specific = []string{"[data-automation-id='jobPostingDescription']", "[data-automation-id='jobDescription']"}
	case PlatformLinkedIn:
		specific = []string{".description__text", ".show-more-less-html__markup", ".jobs-description"}
	case PlatformAshby:
		specific = []string{"._descriptionText_oj0x8_198", "[class*='descriptionText']"}
	}
	return append(specific, genericContentSelectors...)
}

// PlatformNoiseSelectors returns elements to drop before reading the description:
// application forms, EEO disclosures and share widgets.
func PlatformNoiseSelectors(platform Platform) []string {
	noise := []string{
		"form",
		".application-form",
		"#application-form",
		".eeo-statement",
		".voluntary-disclosure",
		".self-identification",
		".social-share",
		".share-buttons",
		".cookie-consent",
	}
	switch platform {
	case PlatformGreenhouse:
		noise = append(noise, ".application--wrapper", "#usa_self_id_section")
	case PlatformLever:
		noise = append(noise, ".posting-apply", ".apply-section")
	case PlatformWorkday:
		noise = append(noise, "[data-automation-id='applyButton']")
	case PlatformLinkedIn:
		noise = append(noise, ".top-card-layout__cta-container", ".similar-jobs")
	}
	return noise
}
