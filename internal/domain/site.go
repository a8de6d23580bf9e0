package domain

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"
)

// SiteSource records how a site entered the blocklist
type SiteSource string

const (
	SiteSourceDefault SiteSource = "default"
	SiteSourceImport  SiteSource = "import"
	SiteSourceUser    SiteSource = "user"
)

// BlockedSite is a domain on the user's persistent blocklist
type BlockedSite struct {
	CreatedAt time.Time
	Domain    string
	Source    SiteSource
}

// DefaultBlockedSites is the distraction list seeded on first use
var DefaultBlockedSites = []string{
	"facebook.com",
	"instagram.com",
	"netflix.com",
	"reddit.com",
	"tiktok.com",
	"twitch.tv",
	"twitter.com",
	"x.com",
	"youtube.com",
}

const maxDomainLength = 253

// NormalizeDomain converts user input into a bare lowercase host name.
// - Scheme, path, query, and port are stripped ("https://x.com/a" -> "x.com")
// - Surrounding whitespace and a trailing dot are removed
func NormalizeDomain(input string) string {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return ""
	}

	if strings.Contains(s, "://") {
		if u, err := url.Parse(s); err == nil && u.Host != "" {
			s = u.Host
		}
	}

	// Cut path, query, and fragment for inputs without scheme
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	// Cut port
	if i := strings.LastIndex(s, ":"); i >= 0 {
		s = s[:i]
	}

	return strings.TrimSuffix(s, ".")
}

// ValidateDomain checks that a normalized domain is a syntactically valid
// host name with at least two labels
func ValidateDomain(domain string) error {
	if domain == "" {
		return fmt.Errorf("%w: empty", ErrInvalidDomain)
	}
	if len(domain) > maxDomainLength {
		return fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidDomain, domain, maxDomainLength)
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return fmt.Errorf("%w: %q needs a top-level domain", ErrInvalidDomain, domain)
	}

	for _, label := range labels {
		if len(label) == 0 || len(label) > 63 {
			return fmt.Errorf("%w: %q has an empty or oversized label", ErrInvalidDomain, domain)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("%w: %q has a label starting or ending with '-'", ErrInvalidDomain, domain)
		}
		for _, r := range label {
			isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
			if !isAlnum && r != '-' {
				return fmt.Errorf("%w: %q contains %q", ErrInvalidDomain, domain, r)
			}
		}
	}

	return nil
}

// NormalizeDomains normalizes, validates, and de-duplicates a domain list.
// The result is sorted so block-list writes are deterministic.
func NormalizeDomains(inputs []string) ([]string, error) {
	seen := make(map[string]bool, len(inputs))
	result := make([]string, 0, len(inputs))

	for _, in := range inputs {
		d := NormalizeDomain(in)
		if err := ValidateDomain(d); err != nil {
			return nil, err
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		result = append(result, d)
	}

	sort.Strings(result)
	return result, nil
}

// WithWWWVariant returns the domain and its www. counterpart
func WithWWWVariant(domain string) []string {
	if bare, ok := strings.CutPrefix(domain, "www."); ok {
		return []string{bare, domain}
	}
	return []string{domain, "www." + domain}
}

// ExpandWWWVariants adds the www. variant of every domain, sorted and unique
func ExpandWWWVariants(domains []string) []string {
	seen := make(map[string]bool, len(domains)*2)
	result := make([]string, 0, len(domains)*2)
	for _, d := range domains {
		for _, v := range WithWWWVariant(d) {
			if !seen[v] {
				seen[v] = true
				result = append(result, v)
			}
		}
	}
	sort.Strings(result)
	return result
}

// BareDomains strips www. prefixes and de-duplicates, for display
func BareDomains(domains []string) []string {
	seen := make(map[string]bool, len(domains))
	result := make([]string, 0, len(domains))
	for _, d := range domains {
		bare := strings.TrimPrefix(d, "www.")
		if !seen[bare] {
			seen[bare] = true
			result = append(result, bare)
		}
	}
	sort.Strings(result)
	return result
}
