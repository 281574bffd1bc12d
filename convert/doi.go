package convert

import (
	"regexp"
	"strings"
)

var doiRe = regexp.MustCompile(`^10\.\d{4,}/\S+$`)

// cleanDOI strips common prefixes (doi:, resolver URLs) and rejects values
// that cannot be a DOI, returning the empty string for those.
func cleanDOI(raw string) string {
	if raw == "" {
		return ""
	}
	raw = strings.TrimSpace(strings.ToLower(raw))
	if strings.Contains(raw, "–") {
		// En dash in a DOI is always a mangled page range, treat as invalid.
		return ""
	}
	if strings.Count(raw, " ") != 0 {
		return ""
	}
	for _, prefix := range []string{"doi:", "http://", "https://"} {
		raw = strings.TrimPrefix(raw, prefix)
	}
	for _, prefix := range []string{"doi.org/", "dx.doi.org/"} {
		raw = strings.TrimPrefix(raw, prefix)
	}
	if len(raw) > 9 && raw[7:9] == "//" && strings.Contains(raw, "10.1037//") {
		// APA DOIs historically use a double slash, except when they do not.
		raw = raw[:8] + raw[9:]
	}
	if !strings.HasPrefix(raw, "10.") {
		return ""
	}
	if !doiRe.MatchString(raw) {
		return ""
	}
	if !isASCII(raw) {
		return ""
	}
	return raw
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return false
		}
	}
	return true
}

// cleanORCID strips resolver prefixes from an ORCID value.
func cleanORCID(orcid string) string {
	orcid = strings.Replace(orcid, "https://orcid.org/", "", 1)
	orcid = strings.Replace(orcid, "http://orcid.org/", "", 1)
	return strings.TrimSpace(orcid)
}
