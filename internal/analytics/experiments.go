package analytics

import (
	"sort"
	"strings"
)

// Experiment cookies are named "_exp_<experiment>" and carry the assigned
// variant as the value, e.g. _exp_cover_letter_cta=2.
const expCookiePrefix = "_exp_"

// ListExpVariantStrings extracts the active experiment-variant labels from
// request cookies. A variant string is the cookie name plus its value
// ("_exp_cta_2"); cookies with an empty value contribute the bare name.
// Output is sorted for stable analytics rows.
func ListExpVariantStrings(cookies map[string]string) []string {
	var out []string
	for name, value := range cookies {
		if !strings.HasPrefix(name, expCookiePrefix) {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			out = append(out, name)
			continue
		}
		out = append(out, name+"_"+value)
	}
	sort.Strings(out)
	return out
}
