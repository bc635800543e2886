package schema

import "strings"

// The fixed enumeration sets map through explicit tables so that the
// round trip is lossless even where word-wise casing disagrees with the
// display form ("Out for Delivery", not "Out For Delivery"). Tokens
// outside the tables fall back to the general word-wise rule.

var statusTitle = map[string]string{
	"BOOKED":           "Booked",
	"IN_TRANSIT":       "In Transit",
	"OUT_FOR_DELIVERY": "Out for Delivery",
	"DELIVERED":        "Delivered",
	"CANCELLED":        "Cancelled",
	"FAILED_ATTEMPT":   "Failed Attempt",
}

var tierTitle = map[string]string{
	"STANDARD": "Standard",
	"EXPRESS":  "Express",
	"SAME_DAY": "Same Day",
}

var statusToken = invert(statusTitle)
var tierToken = invert(tierTitle)

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// StatusTitle maps a persisted status token to its display form.
func StatusTitle(token string) string {
	if t, ok := statusTitle[token]; ok {
		return t
	}
	return TitleFromToken(token)
}

// StatusToken maps a display status back to its persisted token.
func StatusToken(title string) string {
	if t, ok := statusToken[title]; ok {
		return t
	}
	return TokenFromTitle(title)
}

// TierTitle maps a persisted service tier token to its display form.
func TierTitle(token string) string {
	if t, ok := tierTitle[token]; ok {
		return t
	}
	return TitleFromToken(token)
}

// TierToken maps a display service tier back to its persisted token.
func TierToken(title string) string {
	if t, ok := tierToken[title]; ok {
		return t
	}
	return TokenFromTitle(title)
}

// TitleFromToken converts an UPPER_SNAKE token to title case: underscores
// become spaces, the token is lower-cased, then each word's first letter
// is capitalized.
func TitleFromToken(token string) string {
	words := strings.Split(strings.ToLower(token), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// TokenFromTitle is the exact reverse of TitleFromToken.
func TokenFromTitle(title string) string {
	return strings.ToUpper(strings.ReplaceAll(title, " ", "_"))
}
