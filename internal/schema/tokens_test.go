package schema

import "testing"

func TestStatusMapping_FixedSet(t *testing.T) {
	pairs := map[string]string{
		"BOOKED":           "Booked",
		"IN_TRANSIT":       "In Transit",
		"OUT_FOR_DELIVERY": "Out for Delivery",
		"DELIVERED":        "Delivered",
		"CANCELLED":        "Cancelled",
		"FAILED_ATTEMPT":   "Failed Attempt",
	}
	for token, title := range pairs {
		if got := StatusTitle(token); got != title {
			t.Errorf("StatusTitle(%s) = %q, want %q", token, got, title)
		}
		if got := StatusToken(title); got != token {
			t.Errorf("StatusToken(%s) = %q, want %q", title, got, token)
		}
	}
}

func TestTierMapping_FixedSet(t *testing.T) {
	pairs := map[string]string{
		"STANDARD": "Standard",
		"EXPRESS":  "Express",
		"SAME_DAY": "Same Day",
	}
	for token, title := range pairs {
		if got := TierTitle(token); got != title {
			t.Errorf("TierTitle(%s) = %q, want %q", token, got, title)
		}
		if got := TierToken(title); got != token {
			t.Errorf("TierToken(%s) = %q, want %q", title, got, token)
		}
	}
}

func TestTitleFromToken_GeneralRule(t *testing.T) {
	if got := TitleFromToken("RETURN_TO_SENDER"); got != "Return To Sender" {
		t.Errorf("got %q", got)
	}
	if got := TokenFromTitle("Return To Sender"); got != "RETURN_TO_SENDER" {
		t.Errorf("got %q", got)
	}
}

func TestStatusMapping_UnknownTokenFallsBack(t *testing.T) {
	// Tokens outside the fixed table go through the word-wise rule.
	if got := StatusTitle("HELD_AT_HUB"); got != "Held At Hub" {
		t.Errorf("got %q", got)
	}
	if got := StatusToken("Held At Hub"); got != "HELD_AT_HUB" {
		t.Errorf("got %q", got)
	}
}
