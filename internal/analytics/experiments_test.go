package analytics

import (
	"reflect"
	"testing"
)

func TestListExpVariantStrings(t *testing.T) {
	cookies := map[string]string{
		"_exp_cover_letter_cta": "2",
		"_exp_onboarding":       "",
		"session_id":            "abc123",
		"theme":                 "dark",
	}

	got := ListExpVariantStrings(cookies)

	want := []string{"_exp_cover_letter_cta_2", "_exp_onboarding"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("variant strings mismatch: got %v want %v", got, want)
	}
}

func TestListExpVariantStringsNoExperimentCookies(t *testing.T) {
	got := ListExpVariantStrings(map[string]string{"session_id": "abc"})
	if len(got) != 0 {
		t.Fatalf("expected no variants, got %v", got)
	}
}

func TestListExpVariantStringsNilCookies(t *testing.T) {
	if got := ListExpVariantStrings(nil); len(got) != 0 {
		t.Fatalf("expected no variants, got %v", got)
	}
}
