package clientprint

import (
	"strings"
	"testing"
)

func TestFingerprint_Stable(t *testing.T) {
	first := Fingerprint("203.0.113.10", "Pocket Casts/7.0")
	second := Fingerprint("203.0.113.10", "Pocket Casts/7.0")

	if first == "" {
		t.Fatal("Fingerprint returned empty for present inputs")
	}
	if first != second {
		t.Fatalf("Fingerprint not stable: %q vs %q", first, second)
	}
}

func TestFingerprint_ComponentsMatter(t *testing.T) {
	base := Fingerprint("203.0.113.10", "Pocket Casts/7.0")

	if got := Fingerprint("203.0.113.11", "Pocket Casts/7.0"); got == base {
		t.Errorf("changing the IP did not change the fingerprint: %q", got)
	}
	if got := Fingerprint("203.0.113.10", "Overcast/3.0"); got == base {
		t.Errorf("changing the user agent did not change the fingerprint: %q", got)
	}
}

func TestFingerprint_Absence(t *testing.T) {
	if got := Fingerprint("", ""); got != "" {
		t.Fatalf("Fingerprint with no inputs = %q, want empty", got)
	}
	if got := Fingerprint("", "   "); got != "" {
		t.Fatalf("Fingerprint with whitespace-only user agent = %q, want empty", got)
	}
	if got := Fingerprint("203.0.113.10", ""); got == "" {
		t.Fatal("IP alone should still fingerprint")
	}
	if got := Fingerprint("", "Pocket Casts/7.0"); got == "" {
		t.Fatal("user agent alone should still fingerprint")
	}
}

func TestFingerprint_TrimsUserAgent(t *testing.T) {
	trimmed := Fingerprint("203.0.113.10", "Pocket Casts/7.0")
	padded := Fingerprint("203.0.113.10", "  Pocket Casts/7.0\t")

	if trimmed != padded {
		t.Fatalf("user agent trimming mismatch: %q vs %q", trimmed, padded)
	}
}

func TestFingerprint_Format(t *testing.T) {
	got := Fingerprint("203.0.113.10", "Pocket Casts/7.0")

	if !strings.HasPrefix(got, "fp_") {
		t.Fatalf("Fingerprint %q lacks fp_ prefix", got)
	}
	if len(got) != len("fp_")+8 {
		t.Fatalf("Fingerprint %q has wrong length %d", got, len(got))
	}
	for _, ch := range got[3:] {
		if (ch < '0' || ch > '9') && (ch < 'a' || ch > 'f') {
			t.Fatalf("Fingerprint %q contains non-hex digit %q", got, ch)
		}
	}
}
