package anonymize

import "testing"

func TestHash(t *testing.T) {
	// Known SHA-256 vector
	const want = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"
	if got := Hash("test"); got != want {
		t.Errorf("Hash(\"test\") = %s, want %s", got, want)
	}
}

func TestHashDeterministic(t *testing.T) {
	if Hash("fingerprint") != Hash("fingerprint") {
		t.Error("Hash must be stable across calls")
	}
	if Hash("a") == Hash("b") {
		t.Error("Distinct inputs must not collide")
	}
}

func TestHashOrNil(t *testing.T) {
	if got := HashOrNil(""); got != nil {
		t.Errorf("HashOrNil(\"\") = %v, want nil", got)
	}
	got := HashOrNil("Mozilla/5.0")
	if got == nil || *got != Hash("Mozilla/5.0") {
		t.Errorf("HashOrNil mismatch: %v", got)
	}
}
