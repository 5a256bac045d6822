package otp

import (
	"strconv"
	"testing"
)

func TestGeneratePasscode_InRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code, err := GeneratePasscode()
		if err != nil {
			t.Fatalf("GeneratePasscode: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("passcode %q length = %d, want 6", code, len(code))
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("passcode %q is not numeric", code)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("passcode %d out of range [100000, 999999]", n)
		}
	}
}

func TestGeneratePasscode_Randomness(t *testing.T) {
	seen := make(map[string]int)
	for i := 0; i < 200; i++ {
		code, err := GeneratePasscode()
		if err != nil {
			t.Fatalf("GeneratePasscode: %v", err)
		}
		seen[code]++
	}
	// With 900k possible values, 200 draws collapsing to a handful of codes
	// would indicate broken randomness.
	if len(seen) < 190 {
		t.Errorf("only %d distinct passcodes in 200 draws", len(seen))
	}
}

func TestPasscodeEqual(t *testing.T) {
	if !PasscodeEqual("123456", "123456") {
		t.Error("equal passcodes should match")
	}
	if PasscodeEqual("123456", "123457") {
		t.Error("different passcodes should not match")
	}
	if PasscodeEqual("123456", "12345") {
		t.Error("different lengths should not match")
	}
	if PasscodeEqual("", "123456") {
		t.Error("empty passcode should not match")
	}
}
