package asn1flat

import (
	"testing"
	"time"
)

func TestUTCTimeDecode(t *testing.T) {
	var u UTCTime
	if err := DecodeDER([]byte("\x17\x0d991231235959Z"), &u); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := time.Time(u)
	if got.Year() != 1999 || got.Month() != time.December || got.Day() != 31 {
		t.Fatalf("got %v", got)
	}
}

func TestUTCTimeYearWindow(t *testing.T) {
	var u UTCTime
	if err := DecodeDER([]byte("\x17\x0d000101000000Z"), &u); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Time(u).Year() != 2000 {
		t.Fatalf("got year %d, want 2000", time.Time(u).Year())
	}
}

func TestUTCTimeYearWindowMidRangeBoundary(t *testing.T) {
	// YY=60 falls in [50,68], the range where time.Parse's own default
	// pivot (0-68 -> 20xx) disagrees with spec.md's 50/50 split (60 -> 1960).
	var u UTCTime
	if err := DecodeDER([]byte("\x17\x0d600101000000Z"), &u); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Time(u).Year() != 1960 {
		t.Fatalf("got year %d, want 1960", time.Time(u).Year())
	}
}

func TestUTCTimeRejectsNonZTerminated(t *testing.T) {
	var u UTCTime
	if err := DecodeDER([]byte("\x17\x0d991231235959"), &u); err == nil {
		t.Fatal("expected non-Z-terminated UTCTime to be rejected")
	}
}

func TestGeneralizedTimeDecode(t *testing.T) {
	var g GeneralizedTime
	if err := DecodeDER([]byte("\x18\x0f20250101120000Z"), &g); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := time.Time(g)
	if got.Year() != 2025 || got.Month() != time.January {
		t.Fatalf("got %v", got)
	}
}

func TestGeneralizedTimeRoundTrip(t *testing.T) {
	orig := GeneralizedTime(time.Date(2030, 6, 15, 8, 30, 0, 0, time.UTC))
	enc, err := EncodeDER(&orig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out GeneralizedTime
	if err := DecodeDER(enc, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !time.Time(out).Equal(time.Time(orig)) {
		t.Fatalf("got %v, want %v", time.Time(out), time.Time(orig))
	}
}
