package datename

import (
	"errors"
	"testing"
	"time"
)

func TestExtract(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		wantOK   bool
		want     string
		wantRule string
	}{
		// General rule
		{
			name: "dash separated", filename: "i-am-file-taken-at-2022-05-04-123000-find-me.jpg",
			wantOK: true, want: "2022-05-04-123000", wantRule: RuleGeneral,
		},
		{
			name: "underscore separated", filename: "i_am_file_taken_at_2022_05_04_123000_find_me.jpg",
			wantOK: true, want: "2022_05_04_123000", wantRule: RuleGeneral,
		},
		{
			name: "compact", filename: "i_am_file_taken_at_20220504123000_find_me.jpg",
			wantOK: true, want: "20220504123000", wantRule: RuleGeneral,
		},
		{
			name: "burst with trailing millis", filename: "00100lrPORTRAIT_00100_BURST20210506122850023_COVER.jpg",
			wantOK: true, want: "20210506122850", wantRule: RuleGeneral,
		},
		{
			name: "camera prefix", filename: "IMG_2023-04-15-153000.jpg",
			wantOK: true, want: "2023-04-15-153000", wantRule: RuleGeneral,
		},
		{
			name: "separated time", filename: "VID_20230415_15-30-00.mp4",
			wantOK: true, want: "20230415_15-30-00", wantRule: RuleGeneral,
		},
		{
			name: "android screenshot", filename: "Screenshot_20190901-083015.jpg",
			wantOK: true, want: "20190901-083015", wantRule: RuleGeneral,
		},
		{
			name: "pixel style", filename: "PXL_20230101_101112345.jpg",
			wantOK: true, want: "20230101_101112", wantRule: RuleGeneral,
		},

		// Messaging-app rule
		{
			name: "whatsapp image", filename: "IMG-20220504-WA0049",
			wantOK: true, want: "20220504", wantRule: RuleWhatsApp,
		},
		{
			name: "whatsapp bare", filename: "20230415-WA0001.jpg",
			wantOK: true, want: "20230415", wantRule: RuleWhatsApp,
		},

		// No match
		{name: "three digit year", filename: "i-am-file-taken-at-202-05-04-123000-find-me.jpg"},
		{name: "single digit month", filename: "i-am-file-taken-at-2022-5-04-123000-find-me.jpg"},
		{name: "single digit day", filename: "i-am-file-taken-at-2022-05-4-123000-find-me.jpg"},
		{name: "colon separators", filename: "i-am-file-taken-at-2022:05:04:123000-find-me.jpg"},
		{name: "whatsapp missing A", filename: "IMG-20220504-W0049"},
		{name: "whatsapp short date", filename: "IMG123-WA0049"},
		{name: "whatsapp reversed", filename: "WA0049-20220504"},
		{name: "no date", filename: "vacation.jpg"},
		{name: "year before 2000", filename: "1999-01-01.jpg"},
		{name: "year before 2000 with time", filename: "IMG_1999-12-31-235959.jpg"},
		{name: "date without time", filename: "2023-13-40.jpg"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Extract(tc.filename)
			if ok != tc.wantOK {
				t.Fatalf("Extract(%q) ok = %v, want %v (token %q)", tc.filename, ok, tc.wantOK, got.Value)
			}
			if !ok {
				return
			}
			if got.Value != tc.want {
				t.Errorf("Extract(%q) = %q, want %q", tc.filename, got.Value, tc.want)
			}
			if got.Rule != tc.wantRule {
				t.Errorf("Extract(%q) rule = %q, want %q", tc.filename, got.Rule, tc.wantRule)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"2022_05_04_123000", "2022-05-04-123000"},
		{"20230415_15-30-00", "20230415-15-30-00"},
		{"2023-04-15-153000", "2023-04-15-153000"},
		{"20230415", "20230415"},
	}
	for _, tc := range cases {
		got := Normalize(tc.in)
		if got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
		if again := Normalize(got); again != got {
			t.Errorf("Normalize not idempotent: %q -> %q", got, again)
		}
	}
}

func TestParseIn(t *testing.T) {
	cases := []struct {
		token string
		want  time.Time
	}{
		{"2023-04-15-153000", time.Date(2023, 4, 15, 15, 30, 0, 0, time.UTC)},
		{"2022_05_04_123000", time.Date(2022, 5, 4, 12, 30, 0, 0, time.UTC)},
		{"20220504123000", time.Date(2022, 5, 4, 12, 30, 0, 0, time.UTC)},
		{"20230415_15-30-00", time.Date(2023, 4, 15, 15, 30, 0, 0, time.UTC)},
		{"20230415", time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-02-29-235959", time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			got, err := ParseIn(tc.token, time.UTC)
			if err != nil {
				t.Fatalf("ParseIn(%q): %v", tc.token, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParseIn(%q) = %v, want %v", tc.token, got, tc.want)
			}
		})
	}
}

func TestParseIn_Invalid(t *testing.T) {
	tokens := []string{
		"2023-13-40-120000", // month 13
		"2023-02-30-120000", // no Feb 30
		"2023-04-31-120000", // April has 30 days
		"2023-04-15-256000", // hour 25
		"2023-04",           // too short
		"2023-04-15-12a000", // not digits
	}
	for _, tok := range tokens {
		t.Run(tok, func(t *testing.T) {
			_, err := ParseIn(tok, time.UTC)
			if err == nil {
				t.Fatalf("ParseIn(%q) succeeded, want error", tok)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error %T is not *ParseError", err)
			}
			if pe.Token != tok {
				t.Errorf("ParseError.Token = %q, want %q", pe.Token, tok)
			}
		})
	}
}

func TestExtractThenParse_Scenarios(t *testing.T) {
	tok, ok := Extract("IMG_2023-04-15-153000.jpg")
	if !ok {
		t.Fatal("no token")
	}
	got, err := ParseIn(tok.Value, time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2023, 4, 15, 15, 30, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	tok, ok = Extract("2023-13-40-120000.jpg")
	if !ok || tok.Value != "2023-13-40-120000" {
		t.Fatalf("Extract = %q, %v", tok.Value, ok)
	}
	if _, err := ParseIn(tok.Value, time.UTC); err == nil {
		t.Error("month 13 should not parse")
	}
}

func TestParse_UsesLocalTime(t *testing.T) {
	got, err := Parse("20230415")
	if err != nil {
		t.Fatal(err)
	}
	if got.Location() != time.Local {
		t.Errorf("location = %v, want Local", got.Location())
	}
}
