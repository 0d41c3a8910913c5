package datename

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ErrNoDate is reported for names that no rule recognizes. It is an
// expected outcome: callers skip the file.
var ErrNoDate = errors.New("could not parse date")

// defaultTime fills in tokens that carry only a date.
const defaultTime = "00:00:00"

// Token is the raw date substring captured from a file name, before
// normalization, together with the rule that captured it.
type Token struct {
	Value string
	Rule  string
}

// ParseError reports a token that was recognized but is not a valid
// calendar date/time (e.g. month 13).
type ParseError struct {
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse date %q: %v", e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Extract applies [Rules] in order to filename and returns the first match.
// ok is false when no rule matches.
func Extract(filename string) (tok Token, ok bool) {
	for _, rule := range Rules {
		m := rule.Pattern.FindStringSubmatch(filename)
		if m == nil {
			continue
		}
		return Token{Value: m[rule.Group], Rule: rule.Name}, true
	}
	return Token{}, false
}

// Normalize replaces every '_' with '-'. It is idempotent.
func Normalize(token string) string {
	return strings.ReplaceAll(token, "_", "-")
}

// Parse normalizes token and parses it as a local date/time.
func Parse(token string) (time.Time, error) {
	return ParseIn(token, time.Local)
}

// ParseIn is [Parse] with an explicit location.
func ParseIn(token string, loc *time.Location) (time.Time, error) {
	canonical, err := canonicalize(Normalize(token))
	if err != nil {
		return time.Time{}, &ParseError{Token: token, Err: err}
	}
	t, err := dateparse.ParseIn(canonical, loc)
	if err != nil {
		return time.Time{}, &ParseError{Token: token, Err: err}
	}
	return t.Truncate(time.Second), nil
}

// canonicalize rewrites a normalized token as "YYYY-MM-DD HH:MM:SS".
// Tokens are either 8 digits (date only) or 14 digits once separators are
// removed; anything else is rejected before reaching the date parser.
func canonicalize(normalized string) (string, error) {
	digits := strings.ReplaceAll(normalized, "-", "")
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("unexpected character %q", r)
		}
	}

	switch len(digits) {
	case 8:
		return splitDate(digits) + " " + defaultTime, nil
	case 14:
		return splitDate(digits[:8]) + " " + splitTime(digits[8:]), nil
	default:
		return "", fmt.Errorf("expected 8 or 14 digits, got %d", len(digits))
	}
}

func splitDate(d string) string { return d[0:4] + "-" + d[4:6] + "-" + d[6:8] }

func splitTime(t string) string { return t[0:2] + ":" + t[2:4] + ":" + t[4:6] }
