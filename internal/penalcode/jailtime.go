package penalcode

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// JailTime is a sentence length in seconds. The zero value is None, which is
// distinct from a sentence of "0 Seconds".
type JailTime struct {
	seconds int
	set     bool
}

// None is the jail time of fine-only offenses.
var None = JailTime{}

// Seconds returns a jail time of n seconds. Negative values are treated as None.
func Seconds(n int) JailTime {
	if n < 0 {
		return None
	}
	return JailTime{seconds: n, set: true}
}

// IsNone reports whether the jail time is None.
func (j JailTime) IsNone() bool {
	return !j.set
}

// Seconds returns the number of seconds this jail time contributes to a total.
// None contributes zero.
func (j JailTime) Seconds() int {
	if !j.set {
		return 0
	}
	return j.seconds
}

// String renders "None" or "N Seconds".
func (j JailTime) String() string {
	if !j.set {
		return "None"
	}
	return FormatSeconds(j.seconds)
}

// FormatSeconds renders a seconds count the way jail times are displayed.
func FormatSeconds(n int) string {
	return fmt.Sprintf("%d Seconds", n)
}

// ParseJailTime parses "None", "" or "N Seconds". A bare integer is accepted.
// Anything unparsable is treated as None so that it never contributes to a total.
func ParseJailTime(s string) JailTime {
	j, _ := parseJailTime(s)
	return j
}

// ValidJailTime reports whether s is "None", empty, or a whole number of
// seconds with or without the "Seconds" suffix.
func ValidJailTime(s string) bool {
	_, ok := parseJailTime(s)
	return ok
}

func parseJailTime(s string) (JailTime, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return None, true
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, "Seconds"))
	n, err := strconv.Atoi(s)
	if err != nil {
		return None, false
	}
	return Seconds(n), true
}

// MarshalJSON encodes the jail time as its display string.
func (j JailTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.String())
}

// UnmarshalJSON accepts the display string or a number of seconds.
func (j *JailTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*j = ParseJailTime(s)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decoding jail time: %w", err)
	}
	*j = Seconds(n)
	return nil
}
