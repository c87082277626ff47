package profile

import (
	"strconv"
	"strings"
)

// parseHourlyRate reads the leading integer of a free-text rate such as
// "50", " 75/hr" or "-10". Text with no leading digits yields nil.
func parseHourlyRate(text string) *int {
	s := strings.TrimLeft(text, " \t\r\n")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return nil
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &n
}

// nullable maps an empty form field to nil.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
