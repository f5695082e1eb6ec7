package system

import (
	"strconv"
	"strings"
)

const (
	titlePrefix        = "Orbit Simulator"
	titleDecimalPlaces = 2
	defaultTitleLength = 40
)

// TrimToLength cuts s to length-3 characters plus "..." once it reaches
// length-3 characters.
func TrimToLength(s string, length int) string {
	r := []rune(s)
	n := length - 3
	if n < 0 {
		n = 0
	}
	if len(r) >= n {
		return string(r[:n]) + "..."
	}
	return s
}

// FormatScientific renders a positive number as "p x 10^e", truncating the
// prefix to decimalPlaces digits. Non-positive numbers give "".
func FormatScientific(v float64, decimalPlaces int) string {
	prefix := v
	exponent := 0
	switch {
	case v >= 1:
		for prefix >= 10 {
			prefix /= 10
			exponent++
		}
	case v > 0:
		for prefix < 1 {
			prefix *= 10
			exponent--
		}
	default:
		return ""
	}

	digits := strconv.FormatFloat(prefix, 'f', -1, 64)
	if !strings.Contains(digits, ".") {
		digits += ".0"
	}
	if limit := decimalPlaces + 2; len(digits) > limit {
		digits = digits[:limit]
	}
	return digits + " x 10^" + strconv.Itoa(exponent)
}

// FormatTitle builds the window title. watching is omitted when empty.
func FormatTitle(timeAcceleration float64, watching, shooting string, entities, length int) string {
	if length <= 0 {
		length = defaultTitleLength
	}

	var b strings.Builder
	b.WriteString(titlePrefix)
	b.WriteString(" | Time Acceleration: ")
	b.WriteString(FormatScientific(timeAcceleration, titleDecimalPlaces))
	if watching != "" {
		b.WriteString(" | Watching ")
		b.WriteString(TrimToLength(watching, length))
	}
	if shooting != "" {
		b.WriteString(" | Shooting ")
		b.WriteString(TrimToLength(shooting, length))
	}
	b.WriteString(" | Entities: ")
	b.WriteString(strconv.Itoa(entities))
	return b.String()
}
