package utils

import (
	"regexp"
	"strings"
	"sync"
	"time"

	. "server/internal/models"
)

// CleanCurrency strips "$" and "," from string values and trims the
// result. Non-string values (numbers, nil) pass through unchanged; no
// numeric parsing happens, the output stays a string.
func CleanCurrency(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}

var (
	commaRun      = regexp.MustCompile(`,\s*,`)
	trailingComma = regexp.MustCompile(`,\s*$`)
)

// ComposeAddress renders the address parts into the single sheet column.
// A PO Box wins outright and every other part is ignored. Otherwise the
// parts are joined with ", ", runs of empty slots are collapsed until no
// adjacent commas remain, and any trailing comma/space is stripped.
func ComposeAddress(a Address) string {
	if a.PoBox != "" {
		return "PO Box: " + a.PoBox
	}

	s := strings.Join([]string{
		a.Direccion,
		a.CasaApartamento,
		a.Condado,
		a.Ciudad,
		a.Estado,
		a.CodigoPostal,
	}, ", ")

	for {
		collapsed := commaRun.ReplaceAllString(s, ", ")
		if collapsed == s {
			break
		}
		s = collapsed
	}

	return strings.TrimSpace(trailingComma.ReplaceAllString(s, ""))
}

const (
	timestampLayout = "02/01/2006, 15:04:05"
	shortDateLayout = "2/1/2006"
)

var (
	displayLocation     *time.Location
	displayLocationOnce sync.Once
)

func location() *time.Location {
	displayLocationOnce.Do(func() {
		loc, err := time.LoadLocation("America/New_York")
		if err != nil {
			loc = time.UTC
		}
		displayLocation = loc
	})
	return displayLocation
}

// FormatTimestamp renders t for audit display in the fixed reporting
// timezone. The result is not string-sortable; use ParseTimestamp to get
// an ordering key back.
func FormatTimestamp(t time.Time) string {
	return t.In(location()).Format(timestampLayout)
}

// ParseTimestamp inverts FormatTimestamp.
func ParseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(timestampLayout, s, location())
}

// FormatShortDate renders the short date stamped into plan rows.
func FormatShortDate(t time.Time) string {
	return t.In(location()).Format(shortDateLayout)
}
