// Package color parses the user's palette and converts it to the channel
// values written into asset catalogs.
package color

import (
	"strings"

	"github.com/NielsdaWheelz/scaffoldkit/internal/errors"
)

// Entry is one validated palette color. Hex is always six upper-case hex
// digits without a leading '#'.
type Entry struct {
	Hex  string
	Name string
}

// Accessor returns the generated-code identifier for the color.
func (e Entry) Accessor() string {
	return AccessorName(e.Name)
}

// Parse turns a raw "#HEX=Name,#HEX=Name" list into entries, preserving
// input order. An empty or blank input yields no entries and no error.
//
// Malformed tokens fail with E_MALFORMED_COLOR_SPEC and carry the token in
// the "token" detail. Names that cannot become identifiers fail with
// E_VALIDATION.
func Parse(raw string) ([]Entry, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var entries []Entry
	names := make(map[string]bool)
	folded := make(map[string]string)
	accessors := make(map[string]string)

	for _, tok := range strings.Split(raw, ",") {
		token := strings.TrimSpace(tok)
		if token == "" {
			return nil, malformed(token, "empty color token")
		}

		hexPart, name, ok := strings.Cut(token, "=")
		if !ok {
			return nil, malformed(token, "expected #HEX=Name")
		}
		hexPart = strings.TrimSpace(hexPart)
		name = strings.TrimSpace(name)
		if hexPart == "" || name == "" {
			return nil, malformed(token, "hex and name must both be non-empty")
		}

		hex, ok := normalizeHex(hexPart)
		if !ok {
			return nil, malformed(token, "hex must be 3 or 6 hexadecimal digits")
		}

		if names[name] {
			return nil, malformed(token, "duplicate color name "+name)
		}
		names[name] = true

		// Color sets are directories; Red and RED collide on a
		// case-insensitive filesystem such as the default macOS volume.
		key := strings.ToLower(name)
		if prev, dup := folded[key]; dup {
			return nil, errors.NewWithDetails(errors.EValidation,
				"colors "+prev+" and "+name+" differ only in case",
				map[string]string{"name": name, "conflicts_with": prev})
		}
		folded[key] = name

		if err := ValidateName(name); err != nil {
			return nil, err
		}
		acc := AccessorName(name)
		if prev, dup := accessors[acc]; dup {
			return nil, errors.NewWithDetails(errors.EValidation,
				"colors "+prev+" and "+name+" both map to accessor "+acc,
				map[string]string{"name": name, "accessor": acc})
		}
		accessors[acc] = name

		entries = append(entries, Entry{Hex: hex, Name: name})
	}

	return entries, nil
}

// Format serializes entries back into the Parse input syntax.
func Format(entries []Entry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, "#"+e.Hex+"="+e.Name)
	}
	return strings.Join(parts, ",")
}

// normalizeHex strips a leading '#', upper-cases and expands RGB to RRGGBB.
func normalizeHex(s string) (string, bool) {
	s = strings.ToUpper(strings.TrimPrefix(s, "#"))
	if len(s) != 3 && len(s) != 6 {
		return "", false
	}
	for _, r := range s {
		if !isHexDigit(r) {
			return "", false
		}
	}
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	return s, true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'A' && r <= 'F')
}

func malformed(token, reason string) error {
	return errors.NewWithDetails(errors.EMalformedColorSpec,
		"malformed color token "+quote(token)+": "+reason,
		map[string]string{"token": token})
}

func quote(s string) string {
	return "\"" + s + "\""
}
