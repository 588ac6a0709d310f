package color

import (
	"unicode"
	"unicode/utf8"

	"github.com/NielsdaWheelz/scaffoldkit/internal/errors"
)

// swiftKeywords are reserved words that cannot be used as bare identifiers.
var swiftKeywords = map[string]bool{
	"associatedtype": true, "class": true, "deinit": true, "enum": true,
	"extension": true, "fileprivate": true, "func": true, "import": true,
	"init": true, "inout": true, "internal": true, "let": true, "open": true,
	"operator": true, "private": true, "precedencegroup": true, "protocol": true,
	"public": true, "rethrows": true, "static": true, "struct": true,
	"subscript": true, "typealias": true, "var": true, "break": true,
	"case": true, "catch": true, "continue": true, "default": true,
	"defer": true, "do": true, "else": true, "fallthrough": true, "for": true,
	"guard": true, "if": true, "in": true, "repeat": true, "return": true,
	"throw": true, "switch": true, "where": true, "while": true, "as": true,
	"false": true, "is": true, "nil": true, "self": true, "super": true,
	"throws": true, "true": true, "try": true, "any": true, "some": true,
}

// AccessorName lower-cases the first character of name and keeps the rest:
// "PrimaryBlue" -> "primaryBlue". Callers must have validated name.
func AccessorName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}

// ValidateName checks that name can be both a color-set directory name and
// a Swift identifier once passed through AccessorName.
func ValidateName(name string) error {
	first, size := utf8.DecodeRuneInString(name)
	if first == utf8.RuneError || !unicode.IsLetter(first) || !(unicode.IsUpper(first) || unicode.IsLower(first)) {
		return invalidName(name, "must start with an upper- or lower-case letter")
	}
	for _, r := range name[size:] {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return invalidName(name, "may only contain letters, digits and underscores")
		}
	}
	if swiftKeywords[AccessorName(name)] {
		return invalidName(name, "accessor "+AccessorName(name)+" is a reserved word")
	}
	return nil
}

func invalidName(name, rule string) error {
	return errors.NewWithDetails(errors.EValidation,
		"invalid color name "+quote(name)+": "+rule,
		map[string]string{"name": name, "rule": rule})
}
