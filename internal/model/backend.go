package model

import (
	"strings"

	"github.com/NielsdaWheelz/scaffoldkit/internal/errors"
)

// Backend selects the build-manifest grammar to emit.
type Backend string

const (
	BackendTuist    Backend = "tuist"
	BackendXcodeGen Backend = "xcodegen"
	BackendNone     Backend = "none"
)

// SupportedBackends lists every accepted selector, in help-text order.
var SupportedBackends = []Backend{BackendTuist, BackendXcodeGen, BackendNone}

// SupportedBackendList is SupportedBackends joined for messages.
func SupportedBackendList() string {
	names := make([]string, 0, len(SupportedBackends))
	for _, b := range SupportedBackends {
		names = append(names, string(b))
	}
	return strings.Join(names, ", ")
}

// ParseBackend maps a selector to a Backend. Matching ignores case and
// surrounding whitespace; an empty selector means BackendNone.
func ParseBackend(s string) (Backend, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return BackendNone, nil
	}
	for _, b := range SupportedBackends {
		if string(b) == v {
			return b, nil
		}
	}
	return "", UnsupportedBackend(s)
}

// UnsupportedBackend is the E_VALIDATION error for a selector that is not
// one of SupportedBackends.
func UnsupportedBackend(value string) error {
	return errors.NewWithDetails(errors.EValidation,
		"unsupported manifest backend \""+value+"\"; supported: "+SupportedBackendList(),
		map[string]string{"field": "backend", "value": value, "allowed": SupportedBackendList()})
}
