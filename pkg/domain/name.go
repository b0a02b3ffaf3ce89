package domain

import (
	"strings"

	"domainwatch/pkg/serrors"
)

// CanonicalName normalizes a domain name to its canonical lookup key:
// lowercase, no trailing dot, LDH labels only. An error of kind
// serrors.ErrBadRequest is returned for names that cannot be canonicalized.
func CanonicalName(name string) (string, error) {
	name = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(name), "."))
	if name == "" {
		return "", serrors.With(serrors.ErrBadRequest, "empty domain name")
	}

	labels := strings.Split(name, ".")
	if len(labels) < 2 {
		return "", serrors.With(serrors.ErrBadRequest, "domain name %q is not fully qualified", name)
	}

	for _, label := range labels {
		if !validLabel(label) {
			return "", serrors.With(serrors.ErrBadRequest, "invalid label %q in domain name", label)
		}
	}

	return name, nil
}

// TLDOf returns the last label of an already-canonical domain name.
func TLDOf(name string) string {
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		return name[idx+1:]
	}

	return name
}

// validLabel reports whether a label satisfies the LDH rule: letters, digits
// and inner hyphens, between 1 and 63 octets.
func validLabel(label string) bool {
	if label == "" || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}

	return true
}
