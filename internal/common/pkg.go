package common

import (
	"path"
	"strings"
	"unicode"
)

// PackageToken returns the name token of a Go package path: the last path
// element, or the one before it when the last is a major version suffix
// such as "v2". Characters other than letters and digits are dropped and
// the first letter is upper-cased, so "example.com/billing-core/v2" yields
// "Billingcore". Returns empty string if pkgPath is empty.
func PackageToken(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	elem := path.Base(pkgPath)
	if isMajorVersion(elem) && path.Dir(pkgPath) != "." {
		elem = path.Base(path.Dir(pkgPath))
	}

	if i := strings.IndexByte(elem, '.'); i > 0 {
		elem = elem[:i]
	}

	var b strings.Builder

	for _, r := range elem {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}

		if b.Len() == 0 {
			r = unicode.ToUpper(r)
		}

		b.WriteRune(r)
	}

	return b.String()
}

func isMajorVersion(elem string) bool {
	if len(elem) < 2 || elem[0] != 'v' {
		return false
	}

	for _, r := range elem[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
