package dirstat

import (
	"strings"

	"github.com/idelchi/dirsum/internal/config"
)

// Filter decides which files are counted based on their extension.
type Filter struct {
	only   config.ExtensionSet
	ignore config.ExtensionSet
}

// NewFilter builds the extension filter described by cfg.
func NewFilter(cfg *config.Config) Filter {
	return Filter{
		only:   cfg.OnlyExtensions(),
		ignore: cfg.IgnoreExtensions(),
	}
}

// Keep reports whether a file called name passes the filter.
//
// A non-empty only set takes full precedence: the file must have an extension
// in it, and the ignore set is never consulted. Otherwise files without an
// extension are always kept and files whose extension is ignored are dropped.
func (f Filter) Keep(name string) bool {
	ext, ok := Extension(name)

	if !f.only.Empty() {
		return ok && f.only.Contains(ext)
	}

	if !ok || f.ignore.Empty() {
		return true
	}

	return !f.ignore.Contains(ext)
}

// Extension returns the text after the final dot of name.
// Names without a dot, or whose only dot is the leading one (".bashrc"), have no extension.
func Extension(name string) (string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return "", false
	}

	return name[i+1:], true
}
