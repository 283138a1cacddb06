package dirstat

// Kind distinguishes files from directories in display events.
type Kind int

const (
	// KindFile marks a regular file.
	KindFile Kind = iota
	// KindDir marks a directory.
	KindDir
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "directory"
	default:
		return "unknown"
	}
}

// Event is emitted for every counted entry, in encounter order.
type Event struct {
	// Depth is the level of the directory holding the entry; the root's children are at 0.
	Depth int
	// Name is the entry's base name.
	Name string
	// Kind tells files and directories apart.
	Kind Kind
	// Size is the file size in bytes. Always 0 for directories.
	Size int64
}

// IsFile reports whether the event describes a file.
func (e Event) IsFile() bool { return e.Kind == KindFile }
