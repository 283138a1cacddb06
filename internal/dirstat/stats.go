package dirstat

// FileStat represents a single file path and size.
type FileStat struct {
	// Path is the file path, joined onto the walk root.
	Path string `json:"path" yaml:"path"`
	// Size is the size in bytes.
	Size int64 `json:"size" yaml:"size"`
}

// Result holds aggregate statistics for a directory walk or one of its subtrees.
type Result struct {
	// Dirs is the number of directories counted.
	Dirs int64 `json:"directory_count" yaml:"directory_count"`
	// Files is the number of files counted.
	Files int64 `json:"file_count" yaml:"file_count"`
	// TotalBytes is the cumulative size of all counted files.
	TotalBytes int64 `json:"total_bytes" yaml:"total_bytes"`
	// Biggest is the largest counted file, nil if no file was counted.
	Biggest *FileStat `json:"biggest_file,omitempty" yaml:"biggest_file,omitempty"`
}

// Merge combines r with other. Counts and sizes add up.
// The biggest file is the larger of the two candidates; r's candidate wins ties,
// so merging in traversal order keeps the first file found.
func (r Result) Merge(other Result) Result {
	merged := Result{
		Dirs:       r.Dirs + other.Dirs,
		Files:      r.Files + other.Files,
		TotalBytes: r.TotalBytes + other.TotalBytes,
		Biggest:    r.Biggest,
	}

	if other.Biggest != nil && (merged.Biggest == nil || other.Biggest.Size > merged.Biggest.Size) {
		merged.Biggest = other.Biggest
	}

	return merged
}

// Empty reports whether nothing was counted.
func (r Result) Empty() bool {
	return r.Dirs == 0 && r.Files == 0 && r.TotalBytes == 0 && r.Biggest == nil
}
