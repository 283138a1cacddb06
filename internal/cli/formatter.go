package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idelchi/dirsum/internal/dirstat"
)

// Indent is repeated once per depth level in front of each entry line.
const Indent = "---> "

// topLevelNote is appended to the size label when subdirectories were not descended into.
const topLevelNote = " (only top level, use --recursive to include any directory within the path)"

//nolint:gochecknoglobals // Unit table
var units = []string{"B", "KB", "MB", "GB", "TB"}

// Report is the outcome of a walk as rendered by the structured output formats.
type Report struct {
	// Root is the directory the walk started from.
	Root string `json:"root" yaml:"root"`
	// Recursive tells whether subdirectories were descended into.
	Recursive bool `json:"recursive" yaml:"recursive"`
	// Depth is the configured maximum depth.
	Depth string `json:"depth" yaml:"depth"`
	// Result holds the aggregated statistics.
	Result dirstat.Result `json:"result" yaml:"result"`
	// Elapsed is the total time taken by the walk, e.g. "1.2ms".
	Elapsed string `json:"elapsed" yaml:"elapsed"`
}

// HumanUnit scales size by powers of 1024 and formats it with two decimals, e.g. "1.50 [KB]".
func HumanUnit(size int64) string {
	value := float64(size)
	unit := 0

	for value >= 1024 && unit < len(units)-1 {
		value /= 1024
		unit++
	}

	return fmt.Sprintf("%.2f [%s]", value, units[unit])
}

// FormatSize renders size either as raw bytes or in human-readable units.
func FormatSize(size int64, human bool) string {
	if human {
		return HumanUnit(size)
	}

	return strconv.FormatInt(size, 10)
}

// EntryLine renders a single display event.
// Directories carry no size, leaving just the trailing separator.
func EntryLine(event dirstat.Event, human bool) string {
	var size string
	if event.IsFile() {
		size = "| size: " + FormatSize(event.Size, human)
	}

	return strings.Repeat(Indent, event.Depth) + event.Name + " " + size
}

// PrintEntry writes the line for event to writer.
func PrintEntry(event dirstat.Event, human bool, writer io.Writer) error {
	_, err := fmt.Fprintln(writer, EntryLine(event, human))

	return err
}

// PrintText outputs the summary block.
func PrintText(report Report, human bool, writer io.Writer) error {
	var note string
	if !report.Recursive {
		note = topLevelNote
	}

	result := report.Result

	biggest := "none"
	if result.Biggest != nil {
		biggest = result.Biggest.Path + " | size: " + FormatSize(result.Biggest.Size, human)
	}

	_, err := fmt.Fprintf(writer, "Directory count: %d\nFile count: %d\nTotal size%s: %s\nBiggest file: %s\n",
		result.Dirs,
		result.Files,
		note,
		FormatSize(result.TotalBytes, human),
		biggest,
	)

	return err
}

// PrintJSON outputs the report in JSON format.
func PrintJSON(report Report, writer io.Writer) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintYAML outputs the report in YAML format.
func PrintYAML(report Report, writer io.Writer) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)

	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encoding YAML output: %w", err)
	}

	return encoder.Close()
}
