package check

import (
	"fmt"
	"strings"

	"al.essio.dev/pkg/shellescape"
)

// FileAge checks that no entry directly under the configured paths is
// older than a maximum age in minutes. Useful for directories that
// should receive fresh drops (backups, spools, inboxes).
type FileAge struct {
	// Paths are the directories to inspect.
	Paths []string `yaml:"path"`

	// MaximumAge is the age threshold in minutes.
	MaximumAge int `yaml:"maximum_age"`
}

// Kind returns the catalog name.
func (c *FileAge) Kind() string { return KindFileAge }

// Validate checks the paths and age threshold.
func (c *FileAge) Validate() error {
	if len(c.Paths) == 0 {
		return fmt.Errorf("file_age: path list must not be empty")
	}
	if c.MaximumAge <= 0 {
		return fmt.Errorf("file_age: maximum_age must be positive, got %d", c.MaximumAge)
	}
	return nil
}

// Command lists stale entries under all configured paths in a single
// find invocation.
func (c *FileAge) Command() string {
	quoted := make([]string, len(c.Paths))
	for i, p := range c.Paths {
		quoted[i] = shellescape.Quote(strings.TrimRight(p, "/"))
	}
	return fmt.Sprintf("find %s -mindepth 1 -maxdepth 1 -mmin +%d",
		strings.Join(quoted, " "), c.MaximumAge)
}

// Parse fails when any stale entry is listed.
func (c *FileAge) Parse(out string, ok bool) Result {
	if !ok {
		return Result{
			Check:  KindFileAge,
			Status: Fail,
			Detail: fmt.Sprintf("scanning for stale files failed: %s", snippet(out)),
		}
	}

	var stale []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			stale = append(stale, line)
		}
	}

	if len(stale) == 0 {
		return Result{
			Check:  KindFileAge,
			Status: Pass,
			Detail: fmt.Sprintf("no entries older than %d minutes in %s", c.MaximumAge, backtickList(c.Paths)),
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "entries older than %d minutes:\n```\n", c.MaximumAge)
	for _, f := range stale {
		b.WriteString(f)
		b.WriteByte('\n')
	}
	b.WriteString("```")

	return Result{
		Check:  KindFileAge,
		Status: Fail,
		Detail: b.String(),
	}
}

func backtickList(paths []string) string {
	quoted := make([]string, len(paths))
	for i, p := range paths {
		quoted[i] = "`" + p + "`"
	}
	return strings.Join(quoted, ", ")
}
