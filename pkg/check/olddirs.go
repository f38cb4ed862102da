package check

import (
	"fmt"
	"strings"

	"al.essio.dev/pkg/shellescape"
)

// OldDirectories lists directories directly under a root whose change
// time exceeds a cutoff in days. Any hit fails the check.
type OldDirectories struct {
	// Loc is the root directory to scan.
	Loc string `yaml:"loc"`

	// Cutoff is the age threshold in days.
	Cutoff int `yaml:"cutoff"`
}

// Kind returns the catalog name.
func (c *OldDirectories) Kind() string { return KindOldDirs }

// Validate checks the root path and cutoff.
func (c *OldDirectories) Validate() error {
	if c.Loc == "" {
		return fmt.Errorf("list_old_directories: loc must not be empty")
	}
	if c.Cutoff <= 0 {
		return fmt.Errorf("list_old_directories: cutoff must be positive, got %d", c.Cutoff)
	}
	return nil
}

// Command returns a find invocation for stale directories under the
// root. mindepth excludes the root itself.
func (c *OldDirectories) Command() string {
	return fmt.Sprintf("find %s -mindepth 1 -maxdepth 1 -type d -ctime +%d",
		shellescape.Quote(c.Loc), c.Cutoff)
}

// Parse fails when any directory is listed, naming each offender.
func (c *OldDirectories) Parse(out string, ok bool) Result {
	if !ok {
		return Result{
			Check:  KindOldDirs,
			Status: Fail,
			Detail: fmt.Sprintf("scanning `%s` failed: %s", c.Loc, snippet(out)),
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
			Check:  KindOldDirs,
			Status: Pass,
			Detail: fmt.Sprintf("no directories older than %d days in `%s`", c.Cutoff, c.Loc),
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "directories older than %d days in `%s`:\n```\n", c.Cutoff, c.Loc)
	for _, dir := range stale {
		b.WriteString(dir)
		b.WriteByte('\n')
	}
	b.WriteString("```")

	return Result{
		Check:  KindOldDirs,
		Status: Fail,
		Detail: b.String(),
	}
}
