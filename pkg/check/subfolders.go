package check

import (
	"fmt"
	"strings"

	"al.essio.dev/pkg/shellescape"
)

// DefaultMaxFolders is the subfolder-count threshold used when the
// configuration does not set one.
const DefaultMaxFolders = 100

// Subfolders counts immediate subdirectories of each configured path.
type Subfolders struct {
	// Paths are the directories to inspect.
	Paths []string `yaml:"path"`

	// MaxFolders is the count above which a path fails.
	// Zero means DefaultMaxFolders.
	MaxFolders int `yaml:"max_folders"`
}

// Kind returns the catalog name.
func (c *Subfolders) Kind() string { return KindSubfolders }

// Validate checks that at least one path is configured.
func (c *Subfolders) Validate() error {
	if len(c.Paths) == 0 {
		return fmt.Errorf("number_of_subfolders: path list must not be empty")
	}
	if c.MaxFolders < 0 {
		return fmt.Errorf("number_of_subfolders: max_folders must not be negative, got %d", c.MaxFolders)
	}
	return nil
}

// Command lists immediate subdirectories of all configured paths in
// a single find invocation; Parse attributes each line back to its
// configured path.
func (c *Subfolders) Command() string {
	quoted := make([]string, len(c.Paths))
	for i, p := range c.Paths {
		quoted[i] = shellescape.Quote(strings.TrimRight(p, "/"))
	}
	return fmt.Sprintf("find %s -mindepth 1 -maxdepth 1 -type d", strings.Join(quoted, " "))
}

// Parse counts output lines per configured path and compares each
// count against the threshold.
func (c *Subfolders) Parse(out string, ok bool) Result {
	if !ok {
		return Result{
			Check:  KindSubfolders,
			Status: Fail,
			Detail: fmt.Sprintf("listing subfolders failed: %s", snippet(out)),
		}
	}

	max := c.MaxFolders
	if max == 0 {
		max = DefaultMaxFolders
	}

	counts := make(map[string]int, len(c.Paths))
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, p := range c.Paths {
			root := strings.TrimRight(p, "/")
			if strings.HasPrefix(line, root+"/") {
				counts[root]++
				break
			}
		}
	}

	var lines []string
	status := Pass
	for _, p := range c.Paths {
		root := strings.TrimRight(p, "/")
		n := counts[root]
		glyph := "✅"
		if n > max {
			glyph = "❌"
			status = Fail
		}
		lines = append(lines, fmt.Sprintf("%s %d subfolders in `%s` (max %d)", glyph, n, root, max))
	}

	return Result{
		Check:  KindSubfolders,
		Status: status,
		Detail: strings.Join(lines, "\n"),
	}
}
