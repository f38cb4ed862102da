package check

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultMaxLoad is the load-average threshold used when the
// configuration does not set one. Set max per server for hosts where
// this is too strict.
const DefaultMaxLoad = 5.0

// Load reads the load average over one of the standard intervals.
type Load struct {
	// Interval selects the load-average window in minutes: 1, 5 or 15.
	Interval int `yaml:"interval"`

	// Max is the threshold above which the check fails.
	// Zero means DefaultMaxLoad.
	Max float64 `yaml:"max"`
}

// Kind returns the catalog name.
func (c *Load) Kind() string { return KindLoad }

// Validate checks the interval and threshold.
func (c *Load) Validate() error {
	switch c.Interval {
	case 1, 5, 15:
	default:
		return fmt.Errorf("load: interval must be 1, 5 or 15, got %d", c.Interval)
	}
	if c.Max < 0 {
		return fmt.Errorf("load: max must not be negative, got %v", c.Max)
	}
	return nil
}

// Command returns the remote command.
func (c *Load) Command() string { return "uptime" }

// Parse extracts the load average for the configured interval from
// uptime output and compares it against the threshold.
func (c *Load) Parse(out string, ok bool) Result {
	if !ok {
		return Result{
			Check:  KindLoad,
			Status: Fail,
			Detail: fmt.Sprintf("uptime exited with an error: %s", snippet(out)),
		}
	}

	load, err := parseLoadAverage(out, c.Interval)
	if err != nil {
		return Result{
			Check:  KindLoad,
			Status: Indeterminate,
			Detail: fmt.Sprintf("cannot read load average: %v", err),
		}
	}

	max := c.Max
	if max == 0 {
		max = DefaultMaxLoad
	}

	status := Pass
	if load > max {
		status = Fail
	}
	return Result{
		Check:  KindLoad,
		Status: status,
		Detail: fmt.Sprintf("load %.2f (%dmin), threshold %.2f", load, c.Interval, max),
	}
}

// parseLoadAverage pulls one of the three load figures out of uptime
// output, e.g. "... load average: 0.42, 0.30, 0.21".
func parseLoadAverage(out string, interval int) (float64, error) {
	_, rest, found := strings.Cut(out, "load average:")
	if !found {
		return 0, fmt.Errorf("no \"load average:\" in %s", snippet(out))
	}

	fields := strings.Split(rest, ",")
	var index int
	switch interval {
	case 1:
		index = 0
	case 5:
		index = 1
	case 15:
		index = 2
	}
	if len(fields) <= index {
		return 0, fmt.Errorf("expected three load figures in %s", snippet(rest))
	}

	load, err := strconv.ParseFloat(strings.TrimSpace(fields[index]), 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", strings.TrimSpace(fields[index]), err)
	}
	return load, nil
}
