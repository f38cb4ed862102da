package check

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Ping verifies that HTTPS paths served by the host respond.
type Ping struct {
	// URLs are paths appended to "https://<host>".
	URLs []string `yaml:"url"`
}

// Kind returns the catalog name.
func (c *Ping) Kind() string { return KindPing }

// Validate checks that at least one URL is configured.
func (c *Ping) Validate() error {
	if len(c.URLs) == 0 {
		return fmt.Errorf("ping: url list must not be empty")
	}
	return nil
}

// Probe issues one GET per configured path. The check passes only
// when every path answers 200.
func (c *Ping) Probe(ctx context.Context, client *http.Client, host string) Result {
	var lines []string
	status := Pass

	for _, u := range c.URLs {
		loc := "https://" + host + u
		line, ok := probeOne(ctx, client, loc)
		if !ok {
			status = Fail
		}
		lines = append(lines, line)
	}

	return Result{
		Check:  KindPing,
		Status: status,
		Detail: strings.Join(lines, "\n"),
	}
}

func probeOne(ctx context.Context, client *http.Client, loc string) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loc, nil)
	if err != nil {
		return fmt.Sprintf("❌ %s == `%v`", loc, err), false
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Sprintf("❌ %s == `%v`", loc, err), false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Sprintf("❌ %s == HTTP %d", loc, resp.StatusCode), false
	}
	return fmt.Sprintf("✅ %s", loc), true
}
