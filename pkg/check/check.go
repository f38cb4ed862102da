// Package check defines the catalog of host diagnostics and the
// runner that executes them over a remote session.
//
// Each check kind is a small struct holding only the parameters for
// that kind. Session-based checks implement RemoteCheck: a pure
// command builder plus a pure parser over the captured output. Checks
// that reach the host from the outside (ping) implement ProbeCheck.
// Adding a new kind means adding one variant; the runner does not
// change.
package check

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Check kind names as they appear in configuration and reports.
const (
	KindPing        = "ping"
	KindLoad        = "load"
	KindSubfolders  = "number_of_subfolders"
	KindCustom      = "custom_command"
	KindOldDirs     = "list_old_directories"
	KindTemperature = "temperature"
	KindFileAge     = "file_age"
)

// Check is one configured diagnostic for a host.
type Check interface {
	// Kind returns the catalog name of the check.
	Kind() string

	// Validate reports missing or malformed parameters. It is called
	// at configuration time, before any session is opened.
	Validate() error
}

// RemoteCheck executes exactly one command over the host's session.
type RemoteCheck interface {
	Check

	// Command returns the remote command string. Pure function of
	// the check's parameters.
	Command() string

	// Parse interprets captured output. ok is the remote exit
	// status. Pure function: identical input yields an identical
	// Result.
	Parse(out string, ok bool) Result
}

// ProbeCheck reaches the host from the runner side without a session.
type ProbeCheck interface {
	Check

	// Probe runs the check against the named host.
	Probe(ctx context.Context, client *http.Client, host string) Result
}

// Session executes a single command on a remote host.
// ok is false when the command ran but reported a non-zero exit
// status; err is reserved for the invocation itself failing.
type Session interface {
	Exec(ctx context.Context, command string) (out string, ok bool, err error)
}

// Runner dispatches a check over a session and yields its result.
type Runner struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewRunner creates a check runner. The HTTP client is used by probe
// checks; if nil a client with a 10s timeout is used.
func NewRunner(httpClient *http.Client, logger *slog.Logger) *Runner {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{httpClient: httpClient, logger: logger}
}

// Run executes one check against one host. Session-based checks issue
// a single blocking command; there are no retries at this layer.
// Errors are folded into the Result, never returned.
func (r *Runner) Run(ctx context.Context, sess Session, host string, c Check) Result {
	start := time.Now()

	var result Result
	switch c := c.(type) {
	case RemoteCheck:
		result = r.runRemote(ctx, sess, c)
	case ProbeCheck:
		result = c.Probe(ctx, r.httpClient, host)
	default:
		result = Result{
			Check:  c.Kind(),
			Status: Indeterminate,
			Detail: fmt.Sprintf("check kind %q is not runnable", c.Kind()),
		}
	}

	r.logger.Debug("check finished",
		slog.String("host", host),
		slog.String("check", c.Kind()),
		slog.String("status", result.Status.String()),
		slog.Duration("duration", time.Since(start)),
	)
	return result
}

func (r *Runner) runRemote(ctx context.Context, sess Session, c RemoteCheck) Result {
	cmd := c.Command()
	out, ok, err := sess.Exec(ctx, cmd)
	if err != nil {
		return Result{
			Check:  c.Kind(),
			Status: Fail,
			Detail: fmt.Sprintf("command %q failed to execute: %v", cmd, err),
		}
	}
	return c.Parse(out, ok)
}
