// Package evaluate drives all configured checks for each host and
// assembles per-host reports.
package evaluate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hostpatrol/hostpatrol/pkg/check"
	"github.com/hostpatrol/hostpatrol/pkg/config"
	"github.com/hostpatrol/hostpatrol/pkg/sshx"
)

// UnreachableCheck names the synthetic result recorded when a host's
// session cannot be established.
const UnreachableCheck = "unreachable"

// HostReport is one host's identity plus its ordered check results.
type HostReport struct {
	// Name is the configured server name.
	Name string

	// Host is the address the server was contacted on.
	Host string

	// Results in check declaration order.
	Results []check.Result

	// Failed is true iff any contained result failed.
	Failed bool
}

// Dialer opens a session to one host.
type Dialer interface {
	Dial(ctx context.Context, host string, port int, user, keyPath string) (sshx.Session, error)
}

// Evaluator runs every configured check for each host.
type Evaluator struct {
	dialer Dialer
	runner *check.Runner
	logger *slog.Logger
}

// New creates an evaluator. If logger is nil, slog.Default is used.
func New(dialer Dialer, runner *check.Runner, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{
		dialer: dialer,
		runner: runner,
		logger: logger,
	}
}

// Evaluate runs the server's checks in declaration order over one
// session. A failing check never halts the remaining checks. When the
// session cannot be opened, the report carries a single synthetic
// unreachable result so the host still appears in the summary.
func (e *Evaluator) Evaluate(ctx context.Context, srv config.Server) HostReport {
	report := HostReport{
		Name: srv.Name,
		Host: srv.Host,
	}

	start := time.Now()
	e.logger.Info("evaluating host",
		slog.String("server", srv.Name),
		slog.String("host", srv.Host),
		slog.Int("checks", len(srv.Checks)),
	)

	sess, err := e.dialer.Dial(ctx, srv.Host, srv.Port, srv.User, srv.PrivateKey)
	if err != nil {
		e.logger.Error("host unreachable",
			slog.String("server", srv.Name),
			slog.String("host", srv.Host),
			slog.String("error", err.Error()),
		)
		report.Results = append(report.Results, check.Result{
			Check:  UnreachableCheck,
			Status: check.Fail,
			Detail: fmt.Sprintf("cannot open session: %v", err),
		})
		report.Failed = true
		return report
	}
	defer sess.Close()

	for _, chk := range srv.Checks {
		result := e.runner.Run(ctx, sess, srv.Host, chk)
		report.Results = append(report.Results, result)
		report.Failed = report.Failed || result.Failed()
	}

	e.logger.Info("host evaluated",
		slog.String("server", srv.Name),
		slog.Bool("failed", report.Failed),
		slog.Duration("duration", time.Since(start)),
	)
	return report
}

// EvaluateAll evaluates every server. Hosts share no state, so up to
// parallel of them run concurrently; checks within a host stay
// strictly sequential. Reports are returned in configuration order
// regardless of completion order.
func (e *Evaluator) EvaluateAll(ctx context.Context, servers []config.Server, parallel int) []HostReport {
	if parallel < 1 {
		parallel = 1
	}

	reports := make([]HostReport, len(servers))
	sem := make(chan struct{}, parallel)
	var wg sync.WaitGroup

	for i, srv := range servers {
		wg.Add(1)
		go func(i int, srv config.Server) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			reports[i] = e.Evaluate(ctx, srv)
		}(i, srv)
	}

	wg.Wait()
	return reports
}
