// Package sshx opens authenticated SSH sessions to monitored hosts
// and runs single commands over them.
package sshx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
)

// Session executes commands on one remote host. Commands run strictly
// one at a time; ok is false when the command ran but exited non-zero.
type Session interface {
	Exec(ctx context.Context, command string) (out string, ok bool, err error)
	Close() error
}

// Dialer opens SSH sessions using private-key authentication.
type Dialer struct {
	// Timeout bounds connection establishment. Defaults to 30s.
	Timeout time.Duration

	logger *slog.Logger
}

// NewDialer creates a dialer. If logger is nil, slog.Default is used.
func NewDialer(timeout time.Duration, logger *slog.Logger) *Dialer {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dialer{Timeout: timeout, logger: logger}
}

// Dial connects to host:port and authenticates as user with the
// private key at keyPath.
func (d *Dialer) Dial(ctx context.Context, host string, port int, user, keyPath string) (Session, error) {
	keyPath = expandHome(keyPath)

	key, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("reading SSH private key: %w", err)
	}

	signer, err := ssh.ParsePrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("parsing SSH private key: %w", err)
	}

	config := &ssh.ClientConfig{
		User: user,
		Auth: []ssh.AuthMethod{
			ssh.PublicKeys(signer),
		},
		// TODO(security): use known_hosts or TOFU instead of InsecureIgnoreHostKey
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         d.Timeout,
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	start := time.Now()

	client, err := ssh.Dial("tcp", addr, config)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", addr, err)
	}

	d.logger.Debug("SSH connected",
		slog.String("host", host),
		slog.String("user", user),
		slog.Duration("wait", time.Since(start)),
	)

	return &session{client: client, logger: d.logger}, nil
}

// session wraps an SSH client; each Exec runs in a fresh ssh.Session.
type session struct {
	client *ssh.Client
	logger *slog.Logger
}

// Exec runs one command and captures its standard output. A non-zero
// remote exit status is reported through ok, not err; err means the
// invocation itself failed.
func (s *session) Exec(ctx context.Context, command string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	sess, err := s.client.NewSession()
	if err != nil {
		return "", false, fmt.Errorf("creating SSH session: %w", err)
	}
	defer sess.Close()

	var stdout bytes.Buffer
	sess.Stdout = &stdout

	done := make(chan error, 1)
	go func() {
		done <- sess.Run(command)
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		// Closing the session unblocks Run.
		sess.Close()
		<-done
		return "", false, ctx.Err()
	}

	out := stdout.String()
	if err != nil {
		var exitErr *ssh.ExitError
		if errors.As(err, &exitErr) {
			s.logger.Debug("remote command exited non-zero",
				slog.String("command", command),
				slog.Int("exit_status", exitErr.ExitStatus()),
			)
			return out, false, nil
		}
		return out, false, fmt.Errorf("running %q: %w", command, err)
	}

	return out, true, nil
}

// Close releases the underlying connection.
func (s *session) Close() error {
	return s.client.Close()
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
