package check

import "fmt"

// CustomCommand runs an arbitrary command on the host. It passes when
// the remote exit status is zero; the captured output is always
// included in the report.
type CustomCommand struct {
	// Command is executed verbatim.
	Cmd string `yaml:"command"`
}

// Kind returns the catalog name.
func (c *CustomCommand) Kind() string { return KindCustom }

// Validate checks that a command is configured.
func (c *CustomCommand) Validate() error {
	if c.Cmd == "" {
		return fmt.Errorf("custom_command: command must not be empty")
	}
	return nil
}

// Command returns the configured command unchanged.
func (c *CustomCommand) Command() string { return c.Cmd }

// Parse wraps the output in a code block under a header naming the
// command.
func (c *CustomCommand) Parse(out string, ok bool) Result {
	status := Pass
	glyph := "⚠️"
	if !ok {
		status = Fail
		glyph = "❌"
	}

	detail := fmt.Sprintf("%s `%s`\n```\n%s```", glyph, c.Cmd, ensureTrailingNewline(out))
	return Result{
		Check:  KindCustom,
		Status: status,
		Detail: detail,
	}
}

func ensureTrailingNewline(s string) string {
	if s == "" || s[len(s)-1] == '\n' {
		return s
	}
	return s + "\n"
}
