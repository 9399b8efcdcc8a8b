package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ErrNoCommand is returned for an empty command line.
var ErrNoCommand = errors.New("watch: no command")

// Command is a command line to execute on changes.
type Command struct {
	Name      string
	Args      []string
	Dir       string    // working directory; empty means the current one
	Toolchain string    // passed as GOTOOLCHAIN if not empty
	Stdout    io.Writer // nil means os.Stdout
	Stderr    io.Writer // nil means os.Stderr
}

// DefaultCommand runs the tests of all packages.
var DefaultCommand = Command{Name: "go", Args: []string{"test", "./..."}}

// ParseCommand splits a command line at white space. Quoting is not
// supported.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrNoCommand
	}
	return Command{Name: fields[0], Args: fields[1:]}, nil
}

func (c Command) String() string {
	s := strings.Join(append([]string{c.Name}, c.Args...), " ")
	if c.Toolchain != "" {
		s = "GOTOOLCHAIN=" + c.Toolchain + " " + s
	}
	return s
}

// Environ returns the environment for the command: the current process'
// environment, with GOTOOLCHAIN replaced if a toolchain is set.
func (c Command) Environ() []string {
	env := os.Environ()
	if c.Toolchain == "" {
		return env
	}
	kept := env[:0:0]
	for _, kv := range env {
		if !strings.HasPrefix(kv, "GOTOOLCHAIN=") {
			kept = append(kept, kv)
		}
	}
	return append(kept, "GOTOOLCHAIN="+c.Toolchain)
}

// Executor executes commands.
type Executor interface {
	Execute(ctx context.Context, cmd Command) error
}

// ProcessExecutor runs commands as child processes.
type ProcessExecutor struct{}

// Execute starts cmd and waits for it to finish. Cancelling ctx kills the
// child process.
func (ProcessExecutor) Execute(ctx context.Context, cmd Command) error {
	if cmd.Name == "" {
		return ErrNoCommand
	}
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Env = cmd.Environ()
	c.Stdout, c.Stderr = cmd.Stdout, cmd.Stderr
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
	if err := c.Run(); err != nil {
		return fmt.Errorf("watch: %s: %w", cmd, err)
	}
	return nil
}
