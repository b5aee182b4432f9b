package cmdexec

import (
	"context"
	"fmt"
	"strings"
)

// FakeCall records a single invocation against the FakeCommander.
type FakeCall struct {
	Name string
	Args []string
}

// FakeResponse is a canned result for a command invocation.
type FakeResponse struct {
	Output []byte
	Err    error
}

// FakeCommander is an in-memory Commander for tests. Responses are keyed by
// the full command line ("name arg1 arg2"); unmatched commands fall back to
// a prefix match on the command name alone.
type FakeCommander struct {
	Responses map[string]FakeResponse
	Missing   map[string]bool
	Calls     []FakeCall
}

// NewFakeCommander creates an empty fake.
func NewFakeCommander() *FakeCommander {
	return &FakeCommander{
		Responses: make(map[string]FakeResponse),
		Missing:   make(map[string]bool),
	}
}

// On registers a canned response for the exact command line.
func (c *FakeCommander) On(cmdline string, output string, err error) {
	c.Responses[cmdline] = FakeResponse{Output: []byte(output), Err: err}
}

// Run records the call and returns the canned response.
func (c *FakeCommander) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	c.Calls = append(c.Calls, FakeCall{Name: name, Args: args})

	key := strings.TrimSpace(name + " " + strings.Join(args, " "))
	if resp, ok := c.Responses[key]; ok {
		return resp.Output, resp.Err
	}
	if resp, ok := c.Responses[name]; ok {
		return resp.Output, resp.Err
	}
	return nil, fmt.Errorf("fake commander: no response registered for %q", key)
}

// LookPath reports the binary as present unless marked missing.
func (c *FakeCommander) LookPath(name string) (string, error) {
	if c.Missing[name] {
		return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
	}
	return "/usr/bin/" + name, nil
}

// CallLines returns the recorded calls as flat command lines, for assertions.
func (c *FakeCommander) CallLines() []string {
	lines := make([]string, 0, len(c.Calls))
	for _, call := range c.Calls {
		lines = append(lines, strings.TrimSpace(call.Name+" "+strings.Join(call.Args, " ")))
	}
	return lines
}
