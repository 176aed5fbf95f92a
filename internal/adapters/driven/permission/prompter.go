package permission

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driven"
)

// Ensure Prompter implements the interface.
var _ driven.PermissionRequester = (*Prompter)(nil)

const promptText = "Storage Permission Required\n" +
	"This app needs access to your storage to download payslips.\n" +
	"Allow? [y/N] "

// Prompter asks the user for a storage grant on a terminal.
type Prompter struct {
	mu          sync.Mutex
	in          *bufio.Reader
	out         io.Writer
	interactive bool

	// inflight is a read abandoned by a cancelled request. The next
	// request takes its line rather than starting a second reader.
	inflight chan readResult
}

type readResult struct {
	line string
	err  error
}

// NewTerminalPrompter prompts on stdin/stderr. It refuses to prompt when
// stdin is not a terminal.
func NewTerminalPrompter() *Prompter {
	return NewPrompter(os.Stdin, os.Stderr, term.IsTerminal(int(os.Stdin.Fd())))
}

// NewPrompter creates a prompter over arbitrary streams.
func NewPrompter(in io.Reader, out io.Writer, interactive bool) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, interactive: interactive}
}

// RequestStoragePermission implements driven.PermissionRequester.
// Concurrent requests are asked one at a time.
func (p *Prompter) RequestStoragePermission(ctx context.Context) (bool, error) {
	if !p.interactive {
		return false, domain.ErrNotInteractive
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return false, err
	}
	if _, err := fmt.Fprint(p.out, promptText); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case res := <-p.readLine():
		p.inflight = nil
		if res.err != nil && res.line == "" {
			return false, fmt.Errorf("read answer: %w", res.err)
		}
		switch strings.ToLower(strings.TrimSpace(res.line)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}

// readLine returns the pending read, starting one if none is in flight.
// Callers hold p.mu.
func (p *Prompter) readLine() <-chan readResult {
	if p.inflight == nil {
		ch := make(chan readResult, 1)
		p.inflight = ch
		go func() {
			line, err := p.in.ReadString('\n')
			ch <- readResult{line: line, err: err}
		}()
	}
	return p.inflight
}
