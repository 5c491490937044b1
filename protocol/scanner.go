package protocol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/flowmatch/core"
)

// maxPrealloc caps slice capacity taken from a declared count; longer inputs
// grow by append, shorter ones fail on the first missing token.
const maxPrealloc = 1 << 12

// ErrMalformedInput is returned when a message violates its text format.
var ErrMalformedInput = errors.New("protocol: malformed input")

// tokens reads whitespace-separated integers, tracking the token position for
// error messages.
type tokens struct {
	sc  *bufio.Scanner
	pos int
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokens{sc: sc}
}

// readInt returns the next token as an int.
func (t *tokens) readInt(name string) (int, error) {
	n, err := t.readInt64(name)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (t *tokens) readInt64(name string) (int64, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("reading %s: %w", name, err)
		}
		return 0, fmt.Errorf("token %d: expected %s, got end of input: %w", t.pos+1, name, ErrMalformedInput)
	}
	t.pos++
	n, err := strconv.ParseInt(t.sc.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token %d: %s %q is not an integer: %w", t.pos, name, t.sc.Text(), ErrMalformedInput)
	}
	return n, nil
}

// readCount returns the next token as a non-negative int.
func (t *tokens) readCount(name string) (int, error) {
	n, err := t.readInt(name)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("token %d: %s must be non-negative, got %d: %w", t.pos, name, n, ErrMalformedInput)
	}
	return n, nil
}

// readSize returns the next token as a node count in [0, core.MaxNodes].
func (t *tokens) readSize(name string) (int, error) {
	n, err := t.readCount(name)
	if err != nil {
		return 0, err
	}
	if n > core.MaxNodes {
		return 0, fmt.Errorf("token %d: %s %d exceeds %d nodes: %w", t.pos, name, n, core.MaxNodes, ErrMalformedInput)
	}
	return n, nil
}

// readInts reads len(names) integers in order.
func (t *tokens) readInts(names ...string) ([]int, error) {
	out := make([]int, len(names))
	for i, name := range names {
		n, err := t.readInt(name)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
