package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const maxPasscodeInput = 256

var errPasscodeInputTooLong = errors.New("passcode input too long")

// readPasscodeNoEcho reads one line from stdin. Echo is switched off only
// when stdin is a terminal, so piped input works too.
func readPasscodeNoEcho(stdin *os.File) ([]byte, error) {
	if stdin == nil {
		return nil, errors.New("stdin unavailable")
	}
	if !isatty.IsTerminal(stdin.Fd()) && !isatty.IsCygwinTerminal(stdin.Fd()) {
		return readPasscodeLine(stdin)
	}

	restore, err := disableEcho(stdin)
	if err != nil {
		return nil, fmt.Errorf("disable terminal echo: %w", err)
	}
	defer restore()
	return readPasscodeLine(stdin)
}

// readPasscodeLine reads a byte at a time so that consecutive prompts on
// a pipe each consume exactly one line.
func readPasscodeLine(reader io.Reader) ([]byte, error) {
	line := make([]byte, 0, 16)
	next := make([]byte, 1)
	for {
		n, err := reader.Read(next)
		if n == 1 {
			if next[0] == '\n' {
				break
			}
			if len(line) >= maxPasscodeInput {
				return nil, errPasscodeInputTooLong
			}
			line = append(line, next[0])
		}
		if errors.Is(err, io.EOF) {
			if len(line) == 0 {
				return nil, io.ErrUnexpectedEOF
			}
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return bytes.TrimRight(line, "\r"), nil
}
