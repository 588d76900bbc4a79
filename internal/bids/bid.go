// Package bids reads (hand, bid) records and ranks them into winnings.
package bids

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lox/camelcards/camel"
)

// Bid is a hand and the amount wagered on it.
type Bid struct {
	Hand   camel.Hand
	Amount int64
	Line   int // 1-based source line, 0 when not read from input
}

func (b Bid) String() string {
	return fmt.Sprintf("(%s, %d)", b.Hand, b.Amount)
}

// RecordParseError reports a malformed input line.
type RecordParseError struct {
	Line int
	Text string
	Err  error
}

func (e *RecordParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *RecordParseError) Unwrap() error { return e.Err }

// ResourceError reports an input that could not be opened or read.
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// Parse parses a single "<hand> <amount>" record.
func Parse(line string, lineNo int, rules camel.Rules) (Bid, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Bid{}, &RecordParseError{
			Line: lineNo,
			Text: line,
			Err:  fmt.Errorf("want 2 fields, got %d", len(fields)),
		}
	}

	hand, err := rules.ParseHand(fields[0])
	if err != nil {
		return Bid{}, &RecordParseError{Line: lineNo, Text: line, Err: err}
	}

	amount, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Bid{}, &RecordParseError{
			Line: lineNo,
			Text: line,
			Err:  fmt.Errorf("invalid bid %q: %w", fields[1], err),
		}
	}

	return Bid{Hand: hand, Amount: amount, Line: lineNo}, nil
}

// Read parses one record per line. Blank lines are only allowed at the
// end of the input; a blank line followed by a record is malformed. The
// first malformed record aborts the read.
func Read(r io.Reader, rules camel.Rules) ([]Bid, error) {
	var bids []Bid
	scanner := bufio.NewScanner(r)
	lineNo := 0
	blankLine := 0 // first blank line since the last record
	var blankText string
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if blankLine == 0 {
				blankLine, blankText = lineNo, line
			}
			continue
		}
		if blankLine != 0 {
			return nil, &RecordParseError{
				Line: blankLine,
				Text: blankText,
				Err:  errors.New("want 2 fields, got 0"),
			}
		}
		bid, err := Parse(line, lineNo, rules)
		if err != nil {
			return nil, err
		}
		bids = append(bids, bid)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return bids, nil
}

// ReadFile reads records from path; "-" reads standard input.
func ReadFile(path string, rules camel.Rules) ([]Bid, error) {
	if path == "-" {
		bids, err := Read(os.Stdin, rules)
		return bids, wrapResource("stdin", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}
	defer f.Close()

	bids, err := Read(f, rules)
	return bids, wrapResource(path, err)
}

// wrapResource leaves record errors alone and wraps read failures.
func wrapResource(path string, err error) error {
	if err == nil {
		return nil
	}
	var recErr *RecordParseError
	if errors.As(err, &recErr) {
		return err
	}
	return &ResourceError{Path: path, Err: err}
}
