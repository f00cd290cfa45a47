package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// IO provides the prompt/print primitives the menus run on. Input is read
// line-wise; answers are whitespace-trimmed.
type IO struct {
	in  *bufio.Scanner
	out io.Writer
	eof bool
}

func NewIO(in io.Reader, out io.Writer) *IO {
	return &IO{in: bufio.NewScanner(in), out: out}
}

func (t *IO) Prompt(label string) string {
	fmt.Fprint(t.out, label)
	if !t.in.Scan() {
		t.eof = true
		return ""
	}
	return strings.TrimSpace(t.in.Text())
}

func (t *IO) Printf(format string, args ...any) {
	fmt.Fprintf(t.out, format, args...)
}

// promptFloat re-prompts until the input parses as a non-negative number.
func (t *IO) promptFloat(label, complaint string) (float64, bool) {
	for {
		raw := t.Prompt(label)
		if t.eof {
			return 0, false
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err == nil && value >= 0 {
			return value, true
		}
		t.Printf("%s\n", complaint)
	}
}

// promptRating re-prompts until the input is an integer in [1,5].
func (t *IO) promptRating(label string) (int, bool) {
	for {
		raw := t.Prompt(label)
		if t.eof {
			return 0, false
		}
		rating, err := strconv.Atoi(raw)
		if err != nil {
			t.Printf("Invalid rating. Enter an integer between 1 and 5.\n")
			continue
		}
		if rating < 1 || rating > 5 {
			t.Printf("Rating must be between 1 and 5.\n")
			continue
		}
		return rating, true
	}
}

// promptID parses a positive id; blank or malformed input aborts the
// current operation.
func (t *IO) promptID(label string) (int64, bool) {
	raw := t.Prompt(label)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		t.Printf("Invalid ID.\n")
		return 0, false
	}
	return id, true
}
