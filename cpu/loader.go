// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/regvm/internal"
)

const (
	LINE_LIMIT    = 20  // Maximum characters in a line, excluding the terminator.
	PROGRAM_LIMIT = 100 // Maximum lines in a program.
)

// Predefined system defines, visible to $() expressions.
var sysDefine = map[string]string{
	"IP":            "0",
	"REGISTERS":     fmt.Sprintf("%d", REGISTER_COUNT),
	"LINE_LIMIT":    fmt.Sprintf("%d", LINE_LIMIT),
	"PROGRAM_LIMIT": fmt.Sprintf("%d", PROGRAM_LIMIT),
}

var exprRegexp = regexp.MustCompile(`\$\([^\$]*\)`)

// Loader reads program text into a Program.
//
// Whole words matching a predefine are replaced by its value, and $(...)
// expressions are evaluated at load time. Neither changes the number of
// lines, so jump targets remain raw line indices.
type Loader struct {
	Verbose      bool // If set, verbosely logs the loaded lines.
	LineLimit    int  // Maximum line length. Zero selects LINE_LIMIT.
	ProgramLimit int  // Maximum program lines. Zero selects PROGRAM_LIMIT.

	predefine map[string]string // User predefines.
	Define    map[string]string // Defines in effect during the last load.
}

// Predefine defines a new word or redefines an existing word.
func (ld *Loader) Predefine(name string, value string) {
	if ld.predefine == nil {
		ld.predefine = map[string]string{name: value}
	} else {
		ld.predefine[name] = value
	}
}

// Defines returns an iterator over the system defines and the predefines.
func (ld *Loader) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(sysDefine), maps.All(ld.predefine))
}

// Parse reads a program from an input stream.
func (ld *Loader) Parse(input io.Reader) (prog *Program, err error) {
	var lines []string

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	return ld.ParseLines(lines)
}

// Load reads a program from a Source. Source errors are returned as-is.
func (ld *Loader) Load(src Source) (prog *Program, err error) {
	lines, err := src.Load()
	if err != nil {
		return
	}

	return ld.ParseLines(lines)
}

// ParseLines builds a program from lines of text.
func (ld *Loader) ParseLines(lines []string) (prog *Program, err error) {
	var line string
	var lineno int

	defer func() {
		if err != nil {
			prog = nil
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	lineLimit := ld.LineLimit
	if lineLimit <= 0 {
		lineLimit = LINE_LIMIT
	}
	programLimit := ld.ProgramLimit
	if programLimit <= 0 {
		programLimit = PROGRAM_LIMIT
	}

	ld.Define = maps.Collect(ld.Defines())

	prog = &Program{}

	for lineno, line = range lines {
		line = strings.TrimSuffix(line, "\r")

		if ld.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		if lineno >= programLimit {
			err = ErrProgramTooLong
			return
		}

		if len(line) > lineLimit {
			err = ErrLineTooLong
			return
		}

		var expanded string
		expanded, err = ld.expandLine(line, lineno)
		if err != nil {
			return
		}

		prog.Lines = append(prog.Lines, expanded)
	}

	return
}

// expandLine evaluates $() expressions, then replaces predefined words.
func (ld *Loader) expandLine(line string, lineno int) (out string, err error) {
	ld.Define["IP"] = fmt.Sprintf("%d", lineno)

	out = exprRegexp.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := ld.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	if len(ld.predefine) == 0 {
		return
	}

	words := strings.Fields(out)
	changed := false
	for n, word := range words {
		value, ok := ld.predefine[word]
		if ok {
			words[n] = value
			changed = true
		}
	}

	if changed {
		out = strings.Join(words, " ")
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (ld *Loader) parenEval(expr string) (value int32, err error) {
	thread := starlark.Thread{Name: "regvm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range ld.Define {
		v64, perr := strconv.ParseInt(str, 10, 64)
		if perr != nil {
			// Ignore non-integer defines. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 > math.MaxInt32 || st_int64 < math.MinInt32 {
		err = ErrParseExpression(expr)
		return
	}

	value = int32(st_int64)
	return
}
