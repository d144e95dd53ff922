package internal

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Compile runs every stage on source and returns the generated C# program.
// The first failing stage stops compilation with a *CompileError.
func Compile(source string, opts Options) (string, error) {
	opts = opts.withDefaults()
	log := opts.Logger

	start := time.Now()
	tokens := Tokenize(source)
	log.WithFields(logrus.Fields{
		"stage":   "lex",
		"tokens":  len(tokens),
		"elapsed": time.Since(start),
	}).Debug("tokenized source")

	start = time.Now()
	program, err := Parse(tokens)
	if err != nil {
		log.WithField("stage", "parse").WithError(err).Debug("parsing failed")
		return "", err
	}
	log.WithFields(logrus.Fields{
		"stage":      "parse",
		"statements": len(program.Stmts),
		"elapsed":    time.Since(start),
	}).Debug("parsed program")

	start = time.Now()
	if err := Analyze(program); err != nil {
		log.WithField("stage", "analyze").WithError(err).Debug("analysis failed")
		return "", err
	}
	log.WithFields(logrus.Fields{
		"stage":   "analyze",
		"elapsed": time.Since(start),
	}).Debug("analyzed program")

	start = time.Now()
	code := GenerateWithOptions(program, opts)
	log.WithFields(logrus.Fields{
		"stage":   "generate",
		"bytes":   len(code),
		"elapsed": time.Since(start),
	}).Debug("generated code")

	return code, nil
}

// CompileWithPrinter compiles source read from absPath and reports a failure
// through p. It returns false when compilation failed.
func CompileWithPrinter(absPath, source string, opts Options, p IPrinter) (string, bool) {
	opts = opts.withDefaults()
	opts.Logger = opts.Logger.WithField("file", absPath)

	code, err := Compile(source, opts)
	if err != nil {
		printError(p, err)
		return "", false
	}
	return code, true
}

func printError(p IPrinter, err error) {
	var compileErr *CompileError
	if !errors.As(err, &compileErr) {
		p.Fprintln(os.Stderr, err)
		return
	}
	p.Fprintf(os.Stderr, "Error on line %d\n\t%s\n", compileErr.Line, compileErr.Error())
}
