package main

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/canuck61/calculator"
	"github.com/canuck61/calculator/logging"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const usageLine = "usage: calculator [-h] [-e] [-i] [-d] [-x] [-L level] [-l dir] <expression>"

var errColor = color.New(color.FgRed)

type cli struct {
	ev     *calculator.Evaluator
	log    logrus.FieldLogger
	stdout io.Writer
	stderr io.Writer
}

func usage(w io.Writer) {
	fmt.Fprintln(w, usageLine)
	fmt.Fprintln(w, `
  -h      print this message
  -e      error logging level
  -i      info logging level
  -d      debug logging level
  -x      evaluate the bundled examples
  -L lvl  logging level: debug, info or error
  -l dir  write the log file to dir`)
	help, err := calculator.Help()
	if err != nil {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, help)
}

func (c *cli) fail(err error) int {
	errColor.Fprintf(c.stderr, "Error: %v\n", err)
	c.log.WithError(err).Error("evaluation failed")
	return 1
}

func (c *cli) eval(expr string) (int64, error) {
	seq, err := calculator.Build(expr)
	if err != nil {
		return 0, err
	}
	c.log.WithField("tokens", seq.String()).Debug("built expression stack")
	return c.ev.Evaluate(seq)
}

func (c *cli) run(expr string) int {
	ret, err := c.eval(expr)
	if err != nil {
		return c.fail(err)
	}
	fmt.Fprintln(c.stdout, ret)
	c.log.Infof("Expression Answer: %d", ret)
	return 0
}

func (c *cli) repl(r io.Reader) int {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(c.stdout, "> ")
		if !scanner.Scan() {
			break
		}
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}
		c.run(scanner.Text())
	}
	fmt.Fprintln(c.stdout)
	if err := scanner.Err(); err != nil {
		return c.fail(errors.Wrap(err, "error reading input"))
	}
	return 0
}

func (c *cli) examples() int {
	exprs, err := calculator.Examples()
	if err != nil {
		return c.fail(errors.Wrap(err, "unable to load examples"))
	}
	code := 0
	for _, expr := range exprs {
		ret, err := c.eval(expr)
		if err != nil {
			code = c.fail(errors.Wrapf(err, "%s", expr))
			continue
		}
		fmt.Fprintf(c.stdout, "%s = %d\n", expr, ret)
	}
	return code
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, interactive bool) int {
	opts, optind, err := getopt.Getopts(args, "hedixl:L:")
	if err != nil {
		fmt.Fprintln(stderr, err)
		usage(stderr)
		return 2
	}

	var help, examples, levelError, levelDebug, levelInfo bool
	var dir, levelName string
	for _, opt := range opts {
		switch opt.Option {
		case 'h':
			help = true
		case 'e':
			levelError = true
		case 'd':
			levelDebug = true
		case 'i':
			levelInfo = true
		case 'x':
			examples = true
		case 'l':
			dir = opt.Value
		case 'L':
			levelName = opt.Value
		}
	}
	if help {
		usage(stdout)
		return 0
	}
	rest := args[optind:]
	if len(rest) > 1 {
		usage(stderr)
		return 2
	}

	level := logging.DefaultLevel
	if levelName != "" {
		level, err = logging.ParseLevel(levelName)
		if err != nil {
			fmt.Fprintln(stderr, err)
			usage(stderr)
			return 2
		}
	}
	if levelError {
		level = logrus.ErrorLevel
	}
	if levelDebug {
		level = logrus.DebugLevel
	}
	if levelInfo {
		level = logrus.InfoLevel
	}
	log := logging.New(logging.Config{
		Level:   level,
		Dir:     dir,
		Console: stderr,
	})
	defer func() {
		if err := log.Close(); err != nil {
			fmt.Fprintf(stderr, "WARNING: %v\n", err)
		}
	}()

	c := &cli{
		ev:     calculator.NewEvaluator(calculator.WithLogger(log)),
		log:    log,
		stdout: stdout,
		stderr: stderr,
	}
	switch {
	case examples:
		return c.examples()
	case len(rest) == 1:
		return c.run(rest[0])
	case interactive:
		return c.repl(stdin)
	}
	b, err := ioutil.ReadAll(stdin)
	if err != nil {
		return c.fail(errors.Wrap(err, "error reading input"))
	}
	return c.run(string(b))
}

func main() {
	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr, interactive))
}
