package calculator

import (
	"bufio"
	"io/ioutil"
	"strings"

	_ "github.com/canuck61/calculator/statik"
	"github.com/rakyll/statik/fs"
)

//go:generate statik -src=lib

func readLib(name string) (string, error) {
	statikFS, err := fs.New()
	if err != nil {
		return "", err
	}
	f, err := statikFS.Open("/" + name)
	if err != nil {
		return "", err
	}
	defer f.Close()

	b, err := ioutil.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Help returns the description of the expression language printed by the
// command line tool.
func Help() (string, error) {
	return readLib("help.txt")
}

// Examples returns the bundled sample expressions, skipping blank lines and
// comments.
func Examples() ([]string, error) {
	s, err := readLib("examples.txt")
	if err != nil {
		return nil, err
	}
	var exprs []string
	scanner := bufio.NewScanner(strings.NewReader(s))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		exprs = append(exprs, line)
	}
	return exprs, scanner.Err()
}
