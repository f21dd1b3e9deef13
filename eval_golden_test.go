package calculator

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGolden(t *testing.T) {
	fns, err := filepath.Glob("testdir/*.calc")
	if err != nil {
		t.Fatal(err)
	}
	if len(fns) == 0 {
		t.Fatal("no test files")
	}

	for _, fn := range fns {
		t.Log(fn)
		b, err := ioutil.ReadFile(fn)
		if err != nil {
			t.Fatal(err)
		}
		base := fn[:len(fn)-len(".calc")]

		ret, err := Eval(string(b))
		if err != nil {
			want, err2 := ioutil.ReadFile(base + ".err")
			if err2 != nil {
				t.Errorf("%s: %v", fn, err)
				continue
			}
			if diff := cmp.Diff(strings.TrimSpace(string(want)), err.Error()); diff != "" {
				t.Errorf("%s: %s", fn, diff)
			}
			continue
		}
		want, err := ioutil.ReadFile(base + ".out")
		if err != nil {
			t.Errorf("%s: got %d, want an error", fn, ret)
			continue
		}
		if diff := cmp.Diff(strings.TrimSpace(string(want)), fmt.Sprint(ret)); diff != "" {
			t.Errorf("%s: %s", fn, diff)
		}
	}
}
