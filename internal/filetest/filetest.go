// Package filetest provides helpers for golden file tests: each source file
// in a testdata input directory has its expected outputs stored in a result
// directory, under the source file name with an added extension (e.g.
// "x.bx.want" and "x.bx.err" for the source file "x.bx").
package filetest

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/kylelemons/godebug/diff"
)

var testUpdateAllTests = flag.Bool("test.update-all-tests", false, "If set, sets all test.update-*-tests.")

// SourceFiles returns the list of regular files in dir with the specified
// extension, sorted by name. If ext is empty, all files are returned.
func SourceFiles(t *testing.T, dir, ext string) []os.FileInfo {
	t.Helper()

	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}

	dents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	var res []os.FileInfo
	for _, dent := range dents {
		if !dent.Type().IsRegular() || (ext != "" && filepath.Ext(dent.Name()) != ext) {
			continue
		}
		fi, err := dent.Info()
		if err != nil {
			t.Fatal(err)
		}
		res = append(res, fi)
	}
	if len(res) == 0 {
		t.Fatalf("no %s source file in %s", ext, dir)
	}
	return res
}

// LogSource logs the content of the source file fi in dir if the test failed
// and is running in verbose mode.
func LogSource(t *testing.T, dir string, fi os.FileInfo) {
	t.Helper()
	if !t.Failed() || !testing.Verbose() {
		return
	}
	b, err := os.ReadFile(filepath.Join(dir, fi.Name()))
	if err != nil {
		t.Log(err)
		return
	}
	t.Logf("source file:\n%s\n", b)
}

// DiffOutput compares output with the ".want" golden file of fi in
// resultDir, or updates the golden file if updateFlag is set.
func DiffOutput(t *testing.T, fi os.FileInfo, output, resultDir string, updateFlag *bool) {
	t.Helper()
	DiffCustom(t, fi, "output", ".want", output, resultDir, updateFlag)
}

// DiffErrors compares the errors output with the ".err" golden file of fi in
// resultDir, or updates the golden file if updateFlag is set. A missing
// golden file is the same as an empty one.
func DiffErrors(t *testing.T, fi os.FileInfo, output, resultDir string, updateFlag *bool) {
	t.Helper()
	DiffCustom(t, fi, "errors", ".err", output, resultDir, updateFlag)
}

// DiffCustom is the general form of DiffOutput and DiffErrors: label
// identifies the kind of output in test logs and ext is the extension of the
// golden file, including the leading dot.
func DiffCustom(t *testing.T, fi os.FileInfo, label, ext, output, resultDir string, updateFlag *bool) {
	t.Helper()

	goldFile := filepath.Join(resultDir, fi.Name()+ext)
	if *updateFlag || *testUpdateAllTests {
		if output == "" {
			// keep the result directory free of empty golden files
			if err := os.Remove(goldFile); err != nil && !os.IsNotExist(err) {
				t.Fatal(err)
			}
			return
		}
		if err := os.WriteFile(goldFile, []byte(output), 0600); err != nil {
			t.Fatal(err)
		}
		return
	}

	want, err := os.ReadFile(goldFile)
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	if testing.Verbose() {
		t.Logf("got %s:\n%s\n", label, output)
	}
	if patch := diff.Diff(string(want), output); patch != "" {
		if testing.Verbose() {
			t.Logf("want %s:\n%s\n", label, want)
		}
		t.Errorf("diff %s:\n%s\n", label, patch)
	}
}
