package printer_test

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rivethealth/prettier/markup"
	"github.com/rivethealth/prettier/printer"
	"github.com/rivethealth/prettier/subfmt"
)

var update = flag.Bool("update", false, "update golden files")

func TestFormatGolden(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.html"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no golden inputs found under testdata/")
	}

	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), ".html")
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}

			root, err := markup.Parse(string(src))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			markup.Annotate(root)
			got, err := printer.Print(root, printer.Options{Embed: subfmt.Embed()})
			if err != nil {
				t.Fatalf("Print: %v", err)
			}

			goldenPath := strings.TrimSuffix(path, ".html") + ".golden"
			if *update {
				if err := os.WriteFile(goldenPath, []byte(got), 0644); err != nil {
					t.Fatal(err)
				}
				return
			}

			want, err := os.ReadFile(goldenPath)
			if err != nil {
				t.Fatalf("missing golden file, run with -update: %v", err)
			}
			if got != string(want) {
				t.Errorf("output does not match %s\ngot:\n%s\nwant:\n%s", goldenPath, got, want)
			}
		})
	}
}
