// Package main provides weftgen, the registration-code generator for
// weft widget toolkits.
//
// Given a Go package of widget types, weftgen scans the exported structs
// and their single-parameter Set* methods, the New* constructor functions,
// and the constant groups of named integer types, and emits one Go source
// file that registers everything explicitly: element descriptors with
// convention-derived keywords, setter tables, constructor overloads, and
// constant tables. The generated tables are validated at registration
// time, replacing call-time reflection lookups with declarations the
// compiler has already checked.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

func main() {
	var (
		pkgPattern = flag.String("pkg", ".", "package pattern to scan")
		outPath    = flag.String("out", "zz_generated_bindings.go", "output file, relative to the scanned package")
		configPath = flag.String("config", "weftgen.yaml", "optional config file")
		dryRun     = flag.Bool("dry-run", false, "print the generated source instead of writing it")
	)
	flag.Parse()

	diag := newDiagnostics(isatty.IsTerminal(os.Stderr.Fd()))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		diag.errorf("config: %v", err)
		os.Exit(1)
	}

	scanned, err := scanPackage(*pkgPattern, cfg, diag)
	if err != nil {
		diag.errorf("scan: %v", err)
		os.Exit(1)
	}
	if len(scanned.Widgets) == 0 {
		diag.errorf("no widget types found in %s", *pkgPattern)
		os.Exit(1)
	}

	src, err := emit(scanned, cfg)
	if err != nil {
		diag.errorf("emit: %v", err)
		os.Exit(1)
	}

	if *dryRun {
		fmt.Print(string(src))
		return
	}
	outFile := scanned.FileInPackage(*outPath)
	if err := os.WriteFile(outFile, src, 0o644); err != nil {
		diag.errorf("write: %v", err)
		os.Exit(1)
	}
	diag.successf("wrote %s: %d widgets, %d setters, %d constant tables",
		outFile, len(scanned.Widgets), scanned.SetterCount(), len(scanned.Enums))
}

// diagnostics prints colored status lines when stderr is a terminal.
type diagnostics struct {
	color bool
}

func newDiagnostics(color bool) *diagnostics {
	return &diagnostics{color: color}
}

func (d *diagnostics) paint(code, msg string) string {
	if !d.color {
		return msg
	}
	return "\033[" + code + "m" + msg + "\033[0m"
}

func (d *diagnostics) errorf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, d.paint("31", "error: "+fmt.Sprintf(format, args...)))
}

func (d *diagnostics) warnf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, d.paint("33", "warning: "+fmt.Sprintf(format, args...)))
}

func (d *diagnostics) successf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, d.paint("32", fmt.Sprintf(format, args...)))
}
