package internalcheck

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const modulePath = "github.com/rlib-dev/rlib-go"

// loadModule lists every package in the module, including files behind the
// rlib_ffi tag.
func loadModule(t *testing.T, mode packages.LoadMode) []*packages.Package {
	t.Helper()

	cfg := &packages.Config{
		Mode:       mode,
		Dir:        filepath.Join("..", "..", ".."),
		BuildFlags: []string{"-tags=rlib_ffi"},
	}
	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	if len(pkgs) == 0 {
		t.Fatal("no packages loaded")
	}
	return pkgs
}

func importsOf(t *testing.T, path string) []string {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), path, nil, parser.ImportsOnly)
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	var out []string
	for _, spec := range f.Imports {
		p, err := strconv.Unquote(spec.Path.Value)
		if err == nil {
			out = append(out, p)
		}
	}
	return out
}

// TestForeignCallIsolation keeps cgo in cmd/librlib and unsafe in
// internal/backend.
func TestForeignCallIsolation(t *testing.T) {
	allowed := map[string]map[string]bool{
		"C": {
			modulePath + "/cmd/librlib": true,
		},
		"unsafe": {
			modulePath + "/internal/backend": true,
		},
	}

	var findings []string
	for _, pkg := range loadModule(t, packages.NeedName|packages.NeedFiles) {
		for _, file := range pkg.GoFiles {
			for _, imp := range importsOf(t, file) {
				owners, restricted := allowed[imp]
				if restricted && !owners[pkg.PkgPath] {
					findings = append(findings, fmt.Sprintf("%s imports %q", file, imp))
				}
			}
		}
	}

	if len(findings) > 0 {
		sort.Strings(findings)
		t.Fatalf("foreign-call isolation violation:\n%s", strings.Join(findings, "\n"))
	}
}

// TestLibraryPackagesDoNotPrint rejects fmt.Print*, log.* and println in
// non-main packages; they must log through pkg/rlib/logging.
func TestLibraryPackagesDoNotPrint(t *testing.T) {
	var findings []string

	mode := packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles
	for _, pkg := range loadModule(t, mode) {
		if pkg.Name == "main" {
			continue
		}
		for _, file := range pkg.Syntax {
			ast.Inspect(file, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}

				switch fun := call.Fun.(type) {
				case *ast.Ident:
					if fun.Name == "println" || fun.Name == "print" {
						if _, builtin := pkg.TypesInfo.Uses[fun].(*types.Builtin); builtin {
							findings = append(findings, pkg.Fset.Position(call.Pos()).String()+": "+fun.Name)
						}
					}
				case *ast.SelectorExpr:
					obj := pkg.TypesInfo.Uses[fun.Sel]
					if obj == nil || obj.Pkg() == nil {
						return true
					}
					if printsDirectly(obj.Pkg().Path(), obj.Name()) {
						findings = append(findings, fmt.Sprintf("%s: %s.%s", pkg.Fset.Position(call.Pos()), obj.Pkg().Path(), obj.Name()))
					}
				}
				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Fatalf("direct output in library package:\n%s", strings.Join(findings, "\n"))
	}
}

func printsDirectly(pkgPath, name string) bool {
	switch pkgPath {
	case "fmt":
		return name == "Print" || name == "Printf" || name == "Println"
	case "log":
		return strings.HasPrefix(name, "Print") || strings.HasPrefix(name, "Fatal") || strings.HasPrefix(name, "Panic")
	default:
		return false
	}
}
