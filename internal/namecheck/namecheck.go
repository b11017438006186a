// SPDX-License-Identifier: MIT

// Package namecheck inspects Go source for violations of the naming
// conventions documented in the README: MixedCaps identifiers, lowercase
// package names, no Get prefixes on getters and no package-name stutter.
// It reads source only; it never rewrites anything.
package namecheck

import (
	"fmt"
	"go/ast"
	"go/token"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/tools/go/packages"
)

// Rule identifies one naming convention.
type Rule string

const (
	// RuleUnderscore flags exported identifiers containing underscores.
	RuleUnderscore Rule = "no-underscores"
	// RuleAllCaps flags SCREAMING_SNAKE constant names.
	RuleAllCaps Rule = "no-all-caps"
	// RuleGetter flags Get-prefixed getters.
	RuleGetter Rule = "no-get-prefix"
	// RulePackageName flags package names that are not short lowercase words.
	RulePackageName Rule = "package-name"
	// RuleStutter flags exported names that repeat the package name.
	RuleStutter Rule = "no-stutter"
)

// Violation is a single naming finding.
type Violation struct {
	Pos     token.Position `json:"pos"`
	Rule    Rule           `json:"rule"`
	Ident   string         `json:"ident"`
	Message string         `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s: %s (%s)", v.Pos, v.Ident, v.Message, v.Rule)
}

// Check loads the packages matched by patterns rooted at dir and returns all
// naming violations, ordered by position.
func Check(dir string, patterns ...string) ([]Violation, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo,
		Dir:   dir,
		Tests: false,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}
	if n := packages.PrintErrors(pkgs); n > 0 {
		return nil, fmt.Errorf("%d packages had load errors", n)
	}

	var out []Violation
	for _, pkg := range pkgs {
		out = append(out, checkPackage(pkg)...)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Pos, out[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	return out, nil
}

func checkPackage(pkg *packages.Package) []Violation {
	var out []Violation

	if v, ok := checkPackageName(pkg); ok {
		out = append(out, v)
	}

	for _, file := range pkg.Syntax {
		pos := func(p token.Pos) token.Position { return pkg.Fset.Position(p) }
		ast.Inspect(file, func(n ast.Node) bool {
			switch decl := n.(type) {
			case *ast.GenDecl:
				out = append(out, checkGenDecl(pkg.Name, decl, pos)...)
			case *ast.FuncDecl:
				out = append(out, checkFuncDecl(pkg.Name, decl, pos)...)
			}
			return true
		})
	}
	return out
}

func checkPackageName(pkg *packages.Package) (Violation, bool) {
	name := pkg.Name
	if name == "" || name == "main" {
		return Violation{}, false
	}
	for _, r := range name {
		if r == '_' || unicode.IsUpper(r) {
			v := Violation{
				Rule:    RulePackageName,
				Ident:   name,
				Message: "package names are short, lowercase, single words",
			}
			if len(pkg.Syntax) > 0 {
				v.Pos = pkg.Fset.Position(pkg.Syntax[0].Name.Pos())
			}
			return v, true
		}
	}
	return Violation{}, false
}

func checkGenDecl(pkgName string, decl *ast.GenDecl, pos func(token.Pos) token.Position) []Violation {
	var out []Violation
	for _, spec := range decl.Specs {
		switch s := spec.(type) {
		case *ast.ValueSpec:
			for _, name := range s.Names {
				out = append(out, checkIdent(pkgName, name, decl.Tok == token.CONST, pos)...)
			}
		case *ast.TypeSpec:
			out = append(out, checkIdent(pkgName, s.Name, false, pos)...)
		}
	}
	return out
}

func checkFuncDecl(pkgName string, decl *ast.FuncDecl, pos func(token.Pos) token.Position) []Violation {
	name := decl.Name
	out := checkIdent(pkgName, name, false, pos)

	// Getter rule: a Get-prefixed method or function with no parameters and a
	// single result should drop the prefix (GetName -> Name).
	if strings.HasPrefix(name.Name, "Get") && len(name.Name) > 3 &&
		unicode.IsUpper(rune(name.Name[3])) &&
		decl.Type.Params.NumFields() == 0 &&
		decl.Type.Results.NumFields() == 1 {
		out = append(out, Violation{
			Pos:     pos(name.Pos()),
			Rule:    RuleGetter,
			Ident:   name.Name,
			Message: fmt.Sprintf("getters drop the Get prefix: use %s", name.Name[3:]),
		})
	}
	return out
}

func checkIdent(pkgName string, ident *ast.Ident, isConst bool, pos func(token.Pos) token.Position) []Violation {
	name := ident.Name
	if name == "_" {
		return nil
	}
	var out []Violation

	if ident.IsExported() && strings.Contains(name, "_") {
		out = append(out, Violation{
			Pos:     pos(ident.Pos()),
			Rule:    RuleUnderscore,
			Ident:   name,
			Message: "exported identifiers use MixedCaps, not underscores",
		})
	}

	if isConst && isAllCaps(name) {
		out = append(out, Violation{
			Pos:     pos(ident.Pos()),
			Rule:    RuleAllCaps,
			Ident:   name,
			Message: "constants use MixedCaps, not SCREAMING_SNAKE",
		})
	}

	if ident.IsExported() && stutters(pkgName, name) {
		out = append(out, Violation{
			Pos:     pos(ident.Pos()),
			Rule:    RuleStutter,
			Ident:   name,
			Message: fmt.Sprintf("%s.%s stutters: drop the package name", pkgName, name),
		})
	}
	return out
}

// isAllCaps reports whether name looks like a C-style constant: at least two
// letters, all upper case, possibly with underscores or digits.
func isAllCaps(name string) bool {
	letters := 0
	for _, r := range name {
		switch {
		case unicode.IsUpper(r):
			letters++
		case r == '_' || unicode.IsDigit(r):
		default:
			return false
		}
	}
	return letters >= 2
}

// stutters reports whether an exported name begins with its own package name,
// as in staff.StaffService.
func stutters(pkgName, name string) bool {
	if len(name) <= len(pkgName) {
		return false
	}
	if !strings.EqualFold(name[:len(pkgName)], pkgName) {
		return false
	}
	// The character after the prefix must start a new word, otherwise names
	// like storage.StorageClass would be false positives for package store.
	return unicode.IsUpper(rune(name[len(pkgName)]))
}
