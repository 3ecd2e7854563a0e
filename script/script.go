// Package script holds the embedded bootstrap source (spec.md §4.5 step
// 5) and the minimal declarative interpreter that parses it. The full
// expression-language compiler/interpreter is an external collaborator
// (spec.md §1); this package only understands the small DSL the
// bootstrap script is written in — a class header, an optional
// superclass, and a body of `foreign`/`static foreign` signature
// declarations — just enough to drive corevm.Bootstrap's step 6 (look
// up each declared class and register matching primitives).
package script

import (
	"fmt"
	"strings"
)

// Result mirrors the wrenInterpret contract of spec.md §6.
type Result int

const (
	Success Result = iota
	CompileError
	RuntimeError
)

func (r Result) String() string {
	switch r {
	case Success:
		return "SUCCESS"
	case CompileError:
		return "COMPILE_ERROR"
	case RuntimeError:
		return "RUNTIME_ERROR"
	default:
		return "UNKNOWN"
	}
}

// Member is one `foreign` (or `static foreign`) line inside a class body.
type Member struct {
	Signature string
	IsStatic  bool
}

// ClassDecl is one `class Name is Super { ... }` block.
type ClassDecl struct {
	Name       string
	Superclass string // "" when no `is` clause is present
	Members    []Member
}

// Declarer is the callback surface corevm.VM implements so Interpret can
// report each declaration without this package importing corevm
// (the same import-cycle-avoidance shape as value.PrimitiveContext).
type Declarer interface {
	// DeclareClass registers a new class named decl.Name in moduleName,
	// bound to decl.Superclass (already declared, or "" for none), and
	// reserves a method slot for every member. Returning an error aborts
	// interpretation with RuntimeError.
	DeclareClass(moduleName string, decl ClassDecl) error
}

// CompileErr carries a line number and message for a COMPILE_ERROR
// result, the shape spec.md §6's error callback expects for `kind ==
// COMPILE`.
type CompileErr struct {
	Line    int
	Message string
}

func (e *CompileErr) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Interpret parses source as a sequence of class declarations and calls
// d.DeclareClass for each, in textual order — the only order that
// matters, since a later class's `is` clause may name an earlier one.
// It returns Success once every declaration in source has been
// delivered, CompileError on a syntax problem (with err set to a
// *CompileErr), or RuntimeError if a Declarer call fails (err is
// whatever DeclareClass returned). RuntimeError can only originate from
// the Declarer callback: this DSL has no statement or expression forms
// of its own to fail at run time.
func Interpret(d Declarer, moduleName, source string) (Result, error) {
	decls, cerr := parse(source)
	if cerr != nil {
		return CompileError, cerr
	}
	for _, decl := range decls {
		if err := d.DeclareClass(moduleName, decl); err != nil {
			return RuntimeError, err
		}
	}
	return Success, nil
}

// parse is a tiny hand-rolled line scanner, not a tokenizing lexer —
// the grammar is regular enough (one declaration per logical line, no
// nested expressions) that a line-oriented scan is the idiomatic-enough
// match for what this DSL actually needs.
func parse(source string) ([]ClassDecl, *CompileErr) {
	var decls []ClassDecl
	var cur *ClassDecl
	depth := 0

	for i, rawLine := range strings.Split(source, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		switch {
		case cur == nil:
			decl, err := parseClassHeader(line, lineNo)
			if err != nil {
				return nil, err
			}
			cur = decl
			depth = 1
			if strings.HasSuffix(line, "}") {
				decls = append(decls, *cur)
				cur = nil
				depth = 0
			}

		case line == "}":
			depth--
			if depth != 0 {
				return nil, &CompileErr{Line: lineNo, Message: "unbalanced '}'."}
			}
			decls = append(decls, *cur)
			cur = nil

		default:
			member, err := parseMember(line, lineNo)
			if err != nil {
				return nil, err
			}
			cur.Members = append(cur.Members, member)
		}
	}

	if cur != nil {
		return nil, &CompileErr{Line: len(strings.Split(source, "\n")), Message: "unterminated class body."}
	}
	return decls, nil
}

// parseClassHeader accepts `class Name {` or `class Name is Super {`,
// with an optional trailing `}` on the same line for an empty body.
func parseClassHeader(line string, lineNo int) (*ClassDecl, *CompileErr) {
	if !strings.HasPrefix(line, "class ") {
		return nil, &CompileErr{Line: lineNo, Message: "expected 'class' declaration."}
	}
	body := strings.TrimSuffix(strings.TrimSpace(strings.TrimPrefix(line, "class ")), "}")
	body = strings.TrimSpace(strings.TrimSuffix(body, "{"))

	decl := &ClassDecl{}
	if idx := strings.Index(body, " is "); idx >= 0 {
		decl.Name = strings.TrimSpace(body[:idx])
		decl.Superclass = strings.TrimSpace(body[idx+len(" is "):])
	} else {
		decl.Name = strings.TrimSpace(body)
	}
	if decl.Name == "" {
		return nil, &CompileErr{Line: lineNo, Message: "expected a class name."}
	}
	return decl, nil
}

// parseMember accepts `foreign sig` or `static foreign sig`.
func parseMember(line string, lineNo int) (Member, *CompileErr) {
	isStatic := false
	if strings.HasPrefix(line, "static ") {
		isStatic = true
		line = strings.TrimSpace(strings.TrimPrefix(line, "static "))
	}
	if !strings.HasPrefix(line, "foreign ") {
		return Member{}, &CompileErr{Line: lineNo, Message: "expected 'foreign' member declaration."}
	}
	sig := strings.TrimSpace(strings.TrimPrefix(line, "foreign "))
	if sig == "" {
		return Member{}, &CompileErr{Line: lineNo, Message: "expected a method signature."}
	}
	return Member{Signature: sig, IsStatic: isStatic}, nil
}
