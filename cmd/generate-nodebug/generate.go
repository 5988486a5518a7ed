package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/build/constraint"
	"go/parser"
	"go/printer"
	"go/token"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"
)

// Generate returns the source of the no-op counterpart of src.
// inPath is used for error positions and the generated header,
// and outPath is the name the result will be written to.
func Generate(inPath, outPath string, src []byte) ([]byte, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, inPath, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	expr, err := fileConstraint(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", inPath, err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by generate-nodebug from %s; DO NOT EDIT.\n\n", filepath.Base(inPath))
	fmt.Fprintf(&buf, "//go:build %s\n\n", negate(expr))
	fmt.Fprintf(&buf, "package %s\n\n", f.Name.Name)

	if len(f.Imports) > 0 {
		// All imports are copied;
		// imports.Process removes the ones the stubs no longer use.
		buf.WriteString("import (\n")
		for _, imp := range f.Imports {
			if imp.Name != nil {
				fmt.Fprintf(&buf, "\t%s %s\n", imp.Name.Name, imp.Path.Value)
			} else {
				fmt.Fprintf(&buf, "\t%s\n", imp.Path.Value)
			}
		}
		buf.WriteString(")\n\n")
	}

	nFuncs := 0
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			switch d.Tok {
			case token.IMPORT, token.CONST, token.VAR:
				// Constants and variables only serve the function bodies,
				// which are dropped.
				continue
			}
			return nil, fmt.Errorf(
				"%s: %s declarations are not supported, as the no-op file would not declare them",
				fset.Position(d.Pos()), d.Tok,
			)
		case *ast.FuncDecl:
			if err := writeStub(&buf, fset, d); err != nil {
				return nil, fmt.Errorf("%s: %w", fset.Position(d.Pos()), err)
			}
			nFuncs++
		}
	}

	if nFuncs == 0 {
		return nil, fmt.Errorf("%s: no function declarations", inPath)
	}

	out, err := imports.Process(outPath, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return out, nil
}

// fileConstraint returns the //go:build expression of f.
func fileConstraint(f *ast.File) (constraint.Expr, error) {
	for _, cg := range f.Comments {
		if cg.Pos() >= f.Package {
			break
		}
		for _, c := range cg.List {
			if !constraint.IsGoBuild(c.Text) {
				continue
			}
			return constraint.Parse(c.Text)
		}
	}
	return nil, errors.New("missing //go:build line")
}

func negate(x constraint.Expr) string {
	if n, ok := x.(*constraint.NotExpr); ok {
		return n.X.String()
	}
	return (&constraint.NotExpr{X: x}).String()
}

// writeStub writes d to buf with an empty body.
// Unnamed results are named _ so that the body can be a naked return.
func writeStub(buf *bytes.Buffer, fset *token.FileSet, d *ast.FuncDecl) error {
	if d.Doc != nil {
		for _, c := range d.Doc.List {
			buf.WriteString(c.Text)
			buf.WriteByte('\n')
		}
	}

	buf.WriteString("func ")
	if d.Recv != nil {
		recv, err := printSignature(fset, &ast.FuncType{Params: d.Recv})
		if err != nil {
			return err
		}
		buf.WriteString(recv)
		buf.WriteByte(' ')
	}
	buf.WriteString(d.Name.Name)

	results := d.Type.Results
	if results != nil {
		results = blankResults(results)
	}
	sig, err := printSignature(fset, &ast.FuncType{
		TypeParams: d.Type.TypeParams,
		Params:     d.Type.Params,
		Results:    results,
	})
	if err != nil {
		return err
	}
	buf.WriteString(sig)

	if results == nil || len(results.List) == 0 {
		buf.WriteString(" {}\n\n")
	} else {
		buf.WriteString(" {\n\treturn\n}\n\n")
	}
	return nil
}

// printSignature prints ft without its leading func keyword.
func printSignature(fset *token.FileSet, ft *ast.FuncType) (string, error) {
	var sb strings.Builder
	if err := printer.Fprint(&sb, fset, ft); err != nil {
		return "", err
	}
	return strings.TrimPrefix(sb.String(), "func"), nil
}

func blankResults(fl *ast.FieldList) *ast.FieldList {
	out := &ast.FieldList{Opening: fl.Opening, Closing: fl.Closing}
	for _, field := range fl.List {
		nf := *field
		if len(nf.Names) == 0 {
			nf.Names = []*ast.Ident{ast.NewIdent("_")}
		}
		out.List = append(out.List, &nf)
	}
	return out
}
