// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// algj infers the most general type of lambda-calculus expressions.
//
// Usage:
//
//  algj [-prelude FILE | -no-prelude] [-e EXPR]
//
// With -e, the type of EXPR is printed. Otherwise expressions are read from standard input,
// interactively when standard input is a terminal, or one per line.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/wdamron/algj"
	"github.com/wdamron/algj/ast"
	"github.com/wdamron/algj/parse"
	"github.com/wdamron/algj/prelude"
	"github.com/wdamron/algj/types"
)

const (
	historyFile = ".algj_history"
	prompt      = "algj> "
)

const helpText = `Commands:
  :env     Print the typing context
  :help    Print this message
  :quit    Exit
Expressions:
  x    e0 e1    lambda x . e    let x = e0 in e1    (e)`

func main() {
	log.SetFlags(0)
	log.SetPrefix("algj: ")

	var (
		preludePath = flag.String("prelude", "", "load the typing context from a YAML `file`")
		noPrelude   = flag.Bool("no-prelude", false, "start from an empty typing context")
		exprSrc     = flag.String("e", "", "infer the type of `expr` and exit")
	)
	flag.Parse()

	env, err := loadEnv(*preludePath, *noPrelude)
	if err != nil {
		log.Fatal(err)
	}
	out := newPrinter(os.Stdout)

	switch {
	case *exprSrc != "":
		if err := out.infer(env, *exprSrc); err != nil {
			os.Exit(1)
		}
	case isTerminal(os.Stdin):
		repl(env, out)
	default:
		if err := batch(env, out, os.Stdin); err != nil {
			os.Exit(1)
		}
	}
}

func loadEnv(path string, empty bool) (*algj.TypeEnv, error) {
	switch {
	case empty && path != "":
		return nil, errors.New("-prelude and -no-prelude are mutually exclusive")
	case empty:
		return algj.NewTypeEnv(), nil
	case path != "":
		return prelude.Load(path)
	}
	return prelude.Default(), nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type printer struct {
	w     io.Writer
	color bool
	ctx   *algj.InferenceContext
}

func newPrinter(f *os.File) *printer {
	color := isTerminal(f) && os.Getenv("TERM") != "dumb" && os.Getenv("NO_COLOR") == ""
	return &printer{w: f, color: color, ctx: algj.NewContext()}
}

func (p *printer) paint(code, s string) string {
	if !p.color {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

// infer parses and type-checks src, printing `expr : scheme` or a diagnostic.
func (p *printer) infer(env *algj.TypeEnv, src string) error {
	expr, err := parse.Expr(src)
	if err != nil {
		fmt.Fprintln(p.w, p.paint("31", "parsing failed: "+err.Error()))
		return err
	}
	s, err := p.ctx.Infer(expr, env)
	if err != nil {
		msg := "type inference failed: " + err.Error()
		if invalid := p.ctx.InvalidExpr(); invalid != nil && invalid != expr {
			msg += "\n  in: " + ast.ExprString(invalid)
		}
		fmt.Fprintln(p.w, p.paint("31", msg))
		return err
	}
	fmt.Fprintln(p.w, ast.ExprString(expr)+" : "+p.paint("32", types.SchemeString(s)))
	return nil
}

// batch infers one expression per line. Blank lines and lines starting with '#' are skipped.
// Every line is checked; the first error is returned.
func batch(env *algj.TypeEnv, out *printer, r io.Reader) error {
	var first error
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := out.infer(env, line); err != nil && first == nil {
			first = err
		}
	}
	if err := sc.Err(); err != nil {
		log.Print(err)
		return err
	}
	return first
}

func repl(env *algj.TypeEnv, out *printer) {
	fmt.Fprintln(out.w, "Type :help for help, :quit or Ctrl+D to exit.")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	var histPath string
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Print(err)
			}
			fmt.Fprintln(out.w)
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		switch line {
		case ":quit", ":q":
			return
		case ":help", ":h":
			fmt.Fprintln(out.w, helpText)
			continue
		case ":env":
			env.Range(func(b algj.Binding) bool {
				fmt.Fprintln(out.w, "  "+b.Name+" : "+types.SchemeString(b.Scheme))
				return true
			})
			continue
		}
		if strings.HasPrefix(line, ":") {
			fmt.Fprintln(out.w, "unknown command; type :help for help")
			continue
		}
		_ = out.infer(env, line)
	}
}
