package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	gojson "github.com/goccy/go-json"

	frontmatter "github.com/KimNorgaard/go-frontmatter"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// env carries the streams of one invocation.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	e := &env{stdin: stdin, stdout: stdout, stderr: stderr}
	if len(args) < 1 {
		e.usage()
		return 2
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "decode":
		return e.decodeCmd(rest)
	case "encode":
		return e.encodeCmd(rest)
	case "fmt":
		return e.fmtCmd(rest)
	case "validate":
		return e.validateCmd(rest)
	case "performers":
		return e.performersCmd(rest)
	case "patch":
		return e.patchCmd(rest)
	default:
		e.usage()
		return 2
	}
}

func (e *env) usage() {
	fmt.Fprintln(e.stderr, `frontmatter CLI

Usage:
  frontmatter decode [-strict] [file]          print front matter as JSON
  frontmatter encode [-indent n] [file]        read a JSON object, print front matter
  frontmatter fmt [-strict] [-indent n] [file] normalise the front matter of a note
  frontmatter validate [-strict] [file]        check the video note fields
  frontmatter performers [file]                print performers as JSON
  frontmatter patch -set key=value... [file]   replace fields and print the note

Notes:
  - Input is read from file, or stdin when no file is given.
  - A note may wrap its front matter in "---" lines; the body is kept.`)
}

func (e *env) decodeCmd(args []string) int {
	fs := e.flagSet("decode")
	strict := fs.Bool("strict", false, "report dropped lines and fail")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	n, ok := e.readNote(fs, *strict)
	if !ok {
		return 1
	}
	out, err := json.Marshal(n.doc, jsontext.WithIndent("  "))
	if err != nil {
		fmt.Fprintln(e.stderr, "decode:", err)
		return 1
	}
	fmt.Fprintln(e.stdout, string(out))
	return 0
}

func (e *env) encodeCmd(args []string) int {
	fs := e.flagSet("encode")
	indent := fs.Int("indent", 2, "spaces before list markers")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	data, err := e.readInput(fs)
	if err != nil {
		fmt.Fprintln(e.stderr, "encode:", err)
		return 1
	}
	var doc frontmatter.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		fmt.Fprintln(e.stderr, "encode:", err)
		return 1
	}
	return e.writeDoc(&doc, "", false, *indent)
}

func (e *env) fmtCmd(args []string) int {
	fs := e.flagSet("fmt")
	strict := fs.Bool("strict", false, "report dropped lines and fail")
	indent := fs.Int("indent", 2, "spaces before list markers")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	n, ok := e.readNote(fs, *strict)
	if !ok {
		return 1
	}
	return e.writeDoc(n.doc, n.body, n.fenced, *indent)
}

// validationReport is printed by the validate command.
type validationReport struct {
	Valid      bool   `json:"valid"`
	Title      string `json:"title,omitempty"`
	VideoImage string `json:"video_img,omitempty"`
	Performers int    `json:"performers"`
}

func (e *env) validateCmd(args []string) int {
	fs := e.flagSet("validate")
	strict := fs.Bool("strict", false, "report dropped lines and fail")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	n, ok := e.readNote(fs, *strict)
	if !ok {
		return 1
	}
	report := validationReport{
		Valid:      frontmatter.IsValid(n.doc),
		Performers: len(frontmatter.GetPerformers(n.doc)),
	}
	if v, found := n.doc.Get(frontmatter.FieldTitle); found {
		report.Title, _ = v.AsString()
	}
	report.VideoImage, _ = frontmatter.GetVideoImage(n.doc)
	if err := e.printJSON(report); err != nil {
		fmt.Fprintln(e.stderr, "validate:", err)
		return 1
	}
	if !report.Valid {
		return 1
	}
	return 0
}

func (e *env) performersCmd(args []string) int {
	fs := e.flagSet("performers")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	n, ok := e.readNote(fs, false)
	if !ok {
		return 1
	}
	if err := e.printJSON(frontmatter.GetPerformers(n.doc)); err != nil {
		fmt.Fprintln(e.stderr, "performers:", err)
		return 1
	}
	return 0
}

// assignments collects repeated -set key=value flags in order.
type assignments struct {
	doc *frontmatter.Document
}

func (a *assignments) String() string {
	if a.doc == nil {
		return ""
	}
	return strings.Join(a.doc.Keys(), ",")
}

func (a *assignments) Set(s string) error {
	key, value, found := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	if a.doc == nil {
		a.doc = frontmatter.NewDocument()
	}
	a.doc.Set(key, frontmatter.ParseScalar(strings.TrimSpace(value)))
	return nil
}

func (e *env) patchCmd(args []string) int {
	fs := e.flagSet("patch")
	var set assignments
	fs.Var(&set, "set", "key=value to replace (repeatable)")
	indent := fs.Int("indent", 2, "spaces before list markers")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if set.doc.Len() == 0 {
		fmt.Fprintln(e.stderr, "patch: at least one -set key=value is required")
		return 2
	}
	n, ok := e.readNote(fs, false)
	if !ok {
		return 1
	}
	return e.writeDoc(frontmatter.Patch(n.doc, set.doc), n.body, n.fenced, *indent)
}

func (e *env) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

func (e *env) readInput(fs *flag.FlagSet) ([]byte, error) {
	switch fs.NArg() {
	case 0:
		return io.ReadAll(e.stdin)
	case 1:
		return os.ReadFile(fs.Arg(0))
	default:
		return nil, errors.New("expected at most one file")
	}
}

// note is a decoded input: its front matter and whatever followed it.
type note struct {
	doc    *frontmatter.Document
	body   string
	fenced bool
}

func (e *env) readNote(fs *flag.FlagSet, strict bool) (note, bool) {
	data, err := e.readInput(fs)
	if err != nil {
		fmt.Fprintf(e.stderr, "%s: %v\n", fs.Name(), err)
		return note{}, false
	}
	front, body, fenced := frontmatter.Split(string(data))
	if !fenced {
		front, body = string(data), ""
	}

	var opts []frontmatter.DecodeOption
	if strict {
		opts = append(opts, frontmatter.Strict())
	}
	doc, err := frontmatter.Unmarshal([]byte(front), opts...)
	if err != nil {
		var perrs frontmatter.ParseErrors
		if errors.As(err, &perrs) {
			for _, pe := range perrs {
				fmt.Fprintf(e.stderr, "%s: %v\n", fs.Name(), pe)
			}
		} else {
			fmt.Fprintf(e.stderr, "%s: %v\n", fs.Name(), err)
		}
		return note{}, false
	}
	return note{doc: doc, body: body, fenced: fenced}, true
}

func (e *env) writeDoc(doc *frontmatter.Document, body string, fenced bool, indent int) int {
	out, err := frontmatter.Marshal(doc, frontmatter.Indent(indent), frontmatter.TrailingNewline())
	if err != nil {
		fmt.Fprintln(e.stderr, err)
		return 1
	}
	if fenced {
		fmt.Fprint(e.stdout, frontmatter.Join(string(out), body))
		return 0
	}
	fmt.Fprint(e.stdout, string(out))
	return 0
}

func (e *env) printJSON(v any) error {
	out, err := gojson.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, string(out))
	return nil
}
