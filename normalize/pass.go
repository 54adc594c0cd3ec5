package normalize

import (
	"fmt"
	"regexp"
	"strings"
)

// Pass is one rewrite step of the pipeline.
type Pass interface {
	Name() string
	Apply(html string) (string, error)
}

// StageError records the pass that failed.
type StageError struct {
	Pass string
	Err  error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pass %s: %v", e.Pass, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Replacement is a literal find/replace pair.
type Replacement struct {
	Find    string
	Replace string
}

// Replacements applies a table of literal replacements in order, each
// replacing every occurrence. Later entries see the output of earlier ones.
type Replacements struct {
	name  string
	table []Replacement
}

// NewReplacements creates a literal replacement pass.
func NewReplacements(name string, table []Replacement) Replacements {
	return Replacements{name: name, table: table}
}

func (r Replacements) Name() string { return r.name }

func (r Replacements) Apply(html string) (string, error) {
	for _, rep := range r.table {
		html = strings.ReplaceAll(html, rep.Find, rep.Replace)
	}
	return html, nil
}

// RegexSub replaces every match of a pattern. The replacement may refer
// to capture groups as ${1}.
type RegexSub struct {
	name    string
	pattern *regexp.Regexp
	repl    string
}

// NewRegexSub compiles pattern with whitespace classes matching the
// letter library's conventions. It panics on an invalid pattern.
func NewRegexSub(name, pattern, repl string) RegexSub {
	return RegexSub{name: name, pattern: compile(pattern), repl: repl}
}

func (r RegexSub) Name() string { return r.name }

func (r RegexSub) Apply(html string) (string, error) {
	return r.pattern.ReplaceAllString(html, r.repl), nil
}

// SpanReplace replaces the text between two anchors with a fixed block.
//
// The start anchor is the first match of Start. The end anchor is taken
// from the first pattern in Ends that matches anywhere after the start
// anchor. The replaced span runs from the start of the start anchor up to,
// but not including, the end anchor. When either anchor is missing the
// text is returned unchanged.
type SpanReplace struct {
	name  string
	start *regexp.Regexp
	ends  []*regexp.Regexp
	block func(span string) string
}

// NewSpanReplace creates a span replacement with a fixed block.
func NewSpanReplace(name, start string, ends []string, block string) SpanReplace {
	return newSpanReplaceFunc(name, start, ends, func(string) string { return block })
}

func newSpanReplaceFunc(name, start string, ends []string, block func(span string) string) SpanReplace {
	s := SpanReplace{
		name:  name,
		start: compile(start),
		block: block,
	}
	for _, e := range ends {
		s.ends = append(s.ends, compile(e))
	}
	return s
}

func (s SpanReplace) Name() string { return s.name }

func (s SpanReplace) Apply(html string) (string, error) {
	loc := s.start.FindStringIndex(html)
	if loc == nil {
		return html, nil
	}
	from := loc[0]

	for _, end := range s.ends {
		m := end.FindStringIndex(html[loc[1]:])
		if m == nil {
			continue
		}
		to := loc[1] + m[0]
		return html[:from] + s.block(html[from:to]) + html[to:], nil
	}
	return html, nil
}

// InsertBefore inserts a fixed block immediately before the first match
// of an anchor. Without a match the text is returned unchanged.
type InsertBefore struct {
	name   string
	anchor *regexp.Regexp
	block  string
}

// NewInsertBefore creates an insertion pass.
func NewInsertBefore(name, anchor, block string) InsertBefore {
	return InsertBefore{name: name, anchor: compile(anchor), block: block}
}

func (p InsertBefore) Name() string { return p.name }

func (p InsertBefore) Apply(html string) (string, error) {
	loc := p.anchor.FindStringIndex(html)
	if loc == nil {
		return html, nil
	}
	return html[:loc[0]] + p.block + html[loc[0]:], nil
}

// Sequence applies passes in order as a single pass.
type Sequence struct {
	name   string
	passes []Pass
}

// NewSequence groups passes under one name.
func NewSequence(name string, passes ...Pass) Sequence {
	return Sequence{name: name, passes: passes}
}

func (s Sequence) Name() string { return s.name }

func (s Sequence) Apply(html string) (string, error) {
	var err error
	for _, p := range s.passes {
		html, err = p.Apply(html)
		if err != nil {
			return html, fmt.Errorf("%s: %w", p.Name(), err)
		}
	}
	return html, nil
}

// Func adapts a function into a Pass.
type Func struct {
	name string
	fn   func(string) (string, error)
}

// NewFunc creates a pass from fn.
func NewFunc(name string, fn func(string) (string, error)) Func {
	return Func{name: name, fn: fn}
}

func (f Func) Name() string { return f.name }

func (f Func) Apply(html string) (string, error) {
	return f.fn(html)
}
