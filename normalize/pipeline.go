// Package normalize rewrites the HTML rendering of a foreclosure notice
// into the canonical template layout.
//
// The pipeline is a fixed sequence of passes. Each pass takes the whole
// document as a string and returns a rewritten string; passes never look
// at the original Word document. When a pass fails the pipeline stops and
// returns the input unchanged behind an error banner, so callers always
// get usable HTML back.
package normalize

import (
	"fmt"
	"html"
	"time"

	"go.uber.org/zap"
)

// Options selects optional pipeline behavior.
type Options struct {
	// Extended enables the plsMatrix, money, payment table and title
	// rewrites after the structure pass.
	Extended bool

	// Diagnostics prepends the field cleanup banner.
	Diagnostics bool
}

// DefaultOptions returns the options used by the HTTP service.
func DefaultOptions() Options {
	return Options{Diagnostics: true}
}

// Pipeline applies the normalization passes in order.
type Pipeline struct {
	passes []Pass
	logger *zap.Logger
}

// New builds the pipeline for opts. A nil logger disables logging.
func New(opts Options, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}

	passes := []Pass{
		FieldCleanup(opts.Diagnostics),
		SalutationCollapse(),
		PaymentCleanup(),
		ResidualCleanup(),
		HeaderCleanup(),
		TitleInsert(),
		Structure(),
	}
	if opts.Extended {
		passes = append(passes, Extended())
	}

	return &Pipeline{passes: passes, logger: logger}
}

// NewWithPasses builds a pipeline from explicit passes.
func NewWithPasses(logger *zap.Logger, passes ...Pass) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{passes: passes, logger: logger}
}

// Passes returns the pass names in execution order.
func (p *Pipeline) Passes() []string {
	names := make([]string, len(p.passes))
	for i, pass := range p.passes {
		names[i] = pass.Name()
	}
	return names
}

// Run normalizes src. On success it returns the rewritten HTML and a nil
// error. If a pass fails or panics, Run returns src unchanged behind a red
// error banner, together with a *StageError naming the pass.
func (p *Pipeline) Run(src string) (string, error) {
	out := src
	for _, pass := range p.passes {
		start := time.Now()

		next, err := p.apply(pass, out)
		if err != nil {
			stageErr := &StageError{Pass: pass.Name(), Err: err}
			p.logger.Warn("normalization failed",
				zap.String("pass", pass.Name()),
				zap.Error(err),
			)
			return ErrorBanner(err) + src, stageErr
		}

		p.logger.Debug("pass applied",
			zap.String("pass", pass.Name()),
			zap.Int("in", len(out)),
			zap.Int("out", len(next)),
			zap.Duration("duration", time.Since(start)),
		)
		out = next
	}
	return out, nil
}

func (p *Pipeline) apply(pass Pass, in string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return pass.Apply(in)
}

// ErrorBanner renders err as the red banner placed above unformatted
// output.
func ErrorBanner(err error) string {
	return `<div style="color: red;">Formatting error: ` + html.EscapeString(err.Error()) + `</div>`
}
