package ncformatter

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/joshuahamrick/ncformatter/classify"
	"github.com/joshuahamrick/ncformatter/docx"
	"github.com/joshuahamrick/ncformatter/extract"
	"github.com/joshuahamrick/ncformatter/format"
	"github.com/joshuahamrick/ncformatter/htmldoc"
	"github.com/joshuahamrick/ncformatter/model"
	"github.com/joshuahamrick/ncformatter/normalize"
	"github.com/joshuahamrick/ncformatter/render"
)

var nopLogger = zap.NewNop()

// Converter provides a fluent interface for converting a notice. Each
// configuration method returns a new Converter, so a configured Converter
// can be shared and reused.
type Converter struct {
	// Source
	data     []byte
	fileName string

	// Configuration
	options ConvertOptions
	logger  *zap.Logger

	// Deferred error from Open
	err error
}

// clone creates a shallow copy of the Converter with a copy of options.
func (c *Converter) clone() *Converter {
	return &Converter{
		data:     c.data,
		fileName: c.fileName,
		options:  c.options.clone(),
		logger:   c.logger,
		err:      c.err,
	}
}

// Extended enables the plsMatrix, money, payment table and title rewrites.
func (c *Converter) Extended() *Converter {
	n := c.clone()
	n.options.extended = true
	return n
}

// WithoutDiagnostics drops the field cleanup banner.
func (c *Converter) WithoutDiagnostics() *Converter {
	n := c.clone()
	n.options.diagnostics = false
	return n
}

// IncludeTables renders Word tables into the letter after the paragraphs.
func (c *Converter) IncludeTables() *Converter {
	n := c.clone()
	n.options.includeTables = true
	return n
}

// Markdown adds a Markdown preview of the letter to the result.
func (c *Converter) Markdown() *Converter {
	n := c.clone()
	n.options.markdown = true
	return n
}

// Fields adds the placeholder inventory of the letter to the result.
func (c *Converter) Fields() *Converter {
	n := c.clone()
	n.options.fields = true
	return n
}

// Logger sets the logger used by the conversion.
func (c *Converter) Logger(logger *zap.Logger) *Converter {
	n := c.clone()
	if logger == nil {
		logger = nopLogger
	}
	n.logger = logger
	return n
}

// Process runs the conversion. The returned result is always a complete
// envelope: on error it is the failure shape describing the error.
//
// Errors match ErrMissingInput, ErrCapabilityUnavailable or
// ErrParseFailure. A failed normalization pass is not an error; it is
// reported as a warning and the result carries the unnormalized letter.
func (c *Converter) Process() (model.Result, []Warning, error) {
	if c.err != nil {
		return failure(c.err)
	}
	if len(c.data) == 0 {
		return model.Failure(ErrMissingInput.Error()), nil, ErrMissingInput
	}
	if !docx.Available() {
		return model.Failure(ErrCapabilityUnavailable.Error()), nil, ErrCapabilityUnavailable
	}

	logger := c.logger.With(zap.String("file", c.fileName))

	if f := format.Sniff(c.data); f != format.DOCX && f != format.Unknown {
		logger.Info("rejected upload", zap.Stringer("format", f))
		return failure(fmt.Errorf("unsupported format %s", f))
	}

	r, err := docx.OpenBytes(c.data)
	if err != nil {
		if errors.Is(err, docx.ErrDOCXNotEnabled) {
			return model.Failure(ErrCapabilityUnavailable.Error()), nil, fmt.Errorf("%w: %w", ErrCapabilityUnavailable, err)
		}
		logger.Info("unreadable document", zap.Error(err))
		return failure(err)
	}
	defer r.Close()

	paras, tables := extract.Document(r)
	docType := classify.Classify(paras)
	logger.Debug("document extracted",
		zap.Int("paragraphs", len(paras)),
		zap.Int("tables", len(tables)),
		zap.Stringer("type", docType),
	)
	for i, t := range tables {
		logger.Debug("table extracted",
			zap.Int("table", i),
			zap.Int("rows", t.RowCount()),
			zap.Int("cols", t.ColCount()),
		)
	}

	raw := render.HTML(paras, tables, render.Options{IncludeTables: c.options.includeTables})

	pipeline := normalize.New(normalize.Options{
		Extended:    c.options.extended,
		Diagnostics: c.options.diagnostics,
	}, logger)

	var warnings []Warning
	letter, err := pipeline.Run(raw)
	if err != nil {
		warnings = append(warnings, Warning{Kind: WarnNormalization, Message: err.Error()})
	}

	res := model.Result{
		Success:       true,
		FormattedHTML: letter,
		DocumentType:  docType,
		Paragraphs:    paras,
		Tables:        tables,
	}

	if in, err := htmldoc.Inspect(letter); err == nil {
		for _, b := range in.Banners {
			if b == htmldoc.BannerCleanupFailed {
				warnings = append(warnings, Warning{Kind: WarnFieldsLeft, Message: "field descriptions remain after cleanup"})
			}
		}
		logger.Debug("letter inspected",
			zap.Bool("failed", in.Failed()),
			zap.Bool("letterhead", in.Letterhead),
			zap.Int("salutations", in.Salutations),
			zap.Int("borrower_tables", in.BorrowerTables),
			zap.Int("payment_tables", in.PaymentTables),
		)
	}

	if c.options.markdown {
		md, err := htmldoc.Markdown(letter)
		if err != nil {
			warnings = append(warnings, Warning{Kind: WarnMarkdown, Message: err.Error()})
		}
		res.Markdown = md
	}
	if c.options.fields {
		res.Fields = htmldoc.Fields(letter)
	}

	logger.Debug("document converted",
		zap.Int("bytes", len(letter)),
		zap.Int("warnings", len(warnings)),
	)
	return res, warnings, nil
}

// failure builds the parse failure envelope for cause.
func failure(cause error) (model.Result, []Warning, error) {
	return model.Failure("Error processing document: " + cause.Error()), nil, fmt.Errorf("%w: %w", ErrParseFailure, cause)
}
