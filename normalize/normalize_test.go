package normalize

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func apply(t *testing.T, p Pass, in string) string {
	t.Helper()
	out, err := p.Apply(in)
	require.NoError(t, err)
	return out
}

func TestTableSizes(t *testing.T) {
	assert.Len(t, fieldRules, 122)
	assert.Len(t, paymentRules, 32)
	assert.Len(t, residualRules, 50)
	assert.Len(t, structureRules, 80)
}

func TestFieldCleanup(t *testing.T) {
	in := "<div>{[tagHeader]}(Company Address Line 1)</div>"

	assert.Equal(t, "<div>{[tagHeader]}</div>", apply(t, FieldCleanup(false), in))
	assert.Equal(t, bannerOK+"<div>{[tagHeader]}</div>", apply(t, FieldCleanup(true), in))
}

func TestFieldCleanupReportsLeftovers(t *testing.T) {
	out := apply(t, FieldCleanup(true), "<div>X(Company Address Line 1)</div>")
	assert.True(t, strings.HasPrefix(out, bannerFailed), out)
}

func TestSalutationCollapse(t *testing.T) {
	in := "<div>Dear John Smith,</div>\n<br>\n" +
		"<div>Dear Borrower,</div>\n<br>\n" +
		"<div>Notice is hereby given that you are in default.</div>"

	out := apply(t, SalutationCollapse(), in)
	assert.Equal(t, "<div>Dear {[Salutation]},</div>\n<br><div>Notice is hereby given that you are in default.</div>", out)
	assert.Equal(t, 1, strings.Count(out, "Dear"))
}

func TestSalutationEndCandidatesInOrder(t *testing.T) {
	in := "<div>Dear A,</div><div>To cure this default</div><div>Notice is hereby given</div>"

	out := apply(t, SalutationCollapse(), in)
	assert.Equal(t, Salutation+"<div>Notice is hereby given</div>", out)
}

func TestSpanReplaceMissingAnchors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"no start", "<div>Notice is hereby given</div>"},
		{"no end", "<div>Dear A,</div><div>Body</div>"},
		{"end only before start", "<div>Notice is hereby given</div><div>Dear A,</div>"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.in, apply(t, SalutationCollapse(), tt.in))
		})
	}
}

func TestHeaderCleanup(t *testing.T) {
	in := "<div><b>(IF {[M956]} = 1)</b></div>\n<br> \n" +
		`<div style="text-align: justify"><b>Send </b><b>via</b><b> First Class and Certified Mail to the </b><b>Mailing </b><b>address</b></div>` + "\n<br>\n" +
		"<div>Next</div>"

	assert.Equal(t, "<div>Next</div>", apply(t, HeaderCleanup(), in))
}

func TestTitleInsert(t *testing.T) {
	in := "<div>Intro</div>\n<br>\n<div><b>Borrower Name:</b> A</div>"

	out := apply(t, TitleInsert(), in)
	assert.Equal(t, "<div>Intro</div>\n<br>\n"+Title+"\n<br>\n"+RETable+"<div><b>Borrower Name:</b> A</div>", out)
	assert.Equal(t, "<div>none</div>", apply(t, TitleInsert(), "<div>none</div>"))
}

func TestSpacing(t *testing.T) {
	assert.Equal(t, "<div>a\n</div>\n<br>\n<div>b</div>", Spacing("<div>a </div> <br> <div>b</div>"))
	assert.Equal(t, "<div>{[plsMatrix.CSPhoneNumber]}</div>", Spacing("<div><b>{[plsMatrix.CSPhoneNumber]}</b></div>"))
	assert.Equal(t, "a\n\nb", Spacing("a\n\n\n\n\nb"))
}

func TestTidy(t *testing.T) {
	assert.Equal(t, "x", Tidy("<b> </b>x<u>\n</u>"))
	assert.Equal(t, "<div>a</div>\n<br><br><br><br><br>", Tidy("<div>a</div> <br>\n<br> <br><br><br>\n<br><br>"))
}

func TestMoneyWrap(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"${[M591E6]} (Net Payment)", "{Money({[M591E6]})}"},
		{"${[M591E6]}(Net Payment)", "{Money({[M591E6]})}"},
		{"${[M015E6]}", "{Money({[M015E6]})}"},
		{"{[M013E6]} (Suspense Balance)", "{Money({[M013E6]})}"},
		{"${[U026]} (Late Charge Fee)", "{Money({[U026]})}"},
		{"${[U026]}", "${[U026]}"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, apply(t, MoneyWrap(), tt.in))
		})
	}
}

func TestMatrixPrefix(t *testing.T) {
	out := apply(t, MatrixPrefix(), "Call {[CSPhoneNumber]} or {[plsMatrix.LossMitHrs]} for {[M558]}")
	assert.Equal(t, "Call {[plsMatrix.CSPhoneNumber]} or {[plsMatrix.LossMitHrs]} for {[M558]}", out)
}

func TestPaymentBlock(t *testing.T) {
	tail := "<div>If you do not cure the default</div>"

	plain := "<div>Number of Payments Due: {[M590]}</div>\n<br>\n<div>Net Payment Amount: $1</div>\n<br>\n" + tail
	assert.Equal(t, PaymentTable+tail, apply(t, PaymentBlock(), plain))

	wrapped := "<div>Number of Payments Due: {[M590]}</div>\n<div>{Money({[M591E6]})}</div>\n" + tail
	assert.Equal(t, PaymentTableFields+tail, apply(t, PaymentBlock(), wrapped))
}

func TestTitleFormat(t *testing.T) {
	in := `<div style="text-align: justify">Notice of Intention to Foreclose Mortgage</div>`
	assert.Equal(t, Title, apply(t, TitleFormat(), in))
	assert.Equal(t, Title, apply(t, TitleFormat(), Title))
}

func TestPipelinePasses(t *testing.T) {
	assert.Equal(t,
		[]string{"fields", "salutation", "payment", "residual", "header", "title", "structure"},
		New(DefaultOptions(), nil).Passes())

	ext := New(Options{Extended: true}, nil).Passes()
	assert.Equal(t, "extended", ext[len(ext)-1])
}

func TestPipelineFieldScenario(t *testing.T) {
	p := New(DefaultOptions(), zaptest.NewLogger(t))

	out, err := p.Run("<div>{[tagHeader]}(Company Address Line 1)</div>")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, bannerOK), out)
	assert.Contains(t, out, "<div>{[tagHeader]}</div>")
	assert.NotContains(t, out, "(Company Address Line 1)")
}

func TestPipelineWithoutDiagnostics(t *testing.T) {
	out, err := New(Options{}, nil).Run("<div>{[tagHeader]}(Company Address Line 1)</div>")
	require.NoError(t, err)
	assert.Equal(t, "<div>{[tagHeader]}</div>", out)
}

func TestPipelineFailurePreservesInput(t *testing.T) {
	src := "<div>Dear A,</div>"
	boom := errors.New("boom")

	tests := []struct {
		name string
		pass Pass
		msg  string
	}{
		{"error", NewFunc("broken", func(string) (string, error) { return "garbage", boom }), "boom"},
		{"panic", NewFunc("broken", func(string) (string, error) { panic("bad index") }), "panic: bad index"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewWithPasses(zaptest.NewLogger(t), FieldCleanup(true), tt.pass, SalutationCollapse())

			out, err := p.Run(src)
			require.Error(t, err)

			var stageErr *StageError
			require.ErrorAs(t, err, &stageErr)
			assert.Equal(t, "broken", stageErr.Pass)

			assert.Equal(t, `<div style="color: red;">Formatting error: `+tt.msg+`</div>`+src, out)
		})
	}
}

func TestStageErrorUnwraps(t *testing.T) {
	boom := errors.New("boom")
	err := &StageError{Pass: "fields", Err: boom}
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "pass fields: boom", err.Error())
}

func TestStructureStopsOnSpanError(t *testing.T) {
	boom := errors.New("boom")
	ran := false
	broken := NewFunc("letterhead", func(string) (string, error) { return "", boom })
	after := NewFunc("borrower table", func(html string) (string, error) {
		ran = true
		return html, nil
	})

	structure := newStructure(broken, after)
	assert.Equal(t, "structure", structure.Name())

	_, err := structure.Apply("<div>Dear A,</div>")
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "letterhead: boom", err.Error())
	assert.False(t, ran, "passes after a failed span must not run")

	src := "<div>Dear A,</div>"
	out, err := NewWithPasses(zaptest.NewLogger(t), structure).Run(src)
	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, "structure", stageErr.Pass)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, `<div style="color: red;">Formatting error: letterhead: boom</div>`+src, out)
}

// letter is a trimmed rendering of a notice as the renderer emits it.
const letter = `<div style="text-align: justify"><b>{[H002]} </b>(Company Address Line 1)</div>
<br>
<div>{[tagHeader]}(Company Address Line 2)</div>
<br>
<div>{[L001]} (System Date)</div>
<br>
<div><b>(IF {[M956]} = 1)</b></div>
<br>
<div><b>Borrower Name:</b><b>	</b>{[M558]} and {[M559]}</div>
<br>
<div>Dear {[M558]},</div>
<br>
<div>Dear Borrower,</div>
<br>
<div>Notice is hereby given that your mortgage is in default.</div>
<br>
<div>Sincerely,</div>
<br>
<div>Default Department</div>`

// lineDiff counts the lines present in one text but not the other.
func lineDiff(a, b string) int {
	counts := map[string]int{}
	for _, l := range strings.Split(a, "\n") {
		counts[l]++
	}
	for _, l := range strings.Split(b, "\n") {
		counts[l]--
	}
	n := 0
	for _, c := range counts {
		if c < 0 {
			c = -c
		}
		n += c
	}
	return n
}

func TestPipelineLetter(t *testing.T) {
	p := New(DefaultOptions(), zaptest.NewLogger(t))

	once, err := p.Run(letter)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(once, bannerOK))
	assert.Contains(t, once, "<div>{Insert(H003 TagHeader)}</div>")
	assert.Contains(t, once, "<b>Notice of Intention to Foreclose Mortgage</b>")
	assert.Contains(t, once, "{[M558]}{If('{[M559]}'<>'')} and {[M559]}{End If}")
	assert.Contains(t, once, "Dear {[Salutation]},")
	assert.NotContains(t, once, "Dear Borrower")
	assert.NotContains(t, once, "(IF {[M956]} = 1)")
	assert.NotContains(t, once, "(System Date)")

	twice, err := p.Run(once)
	require.NoError(t, err)
	assert.Less(t, lineDiff(once, twice), lineDiff(letter, once))
}

func TestPipelineExtended(t *testing.T) {
	in := "<div>Call {[CSPhoneNumber]} about ${[M591E6]} (Net Payment)</div>"

	out, err := New(Options{Extended: true}, nil).Run(in)
	require.NoError(t, err)
	assert.Contains(t, out, "{[plsMatrix.CSPhoneNumber]}")
	assert.Contains(t, out, "{Money({[M591E6]})}")
	assert.NotContains(t, out, "(Net Payment)")
}
