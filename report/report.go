// Package report renders the fixed-format verification report from a
// pipeline result: inputs, E2 diagonal panels, decade-index derivation,
// density comparison, optional sensitivity table, and the final verdict.
//
// The report is plain text; lipgloss styles the section headers and the
// verdict line, degrading to unstyled output on non-TTY writers.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/playfularchitect/mobius-vacuum-energy-verification/decade"
	"github.com/playfularchitect/mobius-vacuum-energy-verification/verify"
)

const ruleWidth = 50

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	ruleStyle    = lipgloss.NewStyle().Faint(true)
	verdictStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// printer tracks the first write error so every section can stay a plain
// sequence of Fprintf calls.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) section(title string) {
	rule := ruleStyle.Render(strings.Repeat("=", ruleWidth))
	p.printf("%s\n%s\n%s\n", rule, headerStyle.Render(title), rule)
}

// Write renders the full report for res, plus a sensitivity table when
// sweep is non-empty. Term and table order is the deterministic order
// fixed by the pipeline, so identical inputs give byte-identical output.
func Write(w io.Writer, res *verify.Result, sweep []verify.SweepRow) error {
	p := &printer{w: w}

	p.section("AHSS E2 Diagonal Calculation")
	p.printf("\nCohomology dimensions H*(BGint; Z2):\n")
	for _, degree := range res.Input.Dims.Degrees() {
		dim, err := res.Input.Dims.Value(degree)
		if err != nil {
			return err
		}
		if label := res.Input.Dims.Label(degree); label != "" {
			p.printf("  dim H^%d = %d  # %s\n", degree, dim, label)
		} else {
			p.printf("  dim H^%d = %d\n", degree, dim)
		}
	}
	p.printf("\nPin+ coefficient ranks:\n")
	for _, degree := range res.Input.Ranks.Degrees() {
		rank, err := res.Input.Ranks.Value(degree)
		if err != nil {
			return err
		}
		p.printf("  rank_2(Omega^Pin+_%d) = %d\n", degree, rank)
	}

	p.printf("\nE2 page ranks on p+q=%d diagonal:\n", res.Diagonal.Degree)
	products := make([]string, 0, len(res.Diagonal.Terms))
	for _, t := range res.Diagonal.Terms {
		p.printf("  E^{%d,%d}_2: %d x %d = %d\n", t.P, t.Q, t.Dim, t.Rank, t.Product)
		products = append(products, strconv.Itoa(t.Product))
	}
	p.printf("\nTotal E2 diagonal rank: %s = %d\n", strings.Join(products, " + "), res.Diagonal.TotalRank)
	p.printf("Upper bound from diagonal: <= %d\n", res.Diagonal.TotalRank)
	p.printf("Lower bound from witnesses: >= %d\n", res.Input.Witness)
	p.printf("Therefore: rank = %d\n", res.Rank)

	formula, err := decade.Formula(res.Rank)
	if err != nil {
		return err
	}
	p.section("Physical Prediction")
	p.printf("\nDecade index: I_10(%d) = %s\n", res.Rank, formula)
	c := res.Comparison
	p.printf("Prediction: rho_Lambda = rho_P x 10^(-%s) = %.2e kg/m^3\n", c.DecadeIndex, c.PredictedDensity)
	p.printf("Observed:   rho_Lambda ~ %.2e kg/m^3\n", c.ObservedDensity)
	p.printf("Agreement: %.3f decades\n", c.AgreementDecades)
	p.printf("Accuracy: %.1f%%\n", c.AccuracyPercent)

	if len(sweep) > 0 {
		p.printf("\nSensitivity to alternative ranks:\n")
		for _, row := range sweep {
			p.printf("  m=%d: I_10=%s, prediction=%.2e kg/m^3, agreement=%.3f decades\n",
				row.Rank, row.DecadeIndex, row.Comparison.PredictedDensity, row.Comparison.AgreementDecades)
		}
	}

	p.printf("\n%s\n", verdictStyle.Render("STATUS: "+strings.ToUpper(string(res.Status))))
	return p.err
}
