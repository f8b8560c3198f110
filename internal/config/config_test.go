package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playfularchitect/mobius-vacuum-energy-verification/ahss"
	"github.com/playfularchitect/mobius-vacuum-energy-verification/internal/config"
	"github.com/playfularchitect/mobius-vacuum-energy-verification/verify"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// TestDefault_ProducesVerifiedInput pins the defaults to the published
// values: the untouched configuration must evaluate to the reference
// result end to end.
func TestDefault_ProducesVerifiedInput(t *testing.T) {
	in, err := config.Default().Input()
	require.NoError(t, err)

	assert.Equal(t, 5, in.Degree)
	assert.Equal(t, 7, in.Witness)
	assert.Equal(t, "<a2, b2>", in.Dims.Label(2))
	assert.Equal(t, []int{0, 1, 2, 3}, in.Ranks.Degrees())

	res, err := verify.Evaluate(in)
	require.NoError(t, err)
	assert.Equal(t, verify.StatusVerified, res.Status)
}

// TestLoad_PartialOverlay verifies fields absent from the file keep
// their defaults while present scalars override.
func TestLoad_PartialOverlay(t *testing.T) {
	path := writeConfig(t, "witness: 6\nobserved_density: 1.0e-26\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Witness)
	assert.Equal(t, 1.0e-26, cfg.ObservedDensity)
	assert.Equal(t, 5, cfg.Degree, "absent field keeps default")
	assert.Len(t, cfg.Cohomology, 4, "absent table keeps default")
}

// TestLoad_TableReplacement verifies a present table block replaces the
// default table wholesale rather than merging into it.
func TestLoad_TableReplacement(t *testing.T) {
	path := writeConfig(t, `
degree: 3
witness: 2
cohomology:
  2: {dim: 1, label: "<w2>"}
  3: {dim: 1}
pin_ranks:
  0: 1
  1: 1
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Cohomology, 2, "default degrees 4 and 5 must be gone")
	assert.Len(t, cfg.PinRanks, 2)

	in, err := cfg.Input()
	require.NoError(t, err)
	assert.Equal(t, "<w2>", in.Dims.Label(2))

	// p+q=3 diagonal: (3,0)=1 and (2,1)=1, total 2 = witness.
	res, err := verify.Evaluate(in)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Rank)
}

// TestLoad_Errors covers a missing file and a malformed document.
func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	path := writeConfig(t, "witness: [not, a, scalar\n")
	_, err = config.Load(path)
	assert.Error(t, err)
}

// TestInput_NegativeEntry verifies table validation fires during Input
// conversion, before any computation.
func TestInput_NegativeEntry(t *testing.T) {
	cfg := config.Default()
	cfg.PinRanks = map[int]int{0: 1, 1: -1}

	_, err := cfg.Input()
	assert.ErrorIs(t, err, ahss.ErrNegativeEntry)
}
