package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ghodss/yaml"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInput = `
Title: "Wing Body"
Base: 1
Curves:
  - Name: Intersection
    Bars: [[3, 4], [1, 2], [2, 3]]
  - Name: Junction
    Bars: [[1, 2], [1, 3], [1, 4]]
  - Name: Tip
    Bars: [[5, 6], [6, 7], [7, 5]]
  - Name: Split
    Bars: [[10, 11], [12, 13]]
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))
	return file
}

// execute runs the root command with fresh flag and configuration state
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	SortCmd.Flags().VisitAll(reset)
	cfgFile = ""
	viper.Reset()
	bindFlags()
	bindSortFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestSortCommand(t *testing.T) {
	input := writeTemp(t, "curves.yaml", testInput)
	stdout, err := execute(t, "sort", "-I", input)
	require.NoError(t, err)

	out := &SortOutput{}
	require.NoError(t, yaml.Unmarshal([]byte(stdout), out))
	assert.Equal(t, "Wing Body", out.Title)
	require.Len(t, out.Curves, 4)

	c := out.Curves[0]
	assert.Equal(t, "intersection", c.Name)
	assert.True(t, c.Sorted)
	assert.Equal(t, [][]int{{1, 2, 3, 4}}, c.Polylines)
	assert.Equal(t, [][2]int{{1, 2}, {2, 3}, {3, 4}}, c.Bars)

	c = out.Curves[1]
	assert.False(t, c.Sorted)
	assert.Equal(t, []int{1}, c.Branches)
	assert.Equal(t, [][2]int{{1, 2}, {1, 3}, {1, 4}}, c.Bars)

	c = out.Curves[2]
	assert.True(t, c.Sorted)
	assert.Equal(t, []bool{true}, c.Closed)
	assert.Equal(t, [][]int{{5, 6, 7, 5}}, c.Polylines)

	c = out.Curves[3]
	assert.True(t, c.Sorted)
	assert.Equal(t, [][]int{{10, 11}, {12, 13}}, c.Polylines)
}

func TestSortCommandStrict(t *testing.T) {
	input := writeTemp(t, "curves.yaml", testInput)
	{ // Flag
		stdout, err := execute(t, "sort", "-I", input, "--strict")
		require.NoError(t, err)
		out := &SortOutput{}
		require.NoError(t, yaml.Unmarshal([]byte(stdout), out))
		assert.False(t, out.Curves[3].Sorted)
		assert.True(t, out.Curves[0].Sorted)
	}
	{ // Configuration file
		config := writeTemp(t, "pysurf.yaml", "strict: true\n")
		stdout, err := execute(t, "--config", config, "sort", "-I", input)
		require.NoError(t, err)
		out := &SortOutput{}
		require.NoError(t, yaml.Unmarshal([]byte(stdout), out))
		assert.False(t, out.Curves[3].Sorted)
	}
}

func TestSortCommandOutputFile(t *testing.T) {
	input := writeTemp(t, "curves.yaml", testInput)
	output := filepath.Join(t.TempDir(), "sorted.yaml")
	stdout, err := execute(t, "sort", "-I", input, "-o", output)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Curves[intersection] = sorted, 3 bars, 1 polylines")
	assert.Contains(t, stdout, "Curves[junction] = unsorted, 3 bars, 2 polylines, branches [1]")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	out := &SortOutput{}
	require.NoError(t, yaml.Unmarshal(data, out))
	assert.Len(t, out.Curves, 4)
}

func TestSortCommandErrors(t *testing.T) {
	_, err := execute(t, "sort")
	assert.ErrorContains(t, err, "must supply an input file")

	_, err = execute(t, "sort", "-I", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := writeTemp(t, "bad.yaml", "Title: x\nBase: 3\nCurves:\n  - Name: a\n    Bars: [[3, 4]]\n")
	_, err = execute(t, "sort", "-I", bad)
	assert.ErrorContains(t, err, "base must be 0 or 1")

	_, err = execute(t, "--profile", "gpu", "sort", "-I", bad)
	assert.ErrorContains(t, err, "unknown profile mode")
}

func TestSortCommandVerbose(t *testing.T) {
	input := writeTemp(t, "curves.yaml", testInput)
	output := filepath.Join(t.TempDir(), "sorted.yaml")
	stdout, err := execute(t, "-v", "sort", "-I", input, "-o", output)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Curves[Intersection] = 3 bars")
	assert.Contains(t, stdout, "Curves[Split] = 2 bars")

	stdout, err = execute(t, "sort", "-I", input, "-o", output)
	require.NoError(t, err)
	assert.NotContains(t, stdout, "Curves[Intersection] = 3 bars")
}

func TestSortCommandRejectsMalformedBars(t *testing.T) {
	bad := writeTemp(t, "bad.yaml", "Base: 0\nCurves:\n  - Name: a\n    Bars: [[3, 4, 9], [7]]\n")
	_, err := execute(t, "sort", "-I", bad)
	assert.ErrorContains(t, err, `curve "a" bar 0`)
}
