package config_test

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/agentsociety-incometax/incometax"
	"github.com/tsinghua-fib-lab/agentsociety-incometax/incometax/germany"
	"github.com/tsinghua-fib-lab/agentsociety-incometax/utils/config"
)

const sample = `
tax:
  year: "2024"
levy:
  redistribution: true
  agents:
    - {id: 1, income: 100000, deduction: 50000}
    - {id: 2, income: 70000}
`

func TestParse(t *testing.T) {
	c, err := config.Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, germany.TaxType2024, c.Tax)
	require.NotNil(t, c.Levy)
	assert.True(t, c.Levy.Redistribution)
	assert.Equal(t, []config.AgentIncome{
		{ID: 1, Income: 100_000, Deduction: 50_000},
		{ID: 2, Income: 70_000},
	}, c.Levy.Agents)
}

func TestParseErrors(t *testing.T) {
	_, err := config.Parse([]byte("levy: {agents: []}\n"))
	assert.ErrorContains(t, err, "tax.year")

	_, err = config.Parse([]byte("tax: {year: \"2030\"}\n"))
	var unsupported *incometax.UnsupportedYearError
	assert.True(t, errors.As(err, &unsupported))

	_, err = config.Parse([]byte("tax: {year: \"2024\"}\nunknown: 1\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	fromFile, err := config.Load(path, "")
	require.NoError(t, err)

	fromData, err := config.Load("", base64.StdEncoding.EncodeToString([]byte(sample)))
	require.NoError(t, err)
	assert.Equal(t, fromFile, fromData)

	_, err = config.Load("", "")
	assert.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yml"), "")
	assert.Error(t, err)

	_, err = config.Load("", "%%%")
	assert.Error(t, err)
}
