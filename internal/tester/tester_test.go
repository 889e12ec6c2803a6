package tester

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/mtcli/internal/ini"
)

var now = time.Date(2024, 5, 1, 9, 30, 5, 0, time.UTC)

func TestParamsTesterDefaults(t *testing.T) {
	t.Parallel()

	tst, err := Params{Expert: "MyEA", Symbol: "EURUSD", Period: "h1"}.Tester()
	require.NoError(t, err)
	assert.Equal(t, "[Tester]\n"+
		"Expert=MyEA\n"+
		"Symbol=EURUSD\n"+
		"Period=H1\n"+
		"Model=0\n"+
		"Optimization=0\n", tst.String())
}

func TestParamsTesterEnums(t *testing.T) {
	t.Parallel()

	delay := -1
	tst, err := Params{
		Expert: "MyEA", Symbol: "EURUSD", Period: "M5",
		Model: "realticks", Optimization: "fast", Criterion: "complex", Forward: "1/3",
		ExecDelayMs: &delay,
	}.Tester()
	require.NoError(t, err)
	assert.Equal(t, 4, tst.Model)
	assert.Equal(t, 2, tst.Optimization)
	require.NotNil(t, tst.Criterion)
	assert.Equal(t, 7, *tst.Criterion)
	require.NotNil(t, tst.ForwardMode)
	assert.Equal(t, 2, *tst.ForwardMode)
	assert.Equal(t, &delay, tst.ExecutionMode)
}

func TestParamsTesterErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		wantErr string
		params  Params
	}{
		{name: "missing ea", params: Params{Symbol: "EURUSD", Period: "H1"}, wantErr: "missing required field: ea"},
		{name: "missing period", params: Params{Expert: "A", Symbol: "EURUSD"}, wantErr: "missing required field: period"},
		{name: "bad timeframe", params: Params{Expert: "A", Symbol: "X", Period: "H5"}, wantErr: "invalid timeframe: H5"},
		{name: "bad model", params: Params{Expert: "A", Symbol: "X", Period: "H1", Model: "fast"}, wantErr: "model: invalid choice"},
		{name: "bad criterion", params: Params{Expert: "A", Symbol: "X", Period: "H1", Criterion: "x"}, wantErr: "criterion: invalid choice"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.params.Tester()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestExpandReport(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `\reports\run_20240501-093005_a-1.htm`, ExpandReport(`\reports\run_{ts}_{label}.htm`, now, "a-1"))
	assert.Equal(t, "tester-20240501-093005.ini", RunFileName(now))
}

func TestCombinationsSortedProduct(t *testing.T) {
	t.Parallel()

	plan, err := ParsePlan([]byte(`{"base": {"ea": "A", "symbol": "EURUSD", "period": "H1"}, "grid": {"b": [1, 2], "a": ["x", "y", "z"]}}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, plan.Keys())
	combos := plan.Combinations()
	require.Len(t, combos, 6)
	assert.Equal(t, []any{"x", 1}, combos[0])
	assert.Equal(t, []any{"x", 2}, combos[1])
	assert.Equal(t, []any{"z", 2}, combos[5])
}

func TestCombinationsEmptyGrid(t *testing.T) {
	t.Parallel()

	assert.Equal(t, [][]any{{}}, Plan{}.Combinations())
	assert.Empty(t, Plan{Grid: map[string][]any{"a": {}}}.Combinations())
}

func TestLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Start-0930_TP-1.5_Trail-true",
		Label([]string{"Start", "TP", "Trail"}, []any{"09:30", 1.5, true}))
}

func TestJobs(t *testing.T) {
	t.Parallel()

	plan, err := ParsePlan([]byte(`
base:
  ea: Examples\MACD\MACD Sample
  symbol: EURUSD
  period: m15
  deposit: 10000
  inputs:
    Lots: 0.1
    TakeProfit: 50
grid:
  TakeProfit: [40, 60]
  StopLoss: [20]
`))
	require.NoError(t, err)

	jobs, err := plan.Jobs()
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	first := jobs[0]
	assert.Equal(t, 1, first.Index)
	assert.Equal(t, "StopLoss-20_TakeProfit-40", first.Label)
	assert.Equal(t, "batch_001_StopLoss-20_TakeProfit-40.ini", first.FileName)
	assert.Equal(t, "[Tester]\n"+
		"Expert=Examples\\\\MACD\\\\MACD Sample\n"+
		"Symbol=EURUSD\n"+
		"Period=M15\n"+
		"Model=0\n"+
		"Optimization=0\n"+
		"Report=\\\\reports\\\\batch_20240501-093005.htm\n"+
		"Deposit=10000\n"+
		"ShutdownTerminal=1\n"+
		"\n"+
		"[TesterInputs]\n"+
		"Lots=0.1\n"+
		"TakeProfit=40\n"+
		"StopLoss=20\n", first.Config(now))

	assert.Equal(t, "batch_002_StopLoss-20_TakeProfit-60.ini", jobs[1].FileName)
	assert.Contains(t, jobs[1].Config(now), "TakeProfit=60\n")
	assert.Len(t, plan.Base.Inputs, 2, "base inputs must not be modified")
}

func TestJobsReportLabelAndShutdownOverride(t *testing.T) {
	t.Parallel()

	off := false
	plan := Plan{
		Base: Params{Expert: "A", Symbol: "EURUSD", Period: "H1", Report: "reports/{label}.htm", Shutdown: &off},
		Grid: map[string][]any{"p": {1}},
	}
	jobs, err := plan.Jobs()
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Contains(t, jobs[0].Config(now), "Report=\\\\reports\\\\p-1.htm\n")
	assert.Contains(t, jobs[0].Config(now), "ShutdownTerminal=0\n")
}

func TestJobConfigStampsEachRun(t *testing.T) {
	t.Parallel()

	plan := Plan{
		Base: Params{Expert: "A", Symbol: "EURUSD", Period: "H1", Report: `\reports\r_{ts}.htm`},
		Grid: map[string][]any{"p": {1, 2}},
	}
	jobs, err := plan.Jobs()
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Contains(t, jobs[0].Config(now), "Report=\\\\reports\\\\r_20240501-093005.htm\n")
	assert.Contains(t, jobs[1].Config(now.Add(3*time.Second)), "Report=\\\\reports\\\\r_20240501-093008.htm\n")
}

func TestJobsInvalidBase(t *testing.T) {
	t.Parallel()

	_, err := Plan{Base: Params{Symbol: "EURUSD", Period: "H1"}}.Jobs()
	require.ErrorIs(t, err, ErrMissingField)
}

func TestDocument(t *testing.T) {
	t.Parallel()

	doc := Document(ini.Tester{Expert: "A", Symbol: "S", Period: "H1"}, nil)
	assert.Equal(t, "[Tester]\nExpert=A\nSymbol=S\nPeriod=H1\nModel=0\nOptimization=0\n\n[TesterInputs]\n", doc)
}
