package prompt

import (
	"errors"
	"io"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedPrompter struct {
	err       error
	answer    string
	prompts   []string
	suggested []string
}

func (s *scriptedPrompter) PromptWithSuggestion(prompt, text string, _ int) (string, error) {
	s.prompts = append(s.prompts, prompt)
	s.suggested = append(s.suggested, text)
	if s.err != nil {
		return "", s.err
	}
	return s.answer, nil
}

func (*scriptedPrompter) Close() error { return nil }

func TestEditReturnsAnswer(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{answer: `D:\MT5\terminal64.exe`}
	got, err := Edit(p, "terminal", `C:\Program Files\MetaTrader 5\terminal64.exe`)
	require.NoError(t, err)
	assert.Equal(t, `D:\MT5\terminal64.exe`, got)
	assert.Equal(t, []string{`C:\Program Files\MetaTrader 5\terminal64.exe`}, p.suggested)
	assert.Contains(t, p.prompts[0], "terminal: ")
}

func TestEditCancelled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		name string
	}{
		{name: "ctrl-c", err: liner.ErrPromptAborted},
		{name: "eof", err: io.EOF},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Edit(&scriptedPrompter{err: tt.err}, "data_dir", "")
			assert.ErrorIs(t, err, ErrCancelled)
		})
	}
}

func TestEditWrapsOtherErrors(t *testing.T) {
	t.Parallel()

	_, err := Edit(&scriptedPrompter{err: errors.New("tty gone")}, "metaeditor", "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCancelled)
	assert.Contains(t, err.Error(), "tty gone")
}
