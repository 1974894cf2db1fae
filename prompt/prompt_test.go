package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapAnswer(t *testing.T) {
	tests := []struct {
		in   byte
		want Choice
	}{
		{in: 'r', want: ChoiceExecute},
		{in: 'R', want: ChoiceExecute},
		{in: 'y', want: ChoiceExecute},
		{in: 'Y', want: ChoiceExecute},
		{in: 'v', want: ChoiceView},
		{in: 'V', want: ChoiceView},
		{in: 'o', want: ChoiceView},
		{in: 'O', want: ChoiceView},
		{in: 'c', want: ChoiceCancel},
		{in: 'n', want: ChoiceCancel},
		{in: '\x1b', want: ChoiceCancel},
		{in: '\n', want: ChoiceCancel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, mapAnswer(tt.in), "answer %q", tt.in)
	}
}

func TestViewOnly(t *testing.T) {
	// The no-interaction fallback must never pick Execute.
	choice, err := viewOnly{}.Choose(`C:\scripts\deploy.rb`)
	assert.NoError(t, err)
	assert.Equal(t, ChoiceView, choice)
}

func TestPsQuote(t *testing.T) {
	assert.Equal(t, "'plain'", psQuote("plain"))
	assert.Equal(t, "'it''s'", psQuote("it's"))
	assert.Equal(t, "''", psQuote(""))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "deploy.rb", displayName("/home/dev/deploy.rb"))
	assert.Equal(t, "tool", displayName("tool"))
}

func TestChoiceString(t *testing.T) {
	assert.Equal(t, "execute", ChoiceExecute.String())
	assert.Equal(t, "view", ChoiceView.String())
	assert.Equal(t, "cancel", ChoiceCancel.String())
}
