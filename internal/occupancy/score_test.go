package occupancy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreSentence(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		want     int
	}{
		{
			"same store with time anchor",
			"Our same store portfolio was 94.3% leased as of December 31",
			28, // same store 10 + portfolio 5 + as of 8 + leased 5
		},
		{
			"percent leased stacks with leased",
			"The percent leased for the portfolio remained stable",
			17, // percent leased 7 + leased 5 + portfolio 5
		},
		{
			"occupancy trend",
			"Occupancy increased during the year ended June 30",
			16, // occupancy 5 + increased 3 + ended 8
		},
		{"no signals", "Revenue grew across all segments", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreSentence(tt.sentence))
		})
	}
}

func TestDisqualified(t *testing.T) {
	assert.True(t, disqualified("Stabilization means achieving occupancy of 90%"))
	assert.True(t, disqualified("the definition of occupied property"))
	assert.True(t, disqualified("annualized base rent per leased square foot"))
	assert.False(t, disqualified("our portfolio was 98.2% leased"))
}

func TestBestCandidate(t *testing.T) {
	_, ok := bestCandidate(nil)
	assert.False(t, ok)

	best, ok := bestCandidate([]candidate{
		{score: 5, rate: 99.0},
		{score: 20, rate: 94.0},
		{score: 20, rate: 96.0}, // ties broken by higher rate
	})
	require.True(t, ok)
	assert.Equal(t, 96.0, best.rate)
	assert.Equal(t, 20, best.score)
}

func TestContextSentence(t *testing.T) {
	text := "See note 4 for details. Our same store portfolio of industrial properties was 94% leased throughout. Other text follows."
	got := contextSentence(text)
	assert.Contains(t, got, "same store portfolio")

	// No qualifying sentence: the first sentence wins by default.
	assert.Equal(t, "Short intro.", contextSentence("Short intro. Next part here."))
}
