package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntentForMirrorsCandidate(t *testing.T) {
	t.Parallel()

	c := Candidate{
		Symbol:      "SPY",
		Side:        "BUY",
		Entry:       Leg{Type: "LIMIT", Price: 100},
		Stop:        Leg{Type: "STOP", Price: 98.5},
		TakeProfit:  Leg{Type: "LIMIT", Price: 105},
		TimeInForce: "GTC",
	}

	intent := IntentFor(c)
	assert.Equal(t, "BRACKET", intent.Type)
	assert.Equal(t, c.Entry, intent.Entry)
	assert.Equal(t, c.Stop, intent.Stop)
	assert.Equal(t, c.TakeProfit, intent.TakeProfit)
	assert.Equal(t, "GTC", intent.TimeInForce)
}

func TestIntentForDefaultsTimeInForce(t *testing.T) {
	t.Parallel()

	intent := IntentFor(Candidate{Symbol: "SPY"})
	assert.Equal(t, "DAY", intent.TimeInForce)
}
