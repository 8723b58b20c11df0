package actson

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumberStep(t *testing.T) {
	cases := []struct {
		phase numPhase
		b     byte
		next  numPhase
		res   numResult
	}{
		{numSign, '0', numIntZero, numContinue},
		{numSign, '9', numIntDigits, numContinue},
		{numSign, 'a', numSign, numReject},
		{numIntZero, '1', numIntZero, numReject},
		{numIntZero, ',', numIntZero, numTerminate},
		{numIntZero, '.', numFracPoint, numContinue},
		{numIntDigits, '2', numIntDigits, numContinue},
		{numIntDigits, 'e', numExpMark, numContinue},
		{numFracPoint, '5', numFracDigits, numContinue},
		{numFracPoint, 'x', numFracPoint, numReject},
		{numFracDigits, '6', numFracDigits, numContinue},
		{numFracDigits, 'E', numExpMark, numContinue},
		{numExpMark, '+', numExpSign, numContinue},
		{numExpMark, '3', numExpDigits, numContinue},
		{numExpMark, 'x', numExpMark, numReject},
		{numExpSign, '4', numExpDigits, numContinue},
		{numExpSign, 'x', numExpSign, numReject},
		{numExpDigits, '5', numExpDigits, numContinue},
		{numExpDigits, ',', numExpDigits, numTerminate},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v+%q", c.phase, c.b), func(t *testing.T) {
			next, res := numberStep(c.phase, c.b)
			require.Equal(t, c.next, next)
			require.Equal(t, c.res, res)
		})
	}
}

func TestNumberCompleteAndFloatPhase(t *testing.T) {
	require.True(t, numberComplete(numIntZero))
	require.True(t, numberComplete(numIntDigits))
	require.True(t, numberComplete(numFracDigits))
	require.True(t, numberComplete(numExpDigits))
	require.False(t, numberComplete(numSign))
	require.False(t, numberComplete(numFracPoint))
	require.False(t, numberComplete(numExpMark))
	require.False(t, numberComplete(numExpSign))

	require.False(t, isFloatPhase(numIntZero))
	require.False(t, isFloatPhase(numIntDigits))
	require.True(t, isFloatPhase(numFracPoint))
	require.True(t, isFloatPhase(numFracDigits))
	require.True(t, isFloatPhase(numExpMark))
	require.True(t, isFloatPhase(numExpSign))
	require.True(t, isFloatPhase(numExpDigits))
}

func TestStartNumberPhase(t *testing.T) {
	require.Equal(t, numSign, startNumberPhase('-'))
	require.Equal(t, numIntZero, startNumberPhase('0'))
	require.Equal(t, numIntDigits, startNumberPhase('7'))
}
