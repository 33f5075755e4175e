package hashtable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextPrime(t *testing.T) {
	cases := map[int]int{
		-5:  2,
		0:   2,
		1:   2,
		2:   2,
		3:   3,
		4:   5,
		17:  17,
		18:  19,
		35:  37,
		90:  97,
		500: 503,
	}
	for in, want := range cases {
		require.Equal(t, want, nextPrime(in), "nextPrime(%d)", in)
	}
}

func TestGrowSequenceStaysPrime(t *testing.T) {
	n := DefaultBuckets
	for i := 0; i < 12; i++ {
		n = nextPrime(2*n + 1)
		require.True(t, isPrime(n), "%d", n)
	}
}
