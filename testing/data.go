package testing

import (
	"crypto/rand"
	mathrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateRandomData returns size bytes of random data. It is guaranteed to
// either return a valid slice or fail the test and abort.
func CreateRandomData(t *testing.T, size int) []byte {
	data := make([]byte, size)

	_, err := rand.Read(data)
	require.NoErrorf(t, err, "failed to generate %d random bytes", size)
	return data
}

// CreateSkewedData returns size bytes drawn from the first alphabetSize byte
// values, where lower values are much more likely than higher ones. The output
// is deterministic for a given seed.
//
// Data like this compresses well with Huffman coding and produces codes of
// many different lengths.
func CreateSkewedData(size, alphabetSize int, seed int64) []byte {
	generator := mathrand.New(mathrand.NewSource(seed))
	data := make([]byte, size)
	for i := range data {
		// Taking the minimum of three uniform draws biases toward low values.
		value := generator.Intn(alphabetSize)
		for j := 0; j < 2; j++ {
			if other := generator.Intn(alphabetSize); other < value {
				value = other
			}
		}
		data[i] = byte(value)
	}
	return data
}
