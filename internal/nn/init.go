package nn

import (
	"math"
	"math/rand"
)

// Xavier (Glorot) initialization for weights.
//
// Returns fanIn*fanOut values drawn from the uniform distribution
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))), which helps
// maintain the variance of activations across layers.
func Xavier(fanIn, fanOut int) []float32 {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	data := make([]float32, fanIn*fanOut)
	for i := range data {
		//nolint:gosec // math/rand is fine for weight initialization
		data[i] = float32((rand.Float64()*2.0 - 1.0) * bound)
	}
	return data
}
