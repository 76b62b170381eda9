package filter

import (
	"math"
	"sync"
)

// GaussianKernel generates a 1D Gaussian kernel for the given radius.
// The radius is used as the standard deviation and the kernel is normalized
// so all values sum to 1.0.
//
// The kernel size is 2 * ceil(radius * 3) + 1, which covers 99.7% of the
// distribution. For radius <= 0, returns the identity kernel [1.0].
func GaussianKernel(radius float64) []float32 {
	if radius <= 0 || math.IsNaN(radius) {
		return []float32{1.0}
	}

	halfSize := int(math.Ceil(radius * 3))
	size := halfSize*2 + 1
	kernel := make([]float32, size)

	twoSigmaSq := 2 * radius * radius
	sum := float64(0)
	for i := 0; i < size; i++ {
		x := float64(i - halfSize)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}

	invSum := float32(1.0 / sum)
	for i := range kernel {
		kernel[i] *= invSum
	}
	return kernel
}

// KernelExtent returns how many pixels a blur of the given radius reaches
// beyond its input on each side.
func KernelExtent(radius float64) int {
	if radius <= 0 {
		return 0
	}
	return int(math.Ceil(radius * 3))
}

// kernels memoizes kernels by radius quantized to 0.01 px. An icon build
// reuses a handful of radii, so the map never grows beyond a few entries.
var kernels sync.Map // map[int][]float32

// cachedKernel returns a memoized Gaussian kernel for the radius.
func cachedKernel(radius float64) []float32 {
	key := int(radius * 100)
	if k, ok := kernels.Load(key); ok {
		return k.([]float32)
	}
	k := GaussianKernel(radius)
	kernels.Store(key, k)
	return k
}
