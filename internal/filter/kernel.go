package filter

import (
	"math"
	"sync"
)

// GaussianKernel generates a normalized 1D Gaussian kernel for sigma.
//
// The kernel size is 2*ceil(3*sigma)+1, covering 99.7% of the
// distribution. For sigma <= 0 it returns the identity kernel [1].
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1}
	}

	half := int(math.Ceil(sigma * 3))
	kernel := make([]float32, half*2+1)

	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}

	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// kernelCache memoizes kernels by sigma quantized to 1/100 px. Shadow blur
// values come from a handful of presets, so the map stays small.
type kernelCache struct {
	mu      sync.RWMutex
	kernels map[int][]float32
}

var kernels = &kernelCache{kernels: make(map[int][]float32)}

func (c *kernelCache) get(sigma float64) []float32 {
	key := int(math.Round(sigma * 100))

	c.mu.RLock()
	k, ok := c.kernels[key]
	c.mu.RUnlock()
	if ok {
		return k
	}

	k = GaussianKernel(float64(key) / 100)
	c.mu.Lock()
	c.kernels[key] = k
	c.mu.Unlock()
	return k
}

// CachedGaussianKernel returns a shared, read-only kernel for sigma.
func CachedGaussianKernel(sigma float64) []float32 {
	return kernels.get(sigma)
}

// KernelRadius returns the number of pixels a blur with sigma spreads
// coverage beyond the source bounds.
func KernelRadius(sigma float64) int {
	if sigma <= 0 {
		return 0
	}
	return int(math.Ceil(sigma * 3))
}
