package core

import (
	"math/rand"
)

// Sampler provides random numbers for rendering algorithms.
// Each render owns its sampler; it is never shared between goroutines.
type Sampler interface {
	Get1D() float64
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with a deterministic seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// SamplePointInUnitSphere draws points in the [-1,1]³ cube until one falls
// strictly inside the unit sphere
func SamplePointInUnitSphere(sampler Sampler) Vec3 {
	for {
		u := sampler.Get3D()
		p := NewVec3(2*u.X-1, 2*u.Y-1, 2*u.Z-1)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// SampleUnitVector returns a direction uniformly distributed on the unit sphere
func SampleUnitVector(sampler Sampler) Vec3 {
	for {
		p := SamplePointInUnitSphere(sampler)
		// Points too close to the center lose precision when normalized
		if p.LengthSquared() > 1e-160 {
			return p.Normalize()
		}
	}
}
