package core

import (
	"math"
	"math/rand"
	"testing"
)

// fixedSampler replays a fixed sequence of values
type fixedSampler struct {
	values []float64
	next   int
}

func (f *fixedSampler) Get1D() float64 {
	v := f.values[f.next%len(f.values)]
	f.next++
	return v
}

func (f *fixedSampler) Get3D() Vec3 {
	return NewVec3(f.Get1D(), f.Get1D(), f.Get1D())
}

func TestRandomSampler_Range(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	for i := 0; i < 1000; i++ {
		v := sampler.Get1D()
		if v < 0 || v >= 1 {
			t.Fatalf("Get1D returned %f, outside [0,1)", v)
		}
		p := sampler.Get3D()
		for _, c := range []float64{p.X, p.Y, p.Z} {
			if c < 0 || c >= 1 {
				t.Fatalf("Get3D returned %v, outside [0,1)", p)
			}
		}
	}
}

func TestSeededSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(7)
	b := NewSeededSampler(7)
	for i := 0; i < 100; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatalf("Samplers with equal seeds diverged at draw %d", i)
		}
	}
}

func TestSamplePointInUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitSphere(sampler)
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("Point %v lies outside the unit sphere", p)
		}
	}
}

func TestSamplePointInUnitSphere_RejectsCorners(t *testing.T) {
	// First triple maps to (1,1,1)-ish and must be rejected; second maps to the origin
	sampler := &fixedSampler{values: []float64{0.99, 0.99, 0.99, 0.5, 0.5, 0.5}}
	p := SamplePointInUnitSphere(sampler)
	if !p.Equals(NewVec3(0, 0, 0)) {
		t.Errorf("Expected origin after rejecting the corner sample, got %v", p)
	}
	if sampler.next != 6 {
		t.Errorf("Expected 6 draws, got %d", sampler.next)
	}
}

func TestSampleUnitVector(t *testing.T) {
	sampler := NewSeededSampler(42)
	var mean Vec3
	const n = 20000
	for i := 0; i < n; i++ {
		v := SampleUnitVector(sampler)
		if math.Abs(v.Length()-1.0) > 1e-9 {
			t.Fatalf("Sample %v is not unit length", v)
		}
		mean = mean.Add(v)
	}
	mean = mean.Multiply(1.0 / n)
	if mean.Length() > 0.05 {
		t.Errorf("Unit vectors should be isotropic, mean was %v", mean)
	}
}
