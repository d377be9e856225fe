package sampling

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// TestCosineHemisphereMatchesPDF checks that a histogram of
// RandomCosineDirection samples, bucketed by cos^2(theta), matches the
// analytic cosine-weighted PDF within tolerance.
func TestCosineHemisphereMatchesPDF(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	normal := core.Vec3{X: 0, Y: 0, Z: 1}

	const nSamples = 200000
	const nBuckets = 16
	counts := make([]int, nBuckets)

	for i := 0; i < nSamples; i++ {
		wi := RandomCosineDirection(normal, rng)
		cosTheta := normal.Dot(wi)
		bucket := int(cosTheta * cosTheta * nBuckets)
		if bucket >= nBuckets {
			bucket = nBuckets - 1
		}
		if bucket < 0 {
			continue
		}
		counts[bucket]++
	}

	// under p(wi)=cosTheta/pi the density of cosTheta over [0,1] is
	// 2*cosTheta, so cos^2(theta) is uniform on [0,1] and each bucket
	// should receive roughly nSamples/nBuckets samples.
	expected := float64(nSamples) / nBuckets
	for b, c := range counts {
		if math.Abs(float64(c)-expected)/expected > 0.1 {
			t.Errorf("bucket %d: got %d samples, want ~%.0f", b, c, expected)
		}
	}
}

func TestSphereConePDFInsideSphereFallsBackToUniform(t *testing.T) {
	pdf := SphereConePDF(0.5, 1.0)
	want := SphereUniformPDF(1.0)
	if math.Abs(pdf-want) > 1e-9 {
		t.Errorf("got %v, want %v", pdf, want)
	}
}

func TestSampleSphereConeStaysWithinCone(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	point := core.Vec3{X: 0, Y: 0, Z: -5}
	center := core.Vec3{X: 0, Y: 0, Z: 0}
	radius := 1.0

	toCenter := center.Subtract(point)
	distance := toCenter.Length()
	dir := toCenter.Multiply(1 / distance)
	sinThetaMax := radius / distance
	cosThetaMax := math.Sqrt(1 - sinThetaMax*sinThetaMax)

	for i := 0; i < 1000; i++ {
		wi := SampleSphereCone(point, center, radius, rng)
		cosTheta := wi.Dot(dir)
		if cosTheta < cosThetaMax-1e-9 {
			t.Fatalf("sample outside cone: cosTheta=%v < cosThetaMax=%v", cosTheta, cosThetaMax)
		}
	}
}

func TestFresnelDielectricNormalIncidence(t *testing.T) {
	// At normal incidence, R = ((eta-1)/(eta+1))^2.
	eta := 1.5
	got := FresnelDielectric(1.0, eta)
	want := math.Pow((eta-1)/(eta+1), 2)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFresnelDielectricTotalInternalReflection(t *testing.T) {
	// Going from dense (eta=1.5 -> entering from inside, eta=1/1.5) to
	// rare at a grazing angle should total-internally-reflect.
	got := FresnelDielectric(0.05, 1/1.5)
	if got != 1 {
		t.Errorf("expected total internal reflection (1.0), got %v", got)
	}
}

func TestGGXDistributionPeaksAtNormal(t *testing.T) {
	alpha := 0.2
	atNormal := GGXDistribution(1.0, alpha)
	atGrazing := GGXDistribution(0.1, alpha)
	if atNormal <= atGrazing {
		t.Errorf("expected D(1.0) > D(0.1), got %v <= %v", atNormal, atGrazing)
	}
}

func TestReflectPreservesLength(t *testing.T) {
	v := core.Vec3{X: 1, Y: -1, Z: 0.5}.Normalize()
	n := core.Vec3{X: 0, Y: 0, Z: 1}
	r := Reflect(v, n)
	if math.Abs(r.Length()-1) > 1e-9 {
		t.Errorf("reflected vector length = %v, want 1", r.Length())
	}
}
