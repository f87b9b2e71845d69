// Package animation evaluates Bezier position curves and quaternion
// slerp chains over a looping time parameter and drives transforms with
// the results.
package animation

import (
	"errors"
	"fmt"
	stdmath "math"

	"github.com/chewxy/math32"

	"github.com/gregoryw3/open-cv-imgui/pkg/math"
)

// ErrInvalidCurve is returned for a control polygon with fewer than two
// points.
var ErrInvalidCurve = errors.New("invalid curve")

// MaxDegree is the highest curve degree whose binomial coefficients fit
// in a uint64 without overflow during evaluation.
const MaxDegree = 60

func checkPoints(n int) error {
	if n < 2 {
		return fmt.Errorf("%w: need at least 2 control points, got %d", ErrInvalidCurve, n)
	}
	if n-1 > MaxDegree {
		return fmt.Errorf("%w: degree %d exceeds %d", ErrInvalidCurve, n-1, MaxDegree)
	}
	return nil
}

// Binomial returns C(n, k) computed with the multiplicative formula.
// Every intermediate value is itself a binomial coefficient, so the
// integer division is exact.
func Binomial(n, k int) uint64 {
	if k < 0 || k > n {
		return 0
	}
	k = min(k, n-k)
	var r uint64 = 1
	for i := 0; i < k; i++ {
		r = r * uint64(n-i) / uint64(i+1)
	}
	return r
}

// BinomialGamma returns C(n, k) as Γ(n+1) / (Γ(k+1) Γ(n-k+1)).
// It is kept as a reference for Binomial and degrades at high n.
func BinomialGamma(n, k int) float64 {
	return stdmath.Gamma(float64(n+1)) / (stdmath.Gamma(float64(k+1)) * stdmath.Gamma(float64(n-k+1)))
}

// bernstein returns C(n,i) t^i (1-t)^(n-i).
func bernstein(n, i int, t float32) float32 {
	return float32(Binomial(n, i)) * math32.Pow(t, float32(i)) * math32.Pow(1-t, float32(n-i))
}

// BezierPoint evaluates the Bezier curve of degree len(points)-1 at t.
func BezierPoint(t float32, points []math.Vec3) (math.Vec3, error) {
	if err := checkPoints(len(points)); err != nil {
		return math.Vec3{}, err
	}
	n := len(points) - 1
	var p math.Vec3
	for i, cp := range points {
		p = p.Add(cp.Scale(bernstein(n, i, t)))
	}
	return p, nil
}

// SlerpChain blends quats in order, starting from quats[0] and slerping
// toward each following quaternion by its Bernstein weight at t. Slerp
// is not associative, so the order of evaluation is part of the result.
func SlerpChain(t float32, quats []math.Quat) (math.Quat, error) {
	if err := checkPoints(len(quats)); err != nil {
		return math.Quat{}, err
	}
	n := len(quats) - 1
	result := quats[0]
	for i := 1; i <= n; i++ {
		result = result.Slerp(quats[i], bernstein(n, i, t))
	}
	return result, nil
}

// SampleCurve returns segments+1 points of the curve at t = i/segments,
// for drawing it as a polyline.
func SampleCurve(points []math.Vec3, segments int) ([]math.Vec3, error) {
	if err := checkPoints(len(points)); err != nil {
		return nil, err
	}
	if segments < 1 {
		return nil, fmt.Errorf("%w: %d segments", ErrInvalidCurve, segments)
	}
	out := make([]math.Vec3, 0, segments+1)
	for i := 0; i <= segments; i++ {
		p, _ := BezierPoint(float32(i)/float32(segments), points)
		out = append(out, p)
	}
	return out, nil
}
