// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shader

import "github.com/chewxy/math32"

// Vec2 is a two-component float32 vector.
type Vec2 struct{ X, Y float32 }

// Vec3 is a three-component float32 vector.
type Vec3 struct{ X, Y, Z float32 }

func v2(x, y float32) Vec2    { return Vec2{x, y} }
func v3(x, y, z float32) Vec3 { return Vec3{x, y, z} }
func splat(s float32) Vec3    { return Vec3{s, s, s} }

func (a Vec2) Add(b Vec2) Vec2       { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Scale(s float32) Vec2  { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Dot(b Vec2) float32    { return a.X*b.X + a.Y*b.Y }
func (a Vec2) Len() float32          { return math32.Sqrt(a.Dot(a)) }
func (a Vec2) Sub(b Vec2) Vec2       { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec3) Add(b Vec3) Vec3       { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3       { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Scale(s float32) Vec3  { return Vec3{a.X * s, a.Y * s, a.Z * s} }
func (a Vec3) Dot(b Vec3) float32    { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
func (a Vec3) Len() float32          { return math32.Sqrt(a.Dot(a)) }
func (a Vec3) XZ() Vec2              { return Vec2{a.X, a.Z} }
func (a Vec3) Abs() Vec3             { return Vec3{math32.Abs(a.X), math32.Abs(a.Y), math32.Abs(a.Z)} }
func (a Vec3) MaxScalar(s float32) Vec3 {
	return Vec3{math32.Max(a.X, s), math32.Max(a.Y, s), math32.Max(a.Z, s)}
}

// Normalize returns a unit vector, or the zero vector unchanged.
func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l == 0 {
		return a
	}
	return a.Scale(1 / l)
}

func fract(x float32) float32 { return x - math32.Floor(x) }

func mix(a, b, t float32) float32 { return a + (b-a)*t }

func mix3(a, b Vec3, t float32) Vec3 { return a.Add(b.Sub(a).Scale(t)) }

func clamp(x, lo, hi float32) float32 { return math32.Max(lo, math32.Min(hi, x)) }

func smoothstep(e0, e1, x float32) float32 {
	t := clamp((x-e0)/(e1-e0), 0, 1)
	return t * t * (3 - 2*t)
}
