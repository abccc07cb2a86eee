// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shader

import (
	_ "embed"

	"github.com/chewxy/math32"
)

var (
	//go:embed shaders/common.wgsl
	commonWGSL string

	//go:embed shaders/iris.wgsl
	irisWGSL string

	//go:embed shaders/depth.wgsl
	depthWGSL string

	//go:embed shaders/lit.wgsl
	litWGSL string
)

// Ray marching limits shared by the depth and lit scenes.
const (
	maxSteps = 100
	maxDist  = 100
	surfDist = 0.01
)

// Iris returns the noise-textured eye scene.
func Iris() *Program {
	return &Program{Name: "iris", Width: 512, Height: 512, Source: commonWGSL + irisWGSL, Shade: shadeIris}
}

// Depth returns the ray-marched depth scene.
func Depth() *Program {
	return &Program{Name: "depth", Width: 512, Height: 512, Source: commonWGSL + depthWGSL, Shade: shadeDepth}
}

// Lit returns the lit primitives scene.
func Lit() *Program {
	return &Program{Name: "lit", Width: 512, Height: 512, Source: commonWGSL + litWGSL, Shade: shadeLit}
}

func hash(n float32) float32 {
	return fract(math32.Sin(n) * 43758.5453)
}

func noise(x Vec2) float32 {
	px, py := math32.Floor(x.X), math32.Floor(x.Y)
	fx, fy := fract(x.X), fract(x.Y)
	fx = fx * fx * (3 - 2*fx)
	fy = fy * fy * (3 - 2*fy)
	n := px + py*57
	return mix(mix(hash(n), hash(n+1), fx), mix(hash(n+57), hash(n+58), fx), fy)
}

func fbm(p Vec2) float32 {
	f := float32(0)
	f += 0.5000 * noise(p)
	p = p.Scale(2.02)
	f += 0.2500 * noise(p)
	p = p.Scale(2.03)
	f += 0.1250 * noise(p)
	p = p.Scale(2.01)
	f += 0.0625 * noise(p)
	return f / 0.9357
}

// centred maps uv in [0,1]² to [-1,1]².
func centred(uv Vec2) Vec2 { return v2(2*uv.X-1, 2*uv.Y-1) }

func shadeIris(uv Vec2, _ float32) RGB {
	p := centred(uv)
	r := p.Len()
	if r >= 0.8 {
		return RGB{}
	}
	a := math32.Atan2(p.Y, p.X)

	col := v3(0.3, 0.3, 0.4)
	col = mix3(col, v3(0.46, 0.2, 0), fbm(p.Scale(5)))

	f := 1 - smoothstep(0.3, 0.5, r)
	col = mix3(col, v3(0.9, 0.6, 0.2), 0.9*f)

	a += 0.05 * fbm(p.Scale(20))

	f = smoothstep(0.3, 1, fbm(v2(7*r, 20*a)))
	col = mix3(col, splat(1), 0.5*f)

	f = smoothstep(0.8, 0.9, fbm(v2(3*r, 15*a)))
	col = mix3(col, splat(0), f)

	col = col.Scale(1 - smoothstep(0.6, 0.8, r))
	col = col.Scale(smoothstep(0.2, 0.25, r))

	f = 0.9 - smoothstep(0, 0.5, p.Sub(v2(0.2, 0.2)).Len())
	col = col.Add(splat(f))

	return RGB{col.X, col.Y, col.Z}
}

// march steps along rd from ro through the distance field and returns the
// distance travelled.
func march(dist func(Vec3) float32, ro, rd Vec3) float32 {
	var d0 float32
	for range maxSteps {
		ds := dist(ro.Add(rd.Scale(d0)))
		d0 += ds
		if d0 > maxDist || ds < surfDist {
			break
		}
	}
	return d0
}

func depthDist(p Vec3) float32 {
	sphere := p.Sub(v3(0, 1, 6)).Len() - 1
	return math32.Min(sphere, p.Y)
}

func shadeDepth(uv Vec2, _ float32) RGB {
	p := centred(uv)
	rd := v3(p.X, p.Y, 1).Normalize()
	return Gray(march(depthDist, v3(0, 1, 0), rd) / 6)
}

func sdCapsule(p Vec3) float32 {
	a, b := v3(0, 1, 6), v3(1, 2, 6)
	ab := b.Sub(a)
	t := clamp(ab.Dot(p.Sub(a))/ab.Dot(ab), 0, 1)
	return p.Sub(a.Add(ab.Scale(t))).Len() - 0.5
}

func sdCylinder(p Vec3) float32 {
	a, b := v3(2, 0.5, 4), v3(5, 0.5, 7)
	ab := b.Sub(a)
	t := ab.Dot(p.Sub(a)) / ab.Dot(ab)
	x := p.Sub(a.Add(ab.Scale(t))).Len() - 0.5
	y := (math32.Abs(t-0.5) - 0.5) * ab.Len()
	e := v2(math32.Max(x, 0), math32.Max(y, 0)).Len()
	i := math32.Min(math32.Max(x, y), 0)
	return e + i
}

func sdTorus(p Vec3) float32 {
	o := p.Sub(v3(0, 0.5, 6))
	x := o.XZ().Len() - 1.9
	return v2(x, o.Y).Len() - 0.3
}

func sdBox(p Vec3) float32 {
	o := p.Sub(v3(-4, 0.5, 6))
	return o.Abs().Sub(splat(0.5)).MaxScalar(0).Len()
}

func litDist(p Vec3) float32 {
	d := math32.Min(sdCapsule(p), p.Y)
	d = math32.Min(sdTorus(p), d)
	d = math32.Min(sdBox(p), d)
	return math32.Min(sdCylinder(p), d)
}

func litNormal(p Vec3) Vec3 {
	const e = 0.01
	d := litDist(p)
	return v3(
		d-litDist(p.Sub(v3(e, 0, 0))),
		d-litDist(p.Sub(v3(0, e, 0))),
		d-litDist(p.Sub(v3(0, 0, e))),
	).Normalize()
}

// LightPosition returns where the lit scene's light sits at time t. It
// circles (0, 5, 6) once every 2π seconds.
func LightPosition(t float32) Vec3 {
	s, c := math32.Sincos(t)
	return v3(s, 5, 6+c)
}

func diffuse(p Vec3, t float32) float32 {
	lp := LightPosition(t)
	l := lp.Sub(p).Normalize()
	n := litNormal(p)
	dif := clamp(n.Dot(l), 0, 1)

	if march(litDist, p.Add(n.Scale(surfDist*2)), l) < lp.Sub(p).Len() {
		dif *= 0.1
	}
	return dif
}

func shadeLit(uv Vec2, t float32) RGB {
	p := centred(uv)
	ro := v3(0, 2, 0)
	rd := v3(p.X, p.Y-0.2, 1).Normalize()
	d := march(litDist, ro, rd)
	return Gray(diffuse(ro.Add(rd.Scale(d)), t))
}
