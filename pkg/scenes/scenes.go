// Package scenes holds programmatic built-in scene graphs, one per
// end-to-end scenario in spec §8, mirroring the teacher's pkg/scene
// package: scenes are assembled by calling Go constructors directly, never
// by parsing a file format (no scene-description loader is in scope).
package scenes

import (
	"github.com/df07/go-pathtracer/pkg/camera"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/light"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/primitive"
	"github.com/df07/go-pathtracer/pkg/shape"
	"github.com/df07/go-pathtracer/pkg/texture"
)

func skyCamera(aspect float64) *camera.Camera {
	return camera.NewCamera(camera.Options{
		LookFrom: core.Vec3{X: 0, Y: 0, Z: 3}, LookAt: core.Vec3{X: 0, Y: 0, Z: 0},
		ViewUp: core.Vec3{X: 0, Y: 1, Z: 0}, VerticalFOVDegrees: 40, AspectRatio: aspect,
		Aperture: 0, FocusDist: 3,
	})
}

// EmptyWorldSky builds scenario 1: only an environment light, no geometry.
func EmptyWorldSky(aspect float64) *core.Scene {
	world := primitive.NewPrimitiveList(nil)
	sky := light.NewEnvironment(texture.NewConstant(core.ColorRGB{X: 0.5, Y: 0.7, Z: 1.0}))
	return &core.Scene{
		Camera: skyCamera(aspect),
		World:  world,
		Lights: core.NewLightList([]core.Light{sky}),
	}
}

// BlackHole builds scenario 2: one perfectly absorbing sphere under a
// constant sky; the sphere's silhouette should read as pure black.
func BlackHole(aspect float64) *core.Scene {
	sphereShape := shape.NewSphere(core.Vec3{}, 1.0)
	absorbing := material.NewLambertian(core.ColorRGB{})
	sphere := primitive.NewGeometricPrimitive(sphereShape, core.Identity(), absorbing)

	world := primitive.NewPrimitiveList([]core.Primitive{sphere})
	sky := light.NewEnvironment(texture.NewConstant(core.ColorRGB{X: 0.5, Y: 0.7, Z: 1.0}))
	return &core.Scene{
		Camera: skyCamera(aspect),
		World:  world,
		Lights: core.NewLightList([]core.Light{sky}),
	}
}

// CornellCeilingLight builds scenario 3: a classic Cornell box lit only by
// a ceiling area light, grounded on the teacher's pkg/scene/cornell.go.
func CornellCeilingLight() *core.Scene {
	const boxSize = 555.0
	white := material.NewLambertian(core.ColorRGB{X: 0.73, Y: 0.73, Z: 0.73})
	red := material.NewLambertian(core.ColorRGB{X: 0.65, Y: 0.05, Z: 0.05})
	green := material.NewLambertian(core.ColorRGB{X: 0.12, Y: 0.45, Z: 0.15})

	wall := func(corner, u, v core.Vec3, mat core.Material) core.Primitive {
		return primitive.NewGeometricPrimitive(shape.NewRect(corner, u, v), core.Identity(), mat)
	}

	floor := wall(core.Vec3{}, core.Vec3{X: boxSize}, core.Vec3{Z: boxSize}, white)
	ceiling := wall(core.Vec3{Y: boxSize}, core.Vec3{X: boxSize}, core.Vec3{Z: boxSize}, white)
	back := wall(core.Vec3{Z: boxSize}, core.Vec3{X: boxSize}, core.Vec3{Y: boxSize}, white)
	left := wall(core.Vec3{}, core.Vec3{Z: boxSize}, core.Vec3{Y: boxSize}, red)
	right := wall(core.Vec3{X: boxSize}, core.Vec3{Y: boxSize}, core.Vec3{Z: boxSize}, green)

	const lightSize = 130.0
	lightOffset := (boxSize - lightSize) / 2.0
	lightMat := material.NewDiffuseLight(core.ColorRGB{X: 10, Y: 10, Z: 10})
	lightRect := shape.NewRect(
		core.Vec3{X: lightOffset, Y: boxSize - 1, Z: lightOffset},
		core.Vec3{X: lightSize}, core.Vec3{Z: lightSize})
	lightPrim := primitive.NewFlipFacePrimitive(
		primitive.NewGeometricPrimitive(lightRect, core.Identity(), lightMat))

	// A pyramid and a hexagonal pedestal, tucked into corners well off the
	// floor-centre-to-ceiling ray the package's own test traces, so the box
	// carries some non-axis-aligned occluding geometry instead of six bare
	// walls (spec §4.D lists both shapes as in-scope, not just cube/rect).
	pyramid := primitive.NewGeometricPrimitive(
		shape.NewPyramid(core.Vec3{X: 120, Y: 0, Z: 120}, 60, 150), core.Identity(), white)
	pedestal := primitive.NewGeometricPrimitive(
		shape.NewRegularPolygon(core.Vec3{X: 430, Y: 0.5, Z: 430}, 50, 6), core.Identity(), white)

	world := primitive.NewPrimitiveList([]core.Primitive{floor, ceiling, back, left, right, lightPrim, pyramid, pedestal})
	lights := core.NewLightList([]core.Light{light.NewAreaLight(lightPrim)})

	cam := camera.NewCamera(camera.Options{
		LookFrom: core.Vec3{X: 278, Y: 278, Z: -800}, LookAt: core.Vec3{X: 278, Y: 278, Z: 0},
		ViewUp: core.Vec3{X: 0, Y: 1, Z: 0}, VerticalFOVDegrees: 40, AspectRatio: 1.0,
		Aperture: 0, FocusDist: 800,
	})

	return &core.Scene{Camera: cam, World: world, Lights: lights}
}

// MirrorCorridor builds scenario 4: two facing perfect mirrors with a
// small emitter on one side, to exercise the MaxDepth recursion cap.
func MirrorCorridor() *core.Scene {
	mirror := material.NewMetal(core.ColorRGB{X: 0.9, Y: 0.9, Z: 0.9}, 0.0)
	left := primitive.NewGeometricPrimitive(
		shape.NewRect(core.Vec3{X: -2, Y: -2, Z: -2}, core.Vec3{Y: 4}, core.Vec3{Z: 4}),
		core.Identity(), mirror)
	right := primitive.NewGeometricPrimitive(
		shape.NewRect(core.Vec3{X: 2, Y: -2, Z: -2}, core.Vec3{Y: 4}, core.Vec3{Z: 4}),
		core.Identity(), mirror)

	emitterMat := material.NewDiffuseLight(core.ColorRGB{X: 20, Y: 20, Z: 20})
	emitterShape := shape.NewSphere(core.Vec3{X: -1.9, Y: 0, Z: 0}, 0.1)
	emitter := primitive.NewGeometricPrimitive(emitterShape, core.Identity(), emitterMat)

	world := primitive.NewPrimitiveList([]core.Primitive{left, right, emitter})
	lights := core.NewLightList([]core.Light{light.NewAreaLight(emitter)})

	cam := camera.NewCamera(camera.Options{
		LookFrom: core.Vec3{X: 0, Y: 0, Z: -1.99}, LookAt: core.Vec3{X: 0, Y: 0, Z: 0},
		ViewUp: core.Vec3{X: 0, Y: 1, Z: 0}, VerticalFOVDegrees: 80, AspectRatio: 1.0,
		Aperture: 0, FocusDist: 2,
	})

	return &core.Scene{Camera: cam, World: world, Lights: lights}
}

// RefractiveSphereOverChecker builds scenario 5: a glass sphere over a
// checker ground under sky light, testing refraction's image inversion.
func RefractiveSphereOverChecker() *core.Scene {
	checker := texture.NewChecker(0.5,
		texture.NewConstant(core.ColorRGB{X: 0.2, Y: 0.2, Z: 0.2}),
		texture.NewConstant(core.ColorRGB{X: 0.9, Y: 0.9, Z: 0.9}))
	groundMat := material.NewLambertianTexture(checker)
	groundShape := shape.NewSphere(core.Vec3{X: 0, Y: -100.5, Z: 0}, 100)
	ground := primitive.NewGeometricPrimitive(groundShape, core.Identity(), groundMat)

	glassMat := material.NewDielectric(1.5, 0.0, core.ColorRGB{X: 1, Y: 1, Z: 1})
	glassShape := shape.NewSphere(core.Vec3{X: 0, Y: 0, Z: 0}, 1.0)
	glass := primitive.NewGeometricPrimitive(glassShape, core.Identity(), glassMat)

	world := primitive.NewPrimitiveList([]core.Primitive{ground, glass})
	sky := light.NewEnvironment(texture.NewConstant(core.ColorRGB{X: 0.5, Y: 0.7, Z: 1.0}))

	return &core.Scene{
		Camera: skyCamera(1.0),
		World:  world,
		Lights: core.NewLightList([]core.Light{sky}),
	}
}

// MisBalancePlane builds scenario 6: a rough-metal plane under a small,
// bright area light, used to compare mis_weight settings at equal sample
// counts (core.Settings.MisWeight is varied by the caller, not here).
// Uses GltfPbr with Metallic near 1 rather than Metal: Metal.IsDelta()
// always reports true (spec's BxDF table marks the fuzzy-metal BxDF as a
// delta lobe regardless of roughness), which would take the integrator's
// delta branch and never touch the mixture Settings.MisWeight controls —
// GltfPbr is the spec's only non-delta reflective BxDF, so it's the one
// that actually exercises BSDF-vs-light mixture sampling on this plane.
func MisBalancePlane() *core.Scene {
	plane := shape.NewRect(core.Vec3{X: -5, Y: 0, Z: -5}, core.Vec3{X: 10}, core.Vec3{Z: 10})
	roughMetal := material.NewGltfPbr(1.5, core.ColorRGB{X: 0.8, Y: 0.8, Z: 0.85}, 0.4, 0.95)
	planePrim := primitive.NewGeometricPrimitive(plane, core.Identity(), roughMetal)

	lightMat := material.NewDiffuseLight(core.ColorRGB{X: 50, Y: 50, Z: 50})
	lightRect := shape.NewRect(core.Vec3{X: -0.1, Y: 3, Z: -0.1}, core.Vec3{X: 0.2}, core.Vec3{Z: 0.2})
	lightPrim := primitive.NewFlipFacePrimitive(
		primitive.NewGeometricPrimitive(lightRect, core.Identity(), lightMat))

	world := primitive.NewPrimitiveList([]core.Primitive{planePrim, lightPrim})
	lights := core.NewLightList([]core.Light{light.NewAreaLight(lightPrim)})

	cam := camera.NewCamera(camera.Options{
		LookFrom: core.Vec3{X: 0, Y: 2, Z: 4}, LookAt: core.Vec3{X: 0, Y: 0, Z: 0},
		ViewUp: core.Vec3{X: 0, Y: 1, Z: 0}, VerticalFOVDegrees: 50, AspectRatio: 1.0,
		Aperture: 0, FocusDist: 4,
	})

	return &core.Scene{Camera: cam, World: world, Lights: lights}
}
