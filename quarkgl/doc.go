// Package quarkgl provides a minimal, predictable software 3D engine for cubeview.
//
// QuarkGL is intended for visualization: a scene graph of meshes and lights, a
// perspective camera and an orbit controller. It is not a game engine and does
// not provide a GPU abstraction.
//
// Pipeline (fixed):
//
//	Scene → Vertex stage → Transform → Projection → Clipping → Rasterization → Fragment stage → Frame output.
//
// The renderer is software-only and draws into a caller-provided Target. Shading
// is done per pixel in linear space; the result is gamma encoded on output.
//
// Materials are either built in (StandardMaterial) or programmable
// (ShaderMaterial). A programmable material delegates both stages to a Program,
// which callers implement (see package shader).
package quarkgl
