// Package shader compiles vertex and fragment programs for quarkgl.
//
// Programs are written in the expr language (github.com/expr-lang/expr). A
// vertex program sees Position, Normal, UV and Time and must evaluate to a
// vec3 object-space position. A fragment program sees UV, Normal, Position,
// Light and Time and must evaluate to a vec3 linear RGB color.
//
// Vectors expose X, Y (and Z) fields. The built-in functions are vec2, vec3,
// rgb, add, sub, mul, dot, length, normalize, mix, clamp, smoothstep, fract,
// sin, cos, pow and sqrt, in addition to the expr builtins.
package shader
