package shader

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
)

func builtins() []expr.Option {
	return []expr.Option{
		expr.Function("vec2", func(params ...any) (any, error) {
			f, err := floats("vec2", 2, params)
			if err != nil {
				return nil, err
			}
			return Vec2{X: f[0], Y: f[1]}, nil
		}),
		expr.Function("vec3", vec3),
		expr.Function("rgb", vec3),
		expr.Function("add", func(params ...any) (any, error) {
			return combine("add", params, func(a, b float64) float64 { return a + b })
		}),
		expr.Function("sub", func(params ...any) (any, error) {
			return combine("sub", params, func(a, b float64) float64 { return a - b })
		}),
		expr.Function("mul", func(params ...any) (any, error) {
			return combine("mul", params, func(a, b float64) float64 { return a * b })
		}),
		expr.Function("dot", func(params ...any) (any, error) {
			a, b, err := twoVec3("dot", params)
			if err != nil {
				return nil, err
			}
			return a.X*b.X + a.Y*b.Y + a.Z*b.Z, nil
		}),
		expr.Function("length", func(params ...any) (any, error) {
			if len(params) != 1 {
				return nil, fmt.Errorf("length: want 1 argument, got %d", len(params))
			}
			v, ok := params[0].(Vec3)
			if !ok {
				return nil, fmt.Errorf("length: want vec3, got %T", params[0])
			}
			return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z), nil
		}),
		expr.Function("normalize", func(params ...any) (any, error) {
			if len(params) != 1 {
				return nil, fmt.Errorf("normalize: want 1 argument, got %d", len(params))
			}
			v, ok := params[0].(Vec3)
			if !ok {
				return nil, fmt.Errorf("normalize: want vec3, got %T", params[0])
			}
			l := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
			if l == 0 {
				return Vec3{}, nil
			}
			return Vec3{X: v.X / l, Y: v.Y / l, Z: v.Z / l}, nil
		}),
		expr.Function("mix", func(params ...any) (any, error) {
			if len(params) != 3 {
				return nil, fmt.Errorf("mix: want 3 arguments, got %d", len(params))
			}
			t, err := toFloat(params[2])
			if err != nil {
				return nil, fmt.Errorf("mix: %w", err)
			}
			return combine("mix", params[:2], func(a, b float64) float64 { return a + (b-a)*t })
		}),
		expr.Function("clamp", func(params ...any) (any, error) {
			f, err := floats("clamp", 3, params)
			if err != nil {
				return nil, err
			}
			return math.Min(math.Max(f[0], f[1]), f[2]), nil
		}),
		expr.Function("smoothstep", func(params ...any) (any, error) {
			f, err := floats("smoothstep", 3, params)
			if err != nil {
				return nil, err
			}
			if f[1] == f[0] {
				return 0.0, nil
			}
			t := math.Min(math.Max((f[2]-f[0])/(f[1]-f[0]), 0), 1)
			return t * t * (3 - 2*t), nil
		}),
		unary("fract", func(x float64) float64 { return x - math.Floor(x) }),
		unary("sin", math.Sin),
		unary("cos", math.Cos),
		unary("sqrt", math.Sqrt),
		expr.Function("pow", func(params ...any) (any, error) {
			f, err := floats("pow", 2, params)
			if err != nil {
				return nil, err
			}
			return math.Pow(f[0], f[1]), nil
		}),
	}
}

func vec3(params ...any) (any, error) {
	f, err := floats("vec3", 3, params)
	if err != nil {
		return nil, err
	}
	return Vec3{X: f[0], Y: f[1], Z: f[2]}, nil
}

func unary(name string, fn func(float64) float64) expr.Option {
	return expr.Function(name, func(params ...any) (any, error) {
		f, err := floats(name, 1, params)
		if err != nil {
			return nil, err
		}
		return fn(f[0]), nil
	})
}

// combine applies op component-wise. Scalars broadcast over vectors.
func combine(name string, params []any, op func(a, b float64) float64) (any, error) {
	if len(params) != 2 {
		return nil, fmt.Errorf("%s: want 2 arguments, got %d", name, len(params))
	}
	av, aVec := params[0].(Vec3)
	bv, bVec := params[1].(Vec3)
	switch {
	case aVec && bVec:
		return Vec3{X: op(av.X, bv.X), Y: op(av.Y, bv.Y), Z: op(av.Z, bv.Z)}, nil
	case aVec:
		s, err := toFloat(params[1])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return Vec3{X: op(av.X, s), Y: op(av.Y, s), Z: op(av.Z, s)}, nil
	case bVec:
		s, err := toFloat(params[0])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return Vec3{X: op(s, bv.X), Y: op(s, bv.Y), Z: op(s, bv.Z)}, nil
	}
	f, err := floats(name, 2, params)
	if err != nil {
		return nil, err
	}
	return op(f[0], f[1]), nil
}

func twoVec3(name string, params []any) (Vec3, Vec3, error) {
	if len(params) != 2 {
		return Vec3{}, Vec3{}, fmt.Errorf("%s: want 2 arguments, got %d", name, len(params))
	}
	a, ok := params[0].(Vec3)
	if !ok {
		return Vec3{}, Vec3{}, fmt.Errorf("%s: want vec3, got %T", name, params[0])
	}
	b, ok := params[1].(Vec3)
	if !ok {
		return Vec3{}, Vec3{}, fmt.Errorf("%s: want vec3, got %T", name, params[1])
	}
	return a, b, nil
}

func floats(name string, n int, params []any) ([]float64, error) {
	if len(params) != n {
		return nil, fmt.Errorf("%s: want %d arguments, got %d", name, n, len(params))
	}
	out := make([]float64, n)
	for i, p := range params {
		f, err := toFloat(p)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", name, i+1, err)
		}
		out[i] = f
	}
	return out, nil
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	}
	return 0, fmt.Errorf("want number, got %T", v)
}
