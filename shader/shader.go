package shader

import (
	"fmt"

	"cubeview/quarkgl"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Stage names a program stage.
type Stage string

const (
	StageVertex   Stage = "vertex"
	StageFragment Stage = "fragment"
)

// CompileError reports a source the compiler rejected.
type CompileError struct {
	Stage Stage
	Err   error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("shader: compile %s stage: %v", e.Stage, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// VertexEnv is the environment of a vertex program.
type VertexEnv struct {
	Position Vec3
	Normal   Vec3
	UV       Vec2
	Time     float64
}

// FragmentEnv is the environment of a fragment program.
type FragmentEnv struct {
	UV       Vec2
	Normal   Vec3
	Position Vec3
	Light    Vec3
	Time     float64
}

// Program is a compiled vertex/fragment pair implementing quarkgl.Program.
//
// A Program reuses one VM and is not safe for concurrent use.
type Program struct {
	VertexSource   string
	FragmentSource string

	vertex   *vm.Program
	fragment *vm.Program
	machine  vm.VM
}

var _ quarkgl.Program = (*Program)(nil)

// Compile parses, type-checks and probes both stages. The probe runs each
// program once with neutral inputs so that a wrong output type is reported
// here rather than on every pixel.
func Compile(vertexSrc, fragmentSrc string) (*Program, error) {
	vp, err := expr.Compile(vertexSrc, append(builtins(), expr.Env(VertexEnv{}))...)
	if err != nil {
		return nil, &CompileError{Stage: StageVertex, Err: err}
	}
	fp, err := expr.Compile(fragmentSrc, append(builtins(), expr.Env(FragmentEnv{}))...)
	if err != nil {
		return nil, &CompileError{Stage: StageFragment, Err: err}
	}

	p := &Program{
		VertexSource:   vertexSrc,
		FragmentSource: fragmentSrc,
		vertex:         vp,
		fragment:       fp,
	}
	if _, err := p.runVertex(probeVertex); err != nil {
		return nil, &CompileError{Stage: StageVertex, Err: err}
	}
	if _, err := p.runFragment(probeFragment); err != nil {
		return nil, &CompileError{Stage: StageFragment, Err: err}
	}
	return p, nil
}

var (
	probeVertex = VertexEnv{
		Normal: Vec3{Z: 1},
		UV:     Vec2{X: 0.5, Y: 0.5},
	}
	probeFragment = FragmentEnv{
		UV:     Vec2{X: 0.5, Y: 0.5},
		Normal: Vec3{Z: 1},
		Light:  Vec3{X: 1, Y: 1, Z: 1},
	}
)

func (p *Program) runVertex(env VertexEnv) (Vec3, error) {
	out, err := p.machine.Run(p.vertex, env)
	if err != nil {
		return Vec3{}, err
	}
	return asVec3(out)
}

func (p *Program) runFragment(env FragmentEnv) (Vec3, error) {
	out, err := p.machine.Run(p.fragment, env)
	if err != nil {
		return Vec3{}, err
	}
	return asVec3(out)
}

func asVec3(out any) (Vec3, error) {
	v, ok := out.(Vec3)
	if !ok {
		return Vec3{}, fmt.Errorf("program must evaluate to vec3, got %T", out)
	}
	return v, nil
}

// Vertex runs the vertex stage.
func (p *Program) Vertex(in quarkgl.VertexIn) (quarkgl.Vec3, bool) {
	out, err := p.runVertex(VertexEnv{
		Position: fromVec3(in.Position),
		Normal:   fromVec3(in.Normal),
		UV:       fromVec2(in.UV),
		Time:     float64(in.Time),
	})
	if err != nil {
		return quarkgl.Vec3{}, false
	}
	return out.quark(), true
}

// Fragment runs the fragment stage.
func (p *Program) Fragment(in quarkgl.FragmentIn) (quarkgl.Vec3, bool) {
	out, err := p.runFragment(FragmentEnv{
		UV:       fromVec2(in.UV),
		Normal:   fromVec3(in.Normal),
		Position: fromVec3(in.Position),
		Light:    fromVec3(in.Light),
		Time:     float64(in.Time),
	})
	if err != nil {
		return quarkgl.Vec3{}, false
	}
	return out.quark(), true
}
