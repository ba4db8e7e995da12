package quarkgl

import "sync/atomic"

// NodeID identifies an object for the lifetime of the process.
type NodeID uint32

var lastNodeID atomic.Uint32

// Object is anything that can live in a Scene: meshes, lights and helpers.
type Object interface {
	node() *Node
	ID() NodeID
}

// Node carries the state shared by all scene objects.
type Node struct {
	Name    string
	Visible bool

	id     NodeID
	parent *Scene
}

func newNode(name string) Node {
	return Node{
		Name:    name,
		Visible: true,
		id:      NodeID(lastNodeID.Add(1)),
	}
}

func (n *Node) node() *Node { return n }

func (n *Node) ID() NodeID { return n.id }

// Parent returns the scene the object belongs to, or nil.
func (n *Node) Parent() *Scene { return n.parent }

// Mesh pairs geometry with a material and an object transform.
type Mesh struct {
	Node

	Geometry  *Geometry
	Material  Material
	Transform Mat4
}

// NewMesh creates a mesh with an identity transform.
func NewMesh(geom *Geometry, mat Material) *Mesh {
	return &Mesh{
		Node:      newNode("mesh"),
		Geometry:  geom,
		Material:  mat,
		Transform: Mat4Identity(),
	}
}

// Scene is the root of the scene graph.
//
// A Scene is not safe for concurrent use; callers mutate it from the same
// goroutine that renders it.
type Scene struct {
	Background Color

	children []Object
}

// NewScene returns an empty scene with a black background.
func NewScene() *Scene {
	return &Scene{Background: RGB(0, 0, 0)}
}

// Add appends objects to the scene. Objects that already belong to this scene
// are left in place; objects owned by another scene are moved.
func (s *Scene) Add(objs ...Object) {
	if s == nil {
		return
	}
	for _, o := range objs {
		if o == nil {
			continue
		}
		n := o.node()
		if n.parent == s {
			continue
		}
		if n.parent != nil {
			n.parent.Remove(o)
		}
		n.parent = s
		s.children = append(s.children, o)
	}
}

// Remove detaches an object. It reports whether the object was a child.
func (s *Scene) Remove(o Object) bool {
	if s == nil || o == nil {
		return false
	}
	for i, c := range s.children {
		if c.ID() != o.ID() {
			continue
		}
		s.children = append(s.children[:i], s.children[i+1:]...)
		o.node().parent = nil
		return true
	}
	return false
}

// Children returns a copy of the direct children in insertion order.
func (s *Scene) Children() []Object {
	if s == nil {
		return nil
	}
	out := make([]Object, len(s.children))
	copy(out, s.children)
	return out
}

func (s *Scene) NumChildren() int {
	if s == nil {
		return 0
	}
	return len(s.children)
}

// Contains reports whether o is a direct child of s.
func (s *Scene) Contains(o Object) bool {
	return s != nil && o != nil && o.node().parent == s
}

func (s *Scene) eachMesh(fn func(m *Mesh)) {
	for _, c := range s.children {
		if m, ok := c.(*Mesh); ok && m.Visible {
			fn(m)
		}
	}
}

func (s *Scene) collectLights(dst *lightSet) {
	dst.reset()
	for _, c := range s.children {
		if !c.node().Visible {
			continue
		}
		switch l := c.(type) {
		case *DirectionalLight:
			dst.directional = append(dst.directional, l)
		case *HemisphereLight:
			dst.hemisphere = append(dst.hemisphere, l)
		}
	}
}
