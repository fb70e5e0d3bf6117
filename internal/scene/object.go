package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jinzhu/copier"
)

// Node is anything that can live in the scene graph: groups, meshes, lights, helpers, cameras
// and the scene itself. Every node embeds an Object that carries its transform and children.
type Node interface {
	Base() *Object
	// cloneNode returns a shallow copy of the concrete node. Clone fixes up the tree afterwards.
	cloneNode() Node
}

// Object holds the transform and tree links shared by every node.
// Position is in parent space, Rotation is XYZ Euler radians, Scale defaults to (1,1,1).
type Object struct {
	Name          string
	Position      Vec3
	Rotation      Euler
	Scale         Vec3
	Visible       bool
	CastShadow    bool
	ReceiveShadow bool
	// UserData holds per-object state set by demos (e.g. selection flags). Deep-copied on Clone.
	UserData map[string]any

	self     Node
	parent   Node
	children []Node
}

// init binds the object to its outer node and applies defaults. Called by every constructor.
func (o *Object) init(self Node) {
	o.self = self
	o.Scale = Vec3{1, 1, 1}
	o.Visible = true
}

// Base returns the object itself so *Object satisfies part of Node for embedders.
func (o *Object) Base() *Object {
	return o
}

// Parent returns the parent node, or nil for a root.
func (o *Object) Parent() Node {
	return o.parent
}

// Children returns the direct children. The slice must not be modified.
func (o *Object) Children() []Node {
	return o.children
}

// Add appends children in order. A child that already has a parent is detached from it first.
func (o *Object) Add(children ...Node) {
	for _, c := range children {
		if c == nil || c == o.self {
			continue
		}
		cb := c.Base()
		if cb.parent != nil {
			cb.parent.Base().Remove(c)
		}
		cb.parent = o.self
		o.children = append(o.children, c)
	}
}

// Remove detaches the given children. Nodes that are not children are ignored.
func (o *Object) Remove(children ...Node) {
	for _, c := range children {
		for i, k := range o.children {
			if k == c {
				o.children = append(o.children[:i], o.children[i+1:]...)
				c.Base().parent = nil
				break
			}
		}
	}
}

// SetUserData stores a value under key, creating the map on first use.
func (o *Object) SetUserData(key string, v any) {
	if o.UserData == nil {
		o.UserData = make(map[string]any)
	}
	o.UserData[key] = v
}

// LocalMatrix returns T * R * S for this object.
func (o *Object) LocalMatrix() mgl32.Mat4 {
	t := mgl32.Translate3D(o.Position.X, o.Position.Y, o.Position.Z)
	s := mgl32.Scale3D(o.Scale.X, o.Scale.Y, o.Scale.Z)
	return t.Mul4(o.Rotation.Matrix()).Mul4(s)
}

// WorldMatrix composes the parent's world matrix with the local matrix, up to the root.
func (o *Object) WorldMatrix() mgl32.Mat4 {
	local := o.LocalMatrix()
	if o.parent == nil {
		return local
	}
	return o.parent.Base().WorldMatrix().Mul4(local)
}

// WorldPosition returns the object's origin in world space.
func (o *Object) WorldPosition() Vec3 {
	m := o.WorldMatrix()
	return Vec3{m[12], m[13], m[14]}
}

// Traverse calls fn for o's node and every descendant, depth first, parents before children.
func (o *Object) Traverse(fn func(Node)) {
	fn(o.self)
	for _, c := range o.children {
		c.Base().Traverse(fn)
	}
}

// Walk visits root and its visible descendants with their world matrices. Invisible nodes and
// their subtrees are skipped, matching what gets drawn.
func Walk(root Node, fn func(n Node, world mgl32.Mat4)) {
	walk(root, mgl32.Ident4(), fn)
}

func walk(n Node, parentWorld mgl32.Mat4, fn func(Node, mgl32.Mat4)) {
	b := n.Base()
	if !b.Visible {
		return
	}
	world := parentWorld.Mul4(b.LocalMatrix())
	fn(n, world)
	for _, c := range b.children {
		walk(c, world, fn)
	}
}

// Clone returns a detached copy of n and its whole subtree. Transforms, flags and UserData are
// copied; geometries, materials and textures are shared with the original.
func Clone[T Node](n T) T {
	return cloneTree(n).(T)
}

func cloneTree(n Node) Node {
	c := n.cloneNode()
	cb := c.Base()
	// cloneNode copied the map header; copier fills a fresh map only when the target is nil.
	cb.UserData = nil
	if err := copier.CopyWithOption(cb, n.Base(), copier.Option{DeepCopy: true}); err != nil {
		panic(err)
	}
	cb.self = c
	cb.parent = nil
	cb.children = nil
	for _, k := range n.Base().children {
		cb.Add(cloneTree(k))
	}
	return c
}

// Group is a node with no visual of its own. Its transform applies to every child.
type Group struct {
	Object
}

// NewGroup returns an empty group.
func NewGroup() *Group {
	g := &Group{}
	g.init(g)
	return g
}

func (g *Group) cloneNode() Node {
	cp := *g
	return &cp
}
