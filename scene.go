package willow

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/phanxgames/willow-actions/action"
)

// Scene is the top-level object that owns the node tree, cameras and the
// action manager.
type Scene struct {
	root    *Node
	cameras []*Camera
	actions *ActionManager

	debug bool
	log   zerolog.Logger

	// ClearColor fills the screen before drawing. A zero alpha leaves the
	// screen as it is.
	ClearColor Color

	updateFunc func() error
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{
		root:    NewContainer("root"),
		actions: NewActionManager(),
		log:     zerolog.Nop(),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Actions returns the scene's action manager.
func (s *Scene) Actions() *ActionManager {
	return s.actions
}

// RunAction schedules a on target and returns it. The target is usually a
// *Node or a *Camera, but any comparable action.Target works.
func (s *Scene) RunAction(target action.Target, a action.Action) action.Action {
	s.actions.AddAction(a, target, false)
	return a
}

// StopAction removes a from its target.
func (s *Scene) StopAction(a action.Action) {
	s.actions.RemoveAction(a)
}

// StopAllActions removes every action running on target.
func (s *Scene) StopAllActions(target action.Target) {
	s.actions.RemoveAllActionsFromTarget(target)
}

// SetUpdateFunc sets a callback run by Run at the start of every tick,
// before the scene updates. Returning an error ends the game loop.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update advances the scene by one tick of 1/TPS seconds.
func (s *Scene) Update() {
	s.Advance(1.0 / float64(ebiten.TPS()))
}

// Advance advances the scene by dt seconds: world transforms first, so that
// camera follow targets have accurate positions, then cameras, then actions.
func (s *Scene) Advance(dt float64) {
	updateWorldTransform(s.root, identityTransform(), 1.0, false)
	for _, cam := range s.cameras {
		cam.update(dt)
	}
	s.actions.Update(dt)
}

// Draw renders the tree once per camera, or once full screen when the
// scene has no cameras.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	updateWorldTransform(s.root, identityTransform(), 1.0, false)

	if len(s.cameras) == 0 {
		s.drawNode(screen, s.root, identityTransform())
		return
	}
	for _, cam := range s.cameras {
		vp := cam.Viewport
		sub := screen.SubImage(image.Rect(
			int(vp.X), int(vp.Y),
			int(vp.X+vp.Width), int(vp.Y+vp.Height),
		)).(*ebiten.Image)
		s.drawNode(sub, s.root, cam.computeViewMatrix())
	}
}

func (s *Scene) drawNode(dst *ebiten.Image, n *Node, view transform2D) {
	if !n.Visible {
		return
	}
	if n.Type == NodeTypeSprite && n.Image != nil && n.worldAlpha > 0 {
		m := view.Mul3(n.worldTransform)
		if g, ok := n.grid.(*Grid3D); ok && g.Active() {
			drawGrid(dst, n, g, m)
		} else {
			op := &ebiten.DrawImageOptions{GeoM: geoM(m), ColorScale: n.Color.colorScale(n.worldAlpha)}
			dst.DrawImage(n.Image, op)
		}
	}
	for _, child := range n.children {
		s.drawNode(dst, child, view)
	}
}

func drawGrid(dst *ebiten.Image, n *Node, g *Grid3D, m transform2D) {
	b := n.Image.Bounds()
	src := Rect{X: float64(b.Min.X), Y: float64(b.Min.Y), Width: float64(b.Dx()), Height: float64(b.Dy())}
	verts, indices := g.Mesh(src, n.Color, n.worldAlpha)
	for i := range verts {
		x, y := transformPoint(m, float64(verts[i].DstX), float64(verts[i].DstY))
		verts[i].DstX, verts[i].DstY = float32(x), float32(y)
	}
	dst.DrawTriangles(verts, indices, n.Image, nil)
}

// NewCamera creates a camera with the given viewport and adds it to the scene.
func (s *Scene) NewCamera(viewport Rect) *Camera {
	cam := newCamera(viewport)
	s.cameras = append(s.cameras, cam)
	return cam
}

// RemoveCamera removes a camera from the scene and stops its actions.
func (s *Scene) RemoveCamera(cam *Camera) {
	for i, c := range s.cameras {
		if c == cam {
			s.cameras = append(s.cameras[:i], s.cameras[i+1:]...)
			s.actions.RemoveAllActionsFromTarget(cam)
			return
		}
	}
}

// Cameras returns the scene's camera list. The returned slice MUST NOT be mutated.
func (s *Scene) Cameras() []*Camera {
	return s.cameras
}

// SetEntityStore sets the optional ECS bridge that receives action events.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.actions.SetEntityStore(store)
}

// SetLogger sets the logger used by the scene and its action manager.
func (s *Scene) SetLogger(l zerolog.Logger) {
	s.log = l
	s.actions.SetLogger(l)
}

// Logger returns the scene's logger.
func (s *Scene) Logger() zerolog.Logger {
	return s.log
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth, child count and action count warnings are
// logged, and action lifecycle is logged at debug level, all to stderr.
// Disabling it silences the scene logger.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if enabled {
		debugLog = newDebugLogger()
	} else {
		debugLog = zerolog.Nop()
	}
	s.SetLogger(debugLog)
}
