package action

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// scriptStep is one action in an action script. Which fields are read
// depends on Action.
type scriptStep struct {
	Action   string       `yaml:"action"`
	Tag      *int         `yaml:"tag,omitempty"`
	Duration float64      `yaml:"duration,omitempty"`
	X        float64      `yaml:"x,omitempty"`
	Y        float64      `yaml:"y,omitempty"`
	Angle    float64      `yaml:"angle,omitempty"`
	Height   float64      `yaml:"height,omitempty"`
	Jumps    int          `yaml:"jumps,omitempty"`
	Times    int          `yaml:"times,omitempty"`
	Rate     float64      `yaml:"rate,omitempty"`
	Period   float64      `yaml:"period,omitempty"`
	Speed    float64      `yaml:"speed,omitempty"`
	Opacity  float64      `yaml:"opacity,omitempty"`
	R        float64      `yaml:"r,omitempty"`
	G        float64      `yaml:"g,omitempty"`
	B        float64      `yaml:"b,omitempty"`
	From     float64      `yaml:"from,omitempty"`
	To       float64      `yaml:"to,omitempty"`
	Tension  *float64     `yaml:"tension,omitempty"`
	Points   [][2]float64 `yaml:"points,omitempty"`
	Children []scriptStep `yaml:"children,omitempty"`
}

// script is the top-level YAML structure of an action script.
type script struct {
	Config *Config      `yaml:"config,omitempty"`
	Steps  []scriptStep `yaml:"steps"`
}

// LoadScript builds an action from a YAML action script. A script with one
// step yields that step's action; several steps run in sequence. A config
// block overrides the stacking behavior of every leaf the script creates.
//
//	config:
//	  stackable: false
//	steps:
//	  - action: moveBy
//	    duration: 1
//	    x: 100
//	  - action: repeat
//	    times: 3
//	    children:
//	      - action: blink
//	        duration: 1
//	        times: 2
func LoadScript(data []byte) (FiniteTimeAction, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse action script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, errors.New("parse action script: no steps")
	}
	b := scriptBuilder{config: s.Config}
	acts, err := b.buildAll(s.Steps, "steps")
	if err != nil {
		return nil, fmt.Errorf("parse action script: %w", err)
	}
	if len(acts) == 1 {
		return acts[0], nil
	}
	for i, a := range acts {
		if math.IsInf(a.Duration(), 1) {
			return nil, fmt.Errorf("parse action script: steps[%d]: %s never finishes", i, s.Steps[i].Action)
		}
	}
	return NewSequence(acts...), nil
}

// LoadScriptFile reads and builds the action script at path.
func LoadScriptFile(path string) (FiniteTimeAction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read action script: %w", err)
	}
	return LoadScript(data)
}

type scriptBuilder struct {
	config *Config
}

func (b scriptBuilder) buildAll(steps []scriptStep, path string) ([]FiniteTimeAction, error) {
	out := make([]FiniteTimeAction, 0, len(steps))
	for i, st := range steps {
		a, err := b.build(st, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// child returns the single action wrapped by a decorator step.
func (b scriptBuilder) child(st scriptStep, path string) (FiniteTimeAction, error) {
	if len(st.Children) != 1 {
		return nil, fmt.Errorf("%s: %s needs exactly one child, got %d", path, st.Action, len(st.Children))
	}
	return b.build(st.Children[0], path+".children[0]")
}

func (b scriptBuilder) children(st scriptStep, path string) ([]FiniteTimeAction, error) {
	if len(st.Children) == 0 {
		return nil, fmt.Errorf("%s: %s needs at least one child", path, st.Action)
	}
	return b.buildAll(st.Children, path+".children")
}

func (b scriptBuilder) build(st scriptStep, path string) (a FiniteTimeAction, err error) {
	// Constructors panic on invalid arguments; report those as script errors.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", path, r)
		}
	}()

	vec := mgl64.Vec2{st.X, st.Y}
	switch st.Action {
	case "sequence", "spawn":
		kids, err := b.children(st, path)
		if err != nil {
			return nil, err
		}
		if st.Action == "sequence" {
			a = NewSequence(kids...)
		} else {
			a = NewSpawn(kids...)
		}
	case "repeat", "repeatForever", "speed", "reverseTime", "reverse",
		"easeIn", "easeOut", "easeInOut", "easeElasticIn", "easeElasticOut", "easeElasticInOut":
		inner, err := b.child(st, path)
		if err != nil {
			return nil, err
		}
		a, err = decorate(st, inner)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	case "delay":
		a = NewDelayTime(st.Duration)
	case "moveBy":
		a = NewMoveBy(st.Duration, vec)
	case "moveTo":
		a = NewMoveTo(st.Duration, vec)
	case "jumpBy":
		a = NewJumpBy(st.Duration, vec, st.Height, st.Jumps)
	case "jumpTo":
		a = NewJumpTo(st.Duration, vec, st.Height, st.Jumps)
	case "rotateBy":
		a = NewRotateBy(st.Duration, st.Angle)
	case "rotateTo":
		a = NewRotateTo(st.Duration, st.Angle)
	case "scaleBy":
		a = NewScaleBy(st.Duration, st.X, st.Y)
	case "scaleTo":
		a = NewScaleTo(st.Duration, st.X, st.Y)
	case "skewBy":
		a = NewSkewBy(st.Duration, st.X, st.Y)
	case "skewTo":
		a = NewSkewTo(st.Duration, st.X, st.Y)
	case "fadeIn":
		a = NewFadeIn(st.Duration)
	case "fadeOut":
		a = NewFadeOut(st.Duration)
	case "fadeTo":
		a = NewFadeTo(st.Duration, st.Opacity)
	case "tintTo":
		a = NewTintTo(st.Duration, st.R, st.G, st.B)
	case "tintBy":
		a = NewTintBy(st.Duration, st.R, st.G, st.B)
	case "blink":
		a = NewBlink(st.Duration, st.Times)
	case "progressTo":
		a = NewProgressTo(st.Duration, st.To)
	case "progressFromTo":
		a = NewProgressFromTo(st.Duration, st.From, st.To)
	case "cardinalSplineTo", "cardinalSplineBy", "catmullRomTo", "catmullRomBy":
		a = buildSpline(st)
	case "show":
		a = NewShow()
	case "hide":
		a = NewHide()
	case "toggleVisibility":
		a = NewToggleVisibility()
	case "place":
		a = NewPlace(st.X, st.Y)
	case "removeSelf":
		a = NewRemoveSelf()
	case "":
		return nil, fmt.Errorf("%s: missing action", path)
	default:
		return nil, fmt.Errorf("%s: unknown action %q", path, st.Action)
	}

	if b.config != nil {
		if s, ok := a.(interface{ SetStackable(bool) }); ok {
			s.SetStackable(b.config.Stackable)
		}
	}
	if st.Tag != nil {
		a.SetTag(*st.Tag)
	}
	return a, nil
}

func decorate(st scriptStep, inner FiniteTimeAction) (FiniteTimeAction, error) {
	switch st.Action {
	case "repeat":
		return NewRepeat(inner, st.Times), nil
	case "repeatForever":
		return NewRepeatForever(inner), nil
	case "speed":
		return NewSpeed(inner, st.Speed), nil
	case "reverseTime":
		return NewReverseTime(inner), nil
	case "reverse":
		return inner.Reverse(), nil
	case "easeIn":
		return NewEaseIn(inner, st.Rate), nil
	case "easeOut":
		return NewEaseOut(inner, st.Rate), nil
	case "easeInOut":
		return NewEaseInOut(inner, st.Rate), nil
	case "easeElasticIn":
		return NewEaseElastic(inner, EaseElasticIn, st.Period), nil
	case "easeElasticOut":
		return NewEaseElastic(inner, EaseElasticOut, st.Period), nil
	case "easeElasticInOut":
		return NewEaseElastic(inner, EaseElasticInOut, st.Period), nil
	}
	return nil, fmt.Errorf("unknown decorator %q", st.Action)
}

func buildSpline(st scriptStep) FiniteTimeAction {
	pts := make([]mgl64.Vec2, len(st.Points))
	for i, p := range st.Points {
		pts[i] = mgl64.Vec2{p[0], p[1]}
	}
	tension := CatmullRomTension
	if st.Tension != nil {
		tension = *st.Tension
	}
	switch st.Action {
	case "cardinalSplineBy", "catmullRomBy":
		if st.Action == "catmullRomBy" {
			tension = CatmullRomTension
		}
		return NewCardinalSplineBy(st.Duration, pts, tension)
	default:
		if st.Action == "catmullRomTo" {
			tension = CatmullRomTension
		}
		return NewCardinalSplineTo(st.Duration, pts, tension)
	}
}
