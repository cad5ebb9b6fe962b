// internal/input/input.go
package input

import "github.com/go-gl/mathgl/mgl32"

// Action — игровое действие.
type Action int

const (
	ActionRun Action = iota
	ActionJump
	ActionGrab

	// меню
	ActionUp
	ActionDown
	ActionActivate

	actionCount
)

// Коды клавиш и кнопок совпадают с raylib, чтобы пакет не зависел от cgo.
type Key int32

const (
	KeySpace Key = 32
	KeyA     Key = 65
	KeyD     Key = 68
	KeyR     Key = 82
	KeyS     Key = 83
	KeyW     Key = 87
	KeyEnter Key = 257
	KeyRight Key = 262
	KeyLeft  Key = 263
	KeyDown  Key = 264
	KeyUp    Key = 265
)

type Button int32

const (
	ButtonDPadUp   Button = 1
	ButtonDPadDown Button = 3
	ButtonSouth    Button = 7
	ButtonWest     Button = 8
)

type Axis int32

const (
	AxisLeftX Axis = 0
	AxisLeftY Axis = 1
)

// Source — опрос устройств ввода за текущий кадр.
type Source interface {
	KeyDown(k Key) bool
	ButtonDown(b Button) bool
	// AxisValue возвращает значение оси геймпада в [-1, 1]; вверх по стику — отрицательное, как в raylib
	AxisValue(a Axis) float32
}

// DPad — четыре клавиши, дающие ось.
type DPad struct {
	Up, Down, Left, Right Key
}

// Binding — привязки одного действия.
type Binding struct {
	Keys    []Key
	Buttons []Button
	DPads   []DPad
	Stick   bool // левый стик
}

// InputMap — привязки всех действий.
type InputMap map[Action]Binding

// DefaultMap — раскладка игрока: пробел/South — прыжок, R/West — взять,
// левый стик, WASD и стрелки — бег.
func DefaultMap() InputMap {
	return InputMap{
		ActionJump: {Keys: []Key{KeySpace}, Buttons: []Button{ButtonSouth}},
		ActionGrab: {Keys: []Key{KeyR}, Buttons: []Button{ButtonWest}},
		ActionRun: {
			Stick: true,
			DPads: []DPad{
				{Up: KeyW, Down: KeyS, Left: KeyA, Right: KeyD},
				{Up: KeyUp, Down: KeyDown, Left: KeyLeft, Right: KeyRight},
			},
		},
	}
}

// MenuMap — навигация по меню.
func MenuMap() InputMap {
	return InputMap{
		ActionUp:       {Keys: []Key{KeyUp, KeyW}, Buttons: []Button{ButtonDPadUp}},
		ActionDown:     {Keys: []Key{KeyDown, KeyS}, Buttons: []Button{ButtonDPadDown}},
		ActionActivate: {Keys: []Key{KeyEnter, KeySpace}, Buttons: []Button{ButtonSouth}},
	}
}

// StickDeadZone — меньшие отклонения стика считаются нулём.
const StickDeadZone = 0.1

// ActionState — состояние действий на текущем и прошлом кадрах.
type ActionState struct {
	bindings InputMap
	pressed  [actionCount]bool
	previous [actionCount]bool
	axis     [actionCount]mgl32.Vec2
}

func NewActionState(bindings InputMap) *ActionState {
	return &ActionState{bindings: bindings}
}

// Update опрашивает источник. Вызывается раз в кадр.
func (s *ActionState) Update(src Source) {
	s.previous = s.pressed
	for action := Action(0); action < actionCount; action++ {
		s.pressed[action] = false
		s.axis[action] = mgl32.Vec2{}
		b, ok := s.bindings[action]
		if !ok {
			continue
		}
		for _, k := range b.Keys {
			if src.KeyDown(k) {
				s.pressed[action] = true
			}
		}
		for _, btn := range b.Buttons {
			if src.ButtonDown(btn) {
				s.pressed[action] = true
			}
		}
		var axis mgl32.Vec2
		for _, pad := range b.DPads {
			axis = axis.Add(padAxis(src, pad))
		}
		if b.Stick {
			// ось Y стика направлена вниз, у действия — вверх
			stick := mgl32.Vec2{src.AxisValue(AxisLeftX), -src.AxisValue(AxisLeftY)}
			if stick.Len() > StickDeadZone {
				axis = axis.Add(stick)
			}
		}
		if axis.Len() > 0 {
			s.pressed[action] = true
		}
		s.axis[action] = axis
	}
}

func padAxis(src Source, pad DPad) mgl32.Vec2 {
	var v mgl32.Vec2
	if src.KeyDown(pad.Right) {
		v[0]++
	}
	if src.KeyDown(pad.Left) {
		v[0]--
	}
	if src.KeyDown(pad.Up) {
		v[1]++
	}
	if src.KeyDown(pad.Down) {
		v[1]--
	}
	return v
}

func (s *ActionState) Pressed(a Action) bool { return s.pressed[a] }

func (s *ActionState) JustPressed(a Action) bool { return s.pressed[a] && !s.previous[a] }

func (s *ActionState) JustReleased(a Action) bool { return !s.pressed[a] && s.previous[a] }

// ClampedAxis — ось действия, длина не больше 1.
func (s *ActionState) ClampedAxis(a Action) mgl32.Vec2 {
	v := s.axis[a]
	if l := v.Len(); l > 1 {
		v = v.Mul(1 / l)
	}
	return v
}

// Set выставляет действие вручную (скрипты, тесты, автопилот).
func (s *ActionState) Set(a Action, pressed bool, axis mgl32.Vec2) {
	s.pressed[a] = pressed
	s.axis[a] = axis
}

// Advance сдвигает кадр без опроса источника: прошлые нажатия становятся "предыдущими".
func (s *ActionState) Advance() {
	s.previous = s.pressed
}
