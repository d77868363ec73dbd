package stage

import (
	"github.com/oliverbestmann/prism/glimpse"
	"github.com/oliverbestmann/prism/glm"
)

type KeyCode = glimpse.Key
type MouseButton = glimpse.MouseButton

func MousePosition() glm.Vec2f {
	inputState := currentInputState.Get()

	return glm.Vec2f{
		inputState.Mouse.CursorX,
		inputState.Mouse.CursorY,
	}
}

func IsKeyPressed(key KeyCode) bool {
	inputState := currentInputState.Get()
	return inputState.Keys.Pressed[key]
}

func IsKeyJustPressed(key KeyCode) bool {
	inputState := currentInputState.Get()
	return inputState.Keys.JustPressed[key]
}

func IsKeyJustReleased(key KeyCode) bool {
	inputState := currentInputState.Get()
	return inputState.Keys.JustReleased[key]
}

func IsMouseButtonPressed(button MouseButton) bool {
	inputState := currentInputState.Get()
	return inputState.Mouse.Pressed[button]
}

func IsMouseButtonJustPressed(button MouseButton) bool {
	inputState := currentInputState.Get()
	return inputState.Mouse.JustPressed[button]
}
