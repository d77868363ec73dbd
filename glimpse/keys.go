package glimpse

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type Key uint32

const (
	KeyUnknown Key = iota
	KeySpace
	KeyEscape
	KeyEnter
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

var keyNames = map[Key]string{
	KeySpace:  "Space",
	KeyEscape: "Escape",
	KeyEnter:  "Enter",
	KeyTab:    "Tab",
	KeyLeft:   "Left",
	KeyRight:  "Right",
	KeyUp:     "Up",
	KeyDown:   "Down",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}

	if k >= KeyA && k <= KeyZ {
		return string(rune('A' + (k - KeyA)))
	}

	if k >= Key0 && k <= Key9 {
		return string(rune('0' + (k - Key0)))
	}

	return fmt.Sprintf("Key(%d)", uint32(k))
}

var glfwToKey = buildKeyMap()

func buildKeyMap() map[glfw.Key]Key {
	keys := map[glfw.Key]Key{
		glfw.KeySpace:  KeySpace,
		glfw.KeyEscape: KeyEscape,
		glfw.KeyEnter:  KeyEnter,
		glfw.KeyTab:    KeyTab,
		glfw.KeyLeft:   KeyLeft,
		glfw.KeyRight:  KeyRight,
		glfw.KeyUp:     KeyUp,
		glfw.KeyDown:   KeyDown,
	}

	for i := 0; i < 26; i++ {
		keys[glfw.KeyA+glfw.Key(i)] = KeyA + Key(i)
	}

	for i := 0; i < 10; i++ {
		keys[glfw.Key0+glfw.Key(i)] = Key0 + Key(i)
	}

	return keys
}
