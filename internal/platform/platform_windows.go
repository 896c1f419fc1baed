//go:build windows

package platform

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/faker-app/faker/internal/settings"
)

const (
	inputMouse    = 0
	inputKeyboard = 1

	keyeventfKeyUp  = 0x0002
	mouseeventfMove = 0x0001

	esSystemRequired  = 0x00000001
	esDisplayRequired = 0x00000002
)

var (
	user32        = syscall.NewLazyDLL("user32.dll")
	kernel32      = syscall.NewLazyDLL("kernel32.dll")
	procSendInput = user32.NewProc("SendInput")

	procSetThreadExecutionState = kernel32.NewProc("SetThreadExecutionState")
)

// virtualKeyCodes maps the configurable key names to Windows virtual-key
// codes. The list mirrors what the options UI offers: function keys plus
// the lock keys.
var virtualKeyCodes = map[string]uint16{
	"F1": 0x70, "F2": 0x71, "F3": 0x72, "F4": 0x73,
	"F5": 0x74, "F6": 0x75, "F7": 0x76, "F8": 0x77,
	"F9": 0x78, "F10": 0x79, "F11": 0x7A, "F12": 0x7B,
	"F13": 0x7C, "F14": 0x7D, "F15": 0x7E, "F16": 0x7F,
	"F17": 0x80, "F18": 0x81, "F19": 0x82, "F20": 0x83,
	"F21": 0x84, "F22": 0x85, "F23": 0x86, "F24": 0x87,
	"Scroll_Lock": 0x91,
	"Num_Lock":    0x90,
}

// keybdInput matches the Win32 KEYBDINPUT structure.
type keybdInput struct {
	WVk         uint16
	WScan       uint16
	DwFlags     uint32
	Time        uint32
	DwExtraInfo uintptr
}

// mouseInput matches the Win32 MOUSEINPUT structure.
type mouseInput struct {
	Dx          int32
	Dy          int32
	MouseData   uint32
	DwFlags     uint32
	Time        uint32
	DwExtraInfo uintptr
}

// input matches the Win32 INPUT structure. The union is stored as raw
// bytes; MOUSEINPUT is the largest member at 24 bytes, padded to 32.
type input struct {
	Type uint32
	_    [4]byte
	Data [32]byte
}

func sendInput(inputs []input) error {
	sent, _, err := procSendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		uintptr(unsafe.Sizeof(input{})),
	)
	if int(sent) != len(inputs) {
		return fmt.Errorf("SendInput sent %d of %d events: %v", sent, len(inputs), err)
	}
	return nil
}

func keyEvent(vk uint16, flags uint32) input {
	var in input
	in.Type = inputKeyboard
	kb := (*keybdInput)(unsafe.Pointer(&in.Data[0]))
	kb.WVk = vk
	kb.DwFlags = flags
	return in
}

func mouseMoveEvent(dx, dy int32) input {
	var in input
	in.Type = inputMouse
	mi := (*mouseInput)(unsafe.Pointer(&in.Data[0]))
	mi.Dx = dx
	mi.Dy = dy
	mi.DwFlags = mouseeventfMove
	return in
}

// windowsSimulator implements the Simulator interface via SendInput and
// SetThreadExecutionState. No external tools are needed.
type windowsSimulator struct{}

// NewSimulator creates the Windows simulator.
func NewSimulator() (Simulator, error) {
	return &windowsSimulator{}, nil
}

func (s *windowsSimulator) PressKey(key string) error {
	vk, ok := virtualKeyCodes[key]
	if !ok {
		return fmt.Errorf("no virtual-key code known for key %q", key)
	}
	return sendInput([]input{
		keyEvent(vk, 0),
		keyEvent(vk, keyeventfKeyUp),
	})
}

func (s *windowsSimulator) MoveMouse(dx, dy int) error {
	return sendInput([]input{mouseMoveEvent(int32(dx), int32(dy))})
}

func (s *windowsSimulator) ToggleScrollLock() error {
	// Two full press/release cycles so the LED state ends up unchanged.
	vk := virtualKeyCodes["Scroll_Lock"]
	if err := sendInput([]input{keyEvent(vk, 0), keyEvent(vk, keyeventfKeyUp)}); err != nil {
		return err
	}
	return sendInput([]input{keyEvent(vk, 0), keyEvent(vk, keyeventfKeyUp)})
}

func (s *windowsSimulator) ResetIdleTimer() error {
	// Without ES_CONTINUOUS this is a one-shot reset of the display and
	// system idle timers, matching the per-tick dispatch model.
	r1, _, err := procSetThreadExecutionState.Call(
		uintptr(esSystemRequired | esDisplayRequired),
	)
	if r1 == 0 {
		return fmt.Errorf("SetThreadExecutionState failed: %v", err)
	}
	return nil
}

// CheckRequirements always succeeds on Windows; everything goes through
// Win32 calls that need no external tools.
func CheckRequirements(settings.Method) error {
	return nil
}
