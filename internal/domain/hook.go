package domain

// HookName identifies a lifecycle script slot.
type HookName string

const (
	HookPreSpinUp    HookName = "pre-spin-up"
	HookPostSpinUp   HookName = "post-spin-up"
	HookPreSpinDown  HookName = "pre-spin-down"
	HookPostSpinDown HookName = "post-spin-down"
)

// HookNames lists every hook in lifecycle order.
var HookNames = []HookName{HookPreSpinUp, HookPostSpinUp, HookPreSpinDown, HookPostSpinDown}

// Valid reports whether n is one of the four known hooks.
func (n HookName) Valid() bool {
	for _, known := range HookNames {
		if n == known {
			return true
		}
	}
	return false
}

// ScriptName is the file name the hook is looked up under.
func (n HookName) ScriptName() string {
	return string(n) + ".sh"
}
