// Package kind identifies the Wii extension peripherals the driver
// understands and the bus addresses they live at.
package kind

import "fmt"

// Peripheral tags the device attached to the bus, as determined by
// reading the identity blob at register 0xFA.
type Peripheral int

const (
	// Unknown means identification has not been attempted, or the bus
	// transaction used to read the identity blob failed.
	Unknown Peripheral = iota
	// Unsupported means the identity blob was read successfully but
	// does not match any known signature.
	Unsupported
	Nunchuck
	ClassicController
	MotionPlus
	MotionPlusPassNunchuck
	MotionPlusPassClassic
)

func (k Peripheral) String() string {
	switch k {
	case Unknown:
		return "unknown"
	case Unsupported:
		return "unsupported"
	case Nunchuck:
		return "nunchuck"
	case ClassicController:
		return "classic-controller"
	case MotionPlus:
		return "motion-plus"
	case MotionPlusPassNunchuck:
		return "motion-plus+nunchuck"
	case MotionPlusPassClassic:
		return "motion-plus+classic"
	default:
		return fmt.Sprintf("peripheral(%d)", int(k))
	}
}

// Address is the 7-bit bus address a peripheral responds on.
type Address uint8

const (
	// ExtensionAddress is used by every extension controller except
	// a bare Motion Plus in its own (non-pass-through) base mode.
	ExtensionAddress Address = 0x52
	// MotionPlusAddress is the Motion Plus base address.
	MotionPlusAddress Address = 0x53
)

// BusAddress returns the bus address a peripheral of this kind
// responds on.
func (k Peripheral) BusAddress() Address {
	switch k {
	case MotionPlus:
		return MotionPlusAddress
	default:
		return ExtensionAddress
	}
}

// IsClassic reports whether k is one of the two Classic Controller
// report layouts (normal or Motion Plus pass-through), which both
// require the pre-STATUS reconfigure workaround.
func (k Peripheral) IsClassic() bool {
	return k == ClassicController || k == MotionPlusPassClassic
}
