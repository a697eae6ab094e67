// Package identity maps the 6-byte identity blob read from register
// 0xFA to a peripheral kind.
package identity

import "github.com/sergev/wiidrv/kind"

// Blob is the raw identity payload.
type Blob [6]byte

var signatures = map[Blob]kind.Peripheral{
	{0x00, 0x00, 0xA4, 0x20, 0x00, 0x00}: kind.Nunchuck,
	{0x00, 0x00, 0xA4, 0x20, 0x01, 0x01}: kind.ClassicController,
	{0x00, 0x00, 0xA4, 0x20, 0x04, 0x05}: kind.MotionPlus,
	{0x00, 0x00, 0xA4, 0x20, 0x05, 0x05}: kind.MotionPlusPassNunchuck,
	{0x00, 0x00, 0xA4, 0x20, 0x07, 0x05}: kind.MotionPlusPassClassic,
}

// Match looks up blob in the fixed signature table. A value with no
// match is kind.Unsupported; the caller is responsible for reporting
// kind.Unknown when the bus transaction that produced blob itself
// failed (identity.Match is never called in that case).
func Match(blob Blob) kind.Peripheral {
	if k, ok := signatures[blob]; ok {
		return k
	}
	return kind.Unsupported
}
