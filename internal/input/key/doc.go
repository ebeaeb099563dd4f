// Package key provides the key event types produced by the input decoder.
//
// The fundamental types:
//
//   - Key: identifies a keyboard key (named special keys or KeyRune)
//   - Modifier: bitmask of Ctrl, Alt and Shift
//   - Event: one decoded key press with its modifiers
//
// Control characters are represented as rune events: the decoder maps a
// control byte to its letter (byte + 0x40, lowercased) with ModCtrl set, so
// 0x13 arrives as 's' with Ctrl.
package key
