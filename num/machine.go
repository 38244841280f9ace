package num

// Machine constrains a type parameter to the eight fixed-width built-in
// integer types. The 128-bit widths have dedicated carrier types (Uint128,
// Int128) and are implemented separately.
type Machine interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64
}

// BitsOf returns the width of T in bits.
func BitsOf[T Machine]() uint {
	var t T
	switch any(t).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32:
		return 32
	default:
		return 64
	}
}

// IsSigned reports whether T is a signed type.
func IsSigned[T Machine]() bool {
	var t T
	switch any(t).(type) {
	case int8, int16, int32, int64:
		return true
	default:
		return false
	}
}
