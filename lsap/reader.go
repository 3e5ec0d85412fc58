package lsap

// readerFromSlice builds a reader over a flat, row-major slice of any
// Numeric element kind. Promotion to float64 is exact for every integer kind
// up to 32 bits, and for float32; int64/uint64 values beyond float64's
// 53-bit mantissa lose precision on promotion, a limitation inherited from
// using float64 as the working type (see DESIGN.md).
func readerFromSlice[T Numeric](data []T) reader {
	return func(idx int) float64 {
		return float64(data[idx])
	}
}

// readerFromBools builds a reader over a flat, row-major []bool, promoting
// true to 1 and false to 0. Bool is handled separately from Numeric because
// Go does not permit numeric conversion of bool.
func readerFromBools(data []bool) reader {
	return func(idx int) float64 {
		if data[idx] {
			return 1
		}
		return 0
	}
}

// readerFromDType builds a reader for a DType-tagged flat buffer, type
// asserting data against the Go slice type the tag promises. A mismatch
// between dtype and the dynamic type of data, or an unrecognized dtype,
// returns ErrDTypeInvalid.
func readerFromDType(data any, dtype DType) (reader, error) {
	switch dtype {
	case DTypeBool:
		if s, ok := data.([]bool); ok {
			return readerFromBools(s), nil
		}
	case DTypeInt8:
		if s, ok := data.([]int8); ok {
			return readerFromSlice(s), nil
		}
	case DTypeInt16:
		if s, ok := data.([]int16); ok {
			return readerFromSlice(s), nil
		}
	case DTypeInt32:
		if s, ok := data.([]int32); ok {
			return readerFromSlice(s), nil
		}
	case DTypeInt64:
		if s, ok := data.([]int64); ok {
			return readerFromSlice(s), nil
		}
	case DTypeUint8:
		if s, ok := data.([]uint8); ok {
			return readerFromSlice(s), nil
		}
	case DTypeUint16:
		if s, ok := data.([]uint16); ok {
			return readerFromSlice(s), nil
		}
	case DTypeUint32:
		if s, ok := data.([]uint32); ok {
			return readerFromSlice(s), nil
		}
	case DTypeUint64:
		if s, ok := data.([]uint64); ok {
			return readerFromSlice(s), nil
		}
	case DTypeFloat32:
		if s, ok := data.([]float32); ok {
			return readerFromSlice(s), nil
		}
	case DTypeFloat64:
		if s, ok := data.([]float64); ok {
			return readerFromSlice(s), nil
		}
	}
	return nil, ErrDTypeInvalid
}
