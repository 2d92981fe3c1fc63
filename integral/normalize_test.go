package integral

import (
	"math"
	"testing"

	commonerrors "github.com/amp-labs/amp-truth/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type port int32

type code uint8

func ptr[T any](v T) *T {
	return &v
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	var nilAny *any

	tests := []struct {
		name     string
		input    any
		expected Value
	}{
		{name: "untyped nil", input: nil, expected: Absent()},
		{name: "nil *int8", input: (*int8)(nil), expected: Absent()},
		{name: "nil *int16", input: (*int16)(nil), expected: Absent()},
		{name: "nil *int32", input: (*int32)(nil), expected: Absent()},
		{name: "nil *int64", input: (*int64)(nil), expected: Absent()},
		{name: "nil *Char", input: (*Char)(nil), expected: Absent()},
		{name: "nil *any", input: nilAny, expected: Absent()},
		{name: "pointer to nil any", input: ptr[any](nil), expected: Absent()},
		{name: "nil *Value", input: (*Value)(nil), expected: Absent()},
		{name: "int", input: 42, expected: Of(42)},
		{name: "int8", input: int8(-128), expected: Of(-128)},
		{name: "int16", input: int16(math.MaxInt16), expected: Of(math.MaxInt16)},
		{name: "int32 min", input: int32(math.MinInt32), expected: Of(math.MinInt32)},
		{name: "int64 min", input: int64(math.MinInt64), expected: Of(math.MinInt64)},
		{name: "int64 max", input: int64(math.MaxInt64), expected: Of(math.MaxInt64)},
		{name: "uint8", input: uint8(255), expected: Of(255)},
		{name: "uint16", input: uint16(65535), expected: Of(65535)},
		{name: "uint32", input: uint32(math.MaxUint32), expected: Of(math.MaxUint32)},
		{name: "uint64 in range", input: uint64(math.MaxInt64), expected: Of(math.MaxInt64)},
		{name: "uint in range", input: uint(7), expected: Of(7)},
		{name: "rune is a number", input: '*', expected: Of(42)},
		{name: "char", input: Char(42), expected: OfChar(42)},
		{name: "boxed char", input: ptr(Char(42)), expected: OfChar(42)},
		{name: "boxed int32", input: ptr(int32(4)), expected: Of(4)},
		{name: "boxed int64", input: ptr(int64(4)), expected: Of(4)},
		{name: "double pointer", input: ptr(ptr(int16(9))), expected: Of(9)},
		{name: "pointer to any", input: ptr[any](int8(3)), expected: Of(3)},
		{name: "named int32", input: port(8080), expected: Of(8080)},
		{name: "boxed named uint8", input: ptr(code(200)), expected: Of(200)},
		{name: "value passes through", input: OfChar(65), expected: OfChar(65)},
		{name: "boxed value", input: ptr(Of(-3)), expected: Of(-3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Normalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalize_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   any
		wantErr error
	}{
		{name: "float64", input: 4.0, wantErr: commonerrors.ErrWrongType},
		{name: "float32", input: float32(4), wantErr: commonerrors.ErrWrongType},
		{name: "string", input: "4", wantErr: commonerrors.ErrWrongType},
		{name: "bool", input: true, wantErr: commonerrors.ErrWrongType},
		{name: "struct", input: struct{ N int }{N: 4}, wantErr: commonerrors.ErrWrongType},
		{name: "slice", input: []int{4}, wantErr: commonerrors.ErrWrongType},
		{name: "nil *string", input: (*string)(nil), wantErr: commonerrors.ErrWrongType},
		{name: "boxed float", input: ptr(4.0), wantErr: commonerrors.ErrWrongType},
		{name: "uint64 too large", input: uint64(math.MaxUint64), wantErr: commonerrors.ErrOutOfRange},
		{name: "uint too large", input: uint(math.MaxInt64) + 1, wantErr: commonerrors.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Normalize(tt.input)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
