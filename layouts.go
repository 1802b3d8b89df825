package fixed

// Commonly used layouts, named after the number of integral and fraction
// bits. All of them round half away from zero.
type (
	Fixed8_8   = Fixed[int16, Int32[int16], F8[int16], Round]
	Fixed16_16 = Fixed[int32, Int64[int32], F16[int32], Round]
	Fixed24_8  = Fixed[int32, Int64[int32], F8[int32], Round]
	Fixed8_24  = Fixed[int32, Int64[int32], F24[int32], Round]
	Fixed56_8  = Fixed[int64, Int128[int64], F8[int64], Round]
	Fixed48_16 = Fixed[int64, Int128[int64], F16[int64], Round]
	Fixed32_32 = Fixed[int64, Int128[int64], F32[int64], Round]
	Fixed16_48 = Fixed[int64, Int128[int64], F48[int64], Round]
	Fixed8_56  = Fixed[int64, Int128[int64], F56[int64], Round]
)
