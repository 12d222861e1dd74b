package fpcodec

// Per-type constants derived from each IEEE-754 binary format's layout.
// original_source's fp_traits.hpp (the header these mirror) did not survive
// distillation into this pack, so these are reconstructed directly from the
// IEEE-754 field widths rather than copied from it.
const (
	mantissaBits32 = 23
	exponentBits32 = 8
	bias32         = 127

	mantissaBits64 = 52
	exponentBits64 = 11
	bias64         = 1023

	// maxShortestDigits10 is the largest number of significant decimal
	// digits Classify can ever produce for each width: the Clinger bound
	// for round-trip shortest representation.
	maxShortestDigits32 = 9
	maxShortestDigits64 = 17

	// Clamp bounds for Parse's adjusted scientific exponent: beyond these,
	// the result is unambiguously +/-Infinity or a signed zero.
	parseMaxSciExponent32 = 38
	parseMinSciExponent32 = -45
	parseMaxSciExponent64 = 308
	parseMinSciExponent64 = -324

	// maxRoundedSciDigits is the largest significant_digits RoundSci will
	// honor: the base-10 digit count of the widest exact decimal expansion
	// the type's magnitude range can produce.
	maxRoundedSciDigits32 = 111
	maxRoundedSciDigits64 = 766

	// maxFixedDecimalDigits is the largest precision (fractional digits)
	// RoundFixed will honor.
	maxFixedDecimalDigits32 = 149
	maxFixedDecimalDigits64 = 1074

	// maxFixedUnitDigits bounds the integral part's digit count in fixed
	// notation.
	maxFixedUnitDigits32 = 39
	maxFixedUnitDigits64 = 325
)
