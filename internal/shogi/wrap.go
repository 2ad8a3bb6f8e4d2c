package shogi

// Wrapping 8-bit arithmetic helpers. The leaf evaluation's revision pipeline
// is specified in terms of 8-bit wraparound (matching the original's u8
// fields, overflow bugs included) — see SPEC_FULL.md "Wrapping arithmetic as
// a contract". Go has no wrapping-newtype sugar, so these are free
// functions instead of operator overloads.

func wrapAdd8(a, b int) uint8 { return uint8(a + b) }

func wrapSub8(a, b int) uint8 { return uint8(a - b) }

// saturate8 clamps a wrapped value to zero if it reads as negative when
// interpreted as a signed 8-bit quantity. Applied only where the revision
// pipeline specifies it (end of pipeline for capture_price/score_posi/
// score_nega), never mid-pipeline.
func saturate8(v uint8) uint8 {
	if int8(v) < 0 {
		return 0
	}
	return v
}
