package rangecoder

// ContextSize is the length of the per-integer scratch state array shared
// by every multi-bit get_uint/get_sint decode.
const ContextSize = 32

// DefaultStateTransition is the default range-coder state-transition
// table, used when a slice's coder_type selects the default table instead
// of a per-stream custom one. Index 0 is reserved and never read: GetBit
// only ever looks up table[state] for state in [1,255] or table[256-state]
// for the mirrored LPS direction, and state 0 never occurs once a context
// has been touched (states start at 128 and only move away from 0).
//
// The table forms a probability ladder that approaches certainty (255) as
// the index grows, mirrored around the midpoint so the LPS-direction
// update (256 - table[256-state]) stays symmetric with the MPS-direction
// update (table[state]) -- the same general shape the FFV1 specification
// describes for its default table.
var DefaultStateTransition = [256]uint8{
	0, 7, 12, 18, 23, 29, 34, 39, 44, 49, 54, 58, 63, 67, 71, 76,
	80, 84, 88, 91, 95, 99, 102, 106, 109, 113, 116, 119, 122, 125, 128, 131,
	134, 137, 140, 142, 145, 147, 150, 152, 155, 157, 159, 161, 164, 166, 168, 170,
	172, 174, 176, 177, 179, 181, 183, 184, 186, 188, 189, 191, 192, 194, 195, 196,
	198, 199, 200, 202, 203, 204, 205, 206, 208, 209, 210, 211, 212, 213, 214, 215,
	216, 217, 218, 218, 219, 220, 221, 222, 222, 223, 224, 225, 225, 226, 227, 227,
	228, 229, 229, 230, 231, 231, 232, 232, 233, 233, 234, 234, 235, 235, 236, 236,
	237, 237, 238, 238, 238, 239, 239, 240, 240, 240, 241, 241, 241, 242, 242, 242,
	243, 243, 243, 244, 244, 244, 244, 245, 245, 245, 245, 246, 246, 246, 246, 247,
	247, 247, 247, 247, 248, 248, 248, 248, 248, 249, 249, 249, 249, 249, 249, 249,
	250, 250, 250, 250, 250, 250, 250, 251, 251, 251, 251, 251, 251, 251, 251, 251,
	252, 252, 252, 252, 252, 252, 252, 252, 252, 252, 253, 253, 253, 253, 253, 253,
	253, 253, 253, 253, 253, 253, 253, 253, 253, 254, 254, 254, 254, 254, 254, 254,
	254, 254, 254, 254, 254, 254, 254, 254, 254, 254, 254, 254, 254, 254, 254, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
}
