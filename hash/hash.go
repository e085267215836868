// Package hash implements the fast modular hash used to key lexicon statistics
package hash

const maxUint32 = 0xFFFFFFFF

// Hash mixes n with salt s and reduces the result into range 0 to max-1
func Hash(n uint32, s uint32, max uint32) uint32 {
	// mixing stage, mix input with salt using subtraction
	var m = uint32(n) - uint32(s)

	// hashing stage, use xor shift with prime coefficients
	m ^= m << 2
	m ^= m << 3
	m ^= m >> 5
	m ^= m >> 7
	m ^= m << 11
	m ^= m << 13
	m ^= m >> 17
	m ^= m << 19

	// mixing stage 2, mix input with salt using addition
	m += s

	// modular stage, multiply shift instead of modulo
	// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
	return uint32((uint64(m) * uint64(max)) >> 32)
}

// StringHash hashes the runes of str, seeded by salt
func StringHash(salt uint32, str string) uint32 {
	var h = Hash(salt, uint32(len(str)), maxUint32)
	for _, r := range str {
		h = Hash(h^uint32(r), salt, maxUint32)
	}
	return h
}

// StringsHash hashes a sequence of strings. The element boundaries take part in
// the hash, so {"ab", "c"} and {"a", "bc"} hash differently.
func StringsHash(salt uint32, strs []string) uint32 {
	var h = Hash(salt, uint32(len(strs)), maxUint32)
	for i, str := range strs {
		h = StringHash(h+uint32(i), str)
	}
	return h
}
