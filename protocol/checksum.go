package protocol

// Checksum computes the single-byte additive checksum used by every
// command packet and command-echo response: the low 8 bits of the
// arithmetic sum of all input bytes.
func Checksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return sum
}

// VerifyChecksum reports whether the last byte of frame equals the
// checksum of all preceding bytes. Frames shorter than two bytes cannot
// carry a checksum and always fail.
func VerifyChecksum(frame []byte) bool {
	if len(frame) < 2 {
		return false
	}
	return Checksum(frame[:len(frame)-1]) == frame[len(frame)-1]
}
