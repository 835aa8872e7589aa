// Package crypto provides the cryptographic primitives behind sigkit.
//
// # Algorithm Suite
//
//   - HMAC (RFC 2104) and HKDF (RFC 5869) over a hash with a 64-byte digest
//     and a 128-byte block. SHA-512 is the default; BLAKE2b-512 is available
//     through [HMACWith] and [HKDFWith].
//
//   - Ed25519 (RFC 8032) for detached signatures. Keypairs are derived
//     deterministically from a caller-supplied seed with
//     [DeriveSigningKeysFromSeed]: the seed is expanded with HKDF-SHA-512
//     (info 0x00) into the 32-byte Ed25519 seed.
//
// # Sampling
//
// [Sampler] draws from a random byte source, crypto/rand by default:
//
//   - [Sampler.Uniform] samples integers in [0, n) for n up to 2^53 by
//     rejection, so there is no modulo bias for any n.
//
//   - [Sampler.Uniform01] samples the float64 nearest to a uniform real in
//     [0, 1] by drawing a geometric exponent and a 64-bit odd significand.
//     Scaling a uniform integer instead would never produce the small values
//     near zero that the float64 format can represent.
//
// There is no pseudo-random fallback. Errors from the source are returned.
//
// # Key Material
//
// Keys may be passed as raw bytes or hex strings; see [KeyBytes]. Secret
// keys are either the 64-byte expanded form or the 32-byte seed.
//
// Keep secret keys and seeds secure. They should never be logged, transmitted in
// plaintext, or stored in version control.
package crypto
