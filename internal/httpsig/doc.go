// Package httpsig signs and verifies ordered header maps with Ed25519,
// carrying the result in a descriptor string modelled on the
// draft-cavage HTTP signatures format.
package httpsig
