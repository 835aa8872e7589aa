// Package sigkit provides Ed25519 key derivation, HMAC-SHA512 and HKDF,
// bias-free uniform sampling, signed header maps and passphrase encoding
// of 32-byte secrets.
//
// Keys are derived deterministically from a seed:
//
//	seed, err := sigkit.GenerateSeed(sigkit.DefaultSeedSize)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	kp, err := sigkit.DeriveKeypair(seed, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Header maps are signed into a descriptor string and verified with the
// public key:
//
//	headers := sigkit.NewHeaders("foo", "bar", "fizz", "buzz")
//	descriptor, err := sigkit.Sign("my-key", kp.SecretKey, headers)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	headers.Set("signature", descriptor)
//	result, err := sigkit.Verify(kp.PublicKey, headers)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("verified:", result.Verified)
//
// SignRequest, VerifyRequest and Transport apply the same scheme to
// net/http requests.
package sigkit
