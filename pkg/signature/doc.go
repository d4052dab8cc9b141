// Package signature produces the per-request authentication tag the video
// backend expects on every call.
//
// Each signature binds the client's application id to the current Unix time
// and a fresh 10-character alphanumeric nonce:
//
//	digest    = hex(md5(appID + "&" + timestamp + "&" + nonce))
//	signature = digest + "." + reverse(nonce)
//
// The timestamp travels next to the signature in its own header so the server
// can recompute the digest and reject stale requests. The nonce is recovered
// from the signature suffix. Nothing is cached between calls: every Generate
// draws a new nonce.
//
// # Usage
//
//	sig := signature.Generate()
//	req.Header.Set(signature.HeaderSignature, sig.Signature)
//	req.Header.Set(signature.HeaderTimestamp, sig.Timestamp)
//
// A failing random source panics. It is a broken process, not a request error.
package signature
