package sigkit

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/vaultsandbox/sigkit/internal/cryptoerr"
	"github.com/vaultsandbox/sigkit/internal/httpsig"
)

// RequestTarget is the pseudo-header covering the method and path of a
// request, rendered as "<method> <request-uri>" in lower-case method.
const RequestTarget = "(request-target)"

// SignatureHTTPHeader is the HTTP header that carries the descriptor.
const SignatureHTTPHeader = "Signature"

// DefaultRequestHeaders are signed by Transport when it has no header list.
var DefaultRequestHeaders = []string{RequestTarget, "host", "date"}

// SignRequest signs the named headers of req and sets its Signature
// header. Names are lower-cased; RequestTarget and "host" are taken from
// the request line, the rest from req.Header. Every named header must be
// present.
func SignRequest(req *http.Request, keyID string, secretKey any, names ...string) error {
	if err := checkRequest(req); err != nil {
		return wrapError("sign request", err)
	}
	if len(names) == 0 {
		return wrapError("sign request", cryptoerr.ErrMissingHeaders)
	}

	var h Headers
	for _, name := range names {
		name = strings.ToLower(name)
		value, ok := requestHeader(req, name)
		if !ok {
			return wrapError("sign request", cryptoerr.Errorf(cryptoerr.ErrMissingHeaders,
				"request has no %s header", name))
		}
		h.Set(name, value)
	}

	desc, err := httpsig.Sign(keyID, secretKey, h)
	if err != nil {
		return wrapError("sign request", err)
	}

	req.Header.Set(SignatureHTTPHeader, desc)
	return nil
}

// VerifyRequest verifies the Signature header of req against publicKey.
// The signed message is rebuilt from the request using the header names
// the descriptor lists. A mismatch yields Verified == false with no error.
func VerifyRequest(req *http.Request, publicKey any, opts ...RequestOption) (*VerifyResult, error) {
	cfg := &requestConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if err := checkRequest(req); err != nil {
		logger.Warn("signature rejected", "error", err)
		return nil, wrapError("verify request", err)
	}

	res, err := verifyRequest(req, publicKey, cfg.requiredHeaders)
	if err != nil {
		logger.Warn("signature rejected",
			"method", req.Method,
			"path", req.URL.Path,
			"error", err,
		)
		return nil, wrapError("verify request", err)
	}

	if !res.Verified {
		logger.Warn("signature mismatch",
			"method", req.Method,
			"path", req.URL.Path,
			"key_id", res.KeyID,
			"headers", strings.Join(res.Headers, " "),
		)
	} else {
		logger.Debug("signature verified",
			"method", req.Method,
			"path", req.URL.Path,
			"key_id", res.KeyID,
		)
	}
	return res, nil
}

func verifyRequest(req *http.Request, publicKey any, required []string) (*VerifyResult, error) {
	raw := req.Header.Get(SignatureHTTPHeader)
	if raw == "" {
		return nil, cryptoerr.ErrMissingSignatureHeader
	}

	d, err := httpsig.ParseDescriptor(raw)
	if err != nil {
		return nil, err
	}
	if missing := d.Missing(required...); len(missing) > 0 {
		return nil, cryptoerr.Errorf(cryptoerr.ErrMissingHeaders,
			"descriptor does not sign %s", strings.Join(missing, ", "))
	}

	// Absent headers are left out so that verification fails rather than
	// signing an empty value.
	var h Headers
	for _, name := range d.Headers {
		if value, ok := requestHeader(req, strings.ToLower(name)); ok {
			h.Set(name, value)
		}
	}
	h.Set(httpsig.SignatureHeader, raw)

	return httpsig.Verify(publicKey, h)
}

func checkRequest(req *http.Request) error {
	if req == nil || req.URL == nil {
		return cryptoerr.Errorf(cryptoerr.ErrMissingField, "request has no URL")
	}
	return nil
}

// requestHeader returns the value signed for a lower-case header name.
// req.URL must not be nil.
func requestHeader(req *http.Request, name string) (string, bool) {
	switch name {
	case RequestTarget:
		return strings.ToLower(req.Method) + " " + req.URL.RequestURI(), true
	case "host":
		host := req.Host
		if host == "" {
			host = req.URL.Host
		}
		return host, host != ""
	}

	values := req.Header.Values(name)
	if len(values) == 0 {
		return "", false
	}
	return strings.Join(values, ","), true
}

// Transport is an http.RoundTripper that signs each outgoing request.
type Transport struct {
	// KeyID names the key in the descriptor.
	KeyID string
	// SecretKey is the Ed25519 secret key, as bytes or hex.
	SecretKey any
	// Headers lists the header names to sign. Default: DefaultRequestHeaders
	Headers []string
	// Base performs the request. Default: http.DefaultTransport
	Base http.RoundTripper

	now func() time.Time
}

// RoundTrip signs a copy of req and sends it with the base transport.
// A Date header is added when it is signed but missing.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	names := t.Headers
	if len(names) == 0 {
		names = DefaultRequestHeaders
	}

	signed := req.Clone(req.Context())
	for _, name := range names {
		if strings.EqualFold(name, "date") && signed.Header.Get("Date") == "" {
			signed.Header.Set("Date", t.clock().UTC().Format(http.TimeFormat))
		}
	}

	if err := SignRequest(signed, t.KeyID, t.SecretKey, names...); err != nil {
		if req.Body != nil {
			req.Body.Close()
		}
		return nil, err
	}

	return t.base().RoundTrip(signed)
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *Transport) clock() time.Time {
	if t.now != nil {
		return t.now()
	}
	return time.Now()
}
