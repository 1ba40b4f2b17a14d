package request

import (
	"net/url"
	"strings"
)

type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// KVPair is one key=value body field supplied on the command line,
// destined for the JSON object body.
type KVPair struct {
	Key   string
	Value string
}

// Descriptor describes the single outgoing request. It is built once
// during argument parsing and not modified afterwards.
type Descriptor struct {
	Method Method
	URL    string
	Body   []KVPair
}

// NewDescriptor validates the raw command line input and produces a
// Descriptor. All validation happens here, before any network activity.
func NewDescriptor(method Method, rawURL string, body []string) (*Descriptor, error) {
	u, err := ParseURL(rawURL)
	if err != nil {
		return nil, err
	}

	pairs := make([]KVPair, 0, len(body))
	for _, token := range body {
		pair, err := ParseKVPair(token)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}

	return &Descriptor{
		Method: method,
		URL:    u,
		Body:   pairs,
	}, nil
}

// ParseURL parses raw as an absolute URI and returns its normalized
// form.
func ParseURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", &InvalidURLError{URL: raw, cause: err}
	}

	if !u.IsAbs() || u.Host == "" {
		return "", &InvalidURLError{URL: raw}
	}

	return u.String(), nil
}

// ParseKVPair splits a key=value token on the first "=". The value may
// itself contain "=" characters; the key must be non-empty.
func ParseKVPair(token string) (KVPair, error) {
	key, value, found := strings.Cut(token, "=")

	if !found {
		return KVPair{}, &InvalidBodyPairError{Token: token, Reason: "no value found"}
	}

	if key == "" {
		return KVPair{}, &InvalidBodyPairError{Token: token, Reason: "no key found"}
	}

	return KVPair{Key: key, Value: value}, nil
}
