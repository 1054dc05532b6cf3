package racetime

import (
	"fmt"
	"net/url"
)

// BuildURI composes an absolute URI from a protocol scheme and a URL
// path fragment against the fixed racetime.gg host. Path fragments are
// expected to start with "/".
func BuildURI(scheme, path string) (*url.URL, error) {
	u, err := url.Parse(fmt.Sprintf("%s://%s%s", scheme, Host, path))
	if err != nil {
		return nil, fmt.Errorf("failed to build URI: %w", err)
	}
	return u, nil
}

// HTTPURI composes an HTTPS URI from a URL path fragment against the
// fixed racetime.gg host.
func HTTPURI(path string) (*url.URL, error) {
	return BuildURI("https", path)
}
