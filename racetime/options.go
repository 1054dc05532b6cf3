package racetime

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the production racetime.gg endpoint. Intended
// for tests and self-hosted instances; the trailing slash, if any, is
// trimmed so endpoint paths join cleanly.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
			baseURL = baseURL[:len(baseURL)-1]
		}
		c.baseURL = baseURL
	}
}
