package apiclient

import (
	"log/slog"
	"net/http"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient uses a copy of c for transport. The copy's Timeout is set
// to the configured request timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cp := *c
			cl.http = &cp
		}
	}
}

// WithSigner replaces the signature generator.
func WithSigner(s Signer) Option {
	return func(c *Client) {
		if s != nil {
			c.signer = s
		}
	}
}

// WithMaxBodySize overrides DefaultMaxBodySize. Zero or less removes the cap.
func WithMaxBodySize(n int64) Option {
	return func(c *Client) {
		c.maxBody = n
	}
}

// WithLogger sets the logger. The client tags it with component=apiclient.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithBeforeSend appends handlers after the built-in before-send handlers.
func WithBeforeSend(h ...RequestHandler) Option {
	return func(c *Client) {
		c.extraBefore = append(c.extraBefore, h...)
	}
}

// WithAfterReceive appends handlers after the built-in success handlers.
func WithAfterReceive(h ...ResponseHandler) Option {
	return func(c *Client) {
		c.extraAfter = append(c.extraAfter, h...)
	}
}

// WithOnError appends handlers after the built-in failure handlers.
func WithOnError(h ...ErrorHandler) Option {
	return func(c *Client) {
		c.extraOnError = append(c.extraOnError, h...)
	}
}
