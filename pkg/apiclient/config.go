package apiclient

import "time"

const (
	// DefaultTimeout bounds every request, connection setup to last body byte.
	DefaultTimeout = 10 * time.Second

	// DefaultUserAgent is sent when Config.UserAgent is empty.
	DefaultUserAgent = "vodclient/1.0"
)

// Config holds the fixed transport settings. It can be loaded with pkg/config.
type Config struct {
	BaseURL   string        `env:"VOD_API_BASE_URL,required"`
	Timeout   time.Duration `env:"VOD_API_TIMEOUT" envDefault:"10s"`
	AppID     string        `env:"VOD_API_APP_ID" envDefault:"jocy"`
	UserAgent string        `env:"VOD_API_USER_AGENT" envDefault:"vodclient/1.0"`
}
