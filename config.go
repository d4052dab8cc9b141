package vodclient

import (
	"github.com/dmitrymomot/vodclient/pkg/apiclient"
	"github.com/dmitrymomot/vodclient/pkg/localstorage"
)

// Config is the complete client configuration.
type Config struct {
	Env         string `env:"VOD_ENV" envDefault:"development"`
	ServiceName string `env:"VOD_SERVICE_NAME" envDefault:"vodclient"`

	API     apiclient.Config
	Storage localstorage.Config
}
