// Command vodctl calls the video-on-demand backend from the shell using the
// session persisted by the configured storage driver.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/vodclient"
	"github.com/dmitrymomot/vodclient/pkg/vodapi"
)

var errUsage = errors.New("usage: vodctl [flags] channels|banners [id]|search <keyword>|video <id>|login <user> <password>|logout|whoami|status")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("vodctl", flag.ContinueOnError)
	baseURL := fs.String("base-url", "", "backend base URL (overrides VOD_API_BASE_URL)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *baseURL != "" {
		if err := os.Setenv("VOD_API_BASE_URL", *baseURL); err != nil {
			return err
		}
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	c, err := vodclient.FromEnv(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	env, err := dispatch(ctx, c, fs.Arg(0), fs.Args()[1:], out)
	if err != nil || env == nil {
		return err
	}
	if err := printJSON(out, env); err != nil {
		return err
	}
	return env.Err()
}

func dispatch(ctx context.Context, c *vodclient.Client, cmd string, args []string, out io.Writer) (*vodapi.Envelope, error) {
	switch cmd {
	case "channels":
		return c.API.Channels(ctx)
	case "banners":
		id := ""
		if len(args) > 0 {
			id = args[0]
		}
		return c.API.Banners(ctx, id)
	case "search":
		if len(args) != 1 {
			return nil, errUsage
		}
		return c.API.Search(ctx, vodapi.Params{"wd": args[0]})
	case "video":
		if len(args) != 1 {
			return nil, errUsage
		}
		return c.API.VideoDetail(ctx, vodapi.Params{"vid": args[0]})
	case "login":
		if len(args) != 2 {
			return nil, errUsage
		}
		return c.API.Login(ctx, map[string]string{"username": args[0], "password": args[1]})
	case "logout":
		return c.API.Logout(ctx)
	case "whoami":
		return c.API.UserInfo(ctx)
	case "status":
		return nil, printJSON(out, c.Session.Snapshot())
	default:
		return nil, errUsage
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
