// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli"
)

// args returns exactly the positional arguments named, or a usage
// error.
func args(c *cli.Context, names ...string) ([]string, error) {
	if c.NArg() != len(names) {
		return nil, fmt.Errorf("usage: %s %s", c.Command.FullName(), strings.Join(names, " "))
	}
	return c.Args(), nil
}

func (a *admin) versionCommand() cli.Command {
	return cli.Command{
		Name:  "version",
		Usage: "show the versions of the server's components",
		Action: func(c *cli.Context) error {
			info, err := a.GeoServer.About.Version(a.ctx())
			if err != nil {
				return err
			}
			versions := map[string]string{}
			for _, r := range info.About.Resource {
				if r.Version != "" {
					versions[r.Name] = r.Version
				}
			}
			return a.print(versions)
		},
	}
}

func (a *admin) existsCommand() cli.Command {
	return cli.Command{
		Name:  "exists",
		Usage: "check whether the server is answering",
		Action: func(c *cli.Context) error {
			exists := a.GeoServer.About.Exists(a.ctx())
			if err := a.print(map[string]bool{"exists": exists}); err != nil {
				return err
			}
			if !exists {
				return errors.New("GeoServer is not answering")
			}
			return nil
		},
	}
}

func (a *admin) waitCommand() cli.Command {
	return cli.Command{
		Name:  "wait",
		Usage: "wait for the server to start answering",
		Flags: []cli.Flag{
			cli.DurationFlag{
				Name:  "timeout",
				Value: time.Minute,
				Usage: "give up after this long",
			},
			cli.DurationFlag{
				Name:  "interval",
				Value: 2 * time.Second,
				Usage: "time between attempts",
			},
		},
		Action: func(c *cli.Context) error {
			start := a.Clock.Now()
			deadline := start.Add(c.Duration("timeout"))
			for attempts := 1; ; attempts++ {
				if a.GeoServer.About.Exists(a.ctx()) {
					return a.print(map[string]interface{}{
						"attempts": attempts,
						"waited":   a.Clock.Now().Sub(start).String(),
					})
				}
				if !a.Clock.Now().Before(deadline) {
					return errors.New("GeoServer did not answer in time")
				}
				a.Log.WithField("attempts", attempts).Debug("GeoServer not answering yet")
				a.Clock.Sleep(c.Duration("interval"))
			}
		},
	}
}

func (a *admin) settingsCommand() cli.Command {
	return cli.Command{
		Name:  "settings",
		Usage: "manage global settings",
		Subcommands: []cli.Command{
			{
				Name:  "show",
				Usage: "show the global settings",
				Action: func(c *cli.Context) error {
					settings, err := a.GeoServer.Settings.Settings(a.ctx())
					if err != nil {
						return err
					}
					return a.print(settings)
				},
			},
			{
				Name:      "proxy",
				Usage:     "set the proxy base URL",
				ArgsUsage: "URL",
				Action: func(c *cli.Context) error {
					argv, err := args(c, "URL")
					if err != nil {
						return err
					}
					return a.GeoServer.Settings.UpdateProxyBaseURL(a.ctx(), argv[0])
				},
			},
			{
				Name:  "contact",
				Usage: "show the contact information",
				Action: func(c *cli.Context) error {
					contact, err := a.GeoServer.Settings.ContactInformation(a.ctx())
					if err != nil {
						return err
					}
					return a.print(contact)
				},
			},
		},
	}
}

func (a *admin) resetCommand() cli.Command {
	return cli.Command{
		Name:  "reset",
		Usage: "drop the server's caches",
		Action: func(c *cli.Context) error {
			return a.GeoServer.ResetReload.Reset(a.ctx())
		},
	}
}

func (a *admin) reloadCommand() cli.Command {
	return cli.Command{
		Name:  "reload",
		Usage: "reload the catalog and configuration from disk",
		Action: func(c *cli.Context) error {
			return a.GeoServer.ResetReload.Reload(a.ctx())
		},
	}
}
