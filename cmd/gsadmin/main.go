// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Command gsadmin administers a GeoServer through its REST API.
//
// The server is named by the --url, --user and --password flags, or
// the GEOSERVER_URL, GEOSERVER_USER and GEOSERVER_PASSWORD environment
// variables, or a profile in a YAML profile file.  Results are printed
// as YAML.
package main

import (
	"context"
	"io"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-geoserver/profile"
	"github.com/diffeo/go-geoserver/restclient"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v2"
)

// admin holds the state shared by all commands.
type admin struct {
	GeoServer *restclient.GeoServer
	Clock     clock.Clock
	Fs        afero.Fs
	Out       io.Writer
	Log       *logrus.Logger

	// Context is passed to every request.  If nil, requests are
	// not cancelled.
	Context context.Context
}

func (a *admin) ctx() context.Context {
	if a.Context == nil {
		return context.Background()
	}
	return a.Context
}

// print writes v to the output as YAML.
func (a *admin) print(v interface{}) error {
	bytes, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = a.Out.Write(bytes)
	return err
}

// connect builds the client from the global flags.
func (a *admin) connect(c *cli.Context) error {
	if c.Bool("debug") {
		a.Log.SetLevel(logrus.DebugLevel)
	}
	var p profile.Profile
	if filename := c.String("profile-file"); filename != "" {
		f, err := profile.Load(a.Fs, filename)
		if err != nil {
			return err
		}
		p, err = f.Get(c.String("profile"))
		if err != nil {
			return err
		}
	} else {
		p = profile.Profile{User: c.String("user"), Password: c.String("password")}
		if err := p.Set(c.String("url")); err != nil {
			return err
		}
	}
	cfg := p.Config(a.Log)
	cfg.Fs = a.Fs
	a.GeoServer = restclient.NewFromConfig(cfg)
	a.Log.WithField("url", p.String()).Debug("Using GeoServer")
	return nil
}

func newApp(a *admin) *cli.App {
	app := cli.NewApp()
	app.Name = "gsadmin"
	app.Usage = "administer a GeoServer through its REST API"
	app.Writer = a.Out
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "url",
			Value:  "http://localhost:8080" + profile.DefaultPath,
			Usage:  "GeoServer REST root",
			EnvVar: "GEOSERVER_URL",
		},
		cli.StringFlag{
			Name:   "user",
			Value:  "admin",
			Usage:  "administrator user name",
			EnvVar: "GEOSERVER_USER",
		},
		cli.StringFlag{
			Name:   "password",
			Value:  "geoserver",
			Usage:  "administrator password",
			EnvVar: "GEOSERVER_PASSWORD",
		},
		cli.StringFlag{
			Name:   "profile-file",
			Usage:  "YAML file of connection profiles, overriding --url",
			EnvVar: "GEOSERVER_PROFILES",
		},
		cli.StringFlag{
			Name:  "profile",
			Usage: "profile to use from --profile-file",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "log every request",
		},
	}
	app.Commands = []cli.Command{
		a.versionCommand(),
		a.existsCommand(),
		a.waitCommand(),
		a.workspaceCommand(),
		a.namespaceCommand(),
		a.datastoreCommand(),
		a.layerCommand(),
		a.styleCommand(),
		a.mosaicCommand(),
		a.userCommand(),
		a.roleCommand(),
		a.settingsCommand(),
		a.resetCommand(),
		a.reloadCommand(),
		a.benchCommand(),
	}
	app.Before = a.connect
	return app
}

func main() {
	a := &admin{
		Clock: clock.New(),
		Fs:    afero.NewOsFs(),
		Out:   os.Stdout,
		Log:   logrus.StandardLogger(),
	}
	if err := newApp(a).Run(os.Args); err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("Command failed")
	}
}
