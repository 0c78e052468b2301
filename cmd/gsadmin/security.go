// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"github.com/urfave/cli"
)

func (a *admin) userCommand() cli.Command {
	return cli.Command{
		Name:  "user",
		Usage: "manage users",
		Subcommands: []cli.Command{
			{
				Name:  "list",
				Usage: "list all users",
				Action: func(c *cli.Context) error {
					users, err := a.GeoServer.Security.Users(a.ctx())
					if err != nil {
						return err
					}
					enabled := make(map[string]bool, len(users))
					for _, u := range users {
						enabled[u.UserName] = u.Enabled
					}
					return a.print(enabled)
				},
			},
			{
				Name:      "create",
				Usage:     "create an enabled user",
				ArgsUsage: "NAME PASSWORD",
				Action: func(c *cli.Context) error {
					argv, err := args(c, "NAME", "PASSWORD")
					if err != nil {
						return err
					}
					return a.GeoServer.Security.CreateUser(a.ctx(), argv[0], argv[1])
				},
			},
			{
				Name:      "update",
				Usage:     "change a user's password",
				ArgsUsage: "NAME PASSWORD",
				Flags: []cli.Flag{
					cli.BoolFlag{
						Name:  "disable",
						Usage: "disable the user",
					},
				},
				Action: func(c *cli.Context) error {
					argv, err := args(c, "NAME", "PASSWORD")
					if err != nil {
						return err
					}
					return a.GeoServer.Security.UpdateUser(a.ctx(), argv[0], argv[1], !c.Bool("disable"))
				},
			},
			{
				Name:      "delete",
				Usage:     "delete a user",
				ArgsUsage: "NAME",
				Action: func(c *cli.Context) error {
					argv, err := args(c, "NAME")
					if err != nil {
						return err
					}
					return a.GeoServer.Security.DeleteUser(a.ctx(), argv[0])
				},
			},
		},
	}
}

func (a *admin) roleCommand() cli.Command {
	return cli.Command{
		Name:  "role",
		Usage: "manage roles",
		Subcommands: []cli.Command{
			{
				Name:  "list",
				Usage: "list all roles",
				Action: func(c *cli.Context) error {
					roles, err := a.GeoServer.Security.Roles(a.ctx())
					if err != nil {
						return err
					}
					return a.print(roles)
				},
			},
			{
				Name:      "create",
				Usage:     "create a role",
				ArgsUsage: "ROLE",
				Action: func(c *cli.Context) error {
					argv, err := args(c, "ROLE")
					if err != nil {
						return err
					}
					return a.GeoServer.Security.CreateRole(a.ctx(), argv[0])
				},
			},
			{
				Name:      "grant",
				Usage:     "give a role to a user",
				ArgsUsage: "USER ROLE",
				Action: func(c *cli.Context) error {
					argv, err := args(c, "USER", "ROLE")
					if err != nil {
						return err
					}
					return a.GeoServer.Security.AssociateUserRole(a.ctx(), argv[0], argv[1])
				},
			},
		},
	}
}
