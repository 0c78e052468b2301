// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"net/http"

	"github.com/diffeo/go-geoserver/restdata"
)

type user struct {
	name     string
	password string
	enabled  bool
}

// Authenticate says whether name and password belong to an enabled
// administrator.
func (c *Catalog) Authenticate(name, password string) bool {
	var ok bool
	_ = c.do(func() error {
		u, present := c.users[name]
		ok = present && u.enabled && u.password == password && c.roles[AdminRole][name]
		return nil
	})
	return ok
}

// Users lists all users, without their passwords.
func (c *Catalog) Users() []restdata.User {
	var users []restdata.User
	_ = c.do(func() error {
		users = make([]restdata.User, 0, len(c.users))
		for _, name := range sortedKeys(c.users) {
			u := c.users[name]
			users = append(users, restdata.User{UserName: u.name, Enabled: u.enabled})
		}
		return nil
	})
	return users
}

// CreateUser creates a user.
func (c *Catalog) CreateUser(u restdata.User) error {
	return c.do(func() error {
		if u.UserName == "" {
			return errBadRequest("userName is required")
		}
		if _, present := c.users[u.UserName]; present {
			// GeoServer reports a duplicate user as 404
			return ErrAlreadyExists{What: "User", Name: u.UserName, Status: http.StatusNotFound}
		}
		c.users[u.UserName] = &user{name: u.UserName, password: u.Password, enabled: u.Enabled}
		return nil
	})
}

// UpdateUser changes the enabled flag of a user, and its password if
// a new one is given.
func (c *Catalog) UpdateUser(name string, u restdata.User) error {
	return c.do(func() error {
		existing, present := c.users[name]
		if !present {
			return ErrNotFound{What: "user", Name: name}
		}
		if u.Password != "" {
			existing.password = u.Password
		}
		existing.enabled = u.Enabled
		return nil
	})
}

// DeleteUser deletes a user, removing it from every role.
func (c *Catalog) DeleteUser(name string) error {
	return c.do(func() error {
		if _, present := c.users[name]; !present {
			return ErrNotFound{What: "user", Name: name}
		}
		delete(c.users, name)
		for _, members := range c.roles {
			delete(members, name)
		}
		return nil
	})
}

// Roles lists the names of all roles.
func (c *Catalog) Roles() []string {
	var roles []string
	_ = c.do(func() error {
		roles = sortedKeys(c.roles)
		return nil
	})
	return roles
}

// CreateRole creates a role with no members.
func (c *Catalog) CreateRole(role string) error {
	return c.do(func() error {
		if _, present := c.roles[role]; present {
			return ErrAlreadyExists{What: "Role", Name: role}
		}
		c.roles[role] = make(map[string]bool)
		return nil
	})
}

// AssociateUserRole grants a role to a user.
func (c *Catalog) AssociateUserRole(role, name string) error {
	return c.do(func() error {
		members, present := c.roles[role]
		if !present {
			return ErrNotFound{What: "role", Name: role}
		}
		if _, present := c.users[name]; !present {
			return ErrNotFound{What: "user", Name: name}
		}
		members[name] = true
		return nil
	})
}

// RoleMembers lists the users holding a role.
func (c *Catalog) RoleMembers(role string) (names []string, err error) {
	err = c.do(func() error {
		members, present := c.roles[role]
		if !present {
			return ErrNotFound{What: "role", Name: role}
		}
		names = sortedKeys(members)
		return nil
	})
	return
}
