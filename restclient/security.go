// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/diffeo/go-geoserver/restdata"
)

var (
	// GeoServer answers 404 when creating a user whose name is
	// taken.
	userCreateErrors = statusTable{
		http.StatusConflict: {KindAlreadyExists, "User already exists"},
		http.StatusNotFound: {KindAlreadyExists, "User might already exist"},
	}

	userErrors = notFoundTable("User doesn't exist")

	roleCreateErrors = conflictTable("Role already exists")

	roleAssociateErrors = notFoundTable("User or role doesn't exist")
)

// SecurityClient manages users and roles of the default user/group
// and role services.
type SecurityClient struct {
	conn *connection
}

// Users lists all users.  Passwords are never included.
func (s *SecurityClient) Users(ctx context.Context) ([]restdata.User, error) {
	var obj restdata.Object
	if err := s.conn.getFrom(ctx, "security/usergroup/users.json", nil, &obj); err != nil {
		return nil, err
	}
	list := restdata.UserList{Users: []restdata.User{}}
	if err := restdata.DecodeObject(map[string]interface{}(obj), &list); err != nil {
		return nil, fmt.Errorf("decoding users: %w", err)
	}
	return list.Users, nil
}

// CreateUser creates an enabled user.
func (s *SecurityClient) CreateUser(ctx context.Context, name, password string) error {
	body := restdata.UserBody{User: restdata.User{
		UserName: name,
		Password: password,
		Enabled:  true,
	}}
	return s.conn.postTo(ctx, "security/usergroup/users", nil, userCreateErrors, body, nil)
}

// UpdateUser changes the password and enabled flag of a user.
func (s *SecurityClient) UpdateUser(ctx context.Context, name, password string, enabled bool) error {
	body := restdata.UserBody{User: restdata.User{
		Password: password,
		Enabled:  enabled,
	}}
	return s.conn.postTo(ctx, "security/usergroup/user/{user}", map[string]interface{}{
		"user": name,
	}, userErrors, body, nil)
}

// DeleteUser deletes a user.
func (s *SecurityClient) DeleteUser(ctx context.Context, name string) error {
	return s.conn.deleteAt(ctx, "security/usergroup/user/{user}", map[string]interface{}{
		"user": name,
	}, userErrors)
}

// Roles lists the names of all roles.
func (s *SecurityClient) Roles(ctx context.Context) ([]string, error) {
	var obj restdata.Object
	if err := s.conn.getFrom(ctx, "security/roles.json", nil, &obj); err != nil {
		return nil, err
	}
	list := restdata.RoleList{Roles: []string{}}
	if err := restdata.DecodeObject(map[string]interface{}(obj), &list); err != nil {
		return nil, fmt.Errorf("decoding roles: %w", err)
	}
	return list.Roles, nil
}

// CreateRole creates a role.
func (s *SecurityClient) CreateRole(ctx context.Context, role string) error {
	return s.conn.postTo(ctx, "security/roles/role/{role}", map[string]interface{}{
		"role": role,
	}, roleCreateErrors, nil, nil)
}

// AssociateUserRole grants a role to a user.
func (s *SecurityClient) AssociateUserRole(ctx context.Context, user, role string) error {
	return s.conn.postTo(ctx, "security/roles/role/{role}/user/{user}", map[string]interface{}{
		"role": role,
		"user": user,
	}, roleAssociateErrors, nil, nil)
}
