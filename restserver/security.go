// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-geoserver/restdata"
)

func userBody(in interface{}) (restdata.UserBody, error) {
	var body restdata.UserBody
	obj, err := objectBody(in)
	if err == nil {
		err = restdata.DecodeObject(map[string]interface{}(obj), &body)
	}
	if err != nil {
		return body, restdata.ErrBadRequest{Err: err}
	}
	return body, nil
}

// UserList lists all users.
func (api *restAPI) UserList(ctx *context) (interface{}, error) {
	return restdata.UserList{Users: api.Catalog.Users()}, nil
}

// UserPost creates a user.
func (api *restAPI) UserPost(ctx *context, in interface{}) (interface{}, error) {
	body, err := userBody(in)
	if err != nil {
		return nil, err
	}
	if err := api.Catalog.CreateUser(body.User); err != nil {
		return nil, err
	}
	return api.created(body.User.UserName, "user", "user", body.User.UserName)
}

// UserUpdate changes a user's password and enabled flag.
func (api *restAPI) UserUpdate(ctx *context, in interface{}) (interface{}, error) {
	body, err := userBody(in)
	if err != nil {
		return nil, err
	}
	return nil, api.Catalog.UpdateUser(ctx.User, body.User)
}

// UserDelete deletes a user.
func (api *restAPI) UserDelete(ctx *context) (interface{}, error) {
	return nil, api.Catalog.DeleteUser(ctx.User)
}

// RoleList lists all roles.
func (api *restAPI) RoleList(ctx *context) (interface{}, error) {
	return restdata.RoleList{Roles: api.Catalog.Roles()}, nil
}

// RolePost creates a role.
func (api *restAPI) RolePost(ctx *context, in interface{}) (interface{}, error) {
	if err := api.Catalog.CreateRole(ctx.Role); err != nil {
		return nil, err
	}
	return api.created(ctx.Role, "role", "role", ctx.Role)
}

// RoleUserPost grants a role to a user.
func (api *restAPI) RoleUserPost(ctx *context, in interface{}) (interface{}, error) {
	return nil, api.Catalog.AssociateUserRole(ctx.Role, ctx.User)
}
