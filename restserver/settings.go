// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-geoserver/restdata"
)

// SettingsGet retrieves the global settings.
func (api *restAPI) SettingsGet(ctx *context) (interface{}, error) {
	return api.Catalog.Settings(), nil
}

// SettingsPut replaces the global settings.
func (api *restAPI) SettingsPut(ctx *context, in interface{}) (interface{}, error) {
	body, err := objectBody(in)
	if err != nil {
		return nil, err
	}
	return nil, api.Catalog.SetSettings(body)
}

// ContactGet retrieves the contact information.
func (api *restAPI) ContactGet(ctx *context) (interface{}, error) {
	return restdata.ContactBody{Contact: api.Catalog.Contact()}, nil
}

// ContactPut replaces the contact information.
func (api *restAPI) ContactPut(ctx *context, in interface{}) (interface{}, error) {
	obj, err := objectBody(in)
	if err != nil {
		return nil, err
	}
	var body restdata.ContactBody
	if err := restdata.DecodeObject(map[string]interface{}(obj), &body); err != nil {
		return nil, restdata.ErrBadRequest{Err: err}
	}
	api.Catalog.SetContact(body.Contact)
	return nil, nil
}

// ResetPost resets the server's caches.
func (api *restAPI) ResetPost(ctx *context, in interface{}) (interface{}, error) {
	api.Catalog.Reset()
	return nil, nil
}

// ReloadPost reloads the server's configuration.
func (api *restAPI) ReloadPost(ctx *context, in interface{}) (interface{}, error) {
	api.Catalog.Reload()
	return nil, nil
}
