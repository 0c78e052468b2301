// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"
	"fmt"

	"github.com/diffeo/go-geoserver/restdata"
)

// SettingsClient reads and changes the server's global settings.
type SettingsClient struct {
	conn *connection
}

// Settings returns the complete global settings.
func (s *SettingsClient) Settings(ctx context.Context) (restdata.Object, error) {
	var settings restdata.Object
	if err := s.conn.getFrom(ctx, "settings.json", nil, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettings replaces the global settings.  settings should be a
// complete document as returned by Settings.
func (s *SettingsClient) UpdateSettings(ctx context.Context, settings restdata.Object) error {
	return s.conn.putTo(ctx, "settings", nil, nil, settings, nil)
}

// UpdateProxyBaseURL changes the proxy base URL, keeping every other
// setting.
func (s *SettingsClient) UpdateProxyBaseURL(ctx context.Context, proxyBaseURL string) error {
	settings, err := s.Settings(ctx)
	if err != nil {
		return err
	}
	if settings == nil {
		settings = restdata.Object{}
	}
	settings.Set(proxyBaseURL, "global", "settings", "proxyBaseUrl")
	return s.UpdateSettings(ctx, settings)
}

// ContactInformation returns the server's contact information.
func (s *SettingsClient) ContactInformation(ctx context.Context) (*restdata.Contact, error) {
	var obj restdata.Object
	if err := s.conn.getFrom(ctx, "settings/contact.json", nil, &obj); err != nil {
		return nil, err
	}
	contact := &restdata.Contact{}
	if err := restdata.DecodeObject(obj.Get("contact"), contact); err != nil {
		return nil, fmt.Errorf("decoding contact: %w", err)
	}
	return contact, nil
}

// UpdateContactInformation replaces the server's contact information.
func (s *SettingsClient) UpdateContactInformation(ctx context.Context, contact restdata.Contact) error {
	return s.conn.putTo(ctx, "settings/contact", nil, nil, restdata.ContactBody{Contact: contact}, nil)
}
