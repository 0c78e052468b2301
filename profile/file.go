// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package profile

import (
	"fmt"
	"sort"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

// File is the contents of a profile file, such as
//
//     default: local
//     profiles:
//       local:
//         url: http://localhost:8080/geoserver/rest
//         user: admin
//         password: geoserver
type File struct {
	// Default names the profile used when none is requested.
	Default string `mapstructure:"default"`

	Profiles map[string]Profile `mapstructure:"profiles"`
}

// Names returns the names of the profiles in sorted order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Profiles))
	for name := range f.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the named profile, or the default profile if name is
// empty.  A file with a single profile needs no default.
func (f *File) Get(name string) (Profile, error) {
	if name == "" {
		name = f.Default
	}
	if name == "" && len(f.Profiles) == 1 {
		name = f.Names()[0]
	}
	if name == "" {
		return Profile{}, fmt.Errorf("no profile named and no default among %v", f.Names())
	}
	p, ok := f.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("no profile %q", name)
	}
	if p.URL != "" {
		// Normalize the URL the same way a flag would
		user, password := p.User, p.Password
		if err := p.Set(p.URL); err != nil {
			return Profile{}, fmt.Errorf("profile %q: %w", name, err)
		}
		if p.User == "" {
			p.User = user
		}
		if p.Password == "" {
			p.Password = password
		}
	}
	return p, p.Validate()
}

// Parse decodes YAML profile file contents.
func Parse(data []byte) (*File, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	f := &File{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      f,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, err
	}
	return f, nil
}

// Load reads a YAML profile file.
func Load(fs afero.Fs, filename string) (*File, error) {
	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	return f, nil
}
