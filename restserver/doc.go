// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restserver serves a memory.Catalog over the subset of the
// GeoServer administrative REST API that the restclient package
// uses.  It exists to test restclient and tools built on it without a
// running GeoServer.
//
// HTTP Considerations
//
// Every request must carry HTTP Basic credentials of an enabled user
// holding the ADMIN role; the catalog starts with admin/geoserver.
// Any path may carry a ".json" suffix, which is ignored.  Bodies with
// a JSON content type are parsed; any other body (SLD documents,
// uploaded files, server-side paths) is passed through as bytes.
//
// Successful creation answers 201 Created with the new item's name as
// plain text.  Errors answer with a plain-text message and the status
// GeoServer itself uses, which is not always the obvious one: a
// non-empty workspace is 400, a store with dependants is 401, a style
// in use is 403, and a duplicate user is 404.
//
// URL Scheme
//
// The following URLs are defined, relative to the REST root:
//
//     /about/version
//     /workspaces
//     /workspaces/{workspace}
//     /namespaces
//     /namespaces/{prefix}
//     /workspaces/{workspace}/{datastores|coveragestores|wmsstores|wmtsstores}
//     /workspaces/{workspace}/{kind}/{store}
//     /workspaces/{workspace}/{kind}/{store}/{featuretypes|coverages|wmslayers|layers}
//     /workspaces/{workspace}/{kind}/{store}/{resources}/{name}
//     /workspaces/{workspace}/featuretypes
//     /workspaces/{workspace}/coveragestores/{store}/file.geotiff
//     /workspaces/{workspace}/coveragestores/{store}/file.imagemosaic
//     /workspaces/{workspace}/coveragestores/{store}/external.imagemosaic
//       .../coverages/{name}/index/granules
//       .../coverages/{name}/index/granules.xml?filter=location='...'
//     /workspaces/{workspace}/layers
//     /workspaces/{workspace}/styles
//     /workspaces/{workspace}/styles/{style}
//     /layers
//     /layers/{workspace:name}
//     /layers/{workspace:name}/styles
//     /styles
//     /styles/{style}
//     /security/usergroup/users
//     /security/usergroup/user/{user}
//     /security/roles
//     /security/roles/role/{role}
//     /security/roles/role/{role}/user/{user}
//     /settings
//     /settings/contact
//     /reset
//     /reload
package restserver
