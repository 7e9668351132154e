// Package docs Places Directory API.
//
// Content API serving categorized points of interest with multilingual
// text, opening hours, images, boolean attribute tags, per-device likes
// and a wheel-spin random selection endpoint.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
