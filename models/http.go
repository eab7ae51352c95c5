package models

// ErrorResponse is the JSON body returned by the inspection API on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ClientsResponse lists every registered client.
type ClientsResponse struct {
	Clients []ClientInfo `json:"clients"`

	// Length is the number of entries in Clients.
	Length int `json:"length"`
}

// VersionResponse is returned by GET /api/version/.
type VersionResponse struct {
	Version string `json:"version"`
}
