/*
Package server implements msgpack IPC for spell checking.

Clients write msgpack maps to stdin and read one msgpack map per request from
stdout. The server first announces itself with:

	{"status": "ready"}

A check request carries an ID, the word and an optional suggestion limit:

	{"id": "req_001", "w": "cot", "l": 10}

The response says whether the word was found and, if not, lists corrections
sorted alphabetically:

	{"id": "req_001", "w": "cot", "f": false, "s": ["cat", "cut"], "c": 2, "t": 145}

Requests with an action field are management requests:

	{"id": "info_001", "action": "get_info"}
	{"id": "ping", "action": "health"}

Failed requests get a CheckError with an HTTP-like code.
*/
package server

// Request is the envelope decoded for every incoming message. Action is
// empty for check requests.
type Request struct {
	ID     string `msgpack:"id"`
	Word   string `msgpack:"w,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
	Action string `msgpack:"action,omitempty"`
}

// CheckResponse answers a check request. TimeTaken is in microseconds.
type CheckResponse struct {
	ID          string   `msgpack:"id"`
	Word        string   `msgpack:"w"`
	Found       bool     `msgpack:"f"`
	Suggestions []string `msgpack:"s"`
	Count       int      `msgpack:"c"`
	TimeTaken   int64    `msgpack:"t"`
}

// InfoResponse answers "get_info".
type InfoResponse struct {
	ID     string         `msgpack:"id"`
	Status string         `msgpack:"status"`
	Stats  map[string]any `msgpack:"stats"`
}

// StatusResponse is used for the ready banner and "health".
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// CheckError holds basic error information for a failed request.
type CheckError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
