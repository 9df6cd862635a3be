/*
Package server implements msgpack IPC for word completion and spelling
correction.

Clients write msgpack maps to stdin and read one msgpack map per request from
stdout. The first message the server writes is {"status": "ready"}.

Every request carries an id, an action and, for most actions, a query:

	{"id": "req_001", "a": "complete", "q": "app", "l": 5}

The action defaults to "complete". Completion and spelling responses list
ranked suggestions with their frequency and, for corrections, the edit
distance from the query:

	{"id": "req_001", "s": [{"w": "apple", "r": 1, "f": 12}, {"w": "app", "r": 2, "f": 3}], "c": 2, "st": "ok", "t": 145}

"st" names why a response is empty: "prefix_unknown", "no_completions" or
"no_corrections". "tr" is set when the server's suggestion cap cut the
result. "t" is the time taken in microseconds.

Actions:

	complete  words starting with q
	spell     dictionary words within edit distance of q
	query     completions of q, plus corrections in "x" when q is not a word
	check     whether q is a dictionary word
	add       insert one occurrence of q
	stats     dictionary and cache counters
	health    liveness probe

Failed requests get {"id": ..., "e": message, "code": 400}.

Uppercase letters in q are matched case-insensitively and restored on the
returned words at the same positions.
*/
package server

// Request is a single client message.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"a,omitempty"`
	Query  string `msgpack:"q"`
	Limit  int    `msgpack:"l,omitempty"`
}

// Suggestion is one ranked word in a response.
type Suggestion struct {
	Word      string `msgpack:"w"`
	Rank      uint16 `msgpack:"r"`
	Frequency int    `msgpack:"f"`
	Distance  int    `msgpack:"d,omitempty"`
}

// CompletionResponse answers complete and spell requests.
type CompletionResponse struct {
	ID          string       `msgpack:"id"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	Status      string       `msgpack:"st"`
	Truncated   bool         `msgpack:"tr,omitempty"`
	TimeTaken   int64        `msgpack:"t"`
}

// QueryResponse answers query requests. Corrections already present in
// Suggestions are left out.
type QueryResponse struct {
	ID          string       `msgpack:"id"`
	Suggestions []Suggestion `msgpack:"s"`
	Corrections []Suggestion `msgpack:"x,omitempty"`
	Known       bool         `msgpack:"k"`
	Count       int          `msgpack:"c"`
	Status      string       `msgpack:"st"`
	TimeTaken   int64        `msgpack:"t"`
}

// WordResponse answers check and add requests.
type WordResponse struct {
	ID        string `msgpack:"id"`
	Word      string `msgpack:"w"`
	Known     bool   `msgpack:"k"`
	Frequency int    `msgpack:"f"`
}

// StatsResponse answers stats requests.
type StatsResponse struct {
	ID    string         `msgpack:"id"`
	Stats map[string]int `msgpack:"stats"`
}

// StatusResponse is the ready message and the health reply.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse reports a rejected request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"code"`
}
