package pathalerts

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/formatter"
)

// QueryError is a client error in request parameters
type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// parseFormatParam reads ?format=, defaulting to protobuf
func parseFormatParam(q url.Values) (formatter.Format, error) {
	f, err := formatter.ParseFormat(q.Get("format"))
	if err != nil {
		names := make([]string, 0, len(formatter.Formats))
		for _, name := range formatter.Formats {
			names = append(names, string(name))
		}
		return "", &QueryError{Msg: "Unsupported format: " + q.Get("format") + " (expected " + strings.Join(names, ", ") + ")"}
	}
	return f, nil
}

func buildErrorPayload(msg string) []byte {
	type errorBody struct {
		Error struct {
			Description string `json:"description"`
		} `json:"error"`
	}
	var e errorBody
	e.Error.Description = msg
	b, _ := json.Marshal(e)
	return b
}
