package report

import "encoding/json"

// WriteJSON renders r as an indented JSON object.
func WriteJSON(r Result) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
