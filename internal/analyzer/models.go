package analyzer

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Response is the raw success payload of the analysis service. Suggestion
// order is the service's order; nothing here is assumed sorted.
type Response struct {
	FileName    string          `json:"file_name"`
	AnalyzeTime FlexString      `json:"analyze_time"`
	AnalyzeMode int             `json:"analyze_mode"`
	Suggestions []RawSuggestion `json:"suggestions"`
}

// RawSuggestion is one entry of the service's suggestions array.
type RawSuggestion struct {
	Start        FlexNumber `json:"start"`
	End          FlexNumber `json:"end"`
	MemeTypeDesc string     `json:"meme_type_desc"`
}

// errorBody is the service's failure payload. Shape is untrusted; anything
// unparseable falls back to a generic error.
type errorBody struct {
	Error string `json:"error"`
}

// FlexNumber decodes a JSON number that the service sometimes emits as a
// quoted string. Malformed values decode to zero rather than failing the
// whole response.
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*n = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = FlexNumber(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*n = 0
		return nil
	}
	*n = FlexNumber(f)
	return nil
}

// FlexString decodes a JSON value that may be a string or a bare number
// (the service reports analyze_time either as an ISO-ish timestamp or as
// an epoch). Either way the client keeps it as text for display.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}
	*s = FlexString(data)
	return nil
}
