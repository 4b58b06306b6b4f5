package model

import (
	"bytes"
	"encoding/json"
)

// taskFieldSynonyms maps the legacy Korean request keys to their
// canonical English names. Every task write endpoint historically
// accepted both; this table is the single place that knowledge lives
// now, with English winning when a request carries both spellings.
var taskFieldSynonyms = map[string]string{
	"담당자": "assignee",
	"과제명": "taskName",
	"마감일": "deadline",
	"완료":  "completed",
	"긴급":  "urgent",
	"제출처": "submissionTo",
	"비고":  "notes",
}

// CanonicalTaskFields rewrites a raw request body so that only
// canonical English keys remain. Unknown keys pass through untouched.
func CanonicalTaskFields(raw map[string]json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(raw))
	for key, value := range raw {
		if canonical, ok := taskFieldSynonyms[key]; ok {
			key = canonical
		}
		out[key] = value
	}
	// Second pass: an English key in the original body always beats a
	// translated legacy key.
	for legacy, canonical := range taskFieldSynonyms {
		if _, hadLegacy := raw[legacy]; !hadLegacy {
			continue
		}
		if english, hadEnglish := raw[canonical]; hadEnglish {
			out[canonical] = english
		}
	}
	return out
}

// DecodeTaskCreate parses a create-task body, accepting legacy field
// names via the synonym table.
func DecodeTaskCreate(data []byte) (TaskCreate, error) {
	var create TaskCreate
	canonical, err := canonicalize(data)
	if err != nil {
		return create, err
	}
	err = json.Unmarshal(canonical, &create)
	return create, err
}

// taskPatchNulls maps each patchable field to its explicit-clear value.
// A literal JSON null on one of these fields means "clear", which must
// survive decoding as a pointer to the zero value rather than collapse
// into an absent (nil) field.
var taskPatchNulls = map[string]json.RawMessage{
	"assignee":     json.RawMessage(`""`),
	"taskName":     json.RawMessage(`""`),
	"deadline":     json.RawMessage(`""`),
	"submissionTo": json.RawMessage(`""`),
	"notes":        json.RawMessage(`""`),
	"completed":    json.RawMessage(`false`),
	"urgent":       json.RawMessage(`false`),
}

// DecodeTaskPatch parses a partial-update body, accepting legacy field
// names via the synonym table. Absent fields stay nil; an explicit null
// decodes as a clear, same as an explicit empty value.
func DecodeTaskPatch(data []byte) (TaskPatch, error) {
	var patch TaskPatch
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return patch, err
	}
	fields := CanonicalTaskFields(raw)
	for key, value := range fields {
		if zero, ok := taskPatchNulls[key]; ok && isJSONNull(value) {
			fields[key] = zero
		}
	}
	canonical, err := json.Marshal(fields)
	if err != nil {
		return patch, err
	}
	err = json.Unmarshal(canonical, &patch)
	return patch, err
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

func canonicalize(data []byte) ([]byte, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return json.Marshal(CanonicalTaskFields(raw))
}
