package invocation

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"

	"github.com/yungbote/civic-innovation-backend/internal/pkg/errors"
)

var ErrUndecodable = fmt.Errorf("%w: model output is not a JSON object", errors.ErrInvalidArgument)

// DecodeData turns raw model text into an object. It tries strict JSON, then
// a repaired form, then Hjson, and keeps the first that yields an object.
func DecodeData(raw string) (map[string]any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrUndecodable
	}
	if m, ok := decodeObject(raw); ok {
		return m, nil
	}
	if repaired, err := jsonrepair.RepairJSON(raw); err == nil {
		if m, ok := decodeObject(repaired); ok {
			return m, nil
		}
	}
	var loose any
	if err := hjson.Unmarshal([]byte(raw), &loose); err == nil {
		// Round-trip so numbers and nesting match encoding/json output.
		if b, err := json.Marshal(loose); err == nil {
			if m, ok := decodeObject(string(b)); ok {
				return m, nil
			}
		}
	}
	return nil, ErrUndecodable
}

func decodeObject(s string) (map[string]any, bool) {
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil || m == nil {
		return nil, false
	}
	return m, true
}
