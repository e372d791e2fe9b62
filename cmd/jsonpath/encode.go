package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// encodeJSON renders a decoded document value back to compact JSON. The
// standard encoder cannot be used directly because ordered objects are
// yaml.MapSlice values, which it would render as arrays.
func encodeJSON(value any) string {
	var builder strings.Builder

	writeJSON(&builder, value)

	return builder.String()
}

func writeJSON(builder *strings.Builder, value any) {
	switch v := value.(type) {
	case yaml.MapSlice:
		builder.WriteByte('{')

		for i, item := range v {
			if i > 0 {
				builder.WriteByte(',')
			}

			writeJSONScalar(builder, fmt.Sprint(item.Key))
			builder.WriteByte(':')
			writeJSON(builder, item.Value)
		}

		builder.WriteByte('}')
	case []any:
		builder.WriteByte('[')

		for i, item := range v {
			if i > 0 {
				builder.WriteByte(',')
			}

			writeJSON(builder, item)
		}

		builder.WriteByte(']')
	default:
		writeJSONScalar(builder, v)
	}
}

func writeJSONScalar(builder *strings.Builder, value any) {
	encoded, err := json.Marshal(value)
	if err != nil {
		encoded, _ = json.Marshal(fmt.Sprint(value))
	}

	builder.Write(encoded)
}
