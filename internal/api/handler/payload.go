package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// SignPayload accepts the payload to sign either as a JSON array of byte
// values or as a base64 string
type SignPayload []byte

func (p *SignPayload) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = nil
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var encoded string
		if err := json.Unmarshal(data, &encoded); err != nil {
			return err
		}
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return fmt.Errorf("data_to_sign is not valid base64: %w", err)
		}
		*p = decoded
		return nil
	}

	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("data_to_sign must be a byte array or base64 string: %w", err)
	}
	out := make([]byte, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return fmt.Errorf("data_to_sign[%d] = %d is out of byte range", i, v)
		}
		out[i] = byte(v)
	}
	*p = out
	return nil
}
