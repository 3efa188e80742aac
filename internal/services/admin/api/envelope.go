package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	apperrors "github.com/louisbranch/farmhouse.admin/internal/platform/errors"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin/marketplace"
)

// totalField is the count key every list envelope carries next to its items.
const totalField = "total"

// envelope is the outer {"data": ...} wrapper of every API response.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// decodeData returns the raw "data" member, failing when it is absent or null.
func decodeData(payload []byte) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, decodeError("response is not a JSON envelope", err)
	}
	if len(env.Data) == 0 || bytes.Equal(bytes.TrimSpace(env.Data), []byte("null")) {
		return nil, decodeError(`response is missing "data"`, nil)
	}
	return env.Data, nil
}

// decodeRecord reads {"data": {...record...}} into out and validates it.
func (c *Client) decodeRecord(payload []byte, out any) error {
	data, err := decodeData(payload)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return decodeError(`"data" does not match the expected record`, err)
	}
	if err := c.validate.Struct(out); err != nil {
		return decodeError(`"data" failed validation`, err)
	}
	return nil
}

// decodePage reads {"data": {"<listField>": [...], "total": N}}. Any other
// shape is a decode error.
func decodePage[T any](c *Client, payload []byte, listField string) (marketplace.Page[T], error) {
	data, err := decodeData(payload)
	if err != nil {
		return marketplace.Page[T]{}, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return marketplace.Page[T]{}, decodeError(`"data" is not an object`, err)
	}

	rawTotal, ok := fields[totalField]
	if !ok {
		return marketplace.Page[T]{}, decodeError(fmt.Sprintf(`"data.%s" is missing`, totalField), nil)
	}
	var total int
	if err := json.Unmarshal(rawTotal, &total); err != nil || total < 0 {
		return marketplace.Page[T]{}, decodeError(fmt.Sprintf(`"data.%s" is not a non-negative integer`, totalField), err)
	}

	rawList, ok := fields[listField]
	if !ok {
		return marketplace.Page[T]{}, decodeError(fmt.Sprintf(`"data.%s" is missing`, listField), nil)
	}
	var items []T
	if err := json.Unmarshal(rawList, &items); err != nil || items == nil {
		return marketplace.Page[T]{}, decodeError(fmt.Sprintf(`"data.%s" is not an array of records`, listField), err)
	}
	for i := range items {
		if err := c.validate.Struct(items[i]); err != nil {
			return marketplace.Page[T]{}, decodeError(fmt.Sprintf(`"data.%s[%d]" failed validation`, listField, i), err)
		}
	}
	return marketplace.Page[T]{Items: items, Total: total}, nil
}

func decodeError(message string, cause error) error {
	if cause != nil {
		message = message + ": " + cause.Error()
	}
	return apperrors.Wrap(apperrors.CodeDecode, message, cause)
}
