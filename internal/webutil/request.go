package webutil

import (
	"encoding/json"
	"net/http"

	"mentoria_engine/internal/model"
)

// DecodeJSONBody decodes a JSON request body, rejecting unknown fields.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return model.NewAppError("INVALID_REQUEST_BODY",
			"Request body is not valid JSON for this operation.", "",
			model.ErrInvalidInput)
	}
	return nil
}
