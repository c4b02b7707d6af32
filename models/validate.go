package models

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed portfolio.schema.json
var portfolioSchema string

// ValidateRawPayload validates an inbound wizard document against the
// portfolio schema. The schema is deliberately permissive about item fields:
// missing optional data is normal input here, not an error. It only rejects
// payloads whose overall shape the transform layer cannot absorb.
func ValidateRawPayload(payload []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(portfolioSchema)
	docLoader := gojsonschema.NewBytesLoader(payload)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}

	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}
