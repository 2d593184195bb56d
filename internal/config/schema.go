package config

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	suzuerrors "github.com/suzu-editor/suzu/internal/errors"
)

// ValidateSchema checks the document against a JSON Schema. Every violation
// is listed in the returned VALIDATION error.
func (s *Store) ValidateSchema(schema []byte) error {
	if len(schema) == 0 {
		return suzuerrors.InvalidParameter("schema cannot be empty")
	}

	s.mu.RLock()
	if !s.healthy {
		s.mu.RUnlock()
		return suzuerrors.New(suzuerrors.ErrCodeInvalidState, "store is not healthy")
	}
	doc := deepCopy(s.doc)
	s.mu.RUnlock()

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return suzuerrors.Wrap(suzuerrors.ErrCodeInvalidParameter, "invalid schema", err)
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return suzuerrors.New(suzuerrors.ErrCodeValidation, strings.Join(violations, "; "))
}
