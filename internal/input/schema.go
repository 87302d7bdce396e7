package input

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Kind names a document type and its schema.
type Kind string

// Document kinds.
const (
	KindBars    Kind = "bars"
	KindStacked Kind = "stacked"
	KindModel   Kind = "model"
)

var (
	schemaMu    sync.Mutex
	schemaCache = map[Kind]*gojsonschema.Schema{}
)

func schemaFor(kind Kind) (*gojsonschema.Schema, error) {
	schemaMu.Lock()
	defer schemaMu.Unlock()

	if s, ok := schemaCache[kind]; ok {
		return s, nil
	}

	raw, err := schemaFS.ReadFile("schemas/" + string(kind) + ".json")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrKind, kind)
	}

	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("compile %s schema: %w", kind, err)
	}

	schemaCache[kind] = s

	return s, nil
}

// validate checks a decoded document (maps, slices and scalars) against
// the schema of kind.
func validate(kind Kind, doc any) error {
	s, err := schemaFor(kind)
	if err != nil {
		return err
	}

	result, err := s.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validate %s document: %w", kind, err)
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		msgs = append(msgs, re.Field()+": "+re.Description())
	}

	return fmt.Errorf("%w: %s document: %s", ErrSchema, kind, strings.Join(msgs, "; "))
}
