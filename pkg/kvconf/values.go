package kvconf

import (
	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"
)

// decodeTag is the struct tag Decode matches keys against.
const decodeTag = "kv"

// Values returns the typed value of every schema key: string, bool or
// int64. When a key appears more than once the last entry wins.
//
// The config must validate against the schema; otherwise the
// ValidationErrors are returned. An ignored entry whose value does not
// convert is left out of the map.
func Values(cfg *Config, schema *Schema) (map[string]any, error) {
	if errs := Validate(cfg, schema); errs != nil {
		return nil, errs
	}

	values := make(map[string]any, schema.Len())
	for _, se := range schema.Entries() {
		e, ok := cfg.Lookup(se.Key)
		if !ok {
			continue
		}
		v, ok := se.Type.convert(e.Value)
		if !ok {
			continue
		}
		values[se.Key] = v
	}
	return values, nil
}

// Decode validates cfg against schema and decodes the typed values into
// out, which must be a pointer to a struct or map. Struct fields are
// matched by their `kv` tag, falling back to a case-insensitive field name.
//
//	type Settings struct {
//		Endpoint string `kv:"endpoint"`
//		Retry    int    `kv:"retry"`
//	}
func Decode(cfg *Config, schema *Schema, out any) error {
	values, err := Values(cfg, schema)
	if err != nil {
		return err
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: decodeTag,
		Result:  out,
	})
	if err != nil {
		return errors.Wrap(err, "creating decoder")
	}
	if err := dec.Decode(values); err != nil {
		return errors.Wrap(err, "decoding values")
	}
	return nil
}
