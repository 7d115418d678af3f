package manifest

import (
	"bytes"
	"encoding/json"

	"github.com/quantmind-br/pxm-manifest/pkg/version"
)

const indent = "    "

// Build assembles a manifest from validated fields
func Build(f Fields) *Manifest {
	info := Info{
		Account:  f.Account,
		Date:     f.Date,
		License:  f.License,
		Notes:    f.Notes,
		Product:  f.Product,
		Tilesets: nonNil(f.Tilesets),
	}

	if len(f.Bidx) > 0 {
		info.Bidx = append([]int(nil), f.Bidx...)
	}
	if f.CRS != "" {
		info.CRS = f.CRS
	}
	if f.Color != "" {
		info.Color = map[string]string{AllSources: f.Color}
	}
	if len(f.Nodata) > 0 {
		info.Nodata = append([]int(nil), f.Nodata...)
	}

	return &Manifest{
		Info:    info,
		Sources: nonNil(f.Sources),
		Version: version.Version,
	}
}

// Marshal encodes m with sorted keys and four-space indentation.
// The result has no trailing newline.
func Marshal(m *Manifest) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func nonNil(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}
