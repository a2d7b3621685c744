package output

import (
	"fmt"
	"io"

	"github.com/dshills/confstore/internal/format"
	"github.com/dshills/confstore/internal/section"
	"github.com/dshills/confstore/internal/store"
)

// Writer writes a configuration snapshot in a specific format.
type Writer interface {
	Write(w io.Writer, views []store.SectionView) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(name string) (Writer, error) {
	switch name {
	case "text":
		return &TextWriter{}, nil
	case "json":
		return &CodecWriter{Codec: format.JSON{}}, nil
	case "ini":
		return &CodecWriter{Codec: format.INI{}}, nil
	case "report":
		return &ReportWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", name)
	}
}

// CodecWriter writes views through one of the file format codecs. The
// default marker is lost; every entry is written with its effective value.
type CodecWriter struct {
	Codec format.Codec
}

func (c *CodecWriter) Write(w io.Writer, views []store.SectionView) error {
	data, err := c.Codec.Encode(toLayer(views))
	if err != nil {
		return fmt.Errorf("encoding %s: %w", c.Codec.Name(), err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", c.Codec.Name(), err)
	}
	return nil
}

func toLayer(views []store.SectionView) section.Layer {
	layer := make(section.Layer, 0, len(views))
	for _, v := range views {
		sec := &section.Section{Name: v.Name}
		for _, e := range v.Entries {
			sec.Add(e.Name, e.Value)
		}
		layer = append(layer, sec)
	}
	return layer
}
