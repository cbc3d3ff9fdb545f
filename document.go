package thumbkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Format is a Document encoding.
type Format uint8

const (
	FormatJSON Format = iota
	FormatMsgpack
)

func (f Format) String() string {
	if f == FormatMsgpack {
		return "msgpack"
	}
	return "json"
}

// FormatOf picks a format from a file name: .msgpack and .mpk are
// MessagePack, anything else JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgpack", ".mpk":
		return FormatMsgpack
	default:
		return FormatJSON
	}
}

// Document is a layer list plus background filters, as exchanged with the
// command line tool. Each layer is an object whose "type" is "text",
// "emoji" or "sticker". Fields a layer omits take the editor defaults.
type Document struct {
	Filters Filters
	Layers  []Layer
}

type textRecord struct {
	Type      string `json:"type" msgpack:"type"`
	TextLayer `msgpack:",inline"`
}

type documentWire[R any] struct {
	Filters *Filters `json:"filters,omitempty" msgpack:"filters,omitempty"`
	Layers  []R      `json:"layers" msgpack:"layers"`
}

type layerProbe struct {
	Type string `json:"type" msgpack:"type"`
}

// Encode writes d in format.
func (d Document) Encode(w io.Writer, format Format) error {
	wire := documentWire[any]{Filters: &d.Filters, Layers: make([]any, len(d.Layers))}
	for i, l := range d.Layers {
		switch v := l.(type) {
		case TextLayer:
			wire.Layers[i] = textRecord{Type: "text", TextLayer: v}
		case VisualLayer:
			wire.Layers[i] = v
		default:
			panic(unknownLayer(l))
		}
	}

	var err error
	switch format {
	case FormatMsgpack:
		err = msgpack.NewEncoder(w).Encode(wire)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(wire)
	}
	if err != nil {
		return fmt.Errorf("thumbkit: encode %s document: %w", format, err)
	}
	return nil
}

// DecodeDocument reads a document in format. Filters the document omits
// keep their defaults. Layers without an id, or repeating the id of an
// earlier layer, get fresh ids above the largest one present.
func DecodeDocument(r io.Reader, format Format) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("thumbkit: read document: %w", err)
	}

	var (
		filters *Filters
		raws    [][]byte
		unmarsh func([]byte, any) error
	)
	switch format {
	case FormatMsgpack:
		wire := documentWire[msgpack.RawMessage]{Filters: Ptr(DefaultFilters())}
		err = msgpack.NewDecoder(bytes.NewReader(data)).Decode(&wire)
		filters = wire.Filters
		for _, raw := range wire.Layers {
			raws = append(raws, raw)
		}
		unmarsh = msgpack.Unmarshal
	default:
		wire := documentWire[json.RawMessage]{Filters: Ptr(DefaultFilters())}
		err = json.Unmarshal(data, &wire)
		filters = wire.Filters
		for _, raw := range wire.Layers {
			raws = append(raws, raw)
		}
		unmarsh = json.Unmarshal
	}
	if err != nil {
		return Document{}, fmt.Errorf("thumbkit: decode %s document: %w", format, err)
	}

	doc := Document{Filters: DefaultFilters()}
	if filters != nil {
		doc.Filters = *filters
	}
	for i, raw := range raws {
		l, err := decodeLayer(raw, unmarsh)
		if err != nil {
			return Document{}, fmt.Errorf("thumbkit: layer %d: %w", i, err)
		}
		doc.Layers = append(doc.Layers, l)
	}
	assignIDs(doc.Layers)
	return doc, nil
}

func decodeLayer(raw []byte, unmarshal func([]byte, any) error) (Layer, error) {
	var probe layerProbe
	if err := unmarshal(raw, &probe); err != nil {
		return nil, err
	}
	switch VisualKind(probe.Type) {
	case "text":
		rec := textRecord{TextLayer: NewTextLayer(0)}
		if err := unmarshal(raw, &rec); err != nil {
			return nil, err
		}
		return rec.TextLayer, nil
	case VisualEmoji, VisualSticker:
		v := NewVisualLayer(0, VisualKind(probe.Type), "")
		if err := unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unknown layer type %q", probe.Type)
	}
}

func assignIDs(layers []Layer) {
	var top LayerID
	for _, l := range layers {
		top = max(top, l.LayerID())
	}
	seen := make(map[LayerID]bool, len(layers))
	for i, l := range layers {
		if id := l.LayerID(); id != 0 && !seen[id] {
			seen[id] = true
			continue
		}
		top++
		seen[top] = true
		switch v := l.(type) {
		case TextLayer:
			v.ID = top
			layers[i] = v
		case VisualLayer:
			v.ID = top
			layers[i] = v
		}
	}
}
