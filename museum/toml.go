package museum

import (
	"fmt"
	"io"
	"os"

	"github.com/hupe1980/lootsort/core"
	toml "github.com/pelletier/go-toml/v2"
)

// collectionFile is the on-disk TOML layout:
//
//	new = [0x04B56C]
//	found = [0x0AB7BB]
//	displayed = [0x063B27]
//
// A form listed under several keys takes the most advanced state.
type collectionFile struct {
	New       []uint32 `toml:"new"`
	Found     []uint32 `toml:"found"`
	Displayed []uint32 `toml:"displayed"`
}

// LoadTOML reads a collection file into a new tracker.
func LoadTOML(path string) (*InMemoryTracker, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("museum: read %s: %w", path, err)
	}
	t, err := ParseTOML(data)
	if err != nil {
		return nil, fmt.Errorf("museum: %s: %w", path, err)
	}
	return t, nil
}

// ParseTOML decodes a collection document into a new tracker.
func ParseTOML(data []byte) (*InMemoryTracker, error) {
	var f collectionFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode collection: %w", err)
	}

	t := NewInMemoryTracker()
	for _, group := range []struct {
		ids   []uint32
		state State
	}{
		{f.New, StateNew},
		{f.Found, StateFound},
		{f.Displayed, StateDisplayed},
	} {
		for _, id := range group.ids {
			if group.state > t.State(core.FormID(id)) {
				t.Set(core.FormID(id), group.state)
			}
		}
	}
	return t, nil
}

// WriteTOML encodes the tracker in the collection file layout.
func (m *InMemoryTracker) WriteTOML(w io.Writer) error {
	f := collectionFile{
		New:       toUint32(m.IDs(StateNew)),
		Found:     toUint32(m.IDs(StateFound)),
		Displayed: toUint32(m.IDs(StateDisplayed)),
	}
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("museum: encode collection: %w", err)
	}
	return nil
}

func toUint32(ids []core.FormID) []uint32 {
	out := make([]uint32, len(ids))
	for i, id := range ids {
		out[i] = uint32(id)
	}
	return out
}
