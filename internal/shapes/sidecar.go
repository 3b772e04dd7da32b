package shapes

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sidecar is the YAML document carrying per-slide shape metadata for a
// deck. It is produced by the archive-reading collaborator that walks
// the presentation's object model; this tool only consumes it.
//
// Format:
//
//	slides:
//	  - number: 1
//	    title: "Welcome"
//	    shapes:
//	      "4": { name: "Title 1", placeholder: "TITLE" }
//	      "5": { name: "Subtitle 2", placeholder: "SUBTITLE" }
type Sidecar struct {
	Slides []SlideShapes `yaml:"slides"`
}

// SlideShapes holds one slide's title and shape table.
type SlideShapes struct {
	Number int                  `yaml:"number"`
	Title  string               `yaml:"title,omitempty"`
	Shapes map[string]ShapeInfo `yaml:"shapes,omitempty"`
}

// LoadSidecar reads and decodes a shape metadata sidecar file.
func LoadSidecar(path string) (*Sidecar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sidecar %s: %w", path, err)
	}
	var sc Sidecar
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("decode sidecar %s: %w", path, err)
	}
	return &sc, nil
}

// TableFor returns a Resolver for the given slide number, along with
// the slide's title. Slides absent from the sidecar get the Empty
// resolver and an empty title.
func (s *Sidecar) TableFor(slideNumber int) (Resolver, string) {
	for _, sl := range s.Slides {
		if sl.Number == slideNumber {
			return NewTable(sl.Shapes), sl.Title
		}
	}
	return Empty, ""
}
