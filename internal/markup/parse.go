package markup

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

// MalformedMarkupError reports input that is not well-formed
// tree-structured text: an unterminated tag, invalid nesting, or an
// encoding error. It is fatal for the affected slide's animation
// extraction; callers should record zero events for that slide and
// continue with the rest of the deck.
type MalformedMarkupError struct {
	Offset int64 // byte offset where the tokenizer gave up
	Err    error // underlying tokenizer error
}

func (e *MalformedMarkupError) Error() string {
	return fmt.Sprintf("malformed markup at byte %d: %v", e.Offset, e.Err)
}

func (e *MalformedMarkupError) Unwrap() error {
	return e.Err
}

// Parse reads a slide's raw animation markup and returns the root of
// its generic node tree. It performs no semantic validation: unknown
// tags parse fine. Pure function, no side effects.
//
// Parsing stops once the root element closes; trailing bytes are not
// inspected.
func Parse(data []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var root *Node
	var stack []*Node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &MalformedMarkupError{Offset: dec.InputOffset(), Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := &Node{
				Tag:   t.Name.Local,
				Attrs: attrMap(t.Attr),
			}
			if len(stack) == 0 {
				if root != nil {
					// Second top-level element: keep the first tree,
					// stop reading.
					return root, nil
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, &MalformedMarkupError{
					Offset: dec.InputOffset(),
					Err:    fmt.Errorf("unexpected closing tag </%s>", t.Name.Local),
				}
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				// Root closed - done.
				return root, nil
			}
		}
		// Character data, comments, directives, and processing
		// instructions carry no timing information; skip them.
	}

	if root == nil {
		return nil, &MalformedMarkupError{
			Offset: dec.InputOffset(),
			Err:    fmt.Errorf("no elements found"),
		}
	}
	// EOF before the root element closed.
	return nil, &MalformedMarkupError{
		Offset: dec.InputOffset(),
		Err:    fmt.Errorf("unterminated element <%s>", stack[len(stack)-1].Tag),
	}
}

// attrMap flattens decoded attributes into a string map, keyed by
// local name. Namespace declarations (xmlns:*) are dropped.
func attrMap(attrs []xml.Attr) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}
		m[a.Name.Local] = a.Value
	}
	return m
}
