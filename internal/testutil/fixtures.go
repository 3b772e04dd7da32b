// Package testutil provides canned slide markup and shape metadata
// shared across test packages.
package testutil

import (
	"fmt"
	"strings"

	"github.com/dmellis/slidetrace/internal/shapes"
)

// TitleSubtitleShapes is the shape table matching the fixtures below:
// shape 4 is "Title 1", shape 5 is "Subtitle 2".
func TitleSubtitleShapes() shapes.Resolver {
	return shapes.NewTable(map[string]shapes.ShapeInfo{
		"4": {DisplayName: "Title 1", PlaceholderType: "TITLE"},
		"5": {DisplayName: "Subtitle 2", PlaceholderType: "SUBTITLE"},
	})
}

// TwoEffectSlide is a timing tree with a parallel root group holding
// an on-click entrance on shape 4 and an after-previous (500ms) exit
// on shape 5.
func TwoEffectSlide() []byte {
	return []byte(`<p:timing xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:tnLst>
    <p:par>
      <p:cTn id="1" nodeType="tmRoot">
        <p:childTnLst>
          <p:par>
            <p:cTn id="2" nodeType="clickEffect" presetClass="entr" presetID="10">
              <p:stCondLst><p:cond evt="onClick" delay="0"/></p:stCondLst>
              <p:childTnLst>
                <p:animEffect transition="in">
                  <p:cBhvr>
                    <p:cTn dur="500"/>
                    <p:tgtEl><p:spTgt spid="4"/></p:tgtEl>
                  </p:cBhvr>
                </p:animEffect>
              </p:childTnLst>
            </p:cTn>
          </p:par>
          <p:par>
            <p:cTn id="3" nodeType="afterEffect" presetClass="exit" presetID="10">
              <p:stCondLst><p:cond delay="500"/></p:stCondLst>
              <p:childTnLst>
                <p:animEffect transition="out">
                  <p:cBhvr>
                    <p:cTn dur="250"/>
                    <p:tgtEl><p:spTgt spid="5"/></p:tgtEl>
                  </p:cBhvr>
                </p:animEffect>
              </p:childTnLst>
            </p:cTn>
          </p:par>
        </p:childTnLst>
      </p:cTn>
    </p:par>
  </p:tnLst>
</p:timing>`)
}

// ClickSequenceSlide builds a main sequence with n click-triggered
// entrance effects targeting shapes "10", "11", ... in order.
func ClickSequenceSlide(n int) []byte {
	var leaves strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&leaves, `<p:par>
  <p:cTn id="%d" nodeType="clickEffect" presetClass="entr" presetID="1">
    <p:stCondLst><p:cond evt="onClick" delay="0"/></p:stCondLst>
    <p:childTnLst>
      <p:set>
        <p:cBhvr>
          <p:cTn dur="1"/>
          <p:tgtEl><p:spTgt spid="%d"/></p:tgtEl>
        </p:cBhvr>
      </p:set>
    </p:childTnLst>
  </p:cTn>
</p:par>`, i+10, i+10)
	}
	tree := fmt.Sprintf(`<p:timing xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:tnLst>
    <p:seq>
      <p:cTn id="1" nodeType="mainSeq">
        <p:childTnLst>%s</p:childTnLst>
      </p:cTn>
    </p:seq>
  </p:tnLst>
</p:timing>`, leaves.String())
	return []byte(tree)
}

// NoTimingSlide is well-formed markup whose root is not a timing tree.
func NoTimingSlide() []byte {
	return []byte(`<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld/></p:sld>`)
}

// MalformedSlide is markup with an unterminated element.
func MalformedSlide() []byte {
	return []byte(`<p:timing><p:tnLst><p:par>`)
}
