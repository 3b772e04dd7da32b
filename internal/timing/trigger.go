package timing

import (
	"encoding/json"
	"fmt"
)

// TriggerCondition describes when a timing group or effect leaf starts
// relative to its parent or preceding sibling. It is a sealed
// interface: only OnClick, AfterPrevious, WithPrevious, and Timed
// implement it. Every TimingGroup except the tree root carries exactly
// one.
type TriggerCondition interface {
	triggerCondition() // sealed
	Kind() TriggerKind
}

// TriggerKind identifies a trigger variant.
type TriggerKind string

const (
	KindOnClick       TriggerKind = "on_click"
	KindAfterPrevious TriggerKind = "after_previous"
	KindWithPrevious  TriggerKind = "with_previous"
	KindTimed         TriggerKind = "timed"
)

// OnClick starts the node on the next click.
type OnClick struct{}

// AfterPrevious starts the node after the preceding sibling finishes,
// plus an optional delay.
type AfterPrevious struct {
	DelayMS int64 `json:"delay_ms"`
}

// WithPrevious starts the node together with the preceding sibling,
// plus an optional delay.
type WithPrevious struct {
	DelayMS int64 `json:"delay_ms"`
}

// Timed starts the node at an absolute offset from the parent's start.
type Timed struct {
	StartMS int64 `json:"start_ms"`
}

func (OnClick) triggerCondition()       {}
func (AfterPrevious) triggerCondition() {}
func (WithPrevious) triggerCondition()  {}
func (Timed) triggerCondition()         {}

func (OnClick) Kind() TriggerKind       { return KindOnClick }
func (AfterPrevious) Kind() TriggerKind { return KindAfterPrevious }
func (WithPrevious) Kind() TriggerKind  { return KindWithPrevious }
func (Timed) Kind() TriggerKind         { return KindTimed }

// DelayMS returns the trigger's delay or start offset in milliseconds.
// OnClick has none and reports 0.
func DelayMS(t TriggerCondition) int64 {
	switch v := t.(type) {
	case AfterPrevious:
		return v.DelayMS
	case WithPrevious:
		return v.DelayMS
	case Timed:
		return v.StartMS
	default:
		return 0
	}
}

// MarshalJSON serializes the trigger with an explicit kind tag so the
// variant survives the trip through the external JSON writer.
func (t OnClick) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"kind": string(KindOnClick)})
}

func (t AfterPrevious) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"kind": string(KindAfterPrevious), "delay_ms": t.DelayMS})
}

func (t WithPrevious) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"kind": string(KindWithPrevious), "delay_ms": t.DelayMS})
}

func (t Timed) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"kind": string(KindTimed), "start_ms": t.StartMS})
}

// TriggerFromKind reconstructs a trigger from its kind tag and delay,
// the shape the archive store persists. Unrecognized kinds default to
// WithPrevious with the given delay.
func TriggerFromKind(kind TriggerKind, delayMS int64) TriggerCondition {
	switch kind {
	case KindOnClick:
		return OnClick{}
	case KindAfterPrevious:
		return AfterPrevious{DelayMS: delayMS}
	case KindTimed:
		return Timed{StartMS: delayMS}
	default:
		return WithPrevious{DelayMS: delayMS}
	}
}

// String renders a short human-readable form, used by the text output
// formatter.
func TriggerString(t TriggerCondition) string {
	switch v := t.(type) {
	case OnClick:
		return "on click"
	case AfterPrevious:
		if v.DelayMS > 0 {
			return fmt.Sprintf("after previous +%dms", v.DelayMS)
		}
		return "after previous"
	case WithPrevious:
		if v.DelayMS > 0 {
			return fmt.Sprintf("with previous +%dms", v.DelayMS)
		}
		return "with previous"
	case Timed:
		return fmt.Sprintf("at %dms", v.StartMS)
	default:
		return string(t.Kind())
	}
}
