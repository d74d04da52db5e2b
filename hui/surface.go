package hui

import (
	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/internal/diag"
	"github.com/PKsong/MIDIKit/sdk/contracts"
	"github.com/PKsong/MIDIKit/values"
)

// NotificationKind tags what changed on the surface. A single tagged
// struct (rather than one interface implementation per section) keeps
// Apply's dispatch a plain switch instead of a type hierarchy.
type NotificationKind int

const (
	NotifySwitch NotificationKind = iota
	NotifyVPotRotation
	NotifyVPotDisplay
	NotifyFader
	NotifyLCD
)

// SurfaceNotification describes one state change (or idempotent
// re-confirmation) the surface model observed while applying an event.
type SurfaceNotification struct {
	Kind   NotificationKind
	Strip  int // -1 when the change isn't scoped to one channel strip
	Switch SwitchEvent
	Delta  int8
	Mode   DisplayMode
	Fader  values.U14
	LCD    LCDUpdate
}

// UpdateResult is Apply's return value: whether the model's state
// actually moved, and what to tell observers either way. Idempotent
// writes still produce a notification with Changed=false, so an
// observer can distinguish "confirmed" from "changed".
type UpdateResult struct {
	Changed      bool
	Notification SurfaceNotification
	Handled      bool // false when the event wasn't a HUI message at all
}

// ChannelStripState is the per-strip slot a SurfaceModel tracks.
type ChannelStripState struct {
	Select, Mute, Solo, RecordReady bool
	Display                         DisplayMode
	Fader                           values.U14
}

// SurfaceModel aggregates every controllable HUI element into one
// place, updated by feeding it decoded events one at a time. It is a
// single-writer, multi-reader object: callers needing concurrent read
// access must add their own synchronization around a
// SurfaceModel instance.
type SurfaceModel struct {
	switches map[Switch]bool
	strips   [8]ChannelStripState
	lcd      map[LCDTarget]LCDUpdate
	switchIn *switchDecoder
	ping     *PingMonitor
	log      contracts.Logger
}

// Option configures a SurfaceModel, matching the functional-options
// pattern used throughout the codec layer.
type Option func(*SurfaceModel)

// WithLogger installs a diagnostic logger, used only to report a
// rejected malformed SysEx sub-id; the model has no other use for one,
// since bad zone/port coordinates are silently tolerated by design.
func WithLogger(l contracts.Logger) Option {
	return func(m *SurfaceModel) {
		if l != nil {
			m.log = l
		}
	}
}

// NewSurfaceModel returns an empty model: every switch up, every
// display off, every fader at 0, no LCD text written.
func NewSurfaceModel(opts ...Option) *SurfaceModel {
	m := &SurfaceModel{
		switches: make(map[Switch]bool),
		lcd:      make(map[LCDTarget]LCDUpdate),
		switchIn: newSwitchDecoder(),
		ping:     NewPingMonitor(),
		log:      diag.NopLogger{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Apply feeds one decoded event into the model. Handled is false for
// an event this model has nothing to do with (a non-HUI CC, or any
// event kind HUI doesn't use); Changed and Notification are only
// meaningful when Handled is true.
func (m *SurfaceModel) Apply(e event.Event) UpdateResult {
	switch ev := e.(type) {
	case event.CC:
		return m.applyCC(ev)
	case event.PitchBend:
		return m.applyFader(ev)
	case event.SysEx7:
		return m.applyLCD(ev)
	case event.NoteOn:
		if IsPing(ev) {
			return UpdateResult{Handled: true}
		}
	}
	return UpdateResult{}
}

func (m *SurfaceModel) applyCC(cc event.CC) UpdateResult {
	if cc.Controller == ccZoneSelect || cc.Controller == ccPortSelect {
		swEv, ok := m.switchIn.Feed(cc)
		if !ok {
			return UpdateResult{Handled: true}
		}
		prior, existed := m.switches[swEv.Switch]
		m.switches[swEv.Switch] = swEv.Down
		if swEv.Known && swEv.Name.Section == SectionChannelStrip {
			st := &m.strips[swEv.Name.Strip]
			switch swEv.Name.Name {
			case "Select":
				st.Select = swEv.Down
			case "Mute":
				st.Mute = swEv.Down
			case "Solo":
				st.Solo = swEv.Down
			case "RecordReady":
				st.RecordReady = swEv.Down
			}
		}
		changed := !existed || prior != swEv.Down
		return UpdateResult{
			Changed: changed,
			Handled: true,
			Notification: SurfaceNotification{
				Kind:   NotifySwitch,
				Strip:  swEv.Name.Strip,
				Switch: swEv,
			},
		}
	}

	if cc.Controller >= 0x10 && cc.Controller <= 0x17 {
		strip, delta, isRotation, mode, isDisplay := DecodeVPotCC(cc)
		switch {
		case isRotation:
			return UpdateResult{
				Changed: true,
				Handled: true,
				Notification: SurfaceNotification{
					Kind:  NotifyVPotRotation,
					Strip: strip,
					Delta: delta,
				},
			}
		case isDisplay:
			prior := m.strips[strip].Display
			m.strips[strip].Display = mode
			return UpdateResult{
				Changed: prior != mode,
				Handled: true,
				Notification: SurfaceNotification{
					Kind:  NotifyVPotDisplay,
					Strip: strip,
					Mode:  mode,
				},
			}
		}
	}

	return UpdateResult{}
}

func (m *SurfaceModel) applyFader(pb event.PitchBend) UpdateResult {
	strip, pos := DecodeFader(pb)
	if strip < 0 || strip > 7 {
		return UpdateResult{}
	}
	prior := m.strips[strip].Fader
	m.strips[strip].Fader = pos
	return UpdateResult{
		Changed: prior != pos,
		Handled: true,
		Notification: SurfaceNotification{
			Kind:  NotifyFader,
			Strip: strip,
			Fader: pos,
		},
	}
}

func (m *SurfaceModel) applyLCD(sx event.SysEx7) UpdateResult {
	update, err := DecodeLCD(sx)
	if err != nil {
		m.log.Warn("hui: rejecting malformed LCD SysEx", m.log.Field().Error("err", err))
		return UpdateResult{}
	}
	prior, existed := m.lcd[update.Target]
	m.lcd[update.Target] = update
	changed := !existed || prior != update
	return UpdateResult{
		Changed: changed,
		Handled: true,
		Notification: SurfaceNotification{
			Kind:  NotifyLCD,
			Strip: -1,
			LCD:   update,
		},
	}
}

// ChannelStrip returns a snapshot of one mixer strip's tracked state.
func (m *SurfaceModel) ChannelStrip(strip int) (ChannelStripState, bool) {
	if strip < 0 || strip > 7 {
		return ChannelStripState{}, false
	}
	return m.strips[strip], true
}

// SwitchDown reports the last known down/up state of sw.
func (m *SurfaceModel) SwitchDown(sw Switch) bool {
	return m.switches[sw]
}
