package hui_test

import (
	"testing"
	"time"

	"github.com/PKsong/MIDIKit/hui"
	"github.com/PKsong/MIDIKit/values"
)

func TestS5VPotDisplayIdempotence(t *testing.T) {
	mode := hui.DisplayMode{Kind: hui.DisplaySingle, Unit: 0.5}

	wantPattern := hui.LEDPattern(1<<5 | 1<<11)
	if got := mode.Pattern(); got != wantPattern {
		t.Fatalf("got pattern %#x, want %#x (LED 5 + centre)", got, wantPattern)
	}

	cc, ok := hui.EncodeVPotDisplay(hui.VPotStrip3, mode, values.NewU4(0), values.NewU4(3))
	if !ok {
		t.Fatal("expected strip 3 to have a direct V-Pot CC")
	}

	m := hui.NewSurfaceModel()
	first := m.Apply(cc)
	if !first.Handled {
		t.Fatal("expected the V-Pot display CC to be handled")
	}
	if !first.Changed {
		t.Fatal("expected the first display write to change state")
	}
	if first.Notification.Kind != hui.NotifyVPotDisplay || first.Notification.Strip != 3 {
		t.Fatalf("got notification %+v, want channel-strip 3 VPotDisplay", first.Notification)
	}
	if first.Notification.Mode != mode {
		t.Fatalf("got mode %+v, want %+v", first.Notification.Mode, mode)
	}

	second := m.Apply(cc)
	if !second.Handled {
		t.Fatal("expected the repeated write to still be handled")
	}
	if second.Changed {
		t.Fatal("expected the repeated identical write to report Changed=false")
	}

	strip, ok := m.ChannelStrip(3)
	if !ok || strip.Display != mode {
		t.Fatalf("got strip state %+v, want Display=%+v", strip, mode)
	}
}

func TestVPotRotationDecodesSignMagnitudeDelta(t *testing.T) {
	cc, ok := hui.EncodeVPotRotation(hui.VPotStrip0, -5, values.NewU4(0), values.NewU4(0))
	if !ok {
		t.Fatal("expected strip 0 to have a direct V-Pot CC")
	}

	m := hui.NewSurfaceModel()
	res := m.Apply(cc)
	if !res.Handled || res.Notification.Kind != hui.NotifyVPotRotation {
		t.Fatalf("got %+v, want a handled VPotRotation notification", res)
	}
	if res.Notification.Delta != -5 {
		t.Fatalf("got delta %d, want -5", res.Notification.Delta)
	}
	if !res.Changed {
		t.Fatal("a rotation delta is never idempotent; expected Changed=true")
	}
}

func TestSwitchRoundTripAndIdempotence(t *testing.T) {
	sw := hui.Switch{Zone: values.NewU7(0x0C), Port: values.NewU4(3)} // Transport/Play
	pair := hui.EncodeSwitch(sw, true, values.NewU4(0), values.NewU4(0))

	m := hui.NewSurfaceModel()
	var last hui.UpdateResult
	for _, cc := range pair {
		last = m.Apply(cc)
	}
	if !last.Handled {
		t.Fatal("expected the port-select CC to resolve a switch event")
	}
	if !last.Notification.Switch.Known || last.Notification.Switch.Name.Name != "Play" {
		t.Fatalf("got %+v, want a known switch named Play", last.Notification.Switch)
	}
	if !last.Notification.Switch.Down {
		t.Fatal("expected Down=true")
	}
	if !m.SwitchDown(sw) {
		t.Fatal("expected the model to remember the switch is down")
	}

	// Re-sending the same (zone, port, state) pair is idempotent.
	var repeat hui.UpdateResult
	for _, cc := range pair {
		repeat = m.Apply(cc)
	}
	if repeat.Changed {
		t.Fatal("expected the repeated switch message to report Changed=false")
	}
}

func TestUnknownSwitchCoordinateIsTolerated(t *testing.T) {
	sw := hui.Switch{Zone: values.NewU7(0x7F), Port: values.NewU4(0xF)}
	pair := hui.EncodeSwitch(sw, true, values.NewU4(0), values.NewU4(0))

	m := hui.NewSurfaceModel()
	var last hui.UpdateResult
	for _, cc := range pair {
		last = m.Apply(cc)
	}
	if !last.Handled {
		t.Fatal("expected an unknown switch coordinate to still be handled")
	}
	if last.Notification.Switch.Known {
		t.Fatal("expected Known=false for an unassigned (zone, port) pair")
	}
}

func TestFaderRoundTrip(t *testing.T) {
	pos := values.NewU14(9000)
	pb := hui.EncodeFader(2, pos, values.NewU4(0))

	m := hui.NewSurfaceModel()
	res := m.Apply(pb)
	if !res.Handled || !res.Changed {
		t.Fatalf("got %+v, want a handled, changed fader update", res)
	}
	strip, ok := m.ChannelStrip(2)
	if !ok || strip.Fader != pos {
		t.Fatalf("got fader %v, want %v", strip.Fader, pos)
	}
}

func TestLCDRoundTrip(t *testing.T) {
	update := hui.LCDUpdate{Target: hui.LCDTimeDisplay, Offset: 0, Text: "01:02:03:04"}
	sx := hui.EncodeLCD(update, values.NewU4(0))

	decoded, err := hui.DecodeLCD(sx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != update {
		t.Fatalf("got %+v, want %+v", decoded, update)
	}

	m := hui.NewSurfaceModel()
	res := m.Apply(sx)
	if !res.Handled || !res.Changed {
		t.Fatalf("got %+v, want a handled, changed LCD update", res)
	}
}

func TestLCDBadSubIDIsMalformed(t *testing.T) {
	sx := hui.EncodeLCD(hui.LCDUpdate{Target: hui.LCDTimeDisplay, Text: "x"}, values.NewU4(0))
	sx.Data[0] = 0xFF // not a recognised LCD target
	if _, err := hui.DecodeLCD(sx); err == nil {
		t.Fatal("expected an error for an unrecognised LCD sub-id")
	}
}

func TestPingMonitorAbsenceTimeout(t *testing.T) {
	mon := hui.NewPingMonitor()
	t0 := time.Unix(0, 0)
	if mon.State(t0) != hui.PingUnknown {
		t.Fatal("expected PingUnknown before any ping arrives")
	}
	mon.Received(t0)
	if mon.State(t0.Add(1 * time.Second)) != hui.PingAlive {
		t.Fatal("expected PingAlive within the absence timeout")
	}
	if mon.State(t0.Add(4 * time.Second)) != hui.PingAbsent {
		t.Fatal("expected PingAbsent past the 3s absence timeout")
	}
}

func TestIsPingRecognisesPingNote(t *testing.T) {
	ping := hui.EncodePing(values.NewU4(0), values.NewU4(0))
	if !hui.IsPing(ping) {
		t.Fatal("expected EncodePing's output to be recognised as a ping")
	}
}
