//go:build linux

package notify

import (
	"errors"
	"os"
	"testing"

	"github.com/godbus/dbus/v5"
)

// fakeBus records Notify calls. Methods other than Call panic through the
// nil embedded interface.
type fakeBus struct {
	dbus.BusObject
	method string
	args   []any
	id     uint32
	err    error
}

func (f *fakeBus) Call(method string, _ dbus.Flags, args ...any) *dbus.Call {
	f.method = method
	f.args = args
	if f.err != nil {
		return &dbus.Call{Err: f.err}
	}
	return &dbus.Call{Body: []any{f.id}}
}

func TestDBusNotifier_Notify(t *testing.T) {
	bus := &fakeBus{id: 42}
	n := &dbusNotifier{obj: bus}

	id, err := n.Notify(Notification{
		Title:      "Paper Boats",
		Body:       "Willow Lane · Harbor Lights",
		Icon:       "file:///music/cover.jpg",
		Timeout:    NowPlayingTimeout,
		ReplacesID: 7,
		Urgency:    UrgencyLow,
	})
	if err != nil {
		t.Fatalf("Notify() error: %v", err)
	}
	if id != 42 {
		t.Errorf("id = %d, want 42", id)
	}
	if bus.method != "org.freedesktop.Notifications.Notify" {
		t.Errorf("method = %q", bus.method)
	}
	if len(bus.args) != 8 {
		t.Fatalf("got %d args, want 8", len(bus.args))
	}
	if bus.args[0] != "Encore" || bus.args[1] != uint32(7) || bus.args[3] != "Paper Boats" {
		t.Errorf("args = %v", bus.args[:4])
	}
	hints, ok := bus.args[6].(map[string]dbus.Variant)
	if !ok {
		t.Fatalf("hints type %T", bus.args[6])
	}
	if got := hints["urgency"].Value(); got != byte(UrgencyLow) {
		t.Errorf("urgency hint = %v", got)
	}
	if bus.args[7] != int32(NowPlayingTimeout) {
		t.Errorf("timeout = %v", bus.args[7])
	}
}

func TestDBusNotifier_CallError(t *testing.T) {
	n := &dbusNotifier{obj: &fakeBus{err: errors.New("no daemon")}}
	if _, err := n.Notify(Notification{Title: "x"}); err == nil {
		t.Error("Notify() should surface the call error")
	}
}

func TestNew_SessionBus(t *testing.T) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	n, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	id, err := n.Notify(Notification{Title: "Encore Test", Timeout: 1000})
	if err != nil {
		t.Fatalf("Notify() error: %v", err)
	}
	if id == 0 {
		t.Error("daemon returned id 0")
	}
}
