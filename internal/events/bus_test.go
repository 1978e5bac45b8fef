package events

import (
	"testing"
	"time"
)

func TestBus_PublishSubscribe(t *testing.T) {
	bus := New()

	received := make(chan DevicePropertyEvent, 1)
	unsub := bus.Subscribe(func(e DevicePropertyEvent) {
		received <- e
	})
	defer unsub()

	bus.Publish(DevicePropertyEvent{
		Property: "playback.device",
		Old:      "alsa:hw:0,0",
		New:      "alsa:hw:1,0",
	})

	select {
	case e := <-received:
		if e.Property != "playback.device" {
			t.Errorf("Property = %q, want %q", e.Property, "playback.device")
		}
		if e.New != "alsa:hw:1,0" {
			t.Errorf("New = %q, want %q", e.New, "alsa:hw:1,0")
		}
	case <-time.After(time.Second):
		t.Fatal("Timeout waiting for event")
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := New()

	received := make(chan DeviceDiscoveryEvent, 1)
	unsub := bus.Subscribe(func(e DeviceDiscoveryEvent) {
		received <- e
	})

	unsub()
	bus.Publish(DeviceDiscoveryEvent{Locator: "alsa:hw:0,0", Action: "added"})

	select {
	case <-received:
		t.Fatal("Received event after unsubscribe")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBus_TypeFiltering(t *testing.T) {
	bus := New()

	properties := make(chan DevicePropertyEvent, 1)
	unsub := bus.Subscribe(func(e DevicePropertyEvent) {
		properties <- e
	})
	defer unsub()

	// A discovery event must not reach a property handler.
	bus.Publish(DeviceDiscoveryEvent{Locator: "alsa:hw:2,0", Action: "removed"})

	select {
	case e := <-properties:
		t.Fatalf("Property handler received discovery event: %+v", e)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBus_UnknownHandlerType(_ *testing.T) {
	bus := New()

	// Unknown handler types never fire, and unsubscribing is harmless.
	unsub := bus.Subscribe(func(_ string) {})
	unsub()
}

func TestBus_MultipleSubscribers(t *testing.T) {
	bus := New()

	first := make(chan DevicePropertyEvent, 1)
	second := make(chan DevicePropertyEvent, 1)
	unsub1 := bus.Subscribe(func(e DevicePropertyEvent) { first <- e })
	defer unsub1()
	unsub2 := bus.Subscribe(func(e DevicePropertyEvent) { second <- e })
	defer unsub2()

	bus.Publish(DevicePropertyEvent{Property: "notify.device", New: "alsa:hw:1,0"})

	for i, ch := range []chan DevicePropertyEvent{first, second} {
		select {
		case e := <-ch:
			if e.Property != "notify.device" {
				t.Errorf("subscriber %d: Property = %q, want %q", i, e.Property, "notify.device")
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d: timeout waiting for event", i)
		}
	}
}
