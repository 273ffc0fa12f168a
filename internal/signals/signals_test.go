package signals

import "testing"

func TestBus(t *testing.T) {
	t.Run("Emit Notifies Subscribers In Registration Order", func(t *testing.T) {
		bus := NewBus()
		var order []int

		bus.Subscribe("event", func() { order = append(order, 1) })
		bus.Subscribe("event", func() { order = append(order, 2) })
		bus.Subscribe("event", func() { order = append(order, 3) })

		bus.Emit("event")

		if len(order) != 3 {
			t.Fatalf("expected 3 notifications, got %d", len(order))
		}
		for i, got := range order {
			if got != i+1 {
				t.Errorf("notification %d: expected subscriber %d, got %d", i, i+1, got)
			}
		}
	})

	t.Run("Emit Without Subscribers Is A No-Op", func(t *testing.T) {
		bus := NewBus()
		bus.Emit("nothing-registered")
	})

	t.Run("Events Are Independent", func(t *testing.T) {
		bus := NewBus()
		var aCount, bCount int

		bus.Subscribe("a", func() { aCount++ })
		bus.Subscribe("b", func() { bCount++ })

		bus.Emit("a")
		bus.Emit("a")

		if aCount != 2 {
			t.Errorf("expected 2 notifications for a, got %d", aCount)
		}
		if bCount != 0 {
			t.Errorf("expected 0 notifications for b, got %d", bCount)
		}
	})

	t.Run("Unsubscribe Stops Notifications", func(t *testing.T) {
		bus := NewBus()
		var count int

		unsub := bus.Subscribe("event", func() { count++ })

		bus.Emit("event")
		unsub()
		bus.Emit("event")

		if count != 1 {
			t.Errorf("expected 1 notification, got %d", count)
		}
	})

	t.Run("Unsubscribe Is Idempotent", func(t *testing.T) {
		bus := NewBus()
		var first, second int

		unsub := bus.Subscribe("event", func() { first++ })
		bus.Subscribe("event", func() { second++ })

		unsub()
		unsub()

		bus.Emit("event")

		if first != 0 {
			t.Errorf("unsubscribed handler ran %d times", first)
		}
		if second != 1 {
			t.Errorf("expected surviving handler to run once, got %d", second)
		}
	})

	t.Run("Handler Registered During Emission Is Not Notified", func(t *testing.T) {
		bus := NewBus()
		var late int

		bus.Subscribe("event", func() {
			bus.Subscribe("event", func() { late++ })
		})

		bus.Emit("event")

		if late != 0 {
			t.Errorf("late handler should not see the emission that registered it, ran %d times", late)
		}

		bus.Emit("event")
		if late != 1 {
			t.Errorf("late handler should see the next emission, ran %d times", late)
		}
	})

	t.Run("Handler Unsubscribed During Emission Is Skipped", func(t *testing.T) {
		bus := NewBus()
		var skipped int
		var unsub func()

		bus.Subscribe("event", func() { unsub() })
		unsub = bus.Subscribe("event", func() { skipped++ })

		bus.Emit("event")

		if skipped != 0 {
			t.Errorf("handler unsubscribed mid-emission ran %d times", skipped)
		}
	})

	t.Run("Default Returns The Same Bus", func(t *testing.T) {
		if Default() != Default() {
			t.Error("expected Default to return a singleton")
		}
	})
}
