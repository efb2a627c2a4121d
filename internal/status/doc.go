// Package status produces battery and Wi-Fi status for the launcher shell.
//
// # Overview
//
// Battery state is read by a Sampler goroutine and published into a Store;
// the UI reads the latest value on its own timer. Wi-Fi state has no worker:
// the UI calls a WifiProbe synchronously on each Wi-Fi tick because the
// probe is cheap. The asymmetry is a policy choice.
//
//	Sampler goroutine:                 UI loop (Bubble Tea):
//	┌──────────────────┐              ┌──────────────────────┐
//	│ reader.Sample()  │              │ battery tick (1s)     │
//	│      ↓           │              │   sampler.Current()   │
//	│ store.Update()   │───(mutex)───→│ wifi tick (5s)        │
//	│ wait interval    │              │   probe.Query()       │
//	│ or stop signal   │              └──────────────────────┘
//	└──────────────────┘
//
// # Store Semantics
//
// The Store is a single slot with last-write-wins semantics. There is no
// history and no queue. Readers always receive a whole BatteryStatus, never a
// mix of two samples. Before the first sample completes readers get the zero
// value: 0% and not charging.
//
// A failed sample keeps the previous status and increments
// ConsecutiveFailures, mirroring how a flaky sensor should look to the user:
// the icon stays on the last good value.
//
// # Lifecycle
//
//	sampler := status.NewSampler(reader, status.WithInterval(2*time.Second))
//	sampler.Start(ctx)
//	defer func() {
//		if err := sampler.Stop(status.DefaultStopGrace); errors.Is(err, status.ErrStopTimeout) {
//			// goroutine leaked; teardown continues
//		}
//	}()
//
// Stop never blocks longer than its timeout. A reader that hangs inside
// Sample cannot be interrupted, so Stop gives up and reports ErrStopTimeout.
package status
