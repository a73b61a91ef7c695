package context

import (
	"testing"

	"github.com/PlakarLabs/defendertest/events"
	"github.com/PlakarLabs/defendertest/logging"
)

func TestContext_SettersAndGetters(t *testing.T) {
	ctx := NewContext()
	defer ctx.Close()

	tests := []struct {
		name     string
		setter   func()
		getter   func() interface{}
		expected interface{}
	}{
		{
			name:     "SetNumCPU",
			setter:   func() { ctx.SetNumCPU(4) },
			getter:   func() interface{} { return ctx.GetNumCPU() },
			expected: 4,
		},
		{
			name:     "SetUsername",
			setter:   func() { ctx.SetUsername("testuser") },
			getter:   func() interface{} { return ctx.GetUsername() },
			expected: "testuser",
		},
		{
			name:     "SetHostname",
			setter:   func() { ctx.SetHostname("testhost") },
			getter:   func() interface{} { return ctx.GetHostname() },
			expected: "testhost",
		},
		{
			name:     "SetCommandLine",
			setter:   func() { ctx.SetCommandLine("defendertest generate -path /tmp") },
			getter:   func() interface{} { return ctx.GetCommandLine() },
			expected: "defendertest generate -path /tmp",
		},
		{
			name:     "SetMachineID",
			setter:   func() { ctx.SetMachineID("machine-123") },
			getter:   func() interface{} { return ctx.GetMachineID() },
			expected: "machine-123",
		},
		{
			name:     "SetOperatingSystem",
			setter:   func() { ctx.SetOperatingSystem("windows") },
			getter:   func() interface{} { return ctx.GetOperatingSystem() },
			expected: "windows",
		},
		{
			name:     "SetArchitecture",
			setter:   func() { ctx.SetArchitecture("amd64") },
			getter:   func() interface{} { return ctx.GetArchitecture() },
			expected: "amd64",
		},
		{
			name:     "SetProcessID",
			setter:   func() { ctx.SetProcessID(12345) },
			getter:   func() interface{} { return ctx.GetProcessID() },
			expected: 12345,
		},
		{
			name:     "SetCWD",
			setter:   func() { ctx.SetCWD("/var/tmp") },
			getter:   func() interface{} { return ctx.GetCWD() },
			expected: "/var/tmp",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.setter()
			if result := test.getter(); result != test.expected {
				t.Errorf("%s failed: expected %v, got %v", test.name, test.expected, result)
			}
		})
	}
}

func TestContext_Defaults(t *testing.T) {
	ctx := NewContext()
	defer ctx.Close()

	if ctx.GetLogger() == nil {
		t.Fatal("expected a default logger")
	}
	if ctx.Events() == nil {
		t.Fatal("expected an events receiver")
	}

	logger := logging.Discard()
	ctx.SetLogger(logger)
	if ctx.GetLogger() != logger {
		t.Error("SetLogger did not replace the logger")
	}
}

func TestContext_CloseClosesListeners(t *testing.T) {
	ctx := NewContext()
	ch := ctx.Events().Listen()

	go ctx.Events().Send(events.DoneEvent())
	if _, ok := (<-ch).(events.Done); !ok {
		t.Fatal("expected a Done event")
	}

	ctx.Close()
	if _, ok := <-ch; ok {
		t.Error("listener still open after Close")
	}
}
