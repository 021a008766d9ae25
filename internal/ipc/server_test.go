package ipc

import (
	"errors"
	"testing"

	"github.com/1broseidon/dome/internal/hub"
)

var errTest = errors.New("dispatcher failure")

type fakeDispatcher struct {
	applied  []hub.Action
	applyErr error
	reloaded bool
	reloadErr error
	status   StatusData
	snapshot hub.Snapshot
}

func (f *fakeDispatcher) Apply(actions []hub.Action) error {
	f.applied = append(f.applied, actions...)
	return f.applyErr
}

func (f *fakeDispatcher) Reload() error {
	f.reloaded = true
	return f.reloadErr
}

func (f *fakeDispatcher) Status() StatusData { return f.status }

func (f *fakeDispatcher) Snapshot() hub.Snapshot { return f.snapshot }

func startTestServer(t *testing.T, d Dispatcher) *Server {
	t.Helper()
	s, err := NewServer(d)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(s.Stop)
	return s
}

func TestServerClientApplyRoundTrip(t *testing.T) {
	d := &fakeDispatcher{}
	startTestServer(t, d)

	client := NewClient()
	actions := []hub.Action{{Kind: hub.ActionFocusLeft}}
	if err := client.Apply(actions); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(d.applied) != 1 || d.applied[0].Kind != hub.ActionFocusLeft {
		t.Fatalf("dispatcher did not receive the applied action: %+v", d.applied)
	}
}

func TestServerClientGetStatus(t *testing.T) {
	d := &fakeDispatcher{status: StatusData{MonitorCount: 2, WorkspaceCount: 3, FocusedMonitor: 1}}
	startTestServer(t, d)

	client := NewClient()
	status, err := client.GetStatus()
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if status.MonitorCount != 2 || status.WorkspaceCount != 3 {
		t.Fatalf("got %+v, want monitor_count=2 workspace_count=3", status)
	}
	if !status.DaemonRunning {
		t.Fatal("expected DaemonRunning to be set by the server")
	}
}

func TestServerClientReload(t *testing.T) {
	d := &fakeDispatcher{}
	startTestServer(t, d)

	client := NewClient()
	if err := client.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if !d.reloaded {
		t.Fatal("expected the dispatcher's Reload to be called")
	}
}

func TestServerClientApplyError(t *testing.T) {
	d := &fakeDispatcher{applyErr: errTest}
	startTestServer(t, d)

	client := NewClient()
	if err := client.Apply(nil); err == nil {
		t.Fatal("expected an error to propagate from the dispatcher")
	}
}
