package ops

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/avtools/premiere-mcp/internal/bridge"
	"github.com/avtools/premiere-mcp/internal/dispatch"
)

type fakeRunner struct {
	calls   int
	label   string
	payload string
	timeout time.Duration
	result  any
	err     error
}

func (f *fakeRunner) RunLabeled(ctx context.Context, label, payload string, timeout time.Duration) (any, error) {
	f.calls++
	f.label = label
	f.payload = payload
	f.timeout = timeout
	return f.result, f.err
}

func newTestCatalogue(t *testing.T, runner *fakeRunner) *dispatch.Registry {
	t.Helper()
	reg := dispatch.NewRegistry(nil)
	deps := Deps{
		Runner:  runner,
		Status:  func() bridge.Status { return bridge.Status{Ready: true, MailboxDir: "/tmp/mb"} },
		Timeout: 5 * time.Second,
	}
	if err := Register(reg, deps); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	return reg
}

func TestRegisterInstallsCatalogue(t *testing.T) {
	reg := newTestCatalogue(t, &fakeRunner{})

	names := reg.Names()
	if len(names) < 40 {
		t.Fatalf("catalogue has %d operations, want at least 40", len(names))
	}

	for _, name := range []string{
		"list_sequences", "add_to_timeline", "import_media", "apply_effect",
		"export_sequence", "add_marker", "set_clip_volume", "get_host_status", "run_script",
	} {
		found := false
		for _, n := range names {
			if n == name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("catalogue missing %s; have %v", name, names)
		}
	}
}

func TestListSequencesReturnsHostResultUnchanged(t *testing.T) {
	runner := &fakeRunner{result: map[string]any{
		"sequences": []any{map[string]any{"id": "s1", "name": "Main"}},
		"count":     float64(1),
	}}
	reg := newTestCatalogue(t, runner)

	out := reg.Invoke(context.Background(), "list_sequences", map[string]any{})
	if !out.OK {
		t.Fatalf("Invoke() failure = %+v, want success", out.Failure)
	}
	if runner.calls != 1 {
		t.Fatalf("bridge called %d times, want exactly once", runner.calls)
	}

	m := out.Value.(map[string]any)
	seqs := m["sequences"].([]any)
	if m["count"] != float64(len(seqs)) {
		t.Fatalf("count = %v, want %d", m["count"], len(seqs))
	}
	if runner.label != "list_sequences" {
		t.Fatalf("run label = %q, want list_sequences", runner.label)
	}
	if !strings.Contains(runner.payload, `"sequence.list"`) {
		t.Fatalf("payload = %q, want sequence.list invocation", runner.payload)
	}
}

func TestAddToTimelineCompilesArgsIntoPayload(t *testing.T) {
	runner := &fakeRunner{result: map[string]any{"clipId": "c1"}}
	reg := newTestCatalogue(t, runner)

	out := reg.Invoke(context.Background(), "add_to_timeline", map[string]any{
		"sequenceId":    "s1",
		"projectItemId": "item-9",
		"trackIndex":    float64(1),
		"time":          3.5,
	})
	if !out.OK {
		t.Fatalf("Invoke() failure = %+v, want success", out.Failure)
	}
	if !strings.Contains(runner.payload, `"timeline.add"`) {
		t.Fatalf("payload = %q, want timeline.add invocation", runner.payload)
	}
	for _, fragment := range []string{`"sequenceId":"s1"`, `"projectItemId":"item-9"`} {
		if !strings.Contains(runner.payload, fragment) {
			t.Fatalf("payload = %q, want %s", runner.payload, fragment)
		}
	}
	if runner.timeout != 5*time.Second {
		t.Fatalf("run timeout = %v, want configured 5s", runner.timeout)
	}
}

func TestAddToTimelineRejectsMissingFieldsWithoutHostCall(t *testing.T) {
	runner := &fakeRunner{}
	reg := newTestCatalogue(t, runner)

	out := reg.Invoke(context.Background(), "add_to_timeline", map[string]any{"sequenceId": "s1"})
	if out.OK || out.Failure.Kind != dispatch.KindInvalidArguments {
		t.Fatalf("Invoke() = %+v, want invalid_arguments", out)
	}
	for _, fieldName := range []string{"projectItemId", "trackIndex", "time"} {
		if !strings.Contains(out.Failure.Message, fieldName) {
			t.Fatalf("failure message = %q, want it to name %s", out.Failure.Message, fieldName)
		}
	}
	if runner.calls != 0 {
		t.Fatalf("bridge called %d times for invalid args, want 0", runner.calls)
	}
}

func TestGetHostStatusAnswersLocally(t *testing.T) {
	runner := &fakeRunner{}
	reg := newTestCatalogue(t, runner)

	out := reg.Invoke(context.Background(), "get_host_status", nil)
	if !out.OK {
		t.Fatalf("Invoke() failure = %+v, want success", out.Failure)
	}
	status, ok := out.Value.(bridge.Status)
	if !ok || !status.Ready {
		t.Fatalf("Invoke() value = %v, want ready bridge status", out.Value)
	}
	if runner.calls != 0 {
		t.Fatalf("bridge Run called %d times for status, want 0", runner.calls)
	}
}

func TestRunScriptPassesPayloadVerbatim(t *testing.T) {
	runner := &fakeRunner{result: "ok"}
	reg := newTestCatalogue(t, runner)

	script := "app.project.name"
	out := reg.Invoke(context.Background(), "run_script", map[string]any{"script": script})
	if !out.OK {
		t.Fatalf("Invoke() failure = %+v, want success", out.Failure)
	}
	if runner.payload != script {
		t.Fatalf("payload = %q, want raw script %q", runner.payload, script)
	}
}

func TestCatalogueContractsDeclareRequiredFields(t *testing.T) {
	reg := newTestCatalogue(t, &fakeRunner{})

	required := map[string][]string{
		"open_project":    {"path"},
		"export_sequence": {"sequenceId", "outputPath"},
		"apply_effect":    {"sequenceId", "clipId", "effectName"},
	}
	for _, desc := range reg.List() {
		want, ok := required[desc.Name]
		if !ok {
			continue
		}
		got := map[string]bool{}
		for _, f := range desc.Contract.Fields {
			if f.Required {
				got[f.Name] = true
			}
		}
		for _, name := range want {
			if !got[name] {
				t.Fatalf("%s: field %s not marked required", desc.Name, name)
			}
		}
	}
}
