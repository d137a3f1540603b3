package dispatch

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func newTestRegistry(t *testing.T, descs ...Descriptor) *Registry {
	t.Helper()
	r := NewRegistry(nil)
	for _, d := range descs {
		if err := r.Register(d); err != nil {
			t.Fatalf("Register(%s) error = %v", d.Name, err)
		}
	}
	return r
}

func TestInvokeReturnsHandlerValueUnchanged(t *testing.T) {
	want := map[string]any{"sequences": []any{"a"}, "count": float64(1)}
	calls := 0
	r := newTestRegistry(t, Descriptor{
		Name:     "list_sequences",
		Contract: Contract{},
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			calls++
			return want, nil
		},
	})

	out := r.Invoke(context.Background(), "list_sequences", map[string]any{})
	if !out.OK {
		t.Fatalf("Invoke() failure = %+v, want success", out.Failure)
	}
	if calls != 1 {
		t.Fatalf("handler called %d times, want exactly once", calls)
	}
	got, ok := out.Value.(map[string]any)
	if !ok || got["count"] != float64(1) {
		t.Fatalf("Invoke() value = %v, want handler result unchanged", out.Value)
	}
}

func TestInvokeUnknownOperationListsValidNames(t *testing.T) {
	r := newTestRegistry(t,
		Descriptor{Name: "list_sequences", Handler: nopHandler},
		Descriptor{Name: "add_marker", Handler: nopHandler},
	)

	out := r.Invoke(context.Background(), "list_sequnces", nil)
	if out.OK || out.Failure == nil {
		t.Fatal("Invoke() succeeded, want operation_not_found failure")
	}
	if out.Failure.Kind != KindOperationNotFound {
		t.Fatalf("failure kind = %q, want %q", out.Failure.Kind, KindOperationNotFound)
	}
	for _, name := range []string{"add_marker", "list_sequences"} {
		if !strings.Contains(out.Failure.Message, name) {
			t.Fatalf("failure message = %q, want it to list %s", out.Failure.Message, name)
		}
	}
}

func TestInvokeInvalidArgumentsSkipsHandler(t *testing.T) {
	called := false
	r := newTestRegistry(t, Descriptor{
		Name: "add_to_timeline",
		Contract: Contract{Fields: []Field{
			{Name: "sequenceId", Type: TypeString, Required: true},
			{Name: "projectItemId", Type: TypeString, Required: true},
			{Name: "trackIndex", Type: TypeInteger, Required: true},
			{Name: "time", Type: TypeNumber, Required: true},
		}},
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			called = true
			return nil, nil
		},
	})

	out := r.Invoke(context.Background(), "add_to_timeline", map[string]any{"sequenceId": "s1"})
	if out.OK || out.Failure.Kind != KindInvalidArguments {
		t.Fatalf("Invoke() = %+v, want invalid_arguments failure", out)
	}
	if called {
		t.Fatal("handler called despite invalid arguments")
	}
	for _, field := range []string{"projectItemId", "trackIndex", "time"} {
		if !strings.Contains(out.Failure.Message, field) {
			t.Fatalf("failure message = %q, want it to name %s", out.Failure.Message, field)
		}
	}
}

func TestInvokeConvertsHandlerErrorWithoutLeakingArgs(t *testing.T) {
	r := newTestRegistry(t, Descriptor{
		Name:     "export_sequence",
		Contract: Contract{Fields: []Field{{Name: "outputPath", Type: TypeString, Required: true}}},
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			return nil, errors.New("host unreachable")
		},
	})

	secret := "/Users/jo/private/cut.mp4"
	out := r.Invoke(context.Background(), "export_sequence", map[string]any{"outputPath": secret})
	if out.OK || out.Failure.Kind != KindExecutionFailed {
		t.Fatalf("Invoke() = %+v, want execution_failed failure", out)
	}
	if !strings.Contains(out.Failure.Message, "export_sequence") || !strings.Contains(out.Failure.Message, "host unreachable") {
		t.Fatalf("failure message = %q, want operation name and cause", out.Failure.Message)
	}
	if strings.Contains(out.Failure.Message, secret) {
		t.Fatalf("failure message leaks caller argument: %q", out.Failure.Message)
	}
	if _, ok := out.Failure.Context["args"]; ok {
		t.Fatal("failure context carries caller arguments")
	}
}

func TestInvokeAbsorbsHandlerPanic(t *testing.T) {
	r := newTestRegistry(t, Descriptor{
		Name:    "split_clip",
		Handler: func(ctx context.Context, args map[string]any) (any, error) { panic("boom") },
	})

	out := r.Invoke(context.Background(), "split_clip", nil)
	if out.OK || out.Failure.Kind != KindExecutionFailed {
		t.Fatalf("Invoke() = %+v, want execution_failed failure", out)
	}
	if !strings.Contains(out.Failure.Message, "boom") {
		t.Fatalf("failure message = %q, want panic value", out.Failure.Message)
	}
}

func TestRegisterRejectsDuplicatesAndNilHandlers(t *testing.T) {
	r := NewRegistry(nil)
	if err := r.Register(Descriptor{Name: "op", Handler: nopHandler}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Register(Descriptor{Name: "op", Handler: nopHandler}); err == nil {
		t.Fatal("Register() duplicate error = nil, want non-nil")
	}
	if err := r.Register(Descriptor{Name: "other"}); err == nil {
		t.Fatal("Register() nil handler error = nil, want non-nil")
	}
}

func TestListReturnsSortedDescriptorsWithContracts(t *testing.T) {
	contract := Contract{Fields: []Field{{Name: "name", Type: TypeString, Required: true}}}
	r := newTestRegistry(t,
		Descriptor{Name: "open_project", Contract: contract, Handler: nopHandler},
		Descriptor{Name: "create_bin", Handler: nopHandler},
	)

	list := r.List()
	if len(list) != 2 || list[0].Name != "create_bin" || list[1].Name != "open_project" {
		t.Fatalf("List() order = %v, want sorted by name", list)
	}
	if len(list[1].Contract.Fields) != 1 || list[1].Contract.Fields[0].Name != "name" {
		t.Fatalf("List() contract = %+v, want declared fields", list[1].Contract)
	}
}

func nopHandler(ctx context.Context, args map[string]any) (any, error) {
	return nil, nil
}
