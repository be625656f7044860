package unwrap

import "testing"

func TestOptionUnwrapOrLog_Some(t *testing.T) {
	rec := installRecorder(t)

	if got := Some(5).UnwrapOrLog(); got != 5 {
		t.Fatalf("expected 5, got %v", got)
	}
	if len(rec.events) != 0 {
		t.Fatalf("expected no events on the Some path, got %v", rec.events)
	}
}

func TestOptionUnwrapOrLog_None(t *testing.T) {
	rec := installRecorder(t)

	_, panicked := catchPanic(func() {
		None[int]().UnwrapOrLog()
	})

	if !panicked {
		t.Fatalf("expected UnwrapOrLog on None to panic")
	}

	want := "called `Option.UnwrapOrLog()` on a `None` value"
	if len(rec.events) != 1 || rec.events[0].msg != want {
		t.Fatalf("expected one event %q, got %v", want, rec.events)
	}
	if rec.events[0].level != LevelError {
		t.Fatalf("expected error level, got %v", rec.events[0].level)
	}
}

func TestOptionExpectOrLog_None(t *testing.T) {
	rec := installRecorder(t)

	_, panicked := catchPanic(func() {
		None[int]().ExpectOrLog("need a value")
	})

	if !panicked {
		t.Fatalf("expected ExpectOrLog on None to panic")
	}
	if len(rec.events) != 1 || rec.events[0].msg != "need a value" {
		t.Fatalf("expected one event %q, got %v", "need a value", rec.events)
	}
}

func TestOptionExpectOrLog_Some(t *testing.T) {
	rec := installRecorder(t)

	if got := Some("v").ExpectOrLog("unused"); got != "v" {
		t.Fatalf("expected v, got %v", got)
	}
	if len(rec.events) != 0 {
		t.Fatalf("expected no events, got %v", rec.events)
	}
}

func TestUnwrapNoneOrLog_None(t *testing.T) {
	rec := installRecorder(t)

	None[int]().UnwrapNoneOrLog()

	if len(rec.events) != 0 {
		t.Fatalf("expected no events on the None path, got %v", rec.events)
	}
}

func TestUnwrapNoneOrLog_Some(t *testing.T) {
	rec := installRecorder(t)

	_, panicked := catchPanic(func() {
		Some(5).UnwrapNoneOrLog()
	})

	if !panicked {
		t.Fatalf("expected UnwrapNoneOrLog on Some to panic")
	}

	want := "called `Option.UnwrapNoneOrLog()` on a `Some` value: 5"
	if len(rec.events) != 1 || rec.events[0].msg != want {
		t.Fatalf("expected one event %q, got %v", want, rec.events)
	}
}

func TestExpectNoneOrLog_Some(t *testing.T) {
	rec := installRecorder(t)

	_, panicked := catchPanic(func() {
		Some(5).ExpectNoneOrLog("should be empty")
	})

	if !panicked {
		t.Fatalf("expected ExpectNoneOrLog on Some to panic")
	}

	want := "should be empty: 5"
	if len(rec.events) != 1 || rec.events[0].msg != want {
		t.Fatalf("expected one event %q, got %v", want, rec.events)
	}
}

func TestExpectNoneOrLog_None(t *testing.T) {
	rec := installRecorder(t)

	None[int]().ExpectNoneOrLog("unused")

	if len(rec.events) != 0 {
		t.Fatalf("expected no events, got %v", rec.events)
	}
}

func TestOption_Accessors(t *testing.T) {
	some := Some(1)
	none := None[int]()

	if !some.IsSome() || some.IsNone() {
		t.Fatalf("expected Some variant")
	}
	if !none.IsNone() || none.IsSome() {
		t.Fatalf("expected None variant")
	}
	if some.Id() == none.Id() {
		t.Fatalf("expected distinct ids")
	}
	if none.CreatedAt().IsZero() {
		t.Fatalf("expected createdAt to be stamped")
	}
}
