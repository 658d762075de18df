package debugsvc

import (
	"testing"

	"github.com/google/uuid"
)

func TestEventToStruct(t *testing.T) {
	id := uuid.New()
	ev := Event{TaskID: id, Label: "add", Depth: 3, Kind: "call"}
	s, err := ev.toStruct()
	if err != nil {
		t.Fatal(err)
	}
	fields := s.GetFields()
	if fields["task_id"].GetStringValue() != id.String() {
		t.Fatalf("task_id = %q", fields["task_id"].GetStringValue())
	}
	if fields["label"].GetStringValue() != "add" {
		t.Fatalf("label = %q", fields["label"].GetStringValue())
	}
	if fields["depth"].GetNumberValue() != 3 {
		t.Fatalf("depth = %v", fields["depth"].GetNumberValue())
	}
	if fields["kind"].GetStringValue() != "call" {
		t.Fatalf("kind = %q", fields["kind"].GetStringValue())
	}
}

func TestOnCallPublishesToSubscribers(t *testing.T) {
	s := NewServer()
	ch := s.subscribe()
	defer s.unsubscribe(ch)

	id := uuid.New()
	s.OnCall(id, "foo", 1)

	select {
	case ev := <-ch:
		if ev.Kind != "call" || ev.Label != "foo" || ev.TaskID != id {
			t.Fatalf("unexpected event: %+v", ev)
		}
	default:
		t.Fatal("expected event delivered to subscriber")
	}
}

func TestOnReturnPublishesReturnKind(t *testing.T) {
	s := NewServer()
	ch := s.subscribe()
	defer s.unsubscribe(ch)

	s.OnReturn(uuid.New(), "foo", 1)
	ev := <-ch
	if ev.Kind != "return" {
		t.Fatalf("expected return kind, got %q", ev.Kind)
	}
}

func TestPublishWithNoSubscribersDoesNotBlock(t *testing.T) {
	s := NewServer()
	s.OnCall(uuid.New(), "foo", 1) // must not panic or hang
}

func TestSlowSubscriberDropsRatherThanBlocks(t *testing.T) {
	s := NewServer()
	ch := s.subscribe()
	defer s.unsubscribe(ch)

	for i := 0; i < 128; i++ {
		s.OnCall(uuid.New(), "foo", i) // channel buffer is 64; must not block
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	s := NewServer()
	ch := s.subscribe()
	s.unsubscribe(ch)
	if _, ok := <-ch; ok {
		t.Fatal("expected channel closed after unsubscribe")
	}
}
