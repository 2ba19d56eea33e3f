package event

import "testing"

type countingListener struct {
	got []Event
}

func (l *countingListener) OnEvent(e Event) { l.got = append(l.got, e) }

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	a := &countingListener{}
	b := &countingListener{}
	d.Subscribe(EnemyKilled, a)
	d.Subscribe(EnemyKilled, b)
	d.Subscribe(WaveStarted, a)

	d.Dispatch(Event{Type: EnemyKilled, Data: 7})
	if len(a.got) != 1 || len(b.got) != 1 {
		t.Fatalf("listeners got %d/%d events, want 1/1", len(a.got), len(b.got))
	}
	if a.got[0].Data != 7 {
		t.Errorf("data = %v, want 7", a.got[0].Data)
	}

	// Событие другого типа уходит только своим подписчикам.
	d.Dispatch(Event{Type: WaveStarted, Data: 1})
	if len(a.got) != 2 || len(b.got) != 1 {
		t.Errorf("after WaveStarted: %d/%d, want 2/1", len(a.got), len(b.got))
	}
}

func TestDispatchWithoutSubscribers(t *testing.T) {
	d := NewDispatcher()
	// Не должно паниковать.
	d.Dispatch(Event{Type: TowerPlaced})
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	l := &countingListener{}
	d.Subscribe(EnemyKilled, l)
	d.Unsubscribe(EnemyKilled, l)

	d.Dispatch(Event{Type: EnemyKilled})
	if len(l.got) != 0 {
		t.Errorf("unsubscribed listener got %d events", len(l.got))
	}
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(LevelWon, ListenerFunc(func(Event) { calls++ }))
	d.Dispatch(Event{Type: LevelWon})
	d.Dispatch(Event{Type: LevelWon})
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}
