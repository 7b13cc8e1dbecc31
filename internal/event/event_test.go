package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingListener struct {
	got []Event
}

func (l *recordingListener) OnEvent(e Event) {
	l.got = append(l.got, e)
}

func TestDispatchOnlyToSubscribers(t *testing.T) {
	d := NewDispatcher()
	built := &recordingListener{}
	fired := &recordingListener{}
	d.Subscribe(TowerBuilt, built)
	d.Subscribe(ProjectileFired, fired)

	d.Dispatch(Event{Type: TowerBuilt, Data: TowerBuiltData{Tower: 7}})

	assert.Len(t, built.got, 1)
	assert.Empty(t, fired.got)
	assert.Equal(t, TowerBuiltData{Tower: 7}, built.got[0].Data)
}

func TestDispatchPreservesSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(BuildMenuOpened, ListenerFunc(func(Event) { order = append(order, "first") }))
	d.Subscribe(BuildMenuOpened, ListenerFunc(func(Event) { order = append(order, "second") }))

	d.Dispatch(Event{Type: BuildMenuOpened})

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	l := &recordingListener{}
	d.Subscribe(TowerDryFired, l)
	d.Unsubscribe(TowerDryFired, l)

	d.Dispatch(Event{Type: TowerDryFired})

	assert.Empty(t, l.got)
}

type tally map[EventType]int

func (c tally) OnEvent(e Event) { c[e.Type]++ }

func TestUnsubscribeSkipsUncomparableListeners(t *testing.T) {
	d := NewDispatcher()
	counts := tally{}
	l := &recordingListener{}
	d.Subscribe(TowerDryFired, counts)
	d.Subscribe(TowerDryFired, ListenerFunc(func(Event) {}))
	d.Subscribe(TowerDryFired, l)

	assert.NotPanics(t, func() {
		d.Unsubscribe(TowerDryFired, l)
		d.Unsubscribe(TowerDryFired, counts)
	})
	d.Dispatch(Event{Type: TowerDryFired})

	assert.Equal(t, 1, counts[TowerDryFired], "map listener stays subscribed")
	assert.Empty(t, l.got)
}

func TestDispatchWithoutListeners(t *testing.T) {
	d := NewDispatcher()
	assert.NotPanics(t, func() { d.Dispatch(Event{Type: PadConsumed}) })
}
