package spots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRemoval struct {
	name   string
	reason string
}

type fakeNotifier struct {
	created []string
	removed []recordedRemoval
}

func (f *fakeNotifier) SpotCreated(name, area, category string) {
	f.created = append(f.created, name)
}

func (f *fakeNotifier) SpotRemoved(name, reason string) {
	f.removed = append(f.removed, recordedRemoval{name: name, reason: reason})
}

// Каждая точка, удалённая модерацией при очистке, объявляется в чат.
func TestAnnounceReapedNotifiesEachSpot(t *testing.T) {
	notifier := &fakeNotifier{}
	s := NewService(nil, nil, nil, notifier, nil)

	s.announceReaped([]string{"Раздача у мечети", "Вода на углу"})

	require.Len(t, notifier.removed, 2)
	assert.Equal(t, "Раздача у мечети", notifier.removed[0].name)
	assert.Equal(t, "Вода на углу", notifier.removed[1].name)
	for _, r := range notifier.removed {
		assert.Equal(t, "снята по итогам голосования", r.reason)
	}
}

func TestAnnounceReapedEmpty(t *testing.T) {
	notifier := &fakeNotifier{}
	s := NewService(nil, nil, nil, notifier, nil)

	s.announceReaped(nil)
	assert.Empty(t, notifier.removed)
}
