package eventbus

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"shopfront/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPublishReachesSubscriber(t *testing.T) {
	b := New(nil)
	defer b.Close()

	received := make(chan DomainEvent, 1)
	b.Subscribe(EventProductFound, func(e DomainEvent) {
		received <- e
	})

	b.Publish(ProductFoundEvent{Product: domain.Product{SKU: "OIL-1L", Name: "Sunflower Oil 1L"}})

	select {
	case e := <-received:
		pf, ok := e.(ProductFoundEvent)
		require.True(t, ok)
		assert.Equal(t, "OIL-1L", pf.Product.SKU)
	case <-time.After(2 * time.Second):
		t.Fatal("event never delivered")
	}
}

func TestSubscriberOnlySeesItsType(t *testing.T) {
	b := New(nil)
	defer b.Close()

	var mu sync.Mutex
	var got []EventType
	done := make(chan struct{}, 1)
	b.Subscribe(EventTileRevealed, func(e DomainEvent) {
		mu.Lock()
		got = append(got, e.Type())
		mu.Unlock()
		done <- struct{}{}
	})

	b.Publish(CatalogLoadStartedEvent{Dir: "/tmp/catalog"})
	b.Publish(TileRevealedEvent{SKU: "RICE-5KG"})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("event never delivered")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 1)
	assert.Equal(t, EventTileRevealed, got[0])
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New(nil)
	defer b.Close()

	first := make(chan struct{}, 2)
	unsub := b.Subscribe(EventShortlistChanged, func(e DomainEvent) {
		first <- struct{}{}
	})
	sentinel := make(chan struct{}, 2)
	b.Subscribe(EventShortlistChanged, func(e DomainEvent) {
		sentinel <- struct{}{}
	})

	b.Publish(ShortlistChangedEvent{Added: []string{"OIL-1L"}, Total: 1})
	select {
	case <-first:
	case <-time.After(2 * time.Second):
		t.Fatal("first delivery missing")
	}
	<-sentinel

	unsub()
	b.Publish(ShortlistChangedEvent{Removed: []string{"OIL-1L"}, Total: 0})

	// The sentinel subscriber proves the second publish was dispatched
	select {
	case <-sentinel:
	case <-time.After(2 * time.Second):
		t.Fatal("sentinel delivery missing")
	}
	select {
	case <-first:
		t.Fatal("unsubscribed handler still invoked")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubscriberSeesEventsInPublishOrder(t *testing.T) {
	b := New(nil)
	defer b.Close()

	const n = 50
	done := make(chan []string, 1)
	var skus []string
	b.Subscribe(EventProductFound, func(e DomainEvent) {
		skus = append(skus, e.(ProductFoundEvent).Product.SKU)
		if len(skus) == n {
			done <- skus
		}
	})

	want := make([]string, n)
	for i := 0; i < n; i++ {
		want[i] = fmt.Sprintf("SKU-%03d", i)
		b.Publish(ProductFoundEvent{Product: domain.Product{SKU: want[i]}})
	}

	select {
	case got := <-done:
		assert.Equal(t, want, got)
	case <-time.After(2 * time.Second):
		t.Fatal("events never delivered")
	}
}

// The load lifecycle folds into UI state sequentially; completion must
// never overtake the start announcement.
func TestLoadLifecycleKeepsOrder(t *testing.T) {
	b := New(nil)
	defer b.Close()

	var mu sync.Mutex
	var seen []EventType
	record := func(e DomainEvent) {
		mu.Lock()
		seen = append(seen, e.Type())
		mu.Unlock()
	}
	b.Subscribe(EventCatalogLoadStarted, record)
	b.Subscribe(EventProductFound, record)
	b.Subscribe(EventCatalogLoadCompleted, record)

	b.Publish(CatalogLoadStartedEvent{Dir: "/srv/catalog"})
	b.Publish(ProductFoundEvent{Product: domain.Product{SKU: "OIL-1L"}})
	b.Publish(CatalogLoadCompletedEvent{ProductsFound: 1})

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 3
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []EventType{
		EventCatalogLoadStarted,
		EventProductFound,
		EventCatalogLoadCompleted,
	}, seen)
}

func TestHandlerPanicDoesNotKillDispatcher(t *testing.T) {
	b := New(nil)
	defer b.Close()

	b.Subscribe(EventError, func(e DomainEvent) {
		panic("handler blew up")
	})
	ok := make(chan struct{}, 1)
	b.Subscribe(EventError, func(e DomainEvent) {
		ok <- struct{}{}
	})

	b.Publish(ErrorEvent{Message: "bad product file"})

	select {
	case <-ok:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher died after handler panic")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	b := New(nil)
	b.Close()
	b.Close()
}
