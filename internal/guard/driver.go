package guard

import (
	"sync"

	"github.com/superfood-sragen/storefront-system/internal/core/domain"
)

// Navigator performs the redirect side effect. Replace swaps the current
// location without growing history, so the back button never returns to a
// page the session was bounced from.
type Navigator interface {
	Replace(path string)
}

// SessionSource is the slice of the session store the driver needs: the
// current state and change notifications.
type SessionSource interface {
	State() domain.SessionState
	Subscribe(fn func(domain.SessionState)) (unsubscribe func())
}

// Driver is the effectful half of the guard. It re-evaluates Decide whenever
// the pathname or the session state changes and executes at most one redirect
// per distinct (pathname, state) pair, so repeated notifications with
// unchanged inputs can never cause a redirect storm.
type Driver struct {
	nav    Navigator
	source SessionSource

	mu          sync.Mutex
	pathname    string
	lastKey     string
	unsubscribe func()
}

func NewDriver(source SessionSource, nav Navigator) *Driver {
	return &Driver{nav: nav, source: source}
}

// Start subscribes to session-state changes and evaluates the current inputs
// once. Callers report navigation through Navigated.
func (d *Driver) Start() {
	d.unsubscribe = d.source.Subscribe(func(state domain.SessionState) {
		d.evaluate(state)
	})
	d.evaluate(d.source.State())
}

// Stop detaches the driver from the session store.
func (d *Driver) Stop() {
	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}
}

// Navigated tells the driver the pathname changed.
func (d *Driver) Navigated(pathname string) {
	d.mu.Lock()
	d.pathname = pathname
	d.mu.Unlock()
	d.evaluate(d.source.State())
}

func (d *Driver) evaluate(state domain.SessionState) {
	d.mu.Lock()
	pathname := d.pathname
	key := evaluationKey(pathname, state)
	if key == d.lastKey {
		d.mu.Unlock()
		return
	}
	d.lastKey = key
	d.mu.Unlock()

	if pathname == "" {
		return
	}

	if action := Decide(pathname, state); action.Kind == ActionRedirect {
		d.nav.Replace(action.Target)
	}
}

// evaluationKey fingerprints an input pair. Identity is folded in by id and
// role, the only attributes the rules read.
func evaluationKey(pathname string, state domain.SessionState) string {
	key := pathname + "|" + state.Phase.String()
	if state.Identity != nil {
		key += "|" + state.Identity.ID + "|" + string(state.Identity.Role)
	}
	return key
}
