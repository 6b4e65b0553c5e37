package main

import (
	"time"

	"github.com/oomph-ac/ballistics/host"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// holdWindow is how long a key counts as held after its last press. Terminals report no key releases,
// but they repeat presses while a key is held.
const holdWindow = 250 * time.Millisecond

// keyboard is the terminal implementation of host.Input.
type keyboard struct {
	pressed  map[host.Key]time.Time
	contexts map[string]int
	actions  map[string]func()
	now      func() time.Time

	deadlock.Mutex
}

func newKeyboard() *keyboard {
	return &keyboard{
		pressed:  make(map[host.Key]time.Time),
		contexts: make(map[string]int),
		actions:  make(map[string]func()),
		now:      time.Now,
	}
}

// Press records a press of key.
func (k *keyboard) Press(key host.Key) {
	k.Lock()
	k.pressed[key] = k.now()
	k.Unlock()
}

func (k *keyboard) IsKeyDown(key host.Key) bool {
	k.Lock()
	defer k.Unlock()

	at, ok := k.pressed[key]
	return ok && k.now().Sub(at) < holdWindow
}

func (k *keyboard) AddMappingContext(context string, priority int) {
	k.Lock()
	k.contexts[context] = priority
	k.Unlock()
}

func (k *keyboard) RemoveMappingContext(context string) {
	k.Lock()
	delete(k.contexts, context)
	k.Unlock()
}

func (k *keyboard) BindAction(action string, fn func()) {
	k.Lock()
	k.actions[action] = fn
	k.Unlock()
}

// Trigger runs the function bound to action. Actions only run while a mapping context is active. It returns
// false if nothing ran.
func (k *keyboard) Trigger(action string) bool {
	k.Lock()
	fn, ok := k.actions[action]
	active := len(k.contexts) > 0
	k.Unlock()

	if !ok || !active {
		return false
	}
	fn()
	return true
}

// montageLogger is the animation host of a headless run: it logs the montages it is asked to play.
type montageLogger struct {
	log logrus.FieldLogger
}

func (m montageLogger) PlayMontage(id string, rate float32) {
	m.log.WithFields(logrus.Fields{"montage": id, "rate": rate}).Debug("playing montage")
}
