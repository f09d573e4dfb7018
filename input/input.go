// Package input holds the bindable action channels abilities subscribe to.
//
// The host pushes edges (started, performed, canceled) and axis values into a
// Pack as it polls devices. Pack.Dispatch delivers the queued edges once per
// frame, in the order they were pushed, before any ability tick runs.
package input

import (
	cfg "github.com/automoto/doomerang-abilities/config"
	dmath "github.com/yohamta/donburi/features/math"
)

// Phase is the kind of edge delivered on a channel.
type Phase int

const (
	Started Phase = iota
	Performed
	Canceled
)

func (p Phase) String() string {
	switch p {
	case Started:
		return "started"
	case Performed:
		return "performed"
	case Canceled:
		return "canceled"
	}
	return "unknown"
}

// Edge is a single edge notification.
type Edge struct {
	Action cfg.ActionID
	Phase  Phase
	Value  dmath.Vec2
}

// Handler receives edges for the phase it subscribed to.
type Handler func(Edge)

// Subscription is the handle returned by Channel.Subscribe.
type Subscription struct {
	channel *Channel
	phase   Phase
	handler Handler
	active  bool
}

// Unsubscribe detaches the handler. Calling it more than once, or on a nil
// subscription, does nothing.
func (s *Subscription) Unsubscribe() {
	if s == nil || !s.active {
		return
	}
	s.active = false
	s.channel.remove(s)
}

// Active reports whether the handler still receives edges.
func (s *Subscription) Active() bool {
	return s != nil && s.active
}

// Channel is one bindable action.
type Channel struct {
	action  cfg.ActionID
	pack    *Pack
	value   dmath.Vec2
	pending []Phase
	subs    []*Subscription
}

// Action returns the action this channel is bound to.
func (c *Channel) Action() cfg.ActionID {
	return c.action
}

// Subscribe attaches h to edges of the given phase.
func (c *Channel) Subscribe(phase Phase, h Handler) *Subscription {
	s := &Subscription{channel: c, phase: phase, handler: h, active: true}
	c.subs = append(c.subs, s)
	return s
}

// Subscribers returns the number of active subscriptions.
func (c *Channel) Subscribers() int {
	return len(c.subs)
}

func (c *Channel) remove(s *Subscription) {
	for i, sub := range c.subs {
		if sub == s {
			c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
			return
		}
	}
}

// Push queues an edge for the next Dispatch.
func (c *Channel) Push(phase Phase) {
	c.pending = append(c.pending, phase)
}

// SetValue stores the continuous value read by Value.
func (c *Channel) SetValue(v dmath.Vec2) {
	c.value = v
}

// Value returns the current continuous value. A disabled pack reads as zero.
func (c *Channel) Value() dmath.Vec2 {
	if !c.pack.enabled {
		return dmath.Vec2{}
	}
	return c.value
}

func (c *Channel) dispatch() {
	queued := c.pending
	c.pending = nil
	for _, phase := range queued {
		// A handler may disable the pack; later edges are dropped, not deferred.
		if !c.pack.enabled {
			return
		}
		edge := Edge{Action: c.action, Phase: phase, Value: c.value}
		// Handlers may unsubscribe while we iterate.
		subs := append([]*Subscription(nil), c.subs...)
		for _, s := range subs {
			if s.active && s.phase == phase {
				s.handler(edge)
			}
		}
	}
}

// Pack is the set of channels owned by one character's input configuration.
type Pack struct {
	channels [cfg.ActionCount]*Channel
	enabled  bool
}

// NewPack creates an enabled pack with a channel for each given action.
func NewPack(actions ...cfg.ActionID) *Pack {
	p := &Pack{enabled: true}
	for _, a := range actions {
		p.Bind(a)
	}
	return p
}

// Bind returns the channel for a, creating it when needed.
func (p *Pack) Bind(a cfg.ActionID) *Channel {
	if a <= cfg.ActionNone || a >= cfg.ActionCount {
		return nil
	}
	if p.channels[a] == nil {
		p.channels[a] = &Channel{action: a, pack: p}
	}
	return p.channels[a]
}

// Channel returns the channel bound to a, or nil when a is unbound.
func (p *Pack) Channel(a cfg.ActionID) *Channel {
	if a <= cfg.ActionNone || a >= cfg.ActionCount {
		return nil
	}
	return p.channels[a]
}

// SetEnabled gates delivery of every channel in the pack.
func (p *Pack) SetEnabled(enabled bool) {
	p.enabled = enabled
}

// Enabled reports whether edges are delivered.
func (p *Pack) Enabled() bool {
	return p.enabled
}

// Dispatch delivers every queued edge. Edges queued while the pack is
// disabled are discarded.
func (p *Pack) Dispatch() {
	for _, c := range p.channels {
		if c == nil {
			continue
		}
		if !p.enabled {
			c.pending = c.pending[:0]
			continue
		}
		c.dispatch()
	}
}
