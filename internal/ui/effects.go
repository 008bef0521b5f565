package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/snowhunt/internal/geom"
)

// Effect is a floating text that rises from a world position until it expires.
type Effect struct {
	Text    string
	Pos     geom.Vec3
	Color   tcell.Color
	Born    float64
	Expires float64
}

// Shot is a short-lived line from the tower to its target.
type Shot struct {
	From, To geom.Vec3
	Expires  float64
}

// Effects holds the live presentation effects.
type Effects struct {
	texts []Effect
	shots []Shot
}

// NewEffects creates an empty effect set.
func NewEffects() *Effects {
	return &Effects{}
}

// Add shows text at pos for ttl seconds from now.
func (e *Effects) Add(text string, pos geom.Vec3, color tcell.Color, now, ttl float64) {
	e.texts = append(e.texts, Effect{
		Text:    text,
		Pos:     pos,
		Color:   color,
		Born:    now,
		Expires: now + ttl,
	})
}

// AddShot shows a tower shot for ttl seconds from now.
func (e *Effects) AddShot(from, to geom.Vec3, now, ttl float64) {
	e.shots = append(e.shots, Shot{From: from, To: to, Expires: now + ttl})
}

// Expire drops every effect that has expired by now.
func (e *Effects) Expire(now float64) {
	texts := e.texts[:0]
	for _, t := range e.texts {
		if t.Expires > now {
			texts = append(texts, t)
		}
	}
	e.texts = texts

	shots := e.shots[:0]
	for _, s := range e.shots {
		if s.Expires > now {
			shots = append(shots, s)
		}
	}
	e.shots = shots
}

// Texts returns the live floating texts.
func (e *Effects) Texts() []Effect {
	return e.texts
}

// Shots returns the live tower shots.
func (e *Effects) Shots() []Shot {
	return e.shots
}

// Len returns the number of live effects.
func (e *Effects) Len() int {
	return len(e.texts) + len(e.shots)
}
