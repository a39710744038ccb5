// Package intro times the splash screens shown before the menu.
//
// Each screen fades in, holds at full opacity, fades out and is followed by
// a short dark gap. The hold time is derived so the whole sequence lasts the
// requested run time.
package intro

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultFadeDuration is the combined fade-in and fade-out time per
	// screen, in seconds.
	DefaultFadeDuration = 5.983205318450928

	// DefaultDarkGap is the blank time after each screen, in seconds.
	DefaultDarkGap = 0.5

	// AlphaLevels is the number of discrete opacity steps of a fade.
	AlphaLevels = 256
)

// ErrInvalidArgument is returned for an empty screen sequence or a duration
// that is not a finite number
var ErrInvalidArgument = errors.New("intro: invalid argument")

// Plan holds the per-screen durations, in seconds.
type Plan struct {
	Count        int
	RunTime      float64
	FadeDuration float64
	DarkGap      float64
	Hold         float64

	// Clamped is set when the run time was too short and Hold was raised to 0.
	Clamped bool
}

// NewPlan computes
//
//	hold = (runTime - fade*count - dark*count) / count
//
// clamping a negative result to 0.
func NewPlan(count int, runTime, fadeDuration, darkGap float64) (Plan, error) {
	if count <= 0 {
		return Plan{}, fmt.Errorf("%w: empty screen sequence", ErrInvalidArgument)
	}
	for _, v := range []float64{runTime, fadeDuration, darkGap} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Plan{}, fmt.Errorf("%w: non-finite duration %v", ErrInvalidArgument, v)
		}
	}
	if fadeDuration < 0 || darkGap < 0 {
		return Plan{}, fmt.Errorf("%w: negative fade (%v) or dark gap (%v)", ErrInvalidArgument, fadeDuration, darkGap)
	}

	n := float64(count)
	totalFade := fadeDuration * n
	hold := (runTime - totalFade - darkGap*n) / n

	p := Plan{
		Count:        count,
		RunTime:      runTime,
		FadeDuration: fadeDuration,
		DarkGap:      darkGap,
		Hold:         hold,
	}
	if hold < 0 {
		p.Hold = 0
		p.Clamped = true
	}
	return p, nil
}

// PerScreen returns the time one screen occupies including its dark gap
func (p Plan) PerScreen() float64 {
	return p.FadeDuration + p.Hold + p.DarkGap
}

// Total returns the time the whole sequence takes. It equals RunTime unless
// the plan was clamped.
func (p Plan) Total() float64 {
	return p.PerScreen() * float64(p.Count)
}

// Center returns the top-left position that centers an image on screen
func Center(screenW, screenH, imageW, imageH int) (x, y float64) {
	x = float64(screenW)/2 - float64(imageW)/2
	y = float64(screenH)/2 - float64(imageH)/2
	return x, y
}
