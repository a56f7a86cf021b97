package videogen

// frameDuration computes how long a slide stays on screen. Silence and
// short narration get at least min_slide_duration; narration past
// max_slide_duration either extends the slide to match (extend, the
// default) or is cut at the cap (trim).
func (g *implVideoGenerator) frameDuration(audioSeconds float64) float64 {
	minDur := g.cfg.Video.MinSlideDuration
	maxDur := g.cfg.Video.MaxSlideDuration

	d := audioSeconds
	if d < minDur {
		d = minDur
	}
	if d > maxDur && g.cfg.Video.OverflowPolicy == "trim" {
		d = maxDur
	}
	return d
}
