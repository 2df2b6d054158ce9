package types

// GeneratedContent holds narrative content produced by a generation backend
// for a single render request. It is never cached across profiles.
type GeneratedContent struct {
	Summary string `json:"summary"`
	// BulletsByExperience maps an experience entry index to its generated
	// achievement bullets, in order.
	BulletsByExperience map[int][]string `json:"bullets_by_experience,omitempty"`
}

// BulletsFor returns the generated bullets for an experience index, or nil.
func (g *GeneratedContent) BulletsFor(index int) []string {
	if g == nil || g.BulletsByExperience == nil {
		return nil
	}
	return g.BulletsByExperience[index]
}
