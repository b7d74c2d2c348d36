package club

const (
	MaxPlacements = 4
	MaxAreas      = 3
)

// ValidatePlacements checks the enrollment limits of a single client.
func ValidatePlacements(placements []Placement) error {
	if len(placements) > MaxPlacements {
		return ErrTooManyPlacements
	}
	areas := make(map[string]struct{}, len(placements))
	for i, p := range placements {
		if p.Area == "" || p.Group == "" {
			return ErrEmptyPlacement
		}
		for _, prev := range placements[:i] {
			if prev.SamePair(p) {
				return ErrDuplicatePlacement
			}
		}
		areas[p.Area] = struct{}{}
	}
	if len(areas) > MaxAreas {
		return ErrTooManyAreas
	}
	return nil
}

// AddPlacement appends p to the client's placements if the result stays within
// the enrollment limits. The first placement becomes primary and is mirrored.
func AddPlacement(c *Client, p Placement) error {
	next := append(append([]Placement(nil), c.Placements...), p)
	if err := ValidatePlacements(next); err != nil {
		return err
	}
	c.Placements = next
	SyncPrimary(c)
	return nil
}

// SyncPrimary projects the primary placement onto the top-level Terms.
// Clients without placements keep their top-level Terms untouched.
func SyncPrimary(c *Client) {
	if len(c.Placements) == 0 {
		return
	}
	c.Terms = c.Placements[0].Terms.clone()
}

// EffectivePlacements returns the client's placements. A legacy client that
// was never migrated to placements yields one implicit placement built from
// its top-level Terms, or nothing if those are empty too.
func EffectivePlacements(c Client) []Placement {
	if len(c.Placements) > 0 {
		return c.Placements
	}
	if c.Area == "" && c.Group == "" {
		return nil
	}
	return []Placement{{Terms: c.Terms, PayStatus: c.PayStatus, Status: c.Status}}
}

// PlacementIndexByID returns the index of the placement with the given id or -1.
func PlacementIndexByID(placements []Placement, id string) int {
	if id == "" {
		return -1
	}
	for i, p := range placements {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// PlacementIndexByPair returns the index of the placement in (area, group) or -1.
func PlacementIndexByPair(placements []Placement, area, group string) int {
	if area == "" || group == "" {
		return -1
	}
	for i, p := range placements {
		if p.Area == area && p.Group == group {
			return i
		}
	}
	return -1
}
