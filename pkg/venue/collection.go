package venue

// Find returns the first record with the given id, or nil.
func Find(venues []*Venue, id string) *Venue {
	for _, v := range venues {
		if v != nil && v.Id == id {
			return v
		}
	}
	return nil
}

// Append returns a new collection with v appended.
func Append(venues []*Venue, v *Venue) []*Venue {
	ret := make([]*Venue, 0, len(venues)+1)
	ret = append(ret, venues...)
	return append(ret, v)
}

// Replace returns a new collection where every record matching id is
// substituted with v. Records without a match are kept as is.
func Replace(venues []*Venue, id string, v *Venue) []*Venue {
	ret := make([]*Venue, 0, len(venues))
	for _, candidate := range venues {
		if candidate != nil && candidate.Id == id {
			ret = append(ret, v)
			continue
		}
		ret = append(ret, candidate)
	}
	return ret
}

// Remove returns a new collection without records matching id.
func Remove(venues []*Venue, id string) []*Venue {
	ret := make([]*Venue, 0, len(venues))
	for _, candidate := range venues {
		if candidate != nil && candidate.Id == id {
			continue
		}
		ret = append(ret, candidate)
	}
	return ret
}
