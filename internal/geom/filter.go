package geom

// JoinKey extracts the value a feature is matched on when filtering by region.
type JoinKey func(Feature) string

// ByID joins on the feature identifier (the country dataset).
func ByID(f Feature) string { return f.ID }

// ByProperty joins on a named property, e.g. STATEFP in the district dataset.
func ByProperty(name string) JoinKey {
	return func(f Feature) string { return f.Properties[name] }
}

// FilterByRegion returns the features whose join key equals regionID. The
// result is empty, never nil-with-error, when nothing matches.
func FilterByRegion(features []Feature, regionID string, key JoinKey) []Feature {
	out := []Feature{}
	for _, f := range features {
		if key(f) == regionID {
			out = append(out, f)
		}
	}
	return out
}
