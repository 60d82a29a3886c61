package extract

// Extract runs every rule against the raw log text and returns the typed
// field set. Each rule scans the full text from the top, so the first match
// in document order is authoritative even across repeated calls. Extraction
// is all-or-nothing: the first rule that fails to match or convert aborts
// the whole call and no partial result escapes.
func Extract(text string, rules []Rule) (Fields, error) {
	var f Fields
	for _, r := range rules {
		m := r.re.FindStringSubmatch(text)
		if m == nil {
			return Fields{}, MissingFieldError{Field: r.Field}
		}
		if err := r.assign(&f, m[1]); err != nil {
			return Fields{}, MalformedValueError{Field: r.Field, Raw: m[1], Err: err}
		}
	}
	return f, nil
}
