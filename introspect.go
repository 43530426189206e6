package htmlcompare

// AllTags lists the distinct tag names of source in order of appearance.
func AllTags(source []byte) ([]string, error) {
	doc, err := parseBytes(source)
	if err != nil {
		return nil, err
	}
	tags := []string{}
	seen := map[string]bool{}
	for _, el := range doc.Elements() {
		if !seen[el.Tag()] {
			seen[el.Tag()] = true
			tags = append(tags, el.Tag())
		}
	}
	return tags, nil
}

// AllAttributes lists the distinct attribute keys of source in order of
// appearance.
func AllAttributes(source []byte) ([]string, error) {
	doc, err := parseBytes(source)
	if err != nil {
		return nil, err
	}
	keys := []string{}
	seen := map[string]bool{}
	for _, el := range doc.Elements() {
		for _, attr := range el.Attributes() {
			if !seen[attr.Key] {
				seen[attr.Key] = true
				keys = append(keys, attr.Key)
			}
		}
	}
	return keys, nil
}
