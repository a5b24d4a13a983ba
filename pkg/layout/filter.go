package layout

import "errors"

// FilterBody returns the body-text fragments of a page that carry a recognized
// string, in source order. Annotations and empty records are dropped silently;
// a kept fragment with corrupt geometry fails the whole page.
func FilterBody(page Page, bodyType string) ([]Fragment, error) {
	var kept []Fragment
	for i, f := range page.Fragments {
		if !isBody(f, bodyType) {
			continue
		}
		if err := f.Validate(); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				verr.Page, verr.Index = page.Number, i
			}
			return nil, err
		}
		kept = append(kept, f)
	}
	return kept, nil
}
