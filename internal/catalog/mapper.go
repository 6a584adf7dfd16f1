package catalog

import "strings"

// optionValue finds a named option entry case-insensitively. Upstream
// catalogs are inconsistent about "Size" vs "size".
func optionValue(options []SelectedOption, name string) *string {
	for _, opt := range options {
		if strings.EqualFold(opt.Name, name) {
			v := opt.Value
			return &v
		}
	}
	return nil
}
