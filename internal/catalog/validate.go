package catalog

import "fmt"

// Validate checks a catalog file for structural errors.
// Returns a slice of errors (empty if valid).
func Validate(f *File) []error {
	if f == nil {
		return []error{fmt.Errorf("catalog is empty")}
	}
	var errs []error

	if len(f.AgeGroups) == 0 {
		errs = append(errs, fmt.Errorf("at least one age group is required"))
	}
	for i, p := range f.Placeholders {
		if Normalize(p) == "" {
			errs = append(errs, fmt.Errorf("placeholder[%d]: must not be blank", i))
		}
	}

	names := map[string]bool{}
	for i, g := range f.AgeGroups {
		name := Normalize(g.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("age_group[%d]: name is required", i))
		} else if names[name] {
			errs = append(errs, fmt.Errorf("age_group[%d]: duplicate name %q", i, g.Name))
		}
		names[name] = true

		labels := map[string]string{}
		for label, phrases := range g.Items {
			key := Normalize(label)
			if key == "" {
				errs = append(errs, fmt.Errorf("age_group %q: blank item label", g.Name))
				continue
			}
			if prev, ok := labels[key]; ok {
				errs = append(errs, fmt.Errorf("age_group %q: items %q and %q collide", g.Name, prev, label))
			}
			labels[key] = label
			if len(phrases) == 0 {
				errs = append(errs, fmt.Errorf("age_group %q: item %q has no phrases", g.Name, label))
			}
			for j, p := range phrases {
				if Normalize(p) == "" {
					errs = append(errs, fmt.Errorf("age_group %q: item %q phrase[%d] is blank", g.Name, label, j))
				}
			}
		}
	}
	return errs
}
