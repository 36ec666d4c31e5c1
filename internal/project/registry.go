package project

// RegistryEntry declares one active team in the project.
type RegistryEntry struct {
	ID         string
	Repo       string
	Name       string
	Alias      string
	Definition string // path relative to dev_communication/, may be empty
}

// Registry is the list of active teams, in file order.
type Registry struct {
	Entries []RegistryEntry
}

// LoadRegistry reads dev_communication/shared/registry.yaml. It returns an
// empty registry when the file is absent or malformed.
func LoadRegistry(projectRoot string) *Registry {
	reg := &Registry{}
	doc := readMapping(abs(projectRoot, RegistryFile))
	if doc == nil {
		return reg
	}

	items, ok := doc["active_teams"].([]any)
	if !ok {
		return reg
	}
	for _, item := range items {
		m := asMapping(item)
		if m == nil {
			continue
		}
		reg.Entries = append(reg.Entries, RegistryEntry{
			ID:         scalarString(m["id"]),
			Repo:       scalarString(m["repo"]),
			Name:       scalarString(m["name"]),
			Alias:      scalarString(m["alias"]),
			Definition: scalarString(m["definition"]),
		})
	}
	return reg
}

// IsEmpty reports whether no entries were loaded.
func (r *Registry) IsEmpty() bool {
	return r == nil || len(r.Entries) == 0
}

// Find returns the first entry whose id is id.
func (r *Registry) Find(id string) (RegistryEntry, bool) {
	if r == nil || id == "" {
		return RegistryEntry{}, false
	}
	for _, e := range r.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return RegistryEntry{}, false
}

// Others returns entries with a non-empty id other than id, in registry order.
func (r *Registry) Others(id string) []RegistryEntry {
	if r == nil {
		return nil
	}
	var out []RegistryEntry
	for _, e := range r.Entries {
		if e.ID == "" || e.ID == id {
			continue
		}
		out = append(out, e)
	}
	return out
}

// MatchRepo returns entries whose repo is repo and whose id satisfies keep.
func (r *Registry) MatchRepo(repo string, keep func(id string) bool) []RegistryEntry {
	if r == nil || repo == "" {
		return nil
	}
	var out []RegistryEntry
	for _, e := range r.Entries {
		if e.ID == "" || e.Repo != repo {
			continue
		}
		if keep != nil && !keep(e.ID) {
			continue
		}
		out = append(out, e)
	}
	return out
}
